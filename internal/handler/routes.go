package handler

import (
	"github.com/labstack/echo/v4"
	echoSwagger "github.com/swaggo/echo-swagger"

	_ "github.com/dafibh/budgetly/docs"
)

// RegisterRoutes sets up all API routes. The API is public and unauthenticated.
func RegisterRoutes(e *echo.Echo, retirementHandler *RetirementHandler, advisorHandler *AdvisorHandler, articleHandler *ArticleHandler, mw ...echo.MiddlewareFunc) {
	e.GET("/swagger/*", echoSwagger.WrapHandler)

	api := e.Group("", mw...)
	api.GET("/health", Health)
	api.POST("/retirement-plan", retirementHandler.CreatePlan)
	api.POST("/ask-advisor", advisorHandler.Ask)
	api.GET("/recommended-articles", articleHandler.GetRecommended)
}
