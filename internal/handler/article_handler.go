package handler

import (
	"net/http"
	"strconv"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/dafibh/budgetly/internal/service"
	"github.com/labstack/echo/v4"
)

// ArticleHandler handles recommended reading HTTP requests
type ArticleHandler struct {
	articleService *service.ArticleService
}

// NewArticleHandler creates a new ArticleHandler
func NewArticleHandler(articleService *service.ArticleService) *ArticleHandler {
	return &ArticleHandler{articleService: articleService}
}

// ArticleResponse represents a single article
type ArticleResponse struct {
	Title string `json:"title"`
	URL   string `json:"url"`
}

// ArticlesResponse wraps the recommended articles
type ArticlesResponse struct {
	Items []ArticleResponse `json:"items"`
}

// GetRecommended handles GET /recommended-articles?age=N
//
//	@Summary	Recommended reading for an age
//	@Tags		articles
//	@Produce	json
//	@Param		age	query		int	true	"Age in [0, 120)"
//	@Success	200	{object}	ArticlesResponse
//	@Failure	400	{object}	ProblemDetails
//	@Router		/recommended-articles [get]
func (h *ArticleHandler) GetRecommended(c echo.Context) error {
	raw := c.QueryParam("age")
	if raw == "" {
		return NewValidationError(c, "Invalid age", []ValidationError{
			{Field: "age", Message: "Field required"},
		})
	}

	age, err := strconv.Atoi(raw)
	if err != nil {
		return NewValidationError(c, "Invalid age", []ValidationError{
			{Field: "age", Message: "Must be an integer"},
		})
	}
	if age < domain.MinAge || age >= domain.MaxAge {
		return NewValidationError(c, "Invalid age", []ValidationError{
			{Field: "age", Message: "Must be at least 0 and less than 120"},
		})
	}

	articles := h.articleService.RecommendedArticles(age)
	items := make([]ArticleResponse, len(articles))
	for i, a := range articles {
		items[i] = ArticleResponse{Title: a.Title, URL: a.URL}
	}

	return c.JSON(http.StatusOK, ArticlesResponse{Items: items})
}
