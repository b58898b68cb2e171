package handler

import (
	"net/http"

	"github.com/dafibh/budgetly/internal/service"
	"github.com/labstack/echo/v4"
)

// AdvisorHandler handles advisory chat HTTP requests
type AdvisorHandler struct {
	advisorService *service.AdvisorService
}

// NewAdvisorHandler creates a new AdvisorHandler
func NewAdvisorHandler(advisorService *service.AdvisorService) *AdvisorHandler {
	return &AdvisorHandler{advisorService: advisorService}
}

// AskAdvisorRequest represents the ask advisor request body
type AskAdvisorRequest struct {
	Prompt string `json:"prompt" example:"How much should I save?"`
}

// AskAdvisorResponse wraps the advisor's answer
type AskAdvisorResponse struct {
	Response string `json:"response"`
}

// Ask handles POST /ask-advisor. Advisor failures are part of the answer
// text, so a well-formed request always gets 200.
//
//	@Summary	Ask the retirement advisor
//	@Tags		advisor
//	@Accept		json
//	@Produce	json
//	@Param		body	body		AskAdvisorRequest	true	"Question"
//	@Success	200		{object}	AskAdvisorResponse
//	@Failure	400		{object}	ProblemDetails
//	@Router		/ask-advisor [post]
func (h *AdvisorHandler) Ask(c echo.Context) error {
	var req AskAdvisorRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	answer := h.advisorService.Ask(c.Request().Context(), req.Prompt)

	return c.JSON(http.StatusOK, AskAdvisorResponse{Response: answer})
}
