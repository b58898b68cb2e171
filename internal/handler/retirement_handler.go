package handler

import (
	"encoding/json"
	"net/http"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/dafibh/budgetly/internal/service"
	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog/log"
	"github.com/shopspring/decimal"
)

// RetirementHandler handles retirement projection HTTP requests
type RetirementHandler struct {
	retirementService *service.RetirementService
}

// NewRetirementHandler creates a new RetirementHandler
func NewRetirementHandler(retirementService *service.RetirementService) *RetirementHandler {
	return &RetirementHandler{retirementService: retirementService}
}

// RetirementPlanRequest represents the retirement plan request body. Age must
// be an integral JSON number or numeric string; 30.0 is rejected.
// Pointer fields distinguish a missing field from a zero value.
type RetirementPlanRequest struct {
	Age       *json.Number `json:"age" swaggertype:"integer" example:"30"`
	Income    *float64     `json:"income" example:"55000"`
	Savings   *float64     `json:"savings" example:"1000"`
	RiskLevel *string      `json:"risk_level" enums:"low,medium,high" example:"medium"`
}

// RetirementPlanResponse represents the projected balance at retirement
type RetirementPlanResponse struct {
	ProjectedSavings float64 `json:"projected_savings" example:"7686.09"`
}

// CreatePlan handles POST /retirement-plan
//
//	@Summary	Project savings to age 65
//	@Tags		retirement
//	@Accept		json
//	@Produce	json
//	@Param		body	body		RetirementPlanRequest	true	"Retirement input"
//	@Success	200		{object}	RetirementPlanResponse
//	@Failure	400		{object}	ProblemDetails
//	@Router		/retirement-plan [post]
func (h *RetirementHandler) CreatePlan(c echo.Context) error {
	var req RetirementPlanRequest
	if err := c.Bind(&req); err != nil {
		return NewValidationError(c, "Invalid request body", nil)
	}

	input, errs := req.toInput()
	if len(errs) > 0 {
		return NewValidationError(c, "Invalid retirement input", errs)
	}

	projected, err := h.retirementService.Plan(input)
	if err != nil {
		log.Error().Err(err).Int("age", input.Age).Str("risk_level", string(input.RiskLevel)).Msg("Failed to project savings")
		return NewInternalError(c, "Failed to project savings")
	}

	return c.JSON(http.StatusOK, RetirementPlanResponse{ProjectedSavings: projected.InexactFloat64()})
}

func (r RetirementPlanRequest) toInput() (domain.RetirementInput, []ValidationError) {
	var input domain.RetirementInput
	var errs []ValidationError

	if r.Age == nil {
		errs = append(errs, ValidationError{Field: "age", Message: "Field required"})
	} else if age, err := r.Age.Int64(); err != nil {
		errs = append(errs, ValidationError{Field: "age", Message: "Must be an integer"})
	} else if age < domain.MinAge || age >= domain.MaxAge {
		errs = append(errs, ValidationError{Field: "age", Message: "Must be at least 0 and less than 120"})
	} else {
		input.Age = int(age)
	}

	if r.Income == nil {
		errs = append(errs, ValidationError{Field: "income", Message: "Field required"})
	} else if *r.Income < 0 {
		errs = append(errs, ValidationError{Field: "income", Message: "Must be zero or positive"})
	} else {
		input.Income = decimal.NewFromFloat(*r.Income)
	}

	if r.Savings == nil {
		errs = append(errs, ValidationError{Field: "savings", Message: "Field required"})
	} else if *r.Savings < 0 {
		errs = append(errs, ValidationError{Field: "savings", Message: "Must be zero or positive"})
	} else {
		input.Savings = decimal.NewFromFloat(*r.Savings)
	}

	if r.RiskLevel == nil {
		errs = append(errs, ValidationError{Field: "risk_level", Message: "Field required"})
	} else if level := domain.RiskLevel(*r.RiskLevel); !level.IsValid() {
		errs = append(errs, ValidationError{Field: "risk_level", Message: "Must be one of low, medium, high"})
	} else {
		input.RiskLevel = level
	}

	return input, errs
}
