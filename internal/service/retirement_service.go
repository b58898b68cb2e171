package service

import (
	"fmt"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/shopspring/decimal"
)

// RetirementService projects savings forward to retirement age
type RetirementService struct{}

// NewRetirementService creates a new RetirementService
func NewRetirementService() *RetirementService {
	return &RetirementService{}
}

// ProjectSavings grows savings at the tier's annual rate for every year left
// until RetirementAge and rounds half away from zero to cents. Ages at or past
// retirement return savings unchanged.
func (s *RetirementService) ProjectSavings(age int, savings decimal.Decimal, riskLevel string) (decimal.Decimal, error) {
	level, err := domain.ParseRiskLevel(riskLevel)
	if err != nil {
		return decimal.Zero, fmt.Errorf("%w: %q", err, riskLevel)
	}

	years := domain.RetirementAge - age
	if years < 0 {
		years = 0
	}

	// integer years keep the power exact
	factor := decimal.NewFromInt(1).Add(domain.RiskLevelRates[level])
	growth := decimal.NewFromInt(1)
	for i := 0; i < years; i++ {
		growth = growth.Mul(factor)
	}

	return savings.Mul(growth).Round(2), nil
}

// Plan runs the projection for a validated RetirementInput
func (s *RetirementService) Plan(input domain.RetirementInput) (decimal.Decimal, error) {
	if input.Age < domain.MinAge || input.Age >= domain.MaxAge {
		return decimal.Zero, domain.ErrInvalidAge
	}
	if input.Savings.IsNegative() || input.Income.IsNegative() {
		return decimal.Zero, domain.ErrInvalidInput
	}
	return s.ProjectSavings(input.Age, input.Savings, string(input.RiskLevel))
}
