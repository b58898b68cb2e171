package domain

import (
	"strings"

	"github.com/shopspring/decimal"
)

type RiskLevel string

const (
	RiskLevelLow    RiskLevel = "low"
	RiskLevelMedium RiskLevel = "medium"
	RiskLevelHigh   RiskLevel = "high"
)

// RetirementAge is the age every projection grows savings to
const RetirementAge = 65

// RiskLevelRates maps each risk tier to its fixed annual growth rate
var RiskLevelRates = map[RiskLevel]decimal.Decimal{
	RiskLevelLow:    decimal.RequireFromString("0.04"),
	RiskLevelMedium: decimal.RequireFromString("0.06"),
	RiskLevelHigh:   decimal.RequireFromString("0.08"),
}

// ParseRiskLevel matches s case-insensitively against the known tiers
func ParseRiskLevel(s string) (RiskLevel, error) {
	level := RiskLevel(strings.ToLower(strings.TrimSpace(s)))
	if _, ok := RiskLevelRates[level]; !ok {
		return "", ErrInvalidRiskLevel
	}
	return level, nil
}

// IsValid reports whether r is exactly one of the known tier names
func (r RiskLevel) IsValid() bool {
	_, ok := RiskLevelRates[r]
	return ok
}

// RetirementInput is a request for a savings projection. Income is accepted
// for completeness but does not affect the projection.
type RetirementInput struct {
	Age       int
	Income    decimal.Decimal
	Savings   decimal.Decimal
	RiskLevel RiskLevel
}
