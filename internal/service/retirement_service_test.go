package service

import (
	"testing"

	"github.com/dafibh/budgetly/internal/domain"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRetirement_ProjectSavings_KnownValues(t *testing.T) {
	service := NewRetirementService()

	cases := []struct {
		age     int
		savings string
		risk    string
		want    string
	}{
		{30, "1000", "medium", "7686.09"},
		{30, "1000", "low", "3946.09"},
		{30, "1000", "high", "14785.34"},
		{40, "1000", "medium", "4291.87"},
		{20, "1000", "high", "31920.45"},
		{45, "2500.50", "high", "11654.72"},
		{65, "1000", "low", "1000.00"},
		{65, "1000", "medium", "1000.00"},
		{80, "1234.567", "high", "1234.57"},
		{30, "0", "high", "0.00"},
	}

	for _, tc := range cases {
		got, err := service.ProjectSavings(tc.age, decimal.RequireFromString(tc.savings), tc.risk)
		require.NoError(t, err)
		assert.Equal(t, tc.want, got.StringFixed(2), "age=%d savings=%s risk=%s", tc.age, tc.savings, tc.risk)
	}
}

func TestRetirement_ProjectSavings_CaseInsensitiveTier(t *testing.T) {
	service := NewRetirementService()

	for _, risk := range []string{"MEDIUM", "Medium", " medium "} {
		got, err := service.ProjectSavings(30, decimal.NewFromInt(1000), risk)
		require.NoError(t, err)
		assert.Equal(t, "7686.09", got.StringFixed(2))
	}
}

func TestRetirement_ProjectSavings_RejectsUnknownTier(t *testing.T) {
	service := NewRetirementService()

	for _, risk := range []string{"", "aggressive", "med", "lowest"} {
		_, err := service.ProjectSavings(30, decimal.NewFromInt(1000), risk)
		assert.ErrorIs(t, err, domain.ErrInvalidRiskLevel, "risk=%q", risk)
	}
}

func TestRetirement_ProjectSavings_Monotonic(t *testing.T) {
	service := NewRetirementService()

	for _, risk := range []string{"low", "medium", "high"} {
		prev := decimal.Zero
		for savings := int64(0); savings <= 5000; savings += 250 {
			got, err := service.ProjectSavings(40, decimal.NewFromInt(savings), risk)
			require.NoError(t, err)
			assert.True(t, got.GreaterThanOrEqual(prev), "savings not monotonic for %s at %d", risk, savings)
			prev = got
		}

		prev = decimal.Zero
		for age := 65; age >= 0; age-- {
			got, err := service.ProjectSavings(age, decimal.NewFromInt(1000), risk)
			require.NoError(t, err)
			assert.True(t, got.GreaterThanOrEqual(prev), "years not monotonic for %s at age %d", risk, age)
			prev = got
		}
	}
}

func TestRetirement_Plan_ValidatesInput(t *testing.T) {
	service := NewRetirementService()

	_, err := service.Plan(domain.RetirementInput{Age: 120, Savings: decimal.NewFromInt(1), RiskLevel: domain.RiskLevelLow})
	assert.ErrorIs(t, err, domain.ErrInvalidAge)

	_, err = service.Plan(domain.RetirementInput{Age: 30, Savings: decimal.NewFromInt(-1), RiskLevel: domain.RiskLevelLow})
	assert.ErrorIs(t, err, domain.ErrInvalidInput)

	got, err := service.Plan(domain.RetirementInput{
		Age:       30,
		Income:    decimal.NewFromInt(55000),
		Savings:   decimal.NewFromInt(1000),
		RiskLevel: domain.RiskLevelMedium,
	})
	require.NoError(t, err)
	assert.Equal(t, "7686.09", got.StringFixed(2))
}
