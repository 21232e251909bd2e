package service

import (
	"testing"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProjectCompoundInterest_Success(t *testing.T) {
	svc := NewProjectionService()

	result, err := svc.ProjectCompoundInterest(CompoundInterestInput{
		Principal:           decimal.NewFromInt(10000),
		MonthlyContribution: decimal.Zero,
		AnnualRatePercent:   10,
		Years:               1,
		Compounding:         finance.CompoundingYearly,
	})

	require.NoError(t, err)
	assert.Equal(t, "11000.00", result.FinalAmount.StringFixed(2))
	assert.Equal(t, "1000.00", result.TotalInterest.StringFixed(2))
}

func TestProjectCompoundInterest_DefaultsToMonthly(t *testing.T) {
	svc := NewProjectionService()

	result, err := svc.ProjectCompoundInterest(CompoundInterestInput{
		Principal:           decimal.NewFromInt(1000),
		MonthlyContribution: decimal.Zero,
		AnnualRatePercent:   12,
		Years:               1,
	})

	require.NoError(t, err)
	// 1000 * 1.01^12 under monthly compounding
	assert.Equal(t, "1126.83", result.FinalAmount.StringFixed(2))
}

func TestProjectCompoundInterest_ValidationErrors(t *testing.T) {
	svc := NewProjectionService()

	tests := []struct {
		name    string
		input   CompoundInterestInput
		wantErr error
	}{
		{
			name:    "negative principal",
			input:   CompoundInterestInput{Principal: decimal.NewFromInt(-1), Years: 1},
			wantErr: domain.ErrInvalidPrincipal,
		},
		{
			name:    "negative contribution",
			input:   CompoundInterestInput{MonthlyContribution: decimal.NewFromInt(-1), Years: 1},
			wantErr: domain.ErrInvalidContribution,
		},
		{
			name:    "negative rate",
			input:   CompoundInterestInput{AnnualRatePercent: -1, Years: 1},
			wantErr: domain.ErrInvalidRate,
		},
		{
			name:    "zero years",
			input:   CompoundInterestInput{Years: 0},
			wantErr: domain.ErrInvalidYears,
		},
		{
			name:    "too many years",
			input:   CompoundInterestInput{Years: 101},
			wantErr: domain.ErrInvalidYears,
		},
		{
			name:    "bad compounding",
			input:   CompoundInterestInput{Years: 1, Compounding: finance.Compounding("hourly")},
			wantErr: domain.ErrInvalidCompounding,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			_, err := svc.ProjectCompoundInterest(tt.input)
			assert.ErrorIs(t, err, tt.wantErr)
		})
	}
}
