package service

import (
	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
	"github.com/shopspring/decimal"
)

const (
	// MaxProjectionYears caps how far ahead a savings plan may be
	// simulated
	MaxProjectionYears = 100
)

// ProjectionService wraps the compound-interest calculator with request
// validation. The calculation itself is pure and lives in the finance
// package.
type ProjectionService struct{}

// NewProjectionService creates a new ProjectionService
func NewProjectionService() *ProjectionService {
	return &ProjectionService{}
}

// CompoundInterestInput holds the parameters of a savings-plan
// projection
type CompoundInterestInput struct {
	Principal           decimal.Decimal
	MonthlyContribution decimal.Decimal
	AnnualRatePercent   float64
	Years               int
	Compounding         finance.Compounding
}

// ProjectCompoundInterest validates the plan parameters and runs the
// simulation
func (s *ProjectionService) ProjectCompoundInterest(input CompoundInterestInput) (*domain.CompoundInterestResult, error) {
	if input.Principal.IsNegative() {
		return nil, domain.ErrInvalidPrincipal
	}
	if input.MonthlyContribution.IsNegative() {
		return nil, domain.ErrInvalidContribution
	}
	if input.AnnualRatePercent < 0 {
		return nil, domain.ErrInvalidRate
	}
	if input.Years < 1 || input.Years > MaxProjectionYears {
		return nil, domain.ErrInvalidYears
	}

	compounding := input.Compounding
	if compounding == "" {
		compounding = finance.CompoundingMonthly
	}
	switch compounding {
	case finance.CompoundingMonthly, finance.CompoundingQuarterly, finance.CompoundingYearly:
	default:
		return nil, domain.ErrInvalidCompounding
	}

	result := finance.CompoundInterest(input.Principal, input.MonthlyContribution, input.AnnualRatePercent, input.Years, compounding)
	return &result, nil
}
