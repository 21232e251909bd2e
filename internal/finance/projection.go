package finance

import (
	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/shopspring/decimal"
)

// Compounding is the cadence at which accrued interest is added to the
// balance of a savings-plan projection.
type Compounding string

const (
	CompoundingMonthly   Compounding = "monthly"
	CompoundingQuarterly Compounding = "quarterly"
	CompoundingYearly    Compounding = "yearly"
)

func periodsPerYear(c Compounding) int {
	switch c {
	case CompoundingQuarterly:
		return 4
	case CompoundingYearly:
		return 1
	default:
		return 12
	}
}

// CompoundInterest simulates the growth of principal over years with a
// fixed contribution added every month and interest applied at the end
// of every compounding period, at annualRatePercent divided by the
// number of periods per year. One breakdown entry is recorded per
// elapsed year; its Interest always equals Amount minus Contributed.
// Degenerate inputs stay consistent: a zero rate yields FinalAmount ==
// TotalContributed exactly, a zero contribution yields pure compounding
// of principal. No currency formatting happens here.
func CompoundInterest(principal, monthlyContribution decimal.Decimal, annualRatePercent float64, years int, compounding Compounding) domain.CompoundInterestResult {
	result := domain.CompoundInterestResult{
		FinalAmount:      principal,
		TotalContributed: principal,
		YearlyBreakdown:  []domain.YearlyBreakdown{},
	}
	if years < 1 {
		return result
	}

	periods := periodsPerYear(compounding)
	monthsPerPeriod := 12 / periods
	ratePerPeriod := decimal.NewFromFloat(annualRatePercent / 100 / float64(periods))

	balance := principal
	contributed := principal
	for month := 1; month <= years*12; month++ {
		balance = balance.Add(monthlyContribution)
		contributed = contributed.Add(monthlyContribution)

		if month%monthsPerPeriod == 0 {
			balance = balance.Add(balance.Mul(ratePerPeriod))
		}
		if month%12 == 0 {
			result.YearlyBreakdown = append(result.YearlyBreakdown, domain.YearlyBreakdown{
				Year:        month / 12,
				Amount:      balance,
				Contributed: contributed,
				Interest:    balance.Sub(contributed),
			})
		}
	}

	result.FinalAmount = balance
	result.TotalContributed = contributed
	result.TotalInterest = balance.Sub(contributed)
	return result
}
