package domain

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// MonthlyBalance summarizes the transactions of a single calendar month.
// Computed fresh on every call, never persisted.
type MonthlyBalance struct {
	Month            string          `json:"month"` // YYYY-MM
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

// CategorySummary is the aggregated share of one category within a
// transaction type. Percentage is rounded to the nearest whole number,
// relative to the grand total of the same type.
type CategorySummary struct {
	CategoryID uuid.UUID       `json:"categoryId"`
	Total      decimal.Decimal `json:"total"`
	Count      int             `json:"count"`
	Percentage float64         `json:"percentage"`
}

// PeriodSummary summarizes the transactions of an arbitrary inclusive
// date range.
type PeriodSummary struct {
	StartDate        string          `json:"startDate"`
	EndDate          string          `json:"endDate"`
	TotalIncome      decimal.Decimal `json:"totalIncome"`
	TotalExpenses    decimal.Decimal `json:"totalExpenses"`
	Balance          decimal.Decimal `json:"balance"`
	TransactionCount int             `json:"transactionCount"`
}

// YearlyBreakdown is one year of a compound-interest projection.
// Interest always equals Amount minus Contributed.
type YearlyBreakdown struct {
	Year        int             `json:"year"`
	Amount      decimal.Decimal `json:"amount"`
	Contributed decimal.Decimal `json:"contributed"`
	Interest    decimal.Decimal `json:"interest"`
}

// CompoundInterestResult is the outcome of a savings-plan projection.
type CompoundInterestResult struct {
	FinalAmount      decimal.Decimal   `json:"finalAmount"`
	TotalContributed decimal.Decimal   `json:"totalContributed"`
	TotalInterest    decimal.Decimal   `json:"totalInterest"`
	YearlyBreakdown  []YearlyBreakdown `json:"yearlyBreakdown"`
}
