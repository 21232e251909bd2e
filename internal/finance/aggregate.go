package finance

import (
	"math"
	"sort"
	"strings"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// FilterByDateRange returns the transactions whose date falls within
// [startDate, endDate] inclusive. Zero-padded ISO dates make plain
// string comparison equivalent to chronological comparison. Input order
// is preserved.
func FilterByDateRange(transactions []*domain.Transaction, startDate, endDate string) []*domain.Transaction {
	filtered := make([]*domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if txn.Date >= startDate && txn.Date <= endDate {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// FilterByMonth returns the transactions dated within the given YYYY-MM
// month key.
func FilterByMonth(transactions []*domain.Transaction, monthKey string) []*domain.Transaction {
	filtered := make([]*domain.Transaction, 0, len(transactions))
	for _, txn := range transactions {
		if strings.HasPrefix(txn.Date, monthKey) {
			filtered = append(filtered, txn)
		}
	}
	return filtered
}

// MonthlyBalance sums the month's income and expenses. An all-zero
// result is returned when nothing matches.
func MonthlyBalance(transactions []*domain.Transaction, monthKey string) domain.MonthlyBalance {
	balance := domain.MonthlyBalance{Month: monthKey}
	for _, txn := range FilterByMonth(transactions, monthKey) {
		switch txn.Type {
		case domain.TransactionTypeIncome:
			balance.TotalIncome = balance.TotalIncome.Add(txn.Amount)
		case domain.TransactionTypeExpense:
			balance.TotalExpenses = balance.TotalExpenses.Add(txn.Amount)
		}
		balance.TransactionCount++
	}
	balance.Balance = balance.TotalIncome.Sub(balance.TotalExpenses)
	return balance
}

// PeriodBalance sums the income and expenses of an arbitrary inclusive
// date range.
func PeriodBalance(transactions []*domain.Transaction, startDate, endDate string) domain.PeriodSummary {
	summary := domain.PeriodSummary{StartDate: startDate, EndDate: endDate}
	for _, txn := range FilterByDateRange(transactions, startDate, endDate) {
		switch txn.Type {
		case domain.TransactionTypeIncome:
			summary.TotalIncome = summary.TotalIncome.Add(txn.Amount)
		case domain.TransactionTypeExpense:
			summary.TotalExpenses = summary.TotalExpenses.Add(txn.Amount)
		}
		summary.TransactionCount++
	}
	summary.Balance = summary.TotalIncome.Sub(summary.TotalExpenses)
	return summary
}

// CategorySummaries groups the transactions of one type by category and
// computes each category's total, count, and rounded percentage of the
// type's grand total. Only categories with at least one matching
// transaction appear; first-seen input order is kept.
func CategorySummaries(transactions []*domain.Transaction, txnType domain.TransactionType) []domain.CategorySummary {
	var (
		order []uuid.UUID
		grand decimal.Decimal
	)
	groups := make(map[uuid.UUID]*domain.CategorySummary)
	for _, txn := range transactions {
		if txn.Type != txnType {
			continue
		}
		summary, ok := groups[txn.CategoryID]
		if !ok {
			summary = &domain.CategorySummary{CategoryID: txn.CategoryID}
			groups[txn.CategoryID] = summary
			order = append(order, txn.CategoryID)
		}
		summary.Total = summary.Total.Add(txn.Amount)
		summary.Count++
		grand = grand.Add(txn.Amount)
	}

	summaries := make([]domain.CategorySummary, 0, len(order))
	for _, id := range order {
		summary := groups[id]
		if !grand.IsZero() {
			share, _ := summary.Total.Mul(decimal.NewFromInt(100)).Div(grand).Float64()
			summary.Percentage = math.Round(share)
		}
		summaries = append(summaries, *summary)
	}
	return summaries
}

// SortByDate returns a new slice ordered by date without mutating the
// input; ties keep input order. ascending=false (most recent first) is
// the default presentation order.
func SortByDate(transactions []*domain.Transaction, ascending bool) []*domain.Transaction {
	sorted := make([]*domain.Transaction, len(transactions))
	copy(sorted, transactions)
	sort.SliceStable(sorted, func(i, j int) bool {
		if ascending {
			return sorted[i].Date < sorted[j].Date
		}
		return sorted[i].Date > sorted[j].Date
	})
	return sorted
}
