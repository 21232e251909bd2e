package service

import (
	"time"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
)

// AnalyticsService computes reporting summaries over stored
// transactions. All calculation happens in the finance package; this
// service only decides which rows to fetch.
type AnalyticsService struct {
	transactionRepo domain.TransactionRepository
}

// NewAnalyticsService creates a new AnalyticsService
func NewAnalyticsService(transactionRepo domain.TransactionRepository) *AnalyticsService {
	return &AnalyticsService{transactionRepo: transactionRepo}
}

func validMonthKey(monthKey string) bool {
	_, err := time.Parse("2006-01", monthKey)
	return err == nil
}

func validDate(date string) bool {
	_, err := time.Parse("2006-01-02", date)
	return err == nil
}

// listRange fetches the transactions of an inclusive date range.
func (s *AnalyticsService) listRange(startDate, endDate string) ([]*domain.Transaction, error) {
	return s.transactionRepo.List(&domain.TransactionFilters{
		StartDate: &startDate,
		EndDate:   &endDate,
	})
}

// MonthlyBalances returns one balance per month for the last n months,
// oldest first, ending at the current month.
func (s *AnalyticsService) MonthlyBalances(lastN int) ([]domain.MonthlyBalance, error) {
	if lastN < 1 {
		lastN = 1
	}
	months := finance.LastNMonths(lastN)
	return s.balancesForMonths(months)
}

// MonthlyBalancesBetween returns one balance per month from startMonth
// to endMonth inclusive.
func (s *AnalyticsService) MonthlyBalancesBetween(startMonth, endMonth string) ([]domain.MonthlyBalance, error) {
	if !validMonthKey(startMonth) || !validMonthKey(endMonth) {
		return nil, domain.ErrInvalidMonth
	}
	months := finance.MonthsBetween(startMonth, endMonth)
	return s.balancesForMonths(months)
}

func (s *AnalyticsService) balancesForMonths(months []string) ([]domain.MonthlyBalance, error) {
	balances := make([]domain.MonthlyBalance, 0, len(months))
	if len(months) == 0 {
		return balances, nil
	}

	// One fetch covering the whole span; "-31" is a safe inclusive
	// upper bound under zero-padded string comparison.
	transactions, err := s.listRange(months[0]+"-01", months[len(months)-1]+"-31")
	if err != nil {
		return nil, err
	}

	for _, month := range months {
		balances = append(balances, finance.MonthlyBalance(transactions, month))
	}
	return balances, nil
}

// CategoryBreakdown returns per-category totals and percentage shares
// for one transaction type within a month.
func (s *AnalyticsService) CategoryBreakdown(monthKey string, txnType domain.TransactionType) ([]domain.CategorySummary, error) {
	if !validMonthKey(monthKey) {
		return nil, domain.ErrInvalidMonth
	}
	if txnType != domain.TransactionTypeIncome && txnType != domain.TransactionTypeExpense {
		return nil, domain.ErrInvalidTransactionType
	}

	transactions, err := s.listRange(monthKey+"-01", monthKey+"-31")
	if err != nil {
		return nil, err
	}
	return finance.CategorySummaries(finance.FilterByMonth(transactions, monthKey), txnType), nil
}

// PeriodSummary sums income and expenses over an inclusive date range.
func (s *AnalyticsService) PeriodSummary(startDate, endDate string) (*domain.PeriodSummary, error) {
	if !validDate(startDate) || !validDate(endDate) {
		return nil, domain.ErrInvalidDate
	}

	transactions, err := s.listRange(startDate, endDate)
	if err != nil {
		return nil, err
	}
	summary := finance.PeriodBalance(transactions, startDate, endDate)
	return &summary, nil
}
