package finance

import (
	"testing"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

func txn(txnType domain.TransactionType, amount float64, categoryID uuid.UUID, date string) *domain.Transaction {
	return &domain.Transaction{
		ID:         uuid.New(),
		Type:       txnType,
		Amount:     decimal.NewFromFloat(amount),
		CategoryID: categoryID,
		Date:       date,
	}
}

func TestFilterByDateRange(t *testing.T) {
	catID := uuid.New()
	transactions := []*domain.Transaction{
		txn(domain.TransactionTypeExpense, 10, catID, "2024-01-01"),
		txn(domain.TransactionTypeExpense, 20, catID, "2024-01-15"),
		txn(domain.TransactionTypeExpense, 30, catID, "2024-01-31"),
		txn(domain.TransactionTypeExpense, 40, catID, "2024-02-01"),
	}

	// Bounds are inclusive on both ends
	got := FilterByDateRange(transactions, "2024-01-15", "2024-01-31")
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	if got[0].Date != "2024-01-15" || got[1].Date != "2024-01-31" {
		t.Errorf("wrong transactions or order: %s, %s", got[0].Date, got[1].Date)
	}

	if got := FilterByDateRange(transactions, "2025-01-01", "2025-12-31"); len(got) != 0 {
		t.Errorf("expected empty result, got %d", len(got))
	}
}

func TestFilterByMonth(t *testing.T) {
	catID := uuid.New()
	transactions := []*domain.Transaction{
		txn(domain.TransactionTypeExpense, 10, catID, "2024-01-31"),
		txn(domain.TransactionTypeExpense, 20, catID, "2024-02-01"),
		txn(domain.TransactionTypeExpense, 30, catID, "2024-02-29"),
		txn(domain.TransactionTypeExpense, 40, catID, "2024-12-01"),
	}

	got := FilterByMonth(transactions, "2024-02")
	if len(got) != 2 {
		t.Fatalf("expected 2 transactions, got %d", len(got))
	}
	for _, tx := range got {
		if tx.Date[:7] != "2024-02" {
			t.Errorf("transaction %s leaked into 2024-02", tx.Date)
		}
	}
}

func TestMonthlyBalance(t *testing.T) {
	catID := uuid.New()
	transactions := []*domain.Transaction{
		txn(domain.TransactionTypeIncome, 5000, catID, "2024-01-10"),
		txn(domain.TransactionTypeExpense, 1000, catID, "2024-01-15"),
		txn(domain.TransactionTypeExpense, 500, catID, "2024-01-20"),
		txn(domain.TransactionTypeExpense, 999, catID, "2024-02-01"), // other month
	}

	balance := MonthlyBalance(transactions, "2024-01")

	if balance.Month != "2024-01" {
		t.Errorf("expected month 2024-01, got %s", balance.Month)
	}
	if balance.TotalIncome.StringFixed(2) != "5000.00" {
		t.Errorf("expected income 5000.00, got %s", balance.TotalIncome)
	}
	if balance.TotalExpenses.StringFixed(2) != "1500.00" {
		t.Errorf("expected expenses 1500.00, got %s", balance.TotalExpenses)
	}
	if balance.Balance.StringFixed(2) != "3500.00" {
		t.Errorf("expected balance 3500.00, got %s", balance.Balance)
	}
	if balance.TransactionCount != 3 {
		t.Errorf("expected 3 transactions, got %d", balance.TransactionCount)
	}
}

func TestMonthlyBalance_EmptyMonth(t *testing.T) {
	balance := MonthlyBalance(nil, "2024-01")

	if !balance.TotalIncome.IsZero() || !balance.TotalExpenses.IsZero() || !balance.Balance.IsZero() {
		t.Errorf("expected all-zero balance, got %+v", balance)
	}
	if balance.TransactionCount != 0 {
		t.Errorf("expected 0 transactions, got %d", balance.TransactionCount)
	}
}

func TestMonthlyBalance_Additivity(t *testing.T) {
	catID := uuid.New()
	transactions := []*domain.Transaction{
		txn(domain.TransactionTypeIncome, 1234.56, catID, "2024-03-01"),
		txn(domain.TransactionTypeIncome, 0.44, catID, "2024-03-02"),
		txn(domain.TransactionTypeExpense, 234.56, catID, "2024-03-15"),
	}

	balance := MonthlyBalance(transactions, "2024-03")
	if !balance.Balance.Equal(balance.TotalIncome.Sub(balance.TotalExpenses)) {
		t.Errorf("balance %s != income %s - expenses %s", balance.Balance, balance.TotalIncome, balance.TotalExpenses)
	}
	if balance.Balance.StringFixed(2) != "1000.44" {
		t.Errorf("expected balance 1000.44, got %s", balance.Balance)
	}
}

func TestPeriodBalance(t *testing.T) {
	catID := uuid.New()
	transactions := []*domain.Transaction{
		txn(domain.TransactionTypeIncome, 100, catID, "2024-01-15"),
		txn(domain.TransactionTypeExpense, 40, catID, "2024-02-15"),
		txn(domain.TransactionTypeExpense, 40, catID, "2024-06-15"), // outside
	}

	summary := PeriodBalance(transactions, "2024-01-01", "2024-03-31")
	if summary.Balance.StringFixed(2) != "60.00" {
		t.Errorf("expected balance 60.00, got %s", summary.Balance)
	}
	if summary.TransactionCount != 2 {
		t.Errorf("expected 2 transactions, got %d", summary.TransactionCount)
	}
}

func TestCategorySummaries(t *testing.T) {
	food := uuid.New()
	transport := uuid.New()
	salary := uuid.New()
	transactions := []*domain.Transaction{
		txn(domain.TransactionTypeExpense, 500, food, "2024-01-01"),
		txn(domain.TransactionTypeExpense, 300, food, "2024-01-05"),
		txn(domain.TransactionTypeExpense, 200, transport, "2024-01-10"),
		txn(domain.TransactionTypeIncome, 5000, salary, "2024-01-15"), // other type, ignored
	}

	summaries := CategorySummaries(transactions, domain.TransactionTypeExpense)
	if len(summaries) != 2 {
		t.Fatalf("expected 2 summaries, got %d", len(summaries))
	}

	if summaries[0].CategoryID != food {
		t.Fatalf("expected food first (input order)")
	}
	if summaries[0].Total.StringFixed(2) != "800.00" || summaries[0].Count != 2 || summaries[0].Percentage != 80 {
		t.Errorf("food summary wrong: %+v", summaries[0])
	}
	if summaries[1].Total.StringFixed(2) != "200.00" || summaries[1].Count != 1 || summaries[1].Percentage != 20 {
		t.Errorf("transport summary wrong: %+v", summaries[1])
	}
}

func TestCategorySummaries_NoMatch(t *testing.T) {
	summaries := CategorySummaries(nil, domain.TransactionTypeExpense)
	if len(summaries) != 0 {
		t.Errorf("expected empty summaries, got %d", len(summaries))
	}
}

func TestCategorySummaries_PercentagesSumToHundred(t *testing.T) {
	cats := []uuid.UUID{uuid.New(), uuid.New(), uuid.New()}
	transactions := []*domain.Transaction{
		txn(domain.TransactionTypeExpense, 33.33, cats[0], "2024-01-01"),
		txn(domain.TransactionTypeExpense, 33.33, cats[1], "2024-01-02"),
		txn(domain.TransactionTypeExpense, 33.34, cats[2], "2024-01-03"),
	}

	summaries := CategorySummaries(transactions, domain.TransactionTypeExpense)
	var sum float64
	for _, s := range summaries {
		sum += s.Percentage
	}
	// Whole-number rounding may drift by a point either way
	if sum < 99 || sum > 101 {
		t.Errorf("percentages sum to %v, want ~100", sum)
	}
}

func TestSortByDate(t *testing.T) {
	catID := uuid.New()
	first := txn(domain.TransactionTypeExpense, 1, catID, "2024-01-10")
	second := txn(domain.TransactionTypeExpense, 2, catID, "2024-01-10") // same date, later in input
	third := txn(domain.TransactionTypeExpense, 3, catID, "2024-02-01")
	input := []*domain.Transaction{first, second, third}

	desc := SortByDate(input, false)
	if desc[0] != third || desc[1] != first || desc[2] != second {
		t.Errorf("descending order wrong: %s %s %s", desc[0].Date, desc[1].Date, desc[2].Date)
	}

	asc := SortByDate(input, true)
	if asc[0] != first || asc[1] != second || asc[2] != third {
		t.Errorf("ascending order wrong: %s %s %s", asc[0].Date, asc[1].Date, asc[2].Date)
	}

	// Input must not be reordered
	if input[0] != first || input[1] != second || input[2] != third {
		t.Error("SortByDate mutated its input")
	}
}
