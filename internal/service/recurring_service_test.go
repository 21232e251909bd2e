package service

import (
	"testing"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/testutil"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func newRecurringFixture() (*RecurringService, *testutil.MockRecurringRepository, *testutil.MockTransactionRepository, *domain.Category) {
	recurringRepo := testutil.NewMockRecurringRepository()
	transactionRepo := testutil.NewMockTransactionRepository()
	categoryRepo := testutil.NewMockCategoryRepository()
	category := &domain.Category{Name: "Bills", Type: domain.TransactionTypeExpense}
	categoryRepo.AddCategory(category)
	svc := NewRecurringService(recurringRepo, transactionRepo, categoryRepo)
	return svc, recurringRepo, transactionRepo, category
}

func TestCreateRecurring_Success(t *testing.T) {
	svc, repo, _, category := newRecurringFixture()

	rt, err := svc.CreateRecurring(CreateRecurringInput{
		Description: "Rent",
		Amount:      decimal.NewFromInt(1500),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  category.ID,
		Frequency:   domain.FrequencyMonthly,
		StartDate:   "2024-02-01",
	})

	require.NoError(t, err)
	assert.Equal(t, "2024-02-01", rt.NextDate)
	assert.True(t, rt.IsActive)
	assert.Len(t, repo.Recurring, 1)
}

func TestCreateRecurring_InvalidFrequency(t *testing.T) {
	svc, _, _, category := newRecurringFixture()

	_, err := svc.CreateRecurring(CreateRecurringInput{
		Description: "Rent",
		Amount:      decimal.NewFromInt(1500),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  category.ID,
		Frequency:   domain.Frequency("hourly"),
		StartDate:   "2024-02-01",
	})

	assert.ErrorIs(t, err, domain.ErrInvalidFrequency)
}

func TestProcessDue_MaterializesAndAdvances(t *testing.T) {
	svc, recurringRepo, transactionRepo, category := newRecurringFixture()

	recurringRepo.AddRecurring(&domain.RecurringTransaction{
		Description: "Gym",
		Amount:      decimal.NewFromInt(80),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  category.ID,
		Frequency:   domain.FrequencyMonthly,
		NextDate:    "2024-01-10",
		IsActive:    true,
	})

	result, err := svc.ProcessDue("2024-03-15")

	require.NoError(t, err)
	assert.Equal(t, 3, result.Generated) // Jan 10, Feb 10, Mar 10
	assert.Empty(t, result.Errors)

	require.Len(t, transactionRepo.Transactions, 3)
	assert.Equal(t, "2024-01-10", transactionRepo.Transactions[0].Date)
	assert.Equal(t, "2024-02-10", transactionRepo.Transactions[1].Date)
	assert.Equal(t, "2024-03-10", transactionRepo.Transactions[2].Date)
	for _, txn := range transactionRepo.Transactions {
		assert.True(t, txn.IsRecurring)
		require.NotNil(t, txn.Frequency)
		assert.Equal(t, domain.FrequencyMonthly, *txn.Frequency)
	}

	assert.Equal(t, "2024-04-10", recurringRepo.Recurring[0].NextDate)
}

func TestProcessDue_SkipsFutureAndInactive(t *testing.T) {
	svc, recurringRepo, transactionRepo, category := newRecurringFixture()

	recurringRepo.AddRecurring(&domain.RecurringTransaction{
		Description: "Future",
		Amount:      decimal.NewFromInt(10),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  category.ID,
		Frequency:   domain.FrequencyWeekly,
		NextDate:    "2024-12-01",
		IsActive:    true,
	})
	recurringRepo.AddRecurring(&domain.RecurringTransaction{
		Description: "Paused",
		Amount:      decimal.NewFromInt(10),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  category.ID,
		Frequency:   domain.FrequencyWeekly,
		NextDate:    "2024-01-01",
		IsActive:    false,
	})

	result, err := svc.ProcessDue("2024-06-01")

	require.NoError(t, err)
	assert.Equal(t, 0, result.Generated)
	assert.Equal(t, 1, result.Skipped) // the future one; inactive templates are never listed
	assert.Empty(t, transactionRepo.Transactions)
	assert.Equal(t, "2024-12-01", recurringRepo.Recurring[0].NextDate)
}

func TestProcessDue_ShortMonthRollover(t *testing.T) {
	svc, recurringRepo, transactionRepo, category := newRecurringFixture()

	recurringRepo.AddRecurring(&domain.RecurringTransaction{
		Description: "Payday",
		Amount:      decimal.NewFromInt(5000),
		Type:        domain.TransactionTypeIncome,
		CategoryID:  category.ID,
		Frequency:   domain.FrequencyMonthly,
		NextDate:    "2024-01-31",
		IsActive:    true,
	})

	result, err := svc.ProcessDue("2024-03-05")

	require.NoError(t, err)
	// Jan 31, then the short-month rollover lands on Mar 2
	assert.Equal(t, 2, result.Generated)
	require.Len(t, transactionRepo.Transactions, 2)
	assert.Equal(t, "2024-01-31", transactionRepo.Transactions[0].Date)
	assert.Equal(t, "2024-03-02", transactionRepo.Transactions[1].Date)
}

func TestProcessDue_BadDate(t *testing.T) {
	svc, _, _, _ := newRecurringFixture()

	_, err := svc.ProcessDue("yesterday")
	assert.ErrorIs(t, err, domain.ErrInvalidDate)
}

func TestUpdateRecurring_Deactivate(t *testing.T) {
	svc, recurringRepo, _, category := newRecurringFixture()

	recurringRepo.AddRecurring(&domain.RecurringTransaction{
		Description: "Gym",
		Amount:      decimal.NewFromInt(80),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  category.ID,
		Frequency:   domain.FrequencyMonthly,
		NextDate:    "2024-05-10",
		IsActive:    true,
	})
	id := recurringRepo.Recurring[0].ID

	updated, err := svc.UpdateRecurring(id, UpdateRecurringInput{
		Description: "Gym",
		Amount:      decimal.NewFromInt(90),
		Type:        domain.TransactionTypeExpense,
		CategoryID:  category.ID,
		Frequency:   domain.FrequencyMonthly,
		NextDate:    "2024-06-10",
		IsActive:    false,
	})

	require.NoError(t, err)
	assert.False(t, updated.IsActive)
	assert.Equal(t, "90", updated.Amount.String())
	assert.Equal(t, "2024-06-10", updated.NextDate)
}

func TestDeleteRecurring_NotFound(t *testing.T) {
	svc, _, _, _ := newRecurringFixture()

	err := svc.DeleteRecurring(uuid.New())
	assert.ErrorIs(t, err, domain.ErrRecurringNotFound)
}
