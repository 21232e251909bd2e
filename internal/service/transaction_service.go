package service

import (
	"strings"
	"time"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// TransactionService handles transaction business logic
type TransactionService struct {
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
}

// NewTransactionService creates a new TransactionService
func NewTransactionService(transactionRepo domain.TransactionRepository, categoryRepo domain.CategoryRepository) *TransactionService {
	return &TransactionService{
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateTransactionInput holds the input for creating a transaction
type CreateTransactionInput struct {
	Type          domain.TransactionType
	Amount        decimal.Decimal
	Description   string
	CategoryID    uuid.UUID
	Date          string
	IsRecurring   bool
	Frequency     *domain.Frequency
	PaymentMethod *string
}

func (s *TransactionService) validateInput(input *CreateTransactionInput) error {
	input.Description = strings.TrimSpace(input.Description)
	if input.Description == "" {
		return domain.ErrDescriptionRequired
	}
	if len(input.Description) > domain.MaxDescriptionLength {
		return domain.ErrDescriptionTooLong
	}
	if input.Amount.LessThanOrEqual(decimal.Zero) {
		return domain.ErrInvalidAmount
	}
	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return domain.ErrInvalidTransactionType
	}
	if _, err := time.Parse("2006-01-02", input.Date); err != nil {
		return domain.ErrInvalidDate
	}
	if input.IsRecurring {
		if input.Frequency == nil || !domain.ValidFrequency(*input.Frequency) {
			return domain.ErrInvalidFrequency
		}
	}
	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// CreateTransaction validates and persists a new transaction
func (s *TransactionService) CreateTransaction(input CreateTransactionInput) (*domain.Transaction, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	txn := &domain.Transaction{
		Type:          input.Type,
		Amount:        input.Amount,
		Description:   input.Description,
		CategoryID:    input.CategoryID,
		Date:          input.Date,
		IsRecurring:   input.IsRecurring,
		Frequency:     input.Frequency,
		PaymentMethod: input.PaymentMethod,
	}
	return s.transactionRepo.Create(txn)
}

// GetTransaction retrieves a transaction by ID
func (s *TransactionService) GetTransaction(id uuid.UUID) (*domain.Transaction, error) {
	return s.transactionRepo.GetByID(id)
}

// ListTransactions returns transactions matching the filters, most
// recent first.
func (s *TransactionService) ListTransactions(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	transactions, err := s.transactionRepo.List(filters)
	if err != nil {
		return nil, err
	}
	return finance.SortByDate(transactions, false), nil
}

// UpdateTransaction validates and persists changes to a transaction
func (s *TransactionService) UpdateTransaction(id uuid.UUID, input CreateTransactionInput) (*domain.Transaction, error) {
	existing, err := s.transactionRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	existing.Type = input.Type
	existing.Amount = input.Amount
	existing.Description = input.Description
	existing.CategoryID = input.CategoryID
	existing.Date = input.Date
	existing.IsRecurring = input.IsRecurring
	existing.Frequency = input.Frequency
	existing.PaymentMethod = input.PaymentMethod
	return s.transactionRepo.Update(existing)
}

// DeleteTransaction removes a transaction
func (s *TransactionService) DeleteTransaction(id uuid.UUID) error {
	return s.transactionRepo.Delete(id)
}
