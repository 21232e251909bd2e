package service

import (
	"fmt"
	"strings"
	"time"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/centavo-app/centavo/centavo-backend/internal/finance"
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// maxCatchUpOccurrences bounds how many occurrences a single recurring
// entry may materialize in one ProcessDue run. A daily entry untouched
// for three years stays under this.
const maxCatchUpOccurrences = 1200

// RecurringService handles recurring transaction templates and their
// materialization into concrete transactions.
type RecurringService struct {
	recurringRepo   domain.RecurringRepository
	transactionRepo domain.TransactionRepository
	categoryRepo    domain.CategoryRepository
}

// NewRecurringService creates a new RecurringService
func NewRecurringService(
	recurringRepo domain.RecurringRepository,
	transactionRepo domain.TransactionRepository,
	categoryRepo domain.CategoryRepository,
) *RecurringService {
	return &RecurringService{
		recurringRepo:   recurringRepo,
		transactionRepo: transactionRepo,
		categoryRepo:    categoryRepo,
	}
}

// CreateRecurringInput holds the input for creating a recurring
// transaction template
type CreateRecurringInput struct {
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	CategoryID  uuid.UUID
	Frequency   domain.Frequency
	StartDate   string // first occurrence, YYYY-MM-DD
}

func (s *RecurringService) validateInput(input *CreateRecurringInput) error {
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
	if !domain.ValidFrequency(input.Frequency) {
		return domain.ErrInvalidFrequency
	}
	if _, err := time.Parse("2006-01-02", input.StartDate); err != nil {
		return domain.ErrInvalidDate
	}
	if _, err := s.categoryRepo.GetByID(input.CategoryID); err != nil {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// CreateRecurring creates a new recurring transaction template whose
// first occurrence is the given start date.
func (s *RecurringService) CreateRecurring(input CreateRecurringInput) (*domain.RecurringTransaction, error) {
	if err := s.validateInput(&input); err != nil {
		return nil, err
	}

	rt := &domain.RecurringTransaction{
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Frequency:   input.Frequency,
		NextDate:    input.StartDate,
		IsActive:    true,
	}
	return s.recurringRepo.Create(rt)
}

// ListRecurring retrieves recurring transaction templates
func (s *RecurringService) ListRecurring(activeOnly *bool) ([]*domain.RecurringTransaction, error) {
	return s.recurringRepo.List(activeOnly)
}

// GetRecurring retrieves a recurring transaction template by ID
func (s *RecurringService) GetRecurring(id uuid.UUID) (*domain.RecurringTransaction, error) {
	return s.recurringRepo.GetByID(id)
}

// UpdateRecurringInput holds the input for updating a recurring
// transaction template
type UpdateRecurringInput struct {
	Description string
	Amount      decimal.Decimal
	Type        domain.TransactionType
	CategoryID  uuid.UUID
	Frequency   domain.Frequency
	NextDate    string
	IsActive    bool
}

// UpdateRecurring validates and persists changes to a recurring
// transaction template
func (s *RecurringService) UpdateRecurring(id uuid.UUID, input UpdateRecurringInput) (*domain.RecurringTransaction, error) {
	existing, err := s.recurringRepo.GetByID(id)
	if err != nil {
		return nil, err
	}

	createInput := CreateRecurringInput{
		Description: input.Description,
		Amount:      input.Amount,
		Type:        input.Type,
		CategoryID:  input.CategoryID,
		Frequency:   input.Frequency,
		StartDate:   input.NextDate,
	}
	if err := s.validateInput(&createInput); err != nil {
		return nil, err
	}

	existing.Description = createInput.Description
	existing.Amount = input.Amount
	existing.Type = input.Type
	existing.CategoryID = input.CategoryID
	existing.Frequency = input.Frequency
	existing.NextDate = input.NextDate
	existing.IsActive = input.IsActive
	return s.recurringRepo.Update(existing)
}

// DeleteRecurring removes a recurring transaction template
func (s *RecurringService) DeleteRecurring(id uuid.UUID) error {
	return s.recurringRepo.Delete(id)
}

// ProcessResult holds the outcome of a ProcessDue run
type ProcessResult struct {
	Generated int      `json:"generated"`
	Skipped   int      `json:"skipped"`
	Errors    []string `json:"errors,omitempty"`
}

// ProcessDue materializes concrete transactions for every active
// recurring template whose next date is on or before today, advancing
// the template's next date one recurrence period at a time until it
// passes today. Pass an empty string to use the current local date.
func (s *RecurringService) ProcessDue(today string) (*ProcessResult, error) {
	if today == "" {
		today = finance.TodayString()
	}
	if _, err := time.Parse("2006-01-02", today); err != nil {
		return nil, domain.ErrInvalidDate
	}

	activeOnly := true
	templates, err := s.recurringRepo.List(&activeOnly)
	if err != nil {
		return nil, err
	}

	result := &ProcessResult{Errors: make([]string, 0)}
	for _, rt := range templates {
		if rt.NextDate > today {
			result.Skipped++
			continue
		}

		generated, procErr := s.processTemplate(rt, today)
		result.Generated += generated
		if procErr != nil {
			result.Errors = append(result.Errors, fmt.Sprintf("recurring %s: %v", rt.ID, procErr))
		}
	}
	return result, nil
}

func (s *RecurringService) processTemplate(rt *domain.RecurringTransaction, today string) (int, error) {
	generated := 0
	for rt.NextDate <= today && generated < maxCatchUpOccurrences {
		frequency := rt.Frequency
		txn := &domain.Transaction{
			Type:        rt.Type,
			Amount:      rt.Amount,
			Description: rt.Description,
			CategoryID:  rt.CategoryID,
			Date:        rt.NextDate,
			IsRecurring: true,
			Frequency:   &frequency,
		}
		if _, err := s.transactionRepo.Create(txn); err != nil {
			return generated, err
		}
		generated++

		rt.NextDate = finance.NextRecurrenceDate(rt.NextDate, rt.Frequency)
	}

	if _, err := s.recurringRepo.Update(rt); err != nil {
		return generated, err
	}
	return generated, nil
}
