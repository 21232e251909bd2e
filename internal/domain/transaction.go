package domain

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type TransactionType string

const (
	TransactionTypeIncome  TransactionType = "income"
	TransactionTypeExpense TransactionType = "expense"
)

type Frequency string

const (
	FrequencyDaily    Frequency = "daily"
	FrequencyWeekly   Frequency = "weekly"
	FrequencyBiweekly Frequency = "biweekly"
	FrequencyMonthly  Frequency = "monthly"
	FrequencyYearly   Frequency = "yearly"
)

// ValidFrequency reports whether f is one of the supported recurrence cadences.
func ValidFrequency(f Frequency) bool {
	switch f {
	case FrequencyDaily, FrequencyWeekly, FrequencyBiweekly, FrequencyMonthly, FrequencyYearly:
		return true
	}
	return false
}

type Transaction struct {
	ID            uuid.UUID       `json:"id"`
	Type          TransactionType `json:"type"`
	Amount        decimal.Decimal `json:"amount"`
	Description   string          `json:"description"`
	CategoryID    uuid.UUID       `json:"categoryId"`
	Date          string          `json:"date"` // YYYY-MM-DD, local calendar date
	IsRecurring   bool            `json:"isRecurring"`
	Frequency     *Frequency      `json:"frequency,omitempty"`
	PaymentMethod *string         `json:"paymentMethod,omitempty"`
	CreatedAt     time.Time       `json:"createdAt"`
}

type TransactionFilters struct {
	StartDate  *string
	EndDate    *string
	Type       *TransactionType
	CategoryID *uuid.UUID
}

type TransactionRepository interface {
	Create(transaction *Transaction) (*Transaction, error)
	GetByID(id uuid.UUID) (*Transaction, error)
	List(filters *TransactionFilters) ([]*Transaction, error)
	Update(transaction *Transaction) (*Transaction, error)
	Delete(id uuid.UUID) error
}
