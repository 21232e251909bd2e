package domain

import (
	"time"

	"github.com/google/uuid"
)

type Category struct {
	ID        uuid.UUID       `json:"id"`
	Name      string          `json:"name"`
	Type      TransactionType `json:"type"`
	Color     *string         `json:"color,omitempty"`
	CreatedAt time.Time       `json:"createdAt"`
}

type CategoryRepository interface {
	Create(category *Category) (*Category, error)
	GetByID(id uuid.UUID) (*Category, error)
	List() ([]*Category, error)
	Update(category *Category) (*Category, error)
	Delete(id uuid.UUID) error
	CountTransactions(id uuid.UUID) (int64, error)
}
