// Package testutil provides in-memory repository mocks for service and
// handler tests.
package testutil

import (
	"time"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// MockTransactionRepository is a mock implementation of
// domain.TransactionRepository
type MockTransactionRepository struct {
	Transactions []*domain.Transaction
	CreateFn     func(txn *domain.Transaction) (*domain.Transaction, error)
	ListFn       func(filters *domain.TransactionFilters) ([]*domain.Transaction, error)
}

// NewMockTransactionRepository creates a new MockTransactionRepository
func NewMockTransactionRepository() *MockTransactionRepository {
	return &MockTransactionRepository{Transactions: make([]*domain.Transaction, 0)}
}

// AddTransaction seeds a transaction, assigning an ID when missing
func (m *MockTransactionRepository) AddTransaction(txn *domain.Transaction) {
	if txn.ID == uuid.Nil {
		txn.ID = uuid.New()
	}
	m.Transactions = append(m.Transactions, txn)
}

// Create stores a new transaction
func (m *MockTransactionRepository) Create(txn *domain.Transaction) (*domain.Transaction, error) {
	if m.CreateFn != nil {
		return m.CreateFn(txn)
	}
	txn.ID = uuid.New()
	txn.CreatedAt = time.Now()
	m.Transactions = append(m.Transactions, txn)
	return txn, nil
}

// GetByID retrieves a transaction by ID
func (m *MockTransactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	for _, txn := range m.Transactions {
		if txn.ID == id {
			return txn, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// List returns transactions matching the filters in insertion order
func (m *MockTransactionRepository) List(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	if m.ListFn != nil {
		return m.ListFn(filters)
	}
	matched := make([]*domain.Transaction, 0, len(m.Transactions))
	for _, txn := range m.Transactions {
		if filters != nil {
			if filters.StartDate != nil && txn.Date < *filters.StartDate {
				continue
			}
			if filters.EndDate != nil && txn.Date > *filters.EndDate {
				continue
			}
			if filters.Type != nil && txn.Type != *filters.Type {
				continue
			}
			if filters.CategoryID != nil && txn.CategoryID != *filters.CategoryID {
				continue
			}
		}
		matched = append(matched, txn)
	}
	return matched, nil
}

// Update replaces a stored transaction
func (m *MockTransactionRepository) Update(txn *domain.Transaction) (*domain.Transaction, error) {
	for i, existing := range m.Transactions {
		if existing.ID == txn.ID {
			m.Transactions[i] = txn
			return txn, nil
		}
	}
	return nil, domain.ErrTransactionNotFound
}

// Delete removes a stored transaction
func (m *MockTransactionRepository) Delete(id uuid.UUID) error {
	for i, txn := range m.Transactions {
		if txn.ID == id {
			m.Transactions = append(m.Transactions[:i], m.Transactions[i+1:]...)
			return nil
		}
	}
	return domain.ErrTransactionNotFound
}

// MockCategoryRepository is a mock implementation of
// domain.CategoryRepository
type MockCategoryRepository struct {
	Categories       []*domain.Category
	TransactionCount map[uuid.UUID]int64
}

// NewMockCategoryRepository creates a new MockCategoryRepository
func NewMockCategoryRepository() *MockCategoryRepository {
	return &MockCategoryRepository{
		Categories:       make([]*domain.Category, 0),
		TransactionCount: make(map[uuid.UUID]int64),
	}
}

// AddCategory seeds a category, assigning an ID when missing
func (m *MockCategoryRepository) AddCategory(category *domain.Category) {
	if category.ID == uuid.Nil {
		category.ID = uuid.New()
	}
	m.Categories = append(m.Categories, category)
}

// Create stores a new category
func (m *MockCategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	category.ID = uuid.New()
	category.CreatedAt = time.Now()
	m.Categories = append(m.Categories, category)
	return category, nil
}

// GetByID retrieves a category by ID
func (m *MockCategoryRepository) GetByID(id uuid.UUID) (*domain.Category, error) {
	for _, category := range m.Categories {
		if category.ID == id {
			return category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// List returns all categories in insertion order
func (m *MockCategoryRepository) List() ([]*domain.Category, error) {
	return m.Categories, nil
}

// Update replaces a stored category
func (m *MockCategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	for i, existing := range m.Categories {
		if existing.ID == category.ID {
			m.Categories[i] = category
			return category, nil
		}
	}
	return nil, domain.ErrCategoryNotFound
}

// Delete removes a stored category
func (m *MockCategoryRepository) Delete(id uuid.UUID) error {
	for i, category := range m.Categories {
		if category.ID == id {
			m.Categories = append(m.Categories[:i], m.Categories[i+1:]...)
			return nil
		}
	}
	return domain.ErrCategoryNotFound
}

// CountTransactions returns the seeded transaction count for a category
func (m *MockCategoryRepository) CountTransactions(id uuid.UUID) (int64, error) {
	return m.TransactionCount[id], nil
}

// MockRecurringRepository is a mock implementation of
// domain.RecurringRepository
type MockRecurringRepository struct {
	Recurring []*domain.RecurringTransaction
	UpdateFn  func(rt *domain.RecurringTransaction) (*domain.RecurringTransaction, error)
}

// NewMockRecurringRepository creates a new MockRecurringRepository
func NewMockRecurringRepository() *MockRecurringRepository {
	return &MockRecurringRepository{Recurring: make([]*domain.RecurringTransaction, 0)}
}

// AddRecurring seeds a recurring template, assigning an ID when missing
func (m *MockRecurringRepository) AddRecurring(rt *domain.RecurringTransaction) {
	if rt.ID == uuid.Nil {
		rt.ID = uuid.New()
	}
	m.Recurring = append(m.Recurring, rt)
}

// Create stores a new recurring template
func (m *MockRecurringRepository) Create(rt *domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	rt.ID = uuid.New()
	rt.CreatedAt = time.Now()
	rt.UpdatedAt = rt.CreatedAt
	m.Recurring = append(m.Recurring, rt)
	return rt, nil
}

// GetByID retrieves a recurring template by ID
func (m *MockRecurringRepository) GetByID(id uuid.UUID) (*domain.RecurringTransaction, error) {
	for _, rt := range m.Recurring {
		if rt.ID == id {
			return rt, nil
		}
	}
	return nil, domain.ErrRecurringNotFound
}

// List returns recurring templates, optionally only active ones
func (m *MockRecurringRepository) List(activeOnly *bool) ([]*domain.RecurringTransaction, error) {
	matched := make([]*domain.RecurringTransaction, 0, len(m.Recurring))
	for _, rt := range m.Recurring {
		if activeOnly != nil && *activeOnly && !rt.IsActive {
			continue
		}
		matched = append(matched, rt)
	}
	return matched, nil
}

// Update replaces a stored recurring template
func (m *MockRecurringRepository) Update(rt *domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	if m.UpdateFn != nil {
		return m.UpdateFn(rt)
	}
	for i, existing := range m.Recurring {
		if existing.ID == rt.ID {
			rt.UpdatedAt = time.Now()
			m.Recurring[i] = rt
			return rt, nil
		}
	}
	return nil, domain.ErrRecurringNotFound
}

// Delete removes a stored recurring template
func (m *MockRecurringRepository) Delete(id uuid.UUID) error {
	for i, rt := range m.Recurring {
		if rt.ID == id {
			m.Recurring = append(m.Recurring[:i], m.Recurring[i+1:]...)
			return nil
		}
	}
	return domain.ErrRecurringNotFound
}
