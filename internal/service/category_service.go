package service

import (
	"strings"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
)

// CategoryService handles category business logic
type CategoryService struct {
	categoryRepo domain.CategoryRepository
}

// NewCategoryService creates a new CategoryService
func NewCategoryService(categoryRepo domain.CategoryRepository) *CategoryService {
	return &CategoryService{categoryRepo: categoryRepo}
}

// CreateCategoryInput holds the input for creating a category
type CreateCategoryInput struct {
	Name  string
	Type  domain.TransactionType
	Color *string
}

func validateCategoryInput(input *CreateCategoryInput) error {
	input.Name = strings.TrimSpace(input.Name)
	if input.Name == "" {
		return domain.ErrNameRequired
	}
	if len(input.Name) > domain.MaxCategoryNameLength {
		return domain.ErrNameTooLong
	}
	if input.Type != domain.TransactionTypeIncome && input.Type != domain.TransactionTypeExpense {
		return domain.ErrInvalidTransactionType
	}
	return nil
}

// CreateCategory validates and persists a new category
func (s *CategoryService) CreateCategory(input CreateCategoryInput) (*domain.Category, error) {
	if err := validateCategoryInput(&input); err != nil {
		return nil, err
	}

	category := &domain.Category{
		Name:  input.Name,
		Type:  input.Type,
		Color: input.Color,
	}
	return s.categoryRepo.Create(category)
}

// GetCategory retrieves a category by ID
func (s *CategoryService) GetCategory(id uuid.UUID) (*domain.Category, error) {
	return s.categoryRepo.GetByID(id)
}

// ListCategories retrieves all categories
func (s *CategoryService) ListCategories() ([]*domain.Category, error) {
	return s.categoryRepo.List()
}

// UpdateCategory validates and persists changes to a category
func (s *CategoryService) UpdateCategory(id uuid.UUID, input CreateCategoryInput) (*domain.Category, error) {
	existing, err := s.categoryRepo.GetByID(id)
	if err != nil {
		return nil, err
	}
	if err := validateCategoryInput(&input); err != nil {
		return nil, err
	}

	existing.Name = input.Name
	existing.Type = input.Type
	existing.Color = input.Color
	return s.categoryRepo.Update(existing)
}

// DeleteCategory removes a category. Categories still referenced by
// transactions cannot be deleted.
func (s *CategoryService) DeleteCategory(id uuid.UUID) error {
	if _, err := s.categoryRepo.GetByID(id); err != nil {
		return err
	}
	count, err := s.categoryRepo.CountTransactions(id)
	if err != nil {
		return err
	}
	if count > 0 {
		return domain.ErrCategoryInUse
	}
	return s.categoryRepo.Delete(id)
}
