package postgres

import (
	"context"
	"errors"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// CategoryRepository implements domain.CategoryRepository using
// PostgreSQL
type CategoryRepository struct {
	pool *pgxpool.Pool
}

// NewCategoryRepository creates a new CategoryRepository
func NewCategoryRepository(pool *pgxpool.Pool) *CategoryRepository {
	return &CategoryRepository{pool: pool}
}

const categoryColumns = `id, name, type, color, created_at`

func scanCategory(row pgx.Row) (*domain.Category, error) {
	var (
		category domain.Category
		color    pgtype.Text
	)
	if err := row.Scan(&category.ID, &category.Name, &category.Type, &color, &category.CreatedAt); err != nil {
		return nil, err
	}
	if color.Valid {
		category.Color = &color.String
	}
	return &category, nil
}

// Create inserts a new category
func (r *CategoryRepository) Create(category *domain.Category) (*domain.Category, error) {
	var color pgtype.Text
	if category.Color != nil {
		color.String = *category.Color
		color.Valid = true
	}

	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO categories (name, type, color)
		VALUES ($1, $2, $3)
		RETURNING `+categoryColumns,
		category.Name, string(category.Type), color)
	return scanCategory(row)
}

// GetByID retrieves a category by ID
func (r *CategoryRepository) GetByID(id uuid.UUID) (*domain.Category, error) {
	row := r.pool.QueryRow(context.Background(), `
		SELECT `+categoryColumns+` FROM categories WHERE id = $1`, id)
	category, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	return category, err
}

// List retrieves all categories ordered by name
func (r *CategoryRepository) List() ([]*domain.Category, error) {
	rows, err := r.pool.Query(context.Background(), `
		SELECT `+categoryColumns+` FROM categories ORDER BY name`)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	categories := make([]*domain.Category, 0)
	for rows.Next() {
		category, err := scanCategory(rows)
		if err != nil {
			return nil, err
		}
		categories = append(categories, category)
	}
	return categories, rows.Err()
}

// Update replaces the mutable fields of a category
func (r *CategoryRepository) Update(category *domain.Category) (*domain.Category, error) {
	var color pgtype.Text
	if category.Color != nil {
		color.String = *category.Color
		color.Valid = true
	}

	row := r.pool.QueryRow(context.Background(), `
		UPDATE categories SET name = $2, type = $3, color = $4
		WHERE id = $1
		RETURNING `+categoryColumns,
		category.ID, category.Name, string(category.Type), color)
	updated, err := scanCategory(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrCategoryNotFound
	}
	return updated, err
}

// Delete removes a category
func (r *CategoryRepository) Delete(id uuid.UUID) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM categories WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrCategoryNotFound
	}
	return nil
}

// CountTransactions returns how many transactions reference a category
func (r *CategoryRepository) CountTransactions(id uuid.UUID) (int64, error) {
	var count int64
	err := r.pool.QueryRow(context.Background(), `
		SELECT COUNT(*) FROM transactions WHERE category_id = $1`, id).Scan(&count)
	return count, err
}
