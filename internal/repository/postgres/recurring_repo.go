package postgres

import (
	"context"
	"errors"
	"fmt"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
)

// RecurringRepository implements domain.RecurringRepository using
// PostgreSQL
type RecurringRepository struct {
	pool *pgxpool.Pool
}

// NewRecurringRepository creates a new RecurringRepository
func NewRecurringRepository(pool *pgxpool.Pool) *RecurringRepository {
	return &RecurringRepository{pool: pool}
}

const recurringColumns = `id, description, amount, type, category_id, frequency, next_date, is_active, created_at, updated_at`

func scanRecurring(row pgx.Row) (*domain.RecurringTransaction, error) {
	var (
		rt       domain.RecurringTransaction
		amount   pgtype.Numeric
		nextDate pgtype.Date
	)
	if err := row.Scan(&rt.ID, &rt.Description, &amount, &rt.Type, &rt.CategoryID, &rt.Frequency, &nextDate, &rt.IsActive, &rt.CreatedAt, &rt.UpdatedAt); err != nil {
		return nil, err
	}
	rt.Amount = pgNumericToDecimal(amount)
	rt.NextDate = nextDate.Time.Format("2006-01-02")
	return &rt, nil
}

// Create inserts a new recurring transaction template
func (r *RecurringRepository) Create(rt *domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	amount, err := decimalToPgNumeric(rt.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	nextDate, err := dateToPgDate(rt.NextDate)
	if err != nil {
		return nil, fmt.Errorf("invalid next date: %w", err)
	}

	row := r.pool.QueryRow(context.Background(), `
		INSERT INTO recurring_transactions (description, amount, type, category_id, frequency, next_date, is_active)
		VALUES ($1, $2, $3, $4, $5, $6, $7)
		RETURNING `+recurringColumns,
		rt.Description, amount, string(rt.Type), rt.CategoryID, string(rt.Frequency), nextDate, rt.IsActive)
	return scanRecurring(row)
}

// GetByID retrieves a recurring transaction template by ID
func (r *RecurringRepository) GetByID(id uuid.UUID) (*domain.RecurringTransaction, error) {
	row := r.pool.QueryRow(context.Background(), `
		SELECT `+recurringColumns+` FROM recurring_transactions WHERE id = $1`, id)
	rt, err := scanRecurring(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecurringNotFound
	}
	return rt, err
}

// List retrieves recurring transaction templates, optionally only
// active ones, ordered by next date
func (r *RecurringRepository) List(activeOnly *bool) ([]*domain.RecurringTransaction, error) {
	query := `SELECT ` + recurringColumns + ` FROM recurring_transactions`
	args := []any{}
	if activeOnly != nil && *activeOnly {
		query += ` WHERE is_active = TRUE`
	}
	query += ` ORDER BY next_date, created_at`

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	templates := make([]*domain.RecurringTransaction, 0)
	for rows.Next() {
		rt, err := scanRecurring(rows)
		if err != nil {
			return nil, err
		}
		templates = append(templates, rt)
	}
	return templates, rows.Err()
}

// Update replaces the mutable fields of a recurring transaction
// template
func (r *RecurringRepository) Update(rt *domain.RecurringTransaction) (*domain.RecurringTransaction, error) {
	amount, err := decimalToPgNumeric(rt.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	nextDate, err := dateToPgDate(rt.NextDate)
	if err != nil {
		return nil, fmt.Errorf("invalid next date: %w", err)
	}

	row := r.pool.QueryRow(context.Background(), `
		UPDATE recurring_transactions
		SET description = $2, amount = $3, type = $4, category_id = $5, frequency = $6, next_date = $7, is_active = $8, updated_at = NOW()
		WHERE id = $1
		RETURNING `+recurringColumns,
		rt.ID, rt.Description, amount, string(rt.Type), rt.CategoryID, string(rt.Frequency), nextDate, rt.IsActive)
	updated, err := scanRecurring(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrRecurringNotFound
	}
	return updated, err
}

// Delete removes a recurring transaction template
func (r *RecurringRepository) Delete(id uuid.UUID) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM recurring_transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrRecurringNotFound
	}
	return nil
}
