package postgres

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/centavo-app/centavo/centavo-backend/internal/domain"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
	"github.com/jackc/pgx/v5/pgtype"
	"github.com/jackc/pgx/v5/pgxpool"
	"github.com/shopspring/decimal"
)

// TransactionRepository implements domain.TransactionRepository using
// PostgreSQL
type TransactionRepository struct {
	pool *pgxpool.Pool
}

// NewTransactionRepository creates a new TransactionRepository
func NewTransactionRepository(pool *pgxpool.Pool) *TransactionRepository {
	return &TransactionRepository{pool: pool}
}

const transactionColumns = `id, type, amount, description, category_id, date, is_recurring, frequency, payment_method, created_at`

func scanTransaction(row pgx.Row) (*domain.Transaction, error) {
	var (
		txn       domain.Transaction
		amount    pgtype.Numeric
		date      pgtype.Date
		frequency pgtype.Text
		payment   pgtype.Text
	)
	if err := row.Scan(&txn.ID, &txn.Type, &amount, &txn.Description, &txn.CategoryID, &date, &txn.IsRecurring, &frequency, &payment, &txn.CreatedAt); err != nil {
		return nil, err
	}
	txn.Amount = pgNumericToDecimal(amount)
	txn.Date = date.Time.Format("2006-01-02")
	if frequency.Valid {
		f := domain.Frequency(frequency.String)
		txn.Frequency = &f
	}
	if payment.Valid {
		txn.PaymentMethod = &payment.String
	}
	return &txn, nil
}

// Create inserts a new transaction
func (r *TransactionRepository) Create(txn *domain.Transaction) (*domain.Transaction, error) {
	ctx := context.Background()

	amount, err := decimalToPgNumeric(txn.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	date, err := dateToPgDate(txn.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	var frequency pgtype.Text
	if txn.Frequency != nil {
		frequency.String = string(*txn.Frequency)
		frequency.Valid = true
	}
	var payment pgtype.Text
	if txn.PaymentMethod != nil {
		payment.String = *txn.PaymentMethod
		payment.Valid = true
	}

	row := r.pool.QueryRow(ctx, `
		INSERT INTO transactions (type, amount, description, category_id, date, is_recurring, frequency, payment_method)
		VALUES ($1, $2, $3, $4, $5, $6, $7, $8)
		RETURNING `+transactionColumns,
		string(txn.Type), amount, txn.Description, txn.CategoryID, date, txn.IsRecurring, frequency, payment)
	return scanTransaction(row)
}

// GetByID retrieves a transaction by ID
func (r *TransactionRepository) GetByID(id uuid.UUID) (*domain.Transaction, error) {
	row := r.pool.QueryRow(context.Background(), `
		SELECT `+transactionColumns+` FROM transactions WHERE id = $1`, id)
	txn, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	return txn, err
}

// List retrieves transactions matching the filters, ordered by date
// then insertion order
func (r *TransactionRepository) List(filters *domain.TransactionFilters) ([]*domain.Transaction, error) {
	query := `SELECT ` + transactionColumns + ` FROM transactions WHERE 1=1`
	args := []any{}

	if filters != nil {
		if filters.StartDate != nil {
			args = append(args, *filters.StartDate)
			query += fmt.Sprintf(" AND date >= $%d", len(args))
		}
		if filters.EndDate != nil {
			args = append(args, *filters.EndDate)
			query += fmt.Sprintf(" AND date <= $%d", len(args))
		}
		if filters.Type != nil {
			args = append(args, string(*filters.Type))
			query += fmt.Sprintf(" AND type = $%d", len(args))
		}
		if filters.CategoryID != nil {
			args = append(args, *filters.CategoryID)
			query += fmt.Sprintf(" AND category_id = $%d", len(args))
		}
	}
	query += " ORDER BY date, created_at"

	rows, err := r.pool.Query(context.Background(), query, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()

	transactions := make([]*domain.Transaction, 0)
	for rows.Next() {
		txn, err := scanTransaction(rows)
		if err != nil {
			return nil, err
		}
		transactions = append(transactions, txn)
	}
	return transactions, rows.Err()
}

// Update replaces the mutable fields of a transaction
func (r *TransactionRepository) Update(txn *domain.Transaction) (*domain.Transaction, error) {
	amount, err := decimalToPgNumeric(txn.Amount)
	if err != nil {
		return nil, fmt.Errorf("invalid amount: %w", err)
	}
	date, err := dateToPgDate(txn.Date)
	if err != nil {
		return nil, fmt.Errorf("invalid date: %w", err)
	}

	var frequency pgtype.Text
	if txn.Frequency != nil {
		frequency.String = string(*txn.Frequency)
		frequency.Valid = true
	}
	var payment pgtype.Text
	if txn.PaymentMethod != nil {
		payment.String = *txn.PaymentMethod
		payment.Valid = true
	}

	row := r.pool.QueryRow(context.Background(), `
		UPDATE transactions
		SET type = $2, amount = $3, description = $4, category_id = $5, date = $6, is_recurring = $7, frequency = $8, payment_method = $9
		WHERE id = $1
		RETURNING `+transactionColumns,
		txn.ID, string(txn.Type), amount, txn.Description, txn.CategoryID, date, txn.IsRecurring, frequency, payment)
	updated, err := scanTransaction(row)
	if errors.Is(err, pgx.ErrNoRows) {
		return nil, domain.ErrTransactionNotFound
	}
	return updated, err
}

// Delete removes a transaction
func (r *TransactionRepository) Delete(id uuid.UUID) error {
	tag, err := r.pool.Exec(context.Background(), `DELETE FROM transactions WHERE id = $1`, id)
	if err != nil {
		return err
	}
	if tag.RowsAffected() == 0 {
		return domain.ErrTransactionNotFound
	}
	return nil
}

func decimalToPgNumeric(d decimal.Decimal) (pgtype.Numeric, error) {
	var num pgtype.Numeric
	if err := num.Scan(d.String()); err != nil {
		return pgtype.Numeric{}, err
	}
	return num, nil
}

func pgNumericToDecimal(n pgtype.Numeric) decimal.Decimal {
	if !n.Valid || n.Int == nil {
		return decimal.Zero
	}
	return decimal.NewFromBigInt(n.Int, n.Exp)
}

func dateToPgDate(date string) (pgtype.Date, error) {
	t, err := time.Parse("2006-01-02", date)
	if err != nil {
		return pgtype.Date{}, err
	}
	return pgtype.Date{Time: t, Valid: true}, nil
}
