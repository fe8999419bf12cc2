package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/peerbank/banking-backend/domain"
)

// historyRepository implements domain.AccountHistoryRepository
type historyRepository struct {
	db *DB
}

// NewAccountHistoryRepository creates a new account history repository
func NewAccountHistoryRepository(db *DB) domain.AccountHistoryRepository {
	return &historyRepository{db: db}
}

// Create appends one immutable history record
func (r *historyRepository) Create(ctx context.Context, history *domain.AccountHistory) error {
	query := `
		INSERT INTO account_histories (id, type, amount, from_account_number, to_account_number, created_at)
		VALUES ($1, $2, $3, $4, $5, $6)
	`

	var from, to sql.NullString
	if history.FromAccountNumber != nil {
		from = sql.NullString{String: history.FromAccountNumber.String(), Valid: true}
	}
	if history.ToAccountNumber != nil {
		to = sql.NullString{String: history.ToAccountNumber.String(), Valid: true}
	}

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query,
		history.ID,
		string(history.Type),
		history.Amount.String(),
		from,
		to,
		history.CreatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account history: %w", err)
	}
	return nil
}

// FindByAccountNumber retrieves every record involving the account, ordered
// by creation time ascending.
func (r *historyRepository) FindByAccountNumber(ctx context.Context, number domain.AccountNumber) ([]*domain.AccountHistory, error) {
	query := `
		SELECT id, type, amount, from_account_number, to_account_number, created_at
		FROM account_histories
		WHERE from_account_number = $1 OR to_account_number = $1
		ORDER BY created_at ASC
	`

	rows, err := getExecutor(ctx, r.db).QueryContext(ctx, query, number.String())
	if err != nil {
		return nil, fmt.Errorf("failed to list account histories: %w", err)
	}
	defer rows.Close()

	histories := make([]*domain.AccountHistory, 0)
	for rows.Next() {
		history, err := scanHistory(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account history: %w", err)
		}
		histories = append(histories, history)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate account histories: %w", err)
	}
	return histories, nil
}

func scanHistory(rows *sql.Rows) (*domain.AccountHistory, error) {
	var history domain.AccountHistory
	var typeStr string
	var amountStr string
	var from, to sql.NullString

	err := rows.Scan(
		&history.ID,
		&typeStr,
		&amountStr,
		&from,
		&to,
		&history.CreatedAt,
	)
	if err != nil {
		return nil, err
	}

	history.Type = domain.HistoryType(typeStr)

	amount, err := domain.NewMoneyFromString(amountStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse amount: %w", err)
	}
	history.Amount = amount

	if from.Valid {
		number, err := domain.NewAccountNumber(from.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse from_account_number: %w", err)
		}
		history.FromAccountNumber = &number
	}
	if to.Valid {
		number, err := domain.NewAccountNumber(to.String)
		if err != nil {
			return nil, fmt.Errorf("failed to parse to_account_number: %w", err)
		}
		history.ToAccountNumber = &number
	}

	return &history, nil
}
