package postgres

import (
	"context"
	"database/sql"
	"errors"
	"fmt"

	"github.com/google/uuid"
	"github.com/lib/pq"

	"github.com/peerbank/banking-backend/domain"
)

// accountRepository implements domain.AccountRepository
type accountRepository struct {
	db *DB
}

// NewAccountRepository creates a new account repository
func NewAccountRepository(db *DB) domain.AccountRepository {
	return &accountRepository{db: db}
}

// GetByAccountNumber retrieves an account by its account number
func (r *accountRepository) GetByAccountNumber(ctx context.Context, number domain.AccountNumber) (*domain.Account, error) {
	query := `
		SELECT account_number, user_id, balance, created_at, updated_at
		FROM accounts
		WHERE account_number = $1
	`

	row := getExecutor(ctx, r.db).QueryRowContext(ctx, query, number.String())
	account, err := scanAccount(row)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrAccountNotFound
		}
		return nil, fmt.Errorf("failed to get account: %w", err)
	}
	return account, nil
}

// Create persists a newly opened account
func (r *accountRepository) Create(ctx context.Context, account *domain.Account) error {
	query := `
		INSERT INTO accounts (account_number, user_id, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5)
	`

	_, err := getExecutor(ctx, r.db).ExecContext(ctx, query,
		account.AccountNumber.String(),
		account.UserID,
		account.Balance.String(),
		account.CreatedAt,
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to create account: %w", err)
	}
	return nil
}

// Update persists changes to an existing account
func (r *accountRepository) Update(ctx context.Context, account *domain.Account) error {
	query := `
		UPDATE accounts
		SET balance = $2,
		    updated_at = $3
		WHERE account_number = $1
	`

	result, err := getExecutor(ctx, r.db).ExecContext(ctx, query,
		account.AccountNumber.String(),
		account.Balance.String(),
		account.UpdatedAt,
	)
	if err != nil {
		return fmt.Errorf("failed to update account: %w", err)
	}

	rowsAffected, err := result.RowsAffected()
	if err != nil {
		return fmt.Errorf("failed to read update result: %w", err)
	}
	if rowsAffected == 0 {
		return domain.ErrAccountNotFound
	}
	return nil
}

// FindAll retrieves every account
func (r *accountRepository) FindAll(ctx context.Context) ([]*domain.Account, error) {
	query := `
		SELECT account_number, user_id, balance, created_at, updated_at
		FROM accounts
		ORDER BY account_number
	`

	rows, err := getExecutor(ctx, r.db).QueryContext(ctx, query)
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// FindByUserIDs retrieves the accounts owned by the given users
func (r *accountRepository) FindByUserIDs(ctx context.Context, userIDs []uuid.UUID) ([]*domain.Account, error) {
	query := `
		SELECT account_number, user_id, balance, created_at, updated_at
		FROM accounts
		WHERE user_id = ANY($1::uuid[])
		ORDER BY account_number
	`

	ids := make([]string, 0, len(userIDs))
	for _, id := range userIDs {
		ids = append(ids, id.String())
	}

	rows, err := getExecutor(ctx, r.db).QueryContext(ctx, query, pq.Array(ids))
	if err != nil {
		return nil, fmt.Errorf("failed to list accounts by user ids: %w", err)
	}
	defer rows.Close()

	return collectAccounts(rows)
}

// rowScanner is satisfied by both *sql.Row and *sql.Rows
type rowScanner interface {
	Scan(dest ...any) error
}

func scanAccount(row rowScanner) (*domain.Account, error) {
	var account domain.Account
	var numberStr string
	var balanceStr string

	err := row.Scan(
		&numberStr,
		&account.UserID,
		&balanceStr,
		&account.CreatedAt,
		&account.UpdatedAt,
	)
	if err != nil {
		return nil, err
	}

	number, err := domain.NewAccountNumber(numberStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse account_number: %w", err)
	}
	account.AccountNumber = number

	balance, err := domain.NewMoneyFromString(balanceStr)
	if err != nil {
		return nil, fmt.Errorf("failed to parse balance: %w", err)
	}
	account.Balance = balance

	return &account, nil
}

func collectAccounts(rows *sql.Rows) ([]*domain.Account, error) {
	accounts := make([]*domain.Account, 0)
	for rows.Next() {
		account, err := scanAccount(rows)
		if err != nil {
			return nil, fmt.Errorf("failed to scan account: %w", err)
		}
		accounts = append(accounts, account)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to iterate accounts: %w", err)
	}
	return accounts, nil
}
