package repository

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/budgetbank/budget-api/internal/models"
)

// AccountRepository persists whole account aggregates against the
// PostgreSQL write store (source of truth). The ledger travels with the
// account: FindByUser loads it in append order, Save writes the account
// row and its transaction rows inside one SQL transaction, so balance and
// ledger can never diverge in storage.
type AccountRepository struct {
	db *sql.DB
}

func NewAccountRepository(db *sql.DB) *AccountRepository {
	return &AccountRepository{db: db}
}

// FindByUser loads an account and its ordered transaction sequence.
// Returns (nil, nil) when no account exists for the user.
func (r *AccountRepository) FindByUser(ctx context.Context, user string) (*models.Account, error) {
	query := `
		SELECT user_name, currency, description, balance, created_at, updated_at
		FROM accounts
		WHERE user_name = $1
	`
	var account models.Account
	err := r.db.QueryRowContext(ctx, query, user).Scan(
		&account.User, &account.Currency, &account.Description,
		&account.Balance, &account.CreatedAt, &account.UpdatedAt,
	)
	if err == sql.ErrNoRows {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("failed to get account: %w", err)
	}

	txQuery := `
		SELECT id, tx_date, object, amount
		FROM transactions
		WHERE account_user = $1
		ORDER BY position
	`
	rows, err := r.db.QueryContext(ctx, txQuery, user)
	if err != nil {
		return nil, fmt.Errorf("failed to list transactions: %w", err)
	}
	defer rows.Close()

	account.Transactions = []models.Transaction{}
	for rows.Next() {
		var tx models.Transaction
		if err := rows.Scan(&tx.ID, &tx.Date, &tx.Object, &tx.Amount); err != nil {
			return nil, fmt.Errorf("failed to scan transaction: %w", err)
		}
		account.Transactions = append(account.Transactions, tx)
	}
	if err := rows.Err(); err != nil {
		return nil, fmt.Errorf("failed to read transactions: %w", err)
	}
	return &account, nil
}

// Save upserts the account row and rewrites its transaction rows in a
// single SQL transaction. Ledgers are per-user and small; replacing the
// sequence wholesale keeps the stored order exactly equal to the in-memory
// append order.
func (r *AccountRepository) Save(ctx context.Context, account *models.Account) error {
	tx, err := r.db.BeginTx(ctx, nil)
	if err != nil {
		return fmt.Errorf("failed to begin save: %w", err)
	}
	defer tx.Rollback()

	upsert := `
		INSERT INTO accounts (user_name, currency, description, balance, created_at, updated_at)
		VALUES ($1, $2, $3, $4, $5, $6)
		ON CONFLICT (user_name) DO UPDATE
		SET currency = EXCLUDED.currency,
		    description = EXCLUDED.description,
		    balance = EXCLUDED.balance,
		    updated_at = EXCLUDED.updated_at
	`
	if _, err := tx.ExecContext(ctx, upsert,
		account.User, account.Currency, account.Description,
		account.Balance, account.CreatedAt, account.UpdatedAt,
	); err != nil {
		return fmt.Errorf("failed to save account: %w", err)
	}

	if _, err := tx.ExecContext(ctx,
		`DELETE FROM transactions WHERE account_user = $1`, account.User,
	); err != nil {
		return fmt.Errorf("failed to clear transactions: %w", err)
	}

	insert := `
		INSERT INTO transactions (account_user, id, tx_date, object, amount, position)
		VALUES ($1, $2, $3, $4, $5, $6)
	`
	for i, t := range account.Transactions {
		if _, err := tx.ExecContext(ctx, insert,
			account.User, t.ID, t.Date, t.Object, t.Amount, i,
		); err != nil {
			return fmt.Errorf("failed to save transaction %s: %w", t.ID, err)
		}
	}

	if err := tx.Commit(); err != nil {
		return fmt.Errorf("failed to commit save: %w", err)
	}
	return nil
}

// DeleteByUser removes the account and, via the cascade on account_user,
// its whole ledger. Returns the number of accounts deleted, which the
// caller uses to report not-found.
func (r *AccountRepository) DeleteByUser(ctx context.Context, user string) (int64, error) {
	result, err := r.db.ExecContext(ctx, `DELETE FROM accounts WHERE user_name = $1`, user)
	if err != nil {
		return 0, fmt.Errorf("failed to delete account: %w", err)
	}
	deleted, err := result.RowsAffected()
	if err != nil {
		return 0, fmt.Errorf("failed to check rows affected: %w", err)
	}
	return deleted, nil
}
