package query

import (
	"context"
	"errors"
	"testing"

	"github.com/budgetbank/budget-api/internal/cqrs"
	"github.com/budgetbank/budget-api/internal/models"
)

type fakeAccountReader struct {
	accounts map[string]*models.Account
}

func (f *fakeAccountReader) GetByUser(_ context.Context, user string) (*models.Account, error) {
	a, ok := f.accounts[user]
	if !ok {
		return nil, models.ErrAccountNotFound
	}
	return a, nil
}

func newReader() *fakeAccountReader {
	return &fakeAccountReader{accounts: map[string]*models.Account{
		"alice": {
			User: "alice", Currency: "USD", Description: "alice's budget", Balance: -4.5,
			Transactions: []models.Transaction{
				{ID: "tx-1", Date: "2024-01-01", Object: "coffee", Amount: -4.5},
				{ID: "tx-2", Date: "2024-01-02", Object: "tea", Amount: -3},
			},
		},
	}}
}

func TestGetAccount(t *testing.T) {
	svc := NewAccountQueryService(newReader())

	account, err := svc.GetAccount(context.Background(), cqrs.GetAccountQuery{User: "alice"})
	if err != nil {
		t.Fatalf("GetAccount failed: %v", err)
	}
	if account.User != "alice" || len(account.Transactions) != 2 {
		t.Errorf("unexpected account: %+v", account)
	}

	_, err = svc.GetAccount(context.Background(), cqrs.GetAccountQuery{User: "bob"})
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound, got %v", err)
	}
}

func TestListTransactions(t *testing.T) {
	svc := NewAccountQueryService(newReader())

	transactions, err := svc.ListTransactions(context.Background(), cqrs.ListTransactionsQuery{User: "alice"})
	if err != nil {
		t.Fatalf("ListTransactions failed: %v", err)
	}
	if len(transactions) != 2 || transactions[0].ID != "tx-1" || transactions[1].ID != "tx-2" {
		t.Errorf("expected ledger in append order, got %v", transactions)
	}
}

func TestGetTransaction(t *testing.T) {
	svc := NewAccountQueryService(newReader())

	tx, err := svc.GetTransaction(context.Background(), cqrs.GetTransactionQuery{User: "alice", TransactionID: "tx-2"})
	if err != nil {
		t.Fatalf("GetTransaction failed: %v", err)
	}
	if tx.Object != "tea" {
		t.Errorf("expected tea, got %q", tx.Object)
	}

	_, err = svc.GetTransaction(context.Background(), cqrs.GetTransactionQuery{User: "alice", TransactionID: "missing"})
	if !errors.Is(err, models.ErrTransactionNotFound) {
		t.Errorf("expected ErrTransactionNotFound, got %v", err)
	}
}
