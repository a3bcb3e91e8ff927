package command

import (
	"context"
	"errors"
	"testing"

	"github.com/budgetbank/budget-api/internal/cqrs"
	"github.com/budgetbank/budget-api/internal/models"
)

func newAccountService(repo *fakeAccountRepo) *AccountCommandService {
	return NewAccountCommandService(repo, noopViews{}, noopPublisher{})
}

func TestCreateAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	account, err := svc.CreateAccount(context.Background(), cqrs.CreateAccountCommand{
		User: "alice", Currency: "USD",
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if account.Balance != 0 {
		t.Errorf("expected balance 0, got %v", account.Balance)
	}
	if len(account.Transactions) != 0 {
		t.Errorf("expected empty ledger, got %d entries", len(account.Transactions))
	}
	if account.Description != "alice's budget" {
		t.Errorf("expected default description, got %q", account.Description)
	}
	if account.Currency != "USD" {
		t.Errorf("expected currency USD, got %q", account.Currency)
	}
}

func TestCreateAccountExplicitFields(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	account, err := svc.CreateAccount(context.Background(), cqrs.CreateAccountCommand{
		User: "bob", Currency: "EUR", Description: "holiday fund", InitialBalance: 150,
	})
	if err != nil {
		t.Fatalf("CreateAccount failed: %v", err)
	}
	if account.Description != "holiday fund" {
		t.Errorf("expected explicit description kept, got %q", account.Description)
	}
	if account.Balance != 150 {
		t.Errorf("expected initial balance 150, got %v", account.Balance)
	}
}

func TestCreateAccountDuplicateUser(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	if _, err := svc.CreateAccount(context.Background(), cqrs.CreateAccountCommand{User: "alice", Currency: "USD"}); err != nil {
		t.Fatalf("first create failed: %v", err)
	}
	_, err := svc.CreateAccount(context.Background(), cqrs.CreateAccountCommand{User: "alice", Currency: "EUR"})
	if !errors.Is(err, models.ErrDuplicateUser) {
		t.Errorf("expected ErrDuplicateUser, got %v", err)
	}
}

func TestCreateAccountMissingParameters(t *testing.T) {
	svc := newAccountService(newFakeAccountRepo())

	tests := []struct {
		name string
		cmd  cqrs.CreateAccountCommand
	}{
		{"missing user", cqrs.CreateAccountCommand{Currency: "USD"}},
		{"missing currency", cqrs.CreateAccountCommand{User: "alice"}},
		{"blank user", cqrs.CreateAccountCommand{User: "  ", Currency: "USD"}},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := svc.CreateAccount(context.Background(), tt.cmd); !errors.Is(err, models.ErrMissingParameter) {
				t.Errorf("expected ErrMissingParameter, got %v", err)
			}
		})
	}
}

func TestCreateAccountPersistenceFailure(t *testing.T) {
	repo := newFakeAccountRepo()
	repo.saveErr = errors.New("connection reset")
	svc := newAccountService(repo)

	_, err := svc.CreateAccount(context.Background(), cqrs.CreateAccountCommand{User: "alice", Currency: "USD"})
	if err == nil || errors.Is(err, models.ErrDuplicateUser) {
		t.Fatalf("expected the storage error surfaced unchanged, got %v", err)
	}
	if len(repo.accounts) != 0 {
		t.Errorf("failed create must not leave an account behind")
	}
}

func TestDeleteAccount(t *testing.T) {
	repo := newFakeAccountRepo()
	svc := newAccountService(repo)

	if _, err := svc.CreateAccount(context.Background(), cqrs.CreateAccountCommand{User: "alice", Currency: "USD"}); err != nil {
		t.Fatalf("create failed: %v", err)
	}
	if err := svc.DeleteAccount(context.Background(), cqrs.DeleteAccountCommand{User: "alice"}); err != nil {
		t.Fatalf("DeleteAccount failed: %v", err)
	}
	if _, ok := repo.accounts["alice"]; ok {
		t.Errorf("account still present after delete")
	}

	err := svc.DeleteAccount(context.Background(), cqrs.DeleteAccountCommand{User: "alice"})
	if !errors.Is(err, models.ErrAccountNotFound) {
		t.Errorf("expected ErrAccountNotFound on second delete, got %v", err)
	}
}
