package command

import (
	"context"

	"github.com/budgetbank/budget-api/internal/models"
)

// fakeAccountRepo is an in-memory stand-in for the PostgreSQL repository.
// It returns deep copies so that a failed Save cannot leak partial
// mutations back into the "stored" state.
type fakeAccountRepo struct {
	accounts map[string]*models.Account
	saveErr  error
	findErr  error
}

func newFakeAccountRepo() *fakeAccountRepo {
	return &fakeAccountRepo{accounts: make(map[string]*models.Account)}
}

func copyAccount(a *models.Account) *models.Account {
	cp := *a
	cp.Transactions = make([]models.Transaction, len(a.Transactions))
	copy(cp.Transactions, a.Transactions)
	return &cp
}

func (f *fakeAccountRepo) FindByUser(_ context.Context, user string) (*models.Account, error) {
	if f.findErr != nil {
		return nil, f.findErr
	}
	a, ok := f.accounts[user]
	if !ok {
		return nil, nil
	}
	return copyAccount(a), nil
}

func (f *fakeAccountRepo) Save(_ context.Context, account *models.Account) error {
	if f.saveErr != nil {
		return f.saveErr
	}
	f.accounts[account.User] = copyAccount(account)
	return nil
}

func (f *fakeAccountRepo) DeleteByUser(_ context.Context, user string) (int64, error) {
	if _, ok := f.accounts[user]; !ok {
		return 0, nil
	}
	delete(f.accounts, user)
	return 1, nil
}

type noopViews struct{}

func (noopViews) CacheAccountView(context.Context, *models.Account) {}
func (noopViews) InvalidateAccountView(context.Context, string)     {}

type noopPublisher struct{}

func (noopPublisher) Publish(context.Context, string, string, any) error { return nil }
