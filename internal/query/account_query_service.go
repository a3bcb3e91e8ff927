package query

import (
	"context"

	"github.com/budgetbank/budget-api/internal/cqrs"
	"github.com/budgetbank/budget-api/internal/models"
)

// AccountReader serves account views. The production implementation reads
// Redis first and falls back to PostgreSQL; it returns
// models.ErrAccountNotFound when the user has no account.
type AccountReader interface {
	GetByUser(ctx context.Context, user string) (*models.Account, error)
}

type AccountQueryService struct {
	readRepo AccountReader
}

func NewAccountQueryService(readRepo AccountReader) *AccountQueryService {
	return &AccountQueryService{readRepo: readRepo}
}

// GetAccount fetches a single account, ledger included.
func (s *AccountQueryService) GetAccount(ctx context.Context, q cqrs.GetAccountQuery) (*models.Account, error) {
	return s.readRepo.GetByUser(ctx, q.User)
}

// ListTransactions fetches the full ledger of an account in append order.
func (s *AccountQueryService) ListTransactions(ctx context.Context, q cqrs.ListTransactionsQuery) ([]models.Transaction, error) {
	account, err := s.readRepo.GetByUser(ctx, q.User)
	if err != nil {
		return nil, err
	}
	return account.Transactions, nil
}

// GetTransaction fetches one ledger entry by id. With duplicate ids in
// the sequence (which add-side dedup should prevent) the first match wins,
// mirroring removal.
func (s *AccountQueryService) GetTransaction(ctx context.Context, q cqrs.GetTransactionQuery) (*models.Transaction, error) {
	account, err := s.readRepo.GetByUser(ctx, q.User)
	if err != nil {
		return nil, err
	}
	for i := range account.Transactions {
		if account.Transactions[i].ID == q.TransactionID {
			return &account.Transactions[i], nil
		}
	}
	return nil, models.ErrTransactionNotFound
}
