package command

import (
	"context"
	"math"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/budgetbank/budget-api/internal/cqrs"
	"github.com/budgetbank/budget-api/internal/events"
	"github.com/budgetbank/budget-api/internal/models"
	"github.com/budgetbank/budget-api/internal/utils"
)

// LedgerCommandService owns the transaction lifecycle of an account:
// content-hash id derivation, dedup, append/remove, and the balance that
// must always equal the initial balance plus the sum of the ledger.
type LedgerCommandService struct {
	repo      AccountRepository
	views     AccountViewCacher
	publisher EventPublisher
}

func NewLedgerCommandService(repo AccountRepository, views AccountViewCacher, publisher EventPublisher) *LedgerCommandService {
	return &LedgerCommandService{repo: repo, views: views, publisher: publisher}
}

// AddTransaction appends one entry to the user's ledger and moves the
// balance by its amount. Append and balance update land in one Save, so
// either both persist or neither does. Recording the same (date, object,
// amount) triple twice is rejected via the derived id.
func (s *LedgerCommandService) AddTransaction(ctx context.Context, cmd cqrs.AddTransactionCommand) (*models.Transaction, error) {
	if strings.TrimSpace(cmd.Date) == "" || strings.TrimSpace(cmd.Object) == "" {
		return nil, models.ErrMissingParameter
	}
	if math.IsNaN(cmd.Amount) || math.IsInf(cmd.Amount, 0) {
		return nil, models.ErrInvalidAmount
	}

	account, err := s.repo.FindByUser(ctx, cmd.User)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, models.ErrAccountNotFound
	}

	id := utils.DeriveTransactionID(cmd.Date, cmd.Object, cmd.Amount)
	for _, t := range account.Transactions {
		if t.ID == id {
			return nil, models.ErrDuplicateTransaction
		}
	}

	transaction := models.Transaction{
		ID:     id,
		Date:   cmd.Date,
		Object: cmd.Object,
		Amount: cmd.Amount,
	}
	account.Transactions = append(account.Transactions, transaction)
	account.Balance += cmd.Amount
	account.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, account); err != nil {
		return nil, err
	}

	s.views.CacheAccountView(ctx, account)
	if err := s.publisher.Publish(ctx, events.BudgetEventsStream, events.TransactionAdded, events.TransactionAddedEvent{
		User:          account.User,
		TransactionID: transaction.ID,
		Date:          transaction.Date,
		Object:        transaction.Object,
		Amount:        transaction.Amount,
		NewBalance:    account.Balance,
	}); err != nil {
		log.Warn().Err(err).Str("user", account.User).Msg("failed to publish transaction.added event")
	}
	return &transaction, nil
}

// RemoveTransaction removes one ledger entry by id and moves the balance
// back by its amount. If the store ever held duplicate ids, only the
// first match in sequence order is removed.
func (s *LedgerCommandService) RemoveTransaction(ctx context.Context, cmd cqrs.RemoveTransactionCommand) error {
	account, err := s.repo.FindByUser(ctx, cmd.User)
	if err != nil {
		return err
	}
	if account == nil {
		return models.ErrAccountNotFound
	}

	idx := -1
	for i, t := range account.Transactions {
		if t.ID == cmd.TransactionID {
			idx = i
			break
		}
	}
	if idx < 0 {
		return models.ErrTransactionNotFound
	}

	removed := account.Transactions[idx]
	account.Transactions = append(account.Transactions[:idx], account.Transactions[idx+1:]...)
	account.Balance -= removed.Amount
	account.UpdatedAt = time.Now().UTC()

	if err := s.repo.Save(ctx, account); err != nil {
		return err
	}

	s.views.CacheAccountView(ctx, account)
	if err := s.publisher.Publish(ctx, events.BudgetEventsStream, events.TransactionRemoved, events.TransactionRemovedEvent{
		User:          account.User,
		TransactionID: removed.ID,
		Amount:        removed.Amount,
		NewBalance:    account.Balance,
	}); err != nil {
		log.Warn().Err(err).Str("user", account.User).Msg("failed to publish transaction.removed event")
	}
	return nil
}
