package command

import (
	"context"
	"strings"
	"time"

	"github.com/rs/zerolog/log"

	"github.com/budgetbank/budget-api/internal/cqrs"
	"github.com/budgetbank/budget-api/internal/events"
	"github.com/budgetbank/budget-api/internal/models"
)

// AccountRepository is the persistence collaborator for the write side.
// Storage failures returned here are surfaced to the caller unchanged;
// the services never retry.
type AccountRepository interface {
	// FindByUser returns (nil, nil) when no account exists for the user.
	FindByUser(ctx context.Context, user string) (*models.Account, error)
	// Save persists the whole aggregate atomically: account row plus the
	// full ordered transaction sequence.
	Save(ctx context.Context, account *models.Account) error
	// DeleteByUser removes the account and its ledger, reporting how many
	// accounts were deleted.
	DeleteByUser(ctx context.Context, user string) (int64, error)
}

// AccountViewCacher keeps the Redis read model in step with mutations.
type AccountViewCacher interface {
	CacheAccountView(ctx context.Context, account *models.Account)
	InvalidateAccountView(ctx context.Context, user string)
}

// EventPublisher appends domain events to a stream. Failures are logged,
// never propagated: the write store already holds the truth.
type EventPublisher interface {
	Publish(ctx context.Context, stream, eventType string, data any) error
}

// AccountCommandService owns account identity and existence: it enforces
// user uniqueness on create and existence on delete.
type AccountCommandService struct {
	repo      AccountRepository
	views     AccountViewCacher
	publisher EventPublisher
}

func NewAccountCommandService(repo AccountRepository, views AccountViewCacher, publisher EventPublisher) *AccountCommandService {
	return &AccountCommandService{repo: repo, views: views, publisher: publisher}
}

// CreateAccount opens an account with an empty ledger. The description
// defaults to "<user>'s budget"; the initial balance was already coerced
// to a number at the boundary and becomes the base offset of the balance.
func (s *AccountCommandService) CreateAccount(ctx context.Context, cmd cqrs.CreateAccountCommand) (*models.Account, error) {
	if strings.TrimSpace(cmd.User) == "" || strings.TrimSpace(cmd.Currency) == "" {
		return nil, models.ErrMissingParameter
	}

	existing, err := s.repo.FindByUser(ctx, cmd.User)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, models.ErrDuplicateUser
	}

	description := cmd.Description
	if description == "" {
		description = cmd.User + "'s budget"
	}

	now := time.Now().UTC()
	account := &models.Account{
		User:         cmd.User,
		Currency:     cmd.Currency,
		Description:  description,
		Balance:      cmd.InitialBalance,
		Transactions: []models.Transaction{},
		CreatedAt:    now,
		UpdatedAt:    now,
	}
	if err := s.repo.Save(ctx, account); err != nil {
		return nil, err
	}

	s.views.CacheAccountView(ctx, account)
	if err := s.publisher.Publish(ctx, events.BudgetEventsStream, events.AccountCreated, events.AccountCreatedEvent{
		User:     account.User,
		Currency: account.Currency,
		Balance:  account.Balance,
	}); err != nil {
		log.Warn().Err(err).Str("user", account.User).Msg("failed to publish account.created event")
	}
	return account, nil
}

// DeleteAccount removes the account and its whole ledger.
func (s *AccountCommandService) DeleteAccount(ctx context.Context, cmd cqrs.DeleteAccountCommand) error {
	deleted, err := s.repo.DeleteByUser(ctx, cmd.User)
	if err != nil {
		return err
	}
	if deleted == 0 {
		return models.ErrAccountNotFound
	}

	s.views.InvalidateAccountView(ctx, cmd.User)
	if err := s.publisher.Publish(ctx, events.BudgetEventsStream, events.AccountDeleted, events.AccountDeletedEvent{
		User: cmd.User,
	}); err != nil {
		log.Warn().Err(err).Str("user", cmd.User).Msg("failed to publish account.deleted event")
	}
	return nil
}
