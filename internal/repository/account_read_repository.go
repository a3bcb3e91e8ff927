package repository

import (
	"context"

	goredis "github.com/redis/go-redis/v9"

	"github.com/budgetbank/budget-api/internal/models"
	budgetredis "github.com/budgetbank/budget-api/internal/redis"
)

const accountViewKeyPrefix = "account:view:"

// AccountReadRepository serves account reads. Redis holds the read model
// (the full account, ledger included); cold reads fall back to the
// PostgreSQL write store and warm the cache on the way out.
type AccountReadRepository struct {
	writeRepo *AccountRepository
	cache     *budgetredis.ViewCache[models.Account]
}

func NewAccountReadRepository(writeRepo *AccountRepository, redisClient *goredis.Client) *AccountReadRepository {
	return &AccountReadRepository{
		writeRepo: writeRepo,
		cache:     budgetredis.NewViewCache[models.Account](redisClient, 0),
	}
}

// GetByUser returns the account view, trying Redis first then PostgreSQL.
// Returns models.ErrAccountNotFound when neither store knows the user.
func (r *AccountReadRepository) GetByUser(ctx context.Context, user string) (*models.Account, error) {
	if account, ok := r.cache.Get(ctx, accountViewKeyPrefix+user); ok {
		return account, nil
	}

	account, err := r.writeRepo.FindByUser(ctx, user)
	if err != nil {
		return nil, err
	}
	if account == nil {
		return nil, models.ErrAccountNotFound
	}

	r.CacheAccountView(ctx, account)
	return account, nil
}

// CacheAccountView stores or refreshes the read model for an account.
// The command services call this after every mutation.
func (r *AccountReadRepository) CacheAccountView(ctx context.Context, account *models.Account) {
	r.cache.Set(ctx, accountViewKeyPrefix+account.User, account)
}

// InvalidateAccountView removes the read model entry for a deleted account.
func (r *AccountReadRepository) InvalidateAccountView(ctx context.Context, user string) {
	r.cache.Delete(ctx, accountViewKeyPrefix+user)
}

// RefreshByUser reloads the view from the write store. Used by the event
// projector; refreshing is idempotent, so duplicate event deliveries
// converge on the same state.
func (r *AccountReadRepository) RefreshByUser(ctx context.Context, user string) error {
	account, err := r.writeRepo.FindByUser(ctx, user)
	if err != nil {
		return err
	}
	if account == nil {
		r.InvalidateAccountView(ctx, user)
		return nil
	}
	r.CacheAccountView(ctx, account)
	return nil
}
