package ports

import (
	"context"

	"github.com/velora/identity-service/internal/core/domain"
)

// ProfileCache is a read-through cache in front of the account store for the
// protected profile read path. Get reports a miss as (nil, nil). A cache
// failure is never fatal to the request; callers fall back to the store.
type ProfileCache interface {
	Get(ctx context.Context, accountID string) (*domain.Account, error)
	Set(ctx context.Context, account *domain.Account) error
}
