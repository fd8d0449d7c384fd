package ports

import (
	"context"

	"github.com/velora/identity-service/internal/core/domain"
)

// AccountRepository defines persistence for accounts.
//
// Insert is the final arbiter of the uniqueness invariant: it must enforce
// username and email uniqueness atomically (a unique constraint checked at
// write time) and report a violation as domain.ErrEmailTaken or
// domain.ErrUsernameTaken, because a check-then-insert sequence alone is
// race-prone. Lookups return domain.ErrAccountNotFound when no account
// matches.
type AccountRepository interface {
	FindByEmail(ctx context.Context, email string) (*domain.Account, error)
	FindByUsername(ctx context.Context, username string) (*domain.Account, error)
	FindByID(ctx context.Context, id string) (*domain.Account, error)
	Insert(ctx context.Context, account *domain.Account) (*domain.Account, error)
	List(ctx context.Context) ([]domain.Account, error)
}
