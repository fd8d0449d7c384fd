package redis

import (
	"context"
	"encoding/json"
	"fmt"
	"time"

	"github.com/redis/go-redis/v9"

	"github.com/velora/identity-service/internal/core/domain"
)

const profileTTL = 15 * time.Minute

// ProfileCache is a read-through cache for account summaries, keyed by
// account id. It backs the protected profile endpoint so that repeated reads
// of the caller's own account skip the store. The password hash is never
// cached.
type ProfileCache struct {
	client *redis.Client
}

// NewProfileCache creates a ProfileCache wrapping the given Redis client.
func NewProfileCache(client *redis.Client) *ProfileCache {
	return &ProfileCache{client: client}
}

type cachedProfile struct {
	ID        string    `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	Role      string    `json:"role"`
	CreatedAt time.Time `json:"created_at"`
}

// Get returns the cached account, or (nil, nil) on a miss.
func (p *ProfileCache) Get(ctx context.Context, accountID string) (*domain.Account, error) {
	raw, err := p.client.Get(ctx, p.key(accountID)).Bytes()
	if err == redis.Nil {
		return nil, nil
	}
	if err != nil {
		return nil, fmt.Errorf("profile cache get: %w", err)
	}

	var cp cachedProfile
	if err := json.Unmarshal(raw, &cp); err != nil {
		return nil, fmt.Errorf("profile cache decode: %w", err)
	}
	return &domain.Account{
		ID:        cp.ID,
		Username:  cp.Username,
		Email:     cp.Email,
		Role:      cp.Role,
		CreatedAt: cp.CreatedAt,
	}, nil
}

// Set stores the account summary (expires after profileTTL).
func (p *ProfileCache) Set(ctx context.Context, account *domain.Account) error {
	raw, err := json.Marshal(cachedProfile{
		ID:        account.ID,
		Username:  account.Username,
		Email:     account.Email,
		Role:      account.Role,
		CreatedAt: account.CreatedAt,
	})
	if err != nil {
		return fmt.Errorf("profile cache encode: %w", err)
	}
	return p.client.Set(ctx, p.key(account.ID), raw, profileTTL).Err()
}

func (p *ProfileCache) key(accountID string) string {
	return "profile:" + accountID
}
