package ports

import (
	"context"

	"github.com/velora/identity-service/internal/core/domain"
)

// RegisterInput carries the raw registration request. Self-registration may
// only produce regular accounts; admin roles are assigned out-of-band, so the
// only accepted role value is "user" (or empty, which defaults to it).
type RegisterInput struct {
	Username string `validate:"required,alphanum,min=3,max=30"`
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8,strongpw"`
	Role     string `validate:"omitempty,oneof=user"`
}

// LoginInput carries the raw authentication request.
type LoginInput struct {
	Email    string `validate:"required,email"`
	Password string `validate:"required,min=8"`
}

// AuthResult pairs the affected account with a freshly issued bearer token.
type AuthResult struct {
	Account *domain.Account
	Token   string
}

type AuthService interface {
	Register(ctx context.Context, in RegisterInput) (*AuthResult, error)
	Login(ctx context.Context, in LoginInput) (*AuthResult, error)
}
