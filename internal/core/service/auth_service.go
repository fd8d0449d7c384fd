package service

import (
	"context"
	"errors"
	"time"

	"github.com/rs/zerolog"

	"github.com/velora/identity-service/internal/core/domain"
	"github.com/velora/identity-service/internal/core/ports"
)

// AuthService implements the credential lifecycle: registration with
// uniqueness enforcement and authentication with undifferentiated failure.
type AuthService struct {
	repo   ports.AccountRepository
	hasher ports.PasswordHasher
	tokens ports.TokenIssuer
	audit  ports.AuditSink
	logger zerolog.Logger
}

func NewAuthService(repo ports.AccountRepository, hasher ports.PasswordHasher, tokens ports.TokenIssuer, audit ports.AuditSink, logger zerolog.Logger) *AuthService {
	return &AuthService{repo: repo, hasher: hasher, tokens: tokens, audit: audit, logger: logger}
}

// Register validates input, enforces uniqueness, hashes the password,
// persists the account and issues a token. Validation short-circuits before
// any store access; the store's own constraint is the backstop for the race
// between the existence checks and the insert.
func (s *AuthService) Register(ctx context.Context, in ports.RegisterInput) (*ports.AuthResult, error) {
	if verrs := checkInput(in); verrs != nil {
		return nil, verrs
	}

	// Email is checked before username; the first conflict found wins.
	if _, err := s.repo.FindByEmail(ctx, in.Email); err == nil {
		return nil, domain.ErrEmailTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}
	if _, err := s.repo.FindByUsername(ctx, in.Username); err == nil {
		return nil, domain.ErrUsernameTaken
	} else if !errors.Is(err, domain.ErrAccountNotFound) {
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, err
	}

	account := &domain.Account{
		Username:     in.Username,
		Email:        in.Email,
		PasswordHash: hash,
		Role:         domain.RoleUser,
		CreatedAt:    time.Now().UTC(),
	}

	created, err := s.repo.Insert(ctx, account)
	if err != nil {
		// A concurrent registration may have won the race after our lookups;
		// the unique constraint reports it as the same conflict.
		if errors.Is(err, domain.ErrEmailTaken) || errors.Is(err, domain.ErrUsernameTaken) {
			return nil, err
		}
		s.logger.Error().Err(err).Str("username", in.Username).Msg("account insert failed")
		return nil, err
	}

	token, err := s.tokens.Issue(created.ID, created.Role)
	if err != nil {
		return nil, err
	}

	s.audit.Submit(domain.AuditEvent{
		Email:     created.Email,
		AccountID: created.ID,
		Action:    domain.AuditRegistered,
		At:        time.Now().UTC(),
	})
	s.logger.Info().Str("account_id", created.ID).Str("username", created.Username).Msg("account registered")

	return &ports.AuthResult{Account: created, Token: token}, nil
}

// Login verifies credentials and issues a token. A missing account and a
// wrong password both fail with domain.ErrInvalidCredentials so that account
// existence cannot be probed.
func (s *AuthService) Login(ctx context.Context, in ports.LoginInput) (*ports.AuthResult, error) {
	if verrs := checkInput(in); verrs != nil {
		return nil, verrs
	}

	account, err := s.repo.FindByEmail(ctx, in.Email)
	if err != nil {
		if errors.Is(err, domain.ErrAccountNotFound) {
			s.rejectLogin(in.Email, "")
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Verify(in.Password, account.PasswordHash) {
		s.rejectLogin(account.Email, account.ID)
		return nil, domain.ErrInvalidCredentials
	}

	token, err := s.tokens.Issue(account.ID, account.Role)
	if err != nil {
		return nil, err
	}

	s.audit.Submit(domain.AuditEvent{
		Email:     account.Email,
		AccountID: account.ID,
		Action:    domain.AuditLoginOK,
		At:        time.Now().UTC(),
	})
	s.logger.Info().Str("account_id", account.ID).Msg("login succeeded")

	return &ports.AuthResult{Account: account, Token: token}, nil
}

func (s *AuthService) rejectLogin(email, accountID string) {
	s.audit.Submit(domain.AuditEvent{
		Email:     email,
		AccountID: accountID,
		Action:    domain.AuditLoginRejected,
		At:        time.Now().UTC(),
	})
}
