package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/velora/identity-service/internal/core/ports"
)

// AccountHandler serves the protected account read endpoints.
type AccountHandler struct {
	repo   ports.AccountRepository
	cache  ports.ProfileCache
	logger zerolog.Logger
}

func NewAccountHandler(repo ports.AccountRepository, cache ports.ProfileCache, logger zerolog.Logger) *AccountHandler {
	return &AccountHandler{repo: repo, cache: cache, logger: logger}
}

// Me returns the calling account's own summary, read through the profile
// cache with the store as fallback.
//
// @Summary      Current account profile
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  profileResponse
// @Failure      401  {object}  map[string]string
// @Router       /users/me [get]
func (h *AccountHandler) Me(c echo.Context) error {
	accountID, _, err := ctxIdentity(c)
	if err != nil {
		return err
	}
	ctx := c.Request().Context()

	if h.cache != nil {
		cached, err := h.cache.Get(ctx, accountID)
		if err != nil {
			h.logger.Warn().Err(err).Msg("profile cache read failed")
		} else if cached != nil {
			return c.JSON(http.StatusOK, profileResponse{User: registeredUserResponse{
				ID:       cached.ID,
				Username: cached.Username,
				Email:    cached.Email,
				Role:     cached.Role,
			}})
		}
	}

	account, err := h.repo.FindByID(ctx, accountID)
	if err != nil {
		return err
	}

	if h.cache != nil {
		if err := h.cache.Set(ctx, account); err != nil {
			h.logger.Warn().Err(err).Msg("profile cache write failed")
		}
	}

	return c.JSON(http.StatusOK, profileResponse{User: registeredUserResponse{
		ID:       account.ID,
		Username: account.Username,
		Email:    account.Email,
		Role:     account.Role,
	}})
}

// List returns summaries of every account. Admin only; the RBAC middleware
// enforces the role before this handler runs.
//
// @Summary      List accounts
// @Tags         accounts
// @Produce      json
// @Success      200  {object}  accountListResponse
// @Failure      401  {object}  map[string]string
// @Failure      403  {object}  map[string]string
// @Router       /admin/accounts [get]
func (h *AccountHandler) List(c echo.Context) error {
	accounts, err := h.repo.List(c.Request().Context())
	if err != nil {
		return err
	}

	out := make([]registeredUserResponse, 0, len(accounts))
	for _, a := range accounts {
		out = append(out, registeredUserResponse{
			ID:       a.ID,
			Username: a.Username,
			Email:    a.Email,
			Role:     a.Role,
		})
	}

	return c.JSON(http.StatusOK, accountListResponse{Accounts: out, Total: len(out)})
}
