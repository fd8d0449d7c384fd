package handler

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora/identity-service/internal/api/metrics"
	"github.com/velora/identity-service/internal/core/domain"
	"github.com/velora/identity-service/internal/core/ports"
)

type AuthHandler struct {
	authService ports.AuthService
}

func NewAuthHandler(authService ports.AuthService) *AuthHandler {
	return &AuthHandler{authService: authService}
}

// Register creates a new account and returns a fresh bearer token.
//
// @Summary      Register a new account
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      registerRequest  true  "Registration details"
// @Success      201   {object}  registerResponse
// @Failure      400   {object}  map[string]any
// @Failure      409   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/register [post]
func (h *AuthHandler) Register(c echo.Context) error {
	var req registerRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Register(c.Request().Context(), ports.RegisterInput{
		Username: req.Username,
		Email:    req.Email,
		Password: req.Password,
		Role:     req.Role,
	})
	if err != nil {
		metrics.RegistrationsTotal.WithLabelValues(registerOutcome(err)).Inc()
		return err
	}
	metrics.RegistrationsTotal.WithLabelValues("created").Inc()

	return c.JSON(http.StatusCreated, registerResponse{
		Message: "account created",
		User: registeredUserResponse{
			ID:       result.Account.ID,
			Username: result.Account.Username,
			Email:    result.Account.Email,
			Role:     result.Account.Role,
		},
		Token: result.Token,
	})
}

// Login authenticates an account and returns a fresh bearer token.
//
// @Summary      Login
// @Tags         auth
// @Accept       json
// @Produce      json
// @Param        body  body      loginRequest  true  "Login credentials"
// @Success      200   {object}  loginResponse
// @Failure      400   {object}  map[string]any
// @Failure      401   {object}  map[string]string
// @Failure      500   {object}  map[string]string
// @Router       /auth/login [post]
func (h *AuthHandler) Login(c echo.Context) error {
	var req loginRequest
	if err := c.Bind(&req); err != nil {
		return echo.NewHTTPError(http.StatusBadRequest, "invalid payload")
	}

	result, err := h.authService.Login(c.Request().Context(), ports.LoginInput{
		Email:    req.Email,
		Password: req.Password,
	})
	if err != nil {
		metrics.LoginsTotal.WithLabelValues(loginOutcome(err)).Inc()
		return err
	}
	metrics.LoginsTotal.WithLabelValues("success").Inc()

	return c.JSON(http.StatusOK, loginResponse{
		Message: "login successful",
		Token:   result.Token,
		User: loginUserResponse{
			ID:    result.Account.ID,
			Email: result.Account.Email,
			Role:  result.Account.Role,
		},
	})
}

func registerOutcome(err error) string {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return "validation_error"
	case errors.Is(err, domain.ErrEmailTaken), errors.Is(err, domain.ErrUsernameTaken):
		return "conflict"
	default:
		return "error"
	}
}

func loginOutcome(err error) string {
	var verrs domain.ValidationErrors
	switch {
	case errors.As(err, &verrs):
		return "validation_error"
	case errors.Is(err, domain.ErrInvalidCredentials):
		return "invalid_credentials"
	default:
		return "error"
	}
}
