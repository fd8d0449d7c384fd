package middleware

import (
	"net/http"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/velora/identity-service/internal/api/metrics"
	"github.com/velora/identity-service/internal/core/ports"
)

// Context keys under which the access gate exposes the decoded identity.
const (
	CtxAccountID = "account_id"
	CtxRole      = "role"
)

// Auth is the access gate: it extracts the bearer token, verifies it through
// the token issuer and injects the decoded identity into the request context.
// Missing, malformed and expired tokens are rejected with an identical 401 —
// the caller learns nothing about which check failed.
func Auth(tokens ports.TokenIssuer) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			authHeader := c.Request().Header.Get("Authorization")
			if authHeader == "" {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "missing authorization header")
			}

			parts := strings.SplitN(authHeader, " ", 2)
			if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid authorization header")
			}

			identity, err := tokens.Verify(parts[1])
			if err != nil {
				metrics.TokenVerificationsTotal.WithLabelValues("rejected").Inc()
				return echo.NewHTTPError(http.StatusUnauthorized, "invalid token")
			}
			metrics.TokenVerificationsTotal.WithLabelValues("ok").Inc()

			c.Set(CtxAccountID, identity.AccountID)
			c.Set(CtxRole, identity.Role)

			return next(c)
		}
	}
}
