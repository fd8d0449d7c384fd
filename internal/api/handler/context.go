package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/velora/identity-service/internal/api/middleware"
)

// ctxIdentity extracts the identity injected by the Auth middleware. A
// missing account id means the gate did not run for this route; treat it as
// an unauthenticated request rather than a server fault.
func ctxIdentity(c echo.Context) (accountID, role string, err error) {
	accountID, _ = c.Get(middleware.CtxAccountID).(string)
	if accountID == "" {
		return "", "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	role, _ = c.Get(middleware.CtxRole).(string)
	return accountID, role, nil
}
