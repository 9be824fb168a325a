package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/inkwell/publishing-api/internal/api/middleware"
)

// ctxUserID extracts the user id injected by the Auth middleware and
// fast-fails before any service call: an empty id means the middleware did
// not run (or the token carried no subject), so the request cannot be
// attributed to an identity.
func ctxUserID(c echo.Context) (string, error) {
	userID, _ := c.Get(middleware.ContextUserID).(string)
	if userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	return userID, nil
}
