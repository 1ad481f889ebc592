package handlers

import (
	"net/http"

	"github.com/labstack/echo/v4"
)

// currentUserID returns the authenticated user's public address placed in the
// context by the JWT middleware.
func currentUserID(c echo.Context) (string, error) {
	userID, ok := c.Get("userID").(string)
	if !ok || userID == "" {
		return "", echo.NewHTTPError(http.StatusUnauthorized, "Missing authenticated user")
	}
	return userID, nil
}
