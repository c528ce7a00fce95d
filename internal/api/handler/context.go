package handler

import (
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
)

// currentIdentity returns the identity the auth gate attached to the request.
// Its absence means the route was mounted outside the gate.
func currentIdentity(c echo.Context) (domain.Identity, error) {
	id, ok := domain.IdentityFromContext(c.Request().Context())
	if !ok {
		return domain.Identity{}, echo.NewHTTPError(http.StatusUnauthorized, "Not authenticated")
	}
	return id, nil
}
