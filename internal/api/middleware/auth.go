package middleware

import (
	"errors"
	"net/http"

	echojwt "github.com/labstack/echo-jwt/v4"
	"github.com/labstack/echo/v4"

	"github.com/Farhadhossain379/pythonFastApi/internal/api/metrics"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
)

// IdentityContextKey is the echo context key holding the verified domain.Identity.
const IdentityContextKey = "identity"

// Messages returned by the gate.
const (
	msgNotAuthenticated = "Not authenticated"
	msgTokenExpired     = "Token expired"
	msgInvalidToken     = "Invalid token"
	msgInvalidPayload   = "Invalid token payload"
)

// Auth guards a route group with a bearer token. The token is read from
// "Authorization: Bearer <token>" and checked by tokens; on success the
// identity is stored on the echo context and in the request context.
func Auth(tokens ports.TokenVerifier) echo.MiddlewareFunc {
	return echojwt.WithConfig(echojwt.Config{
		ContextKey:  IdentityContextKey,
		TokenLookup: "header:" + echo.HeaderAuthorization + ":Bearer ",
		ParseTokenFunc: func(c echo.Context, auth string) (interface{}, error) {
			identity, err := tokens.Verify(auth)
			if err != nil {
				return nil, err
			}
			req := c.Request()
			c.SetRequest(req.WithContext(domain.ContextWithIdentity(req.Context(), identity)))
			metrics.TokenVerificationsTotal.WithLabelValues("valid").Inc()
			return identity, nil
		},
		ErrorHandler: func(c echo.Context, err error) error {
			outcome, msg := classify(err)
			metrics.TokenVerificationsTotal.WithLabelValues(outcome).Inc()
			c.Response().Header().Set(echo.HeaderWWWAuthenticate, "Bearer")
			return echo.NewHTTPError(http.StatusUnauthorized, msg).SetInternal(err)
		},
	})
}

// classify maps a gate failure to a metric outcome and a client message.
// Anything that is not a token error means no bearer credential was found.
func classify(err error) (outcome, msg string) {
	switch {
	case errors.Is(err, domain.ErrTokenExpired):
		return "expired", msgTokenExpired
	case errors.Is(err, domain.ErrTokenPayload):
		return "payload", msgInvalidPayload
	case errors.Is(err, domain.ErrTokenMalformed):
		return "malformed", msgInvalidToken
	default:
		return "missing", msgNotAuthenticated
	}
}
