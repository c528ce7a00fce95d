package middleware

import (
	"errors"
	"math"
	"net/http"
	"strconv"

	"github.com/labstack/echo/v4"
	"github.com/rs/zerolog"

	"github.com/Farhadhossain379/pythonFastApi/internal/api/metrics"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/domain"
	"github.com/Farhadhossain379/pythonFastApi/internal/core/ports"
)

const msgTooManyAttempts = "Too many failed login attempts. Try again later."

// LoginThrottle locks a client IP out of the wrapped login route after
// repeated invalid credentials. Limiter errors are logged and let the
// request through.
func LoginThrottle(limiter ports.LoginLimiter, log zerolog.Logger) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			ctx := c.Request().Context()
			key := c.RealIP()

			locked, err := limiter.LockedFor(ctx, key)
			if err != nil {
				log.Warn().Err(err).Str("ip", key).Msg("login limiter unavailable, allowing request")
			} else if locked > 0 {
				metrics.LoginsTotal.WithLabelValues("locked").Inc()
				c.Response().Header().Set(echo.HeaderRetryAfter, strconv.Itoa(int(math.Ceil(locked.Seconds()))))
				return echo.NewHTTPError(http.StatusTooManyRequests, msgTooManyAttempts).SetInternal(domain.ErrTooManyAttempts)
			}

			herr := next(c)

			switch {
			case errors.Is(herr, domain.ErrInvalidCredentials):
				remaining, err := limiter.RecordFailure(ctx, key)
				if err != nil {
					log.Warn().Err(err).Str("ip", key).Msg("failed to record login failure")
				} else if remaining == 0 {
					log.Warn().Str("ip", key).Msg("login locked after repeated failures")
				}
			case herr == nil:
				if err := limiter.Reset(ctx, key); err != nil {
					log.Warn().Err(err).Str("ip", key).Msg("failed to reset login attempts")
				}
			}
			return herr
		}
	}
}
