package middleware

import (
	"errors"
	"fmt"
	"strings"

	"github.com/labstack/echo/v4"

	"github.com/stackit/community-api/internal/api/metrics"
	"github.com/stackit/community-api/internal/auth"
	"github.com/stackit/community-api/internal/core/domain"
)

// Context keys set by Auth on success.
const (
	CtxUserID = "user_id"
	CtxRole   = "role"
)

// Auth validates the bearer token and injects the subject id and role into
// the Echo context. Failures short-circuit the handler and surface as domain
// errors, which the central error handler renders in the uniform envelope.
//
// The role claim is propagated but no route branches on it.
func Auth(codec *auth.Codec) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get("Authorization")
			if header == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_header").Inc()
				return domain.ErrMissingAuthHeader
			}

			parts := strings.SplitN(header, " ", 2)
			if len(parts) != 2 || parts[1] == "" {
				metrics.AuthFailuresTotal.WithLabelValues("missing_token").Inc()
				return domain.ErrMissingToken
			}

			claims, err := codec.Verify(parts[1])
			if err != nil {
				reason := "malformed"
				if errors.Is(err, auth.ErrTokenExpired) {
					reason = "expired"
				}
				metrics.AuthFailuresTotal.WithLabelValues(reason).Inc()
				return fmt.Errorf("%w: %v", domain.ErrAuthFailed, err)
			}

			c.Set(CtxUserID, claims.UserID)
			c.Set(CtxRole, claims.Role)

			return next(c)
		}
	}
}
