package middleware

import (
	"errors"
	"net/http"

	"github.com/labstack/echo/v4"

	"github.com/plastifind/collection-system/internal/api/metrics"
	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/policy"
)

// Require gates a route on one policy operation. The services re-check the
// same table before writing; this keeps obviously unauthorized requests from
// ever reaching them.
func Require(op policy.Operation) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			actor, err := ActorFromContext(c)
			if err != nil {
				return err
			}
			if err := policy.Authorize(actor, op); err != nil {
				if errors.Is(err, domain.ErrAccountSuspended) {
					metrics.AuthorizationDeniedTotal.WithLabelValues("suspended").Inc()
					return c.JSON(http.StatusForbidden, map[string]string{"error": "account suspended"})
				}
				metrics.AuthorizationDeniedTotal.WithLabelValues("forbidden").Inc()
				return c.JSON(http.StatusForbidden, map[string]string{"error": "forbidden"})
			}
			return next(c)
		}
	}
}

// ActorFromContext rebuilds the ActorContext from the claims the Auth
// middleware injected. A missing role means the middleware never ran.
func ActorFromContext(c echo.Context) (domain.ActorContext, error) {
	role, _ := c.Get("role").(string)
	if role == "" {
		return domain.ActorContext{}, echo.NewHTTPError(http.StatusUnauthorized, "missing authentication claims")
	}
	id, _ := c.Get("actor_id").(string)
	if id == "" {
		return domain.ActorContext{}, echo.NewHTTPError(http.StatusUnauthorized, "token missing actor identity")
	}
	status, _ := c.Get("account_status").(string)
	if status == "" {
		status = string(domain.AccountActive)
	}

	return domain.ActorContext{
		ID:     id,
		Role:   domain.Role(role),
		Status: domain.AccountStatus(status),
	}, nil
}
