package auth

import (
	"context"
	"strings"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	apperrors "jobboard/internal/errors"
	"jobboard/internal/model"
)

// actorContextKey is the echo context key the resolved actor is stored under.
const actorContextKey = "actor"

// UserFinder is the identity-store lookup the middleware needs to turn token
// claims into a live actor.
type UserFinder interface {
	FindByID(ctx context.Context, id uuid.UUID) (*model.User, error)
}

// ResolveActor returns middleware that resolves the bearer token into an Actor
// and attaches it to the request context. A token whose subject no longer
// exists is treated the same as an invalid token.
func ResolveActor(jwtService *JWTService, users UserFinder) echo.MiddlewareFunc {
	return func(next echo.HandlerFunc) echo.HandlerFunc {
		return func(c echo.Context) error {
			header := c.Request().Header.Get(echo.HeaderAuthorization)
			token, ok := bearerToken(header)
			if !ok {
				return unauthorized()
			}

			claims, err := jwtService.ValidateToken(token)
			if err != nil {
				return unauthorized()
			}

			userID, err := uuid.Parse(claims.UserID)
			if err != nil {
				return unauthorized()
			}

			user, err := users.FindByID(c.Request().Context(), userID)
			if err != nil || user == nil {
				return unauthorized()
			}

			c.Set(actorContextKey, Actor{
				UserID:     user.ID,
				Role:       ParseRole(user.Role),
				EmployerID: user.EmployerID,
			})
			return next(c)
		}
	}
}

// ActorFromContext returns the resolved actor attached by ResolveActor.
func ActorFromContext(c echo.Context) (Actor, bool) {
	actor, ok := c.Get(actorContextKey).(Actor)
	return actor, ok
}

func unauthorized() error {
	he := apperrors.MapErrorToHTTP(apperrors.ErrUnauthorized)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

func bearerToken(header string) (string, bool) {
	parts := strings.SplitN(header, " ", 2)
	if len(parts) != 2 || !strings.EqualFold(parts[0], "bearer") || parts[1] == "" {
		return "", false
	}
	return parts[1], true
}
