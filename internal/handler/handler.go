package handler

import (
	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"jobboard/internal/auth"
	"jobboard/internal/errors"
)

// respondError maps a service error onto the wire format.
func respondError(err error) error {
	he := errors.MapErrorToHTTP(err)
	return echo.NewHTTPError(he.StatusCode, he.ToErrorResponse())
}

// requireActor returns the resolved actor or an Unauthorized error. Handlers
// on secured routes always run behind auth.ResolveActor, so a missing actor
// means broken wiring rather than a business failure, but it still must not
// pass.
func requireActor(c echo.Context) (auth.Actor, error) {
	actor, ok := auth.ActorFromContext(c)
	if !ok {
		return auth.Actor{}, respondError(errors.ErrUnauthorized)
	}
	return actor, nil
}

// parseIDParam parses a UUID path parameter.
func parseIDParam(c echo.Context, name string) (uuid.UUID, error) {
	id, err := uuid.Parse(c.Param(name))
	if err != nil {
		return uuid.Nil, respondError(errors.InvalidInput("invalid " + name))
	}
	return id, nil
}
