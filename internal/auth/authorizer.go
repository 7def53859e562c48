package auth

import (
	"github.com/google/uuid"

	apperrors "jobboard/internal/errors"
)

// Role is the closed set of roles a login-capable user may hold.
type Role string

const (
	// RoleAdmin may perform any operation.
	RoleAdmin Role = "admin"
	// RoleEmployer may mutate resources owned by its affiliated employer.
	RoleEmployer Role = "employer"
)

// ParseRole maps a stored role string to a Role, defaulting to employer.
func ParseRole(s string) Role {
	if s == string(RoleAdmin) {
		return RoleAdmin
	}
	return RoleEmployer
}

// Actor is the resolved identity of an authenticated request: subject id, role
// and employer affiliation, derived from a validated token plus a live user
// record.
type Actor struct {
	UserID     uuid.UUID
	Role       Role
	EmployerID *uuid.UUID
}

// IsAdmin reports whether the actor holds the admin role.
func (a Actor) IsAdmin() bool {
	return a.Role == RoleAdmin
}

// Authorize checks that the actor holds the required role. Admin passes every
// role check. The check is pure: no side effects, callers abort on error.
func Authorize(actor Actor, required Role) error {
	if actor.Role == RoleAdmin {
		return nil
	}
	if actor.Role != required {
		return apperrors.ErrForbidden
	}
	return nil
}

// AuthorizeOwner checks that the actor may mutate or view-in-detail a resource
// owned by ownerID. Admin always passes; an employer passes only when its own
// employer affiliation matches the owner.
func AuthorizeOwner(actor Actor, ownerID uuid.UUID) error {
	if actor.Role == RoleAdmin {
		return nil
	}
	if actor.EmployerID == nil || *actor.EmployerID != ownerID {
		return apperrors.ErrForbidden
	}
	return nil
}

// AuthorizeSelf checks that the actor is the given user or an admin. Used for
// recipient-scoped resources such as notifications.
func AuthorizeSelf(actor Actor, userID uuid.UUID) error {
	if actor.Role == RoleAdmin {
		return nil
	}
	if actor.UserID != userID {
		return apperrors.ErrForbidden
	}
	return nil
}
