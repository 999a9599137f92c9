// file: internals/helpers/auth/identity.go
package auth

import (
	"strings"

	"github.com/gofiber/fiber/v2"
	"github.com/google/uuid"
)

// Locals keys hydrated by the AuthJWT middleware.
const (
	LocUserID      = "user_id"
	LocInstituteID = "institute_id"
	LocIsAdmin     = "is_admin"
)

// Identity is the explicit requester identity passed into the core instead of
// any ambient session state. InstituteID is nil for tenant-less requesters.
type Identity struct {
	UserID      uuid.UUID
	InstituteID *uuid.UUID
	IsAdmin     bool
}

// GetUserID returns the authenticated user id or 401.
func GetUserID(c *fiber.Ctx) (uuid.UUID, error) {
	raw, _ := c.Locals(LocUserID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Unauthorized")
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return uuid.Nil, fiber.NewError(fiber.StatusUnauthorized, "Invalid user id in token")
	}
	return id, nil
}

// GetInstituteID returns the requester's home institute, or nil when the
// token carries none. Never errors: a missing institute just means the
// requester only sees global content.
func GetInstituteID(c *fiber.Ctx) *uuid.UUID {
	raw, _ := c.Locals(LocInstituteID).(string)
	raw = strings.TrimSpace(raw)
	if raw == "" {
		return nil
	}
	id, err := uuid.Parse(raw)
	if err != nil {
		return nil
	}
	return &id
}

func IsAdmin(c *fiber.Ctx) bool {
	v, _ := c.Locals(LocIsAdmin).(bool)
	return v
}

// GetIdentity bundles the requester identity for authenticated routes.
func GetIdentity(c *fiber.Ctx) (Identity, error) {
	uid, err := GetUserID(c)
	if err != nil {
		return Identity{}, err
	}
	return Identity{
		UserID:      uid,
		InstituteID: GetInstituteID(c),
		IsAdmin:     IsAdmin(c),
	}, nil
}

// GetOptionalIdentity never fails: unauthenticated requesters get the
// zero identity (global visibility only).
func GetOptionalIdentity(c *fiber.Ctx) Identity {
	id, err := GetIdentity(c)
	if err != nil {
		return Identity{}
	}
	return id
}
