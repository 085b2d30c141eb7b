package domain

import (
	"errors"
	"time"
)

// Role is the closed set of actor roles. New roles require one policy-table
// edit, not an audit of call sites.
type Role string

const (
	RoleSuperAdmin   Role = "super_admin"
	RoleAdmin        Role = "admin"
	RoleFieldOfficer Role = "field_officer"
	RolePartner      Role = "partner"
)

// IsValid reports whether r is a known role.
func (r Role) IsValid() bool {
	switch r {
	case RoleSuperAdmin, RoleAdmin, RoleFieldOfficer, RolePartner:
		return true
	}
	return false
}

// IsAdministrative reports whether r carries moderation and management rights.
func (r Role) IsAdministrative() bool {
	return r == RoleAdmin || r == RoleSuperAdmin
}

// AccountStatus is the lifecycle state of an actor account.
type AccountStatus string

const (
	AccountActive    AccountStatus = "active"
	AccountSuspended AccountStatus = "suspended"
)

var ErrActorNotFound = errors.New("actor not found")
var ErrActorExists = errors.New("actor already exists")
var ErrInvalidCredentials = errors.New("invalid credentials")

// Actor models an authenticated user in the system.
type Actor struct {
	ID             string        `json:"id"`
	Username       string        `json:"username"`
	Name           string        `json:"name"`
	Email          string        `json:"email,omitempty"`
	Organization   string        `json:"organization,omitempty"`
	PasswordHash   string        `json:"-"`
	Role           Role          `json:"role"`
	Status         AccountStatus `json:"status"`
	AssignedZoneID string        `json:"assigned_zone_id,omitempty"`
	CreatedAt      time.Time     `json:"created_at"`
	UpdatedAt      time.Time     `json:"updated_at"`
}

// Suspended reports whether the account is barred from mutating operations.
func (a *Actor) Suspended() bool {
	return a.Status == AccountSuspended
}

// ActorContext is the authenticated identity passed explicitly into every
// core operation. It carries only what authorization decisions need.
type ActorContext struct {
	ID     string
	Role   Role
	Status AccountStatus
}

// Suspended reports whether the acting account is suspended.
func (a ActorContext) Suspended() bool {
	return a.Status == AccountSuspended
}
