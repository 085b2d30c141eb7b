// Package policy centralizes role-based access decisions. Every core service
// consults Authorize before touching the store, so adding a role or operation
// is a single table edit here.
package policy

import (
	"github.com/plastifind/collection-system/internal/core/domain"
)

// Operation names one capability an actor may hold.
type Operation string

const (
	OpListSubmissions      Operation = "submissions.list"
	OpCreateSubmission     Operation = "submissions.create"
	OpTransitionSubmission Operation = "submissions.transition"
	OpDeleteSubmission     Operation = "submissions.delete"
	OpReadZones            Operation = "zones.read"
	OpWriteZones           Operation = "zones.write"
	OpListActors           Operation = "actors.list"
	OpMutateActor          Operation = "actors.mutate"
	OpReadReports          Operation = "reports.read"
	OpReadNotifications    Operation = "notifications.read"
	OpAckNotification      Operation = "notifications.ack"
)

// mutating marks the operations the suspended-account gate applies to.
var mutating = map[Operation]bool{
	OpCreateSubmission:     true,
	OpTransitionSubmission: true,
	OpDeleteSubmission:     true,
	OpWriteZones:           true,
	OpMutateActor:          true,
	OpAckNotification:      true,
}

// grants is the role × operation capability table.
var grants = map[domain.Role]map[Operation]bool{
	domain.RoleFieldOfficer: {
		OpListSubmissions:   true, // own only, enforced via OwnDataOnly
		OpCreateSubmission:  true,
		OpDeleteSubmission:  true, // own, non-verified only
		OpReadZones:         true,
		OpReadReports:       true,
		OpReadNotifications: true,
		OpAckNotification:   true,
	},
	domain.RoleAdmin: {
		OpListSubmissions:      true,
		OpTransitionSubmission: true,
		OpReadZones:            true,
		OpWriteZones:           true,
		OpListActors:           true,
		OpMutateActor:          true,
		OpReadReports:          true,
		OpReadNotifications:    true,
		OpAckNotification:      true,
	},
	domain.RoleSuperAdmin: {
		OpListSubmissions:      true,
		OpTransitionSubmission: true,
		OpReadZones:            true,
		OpWriteZones:           true,
		OpListActors:           true,
		OpMutateActor:          true,
		OpReadReports:          true,
		OpReadNotifications:    true,
		OpAckNotification:      true,
	},
	domain.RolePartner: {
		OpListSubmissions:   true,
		OpReadZones:         true,
		OpReadReports:       true,
		OpReadNotifications: true,
		OpAckNotification:   true,
	},
}

// Authorize decides whether actor may perform op. The suspended-account check
// runs before the role table: a suspended actor keeps read access but is
// denied every mutating operation regardless of role.
func Authorize(actor domain.ActorContext, op Operation) error {
	if actor.Suspended() && mutating[op] {
		return domain.ErrAccountSuspended
	}
	if !grants[actor.Role][op] {
		return domain.ErrForbidden
	}
	return nil
}

// Allowed is the boolean form of Authorize for transport-layer gates.
func Allowed(actor domain.ActorContext, op Operation) bool {
	return Authorize(actor, op) == nil
}

// OwnDataOnly reports whether the actor's reads are scoped to resources it
// owns. Field officers see only their own submissions; every other role sees
// the system-wide view.
func OwnDataOnly(actor domain.ActorContext) bool {
	return actor.Role == domain.RoleFieldOfficer
}
