package domain

import (
	"errors"
	"time"
)

// SubmissionStatus represents the moderation state of a collection submission.
type SubmissionStatus string

const (
	StatusPending  SubmissionStatus = "pending"
	StatusVerified SubmissionStatus = "verified"
	StatusRejected SubmissionStatus = "rejected"
)

// validTransitions defines the allowed moderation transitions. Both verified
// and rejected are terminal: there is no edge back to pending and no edge out
// of verified.
var validTransitions = map[SubmissionStatus][]SubmissionStatus{
	StatusPending: {StatusVerified, StatusRejected},
}

var ErrInvalidState = errors.New("invalid submission state for operation")
var ErrSubmissionNotFound = errors.New("submission not found")
var ErrZoneNotFound = errors.New("zone not found")
var ErrForbidden = errors.New("access forbidden")
var ErrValidation = errors.New("validation failed")
var ErrAccountSuspended = errors.New("account suspended")

// IsValid reports whether s is a known moderation status.
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case StatusPending, StatusVerified, StatusRejected:
		return true
	}
	return false
}

// IsTerminal reports whether s is a final moderation state.
func (s SubmissionStatus) IsTerminal() bool {
	return s == StatusVerified || s == StatusRejected
}

// CanTransitionTo reports whether a transition from the current status to next is valid.
func (s SubmissionStatus) CanTransitionTo(next SubmissionStatus) bool {
	for _, allowed := range validTransitions[s] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Deletable reports whether the owning field officer may still remove the
// submission. Rejected submissions stay deletable so officers can resubmit.
func (s SubmissionStatus) Deletable() bool {
	return s == StatusPending || s == StatusRejected
}

// Coordinates represents a geographic point.
type Coordinates struct {
	Lat float64 `json:"lat" bson:"lat"`
	Lng float64 `json:"lng" bson:"lng"`
}

// SubmissionItem is one material-type/weight line within a submission.
type SubmissionItem struct {
	MaterialType string  `json:"material_type" bson:"material_type"`
	WeightKg     float64 `json:"weight_kg" bson:"weight_kg"`
	BagCount     int     `json:"bag_count,omitempty" bson:"bag_count,omitempty"`
}

// Submission is the core aggregate root: one field-collected batch of waste
// material reported for moderation. Items are embedded so the submission and
// its lines are written and removed as a single document.
type Submission struct {
	ID          string           `json:"id" bson:"_id,omitempty"`
	OwnerID     string           `json:"owner_id" bson:"owner_id"`
	ZoneID      string           `json:"zone_id,omitempty" bson:"zone_id,omitempty"`
	NewZoneName string           `json:"new_zone_name,omitempty" bson:"new_zone_name,omitempty"`
	Location    *Coordinates     `json:"location,omitempty" bson:"location,omitempty"`
	Status      SubmissionStatus `json:"status" bson:"status"`
	Notes       string           `json:"notes,omitempty" bson:"notes,omitempty"`
	ImageURL    string           `json:"image_url,omitempty" bson:"image_url,omitempty"`
	Items       []SubmissionItem `json:"items" bson:"items"`
	CollectedAt time.Time        `json:"collected_at" bson:"collected_at"`
	ModeratedAt *time.Time       `json:"moderated_at,omitempty" bson:"moderated_at,omitempty"`
	ModeratedBy string           `json:"moderated_by,omitempty" bson:"moderated_by,omitempty"`
}

// TotalWeightKg returns the derived total weight of the submission.
// The sum is never stored.
func (s *Submission) TotalWeightKg() float64 {
	var total float64
	for _, item := range s.Items {
		total += item.WeightKg
	}
	return total
}
