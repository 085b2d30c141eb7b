package ports

import (
	"context"
	"time"

	"github.com/plastifind/collection-system/internal/core/domain"
)

// CoordinatesInput holds geographic coordinates.
type CoordinatesInput struct {
	Lat float64
	Lng float64
}

// ItemInput holds one material line of a new submission.
type ItemInput struct {
	MaterialType string
	WeightKg     float64
	BagCount     int
}

// CreateSubmissionInput carries all data needed to create a submission.
// Exactly one of ZoneID / NewZoneName must be set. The owner is always the
// acting identity; it is never client-supplied.
type CreateSubmissionInput struct {
	Actor       domain.ActorContext
	ZoneID      string
	NewZoneName string
	Location    *CoordinatesInput
	Notes       string
	ImageURL    string // opaque evidence reference from the upload collaborator
	Items       []ItemInput
}

// SubmissionResult is returned by the service after create and transition.
type SubmissionResult struct {
	ID            string
	Status        string
	TotalWeightKg float64
	CollectedAt   time.Time
	// AlreadyModerated is true when a transition found the submission already
	// in the requested target state; the call is then a reported no-op.
	AlreadyModerated bool
}

// TransitionSubmissionInput carries a moderation decision.
type TransitionSubmissionInput struct {
	Actor        domain.ActorContext
	SubmissionID string
	Target       domain.SubmissionStatus
}

// DeleteSubmissionInput identifies the submission an owner wants removed.
type DeleteSubmissionInput struct {
	Actor        domain.ActorContext
	SubmissionID string
}

// ListSubmissionsInput carries the parameters for the list endpoint.
type ListSubmissionsInput struct {
	Actor  domain.ActorContext
	Status string
	ZoneID string
	Page   int
	Limit  int
}

// ListSubmissionsResult is returned by ListSubmissions.
type ListSubmissionsResult struct {
	Items      []*domain.Submission
	Total      int64
	Page       int
	Limit      int
	TotalPages int
}

// SubmissionService defines the submission lifecycle use-cases.
type SubmissionService interface {
	CreateSubmission(ctx context.Context, input CreateSubmissionInput) (*domain.Submission, error)
	ListSubmissions(ctx context.Context, input ListSubmissionsInput) (*ListSubmissionsResult, error)
	TransitionStatus(ctx context.Context, input TransitionSubmissionInput) (*SubmissionResult, error)
	DeleteSubmission(ctx context.Context, input DeleteSubmissionInput) error
}
