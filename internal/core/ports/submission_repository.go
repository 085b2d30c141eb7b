package ports

import (
	"context"
	"time"

	"github.com/plastifind/collection-system/internal/core/domain"
)

// ListSubmissionsFilter carries query parameters for listing submissions.
// OwnerID is always enforced by the service layer for field officers.
type ListSubmissionsFilter struct {
	OwnerID string // empty = no filter (admin/partner view); non-empty = scoped to owner
	Status  string // optional: filter by moderation status
	ZoneID  string // optional: filter by zone
	Page    int    // 1-based
	Limit   int    // max rows per page (capped at 100 by service)
}

// SubmissionRepository defines persistence operations for submissions.
// Items are embedded in the submission document, so Create and Delete are
// single-document atomic and no orphaned items can exist.
type SubmissionRepository interface {
	Create(ctx context.Context, s *domain.Submission) error

	// FindByID retrieves a submission. When ownerID is non-empty the query is
	// additionally filtered by owner, so non-owners get ErrSubmissionNotFound
	// rather than learning the row exists.
	FindByID(ctx context.Context, id string, ownerID string) (*domain.Submission, error)

	// TransitionStatus performs the single conditional update
	// "set status = target where _id = id AND status = pending" and returns
	// the updated document. ErrSubmissionNotFound is returned when no pending
	// document matched; the caller distinguishes missing from already-moderated.
	TransitionStatus(ctx context.Context, id string, target domain.SubmissionStatus, moderatorID string, at time.Time) (*domain.Submission, error)

	// Delete removes the submission and its embedded items in one operation.
	Delete(ctx context.Context, id string) error

	// List returns a page of submissions matching filter and the total count,
	// ordered by collection timestamp descending with stable insertion-order
	// tie-break.
	List(ctx context.Context, filter ListSubmissionsFilter) ([]*domain.Submission, int64, error)

	// ListAll streams every submission for read-time aggregation.
	ListAll(ctx context.Context) ([]*domain.Submission, error)
}
