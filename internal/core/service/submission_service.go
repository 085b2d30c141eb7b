package service

import (
	"context"
	"errors"
	"fmt"
	"math"
	"time"

	"github.com/rs/zerolog"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/policy"
	"github.com/plastifind/collection-system/internal/core/ports"
)

const maxPageLimit = 100

// Notifier receives domain events for asynchronous notification fan-out.
type Notifier interface {
	Enqueue(n ports.NotificationInput)
}

// SubmissionService owns the submission moderation lifecycle.
type SubmissionService struct {
	repo     ports.SubmissionRepository
	zones    ports.ZoneRepository
	notifier Notifier
	logger   zerolog.Logger
}

func NewSubmissionService(repo ports.SubmissionRepository, zones ports.ZoneRepository, notifier Notifier, logger zerolog.Logger) *SubmissionService {
	return &SubmissionService{repo: repo, zones: zones, notifier: notifier, logger: logger}
}

// CreateSubmission records a new field collection in state pending. The
// submission and its items are persisted as one document, so a validation
// failure leaves nothing behind.
func (s *SubmissionService) CreateSubmission(ctx context.Context, input ports.CreateSubmissionInput) (*domain.Submission, error) {
	if err := policy.Authorize(input.Actor, policy.OpCreateSubmission); err != nil {
		return nil, err
	}
	if err := validateCreate(input); err != nil {
		return nil, err
	}

	if input.ZoneID != "" {
		if _, err := s.zones.FindByID(ctx, input.ZoneID); err != nil {
			return nil, fmt.Errorf("create submission: %w", err)
		}
	}

	items := make([]domain.SubmissionItem, 0, len(input.Items))
	for _, item := range input.Items {
		items = append(items, domain.SubmissionItem{
			MaterialType: item.MaterialType,
			WeightKg:     item.WeightKg,
			BagCount:     item.BagCount,
		})
	}

	submission := &domain.Submission{
		OwnerID:     input.Actor.ID,
		ZoneID:      input.ZoneID,
		NewZoneName: input.NewZoneName,
		Status:      domain.StatusPending,
		Notes:       input.Notes,
		ImageURL:    input.ImageURL,
		Items:       items,
		CollectedAt: time.Now().UTC(),
	}
	if input.Location != nil {
		submission.Location = &domain.Coordinates{Lat: input.Location.Lat, Lng: input.Location.Lng}
	}

	if err := s.repo.Create(ctx, submission); err != nil {
		s.logger.Error().Err(err).Str("owner_id", input.Actor.ID).Msg("failed to create submission")
		return nil, err
	}

	s.logger.Info().
		Str("submission_id", submission.ID).
		Str("owner_id", submission.OwnerID).
		Float64("total_weight_kg", submission.TotalWeightKg()).
		Msg("submission created")

	if s.notifier != nil {
		s.notifier.Enqueue(ports.NotificationInput{
			Type:    domain.NotificationAlert,
			Title:   "New submission awaiting review",
			Message: fmt.Sprintf("Submission %s (%.1f kg) is pending moderation", submission.ID, submission.TotalWeightKg()),
		})
	}

	return submission, nil
}

// ListSubmissions returns the actor's visible submissions, newest first.
// Field officers only ever see their own rows.
func (s *SubmissionService) ListSubmissions(ctx context.Context, input ports.ListSubmissionsInput) (*ports.ListSubmissionsResult, error) {
	if err := policy.Authorize(input.Actor, policy.OpListSubmissions); err != nil {
		return nil, err
	}

	filter := ports.ListSubmissionsFilter{
		Status: input.Status,
		ZoneID: input.ZoneID,
		Page:   input.Page,
		Limit:  input.Limit,
	}
	if policy.OwnDataOnly(input.Actor) {
		filter.OwnerID = input.Actor.ID
	}
	if filter.Page < 1 {
		filter.Page = 1
	}
	if filter.Limit <= 0 || filter.Limit > maxPageLimit {
		filter.Limit = maxPageLimit
	}

	items, total, err := s.repo.List(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("list submissions: %w", err)
	}

	totalPages := int(math.Ceil(float64(total) / float64(filter.Limit)))
	return &ports.ListSubmissionsResult{
		Items:      items,
		Total:      total,
		Page:       filter.Page,
		Limit:      filter.Limit,
		TotalPages: totalPages,
	}, nil
}

// TransitionStatus applies a moderation decision. The write is a single
// conditional update ("set status where status = pending"), so two racing
// moderators cannot both win: the loser sees the already-moderated outcome.
// Re-requesting the state the submission already holds is a reported no-op.
func (s *SubmissionService) TransitionStatus(ctx context.Context, input ports.TransitionSubmissionInput) (*ports.SubmissionResult, error) {
	if err := policy.Authorize(input.Actor, policy.OpTransitionSubmission); err != nil {
		return nil, err
	}
	if !input.Target.IsValid() || input.Target == domain.StatusPending {
		return nil, fmt.Errorf("%w: target status must be verified or rejected", domain.ErrValidation)
	}

	now := time.Now().UTC()
	updated, err := s.repo.TransitionStatus(ctx, input.SubmissionID, input.Target, input.Actor.ID, now)
	if err == nil {
		s.logger.Info().
			Str("submission_id", updated.ID).
			Str("status", string(updated.Status)).
			Str("moderator_id", input.Actor.ID).
			Msg("submission moderated")

		if s.notifier != nil {
			s.notifier.Enqueue(ports.NotificationInput{
				Type:        domain.NotificationMessage,
				Title:       "Submission " + string(input.Target),
				Message:     fmt.Sprintf("Your submission %s was %s", updated.ID, input.Target),
				RecipientID: updated.OwnerID,
			})
		}

		return &ports.SubmissionResult{
			ID:            updated.ID,
			Status:        string(updated.Status),
			TotalWeightKg: updated.TotalWeightKg(),
			CollectedAt:   updated.CollectedAt,
		}, nil
	}
	if !errors.Is(err, domain.ErrSubmissionNotFound) {
		return nil, fmt.Errorf("transition status: %w", err)
	}

	// No pending document matched: distinguish missing from already-terminal.
	current, findErr := s.repo.FindByID(ctx, input.SubmissionID, "")
	if findErr != nil {
		return nil, findErr
	}
	if current.Status == input.Target {
		return &ports.SubmissionResult{
			ID:               current.ID,
			Status:           string(current.Status),
			TotalWeightKg:    current.TotalWeightKg(),
			CollectedAt:      current.CollectedAt,
			AlreadyModerated: true,
		}, nil
	}
	return nil, fmt.Errorf("%w: cannot transition from %s to %s", domain.ErrInvalidState, current.Status, input.Target)
}

// DeleteSubmission removes an owned submission while it is still pending or
// was rejected. Verified submissions are immutable and cannot be deleted.
func (s *SubmissionService) DeleteSubmission(ctx context.Context, input ports.DeleteSubmissionInput) error {
	if err := policy.Authorize(input.Actor, policy.OpDeleteSubmission); err != nil {
		return err
	}

	// Ownership is part of the lookup: a foreign id reads as not found, so
	// actors cannot probe for submissions they have no visibility into.
	submission, err := s.repo.FindByID(ctx, input.SubmissionID, input.Actor.ID)
	if err != nil {
		return err
	}
	if !submission.Status.Deletable() {
		return fmt.Errorf("%w: cannot delete a %s submission", domain.ErrInvalidState, submission.Status)
	}

	if err := s.repo.Delete(ctx, submission.ID); err != nil {
		return fmt.Errorf("delete submission: %w", err)
	}

	s.logger.Info().
		Str("submission_id", submission.ID).
		Str("owner_id", submission.OwnerID).
		Msg("submission deleted")
	return nil
}

// validateCreate enforces the structural invariants of a new submission.
func validateCreate(input ports.CreateSubmissionInput) error {
	hasZone := input.ZoneID != ""
	hasNewZone := input.NewZoneName != ""
	if hasZone == hasNewZone {
		return fmt.Errorf("%w: exactly one of zone_id and new_zone_name must be set", domain.ErrValidation)
	}
	for i, item := range input.Items {
		if item.MaterialType == "" {
			return fmt.Errorf("%w: item[%d]: material_type is required", domain.ErrValidation, i)
		}
		if item.WeightKg < 0 || math.IsNaN(item.WeightKg) || math.IsInf(item.WeightKg, 0) {
			return fmt.Errorf("%w: item[%d]: weight must be a non-negative number", domain.ErrValidation, i)
		}
	}
	return nil
}
