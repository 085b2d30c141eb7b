package service

import (
	"context"
	"errors"
	"fmt"
	"sort"
	"testing"
	"time"

	"github.com/rs/zerolog"

	"github.com/plastifind/collection-system/internal/core/domain"
	"github.com/plastifind/collection-system/internal/core/ports"
)

// ---------------------------------------------------------------------------
// In-memory stub repositories
// ---------------------------------------------------------------------------

type stubSubmissionRepo struct {
	byID      map[string]*domain.Submission
	insertSeq []string // insertion order, for stable tie-breaks
	nextID    int
	createErr error // if set, Create returns this error
}

func newStubSubmissionRepo() *stubSubmissionRepo {
	return &stubSubmissionRepo{byID: make(map[string]*domain.Submission)}
}

func (r *stubSubmissionRepo) Create(_ context.Context, s *domain.Submission) error {
	if r.createErr != nil {
		return r.createErr
	}
	r.nextID++
	s.ID = fmt.Sprintf("sub-%d", r.nextID)
	clone := *s
	r.byID[s.ID] = &clone
	r.insertSeq = append(r.insertSeq, s.ID)
	return nil
}

func (r *stubSubmissionRepo) FindByID(_ context.Context, id string, ownerID string) (*domain.Submission, error) {
	s, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrSubmissionNotFound
	}
	// Enforce owner filter (mirrors the real Mongo query)
	if ownerID != "" && s.OwnerID != ownerID {
		return nil, domain.ErrSubmissionNotFound
	}
	clone := *s
	return &clone, nil
}

func (r *stubSubmissionRepo) TransitionStatus(_ context.Context, id string, target domain.SubmissionStatus, moderatorID string, at time.Time) (*domain.Submission, error) {
	s, ok := r.byID[id]
	if !ok || s.Status != domain.StatusPending {
		return nil, domain.ErrSubmissionNotFound
	}
	s.Status = target
	s.ModeratedAt = &at
	s.ModeratedBy = moderatorID
	clone := *s
	return &clone, nil
}

func (r *stubSubmissionRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrSubmissionNotFound
	}
	delete(r.byID, id)
	for i, seq := range r.insertSeq {
		if seq == id {
			r.insertSeq = append(r.insertSeq[:i], r.insertSeq[i+1:]...)
			break
		}
	}
	return nil
}

func (r *stubSubmissionRepo) List(_ context.Context, f ports.ListSubmissionsFilter) ([]*domain.Submission, int64, error) {
	var matched []*domain.Submission
	for _, id := range r.insertSeq {
		s := r.byID[id]
		if f.OwnerID != "" && s.OwnerID != f.OwnerID {
			continue
		}
		if f.Status != "" && string(s.Status) != f.Status {
			continue
		}
		if f.ZoneID != "" && s.ZoneID != f.ZoneID {
			continue
		}
		clone := *s
		matched = append(matched, &clone)
	}
	sort.SliceStable(matched, func(i, j int) bool {
		return matched[i].CollectedAt.After(matched[j].CollectedAt)
	})

	total := int64(len(matched))
	limit := f.Limit
	if limit <= 0 {
		limit = len(matched)
	}
	skip := (f.Page - 1) * limit
	if skip < 0 {
		skip = 0
	}
	if skip > len(matched) {
		return []*domain.Submission{}, total, nil
	}
	end := skip + limit
	if end > len(matched) {
		end = len(matched)
	}
	return matched[skip:end], total, nil
}

func (r *stubSubmissionRepo) ListAll(_ context.Context) ([]*domain.Submission, error) {
	var out []*domain.Submission
	for _, id := range r.insertSeq {
		clone := *r.byID[id]
		out = append(out, &clone)
	}
	return out, nil
}

type stubZoneRepo struct {
	byID map[string]*domain.Zone
}

func newStubZoneRepo(ids ...string) *stubZoneRepo {
	r := &stubZoneRepo{byID: make(map[string]*domain.Zone)}
	for _, id := range ids {
		r.byID[id] = &domain.Zone{ID: id, Name: "zone " + id, Status: domain.ZoneActive}
	}
	return r
}

func (r *stubZoneRepo) Create(_ context.Context, z *domain.Zone) error {
	z.ID = fmt.Sprintf("zone-%d", len(r.byID)+1)
	clone := *z
	r.byID[z.ID] = &clone
	return nil
}

func (r *stubZoneRepo) FindByID(_ context.Context, id string) (*domain.Zone, error) {
	z, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrZoneNotFound
	}
	clone := *z
	return &clone, nil
}

func (r *stubZoneRepo) List(_ context.Context) ([]*domain.Zone, error) {
	var out []*domain.Zone
	for _, z := range r.byID {
		clone := *z
		out = append(out, &clone)
	}
	return out, nil
}

func (r *stubZoneRepo) Update(_ context.Context, id string, update ports.ZoneUpdate) (*domain.Zone, error) {
	z, ok := r.byID[id]
	if !ok {
		return nil, domain.ErrZoneNotFound
	}
	if update.Name != nil {
		z.Name = *update.Name
	}
	if update.Status != nil {
		z.Status = *update.Status
	}
	if update.EstimatedVolume != nil {
		z.EstimatedVolume = *update.EstimatedVolume
	}
	clone := *z
	return &clone, nil
}

func (r *stubZoneRepo) Delete(_ context.Context, id string) error {
	if _, ok := r.byID[id]; !ok {
		return domain.ErrZoneNotFound
	}
	delete(r.byID, id)
	return nil
}

type captureNotifier struct {
	sent []ports.NotificationInput
}

func (n *captureNotifier) Enqueue(in ports.NotificationInput) {
	n.sent = append(n.sent, in)
}

// ---------------------------------------------------------------------------
// Helpers
// ---------------------------------------------------------------------------

var discardLogger = zerolog.Nop()

func officer(id string) domain.ActorContext {
	return domain.ActorContext{ID: id, Role: domain.RoleFieldOfficer, Status: domain.AccountActive}
}

func admin() domain.ActorContext {
	return domain.ActorContext{ID: "admin-1", Role: domain.RoleAdmin, Status: domain.AccountActive}
}

func partner() domain.ActorContext {
	return domain.ActorContext{ID: "partner-1", Role: domain.RolePartner, Status: domain.AccountActive}
}

func suspended(role domain.Role) domain.ActorContext {
	return domain.ActorContext{ID: "susp-1", Role: role, Status: domain.AccountSuspended}
}

func minimalInput(actor domain.ActorContext, zoneID string) ports.CreateSubmissionInput {
	return ports.CreateSubmissionInput{
		Actor:  actor,
		ZoneID: zoneID,
		Items: []ports.ItemInput{
			{MaterialType: "PET", WeightKg: 2.5},
		},
	}
}

func newTestService(repo *stubSubmissionRepo, zones *stubZoneRepo) (*SubmissionService, *captureNotifier) {
	notifier := &captureNotifier{}
	return NewSubmissionService(repo, zones, notifier, discardLogger), notifier
}

// ---------------------------------------------------------------------------
// CreateSubmission tests
// ---------------------------------------------------------------------------

func TestSubmissionService_Create_Success(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))

	sub, err := svc.CreateSubmission(context.Background(), minimalInput(officer("fo-1"), "zone-1"))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if sub.Status != domain.StatusPending {
		t.Errorf("expected status %q, got %q", domain.StatusPending, sub.Status)
	}
	if sub.OwnerID != "fo-1" {
		t.Errorf("owner must come from the acting identity, got %q", sub.OwnerID)
	}
	if sub.CollectedAt.IsZero() {
		t.Error("CollectedAt must not be zero")
	}
	if got := sub.TotalWeightKg(); got != 2.5 {
		t.Errorf("expected total weight 2.5, got %v", got)
	}
}

func TestSubmissionService_Create_RequiresExactlyOneZoneField(t *testing.T) {
	cases := []struct {
		name        string
		zoneID      string
		newZoneName string
	}{
		{"neither", "", ""},
		{"both", "zone-1", "North Beach"},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			repo := newStubSubmissionRepo()
			svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))

			input := minimalInput(officer("fo-1"), tc.zoneID)
			input.NewZoneName = tc.newZoneName

			_, err := svc.CreateSubmission(context.Background(), input)
			if !errors.Is(err, domain.ErrValidation) {
				t.Fatalf("expected ErrValidation, got %v", err)
			}
			if len(repo.byID) != 0 {
				t.Error("nothing must be persisted on validation failure")
			}
		})
	}
}

func TestSubmissionService_Create_RejectsNegativeWeight(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))

	input := minimalInput(officer("fo-1"), "zone-1")
	input.Items = append(input.Items, ports.ItemInput{MaterialType: "HDPE", WeightKg: -1})

	_, err := svc.CreateSubmission(context.Background(), input)
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("nothing must be persisted when an item is invalid")
	}
}

func TestSubmissionService_Create_AcceptsNewZoneProposal(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo())

	input := ports.CreateSubmissionInput{
		Actor:       officer("fo-1"),
		NewZoneName: "Canal East",
		Items:       []ports.ItemInput{{MaterialType: "PP", WeightKg: 1}},
	}
	sub, err := svc.CreateSubmission(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if sub.NewZoneName != "Canal East" || sub.ZoneID != "" {
		t.Errorf("expected proposed zone only, got zone_id=%q new=%q", sub.ZoneID, sub.NewZoneName)
	}
}

func TestSubmissionService_Create_UnknownZone(t *testing.T) {
	svc, _ := newTestService(newStubSubmissionRepo(), newStubZoneRepo())

	_, err := svc.CreateSubmission(context.Background(), minimalInput(officer("fo-1"), "missing"))
	if !errors.Is(err, domain.ErrZoneNotFound) {
		t.Fatalf("expected ErrZoneNotFound, got %v", err)
	}
}

func TestSubmissionService_Create_EmptyItemsAccepted(t *testing.T) {
	svc, _ := newTestService(newStubSubmissionRepo(), newStubZoneRepo("zone-1"))

	input := minimalInput(officer("fo-1"), "zone-1")
	input.Items = nil

	sub, err := svc.CreateSubmission(context.Background(), input)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if got := sub.TotalWeightKg(); got != 0 {
		t.Errorf("expected zero total weight, got %v", got)
	}
}

func TestSubmissionService_Create_DeniedForNonOfficers(t *testing.T) {
	for _, actor := range []domain.ActorContext{admin(), partner()} {
		repo := newStubSubmissionRepo()
		svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))

		_, err := svc.CreateSubmission(context.Background(), minimalInput(actor, "zone-1"))
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", actor.Role, err)
		}
		if len(repo.byID) != 0 {
			t.Errorf("role %s: nothing must be persisted", actor.Role)
		}
	}
}

func TestSubmissionService_Create_DeniedWhenSuspended(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))

	_, err := svc.CreateSubmission(context.Background(), minimalInput(suspended(domain.RoleFieldOfficer), "zone-1"))
	if !errors.Is(err, domain.ErrAccountSuspended) {
		t.Fatalf("expected ErrAccountSuspended, got %v", err)
	}
	if len(repo.byID) != 0 {
		t.Error("suspended actors must be denied before any persistence write")
	}
}

// ---------------------------------------------------------------------------
// ListSubmissions tests
// ---------------------------------------------------------------------------

func TestSubmissionService_List_OfficersSeeOnlyTheirOwn(t *testing.T) {
	repo := newStubSubmissionRepo()
	zones := newStubZoneRepo("zone-1")
	svc, _ := newTestService(repo, zones)

	ctx := context.Background()
	if _, err := svc.CreateSubmission(ctx, minimalInput(officer("fo-a"), "zone-1")); err != nil {
		t.Fatal(err)
	}
	if _, err := svc.CreateSubmission(ctx, minimalInput(officer("fo-b"), "zone-1")); err != nil {
		t.Fatal(err)
	}

	result, err := svc.ListSubmissions(ctx, ports.ListSubmissionsInput{Actor: officer("fo-a")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if len(result.Items) != 1 {
		t.Fatalf("expected 1 submission, got %d", len(result.Items))
	}
	for _, s := range result.Items {
		if s.OwnerID != "fo-a" {
			t.Errorf("officer fo-a must never see submissions owned by %q", s.OwnerID)
		}
	}
}

func TestSubmissionService_List_AdminAndPartnerSeeAll(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))

	ctx := context.Background()
	for _, owner := range []string{"fo-a", "fo-b", "fo-c"} {
		if _, err := svc.CreateSubmission(ctx, minimalInput(officer(owner), "zone-1")); err != nil {
			t.Fatal(err)
		}
	}

	for _, actor := range []domain.ActorContext{admin(), partner()} {
		result, err := svc.ListSubmissions(ctx, ports.ListSubmissionsInput{Actor: actor})
		if err != nil {
			t.Fatalf("role %s: unexpected error: %v", actor.Role, err)
		}
		if len(result.Items) != 3 {
			t.Errorf("role %s: expected 3 submissions, got %d", actor.Role, len(result.Items))
		}
	}
}

func TestSubmissionService_List_NewestFirst(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	first, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-a"), "zone-1"))
	// force a later collection timestamp on the second row
	second, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-a"), "zone-1"))
	repo.byID[second.ID].CollectedAt = repo.byID[first.ID].CollectedAt.Add(time.Minute)

	result, err := svc.ListSubmissions(ctx, ports.ListSubmissionsInput{Actor: officer("fo-a")})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Items[0].ID != second.ID {
		t.Errorf("expected newest submission first, got %s", result.Items[0].ID)
	}
}

func TestSubmissionService_List_RoundTripAfterCreate(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	input := ports.CreateSubmissionInput{
		Actor:  officer("fo-1"),
		ZoneID: "zone-1",
		Items: []ports.ItemInput{
			{MaterialType: "PET", WeightKg: 10.5},
			{MaterialType: "HDPE", WeightKg: 4.0},
		},
	}
	created, err := svc.CreateSubmission(ctx, input)
	if err != nil {
		t.Fatal(err)
	}

	result, err := svc.ListSubmissions(ctx, ports.ListSubmissionsInput{Actor: officer("fo-1")})
	if err != nil {
		t.Fatal(err)
	}
	if len(result.Items) != 1 || result.Items[0].ID != created.ID {
		t.Fatalf("expected the created submission back, got %d rows", len(result.Items))
	}
	got := result.Items[0]
	if got.Status != domain.StatusPending {
		t.Errorf("expected pending, got %s", got.Status)
	}
	if total := got.TotalWeightKg(); total != 14.5 {
		t.Errorf("expected total weight 14.5, got %v", total)
	}
	if got.Items[0].WeightKg != 10.5 || got.Items[1].WeightKg != 4.0 {
		t.Error("per-item weights must match input exactly")
	}
}

// ---------------------------------------------------------------------------
// TransitionStatus tests
// ---------------------------------------------------------------------------

func TestSubmissionService_Transition_VerifyByAdmin(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, notifier := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-1"), "zone-1"))

	result, err := svc.TransitionStatus(ctx, ports.TransitionSubmissionInput{
		Actor:        admin(),
		SubmissionID: sub.ID,
		Target:       domain.StatusVerified,
	})
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if result.Status != string(domain.StatusVerified) {
		t.Errorf("expected verified, got %s", result.Status)
	}
	if result.AlreadyModerated {
		t.Error("first transition must not report a no-op")
	}
	if repo.byID[sub.ID].ModeratedBy != "admin-1" {
		t.Errorf("moderator not recorded: %q", repo.byID[sub.ID].ModeratedBy)
	}

	// owner gets notified of the decision
	found := false
	for _, n := range notifier.sent {
		if n.RecipientID == "fo-1" {
			found = true
		}
	}
	if !found {
		t.Error("expected a notification addressed to the owner")
	}
}

func TestSubmissionService_Transition_DeniedRoles(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-1"), "zone-1"))

	for _, actor := range []domain.ActorContext{officer("fo-1"), partner()} {
		_, err := svc.TransitionStatus(ctx, ports.TransitionSubmissionInput{
			Actor:        actor,
			SubmissionID: sub.ID,
			Target:       domain.StatusVerified,
		})
		if !errors.Is(err, domain.ErrForbidden) {
			t.Errorf("role %s: expected ErrForbidden, got %v", actor.Role, err)
		}
	}
	if repo.byID[sub.ID].Status != domain.StatusPending {
		t.Error("denied transitions must not change state")
	}
}

func TestSubmissionService_Transition_PendingTargetRejected(t *testing.T) {
	svc, _ := newTestService(newStubSubmissionRepo(), newStubZoneRepo("zone-1"))

	_, err := svc.TransitionStatus(context.Background(), ports.TransitionSubmissionInput{
		Actor:        admin(),
		SubmissionID: "sub-1",
		Target:       domain.StatusPending,
	})
	if !errors.Is(err, domain.ErrValidation) {
		t.Fatalf("expected ErrValidation for pending target, got %v", err)
	}
}

func TestSubmissionService_Transition_UnknownID(t *testing.T) {
	svc, _ := newTestService(newStubSubmissionRepo(), newStubZoneRepo())

	_, err := svc.TransitionStatus(context.Background(), ports.TransitionSubmissionInput{
		Actor:        admin(),
		SubmissionID: "missing",
		Target:       domain.StatusVerified,
	})
	if !errors.Is(err, domain.ErrSubmissionNotFound) {
		t.Fatalf("expected ErrSubmissionNotFound, got %v", err)
	}
}

func TestSubmissionService_Transition_RepeatIsNoOp(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-1"), "zone-1"))

	if _, err := svc.TransitionStatus(ctx, ports.TransitionSubmissionInput{
		Actor: admin(), SubmissionID: sub.ID, Target: domain.StatusVerified,
	}); err != nil {
		t.Fatal(err)
	}

	result, err := svc.TransitionStatus(ctx, ports.TransitionSubmissionInput{
		Actor: admin(), SubmissionID: sub.ID, Target: domain.StatusVerified,
	})
	if err != nil {
		t.Fatalf("repeat transition must not error: %v", err)
	}
	if !result.AlreadyModerated {
		t.Error("repeat transition must report already-moderated")
	}
	if result.Status != string(domain.StatusVerified) {
		t.Errorf("state must stay verified, got %s", result.Status)
	}
}

func TestSubmissionService_Transition_TerminalStateBlocked(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-1"), "zone-1"))
	if _, err := svc.TransitionStatus(ctx, ports.TransitionSubmissionInput{
		Actor: admin(), SubmissionID: sub.ID, Target: domain.StatusVerified,
	}); err != nil {
		t.Fatal(err)
	}

	// re-moderation verified -> rejected is forbidden
	_, err := svc.TransitionStatus(ctx, ports.TransitionSubmissionInput{
		Actor: admin(), SubmissionID: sub.ID, Target: domain.StatusRejected,
	})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if repo.byID[sub.ID].Status != domain.StatusVerified {
		t.Error("blocked transition must not change state")
	}
}

// ---------------------------------------------------------------------------
// DeleteSubmission tests
// ---------------------------------------------------------------------------

func TestSubmissionService_Delete_OwnerPending(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-1"), "zone-1"))

	if err := svc.DeleteSubmission(ctx, ports.DeleteSubmissionInput{Actor: officer("fo-1"), SubmissionID: sub.ID}); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if _, ok := repo.byID[sub.ID]; ok {
		t.Error("submission must be removed")
	}
}

func TestSubmissionService_Delete_OwnerRejectedAllowed(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, ports.CreateSubmissionInput{
		Actor:  officer("fo-1"),
		ZoneID: "zone-1",
		Items: []ports.ItemInput{
			{MaterialType: "PET", WeightKg: 10.5},
			{MaterialType: "HDPE", WeightKg: 4.0},
		},
	})
	if total := sub.TotalWeightKg(); total != 14.5 {
		t.Fatalf("expected total 14.5, got %v", total)
	}

	if _, err := svc.TransitionStatus(ctx, ports.TransitionSubmissionInput{
		Actor: admin(), SubmissionID: sub.ID, Target: domain.StatusRejected,
	}); err != nil {
		t.Fatal(err)
	}

	if err := svc.DeleteSubmission(ctx, ports.DeleteSubmissionInput{Actor: officer("fo-1"), SubmissionID: sub.ID}); err != nil {
		t.Fatalf("rejected submissions must stay deletable: %v", err)
	}
	if _, ok := repo.byID[sub.ID]; ok {
		t.Error("submission and its items must be gone")
	}
}

func TestSubmissionService_Delete_VerifiedBlocked(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-1"), "zone-1"))
	if _, err := svc.TransitionStatus(ctx, ports.TransitionSubmissionInput{
		Actor: admin(), SubmissionID: sub.ID, Target: domain.StatusVerified,
	}); err != nil {
		t.Fatal(err)
	}

	err := svc.DeleteSubmission(ctx, ports.DeleteSubmissionInput{Actor: officer("fo-1"), SubmissionID: sub.ID})
	if !errors.Is(err, domain.ErrInvalidState) {
		t.Fatalf("expected ErrInvalidState, got %v", err)
	}
	if _, ok := repo.byID[sub.ID]; !ok {
		t.Error("verified submission must remain")
	}
}

func TestSubmissionService_Delete_ForeignReadsAsNotFound(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-a"), "zone-1"))

	err := svc.DeleteSubmission(ctx, ports.DeleteSubmissionInput{Actor: officer("fo-b"), SubmissionID: sub.ID})
	if !errors.Is(err, domain.ErrSubmissionNotFound) {
		t.Fatalf("foreign delete must read as not found, got %v", err)
	}
}

func TestSubmissionService_Delete_AdminDenied(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("fo-1"), "zone-1"))

	err := svc.DeleteSubmission(ctx, ports.DeleteSubmissionInput{Actor: admin(), SubmissionID: sub.ID})
	if !errors.Is(err, domain.ErrForbidden) {
		t.Fatalf("admin delete is out of scope, expected ErrForbidden, got %v", err)
	}
}

func TestSubmissionService_Delete_SuspendedOwnerDenied(t *testing.T) {
	repo := newStubSubmissionRepo()
	svc, _ := newTestService(repo, newStubZoneRepo("zone-1"))
	ctx := context.Background()

	sub, _ := svc.CreateSubmission(ctx, minimalInput(officer("susp-1"), "zone-1"))

	err := svc.DeleteSubmission(ctx, ports.DeleteSubmissionInput{
		Actor:        suspended(domain.RoleFieldOfficer),
		SubmissionID: sub.ID,
	})
	if !errors.Is(err, domain.ErrAccountSuspended) {
		t.Fatalf("expected ErrAccountSuspended, got %v", err)
	}
}
