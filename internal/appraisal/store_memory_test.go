package appraisal

import (
	"context"
	"errors"
	"testing"

	"github.com/campusworks/faculty-appraisal/internal/scoring"
)

func draftFor(userID string) Submission {
	return Submission{
		UserID:       userID,
		AcademicYear: "2023-24",
		Academics: scoring.AcademicsSection{
			Certifications: []scoring.Certification{
				{Title: "Go for DevOps", Platform: "Coursera"},
				{Title: "ML Foundations", Platform: "NPTEL"},
			},
		},
	}
}

func TestSaveRescoresBeforePersist(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	sub := draftFor("fac-1")
	sub.TotalPoints = 400 // spoofed
	sub.Academics.Certifications[0].CalculatedPoints = 99

	saved, err := store.Save(ctx, sub)
	if err != nil {
		t.Fatal(err)
	}
	if saved.Status != StatusDraft {
		t.Fatalf("status: got %s, want draft", saved.Status)
	}
	if saved.TotalPoints != 1 {
		t.Fatalf("total: got %v, want 1 (two certifications)", saved.TotalPoints)
	}
	if saved.Academics.Certifications[0].CalculatedPoints != 0.5 {
		t.Fatalf("record points not recomputed: %v", saved.Academics.Certifications[0].CalculatedPoints)
	}
}

func TestLifecycle(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	saved, err := store.Save(ctx, draftFor("fac-1"))
	if err != nil {
		t.Fatal(err)
	}

	// Draft is retrievable as the latest draft.
	d, err := store.LatestDraft(ctx, "fac-1")
	if err != nil || d.ID != saved.ID {
		t.Fatalf("latest draft: %v, err=%v", d.ID, err)
	}

	// Approve before submit is an invalid transition.
	if _, err := store.SetStatus(ctx, saved.ID, StatusApproved, "hod-1", ""); !errors.Is(err, ErrInvalidTransition) {
		t.Fatalf("approve draft: got %v, want ErrInvalidTransition", err)
	}

	// Submit.
	saved.Status = StatusPending
	saved, err = store.Save(ctx, saved)
	if err != nil {
		t.Fatal(err)
	}
	if saved.SubmittedAt == 0 {
		t.Fatal("submitted_at not set")
	}

	// Approve, then verify the freeze.
	approved, err := store.SetStatus(ctx, saved.ID, StatusApproved, "hod-1", "good year")
	if err != nil {
		t.Fatal(err)
	}
	if approved.ReviewedBy != "hod-1" || approved.Status != StatusApproved {
		t.Fatalf("review fields: %+v", approved)
	}
	approved.AcademicYear = "2024-25"
	if _, err := store.Save(ctx, approved); !errors.Is(err, ErrFrozen) {
		t.Fatalf("edit after approval: got %v, want ErrFrozen", err)
	}
}

func TestRejectedReopensForEditing(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	s, err := store.Save(ctx, draftFor("fac-2"))
	if err != nil {
		t.Fatal(err)
	}
	s.Status = StatusPending
	if s, err = store.Save(ctx, s); err != nil {
		t.Fatal(err)
	}
	if s, err = store.SetStatus(ctx, s.ID, StatusRejected, "hod-1", "missing patent proof"); err != nil {
		t.Fatal(err)
	}

	// A rejected submission can be corrected and resubmitted.
	s.Status = StatusPending
	if _, err := store.Save(ctx, s); err != nil {
		t.Fatalf("resubmit after rejection: %v", err)
	}
}

func TestListScoping(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	if _, err := store.Save(ctx, draftFor("fac-1")); err != nil {
		t.Fatal(err)
	}
	if _, err := store.Save(ctx, draftFor("fac-2")); err != nil {
		t.Fatal(err)
	}

	all, err := store.List(ctx, ListOpts{})
	if err != nil || len(all) != 2 {
		t.Fatalf("all: %d, err=%v", len(all), err)
	}
	own, err := store.List(ctx, ListOpts{UserID: "fac-1"})
	if err != nil || len(own) != 1 || own[0].UserID != "fac-1" {
		t.Fatalf("own: %+v, err=%v", own, err)
	}
}

func TestSaveUnknownIDAndForeignID(t *testing.T) {
	store := NewInMemoryStore()
	ctx := context.Background()

	s := draftFor("fac-1")
	s.ID = "missing"
	if _, err := store.Save(ctx, s); !errors.Is(err, ErrNotFound) {
		t.Fatalf("unknown id: got %v, want ErrNotFound", err)
	}

	saved, err := store.Save(ctx, draftFor("fac-1"))
	if err != nil {
		t.Fatal(err)
	}
	saved.UserID = "fac-2" // someone else's submission
	if _, err := store.Save(ctx, saved); !errors.Is(err, ErrNotFound) {
		t.Fatalf("foreign id: got %v, want ErrNotFound", err)
	}
}
