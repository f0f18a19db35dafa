package appraisal_test

import (
	"context"
	"errors"
	"path/filepath"
	"testing"

	"github.com/campusworks/faculty-appraisal/internal/appraisal"
	"github.com/campusworks/faculty-appraisal/internal/db"
	"github.com/campusworks/faculty-appraisal/internal/eventlog"
	"github.com/campusworks/faculty-appraisal/internal/scoring"
)

// newSQLStore opens a throwaway sqlite database with the real schema, the
// same code path the gateway boots through.
func newSQLStore(t *testing.T) (*appraisal.SQLStore, *eventlog.Repo) {
	t.Helper()
	ctx, cancel := context.WithCancel(context.Background())
	t.Cleanup(cancel)

	dsn := "file:" + filepath.Join(t.TempDir(), "appraisal-test.db")
	dbh, err := db.Open(ctx, db.DriverSQLite, dsn)
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	t.Cleanup(func() { _ = dbh.Close() })

	events := eventlog.NewRepo(dbh)
	return appraisal.NewSQLStore(dbh, events), events
}

func TestSQLStoreSaveGetRoundTrip(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, appraisal.Submission{
		UserID:       "fac-1",
		AcademicYear: "2025-26",
		Status:       appraisal.StatusDraft,
		Research: scoring.ResearchSection{
			SponsoredProjects: []scoring.SponsoredProject{
				{Title: "Smart grid pilot", FundingAgency: "DST", FundingAmount: 2_500_000},
			},
		},
		Academics: scoring.AcademicsSection{
			Certifications: []scoring.Certification{{Title: "NPTEL DBMS"}},
		},
	})
	if err != nil {
		t.Fatal(err)
	}
	if saved.ID == "" {
		t.Fatal("no ID assigned")
	}

	got, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	// Sections must survive the JSON column round-trip with their scores.
	if len(got.Research.SponsoredProjects) != 1 {
		t.Fatalf("sponsored projects lost in round-trip: %+v", got.Research)
	}
	if p := got.Research.SponsoredProjects[0]; p.Title != "Smart grid pilot" || p.CalculatedPoints != 10 {
		t.Fatalf("project = %+v", p)
	}
	if got.TotalPoints != 10.5 {
		t.Fatalf("total_points = %v, want 10.5", got.TotalPoints)
	}

	// Second save of the same ID takes the upsert path.
	got.AcademicYear = "2026-27"
	updated, err := store.Save(ctx, got)
	if err != nil {
		t.Fatal(err)
	}
	if updated.ID != saved.ID {
		t.Fatalf("upsert changed ID: %s -> %s", saved.ID, updated.ID)
	}
	again, err := store.Get(ctx, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if again.AcademicYear != "2026-27" {
		t.Fatalf("academic_year = %q after upsert", again.AcademicYear)
	}

	if _, err := store.LatestDraft(ctx, "fac-1"); err != nil {
		t.Fatalf("latest draft: %v", err)
	}
}

func TestSQLStoreFreezesApprovedSubmissions(t *testing.T) {
	store, _ := newSQLStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, appraisal.Submission{
		UserID: "fac-1", AcademicYear: "2025-26", Status: appraisal.StatusPending,
	})
	if err != nil {
		t.Fatal(err)
	}
	if _, err := store.SetStatus(ctx, saved.ID, appraisal.StatusApproved, "hod-1", "fine"); err != nil {
		t.Fatal(err)
	}

	saved.Status = appraisal.StatusDraft
	if _, err := store.Save(ctx, saved); !errors.Is(err, appraisal.ErrFrozen) {
		t.Fatalf("edit after approval: got %v, want ErrFrozen", err)
	}
	if _, err := store.SetStatus(ctx, saved.ID, appraisal.StatusRejected, "hod-1", ""); !errors.Is(err, appraisal.ErrInvalidTransition) {
		t.Fatalf("re-settle: got %v, want ErrInvalidTransition", err)
	}
}

func TestSQLStoreSubmitAppendsEvents(t *testing.T) {
	store, events := newSQLStore(t)
	ctx := context.Background()

	saved, err := store.Save(ctx, appraisal.Submission{
		UserID: "fac-1", AcademicYear: "2025-26", Status: appraisal.StatusPending,
	})
	if err != nil {
		t.Fatal(err)
	}

	evs, err := events.ListByKey(ctx, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(evs) != 1 || evs[0].Type != eventlog.TypeSubmissionSubmitted {
		t.Fatalf("after submit: %+v", evs)
	}

	if _, err := store.SetStatus(ctx, saved.ID, appraisal.StatusApproved, "hod-1", "ok"); err != nil {
		t.Fatal(err)
	}
	evs, err = events.ListByKey(ctx, saved.ID)
	if err != nil {
		t.Fatal(err)
	}
	if len(evs) != 2 {
		t.Fatalf("after approve: %d events", len(evs))
	}
	if evs[0].Type != eventlog.TypeSubmissionSubmitted || evs[1].Type != eventlog.TypeSubmissionApproved {
		t.Fatalf("history out of order: %s, %s", evs[0].Type, evs[1].Type)
	}
	if evs[0].Seq >= evs[1].Seq {
		t.Fatalf("seq not monotonic: %d, %d", evs[0].Seq, evs[1].Seq)
	}
}
