package appraisal

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"

	"github.com/campusworks/faculty-appraisal/internal/eventlog"
)

// SQLStore keeps each submission as one JSON document per row, the shape
// the review workflow reads it in. Works against sqlite and postgres.
type SQLStore struct {
	db     *sql.DB
	events *eventlog.Repo
}

func NewSQLStore(db *sql.DB, events *eventlog.Repo) *SQLStore {
	return &SQLStore{db: db, events: events}
}

// sections is the JSON document stored per submission row.
type sections struct {
	Research            json.RawMessage `json:"research"`
	Administration      json.RawMessage `json:"administration"`
	Academics           json.RawMessage `json:"academics"`
	IndustryInteraction json.RawMessage `json:"industry_interaction"`
	PlacementActivities json.RawMessage `json:"placement_activities"`
}

func marshalSections(s Submission) (string, error) {
	doc := map[string]any{
		"research":             s.Research,
		"administration":       s.Administration,
		"academics":            s.Academics,
		"industry_interaction": s.IndustryInteraction,
		"placement_activities": s.PlacementActivities,
	}
	buf, err := json.Marshal(doc)
	if err != nil {
		return "", err
	}
	return string(buf), nil
}

func unmarshalSections(doc string, s *Submission) error {
	var sec sections
	if err := json.Unmarshal([]byte(doc), &sec); err != nil {
		return err
	}
	if sec.Research != nil {
		if err := json.Unmarshal(sec.Research, &s.Research); err != nil {
			return err
		}
	}
	if sec.Administration != nil {
		if err := json.Unmarshal(sec.Administration, &s.Administration); err != nil {
			return err
		}
	}
	if sec.Academics != nil {
		if err := json.Unmarshal(sec.Academics, &s.Academics); err != nil {
			return err
		}
	}
	if sec.IndustryInteraction != nil {
		if err := json.Unmarshal(sec.IndustryInteraction, &s.IndustryInteraction); err != nil {
			return err
		}
	}
	if sec.PlacementActivities != nil {
		if err := json.Unmarshal(sec.PlacementActivities, &s.PlacementActivities); err != nil {
			return err
		}
	}
	return nil
}

func (st *SQLStore) Save(ctx context.Context, s Submission) (Submission, error) {
	switch s.Status {
	case "", StatusDraft:
		s.Status = StatusDraft
	case StatusPending:
	default:
		return Submission{}, fmt.Errorf("%w: cannot save with status %q", ErrInvalidTransition, s.Status)
	}

	now := time.Now().Unix()
	if s.ID == "" {
		s.ID = uuid.NewString()
		s.CreatedAt = now
	} else {
		existing, err := st.Get(ctx, s.ID)
		if err != nil {
			return Submission{}, err
		}
		if existing.Status == StatusApproved {
			return Submission{}, ErrFrozen
		}
		if existing.UserID != s.UserID {
			return Submission{}, ErrNotFound
		}
		s.CreatedAt = existing.CreatedAt
	}
	s.UpdatedAt = now

	submitting := s.Status == StatusPending
	if submitting && s.SubmittedAt == 0 {
		s.SubmittedAt = now
	}

	// Never trust client-side points.
	s.Rescore()

	doc, err := marshalSections(s)
	if err != nil {
		return Submission{}, err
	}
	_, err = st.db.ExecContext(ctx, `
		INSERT INTO submissions
		  (id, user_id, academic_year, status, total_points, sections_json,
		   submitted_at, reviewed_at, reviewed_by, review_comment, created_at, updated_at)
		VALUES ($1,$2,$3,$4,$5,$6,$7,$8,$9,$10,$11,$12)
		ON CONFLICT (id) DO UPDATE SET
		  academic_year=EXCLUDED.academic_year,
		  status=EXCLUDED.status,
		  total_points=EXCLUDED.total_points,
		  sections_json=EXCLUDED.sections_json,
		  submitted_at=EXCLUDED.submitted_at,
		  updated_at=EXCLUDED.updated_at`,
		s.ID, s.UserID, s.AcademicYear, string(s.Status), s.TotalPoints, doc,
		s.SubmittedAt, s.ReviewedAt, s.ReviewedBy, s.ReviewComment, s.CreatedAt, s.UpdatedAt)
	if err != nil {
		return Submission{}, err
	}

	if submitting && st.events != nil {
		_ = st.events.Append(ctx, eventlog.TypeSubmissionSubmitted, s.ID, map[string]any{
			"user_id":       s.UserID,
			"academic_year": s.AcademicYear,
			"total_points":  s.TotalPoints,
		})
	}
	return s, nil
}

func (st *SQLStore) Get(ctx context.Context, id string) (Submission, error) {
	row := st.db.QueryRowContext(ctx, `
		SELECT id, user_id, academic_year, status, total_points, sections_json,
		       submitted_at, reviewed_at, reviewed_by, review_comment, created_at, updated_at
		FROM submissions WHERE id=$1`, id)
	return scanSubmission(row)
}

type rowScanner interface{ Scan(dest ...any) error }

func scanSubmission(row rowScanner) (Submission, error) {
	var s Submission
	var status, doc string
	err := row.Scan(&s.ID, &s.UserID, &s.AcademicYear, &status, &s.TotalPoints, &doc,
		&s.SubmittedAt, &s.ReviewedAt, &s.ReviewedBy, &s.ReviewComment, &s.CreatedAt, &s.UpdatedAt)
	if err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return Submission{}, ErrNotFound
		}
		return Submission{}, err
	}
	s.Status = Status(status)
	if err := unmarshalSections(doc, &s); err != nil {
		return Submission{}, err
	}
	return s, nil
}

func (st *SQLStore) List(ctx context.Context, opts ListOpts) ([]Submission, error) {
	q := `
		SELECT id, user_id, academic_year, status, total_points, sections_json,
		       submitted_at, reviewed_at, reviewed_by, review_comment, created_at, updated_at
		FROM submissions`
	var args []any
	var where []string
	if opts.UserID != "" {
		args = append(args, opts.UserID)
		where = append(where, fmt.Sprintf("user_id=$%d", len(args)))
	}
	if opts.Status != "" {
		args = append(args, string(opts.Status))
		where = append(where, fmt.Sprintf("status=$%d", len(args)))
	}
	for i, w := range where {
		if i == 0 {
			q += " WHERE " + w
		} else {
			q += " AND " + w
		}
	}
	q += " ORDER BY updated_at DESC"
	limit := opts.Limit
	if limit <= 0 || limit > 200 {
		limit = 50
	}
	args = append(args, limit)
	q += fmt.Sprintf(" LIMIT $%d", len(args))
	if opts.Offset > 0 {
		args = append(args, opts.Offset)
		q += fmt.Sprintf(" OFFSET $%d", len(args))
	}

	rows, err := st.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Submission
	for rows.Next() {
		s, err := scanSubmission(rows)
		if err != nil {
			return nil, err
		}
		out = append(out, s)
	}
	return out, rows.Err()
}

func (st *SQLStore) LatestDraft(ctx context.Context, userID string) (Submission, error) {
	row := st.db.QueryRowContext(ctx, `
		SELECT id, user_id, academic_year, status, total_points, sections_json,
		       submitted_at, reviewed_at, reviewed_by, review_comment, created_at, updated_at
		FROM submissions WHERE user_id=$1 AND status='draft'
		ORDER BY updated_at DESC LIMIT 1`, userID)
	return scanSubmission(row)
}

func (st *SQLStore) SetStatus(ctx context.Context, id string, status Status, reviewerID, comment string) (Submission, error) {
	if status != StatusApproved && status != StatusRejected {
		return Submission{}, fmt.Errorf("%w: cannot settle as %q", ErrInvalidTransition, status)
	}
	s, err := st.Get(ctx, id)
	if err != nil {
		return Submission{}, err
	}
	if s.Status != StatusPending {
		return Submission{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Status, status)
	}
	now := time.Now().Unix()
	_, err = st.db.ExecContext(ctx, `
		UPDATE submissions SET status=$1, reviewed_at=$2, reviewed_by=$3, review_comment=$4, updated_at=$5
		WHERE id=$6`,
		string(status), now, reviewerID, comment, now, id)
	if err != nil {
		return Submission{}, err
	}

	if st.events != nil {
		typ := eventlog.TypeSubmissionApproved
		if status == StatusRejected {
			typ = eventlog.TypeSubmissionRejected
		}
		_ = st.events.Append(ctx, typ, id, map[string]any{
			"reviewed_by": reviewerID,
			"comment":     comment,
		})
	}
	return st.Get(ctx, id)
}
