package appraisal

import (
	"context"
	"errors"
)

var (
	ErrNotFound          = errors.New("submission not found")
	ErrFrozen            = errors.New("submission is approved and frozen")
	ErrInvalidTransition = errors.New("invalid status transition")
)

// ListOpts filters List. An empty UserID means all users (HOD/admin view);
// handlers force it to the caller's own ID for faculty.
type ListOpts struct {
	UserID string
	Status Status
	Limit  int
	Offset int
}

type Store interface {
	// Save creates or updates a submission as draft or pending. The store
	// rescores before persisting and refuses edits once approved.
	Save(ctx context.Context, s Submission) (Submission, error)
	Get(ctx context.Context, id string) (Submission, error)
	List(ctx context.Context, opts ListOpts) ([]Submission, error)
	// LatestDraft returns the most recently updated draft for a user.
	LatestDraft(ctx context.Context, userID string) (Submission, error)
	// SetStatus settles a pending submission as approved or rejected.
	SetStatus(ctx context.Context, id string, status Status, reviewerID, comment string) (Submission, error)
}
