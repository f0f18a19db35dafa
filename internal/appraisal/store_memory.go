package appraisal

import (
	"context"
	"fmt"
	"sort"
	"sync"
	"time"

	"github.com/google/uuid"
)

// memoryStore backs tests and single-process dev runs. Same contract as
// SQLStore, no durability.
type memoryStore struct {
	mu   sync.RWMutex
	subs map[string]Submission
}

func NewInMemoryStore() Store {
	return &memoryStore{subs: map[string]Submission{}}
}

func (m *memoryStore) Save(_ context.Context, s Submission) (Submission, error) {
	switch s.Status {
	case "", StatusDraft:
		s.Status = StatusDraft
	case StatusPending:
	default:
		return Submission{}, fmt.Errorf("%w: cannot save with status %q", ErrInvalidTransition, s.Status)
	}

	m.mu.Lock()
	defer m.mu.Unlock()

	now := time.Now().Unix()
	if s.ID == "" {
		s.ID = uuid.NewString()
		s.CreatedAt = now
	} else {
		existing, ok := m.subs[s.ID]
		if !ok {
			return Submission{}, ErrNotFound
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
	if s.Status == StatusPending && s.SubmittedAt == 0 {
		s.SubmittedAt = now
	}

	s.Rescore()
	m.subs[s.ID] = s
	return s, nil
}

func (m *memoryStore) Get(_ context.Context, id string) (Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	s, ok := m.subs[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	return s, nil
}

func (m *memoryStore) List(_ context.Context, opts ListOpts) ([]Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var out []Submission
	for _, s := range m.subs {
		if opts.UserID != "" && s.UserID != opts.UserID {
			continue
		}
		if opts.Status != "" && s.Status != opts.Status {
			continue
		}
		out = append(out, s)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].UpdatedAt > out[j].UpdatedAt })
	if opts.Offset > 0 {
		if opts.Offset >= len(out) {
			return nil, nil
		}
		out = out[opts.Offset:]
	}
	if opts.Limit > 0 && len(out) > opts.Limit {
		out = out[:opts.Limit]
	}
	return out, nil
}

func (m *memoryStore) LatestDraft(_ context.Context, userID string) (Submission, error) {
	m.mu.RLock()
	defer m.mu.RUnlock()
	var latest Submission
	found := false
	for _, s := range m.subs {
		if s.UserID != userID || s.Status != StatusDraft {
			continue
		}
		if !found || s.UpdatedAt > latest.UpdatedAt {
			latest = s
			found = true
		}
	}
	if !found {
		return Submission{}, ErrNotFound
	}
	return latest, nil
}

func (m *memoryStore) SetStatus(_ context.Context, id string, status Status, reviewerID, comment string) (Submission, error) {
	if status != StatusApproved && status != StatusRejected {
		return Submission{}, fmt.Errorf("%w: cannot settle as %q", ErrInvalidTransition, status)
	}
	m.mu.Lock()
	defer m.mu.Unlock()
	s, ok := m.subs[id]
	if !ok {
		return Submission{}, ErrNotFound
	}
	if s.Status != StatusPending {
		return Submission{}, fmt.Errorf("%w: %s -> %s", ErrInvalidTransition, s.Status, status)
	}
	now := time.Now().Unix()
	s.Status = status
	s.ReviewedAt = now
	s.ReviewedBy = reviewerID
	s.ReviewComment = comment
	s.UpdatedAt = now
	m.subs[id] = s
	return s, nil
}
