package http

import (
	"encoding/json"
	"errors"
	"net/http"

	"github.com/go-chi/chi/v5"

	"github.com/campusworks/faculty-appraisal/internal/appraisal"
	authmw "github.com/campusworks/faculty-appraisal/internal/auth/middleware"
	"github.com/campusworks/faculty-appraisal/internal/eventlog"
)

type reviewReq struct {
	Comment string `json:"comment,omitempty"`
}

// POST /submissions/{submissionID}/approve
func ApproveSubmissionHandler(store appraisal.Store) http.HandlerFunc {
	return settleHandler(store, appraisal.StatusApproved)
}

// POST /submissions/{submissionID}/reject
func RejectSubmissionHandler(store appraisal.Store) http.HandlerFunc {
	return settleHandler(store, appraisal.StatusRejected)
}

type historyEntry struct {
	Seq       int64           `json:"seq"`
	Type      string          `json:"type"`
	Data      json.RawMessage `json:"data"`
	CreatedAt int64           `json:"created_at"`
}

// GET /submissions/{submissionID}/history
// The lifecycle audit trail, oldest first. This is what a reviewer pulls up
// when a faculty member disputes a rejection.
func SubmissionHistoryHandler(store appraisal.Store, events *eventlog.Repo) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "submissionID")
		if _, err := store.Get(r.Context(), id); err != nil {
			if errors.Is(err, appraisal.ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		evs, err := events.ListByKey(r.Context(), id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		out := make([]historyEntry, 0, len(evs))
		for _, e := range evs {
			out = append(out, historyEntry{
				Seq:       e.Seq,
				Type:      e.Type,
				Data:      json.RawMessage(e.DataJSON),
				CreatedAt: e.CreatedAt,
			})
		}
		writeJSON(w, http.StatusOK, out)
	}
}

func settleHandler(store appraisal.Store, status appraisal.Status) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "submissionID")
		reviewer := authmw.SubjectFromContext(r.Context())

		var req reviewReq
		if r.Body != nil {
			_ = json.NewDecoder(r.Body).Decode(&req) // comment is optional
		}

		s, err := store.SetStatus(r.Context(), id, status, reviewer, req.Comment)
		if err != nil {
			switch {
			case errors.Is(err, appraisal.ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			case errors.Is(err, appraisal.ErrInvalidTransition):
				http.Error(w, err.Error(), http.StatusConflict)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}
