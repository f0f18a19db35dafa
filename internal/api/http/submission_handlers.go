package http

import (
	"encoding/json"
	"errors"
	"net/http"
	"strings"

	"github.com/go-chi/chi/v5"
	"github.com/go-playground/validator/v10"

	"github.com/campusworks/faculty-appraisal/internal/appraisal"
	authmw "github.com/campusworks/faculty-appraisal/internal/auth/middleware"
	"github.com/campusworks/faculty-appraisal/internal/rbac"
)

var validate = validator.New()

// saveSubmissionMeta is the validated envelope of a save request; the
// activity sections themselves are free-form and scored conservatively,
// never rejected (see internal/scoring).
type saveSubmissionMeta struct {
	AcademicYear string `validate:"required"`
	Status       string `validate:"omitempty,oneof=draft pending"`
}

// POST /submissions
// Creates or updates the caller's submission. status "pending" submits the
// form for review; anything else saves a draft. Points are recomputed
// server-side, whatever the payload claims.
func SaveSubmissionHandler(store appraisal.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var sub appraisal.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			http.Error(w, "bad json: "+err.Error(), http.StatusBadRequest)
			return
		}
		// The submitter is always the authenticated caller.
		sub.UserID = authmw.SubjectFromContext(r.Context())

		meta := saveSubmissionMeta{AcademicYear: sub.AcademicYear, Status: string(sub.Status)}
		if err := validate.Struct(meta); err != nil {
			http.Error(w, "invalid submission: "+err.Error(), http.StatusBadRequest)
			return
		}

		saved, err := store.Save(r.Context(), sub)
		if err != nil {
			switch {
			case errors.Is(err, appraisal.ErrFrozen):
				http.Error(w, err.Error(), http.StatusConflict)
			case errors.Is(err, appraisal.ErrInvalidTransition):
				http.Error(w, err.Error(), http.StatusUnprocessableEntity)
			case errors.Is(err, appraisal.ErrNotFound):
				http.Error(w, err.Error(), http.StatusNotFound)
			default:
				http.Error(w, err.Error(), http.StatusInternalServerError)
			}
			return
		}
		writeJSON(w, http.StatusOK, saved)
	}
}

// GET /submissions?status=...&user_id=...&limit=50&offset=0
// Callers without submission:view-all only ever see their own forms.
func ListSubmissionsHandler(store appraisal.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := rbac.RoleFromContext(r.Context())
		sub := authmw.SubjectFromContext(r.Context())

		userID := strings.TrimSpace(r.URL.Query().Get("user_id"))
		status := strings.TrimSpace(r.URL.Query().Get("status"))
		limit := parseIntDefault(r.URL.Query().Get("limit"), 50)
		offset := parseIntDefault(r.URL.Query().Get("offset"), 0)

		if !rbac.HasPermission(role, "submission:view-all") {
			userID = sub
		}

		list, err := store.List(r.Context(), appraisal.ListOpts{
			UserID: userID,
			Status: appraisal.Status(status),
			Limit:  limit,
			Offset: offset,
		})
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if list == nil {
			list = []appraisal.Submission{}
		}
		writeJSON(w, http.StatusOK, list)
	}
}

// GET /submissions/latest-draft
func LatestDraftHandler(store appraisal.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		sub := authmw.SubjectFromContext(r.Context())
		d, err := store.LatestDraft(r.Context(), sub)
		if err != nil {
			if errors.Is(err, appraisal.ErrNotFound) {
				http.Error(w, "no draft found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, d)
	}
}

// GET /submissions/{submissionID}
func GetSubmissionHandler(store appraisal.Store) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "submissionID")
		s, err := store.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, appraisal.ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		role := rbac.RoleFromContext(r.Context())
		caller := authmw.SubjectFromContext(r.Context())
		if s.UserID != caller && !rbac.HasPermission(role, "submission:view-all") {
			// Indistinguishable from a missing submission for non-owners.
			http.Error(w, appraisal.ErrNotFound.Error(), http.StatusNotFound)
			return
		}
		writeJSON(w, http.StatusOK, s)
	}
}
