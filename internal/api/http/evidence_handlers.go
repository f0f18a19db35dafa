package http

import (
	"database/sql"
	"errors"
	"io"
	"net/http"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"github.com/campusworks/faculty-appraisal/internal/appraisal"
	authmw "github.com/campusworks/faculty-appraisal/internal/auth/middleware"
	"github.com/campusworks/faculty-appraisal/internal/rbac"
	"github.com/campusworks/faculty-appraisal/internal/storage"
)

const maxEvidenceBytes = 20 << 20 // 20 MiB per file

type evidenceRow struct {
	ID          string `json:"id"`
	Filename    string `json:"filename"`
	ContentType string `json:"content_type"`
	UploadedBy  string `json:"uploaded_by"`
	CreatedAt   int64  `json:"created_at"`
}

// POST /submissions/{submissionID}/evidence  (multipart, field "file")
// Owners attach supporting documents while the submission is still open;
// approved submissions are frozen, evidence included.
func UploadEvidenceHandler(store appraisal.Store, blobs storage.EvidenceStore, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "submissionID")
		caller := authmw.SubjectFromContext(r.Context())

		s, err := store.Get(r.Context(), id)
		if err != nil {
			if errors.Is(err, appraisal.ErrNotFound) {
				http.Error(w, err.Error(), http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		if s.UserID != caller {
			http.Error(w, "forbidden", http.StatusForbidden)
			return
		}
		if s.Status == appraisal.StatusApproved {
			http.Error(w, appraisal.ErrFrozen.Error(), http.StatusConflict)
			return
		}

		r.Body = http.MaxBytesReader(w, r.Body, maxEvidenceBytes)
		f, hdr, err := r.FormFile("file")
		if err != nil {
			http.Error(w, "file required", http.StatusBadRequest)
			return
		}
		defer f.Close()

		evID := uuid.NewString()
		key := storage.EvidenceKey(id, evID, hdr.Filename)
		if _, err := blobs.Put(key, f); err != nil {
			http.Error(w, "store file: "+err.Error(), http.StatusInternalServerError)
			return
		}

		ev := evidenceRow{
			ID:          evID,
			Filename:    hdr.Filename,
			ContentType: hdr.Header.Get("Content-Type"),
			UploadedBy:  caller,
			CreatedAt:   time.Now().Unix(),
		}
		_, err = db.ExecContext(r.Context(),
			`INSERT INTO evidence (id, submission_id, filename, blob_key, content_type, uploaded_by, created_at)
			 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
			ev.ID, id, ev.Filename, key, ev.ContentType, ev.UploadedBy, ev.CreatedAt)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusCreated, ev)
	}
}

// GET /submissions/{submissionID}/evidence
func ListEvidenceHandler(store appraisal.Store, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "submissionID")
		if !canViewSubmission(r, store, id, w) {
			return
		}
		rows, err := db.QueryContext(r.Context(),
			`SELECT id, filename, content_type, uploaded_by, created_at
			 FROM evidence WHERE submission_id=$1 ORDER BY created_at`, id)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()
		out := []evidenceRow{}
		for rows.Next() {
			var ev evidenceRow
			if err := rows.Scan(&ev.ID, &ev.Filename, &ev.ContentType, &ev.UploadedBy, &ev.CreatedAt); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			out = append(out, ev)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}

// GET /submissions/{submissionID}/evidence/{evidenceID}
func GetEvidenceHandler(store appraisal.Store, blobs storage.EvidenceStore, db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		id := chi.URLParam(r, "submissionID")
		evID := chi.URLParam(r, "evidenceID")
		if !canViewSubmission(r, store, id, w) {
			return
		}

		var key, filename, contentType string
		err := db.QueryRowContext(r.Context(),
			`SELECT blob_key, filename, content_type FROM evidence WHERE id=$1 AND submission_id=$2`,
			evID, id).Scan(&key, &filename, &contentType)
		if err != nil {
			if errors.Is(err, sql.ErrNoRows) {
				http.Error(w, "evidence not found", http.StatusNotFound)
				return
			}
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}

		rc, err := blobs.Get(key)
		if err != nil {
			http.Error(w, "read file: "+err.Error(), http.StatusInternalServerError)
			return
		}
		defer rc.Close()

		if contentType == "" {
			contentType = "application/octet-stream"
		}
		w.Header().Set("Content-Type", contentType)
		w.Header().Set("Content-Disposition", `attachment; filename="`+filename+`"`)
		_, _ = io.Copy(w, rc)
	}
}

// canViewSubmission writes the error response itself and reports whether
// the caller may read the submission's evidence.
func canViewSubmission(r *http.Request, store appraisal.Store, id string, w http.ResponseWriter) bool {
	s, err := store.Get(r.Context(), id)
	if err != nil {
		if errors.Is(err, appraisal.ErrNotFound) {
			http.Error(w, err.Error(), http.StatusNotFound)
			return false
		}
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return false
	}
	caller := authmw.SubjectFromContext(r.Context())
	role := rbac.RoleFromContext(r.Context())
	if s.UserID != caller && !rbac.HasPermission(role, "submission:view-all") {
		http.Error(w, appraisal.ErrNotFound.Error(), http.StatusNotFound)
		return false
	}
	return true
}
