package http

import (
	"context"
	"database/sql"
	"encoding/csv"
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"strings"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

type userRow struct {
	ID         string `json:"id,omitempty"`
	Username   string `json:"username"`
	Name       string `json:"name,omitempty"`
	Role       string `json:"role,omitempty"`     // faculty|hod|admin, default faculty
	Department string `json:"department,omitempty"`
	Password   string `json:"password,omitempty"` // plaintext optional, hashed before storage
}

// POST /users/bulk
// Accepts a multipart file= (CSV or JSON) or a raw JSON array. This is also
// how a fresh department gets seeded.
func BulkUpsertUsersHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		var rows []userRow
		ct := r.Header.Get("Content-Type")
		if strings.HasPrefix(ct, "multipart/form-data") {
			f, _, err := r.FormFile("file")
			if err != nil {
				http.Error(w, "file required", http.StatusBadRequest)
				return
			}
			defer f.Close()
			// sniff CSV vs JSON by the first non-space byte
			buf := make([]byte, 1)
			if _, err := f.Read(buf); err != nil {
				http.Error(w, "empty file", http.StatusBadRequest)
				return
			}
			if seeker, ok := f.(io.Seeker); ok {
				_, _ = seeker.Seek(0, io.SeekStart)
			}
			if buf[0] == '[' || buf[0] == '{' {
				if err := json.NewDecoder(f).Decode(&rows); err != nil {
					http.Error(w, "bad json", http.StatusBadRequest)
					return
				}
			} else {
				rs, err := parseUsersCSV(f)
				if err != nil {
					http.Error(w, "bad csv: "+err.Error(), http.StatusBadRequest)
					return
				}
				rows = rs
			}
		} else {
			if err := json.NewDecoder(r.Body).Decode(&rows); err != nil {
				http.Error(w, "expected JSON array or multipart file", http.StatusBadRequest)
				return
			}
		}
		if len(rows) == 0 {
			writeJSON(w, http.StatusOK, map[string]any{"inserted": 0, "updated": 0})
			return
		}

		ins, upd, err := upsertUsers(r.Context(), db, rows)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, map[string]any{"inserted": ins, "updated": upd})
	}
}

// parseUsersCSV expects a header row:
// username,name,role,department,password
func parseUsersCSV(r io.Reader) ([]userRow, error) {
	cr := csv.NewReader(r)
	records, err := cr.ReadAll()
	if err != nil {
		return nil, err
	}
	if len(records) < 2 {
		return nil, errors.New("csv needs a header and at least one row")
	}
	idx := map[string]int{}
	for i, col := range records[0] {
		idx[strings.ToLower(strings.TrimSpace(col))] = i
	}
	get := func(rec []string, col string) string {
		i, ok := idx[col]
		if !ok || i >= len(rec) {
			return ""
		}
		return strings.TrimSpace(rec[i])
	}
	var rows []userRow
	for _, rec := range records[1:] {
		u := userRow{
			Username:   get(rec, "username"),
			Name:       get(rec, "name"),
			Role:       get(rec, "role"),
			Department: get(rec, "department"),
			Password:   get(rec, "password"),
		}
		if u.Username == "" {
			continue
		}
		rows = append(rows, u)
	}
	return rows, nil
}

func upsertUsers(ctx context.Context, db *sql.DB, rows []userRow) (inserted, updated int, err error) {
	tx, err := db.BeginTx(ctx, nil)
	if err != nil {
		return 0, 0, err
	}
	defer func() {
		if err != nil {
			_ = tx.Rollback()
		}
	}()

	now := time.Now().Unix()
	for _, u := range rows {
		if u.Role == "" {
			u.Role = "faculty"
		}
		var hash string
		if u.Password != "" {
			h, herr := bcrypt.GenerateFromPassword([]byte(u.Password), 12)
			if herr != nil {
				err = herr
				return 0, 0, err
			}
			hash = string(h)
		}

		var existingID string
		qerr := tx.QueryRowContext(ctx, `SELECT id FROM users WHERE username=$1`, u.Username).Scan(&existingID)
		switch {
		case qerr == nil:
			if hash != "" {
				_, err = tx.ExecContext(ctx,
					`UPDATE users SET name=$1, role=$2, department=$3, password_hash=$4 WHERE id=$5`,
					u.Name, u.Role, u.Department, hash, existingID)
			} else {
				_, err = tx.ExecContext(ctx,
					`UPDATE users SET name=$1, role=$2, department=$3 WHERE id=$4`,
					u.Name, u.Role, u.Department, existingID)
			}
			if err != nil {
				return 0, 0, err
			}
			updated++
		case errors.Is(qerr, sql.ErrNoRows):
			id := u.ID
			if id == "" {
				id = uuid.NewString()
			}
			_, err = tx.ExecContext(ctx,
				`INSERT INTO users (id, username, name, role, department, password_hash, created_at)
				 VALUES ($1,$2,$3,$4,$5,$6,$7)`,
				id, u.Username, u.Name, u.Role, u.Department, hash, now)
			if err != nil {
				return 0, 0, err
			}
			inserted++
		default:
			err = qerr
			return 0, 0, err
		}
	}
	err = tx.Commit()
	if err != nil {
		return 0, 0, err
	}
	return inserted, updated, nil
}

// GET /users?role=faculty&department=CSE
func ListUsersHandler(db *sql.DB) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		role := strings.TrimSpace(r.URL.Query().Get("role"))
		dept := strings.TrimSpace(r.URL.Query().Get("department"))

		q := `SELECT id, username, name, role, department FROM users`
		var args []any
		var where []string
		if role != "" {
			args = append(args, role)
			where = append(where, "role=$1")
		}
		if dept != "" {
			args = append(args, dept)
			if len(args) == 1 {
				where = append(where, "department=$1")
			} else {
				where = append(where, "department=$2")
			}
		}
		if len(where) > 0 {
			q += " WHERE " + strings.Join(where, " AND ")
		}
		q += " ORDER BY username"

		rows, err := db.QueryContext(r.Context(), q, args...)
		if err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		defer rows.Close()

		out := []userRow{}
		for rows.Next() {
			var u userRow
			if err := rows.Scan(&u.ID, &u.Username, &u.Name, &u.Role, &u.Department); err != nil {
				http.Error(w, err.Error(), http.StatusInternalServerError)
				return
			}
			out = append(out, u)
		}
		if err := rows.Err(); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
		writeJSON(w, http.StatusOK, out)
	}
}
