package eventlog

import (
	"context"
	"database/sql"
	"encoding/json"
	"time"
)

// Append-only audit trail of submission lifecycle transitions. Review
// disputes get settled from this table, so writes happen in the same
// code path as the status change.

const (
	TypeSubmissionSubmitted = "submission_submitted"
	TypeSubmissionApproved  = "submission_approved"
	TypeSubmissionRejected  = "submission_rejected"
)

type Event struct {
	Seq       int64
	Type      string
	Key       string // submission ID
	DataJSON  string
	CreatedAt int64
}

type Repo struct{ db *sql.DB }

func NewRepo(db *sql.DB) *Repo { return &Repo{db: db} }

func (r *Repo) Append(ctx context.Context, typ, key string, data any) error {
	payload, err := json.Marshal(data)
	if err != nil {
		return err
	}
	_, err = r.db.ExecContext(ctx,
		`INSERT INTO event_log (typ, key, data, created_at)
		 VALUES ($1,$2,$3,$4)`,
		typ, key, string(payload), time.Now().Unix())
	return err
}

// ListByKey returns the lifecycle history of one submission, oldest first.
func (r *Repo) ListByKey(ctx context.Context, key string) ([]Event, error) {
	rows, err := r.db.QueryContext(ctx,
		`SELECT seq, typ, key, data, created_at FROM event_log WHERE key=$1 ORDER BY seq ASC`, key)
	if err != nil {
		return nil, err
	}
	defer rows.Close()
	var out []Event
	for rows.Next() {
		var e Event
		if err := rows.Scan(&e.Seq, &e.Type, &e.Key, &e.DataJSON, &e.CreatedAt); err != nil {
			return nil, err
		}
		out = append(out, e)
	}
	return out, rows.Err()
}
