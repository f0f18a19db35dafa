package storage

import (
	"errors"
	"io"
	"os"
	"path/filepath"
	"strings"
)

// EvidenceStore holds the supporting documents faculty attach to their
// submissions (sanction letters, patent grants, certificates). Keys are
// scoped "submissions/<id>/<evidenceID>_<filename>".
type EvidenceStore interface {
	Put(key string, r io.Reader) (string, error) // returns canonical key
	Get(key string) (io.ReadCloser, error)
}

// EvidenceKey builds the canonical blob key for one attachment. The evidence
// ID is part of the key so two uploads of the same filename to the same
// submission never clobber each other's bytes.
func EvidenceKey(submissionID, evidenceID, filename string) string {
	return "submissions/" + submissionID + "/" + evidenceID + "_" + filepath.Base(filename)
}

type FSStore struct{ base string }

func NewFSStore(base string) (*FSStore, error) {
	if base == "" {
		base = "./data/evidence"
	}
	if err := os.MkdirAll(base, 0o755); err != nil {
		return nil, err
	}
	return &FSStore{base: base}, nil
}

func (s *FSStore) Put(key string, r io.Reader) (string, error) {
	if key == "" {
		return "", errors.New("empty key")
	}
	clean := filepath.Clean(key)
	if strings.HasPrefix(clean, "..") {
		return "", errors.New("key escapes store root")
	}
	dst := filepath.Join(s.base, clean)
	if err := os.MkdirAll(filepath.Dir(dst), 0o755); err != nil {
		return "", err
	}
	f, err := os.Create(dst)
	if err != nil {
		return "", err
	}
	defer f.Close()
	if _, err := io.Copy(f, r); err != nil {
		return "", err
	}
	return clean, nil
}

func (s *FSStore) Get(key string) (io.ReadCloser, error) {
	clean := filepath.Clean(key)
	if strings.HasPrefix(clean, "..") {
		return nil, errors.New("key escapes store root")
	}
	return os.Open(filepath.Join(s.base, clean))
}
