package storage

import (
	"io"
	"strings"
	"testing"
)

func TestEvidenceKeyDistinctPerUpload(t *testing.T) {
	// The same filename uploaded twice to one submission must land under
	// two different keys.
	k1 := EvidenceKey("sub-1", "ev-1", "sanction-letter.pdf")
	k2 := EvidenceKey("sub-1", "ev-2", "sanction-letter.pdf")
	if k1 == k2 {
		t.Fatalf("duplicate filename collapsed to one key: %s", k1)
	}
	if !strings.HasPrefix(k1, "submissions/sub-1/") {
		t.Fatalf("key not scoped to submission: %s", k1)
	}
}

func TestEvidenceKeyStripsDirectories(t *testing.T) {
	k := EvidenceKey("sub-1", "ev-1", "../../etc/passwd")
	if k != "submissions/sub-1/ev-1_passwd" {
		t.Fatalf("key = %s", k)
	}
}

func TestFSStoreDuplicateFilenameKeepsBothBlobs(t *testing.T) {
	st, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}

	k1 := EvidenceKey("sub-1", "ev-1", "grant.pdf")
	k2 := EvidenceKey("sub-1", "ev-2", "grant.pdf")
	if _, err := st.Put(k1, strings.NewReader("first upload")); err != nil {
		t.Fatal(err)
	}
	if _, err := st.Put(k2, strings.NewReader("second upload")); err != nil {
		t.Fatal(err)
	}

	for key, want := range map[string]string{k1: "first upload", k2: "second upload"} {
		rc, err := st.Get(key)
		if err != nil {
			t.Fatalf("get %s: %v", key, err)
		}
		got, err := io.ReadAll(rc)
		rc.Close()
		if err != nil {
			t.Fatal(err)
		}
		if string(got) != want {
			t.Fatalf("%s = %q, want %q", key, got, want)
		}
	}
}

func TestFSStoreRejectsEscapingKeys(t *testing.T) {
	st, err := NewFSStore(t.TempDir())
	if err != nil {
		t.Fatal(err)
	}
	if _, err := st.Put("../outside.txt", strings.NewReader("x")); err == nil {
		t.Fatal("put accepted a key escaping the store root")
	}
	if _, err := st.Get("../outside.txt"); err == nil {
		t.Fatal("get accepted a key escaping the store root")
	}
}
