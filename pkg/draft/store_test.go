package draft

import (
	"testing"
)

func TestStoreRoundTrip(t *testing.T) {
	s := Open(t.TempDir())

	type payload struct {
		Text  string   `json:"text"`
		Count int      `json:"count"`
		Tags  []string `json:"tags"`
	}
	in := payload{Text: "hello", Count: 3, Tags: []string{"a", "b"}}
	s.Set("roundtrip", in)

	var out payload
	if !s.Get("roundtrip", &out) {
		t.Fatalf("expected stored value to be found")
	}
	if out.Text != in.Text || out.Count != in.Count || len(out.Tags) != 2 {
		t.Fatalf("round trip mismatch: %+v", out)
	}
}

func TestStoreGetMissing(t *testing.T) {
	s := Open(t.TempDir())
	var out string
	if s.Get("never-written", &out) {
		t.Fatalf("expected miss for absent key")
	}
}

func TestStoreClear(t *testing.T) {
	s := Open(t.TempDir())
	s.Set("k", "v")
	s.Clear("k")
	var out string
	if s.Get("k", &out) {
		t.Fatalf("expected cleared key to be absent")
	}
}

func TestStoreUnwritablePathDegrades(t *testing.T) {
	// A base path that cannot be created: writes must be swallowed and reads
	// must miss, with no panic and no error surfaced.
	s := Open("/dev/null/not-a-directory")
	s.Set("k", "v")
	var out string
	if s.Get("k", &out) {
		t.Fatalf("expected miss on unavailable store")
	}
	s.Clear("k")
}
