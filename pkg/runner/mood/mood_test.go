package mood

import (
	"context"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"

	"lumenharbor.dev/nous/pkg/api"
)

func TestLogThenRefreshOrdering(t *testing.T) {
	var mu sync.Mutex
	var calls []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.Method+" "+r.URL.Path)
		mu.Unlock()
		switch r.URL.Path {
		case "/api/v2/mood/log":
			w.Write([]byte(`{"ok":true}`))
		case "/api/v2/mood/recent":
			w.Write([]byte(`{"ok":true,"items":[{"mood":8,"note":"fresh"}]}`))
		default:
			t.Errorf("unexpected path %q", r.URL.Path)
		}
	}))
	defer srv.Close()

	n := &Log{Client: api.New(srv.URL), Mood: 8, Note: "fresh"}
	if err := n.Do(context.Background()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 2 {
		t.Fatalf("expected save then refresh, got %v", calls)
	}
	if calls[0] != "POST /api/v2/mood/log" {
		t.Fatalf("expected the save first, got %v", calls)
	}
	if calls[1] != "GET /api/v2/mood/recent" {
		t.Fatalf("expected the refresh second, got %v", calls)
	}
}

func TestLogFailureSkipsRefresh(t *testing.T) {
	var mu sync.Mutex
	var calls []string

	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		mu.Lock()
		calls = append(calls, r.URL.Path)
		mu.Unlock()
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"down"}`))
	}))
	defer srv.Close()

	n := &Log{Client: api.New(srv.URL), Mood: 5}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected error when the save fails")
	}

	mu.Lock()
	defer mu.Unlock()
	if len(calls) != 1 {
		t.Fatalf("refresh must not run after a failed save, calls=%v", calls)
	}
}

func TestLogRejectsOutOfRangeMood(t *testing.T) {
	n := &Log{Client: api.New("http://unused.invalid"), Mood: 11}
	if err := n.Do(context.Background()); err == nil {
		t.Fatalf("expected validation error")
	}
}
