package journal

import (
	"net/http"
	"net/http/httptest"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/draft"
	"lumenharbor.dev/nous/pkg/tui/theme"
)

func newCell(t *testing.T) *draft.Cell[string] {
	t.Helper()
	return draft.NewCell(draft.Open(t.TempDir()), draft.JournalFreeWriteKey, "")
}

func TestTypingMirrorsToDraft(t *testing.T) {
	cell := newCell(t)
	m := New(api.New("http://unused.invalid"), cell, theme.Default())
	m.SetSize(80, 24)

	for _, r := range "hi" {
		m.Update(tea.KeyPressMsg{Text: string(r), Code: r})
	}
	if cell.Get() != "hi" {
		t.Fatalf("expected draft mirrored per keystroke, got %q", cell.Get())
	}
}

func TestSeedsFromPersistedDraft(t *testing.T) {
	cell := newCell(t)
	cell.Set("carried over")
	m := New(api.New("http://unused.invalid"), cell, theme.Default())
	if m.text.Value() != "carried over" {
		t.Fatalf("expected page seeded from draft, got %q", m.text.Value())
	}
}

func TestSaveClearsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`{"ok":true}`))
	}))
	defer srv.Close()

	cell := newCell(t)
	cell.Set("entry text")
	m := New(api.New(srv.URL), cell, theme.Default())
	m.SetSize(80, 24)

	_, cmd := m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	m.Update(cmd())

	if cell.Get() != "" {
		t.Fatalf("draft must be cleared only after a successful save; got %q", cell.Get())
	}
	if m.text.Value() != "" {
		t.Fatalf("page must be emptied after save")
	}
}

func TestFailedSaveKeepsDraft(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
		w.Write([]byte(`{"error":"offline"}`))
	}))
	defer srv.Close()

	cell := newCell(t)
	cell.Set("precious words")
	m := New(api.New(srv.URL), cell, theme.Default())

	_, cmd := m.Update(tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl})
	m.Update(cmd())

	if cell.Get() != "precious words" {
		t.Fatalf("failed save must keep the draft, got %q", cell.Get())
	}
	if m.text.Value() != "precious words" {
		t.Fatalf("failed save must keep the page text")
	}
}
