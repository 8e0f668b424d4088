package safety

import (
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/muesli/reflow/ansi"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/mode"
	"lumenharbor.dev/nous/pkg/tui/theme"
)

func newTestModel(baseURL string) *Model {
	m := New(api.New(baseURL), "US", mode.Gentle, theme.Default())
	m.SetSize(100, 40)
	return m
}

func keyMsg(s string) tea.Msg {
	switch s {
	case "ctrl+s":
		return tea.KeyPressMsg{Code: 's', Mod: tea.ModCtrl}
	case "esc":
		return tea.KeyPressMsg{Code: tea.KeyEscape}
	case "tab":
		return tea.KeyPressMsg{Code: tea.KeyTab}
	default:
		r := []rune(s)[0]
		return tea.KeyPressMsg{Text: s, Code: r}
	}
}

func stripANSI(s string) string {
	var b strings.Builder
	ansiSeq := false
	for _, r := range s {
		if r == ansi.Marker {
			ansiSeq = true
			continue
		}
		if ansiSeq {
			if ansi.IsTerminator(r) {
				ansiSeq = false
			}
			continue
		}
		b.WriteRune(r)
	}
	return b.String()
}

func TestIndependentFailureResourcesDownPlanUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/resources/api/crisis":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"down"}`))
		case "/api/v2/safety-plan":
			w.Write([]byte(`{"ok":true,"plan":{"warningSigns":"racing thoughts"}}`))
		}
	}))
	defer srv.Close()

	m := newTestModel(srv.URL)
	m.Open()

	// Deliver each fetch outcome directly, order independent.
	m.Update(m.fetchPlan(m.gen)())
	m.Update(m.fetchResources(m.gen)())

	view := stripANSI(m.View())
	if !strings.Contains(view, "Couldn't load resources right now.") {
		t.Fatalf("expected inline resources error; view=%q", view)
	}
	if !strings.Contains(view, "racing thoughts") {
		t.Fatalf("plan section must render despite the resources failure; view=%q", view)
	}
}

func TestIndependentFailurePlanDownResourcesUp(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/resources/api/crisis":
			w.Write([]byte(`{"resources":[{"name":"Lifeline","phone_number":"988"}]}`))
		case "/api/v2/safety-plan":
			w.WriteHeader(http.StatusInternalServerError)
			w.Write([]byte(`{"error":"down"}`))
		}
	}))
	defer srv.Close()

	m := newTestModel(srv.URL)
	m.Open()
	m.Update(m.fetchResources(m.gen)())
	m.Update(m.fetchPlan(m.gen)())

	view := stripANSI(m.View())
	if !strings.Contains(view, "Lifeline") {
		t.Fatalf("resources must render despite the plan failure; view=%q", view)
	}
	if !strings.Contains(view, "Couldn't load your plan right now.") {
		t.Fatalf("expected inline plan error; view=%q", view)
	}
}

func TestTeardownCancellationDiscardsStaleResults(t *testing.T) {
	m := newTestModel("http://unused.invalid")
	m.Open()
	stale := m.gen
	m.Close()

	m.Update(resourcesMsg{gen: stale, resources: []api.CrisisResource{{Name: "Old"}}})
	m.Update(planMsg{gen: stale, plan: api.SafetyPlan{WarningSigns: "old"}})
	if m.resources != nil {
		t.Fatalf("closed sheet must discard fetch results")
	}

	// Reopen: the stale generation still must not land.
	m.Open()
	m.Update(resourcesMsg{gen: stale, resources: []api.CrisisResource{{Name: "Old"}}})
	if m.resState != stateLoading {
		t.Fatalf("stale result must not change a reopened sheet")
	}
	if strings.Contains(stripANSI(m.View()), "Old") {
		t.Fatalf("stale data must not render after reopen")
	}
}

func TestResourceListCappedAtSix(t *testing.T) {
	m := newTestModel("http://unused.invalid")
	m.Open()
	var many []api.CrisisResource
	for i := 0; i < 10; i++ {
		many = append(many, api.CrisisResource{Name: "Resource", PhoneNumber: "988"})
	}
	m.Update(resourcesMsg{gen: m.gen, resources: many})

	view := stripANSI(m.View())
	if got := strings.Count(view, "Resource —"); got != 6 {
		t.Fatalf("expected exactly 6 resources rendered, got %d", got)
	}
}

func TestSaveFailureKeepsEdits(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/safety-plan":
			if r.Method == http.MethodPost {
				w.WriteHeader(http.StatusInternalServerError)
				w.Write([]byte(`{"error":"no"}`))
				return
			}
			w.Write([]byte(`{"ok":true,"plan":null}`))
		case "/resources/api/crisis":
			w.Write([]byte(`{"resources":[]}`))
		}
	}))
	defer srv.Close()

	m := newTestModel(srv.URL)
	m.Open()
	m.Update(m.fetchPlan(m.gen)())
	m.inputs[0].SetValue("edited but unsaved")

	_, cmd := m.Update(keyMsg("ctrl+s"))
	if m.save != saveSaving {
		t.Fatalf("expected saving state")
	}
	m.Update(cmd())

	if m.save != saveFailed {
		t.Fatalf("expected save failure state")
	}
	if m.inputs[0].Value() != "edited but unsaved" {
		t.Fatalf("failed save must keep the edited plan for retry")
	}
	if !strings.Contains(stripANSI(m.View()), "Couldn't save right now") {
		t.Fatalf("expected inline save failure message")
	}
}

func TestBackdropClickClosesContentClickDoesNot(t *testing.T) {
	m := newTestModel("http://unused.invalid")
	m.Open()
	m.ViewOver("")

	inside := tea.MouseClickMsg{X: m.bounds.X + 1, Y: m.bounds.Y + 1}
	m.Update(inside)
	if !m.IsOpen() {
		t.Fatalf("a click inside the sheet must not close it")
	}

	outside := tea.MouseClickMsg{X: 0, Y: 0}
	m.Update(outside)
	if m.IsOpen() {
		t.Fatalf("a backdrop click must close the sheet")
	}
}

func TestEscCloses(t *testing.T) {
	m := newTestModel("http://unused.invalid")
	m.Open()
	m.Update(keyMsg("esc"))
	if m.IsOpen() {
		t.Fatalf("esc must close the sheet")
	}
}

func TestSaveSuccessIndependentOfResourcesFailure(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		switch r.URL.Path {
		case "/api/v2/safety-plan":
			w.Write([]byte(`{"ok":true}`))
		case "/resources/api/crisis":
			w.WriteHeader(http.StatusInternalServerError)
		}
	}))
	defer srv.Close()

	m := newTestModel(srv.URL)
	m.Open()
	m.Update(m.fetchResources(m.gen)())
	m.Update(m.fetchPlan(m.gen)())

	_, cmd := m.Update(keyMsg("ctrl+s"))
	m.Update(cmd())
	if m.save != saveSaved {
		t.Fatalf("save must not be blocked by the resources fetch state, got %v", m.save)
	}
}
