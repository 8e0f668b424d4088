// Package home implements the landing page: a snapshot of recent moods with
// density adjusted by the experience mode.
package home

import (
	"context"
	"fmt"
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/mode"
	"lumenharbor.dev/nous/pkg/tui/theme"
)

type fetchState int

const (
	stateLoading fetchState = iota
	stateReady
	stateFailed
)

type recentMsg struct {
	gen   int
	items []api.MoodItem
	err   error
}

// Model is the landing page.
type Model struct {
	client *api.Client
	mode   mode.Mode
	theme  theme.Theme

	gen   int
	state fetchState
	items []api.MoodItem

	width  int
	height int
}

// New constructs the page without issuing any fetch.
func New(client *api.Client, m mode.Mode, th theme.Theme) *Model {
	return &Model{client: client, mode: m, theme: th}
}

// SetMode adjusts rendering density.
func (m *Model) SetMode(mo mode.Mode) { m.mode = mo }

// SetSize stores the viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Refresh issues a recent-moods fetch for the current activation. Leaving
// and re-entering the page invalidates any in-flight result.
func (m *Model) Refresh() tea.Cmd {
	m.gen++
	m.state = stateLoading
	gen := m.gen
	limit := 3
	if m.mode == mode.Structured {
		limit = 7
	}
	return func() tea.Msg {
		items, err := m.client.RecentMoods(context.Background(), limit)
		return recentMsg{gen: gen, items: items, err: err}
	}
}

// Invalidate discards any in-flight fetch result.
func (m *Model) Invalidate() { m.gen++ }

// Update handles fetch results.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	if v, ok := msg.(recentMsg); ok {
		if v.gen != m.gen {
			return m, nil
		}
		if v.err != nil {
			m.state = stateFailed
			return m, nil
		}
		m.state = stateReady
		m.items = v.items
	}
	return m, nil
}

// View renders the snapshot.
func (m *Model) View() string {
	page := m.theme.Page

	lines := []string{page.Title.Render("Welcome back"), ""}
	lines = append(lines, page.Body.Render("How you've been"))

	switch m.state {
	case stateLoading:
		lines = append(lines, page.Faint.Render("Loading…"))
	case stateFailed:
		lines = append(lines, page.Error.Render("Could not load recent moods right now."))
	case stateReady:
		if len(m.items) == 0 {
			lines = append(lines, page.Faint.Render("Nothing logged yet. The mood command is always there."))
		}
		for _, item := range m.items {
			entry := fmt.Sprintf("%2d/10  %s", item.Mood, item.Note)
			if m.mode == mode.Structured {
				detail := item.TS
				if len(item.Tags) > 0 {
					detail = strings.TrimSpace(detail + "  " + strings.Join(item.Tags, ", "))
				}
				if detail != "" {
					entry = entry + "  " + detail
				}
			}
			lines = append(lines, page.Body.Render(strings.TrimRight(entry, " ")))
		}
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
