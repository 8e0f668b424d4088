// Package journal implements the free-write page. Every edit is mirrored to
// the local draft store so the text survives restarts; the draft is cleared
// only after a successful remote save.
package journal

import (
	"context"

	"github.com/charmbracelet/bubbles/v2/textarea"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/draft"
	"lumenharbor.dev/nous/pkg/tui/theme"
)

type savedMsg struct {
	err error
}

// Model is the free-write page.
type Model struct {
	client *api.Client
	cell   *draft.Cell[string]
	theme  theme.Theme

	text   textarea.Model
	saving bool
	status string

	width  int
	height int
}

// New constructs the page seeded from the persisted draft.
func New(client *api.Client, cell *draft.Cell[string], th theme.Theme) *Model {
	ta := textarea.New()
	ta.Placeholder = "Write freely. This stays on your machine until you save."
	ta.SetValue(cell.Get())
	ta.Focus()
	return &Model{
		client: client,
		cell:   cell,
		theme:  th,
		text:   ta,
	}
}

// SetSize stores the viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
	w := width - 4
	if w < 20 {
		w = 20
	}
	h := height - 8
	if h < 3 {
		h = 3
	}
	m.text.SetWidth(w)
	m.text.SetHeight(h)
}

// Update handles page input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch v := msg.(type) {
	case savedMsg:
		m.saving = false
		if v.err != nil {
			m.status = "Could not save right now. Your draft is safe."
			return m, nil
		}
		m.cell.Reset()
		m.text.SetValue("")
		m.status = "Saved."
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		if v.String() == "ctrl+s" {
			text := m.text.Value()
			if text == "" {
				m.status = "Nothing to save yet."
				return m, nil
			}
			m.saving = true
			m.status = "Saving…"
			return m, func() tea.Msg {
				return savedMsg{err: m.client.AppendJournal(context.Background(), text, nil)}
			}
		}
		var cmd tea.Cmd
		before := m.text.Value()
		m.text, cmd = m.text.Update(msg)
		if after := m.text.Value(); after != before {
			// Mirror on every keystroke; a stale status line is cleared by
			// new writing.
			m.cell.Set(after)
			if m.status == "Saved." {
				m.status = ""
			}
		}
		return m, cmd
	}
	return m, nil
}

// View renders the page.
func (m *Model) View() string {
	page := m.theme.Page
	lines := []string{
		page.Title.Render("Free write"),
		"",
		m.text.View(),
		"",
		page.Faint.Render("ctrl+s save to journal"),
	}
	if m.status != "" {
		lines = append(lines, page.Faint.Render(m.status))
	}
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
