// Package talk implements the chat page. The transcript lives in memory for
// the session only.
package talk

import (
	"context"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"
	"github.com/muesli/reflow/wordwrap"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/tui/theme"
)

type replyMsg struct {
	text string
	err  error
}

type line struct {
	fromUser bool
	text     string
}

// Model is the chat page.
type Model struct {
	client *api.Client
	theme  theme.Theme

	input      textinput.Model
	transcript []line
	waiting    bool
	status     string

	width  int
	height int
}

// New constructs an empty chat page.
func New(client *api.Client, th theme.Theme) *Model {
	ti := textinput.New()
	ti.Placeholder = "Say what's on your mind"
	ti.CharLimit = 512
	ti.Prompt = "> "
	ti.VirtualCursor = true
	ti.Focus()
	return &Model{client: client, theme: th, input: ti}
}

// SetSize stores the viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Update handles chat input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch v := msg.(type) {
	case replyMsg:
		m.waiting = false
		if v.err != nil {
			m.status = "Could not reach the assistant right now."
			return m, nil
		}
		m.status = ""
		m.transcript = append(m.transcript, line{text: v.text})
		return m, nil

	case tea.KeyMsg:
		if v.String() == "enter" {
			if m.waiting {
				return m, nil
			}
			message := strings.TrimSpace(m.input.Value())
			if message == "" {
				return m, nil
			}
			m.transcript = append(m.transcript, line{fromUser: true, text: message})
			m.input.SetValue("")
			m.waiting = true
			m.status = "…"
			return m, func() tea.Msg {
				reply, err := m.client.Chat(context.Background(), message)
				return replyMsg{text: reply, err: err}
			}
		}
		var cmd tea.Cmd
		m.input, cmd = m.input.Update(msg)
		return m, cmd
	}
	return m, nil
}

// View renders the transcript and prompt.
func (m *Model) View() string {
	page := m.theme.Page
	wrap := m.width - 6
	if wrap < 20 {
		wrap = 60
	}

	lines := []string{page.Title.Render("Talk"), ""}
	for _, l := range m.transcript {
		if l.fromUser {
			lines = append(lines, page.Active.Render("you  ")+page.Body.Render(wordwrap.String(l.text, wrap)))
		} else {
			lines = append(lines, page.Body.Render(wordwrap.String(l.text, wrap)))
		}
	}
	if m.status != "" {
		lines = append(lines, page.Faint.Render(m.status))
	}
	lines = append(lines, "", m.input.View())
	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}
