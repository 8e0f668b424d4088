// Package thought implements the guided thought-record wizard: five fixed
// steps with forward-progress gating and a structured submit.
package thought

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/tui/theme"
)

// Step identifies the active wizard stage.
type Step int

// The five wizard steps, in strictly linear order.
const (
	StepSituation Step = iota
	StepThought
	StepEmotion
	StepEvidence
	StepAlternative
)

const (
	defaultIntensity = 6
	minIntensity     = 1
	maxIntensity     = 10
)

// SavedConfirmation is the fixed status message after a successful submit.
const SavedConfirmation = "Saved. Thank you for walking through that."

var stepTitles = [5]string{
	"Situation",
	"Thought",
	"Emotion & intensity",
	"Evidence",
	"Alternative thought",
}

type savedMsg struct {
	err error
}

// Model tracks the wizard state: the current step and the accumulated draft.
type Model struct {
	client *api.Client
	theme  theme.Theme

	step Step

	situation       textinput.Model
	thoughts        textinput.Model
	emotions        textinput.Model
	intensity       int
	evidenceFor     textinput.Model
	evidenceAgainst textinput.Model
	alternative     textinput.Model
	evidenceFocus   int

	saving bool
	status string

	width  int
	height int
}

// New constructs the wizard at step 0 with default field values.
func New(client *api.Client, th theme.Theme) *Model {
	m := &Model{
		client:    client,
		theme:     th,
		intensity: defaultIntensity,
	}
	m.situation = newInput("What happened?")
	m.thoughts = newInput("What went through your mind?")
	m.emotions = newInput("e.g. sad, anxious")
	m.evidenceFor = newInput("What supports the thought?")
	m.evidenceAgainst = newInput("What doesn't fit?")
	m.alternative = newInput("A kinder, more balanced view")
	m.situation.Focus()
	return m
}

func newInput(placeholder string) textinput.Model {
	ti := textinput.New()
	ti.Placeholder = placeholder
	ti.CharLimit = 512
	ti.Prompt = ""
	ti.VirtualCursor = true
	return ti
}

// Step returns the current step index.
func (m *Model) Step() Step { return m.step }

// Intensity returns the current intensity value.
func (m *Model) Intensity() int { return m.intensity }

// Status returns the current status line.
func (m *Model) Status() string { return m.status }

// SetSize stores the viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Init implements tea.Model when the wizard runs standalone.
func (m *Model) Init() tea.Cmd { return nil }

// SplitEmotions tokenizes the free-text emotions field: split on commas,
// trim each token, drop empties.
func SplitEmotions(s string) []string {
	parts := strings.Split(s, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		if t := strings.TrimSpace(p); t != "" {
			out = append(out, t)
		}
	}
	return out
}

// canAdvance gates Next on the current step's required field. Evidence and
// the alternative thought are optional, so steps 3 and 4 never block.
func (m *Model) canAdvance() bool {
	switch m.step {
	case StepSituation:
		return strings.TrimSpace(m.situation.Value()) != ""
	case StepThought:
		return strings.TrimSpace(m.thoughts.Value()) != ""
	case StepEmotion:
		return strings.TrimSpace(m.emotions.Value()) != ""
	default:
		return true
	}
}

// Update handles wizard input.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch v := msg.(type) {
	case savedMsg:
		m.saving = false
		if v.err != nil {
			m.status = "Could not save right now. Everything you wrote is still here."
			return m, nil
		}
		m.reset()
		m.status = SavedConfirmation
		return m, nil

	case tea.KeyMsg:
		if m.saving {
			return m, nil
		}
		switch v.String() {
		case "enter":
			if m.step == StepAlternative {
				m.saving = true
				m.status = "Saving…"
				return m, m.submit()
			}
			if m.canAdvance() {
				m.advance()
			}
			return m, nil
		case "ctrl+b":
			// Disabled, not hidden, at step 0.
			if m.step > StepSituation {
				m.retreat()
			}
			return m, nil
		case "left":
			if m.step == StepEmotion {
				if m.intensity > minIntensity {
					m.intensity--
				}
				return m, nil
			}
		case "right":
			if m.step == StepEmotion {
				if m.intensity < maxIntensity {
					m.intensity++
				}
				return m, nil
			}
		case "tab":
			if m.step == StepEvidence {
				m.evidenceFocus = (m.evidenceFocus + 1) % 2
				m.focusStep()
				return m, nil
			}
		}
		var cmd tea.Cmd
		field := m.activeField()
		*field, cmd = field.Update(msg)
		return m, cmd
	}
	return m, nil
}

func (m *Model) activeField() *textinput.Model {
	switch m.step {
	case StepSituation:
		return &m.situation
	case StepThought:
		return &m.thoughts
	case StepEmotion:
		return &m.emotions
	case StepEvidence:
		if m.evidenceFocus == 1 {
			return &m.evidenceAgainst
		}
		return &m.evidenceFor
	default:
		return &m.alternative
	}
}

func (m *Model) advance() {
	if m.step < StepAlternative {
		m.step++
		m.focusStep()
	}
}

func (m *Model) retreat() {
	if m.step > StepSituation {
		m.step--
		m.focusStep()
	}
}

func (m *Model) focusStep() {
	for _, ti := range []*textinput.Model{
		&m.situation, &m.thoughts, &m.emotions,
		&m.evidenceFor, &m.evidenceAgainst, &m.alternative,
	} {
		ti.Blur()
	}
	m.activeField().Focus()
}

func (m *Model) submit() tea.Cmd {
	record := api.ThoughtRecord{
		Situation:          m.situation.Value(),
		Thoughts:           m.thoughts.Value(),
		Emotions:           SplitEmotions(m.emotions.Value()),
		Intensity:          m.intensity,
		EvidenceFor:        m.evidenceFor.Value(),
		EvidenceAgainst:    m.evidenceAgainst.Value(),
		AlternativeThought: m.alternative.Value(),
	}
	return func() tea.Msg {
		return savedMsg{err: m.client.CreateThoughtRecord(context.Background(), record)}
	}
}

// reset returns every field to its default after a successful submit.
func (m *Model) reset() {
	m.step = StepSituation
	m.situation.SetValue("")
	m.thoughts.SetValue("")
	m.emotions.SetValue("")
	m.intensity = defaultIntensity
	m.evidenceFor.SetValue("")
	m.evidenceAgainst.SetValue("")
	m.alternative.SetValue("")
	m.evidenceFocus = 0
	m.focusStep()
}

// View renders the current step.
func (m *Model) View() string {
	page := m.theme.Page

	lines := []string{
		page.Title.Render("Thought record"),
		page.Faint.Render(progressLine(m.step)),
		"",
		page.Body.Render(stepTitles[m.step]),
	}

	switch m.step {
	case StepSituation:
		lines = append(lines, page.Body.Render(m.situation.View()))
	case StepThought:
		lines = append(lines, page.Body.Render(m.thoughts.View()))
	case StepEmotion:
		lines = append(lines, page.Body.Render(m.emotions.View()))
		lines = append(lines, "")
		lines = append(lines, page.Body.Render("Intensity  "+intensityBar(m.intensity)))
		lines = append(lines, page.Faint.Render("←/→ adjust"))
	case StepEvidence:
		forMarker, againstMarker := "→ ", "  "
		if m.evidenceFocus == 1 {
			forMarker, againstMarker = "  ", "→ "
		}
		lines = append(lines, page.Body.Render(forMarker+"For: "+m.evidenceFor.View()))
		lines = append(lines, page.Body.Render(againstMarker+"Against: "+m.evidenceAgainst.View()))
		lines = append(lines, page.Faint.Render("tab switch · optional"))
	case StepAlternative:
		lines = append(lines, page.Body.Render(m.alternative.View()))
	}

	lines = append(lines, "")
	lines = append(lines, m.footer())

	if m.status != "" {
		lines = append(lines, "", page.Faint.Render(m.status))
	}

	return lipgloss.JoinVertical(lipgloss.Left, lines...)
}

func (m *Model) footer() string {
	page := m.theme.Page

	back := "ctrl+b back"
	if m.step == StepSituation {
		back = page.Faint.Render(back)
	} else {
		back = page.Body.Render(back)
	}

	next := "enter next"
	if m.step == StepAlternative {
		next = "enter save thought record"
	}
	if m.canAdvance() && !m.saving {
		next = page.Active.Render(next)
	} else {
		next = page.Faint.Render(next)
	}

	return back + page.Faint.Render(" · ") + next
}

func progressLine(step Step) string {
	marks := make([]string, len(stepTitles))
	for i := range stepTitles {
		if Step(i) == step {
			marks[i] = "●"
		} else {
			marks[i] = "○"
		}
	}
	return strings.Join(marks, " ")
}

func intensityBar(intensity int) string {
	var b strings.Builder
	for i := minIntensity; i <= maxIntensity; i++ {
		if i <= intensity {
			b.WriteString("▮")
		} else {
			b.WriteString("▯")
		}
	}
	fmt.Fprintf(&b, " %d", intensity)
	return b.String()
}
