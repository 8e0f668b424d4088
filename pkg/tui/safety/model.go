// Package safety implements the crisis-support sheet. The sheet opens only
// on explicit user intent, fetches its two data sources independently, and
// discards any fetch result that lands after the session that issued it.
package safety

import (
	"context"
	"fmt"
	"strings"

	"github.com/charmbracelet/bubbles/v2/textinput"
	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/mode"
	"lumenharbor.dev/nous/pkg/tui/theme"
	"lumenharbor.dev/nous/pkg/tui/ui/overlay"
)

// Display cap for the resource list. Fixed policy, not configurable.
const maxResources = 6

type fetchState int

const (
	stateLoading fetchState = iota
	stateReady
	stateFailed
)

type saveState int

const (
	saveIdle saveState = iota
	saveSaving
	saveSaved
	saveFailed
)

// Messages carry the generation that issued them; stale generations are
// dropped in Update. This is the cancellation-on-teardown guard: closing or
// reopening the sheet invalidates every in-flight fetch.
type resourcesMsg struct {
	gen       int
	resources []api.CrisisResource
	err       error
}

type planMsg struct {
	gen  int
	plan api.SafetyPlan
	err  error
}

type savedMsg struct {
	gen int
	err error
}

var planLabels = [5]string{
	"Warning signs",
	"Coping strategies",
	"People I can reach",
	"Places that help",
	"Professional contacts",
}

// Model tracks one open session of the safety sheet.
type Model struct {
	client  *api.Client
	country string
	mode    mode.Mode
	theme   theme.Theme

	open bool
	gen  int

	resState  fetchState
	resources []api.CrisisResource

	planState fetchState
	inputs    [5]textinput.Model
	focus     int

	save saveState

	width  int
	height int
	bounds overlay.Bounds
}

// New constructs a closed sheet bound to the client and country default.
func New(client *api.Client, country string, m mode.Mode, th theme.Theme) *Model {
	model := &Model{
		client:  client,
		country: country,
		mode:    m,
		theme:   th,
	}
	for i := range model.inputs {
		ti := textinput.New()
		ti.Placeholder = "…"
		ti.CharLimit = 512
		ti.Prompt = ""
		ti.VirtualCursor = true
		model.inputs[i] = ti
	}
	return model
}

// IsOpen reports whether the sheet is showing.
func (m *Model) IsOpen() bool { return m.open }

// SetMode adjusts rendering density for subsequent views.
func (m *Model) SetMode(mo mode.Mode) { m.mode = mo }

// SetSize stores the viewport size.
func (m *Model) SetSize(width, height int) {
	m.width = width
	m.height = height
}

// Open starts a new sheet session and issues the two independent fetches.
// Only ever called from an explicit user action.
func (m *Model) Open() tea.Cmd {
	m.open = true
	m.gen++
	m.resState = stateLoading
	m.planState = stateLoading
	m.resources = nil
	m.save = saveIdle
	m.focus = 0
	for i := range m.inputs {
		m.inputs[i].SetValue("")
		m.inputs[i].Blur()
	}
	m.inputs[0].Focus()
	gen := m.gen
	return tea.Batch(m.fetchResources(gen), m.fetchPlan(gen))
}

// Close dismisses the sheet and invalidates in-flight fetches.
func (m *Model) Close() {
	m.open = false
	m.gen++
}

func (m *Model) fetchResources(gen int) tea.Cmd {
	return func() tea.Msg {
		resources, err := m.client.CrisisResources(context.Background(), m.country)
		return resourcesMsg{gen: gen, resources: resources, err: err}
	}
}

func (m *Model) fetchPlan(gen int) tea.Cmd {
	return func() tea.Msg {
		plan, err := m.client.SafetyPlan(context.Background())
		return planMsg{gen: gen, plan: plan, err: err}
	}
}

func (m *Model) savePlan(gen int, plan api.SafetyPlan) tea.Cmd {
	return func() tea.Msg {
		err := m.client.SaveSafetyPlan(context.Background(), plan)
		return savedMsg{gen: gen, err: err}
	}
}

// Update handles sheet messages. Stale-generation results are discarded
// without touching state.
func (m *Model) Update(msg tea.Msg) (*Model, tea.Cmd) {
	switch v := msg.(type) {
	case resourcesMsg:
		if v.gen != m.gen || !m.open {
			return m, nil
		}
		if v.err != nil {
			m.resState = stateFailed
			return m, nil
		}
		m.resState = stateReady
		m.resources = v.resources
		return m, nil

	case planMsg:
		if v.gen != m.gen || !m.open {
			return m, nil
		}
		if v.err != nil {
			m.planState = stateFailed
			return m, nil
		}
		m.planState = stateReady
		m.inputs[0].SetValue(v.plan.WarningSigns)
		m.inputs[1].SetValue(v.plan.CopingStrategies)
		m.inputs[2].SetValue(v.plan.People)
		m.inputs[3].SetValue(v.plan.Places)
		m.inputs[4].SetValue(v.plan.ProfessionalContacts)
		return m, nil

	case savedMsg:
		if v.gen != m.gen || !m.open {
			return m, nil
		}
		if v.err != nil {
			m.save = saveFailed
		} else {
			m.save = saveSaved
		}
		return m, nil

	case tea.MouseClickMsg:
		if !m.open {
			return m, nil
		}
		// Clicks inside the sheet never close it; the backdrop does.
		if !m.bounds.Contains(v.X, v.Y) {
			m.Close()
		}
		return m, nil

	case tea.KeyMsg:
		if !m.open {
			return m, nil
		}
		switch v.String() {
		case "esc":
			m.Close()
			return m, nil
		case "tab", "down":
			m.setFocus((m.focus + 1) % len(m.inputs))
			return m, nil
		case "shift+tab", "up":
			m.setFocus((m.focus + len(m.inputs) - 1) % len(m.inputs))
			return m, nil
		case "ctrl+s":
			if m.save == saveSaving {
				return m, nil
			}
			m.save = saveSaving
			return m, m.savePlan(m.gen, m.editedPlan())
		}
		// Anything else edits the focused field; edits make a prior
		// "Saved" status stale.
		var cmd tea.Cmd
		before := m.inputs[m.focus].Value()
		m.inputs[m.focus], cmd = m.inputs[m.focus].Update(msg)
		if m.inputs[m.focus].Value() != before && m.save == saveSaved {
			m.save = saveIdle
		}
		return m, cmd
	}

	return m, nil
}

func (m *Model) setFocus(i int) {
	m.inputs[m.focus].Blur()
	m.focus = i
	m.inputs[m.focus].Focus()
}

func (m *Model) editedPlan() api.SafetyPlan {
	return api.SafetyPlan{
		WarningSigns:         m.inputs[0].Value(),
		CopingStrategies:     m.inputs[1].Value(),
		People:               m.inputs[2].Value(),
		Places:               m.inputs[3].Value(),
		ProfessionalContacts: m.inputs[4].Value(),
	}
}

// ViewOver renders the sheet centered over the given background and records
// the frame bounds for backdrop hit-testing.
func (m *Model) ViewOver(background string) string {
	if !m.open {
		m.bounds = overlay.Bounds{}
		return background
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}
	panel := m.panel(width)
	composed, bounds := overlay.ComposeCentered(background, width, height, panel)
	m.bounds = bounds
	return composed
}

// View renders the sheet standalone (used by the dedicated safety command).
func (m *Model) View() string {
	if !m.open {
		return ""
	}
	width := m.width
	if width <= 0 {
		width = 80
	}
	height := m.height
	if height <= 0 {
		height = 24
	}
	panel := m.panel(width)
	placed := lipgloss.Place(width, height, lipgloss.Center, lipgloss.Center, panel)
	m.bounds = overlay.Bounds{
		X:      (width - lipgloss.Width(panel)) / 2,
		Y:      (height - lipgloss.Height(panel)) / 2,
		Width:  lipgloss.Width(panel),
		Height: lipgloss.Height(panel),
	}
	return placed
}

func (m *Model) panel(width int) string {
	sheet := m.theme.Sheet

	lines := []string{sheet.Title.Render("You're not alone"), ""}

	lines = append(lines, sheet.Section.Render("Right now"))
	switch m.resState {
	case stateLoading:
		lines = append(lines, sheet.Faint.Render("Loading resources…"))
	case stateFailed:
		lines = append(lines, sheet.Error.Render("Couldn't load resources right now."))
	case stateReady:
		lines = append(lines, m.resourceLines(sheet)...)
	}
	lines = append(lines, "")

	lines = append(lines, sheet.Section.Render("Your safety plan"))
	switch m.planState {
	case stateLoading:
		lines = append(lines, sheet.Faint.Render("Loading your plan…"))
	case stateFailed:
		lines = append(lines, sheet.Error.Render("Couldn't load your plan right now."))
	}
	// The editable copy stays usable even when the initial load failed.
	if m.planState != stateLoading {
		for i, label := range planLabels {
			marker := "  "
			if i == m.focus {
				marker = "→ "
			}
			lines = append(lines, sheet.Body.Render(marker+label))
			lines = append(lines, sheet.Body.Render("  "+m.inputs[i].View()))
		}
	}

	switch m.save {
	case saveSaving:
		lines = append(lines, "", sheet.Faint.Render("Saving…"))
	case saveSaved:
		lines = append(lines, "", sheet.Faint.Render("Saved."))
	case saveFailed:
		lines = append(lines, "", sheet.Error.Render("Couldn't save right now. Your edits are still here."))
	}

	lines = append(lines, "", sheet.Faint.Render("tab move · ctrl+s save plan · esc close"))

	content := strings.Join(lines, "\n")
	frameWidth := width - 8
	if frameWidth > 64 {
		frameWidth = 64
	}
	if frameWidth < 24 {
		frameWidth = width - 4
		if frameWidth < 20 {
			frameWidth = 20
		}
	}
	return sheet.Frame.Width(frameWidth).Render(content)
}

func (m *Model) resourceLines(sheet theme.SheetTheme) []string {
	resources := m.resources
	if len(resources) > maxResources {
		resources = resources[:maxResources]
	}
	if len(resources) == 0 {
		return []string{sheet.Faint.Render("No resources listed for your region.")}
	}
	var lines []string
	for _, r := range resources {
		head := r.Name
		if r.PhoneNumber != "" {
			if head != "" {
				head = fmt.Sprintf("%s — call %s", head, r.PhoneNumber)
			} else {
				head = "call " + r.PhoneNumber
			}
		}
		if r.TextNumber != "" {
			head = strings.TrimSpace(head + "  text " + r.TextNumber)
		}
		if head != "" {
			lines = append(lines, sheet.Body.Render(head))
		}
		if m.mode == mode.Structured {
			if r.Description != "" {
				lines = append(lines, sheet.Faint.Render("  "+r.Description))
			}
			if r.URL != "" {
				lines = append(lines, sheet.Faint.Render("  "+r.URL))
			}
		}
	}
	return lines
}
