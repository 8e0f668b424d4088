// Package app hosts the Bubble Tea program: four pages plus the safety sheet
// overlay, reachable from anywhere through a persistent affordance.
package app

import (
	"strings"

	tea "github.com/charmbracelet/bubbletea/v2"
	"github.com/charmbracelet/lipgloss/v2"

	"lumenharbor.dev/nous/pkg/api"
	"lumenharbor.dev/nous/pkg/draft"
	"lumenharbor.dev/nous/pkg/mode"
	"lumenharbor.dev/nous/pkg/tui/home"
	journalpage "lumenharbor.dev/nous/pkg/tui/journal"
	"lumenharbor.dev/nous/pkg/tui/safety"
	"lumenharbor.dev/nous/pkg/tui/talk"
	"lumenharbor.dev/nous/pkg/tui/theme"
	"lumenharbor.dev/nous/pkg/tui/thought"
)

// Page identifies one of the four top-level pages.
type Page int

// The pages, in navigation order.
const (
	PageHome Page = iota
	PageJournal
	PageThought
	PageTalk
)

var pageNames = [4]string{"Home", "Journal", "Thought record", "Talk"}

// Options control how the program starts.
type Options struct {
	InitialPage Page
	OpenSheet   bool
}

// Model composes the pages and the safety sheet.
type Model struct {
	theme theme.Theme

	page    Page
	home    *home.Model
	journal *journalpage.Model
	thought *thought.Model
	talk    *talk.Model
	sheet   *safety.Model

	openSheetOnStart bool

	width  int
	height int
}

// New constructs the host. The journal draft cell and the country default
// come from the composition root.
func New(client *api.Client, cell *draft.Cell[string], country string, opts Options) *Model {
	th := theme.Default()
	current := mode.Current()
	return &Model{
		theme:            th,
		page:             opts.InitialPage,
		home:             home.New(client, current, th),
		journal:          journalpage.New(client, cell, th),
		thought:          thought.New(client, th),
		talk:             talk.New(client, th),
		sheet:            safety.New(client, country, current, th),
		openSheetOnStart: opts.OpenSheet,
	}
}

// Run launches the Bubble Tea program.
func Run(client *api.Client, cell *draft.Cell[string], country string, opts Options) error {
	p := tea.NewProgram(New(client, cell, country, opts), tea.WithAltScreen(), tea.WithMouseCellMotion())
	_, err := p.Run()
	return err
}

// Init implements tea.Model.
func (m *Model) Init() tea.Cmd {
	var cmds []tea.Cmd
	if m.page == PageHome {
		cmds = append(cmds, m.home.Refresh())
	}
	if m.openSheetOnStart {
		// Still user intent: the user ran the safety command.
		cmds = append(cmds, m.sheet.Open())
	}
	return tea.Batch(cmds...)
}

// Update implements tea.Model.
func (m *Model) Update(msg tea.Msg) (tea.Model, tea.Cmd) {
	switch v := msg.(type) {
	case tea.WindowSizeMsg:
		m.width = v.Width
		m.height = v.Height
		m.applySizes()
		return m, nil

	case tea.MouseClickMsg:
		if m.sheet.IsOpen() {
			_, cmd := m.sheet.Update(msg)
			return m, cmd
		}
		return m, nil

	case tea.KeyMsg:
		if v.String() == "ctrl+c" {
			return m, tea.Quit
		}
		if m.sheet.IsOpen() {
			_, cmd := m.sheet.Update(msg)
			return m, cmd
		}
		switch v.String() {
		case "ctrl+g":
			return m, m.sheet.Open()
		case "ctrl+n":
			return m, m.switchPage((m.page + 1) % 4)
		case "ctrl+p":
			return m, m.switchPage((m.page + 3) % 4)
		}
		return m, m.routeToActivePage(msg)
	}

	// Async completion messages are typed per package; deliver everywhere
	// and let owners pick theirs up.
	var cmds []tea.Cmd
	if _, cmd := m.sheet.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if _, cmd := m.home.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if _, cmd := m.journal.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if _, cmd := m.thought.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	if _, cmd := m.talk.Update(msg); cmd != nil {
		cmds = append(cmds, cmd)
	}
	return m, tea.Batch(cmds...)
}

func (m *Model) switchPage(next Page) tea.Cmd {
	if next == m.page {
		return nil
	}
	if m.page == PageHome {
		// Leaving the page invalidates its in-flight fetch.
		m.home.Invalidate()
	}
	m.page = next
	if next == PageHome {
		return m.home.Refresh()
	}
	return nil
}

func (m *Model) routeToActivePage(msg tea.Msg) tea.Cmd {
	switch m.page {
	case PageHome:
		_, cmd := m.home.Update(msg)
		return cmd
	case PageJournal:
		_, cmd := m.journal.Update(msg)
		return cmd
	case PageThought:
		_, cmd := m.thought.Update(msg)
		return cmd
	default:
		_, cmd := m.talk.Update(msg)
		return cmd
	}
}

func (m *Model) applySizes() {
	contentHeight := m.height - 4
	if contentHeight < 5 {
		contentHeight = 5
	}
	m.home.SetSize(m.width, contentHeight)
	m.journal.SetSize(m.width, contentHeight)
	m.thought.SetSize(m.width, contentHeight)
	m.talk.SetSize(m.width, contentHeight)
	m.sheet.SetSize(m.width, m.height)
}

// View implements tea.Model.
func (m *Model) View() string {
	background := lipgloss.JoinVertical(lipgloss.Left,
		m.header(),
		"",
		m.activePageView(),
		"",
		m.footer(),
	)
	if m.sheet.IsOpen() {
		return m.sheet.ViewOver(background)
	}
	return background
}

func (m *Model) activePageView() string {
	switch m.page {
	case PageHome:
		return m.home.View()
	case PageJournal:
		return m.journal.View()
	case PageThought:
		return m.thought.View()
	default:
		return m.talk.View()
	}
}

func (m *Model) header() string {
	page := m.theme.Page
	parts := make([]string, len(pageNames))
	for i, name := range pageNames {
		if Page(i) == m.page {
			parts[i] = page.Active.Render(name)
		} else {
			parts[i] = page.Faint.Render(name)
		}
	}
	return strings.Join(parts, page.Faint.Render(" · "))
}

// footer always carries the support affordance, on every page.
func (m *Model) footer() string {
	f := m.theme.Footer
	return f.Support.Render("ctrl+g support") +
		f.Help.Render(" · ctrl+n/ctrl+p pages · ctrl+c quit")
}
