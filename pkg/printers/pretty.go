package printers

import (
	"fmt"
	"strings"

	"github.com/fatih/color"
	"github.com/gosuri/uitable"
	"github.com/muesli/reflow/wordwrap"

	"lumenharbor.dev/nous/pkg/api"
)

type PrettyPrint struct {
	Width int
}

func (pp *PrettyPrint) wrapWidth() int {
	if pp.Width > 0 {
		return pp.Width
	}
	return 72
}

func (pp *PrettyPrint) NewLine() {
	fmt.Println("")
}

func (pp *PrettyPrint) Title(title string) {
	t := color.New(color.Bold, color.Underline)
	_, _ = t.Println(title)
}

func (pp *PrettyPrint) Status(msg string) {
	f := color.New(color.Faint)
	_, _ = f.Println(msg)
}

// Resources prints crisis resources, one block per entry. Every field may be
// absent; an entirely empty resource prints nothing.
func (pp *PrettyPrint) Resources(resources []api.CrisisResource) {
	if len(resources) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}

	name := color.New(color.Bold)
	body := color.New()
	faint := color.New(color.Faint)

	for _, r := range resources {
		if r.Name != "" {
			_, _ = name.Println(r.Name)
		}
		if r.Description != "" {
			_, _ = body.Println(wordwrap.String(r.Description, pp.wrapWidth()))
		}
		if r.PhoneNumber != "" {
			_, _ = body.Printf("  call %s\n", r.PhoneNumber)
		}
		if r.TextNumber != "" {
			_, _ = body.Printf("  text %s\n", r.TextNumber)
		}
		if r.URL != "" {
			_, _ = faint.Printf("  %s\n", r.URL)
		}
		fmt.Println("")
	}
}

// Plan prints the safety plan one labeled section at a time.
func (pp *PrettyPrint) Plan(plan api.SafetyPlan) {
	sections := []struct {
		label string
		value string
	}{
		{"Warning signs", plan.WarningSigns},
		{"Coping strategies", plan.CopingStrategies},
		{"People I can reach", plan.People},
		{"Places that help", plan.Places},
		{"Professional contacts", plan.ProfessionalContacts},
	}
	label := color.New(color.Bold)
	empty := color.New(color.Faint, color.Italic)
	for _, s := range sections {
		_, _ = label.Println(s.label)
		if strings.TrimSpace(s.value) == "" {
			_, _ = empty.Println("  (not filled in yet)")
		} else {
			fmt.Println(wordwrap.String("  "+s.value, pp.wrapWidth()))
		}
	}
}

// Moods prints recent mood entries as a table.
func (pp *PrettyPrint) Moods(items []api.MoodItem) {
	if len(items) == 0 {
		f := color.New(color.Faint, color.Italic)
		_, _ = f.Print(" none\n\n")
		return
	}
	table := uitable.New()
	table.MaxColWidth = 50
	table.Wrap = true
	table.AddRow("WHEN", "MOOD", "NOTE", "TAGS")
	for _, item := range items {
		table.AddRow(item.TS, fmt.Sprintf("%d/10", item.Mood), item.Note, strings.Join(item.Tags, ", "))
	}
	fmt.Println(table)
}
