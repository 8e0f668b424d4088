// Package mode holds the session-wide experience mode preference.
package mode

import (
	"lumenharbor.dev/nous/pkg/draft"
)

// Mode selects how much information pages render.
type Mode string

// The two experience modes. There is no third value.
const (
	Gentle     Mode = "gentle"
	Structured Mode = "structured"
)

// Valid reports whether m is one of the defined modes.
func (m Mode) Valid() bool {
	return m == Gentle || m == Structured
}

// The preference is a process-wide singleton wired at the composition root.
// Reading it before Install is a programming error and fails loudly instead
// of silently defaulting.
var cell *draft.Cell[Mode]

// Install wires the preference to the given store. Called exactly once, from
// the root command setup.
func Install(s draft.Store) {
	c := draft.NewCell(s, draft.ExperienceModeKey, Gentle)
	if !c.Get().Valid() {
		c.Set(Gentle)
	}
	cell = c
}

// Current returns the active mode. Panics when called before Install.
func Current() Mode {
	if cell == nil {
		panic("mode: Current called before Install")
	}
	return cell.Get()
}

// Set switches the active mode and persists it. Panics when called before
// Install or with an undefined mode.
func Set(m Mode) {
	if cell == nil {
		panic("mode: Set called before Install")
	}
	if !m.Valid() {
		panic("mode: undefined mode " + string(m))
	}
	cell.Set(m)
}
