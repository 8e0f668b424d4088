package mode

import (
	"testing"

	"lumenharbor.dev/nous/pkg/draft"
)

func TestUninstalledPanics(t *testing.T) {
	cell = nil
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic when reading before Install")
		}
	}()
	Current()
}

func TestDefaultsToGentle(t *testing.T) {
	Install(draft.Open(t.TempDir()))
	if got := Current(); got != Gentle {
		t.Fatalf("expected gentle default, got %q", got)
	}
}

func TestPersistsAcrossInstalls(t *testing.T) {
	dir := t.TempDir()
	Install(draft.Open(dir))
	Set(Structured)

	// Simulate a new process over the same store.
	Install(draft.Open(dir))
	if got := Current(); got != Structured {
		t.Fatalf("expected structured after reload, got %q", got)
	}
}

func TestCorruptStoredModeFallsBack(t *testing.T) {
	dir := t.TempDir()
	s := draft.Open(dir)
	s.Set(draft.ExperienceModeKey, "chaotic")

	Install(s)
	if got := Current(); got != Gentle {
		t.Fatalf("expected fallback to gentle, got %q", got)
	}
}

func TestSetUndefinedModePanics(t *testing.T) {
	Install(draft.Open(t.TempDir()))
	defer func() {
		if recover() == nil {
			t.Fatalf("expected panic for undefined mode")
		}
	}()
	Set(Mode("loud"))
}
