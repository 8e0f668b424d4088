package draft

import (
	"testing"
)

// brokenStore simulates an unavailable backing store.
type brokenStore struct{}

func (brokenStore) Get(string, interface{}) bool { return false }
func (brokenStore) Set(string, interface{})      {}
func (brokenStore) Clear(string)                 {}

func TestCellSeedsFromStore(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)

	c := NewCell(s, "text", "")
	c.Set("draft in progress")

	// A fresh cell over the same store sees the persisted value.
	reloaded := NewCell(Open(dir), "text", "")
	if got := reloaded.Get(); got != "draft in progress" {
		t.Fatalf("expected persisted value, got %q", got)
	}
}

func TestCellFallsBackToInitial(t *testing.T) {
	c := NewCell(Open(t.TempDir()), "missing", "fallback")
	if got := c.Get(); got != "fallback" {
		t.Fatalf("expected initial value, got %q", got)
	}
}

func TestCellCorruptValueFallsBack(t *testing.T) {
	dir := t.TempDir()
	s := Open(dir)
	s.Set("n", "not a number")

	c := NewCell(Open(dir), "n", 42)
	if got := c.Get(); got != 42 {
		t.Fatalf("expected fallback on type mismatch, got %d", got)
	}
}

func TestCellBrokenStoreStaysInMemory(t *testing.T) {
	c := NewCell[string](brokenStore{}, "k", "start")
	c.Set("updated")
	if got := c.Get(); got != "updated" {
		t.Fatalf("in-memory value must survive store failure, got %q", got)
	}
}

func TestCellUpdate(t *testing.T) {
	c := NewCell(Open(t.TempDir()), "count", 1)
	c.Update(func(v int) int { return v + 2 })
	if got := c.Get(); got != 3 {
		t.Fatalf("expected functional update to apply, got %d", got)
	}
}

func TestCellReset(t *testing.T) {
	dir := t.TempDir()
	c := NewCell(Open(dir), "text", "initial")
	c.Set("dirty")
	c.Reset()
	if got := c.Get(); got != "initial" {
		t.Fatalf("expected reset to initial, got %q", got)
	}
	reloaded := NewCell(Open(dir), "text", "initial")
	if got := reloaded.Get(); got != "initial" {
		t.Fatalf("expected stored copy cleared, got %q", got)
	}
}
