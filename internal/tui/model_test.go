package tui

import (
	"strings"
	"testing"
	"time"

	tea "github.com/charmbracelet/bubbletea"

	"github.com/junyuh/titlesift/internal/sieve"
	"github.com/junyuh/titlesift/internal/variant"
)

func testListing() []sieve.Candidate {
	return []sieve.Candidate{
		{Handle: "L1", Title: "Show HEVC 01"},
		{Handle: "L2", Title: "Show x265 01"},
		{Handle: "L3", Title: "Other AV1"},
	}
}

func newTestModel(t *testing.T) Model {
	t.Helper()
	s := sieve.New(variant.Identity{}, nil)
	return New(s, testListing(), Options{Debounce: 10 * time.Millisecond})
}

func typeRune(m Model, r rune) (Model, tea.Cmd) {
	updated, cmd := m.Update(tea.KeyMsg{Type: tea.KeyRunes, Runes: []rune{r}})
	return updated.(Model), cmd
}

func TestInitialStateShowsEverything(t *testing.T) {
	m := newTestModel(t)

	rows := m.visibleRows()
	if len(rows) != 3 {
		t.Fatalf("got %d visible rows, want 3", len(rows))
	}
	if rows[0] != "Show HEVC 01" || rows[2] != "Other AV1" {
		t.Errorf("rows out of listing order: %v", rows)
	}
}

func TestEditSchedulesDebouncedPass(t *testing.T) {
	m := newTestModel(t)
	startGen := m.gen

	m, cmd := typeRune(m, 'h')
	if !m.pending {
		t.Error("edit should mark a pass pending")
	}
	if m.gen != startGen+1 {
		t.Errorf("gen = %d, want %d", m.gen, startGen+1)
	}
	if cmd == nil {
		t.Error("edit should schedule a debounce tick")
	}

	// The pass has not run yet: everything is still visible.
	if len(m.visibleRows()) != 3 {
		t.Errorf("pass ran before the quiet period: %v", m.visibleRows())
	}
}

func TestStaleDebounceTickIgnored(t *testing.T) {
	m := newTestModel(t)

	m, _ = typeRune(m, 'h')
	m, _ = typeRune(m, 'e') // supersedes the first tick

	updated, _ := m.Update(debounceMsg{gen: m.gen - 1})
	m = updated.(Model)

	if !m.pending {
		t.Error("stale tick must not complete the pending pass")
	}
	if len(m.visibleRows()) != 3 {
		t.Error("stale tick must not run a pass")
	}
}

func TestCurrentDebounceTickRunsPass(t *testing.T) {
	m := newTestModel(t)

	for _, r := range "hevc" {
		m, _ = typeRune(m, r)
	}

	updated, _ := m.Update(debounceMsg{gen: m.gen})
	m = updated.(Model)

	if m.pending {
		t.Error("current tick should clear the pending state")
	}
	rows := m.visibleRows()
	if len(rows) != 1 || rows[0] != "Show HEVC 01" {
		t.Errorf("visible rows = %v, want [Show HEVC 01]", rows)
	}
}

func TestReloadedListingKeepsCurrentRule(t *testing.T) {
	m := newTestModel(t)

	for _, r := range "show" {
		m, _ = typeRune(m, r)
	}
	updated, _ := m.Update(debounceMsg{gen: m.gen})
	m = updated.(Model)
	if len(m.visibleRows()) != 2 {
		t.Fatalf("setup: visible = %v, want 2 rows", m.visibleRows())
	}

	updated, _ = m.Update(titlesMsg([]sieve.Candidate{
		{Handle: "L1", Title: "Show HEVC 02"},
		{Handle: "L2", Title: "Different AV1"},
	}))
	m = updated.(Model)

	rows := m.visibleRows()
	if len(rows) != 1 || rows[0] != "Show HEVC 02" {
		t.Errorf("rule not re-applied to reloaded listing: %v", rows)
	}
}

func TestQuitKeys(t *testing.T) {
	m := newTestModel(t)

	for _, key := range []tea.KeyType{tea.KeyCtrlC, tea.KeyEsc} {
		_, cmd := m.Update(tea.KeyMsg{Type: key})
		if cmd == nil {
			t.Errorf("key %v should quit", key)
		}
	}
}

func TestViewRendersVisibleRowsOnly(t *testing.T) {
	m := newTestModel(t)
	m.width = 80
	m.height = 24

	for _, r := range "x265" {
		m, _ = typeRune(m, r)
	}
	updated, _ := m.Update(debounceMsg{gen: m.gen})
	m = updated.(Model)

	view := m.View()
	if !strings.Contains(view, "Show x265 01") {
		t.Error("view missing the matching row")
	}
	if strings.Contains(view, "Other AV1") {
		t.Error("view contains a hidden row")
	}
	if !strings.Contains(view, "1/3") {
		t.Error("status line missing visible/total count")
	}
}
