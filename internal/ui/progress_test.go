package ui

import (
	"strings"
	"testing"

	"corec/internal/driver"
)

func TestProgressModelTracksEvents(t *testing.T) {
	events := make(chan driver.Event)
	m := NewProgressModel("check", []string{"a.core", "b.core"}, events).(*progressModel)

	m.applyEvent(driver.Event{Path: "a.core", Stage: driver.StageParse, Status: driver.StatusWorking})
	m.applyEvent(driver.Event{Path: "b.core", Status: driver.StatusError})
	m.applyEvent(driver.Event{Path: "unknown.core", Status: driver.StatusDone})

	if m.items[0].status != "parsing" || m.items[1].status != "failed" {
		t.Errorf("statuses: %q, %q", m.items[0].status, m.items[1].status)
	}
	if got := m.percent(); got != 0.75 {
		t.Errorf("percent = %v, want 0.75", got)
	}
	view := m.View()
	for _, want := range []string{"check (1/2)", "a.core", "failed"} {
		if !strings.Contains(view, want) {
			t.Errorf("view misses %q:\n%s", want, view)
		}
	}
}

func TestDoneOnClosedChannel(t *testing.T) {
	events := make(chan driver.Event)
	close(events)
	m := NewProgressModel("check", []string{"a.core"}, events).(*progressModel)
	if _, ok := m.listenForEvent()().(doneMsg); !ok {
		t.Fatal("closed channel must yield doneMsg")
	}
	m.Update(doneMsg{})
	if !m.done || !strings.Contains(m.View(), "done: check") {
		t.Errorf("model not finished:\n%s", m.View())
	}
}

func TestTruncate(t *testing.T) {
	if got := truncate("abcdefgh", 6); got != "abc..." {
		t.Errorf("truncate = %q", got)
	}
	if got := truncate("日本語abc", 6); got != "日..." {
		t.Errorf("truncate wide = %q", got)
	}
	if got := truncate("abc", 6); got != "abc" {
		t.Errorf("truncate = %q", got)
	}
}
