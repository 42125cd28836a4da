package ui

import (
	"errors"
	"strings"
	"testing"
	"time"

	"github.com/dkovalev/sensory/model"
)

func TestUpdateReplacesSnapshot(t *testing.T) {
	m := NewModel(nil, 500*time.Millisecond)
	m.width, m.height = 80, 24

	good := &model.Snapshot{Sections: []model.Section{{Name: "coretemp-isa-0000"}}}
	next, _ := m.Update(refreshMsg{snap: good})
	m = next.(Model)
	if m.snap != good {
		t.Fatal("refreshMsg did not install the snapshot")
	}

	bad := &model.Snapshot{Err: errors.New("sensors command failed: boom")}
	next, _ = m.Update(refreshMsg{snap: bad})
	m = next.(Model)
	if m.snap != bad {
		t.Fatal("error snapshot did not replace the data snapshot")
	}

	view := m.View()
	if !strings.Contains(view, "Error: sensors command failed: boom") {
		t.Errorf("view does not show the error: %q", view)
	}
	if strings.Contains(view, "coretemp-isa-0000") {
		t.Error("view still shows stale data after an error refresh")
	}
}

func TestUpdatePausedTickSchedulesNothing(t *testing.T) {
	m := NewModel(nil, 500*time.Millisecond)
	m.paused = true

	_, cmd := m.Update(tickMsg(time.Now()))
	if cmd != nil {
		t.Error("paused tick must not schedule a refresh")
	}
}
