// Package engine drives the refresh cycle: run the data source, parse its
// output, and overwrite the single snapshot slot with the result.
package engine

import (
	"sync"
	"time"

	"github.com/dkovalev/sensory/collector"
	"github.com/dkovalev/sensory/model"
	"github.com/dkovalev/sensory/parser"
)

// Engine holds the one current snapshot and knows how to replace it.
type Engine struct {
	source collector.Source
	tickMu sync.Mutex // serializes Tick() calls to prevent concurrent captures when ticks overlap

	mu      sync.RWMutex
	current *model.Snapshot
}

// New creates an engine reading from the given source. No snapshot exists
// until the first Tick.
func New(source collector.Source) *Engine {
	return &Engine{source: source}
}

// Source returns the data source the engine reads from.
func (e *Engine) Source() collector.Source {
	return e.source
}

// Tick captures fresh output, parses it, and replaces the current snapshot
// unconditionally. The previous snapshot is never consulted: an error result
// overwrites good data and vice versa, with no retry and no diffing.
// Serialized via tickMu: a tick that outlives the interval runs to
// completion before the next one starts, so a slow capture can never
// overwrite a newer snapshot with older data.
func (e *Engine) Tick() *model.Snapshot {
	e.tickMu.Lock()
	defer e.tickMu.Unlock()

	snap := &model.Snapshot{Timestamp: time.Now()}

	raw, err := e.source.RunAndCapture()
	if err != nil {
		snap.Err = err
	} else {
		snap.Sections, snap.Err = parser.Parse(raw)
	}

	e.mu.Lock()
	e.current = snap
	e.mu.Unlock()
	return snap
}

// Current returns the snapshot written by the most recent Tick, or nil
// before the first one.
func (e *Engine) Current() *model.Snapshot {
	e.mu.RLock()
	defer e.mu.RUnlock()
	return e.current
}
