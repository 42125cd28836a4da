package engine

import "github.com/dkovalev/sensory/model"

// Ticker abstracts a data source that can produce snapshots on demand. The
// UI refreshes through this interface rather than the concrete engine.
type Ticker interface {
	Tick() *model.Snapshot
}
