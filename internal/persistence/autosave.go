// Advisory autosave — a timer plus day-change hooks. Save failures are
// reported and logged but never block or roll back gameplay state.
package persistence

import (
	"log/slog"
	"sync"
	"time"

	"github.com/talgya/chalkboard/internal/sim"
)

// Autosaver periodically snapshots the latest state handed to it.
type Autosaver struct {
	db       *DB
	interval time.Duration

	mu      sync.Mutex
	latest  *sim.GameState
	lastErr error

	stop chan struct{}
	done chan struct{}
}

// NewAutosaver creates an autosaver writing to db at the given interval.
func NewAutosaver(db *DB, interval time.Duration) *Autosaver {
	if interval <= 0 {
		interval = time.Minute
	}
	return &Autosaver{
		db:       db,
		interval: interval,
		stop:     make(chan struct{}),
		done:     make(chan struct{}),
	}
}

// Observe records the latest state; the ticker persists it on schedule.
func (a *Autosaver) Observe(state sim.GameState) {
	snapshot := state.Clone()
	a.mu.Lock()
	a.latest = &snapshot
	a.mu.Unlock()
}

// SaveNow persists the most recently observed state immediately (the
// day-change hook). The error is also retained for LastError.
func (a *Autosaver) SaveNow() error {
	a.mu.Lock()
	latest := a.latest
	a.mu.Unlock()
	if latest == nil {
		return nil
	}

	err := a.db.SaveSnapshot(*latest)
	a.mu.Lock()
	a.lastErr = err
	a.mu.Unlock()

	if err != nil {
		slog.Error("autosave failed", "error", err)
	}
	return err
}

// LastError reports the most recent save outcome as a status flag.
func (a *Autosaver) LastError() error {
	a.mu.Lock()
	defer a.mu.Unlock()
	return a.lastErr
}

// Start launches the timer loop in a goroutine.
func (a *Autosaver) Start() {
	go func() {
		defer close(a.done)
		ticker := time.NewTicker(a.interval)
		defer ticker.Stop()

		for {
			select {
			case <-ticker.C:
				a.SaveNow()
			case <-a.stop:
				a.SaveNow()
				return
			}
		}
	}()
}

// Stop halts the loop after one final save.
func (a *Autosaver) Stop() {
	close(a.stop)
	<-a.done
}
