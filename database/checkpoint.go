package database

import (
	"log/slog"
	"sync"
	"time"
)

// Checkpointer periodically copies the write-ahead log back into the main
// database file so the -wal file does not grow without bound.
type Checkpointer struct {
	db       *DB
	interval time.Duration
	logger   *slog.Logger
	running  bool
	mu       sync.Mutex
	stopChan chan struct{}
	done     chan struct{}
}

func NewCheckpointer(db *DB, interval time.Duration, logger *slog.Logger) *Checkpointer {
	if interval <= 0 {
		interval = 5 * time.Minute
	}
	return &Checkpointer{
		db:       db,
		interval: interval,
		logger:   logger,
	}
}

// Start begins the background loop. Calling it on a running checkpointer does nothing.
func (c *Checkpointer) Start() {
	c.mu.Lock()
	defer c.mu.Unlock()

	if c.running {
		return
	}
	c.running = true
	c.stopChan = make(chan struct{})
	c.done = make(chan struct{})

	c.logger.Info("checkpointer started", "interval", c.interval)

	go c.run(c.stopChan, c.done)
}

// Stop ends the loop and waits for an in-flight checkpoint to finish
func (c *Checkpointer) Stop() {
	c.mu.Lock()
	if !c.running {
		c.mu.Unlock()
		return
	}
	close(c.stopChan)
	done := c.done
	c.running = false
	c.mu.Unlock()

	<-done
	c.logger.Info("checkpointer stopped")
}

func (c *Checkpointer) run(stop <-chan struct{}, done chan<- struct{}) {
	defer close(done)

	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			if err := c.Checkpoint(); err != nil {
				c.logger.Warn("wal checkpoint failed", "error", err)
			}
		case <-stop:
			return
		}
	}
}

// Checkpoint runs a single passive checkpoint. It never waits on readers.
func (c *Checkpointer) Checkpoint() error {
	var busy, logFrames, checkpointed int
	err := c.db.QueryRow(`PRAGMA wal_checkpoint(PASSIVE)`).Scan(&busy, &logFrames, &checkpointed)
	if err != nil {
		return err
	}

	c.logger.Debug("wal checkpoint",
		"busy", busy,
		"log_frames", logFrames,
		"checkpointed", checkpointed,
	)
	return nil
}
