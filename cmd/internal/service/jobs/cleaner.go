package jobs

import (
	"context"
	"time"

	"github.com/labstack/gommon/log"
)

const SessionCleanInterval = 1 * time.Hour

type SessionSweeper interface {
	SweepExpired() (int64, error)
}

// SessionCleaner periodically drops expired session rows.
type SessionCleaner struct {
	sessions SessionSweeper
	interval time.Duration
}

func NewSessionCleaner(sessions SessionSweeper, interval time.Duration) *SessionCleaner {
	if interval <= 0 {
		interval = SessionCleanInterval
	}
	return &SessionCleaner{sessions: sessions, interval: interval}
}

// Start blocks until ctx is cancelled, sweeping once right away and then
// on every tick.
func (c *SessionCleaner) Start(ctx context.Context) {
	ticker := time.NewTicker(c.interval)
	defer ticker.Stop()

	log.Info("Session cleaner cron started")
	c.cleanup()

	for {
		select {
		case <-ctx.Done():
			log.Info("Stopping session cleaner...")
			return
		case <-ticker.C:
			c.cleanup()
		}
	}
}

func (c *SessionCleaner) cleanup() {
	swept, err := c.sessions.SweepExpired()
	if err != nil {
		log.Errorf("Cleaner: failed to delete expired sessions: %v", err)
		return
	}

	if swept > 0 {
		log.Infof("Cleaner: removed %d expired sessions", swept)
	}
}
