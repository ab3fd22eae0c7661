package timing

import (
	"time"

	"go.uber.org/zap"
)

// Timer measures the wall-clock duration of one named phase.
type Timer struct {
	name  string
	start time.Time
	log   *zap.Logger
}

// Start begins timing name, logging its start immediately.
func Start(log *zap.Logger, name string) *Timer {
	log.Info(name)
	return &Timer{name: name, start: time.Now(), log: log}
}

// Elapsed returns the duration since Start without stopping the timer.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.start)
}

// Stop logs and returns the elapsed duration since Start.
func (t *Timer) Stop() time.Duration {
	d := t.Elapsed()
	t.log.Info("phase completed", zap.String("phase", t.name), zap.Duration("elapsed", d))
	return d
}
