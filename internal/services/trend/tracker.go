package trend

import (
	"context"
	"sync/atomic"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trendalert/internal/domain"
	"github.com/vadiminshakov/trendalert/internal/metrics"
)

type notifier interface {
	// Notify delivers an HTML formatted text to the configured destination.
	Notify(ctx context.Context, text string) error
}

type announcer interface {
	Announcement(sig *domain.Signal) string
}

// Tracker holds the last announced signal and the running flag of the polling loop.
// Both are replaced wholesale, so readers never observe a partially updated state.
type Tracker struct {
	last     atomic.Pointer[domain.Signal]
	running  atomic.Bool
	notifier notifier
	format   announcer
	l        *zap.Logger
}

// NewTracker creates a tracker with no signal announced yet.
func NewTracker(l *zap.Logger, notifier notifier, format announcer) *Tracker {
	return &Tracker{notifier: notifier, format: format, l: l}
}

// Observe announces sig if its direction differs from the last announced one
// or nothing was announced yet. A nil sig is ignored.
// The signal is stored only after the notification was delivered.
func (t *Tracker) Observe(ctx context.Context, sig *domain.Signal) (bool, error) {
	if sig == nil {
		return false, nil
	}

	prev := t.last.Load()
	if prev.SameDirection(sig) {
		t.l.Debug("direction unchanged, skip notification", zap.String("direction", string(sig.Direction())))
		return false, nil
	}

	if err := t.notifier.Notify(ctx, t.format.Announcement(sig)); err != nil {
		return false, errors.Wrap(err, "failed to announce signal")
	}
	t.last.Store(sig)

	from := "none"
	if prev != nil {
		from = string(prev.Direction())
	}
	metrics.NotificationsTotal.WithLabelValues(string(sig.Direction())).Inc()
	metrics.SetDirection(sig.Direction())
	t.l.Info("signal changed, notification sent",
		zap.String("from", from),
		zap.String("to", string(sig.Direction())),
		zap.String("price", sig.Price().String()))

	return true, nil
}

// Last returns the last announced signal or nil.
func (t *Tracker) Last() *domain.Signal {
	return t.last.Load()
}

// Running reports whether the polling loop is active.
func (t *Tracker) Running() bool {
	return t.running.Load()
}

// SetRunning updates the running flag.
func (t *Tracker) SetRunning(running bool) {
	t.running.Store(running)
}
