package internal

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trendalert/internal/domain"
	"github.com/vadiminshakov/trendalert/internal/metrics"
)

type signalChecker interface {
	Check(ctx context.Context) (*domain.Signal, error)
}

type signalTracker interface {
	Observe(ctx context.Context, sig *domain.Signal) (bool, error)
	SetRunning(running bool)
}

// Poller evaluates the market on a fixed cadence and feeds the result to the tracker.
// It is Running from Run until Stop or context cancellation, then Stopped for good.
type Poller struct {
	checker          signalChecker
	tracker          signalTracker
	interval         time.Duration
	recoveryInterval time.Duration
	l                *zap.Logger

	started  atomic.Bool
	stop     chan struct{}
	stopOnce sync.Once
}

// NewPoller creates a poller.
func NewPoller(l *zap.Logger, checker signalChecker, tracker signalTracker, interval, recoveryInterval time.Duration) *Poller {
	return &Poller{
		checker:          checker,
		tracker:          tracker,
		interval:         interval,
		recoveryInterval: recoveryInterval,
		l:                l,
		stop:             make(chan struct{}),
	}
}

// Run executes the polling loop until Stop is called or ctx is done.
// Failed iterations never end the loop, they delay the next one by the recovery interval.
func (p *Poller) Run(ctx context.Context) error {
	if !p.started.CompareAndSwap(false, true) {
		return errors.New("poller is already started")
	}

	p.tracker.SetRunning(true)
	defer p.tracker.SetRunning(false)

	p.l.Info("Starting polling loop", zap.Duration("poll_interval", p.interval))

	for {
		if p.stopped(ctx) {
			p.l.Info("polling loop stopped")
			return nil
		}

		wait := p.interval
		if err := p.iterate(ctx); err != nil {
			metrics.LoopErrorsTotal.Inc()
			p.l.Error("polling iteration failed", zap.Error(err), zap.Duration("retry_in", p.recoveryInterval))
			wait = p.recoveryInterval
		}

		p.sleep(ctx, wait)
	}
}

// Stop requests the loop to finish. It wakes a sleeping loop right away;
// an iteration in flight completes but does not announce its result.
func (p *Poller) Stop() {
	p.stopOnce.Do(func() {
		close(p.stop)
		p.l.Info("polling loop stop requested")
	})
}

func (p *Poller) iterate(ctx context.Context) (err error) {
	l := p.l.With(zap.String("iteration", uuid.NewString()))
	defer func() {
		if r := recover(); r != nil {
			l.Error("panic in polling iteration", zap.Any("panic", r), zap.Stack("stack"))
			err = errors.Errorf("panic: %v", r)
		}
	}()

	l.Debug("polling tick")
	sig, err := p.checker.Check(ctx)
	if err != nil {
		return errors.Wrap(err, "evaluation failed")
	}
	if p.stopped(ctx) {
		return nil
	}

	announced, err := p.tracker.Observe(ctx, sig)
	if err != nil {
		return err
	}
	if announced {
		l.Info("signal change announced", zap.String("direction", string(sig.Direction())))
	}
	return nil
}

func (p *Poller) stopped(ctx context.Context) bool {
	select {
	case <-p.stop:
		return true
	case <-ctx.Done():
		return true
	default:
		return false
	}
}

func (p *Poller) sleep(ctx context.Context, d time.Duration) {
	timer := time.NewTimer(d)
	defer timer.Stop()

	select {
	case <-timer.C:
	case <-p.stop:
	case <-ctx.Done():
	}
}
