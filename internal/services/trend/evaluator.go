// Package trend turns market data into direction signals and decides which of them
// are worth announcing.
package trend

import (
	"context"
	"net"
	"time"

	"github.com/adshao/go-binance/v2/common"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trendalert/internal/domain"
	"github.com/vadiminshakov/trendalert/internal/metrics"
	"github.com/vadiminshakov/trendalert/internal/services/market/indicators"
	"github.com/vadiminshakov/trendalert/pkg/retrier"
)

const fetchTimeout = 30 * time.Second

type klineProvider interface {
	GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.MarketCandle, error)
}

// Settings parameters of the evaluation.
type Settings struct {
	Pair       domain.Pair
	Interval   string
	Limit      int
	Period     int
	Multiplier float64
	// Retries number of extra fetch attempts on network failures.
	Retries int
}

// Evaluator computes the current SuperTrend signal of the tracked pair.
type Evaluator struct {
	provider klineProvider
	settings Settings
	retrier  *retrier.Retrier
	l        *zap.Logger
	now      func() time.Time
}

// NewEvaluator returns a configured evaluator.
func NewEvaluator(l *zap.Logger, provider klineProvider, settings Settings) (*Evaluator, error) {
	if provider == nil {
		return nil, errors.New("kline provider is required")
	}
	if settings.Limit <= settings.Period {
		return nil, errors.Errorf("candle limit %d must be greater than period %d", settings.Limit, settings.Period)
	}
	if settings.Retries < 0 {
		return nil, errors.Errorf("retries must be >= 0, got %d", settings.Retries)
	}

	return &Evaluator{
		provider: provider,
		settings: settings,
		retrier: retrier.New(
			retrier.WithMaxRetries(settings.Retries),
			retrier.WithRetryIf(isNetworkError),
		),
		l:   l.With(zap.String("pair", settings.Pair.String()), zap.String("interval", settings.Interval)),
		now: time.Now,
	}, nil
}

// Evaluate returns the signal of the most recent bar or nil when there is none.
// It never returns an error and never panics, every failure is logged and reported as nil.
func (e *Evaluator) Evaluate(ctx context.Context) *domain.Signal {
	sig, _ := e.Check(ctx)
	return sig
}

// Check works like Evaluate but also reports transport and unexpected failures,
// so the caller can back off. Missing data is not a failure: Check returns (nil, nil).
// Failures are logged here, callers need not log them again.
func (e *Evaluator) Check(ctx context.Context) (sig *domain.Signal, failure error) {
	defer func() {
		if r := recover(); r != nil {
			e.l.Error("unexpected failure while evaluating signal", zap.Any("panic", r), zap.Stack("stack"))
			metrics.EvaluationsTotal.WithLabelValues(metrics.ResultPanic).Inc()
			sig, failure = nil, errors.Errorf("evaluation panic: %v", r)
		}
	}()

	sig, err := e.evaluate(ctx)
	if err == nil {
		metrics.EvaluationsTotal.WithLabelValues(metrics.ResultSignal).Inc()
		e.l.Info("signal evaluated",
			zap.String("direction", string(sig.Direction())),
			zap.String("price", sig.Price().String()))
		return sig, nil
	}

	var fetchErr *fetchError
	switch {
	case errors.Is(err, domain.ErrNoData):
		metrics.EvaluationsTotal.WithLabelValues(metrics.ResultNoData).Inc()
		e.l.Warn("no signal", zap.Error(err))
		return nil, nil
	case errors.As(err, &fetchErr):
		metrics.EvaluationsTotal.WithLabelValues(metrics.ResultTransport).Inc()
		e.l.Error("failed to fetch market data", zap.String("category", fetchErr.category()), zap.Error(fetchErr.err))
	default:
		metrics.EvaluationsTotal.WithLabelValues(metrics.ResultError).Inc()
		e.l.Error("unexpected failure while evaluating signal", zap.Error(err), zap.Stack("stack"))
	}

	return nil, err
}

func (e *Evaluator) evaluate(ctx context.Context) (*domain.Signal, error) {
	candles, err := retrier.DoWithData(e.retrier, ctx, func(ctx context.Context) ([]domain.MarketCandle, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, fetchTimeout)
		defer cancel()
		return e.provider.GetKlines(fetchCtx, e.settings.Pair, e.settings.Interval, e.settings.Limit)
	})
	if err != nil {
		return nil, &fetchError{err: err}
	}

	if len(candles) == 0 {
		return nil, errors.Wrap(domain.ErrNoData, "received empty candle data")
	}

	highs, lows, closes := domain.Series(candles)
	directions, err := indicators.SuperTrend(highs, lows, closes, e.settings.Period, e.settings.Multiplier)
	if err != nil {
		return nil, errors.Wrap(err, "failed to calculate SuperTrend")
	}
	if len(directions) == 0 {
		return nil, errors.Wrap(domain.ErrNoData, "SuperTrend returned no result")
	}

	last := candles[len(candles)-1]
	return domain.NewSignal(directions[len(directions)-1], last.Close, e.now())
}

// fetchError transport failure while talking to the exchange.
type fetchError struct {
	err error
}

func (f *fetchError) Error() string { return f.err.Error() }

func (f *fetchError) Unwrap() error { return f.err }

func (f *fetchError) category() string {
	if isNetworkError(f.err) {
		return "network"
	}
	return "exchange"
}

// isNetworkError reports whether err is a connectivity failure worth a retry.
// Exchange API rejections and caller cancellation are not.
func isNetworkError(err error) bool {
	var apiErr *common.APIError
	if errors.As(err, &apiErr) {
		return false
	}
	if errors.Is(err, context.Canceled) {
		return false
	}
	if errors.Is(err, context.DeadlineExceeded) {
		return true
	}
	var netErr net.Error
	return errors.As(err, &netErr)
}
