package trend

import (
	"context"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

type mockKlineProvider struct {
	mock.Mock
}

func (m *mockKlineProvider) GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.MarketCandle, error) {
	args := m.Called(ctx, pair, interval, limit)
	candles, _ := args.Get(0).([]domain.MarketCandle)
	return candles, args.Error(1)
}

type mockNotifier struct {
	mock.Mock
}

func (m *mockNotifier) Notify(ctx context.Context, text string) error {
	return m.Called(ctx, text).Error(0)
}

type plainAnnouncer struct{}

func (plainAnnouncer) Announcement(sig *domain.Signal) string {
	return "NEW " + string(sig.Direction())
}

var testPair = domain.Pair{From: "BTC", To: "USDT"}

// candlesFromCloses builds 15m candles with a fixed 1.0 high/low spread.
func candlesFromCloses(closes []float64) []domain.MarketCandle {
	start := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.MarketCandle, len(closes))
	for i, c := range closes {
		open := start.Add(time.Duration(i) * 15 * time.Minute)
		out[i] = domain.MarketCandle{
			OpenTime:  open,
			Open:      decimal.NewFromFloat(c),
			High:      decimal.NewFromFloat(c + 1),
			Low:       decimal.NewFromFloat(c - 1),
			Close:     decimal.NewFromFloat(c),
			Volume:    decimal.NewFromInt(1),
			CloseTime: open.Add(15*time.Minute - time.Millisecond),
		}
	}
	return out
}

func ramp(start, step float64, n int) []float64 {
	out := make([]float64, n)
	for i := range out {
		out[i] = start + step*float64(i)
	}
	return out
}

func signalAt(direction domain.Direction, price int64) *domain.Signal {
	sig, err := domain.NewSignal(direction, decimal.NewFromInt(price), time.Now())
	if err != nil {
		panic(err)
	}
	return sig
}
