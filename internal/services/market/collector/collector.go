// Package collector provides kline (candlestick) data from cryptocurrency exchanges.
package collector

import (
	"context"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

// KlineProvider defines the interface for fetching kline (candlestick) data.
type KlineProvider interface {
	// GetKlines fetches the most recent klines for a trading pair in chronological order.
	// limit specifies the maximum number of klines to fetch,
	// interval specifies the kline interval (e.g., "1m", "15m", "1h", "4h").
	GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.MarketCandle, error)
}
