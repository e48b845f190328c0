package collector

import (
	"context"
	"fmt"
	"sort"
	"strconv"
	"time"

	bybit "github.com/hirokisan/bybit/v2"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

const bybitMaxKlinesPerRequest = 1000

// BybitKlineProvider implements KlineProvider for Bybit exchange.
type BybitKlineProvider struct {
	client   *bybit.Client
	category bybit.CategoryV5
}

// NewBybitKlineProvider creates a new Bybit kline provider for spot or linear perpetual market.
func NewBybitKlineProvider(client *bybit.Client, marketType domain.MarketType) *BybitKlineProvider {
	category := bybit.CategoryV5Spot
	if marketType == domain.MarketTypeFutures {
		category = bybit.CategoryV5Linear
	}
	return &BybitKlineProvider{client: client, category: category}
}

// GetKlines fetches kline data.
func (p *BybitKlineProvider) GetKlines(_ context.Context, pair domain.Pair, interval string, limit int) ([]domain.MarketCandle, error) {
	if limit <= 0 {
		return nil, errors.New("limit must be > 0")
	}
	if limit > bybitMaxKlinesPerRequest {
		limit = bybitMaxKlinesPerRequest
	}

	bybitInterval, err := convertIntervalToBybit(interval)
	if err != nil {
		return nil, errors.Wrapf(err, "invalid interval: %s", interval)
	}

	result, err := p.client.V5().Market().GetKline(bybit.V5GetKlineParam{
		Category: p.category,
		Symbol:   bybit.SymbolV5(pair.Symbol()),
		Interval: bybit.Interval(bybitInterval),
		Limit:    &limit,
	})
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Bybit for %s", pair.String())
	}
	if result == nil {
		return nil, errors.Errorf("empty result from Bybit API for %s", pair.String())
	}

	duration, err := domain.ParseInterval(interval)
	if err != nil {
		return nil, err
	}

	candles := make([]domain.MarketCandle, len(result.Result.List))
	for i, k := range result.Result.List {
		openTime, err := parseTimestamp(k.StartTime)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse start time at index %d", i)
		}

		values := make([]decimal.Decimal, 5)
		for j, raw := range []string{k.Open, k.High, k.Low, k.Close, k.Volume} {
			v, err := decimal.NewFromString(raw)
			if err != nil {
				return nil, errors.Wrapf(err, "failed to parse value %q at index %d", raw, i)
			}
			values[j] = v
		}

		candles[i] = domain.MarketCandle{
			OpenTime:  openTime,
			Open:      values[0],
			High:      values[1],
			Low:       values[2],
			Close:     values[3],
			Volume:    values[4],
			CloseTime: openTime.Add(duration - time.Millisecond),
		}
	}

	// bybit returns the newest kline first
	sort.Slice(candles, func(i, j int) bool {
		return candles[i].OpenTime.Before(candles[j].OpenTime)
	})

	return candles, nil
}

// convertIntervalToBybit converts standard interval format to Bybit format.
// Standard format: "1m", "5m", "15m", "1h", "4h", "1d", etc.
// Bybit format: "1", "5", "15", "60", "240", "D", etc.
func convertIntervalToBybit(interval string) (string, error) {
	if len(interval) < 2 {
		return "", fmt.Errorf("invalid interval format: %s", interval)
	}

	unit := interval[len(interval)-1]
	n, err := strconv.Atoi(interval[:len(interval)-1])
	if err != nil || n <= 0 {
		return "", fmt.Errorf("invalid interval number: %s", interval)
	}

	switch unit {
	case 'm':
		return strconv.Itoa(n), nil
	case 'h':
		return strconv.Itoa(n * 60), nil
	case 'd':
		return "D", nil
	case 'w':
		return "W", nil
	default:
		return "", fmt.Errorf("unsupported interval unit: %c", unit)
	}
}

// parseTimestamp converts Bybit timestamp string (milliseconds) to time.Time.
func parseTimestamp(ts string) (time.Time, error) {
	if ts == "" {
		return time.Time{}, errors.New("empty timestamp")
	}

	msec, err := strconv.ParseInt(ts, 10, 64)
	if err != nil {
		return time.Time{}, errors.Wrapf(err, "failed to parse timestamp: %s", ts)
	}

	return time.UnixMilli(msec), nil
}
