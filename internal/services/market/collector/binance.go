package collector

import (
	"context"
	"time"

	"github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/futures"
	"github.com/pkg/errors"
	"github.com/shopspring/decimal"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

// BinanceKlineProvider implements KlineProvider for the Binance spot market.
type BinanceKlineProvider struct {
	client *binance.Client
}

// NewBinanceKlineProvider creates a new Binance spot kline provider.
func NewBinanceKlineProvider(client *binance.Client) *BinanceKlineProvider {
	return &BinanceKlineProvider{client: client}
}

// GetKlines fetches kline data from Binance spot.
func (p *BinanceKlineProvider) GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.MarketCandle, error) {
	klines, err := p.client.NewKlinesService().
		Symbol(pair.Symbol()).
		Interval(interval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch klines from Binance for %s", pair.String())
	}

	result := make([]domain.MarketCandle, len(klines))
	for i, k := range klines {
		candle, err := parseBinanceKline(k.OpenTime, k.CloseTime, k.Open, k.High, k.Low, k.Close, k.Volume)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse kline at index %d", i)
		}
		result[i] = candle
	}

	return result, nil
}

// BinanceFuturesKlineProvider implements KlineProvider for Binance USDⓈ-M futures.
type BinanceFuturesKlineProvider struct {
	client *futures.Client
}

// NewBinanceFuturesKlineProvider creates a new Binance futures kline provider.
func NewBinanceFuturesKlineProvider(client *futures.Client) *BinanceFuturesKlineProvider {
	return &BinanceFuturesKlineProvider{client: client}
}

// GetKlines fetches kline data from Binance futures.
func (p *BinanceFuturesKlineProvider) GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.MarketCandle, error) {
	klines, err := p.client.NewKlinesService().
		Symbol(pair.Symbol()).
		Interval(interval).
		Limit(limit).
		Do(ctx)
	if err != nil {
		return nil, errors.Wrapf(err, "failed to fetch futures klines from Binance for %s", pair.String())
	}

	result := make([]domain.MarketCandle, len(klines))
	for i, k := range klines {
		candle, err := parseBinanceKline(k.OpenTime, k.CloseTime, k.Open, k.High, k.Low, k.Close, k.Volume)
		if err != nil {
			return nil, errors.Wrapf(err, "failed to parse futures kline at index %d", i)
		}
		result[i] = candle
	}

	return result, nil
}

func parseBinanceKline(openTime, closeTime int64, open, high, low, close, volume string) (domain.MarketCandle, error) {
	values := make([]decimal.Decimal, 5)
	for i, raw := range []string{open, high, low, close, volume} {
		v, err := decimal.NewFromString(raw)
		if err != nil {
			return domain.MarketCandle{}, errors.Wrapf(err, "failed to parse value %q", raw)
		}
		values[i] = v
	}

	return domain.MarketCandle{
		OpenTime:  time.UnixMilli(openTime),
		Open:      values[0],
		High:      values[1],
		Low:       values[2],
		Close:     values[3],
		Volume:    values[4],
		CloseTime: time.UnixMilli(closeTime),
	}, nil
}
