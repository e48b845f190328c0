package internal

import (
	"context"
	"fmt"

	binance "github.com/adshao/go-binance/v2"
	"github.com/adshao/go-binance/v2/futures"
	bybit "github.com/hirokisan/bybit/v2"

	"github.com/vadiminshakov/trendalert/internal/clients"
	"github.com/vadiminshakov/trendalert/internal/domain"
	"github.com/vadiminshakov/trendalert/internal/services/market/collector"
)

type klineService interface {
	GetKlines(ctx context.Context, pair domain.Pair, interval string, limit int) ([]domain.MarketCandle, error)
}

// newKlineProvider picks the market data source for the given client.
// This is the single point of truth for dispatching to platform-specific implementations.
func newKlineProvider(client any, marketType domain.MarketType) (klineService, error) {
	switch c := client.(type) {
	case *binance.Client:
		if marketType == domain.MarketTypeFutures {
			return nil, fmt.Errorf("binance spot client can not serve %s market data", marketType)
		}
		return collector.NewBinanceKlineProvider(c), nil
	case *futures.Client:
		if marketType == domain.MarketTypeSpot {
			return nil, fmt.Errorf("binance futures client can not serve %s market data", marketType)
		}
		return collector.NewBinanceFuturesKlineProvider(c), nil
	case *bybit.Client:
		return collector.NewBybitKlineProvider(c, marketType), nil
	case *clients.HyperliquidClient:
		if marketType == domain.MarketTypeSpot {
			return nil, fmt.Errorf("hyperliquid market data is perpetuals only")
		}
		return collector.NewHyperliquidKlineProvider(c.Info()), nil
	case klineService:
		return c, nil
	default:
		return nil, fmt.Errorf("unsupported client type: %T", client)
	}
}
