// Command trendalert watches one trading pair with the SuperTrend indicator
// and posts direction changes to a Telegram chat.
//
// Usage:
//
//	trendalert --config config.yaml
//	trendalert (uses CLI arguments)
//	trendalert setup (interactive wizard, then start)
//
// Required environment variables (a .env file is honoured):
//
//	TELEGRAM_TOKEN, TELEGRAM_CHAT_ID (numeric chat id or @channelusername)
//
// Optional exchange credentials, market data is public:
//
//	BINANCE_API_KEY, BINANCE_API_SECRET
//	BYBIT_API_KEY, BYBIT_API_SECRET
//	HYPERLIQUID_PRIVATE_KEY
package main

import (
	"context"
	"log"
	"os"
	"os/signal"
	"syscall"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trendalert/config"
	"github.com/vadiminshakov/trendalert/internal"
	"github.com/vadiminshakov/trendalert/internal/clients"
	"github.com/vadiminshakov/trendalert/internal/domain"
	"github.com/vadiminshakov/trendalert/internal/services/messages"
	"github.com/vadiminshakov/trendalert/internal/services/notifier"
	"github.com/vadiminshakov/trendalert/internal/setup"
)

func main() {
	if len(os.Args) > 1 && os.Args[1] == "setup" {
		path, err := setup.RunTUI()
		if err != nil {
			log.Fatal(err)
		}
		os.Args = []string{os.Args[0], "--config", path}
	}

	conf, err := config.Get()
	if err != nil {
		log.Fatal(err)
	}

	logger := newLogger(conf.Debug)
	defer logger.Sync()
	zap.ReplaceGlobals(logger)

	client, err := newClient(conf)
	if err != nil {
		logger.Fatal("failed to create exchange client", zap.String("platform", conf.Platform), zap.Error(err))
	}

	telegram, err := notifier.NewTelegram(logger, conf.TelegramToken, notifier.Destination{
		ChatID:          conf.TelegramChatID,
		ChannelUsername: conf.TelegramChannel,
	})
	if err != nil {
		logger.Fatal("failed to create telegram client", zap.Error(err))
	}

	ctx, stop := signal.NotifyContext(context.Background(), syscall.SIGINT, syscall.SIGTERM)
	defer stop()

	bot, err := internal.NewAlertBot(logger, conf, client, telegram)
	if err != nil {
		// best effort, the bot never started
		_ = telegram.Notify(ctx, messages.Formatter{}.CriticalError(err))
		logger.Fatal("failed to create alert bot", zap.Error(err))
	}

	if err := bot.Run(ctx); err != nil {
		logger.Fatal("alert bot failed", zap.Error(err))
	}
}

func newLogger(debug bool) *zap.Logger {
	build := zap.NewProduction
	if debug {
		build = zap.NewDevelopment
	}
	logger, err := build()
	if err != nil {
		log.Fatal(err)
	}
	return logger
}

func newClient(conf config.Config) (any, error) {
	switch conf.Platform {
	case config.PlatformBinance:
		apiKey, apiSecret := os.Getenv("BINANCE_API_KEY"), os.Getenv("BINANCE_API_SECRET")
		if conf.MarketType == domain.MarketTypeSpot {
			return clients.NewBinanceClient(apiKey, apiSecret), nil
		}
		return clients.NewBinanceFuturesClient(apiKey, apiSecret), nil
	case config.PlatformBybit:
		return clients.NewBybitClient(os.Getenv("BYBIT_API_KEY"), os.Getenv("BYBIT_API_SECRET")), nil
	case config.PlatformHyperliquid:
		return clients.NewHyperliquidClient(os.Getenv("HYPERLIQUID_PRIVATE_KEY"), clients.HyperliquidMainnetURL)
	default:
		return nil, errors.Errorf("unsupported platform: %s", conf.Platform)
	}
}
