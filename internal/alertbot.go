package internal

import (
	"context"
	"time"

	"github.com/pkg/errors"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"

	"github.com/vadiminshakov/trendalert/config"
	"github.com/vadiminshakov/trendalert/internal/domain"
	"github.com/vadiminshakov/trendalert/internal/services/commands"
	"github.com/vadiminshakov/trendalert/internal/services/messages"
	"github.com/vadiminshakov/trendalert/internal/services/notifier"
	"github.com/vadiminshakov/trendalert/internal/services/trend"
	"github.com/vadiminshakov/trendalert/internal/web"
)

const farewellTimeout = 10 * time.Second

// Messenger delivers notifications and receives chat commands.
type Messenger interface {
	Send(ctx context.Context, msg domain.ChatMessage) error
	Notify(ctx context.Context, text string) error
	Listen(ctx context.Context, handle notifier.CommandHandler) error
}

// AlertBot watches a single pair and reports SuperTrend direction changes to the chat.
type AlertBot struct {
	Config config.Config

	messenger Messenger
	format    messages.Formatter
	evaluator *trend.Evaluator
	tracker   *trend.Tracker
	poller    *Poller
	commands  *commands.Surface
	server    *web.Server
	l         *zap.Logger
}

// NewAlertBot wires the bot services for the given market data client.
func NewAlertBot(l *zap.Logger, conf config.Config, client any, messenger Messenger) (*AlertBot, error) {
	if messenger == nil {
		return nil, errors.New("messenger is required")
	}

	provider, err := newKlineProvider(client, conf.MarketType)
	if err != nil {
		return nil, errors.Wrapf(err, "unsupported platform: %s", conf.Platform)
	}

	l = l.With(zap.String("pair", conf.Pair.String()))

	format := messages.Formatter{
		Pair:         conf.Pair,
		Interval:     conf.Timeframe,
		PollInterval: conf.PollInterval,
		Period:       conf.SuperTrendPeriod,
		Multiplier:   conf.SuperTrendMultiplier,
	}

	evaluator, err := trend.NewEvaluator(l, provider, trend.Settings{
		Pair:       conf.Pair,
		Interval:   conf.Timeframe,
		Limit:      conf.CandleLimit,
		Period:     conf.SuperTrendPeriod,
		Multiplier: conf.SuperTrendMultiplier,
		Retries:    conf.FetchRetries,
	})
	if err != nil {
		return nil, errors.Wrap(err, "failed to create evaluator")
	}

	tracker := trend.NewTracker(l, messenger, format)

	bot := &AlertBot{
		Config:    conf,
		messenger: messenger,
		format:    format,
		evaluator: evaluator,
		tracker:   tracker,
		poller:    NewPoller(l, evaluator, tracker, conf.PollInterval, conf.RecoveryInterval),
		commands:  commands.New(l, messenger, evaluator, tracker, format),
		l:         l,
	}
	if conf.HTTPAddr != "" {
		bot.server = web.NewServer(l, conf.HTTPAddr, tracker, conf.Pair, conf.Timeframe)
	}

	return bot, nil
}

// Tracker exposes the shared signal state.
func (b *AlertBot) Tracker() *trend.Tracker {
	return b.tracker
}

// Run announces the start, then runs the polling loop, the command listener
// and the status server until ctx is done or one of them fails.
// The stop or the failure is reported to the chat before Run returns.
func (b *AlertBot) Run(ctx context.Context) error {
	b.l.Info("starting alert bot",
		zap.String("platform", b.Config.Platform),
		zap.String("market", b.Config.MarketType.String()),
		zap.String("timeframe", b.Config.Timeframe))

	if err := b.messenger.Notify(ctx, b.format.Started()); err != nil {
		b.l.Warn("failed to send start notification", zap.Error(err))
	}

	g, gctx := errgroup.WithContext(ctx)
	g.Go(func() error {
		return b.poller.Run(gctx)
	})
	g.Go(func() error {
		return b.messenger.Listen(gctx, b.commands.Handle)
	})
	if b.server != nil {
		g.Go(func() error {
			return errors.Wrap(b.server.Start(gctx), "status server failed")
		})
	}
	g.Go(func() error {
		<-gctx.Done()
		b.poller.Stop()
		return nil
	})

	runErr := g.Wait()

	farewellCtx, cancel := context.WithTimeout(context.Background(), farewellTimeout)
	defer cancel()

	if runErr != nil {
		b.l.Error("alert bot failed", zap.Error(runErr))
		// best effort, the process is going down anyway
		_ = b.messenger.Notify(farewellCtx, b.format.CriticalError(runErr))
		return runErr
	}

	b.l.Info("alert bot stopped")
	if err := b.messenger.Notify(farewellCtx, b.format.Stopped()); err != nil {
		b.l.Warn("failed to send stop notification", zap.Error(err))
	}
	return nil
}
