// Package commands answers the chat commands of the alert bot.
package commands

import (
	"context"

	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trendalert/internal/domain"
	"github.com/vadiminshakov/trendalert/internal/metrics"
	"github.com/vadiminshakov/trendalert/internal/services/messages"
)

// Supported commands.
const (
	CommandStart  = "start"
	CommandStatus = "status"
	CommandInfo   = "info"
	CommandHelp   = "help"
)

type sender interface {
	Send(ctx context.Context, msg domain.ChatMessage) error
}

type evaluator interface {
	Evaluate(ctx context.Context) *domain.Signal
}

type trackerState interface {
	Last() *domain.Signal
	Running() bool
}

// Surface dispatches commands to their handlers and replies to the originating chat.
// Handlers only read the tracker state.
type Surface struct {
	sender    sender
	evaluator evaluator
	state     trackerState
	format    messages.Formatter
	l         *zap.Logger
}

// New creates the command surface.
func New(l *zap.Logger, sender sender, evaluator evaluator, state trackerState, format messages.Formatter) *Surface {
	return &Surface{
		sender:    sender,
		evaluator: evaluator,
		state:     state,
		format:    format,
		l:         l,
	}
}

// Handle runs the handler of cmd. Any handler failure, including a panic, is
// reported back to the chat as an error reply.
func (s *Surface) Handle(ctx context.Context, cmd domain.ChatCommand) {
	var handler func(context.Context, domain.ChatCommand) error
	switch cmd.Name {
	case CommandStart:
		handler = s.start
	case CommandStatus:
		handler = s.status
	case CommandInfo:
		handler = s.info
	case CommandHelp:
		handler = s.help
	default:
		s.l.Debug("unknown command ignored", zap.String("command", cmd.Name), zap.Int64("chat", cmd.ChatID))
		return
	}

	metrics.CommandsTotal.WithLabelValues(cmd.Name).Inc()

	if err := safeCall(ctx, cmd, handler); err != nil {
		s.l.Error("command failed", zap.String("command", cmd.Name), zap.Int64("chat", cmd.ChatID), zap.Error(err))
		s.replyError(ctx, cmd, err)
	}
}

func safeCall(ctx context.Context, cmd domain.ChatCommand, handler func(context.Context, domain.ChatCommand) error) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = errors.Errorf("%v", r)
		}
	}()
	return handler(ctx, cmd)
}

func (s *Surface) start(ctx context.Context, cmd domain.ChatCommand) error {
	s.l.Info("user started the bot", zap.Int64("user", cmd.UserID), zap.Int64("chat", cmd.ChatID))
	return s.reply(ctx, cmd, s.format.Welcome())
}

// status evaluates the market right away, bypassing the polling cadence.
func (s *Surface) status(ctx context.Context, cmd domain.ChatCommand) error {
	if err := s.sender.Send(ctx, domain.ChatMessage{ChatID: cmd.ChatID, Text: s.format.Fetching()}); err != nil {
		return errors.Wrap(err, "failed to send progress message")
	}

	sig := s.evaluator.Evaluate(ctx)
	if sig == nil {
		return s.sender.Send(ctx, domain.ChatMessage{ChatID: cmd.ChatID, Text: s.format.Unavailable()})
	}

	return s.sender.Send(ctx, domain.ChatMessage{ChatID: cmd.ChatID, Text: s.format.Signal(sig), HTML: true})
}

func (s *Surface) info(ctx context.Context, cmd domain.ChatCommand) error {
	return s.reply(ctx, cmd, s.format.Info(s.state.Running(), s.state.Last()))
}

func (s *Surface) help(ctx context.Context, cmd domain.ChatCommand) error {
	return s.reply(ctx, cmd, s.format.Help())
}

func (s *Surface) reply(ctx context.Context, cmd domain.ChatCommand, text string) error {
	return s.sender.Send(ctx, domain.ChatMessage{
		ChatID:  cmd.ChatID,
		ReplyTo: cmd.MessageID,
		Text:    text,
		HTML:    true,
	})
}

func (s *Surface) replyError(ctx context.Context, cmd domain.ChatCommand, cause error) {
	err := s.sender.Send(ctx, domain.ChatMessage{ChatID: cmd.ChatID, Text: s.format.CommandError(cause)})
	if err != nil {
		s.l.Error("failed to send error reply", zap.String("command", cmd.Name), zap.Error(err))
	}
}
