// Package notifier delivers messages to Telegram and receives bot commands.
package notifier

import (
	"context"
	"strconv"
	"strings"

	tgbot "github.com/go-telegram-bot-api/telegram-bot-api/v5"
	"github.com/pkg/errors"
	"go.uber.org/zap"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

const longPollTimeoutSec = 60

type botAPI interface {
	Send(c tgbot.Chattable) (tgbot.Message, error)
	GetUpdatesChan(config tgbot.UpdateConfig) tgbot.UpdatesChannel
	StopReceivingUpdates()
}

// CommandHandler processes one inbound command.
type CommandHandler func(ctx context.Context, cmd domain.ChatCommand)

// Destination is where notifications go: a numeric chat id or the username of
// a public channel (@name). The username wins when both are set.
type Destination struct {
	ChatID          int64
	ChannelUsername string
}

func (d Destination) String() string {
	if d.ChannelUsername != "" {
		return d.ChannelUsername
	}
	return strconv.FormatInt(d.ChatID, 10)
}

// Telegram sends notifications to a single destination chat and dispatches
// inbound commands received via long polling.
type Telegram struct {
	bot  botAPI
	dest Destination
	l    *zap.Logger
}

// NewTelegram connects to the Bot API with the given token.
func NewTelegram(l *zap.Logger, token string, dest Destination) (*Telegram, error) {
	if token == "" {
		return nil, errors.New("telegram token is empty")
	}
	if dest.ChatID == 0 && dest.ChannelUsername == "" {
		return nil, errors.New("telegram chat id is empty")
	}
	if dest.ChannelUsername != "" && (!strings.HasPrefix(dest.ChannelUsername, "@") || len(dest.ChannelUsername) < 2) {
		return nil, errors.Errorf("invalid telegram channel username %q", dest.ChannelUsername)
	}

	bot, err := tgbot.NewBotAPI(token)
	if err != nil {
		return nil, errors.Wrap(err, "failed to create telegram bot")
	}
	l.Info("authorized on telegram", zap.String("account", bot.Self.UserName))

	return newTelegram(l, bot, dest), nil
}

func newTelegram(l *zap.Logger, bot botAPI, dest Destination) *Telegram {
	return &Telegram{bot: bot, dest: dest, l: l}
}

// Send delivers msg.
func (t *Telegram) Send(ctx context.Context, msg domain.ChatMessage) error {
	if err := ctx.Err(); err != nil {
		return err
	}

	out := tgbot.NewMessage(msg.ChatID, msg.Text)
	target := strconv.FormatInt(msg.ChatID, 10)
	if msg.ChannelUsername != "" {
		out = tgbot.NewMessageToChannel(msg.ChannelUsername, msg.Text)
		target = msg.ChannelUsername
	}
	out.ReplyToMessageID = msg.ReplyTo
	if msg.HTML {
		out.ParseMode = tgbot.ModeHTML
	}

	if _, err := t.bot.Send(out); err != nil {
		return errors.Wrapf(err, "failed to send message to chat %s", target)
	}
	return nil
}

// Notify sends an HTML text to the destination chat.
func (t *Telegram) Notify(ctx context.Context, text string) error {
	return t.Send(ctx, domain.ChatMessage{
		ChatID:          t.dest.ChatID,
		ChannelUsername: t.dest.ChannelUsername,
		Text:            text,
		HTML:            true,
	})
}

// Listen receives updates until ctx is done and passes every bot command to handle.
// Commands are handled one at a time on the calling goroutine.
func (t *Telegram) Listen(ctx context.Context, handle CommandHandler) error {
	u := tgbot.NewUpdate(0)
	u.Timeout = longPollTimeoutSec
	u.AllowedUpdates = []string{"message"}

	updates := t.bot.GetUpdatesChan(u)
	defer t.bot.StopReceivingUpdates()

	t.l.Info("listening for telegram commands")
	for {
		select {
		case <-ctx.Done():
			return nil
		case upd, ok := <-updates:
			if !ok {
				return errors.New("telegram updates channel closed")
			}
			if upd.Message == nil || upd.Message.Chat == nil || !upd.Message.IsCommand() {
				continue
			}

			cmd := domain.ChatCommand{
				Name:      upd.Message.Command(),
				ChatID:    upd.Message.Chat.ID,
				MessageID: upd.Message.MessageID,
			}
			if upd.Message.From != nil {
				cmd.UserID = upd.Message.From.ID
			}
			handle(ctx, cmd)
		}
	}
}
