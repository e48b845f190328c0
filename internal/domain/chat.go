package domain

// ChatMessage outgoing chat message.
type ChatMessage struct {
	// ChatID destination chat.
	ChatID int64
	// ChannelUsername public channel (@name), used instead of ChatID when set.
	ChannelUsername string
	// ReplyTo id of the message being answered, 0 for a plain message.
	ReplyTo int
	// Text message body.
	Text string
	// HTML enables HTML rich formatting.
	HTML bool
}

// ChatCommand inbound bot command, e.g. /status.
type ChatCommand struct {
	// Name command without the leading slash and bot mention.
	Name string
	// ChatID chat the command was sent from.
	ChatID int64
	// MessageID id of the command message.
	MessageID int
	// UserID sender of the command.
	UserID int64
}
