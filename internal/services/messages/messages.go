// Package messages renders the chat texts of the alert bot. All texts use
// Telegram HTML formatting unless noted otherwise.
package messages

import (
	"fmt"
	"html"
	"time"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

const timeLayout = "2006-01-02 15:04:05"

// Formatter renders messages for one tracked pair.
type Formatter struct {
	Pair         domain.Pair
	Interval     string
	PollInterval time.Duration
	Period       int
	Multiplier   float64
}

// Signal renders a signal summary.
func (f Formatter) Signal(sig *domain.Signal) string {
	return fmt.Sprintf(
		"📊 <b>%s</b>\n"+
			"⚡️ Signal: <b>%s</b>\n"+
			"💰 Price: <code>%s</code> %s\n"+
			"🕐 Time: %s",
		f.Pair.Display(),
		sig.Direction().Label(),
		sig.Price().StringFixed(2), f.Pair.To,
		sig.ObservedAt().Format(timeLayout),
	)
}

// Announcement renders the notification sent when the direction changes.
func (f Formatter) Announcement(sig *domain.Signal) string {
	return "🔔 <b>NEW SIGNAL!</b>\n\n" + f.Signal(sig)
}

// Welcome renders the /start reply.
func (f Formatter) Welcome() string {
	return "👋 <b>Welcome to the trading bot!</b>\n\n" +
		fmt.Sprintf("📈 Tracked pair: <code>%s</code>\n", f.Pair.Display()) +
		fmt.Sprintf("⏱ Timeframe: <code>%s</code>\n", f.Interval) +
		fmt.Sprintf("📊 Indicator: %s\n\n", f.indicator()) +
		"<b>Available commands:</b>\n" +
		commandList
}

// Help renders the /help reply.
func (f Formatter) Help() string {
	return "📖 <b>Help</b>\n\n" +
		"The bot analyses the crypto market with the SuperTrend indicator " +
		"and sends buy/sell signals.\n\n" +
		"<b>How it works:</b>\n" +
		fmt.Sprintf("• The market is checked every %s\n", humanMinutes(f.PollInterval)) +
		"• You get a notification when the signal changes\n" +
		"• 🟢 BUY - buy signal\n" +
		"• 🔴 SELL - sell signal\n\n" +
		"<b>Commands:</b>\n" +
		"/status - current signal\n" +
		"/info - bot information\n" +
		"/help - this help"
}

// Info renders the /info reply.
func (f Formatter) Info(running bool, last *domain.Signal) string {
	status := "🔴 Stopped"
	if running {
		status = "🟢 Active"
	}
	lastDirection := "No data"
	if last != nil {
		lastDirection = last.Direction().Label()
	}

	return "ℹ️ <b>Bot information</b>\n\n" +
		fmt.Sprintf("Symbol: <code>%s</code>\n", f.Pair.Display()) +
		fmt.Sprintf("Timeframe: <code>%s</code>\n", f.Interval) +
		fmt.Sprintf("Check interval: <code>%s</code>\n", humanMinutes(f.PollInterval)) +
		fmt.Sprintf("Status: %s\n", status) +
		fmt.Sprintf("Last signal: <code>%s</code>", lastDirection)
}

// Started renders the startup notification.
func (f Formatter) Started() string {
	return fmt.Sprintf("✅ <b>Bot started!</b>\nTracking %s on the %s timeframe", f.Pair.Display(), f.Interval)
}

// Stopped renders the shutdown notification.
func (f Formatter) Stopped() string {
	return "🛑 Bot stopped"
}

// CriticalError renders the best-effort notification about a fatal failure.
func (f Formatter) CriticalError(err error) string {
	return "❌ Critical error: " + html.EscapeString(err.Error())
}

// Fetching plain text progress reply of /status.
func (f Formatter) Fetching() string {
	return "⏳ Fetching data..."
}

// Unavailable plain text reply of /status when no signal could be evaluated.
func (f Formatter) Unavailable() string {
	return "⚠️ Could not get a signal. Try again later."
}

// CommandError plain text reply for a failed command.
func (f Formatter) CommandError(err error) string {
	return "❌ An error occurred: " + err.Error()
}

func (f Formatter) indicator() string {
	return fmt.Sprintf("SuperTrend (%d, %.1f)", f.Period, f.Multiplier)
}

const commandList = "/status - current signal\n" +
	"/info - bot information\n" +
	"/help - help"

func humanMinutes(d time.Duration) string {
	minutes := int(d / time.Minute)
	if minutes == 1 {
		return "1 minute"
	}
	if minutes < 1 {
		return d.String()
	}
	return fmt.Sprintf("%d minutes", minutes)
}
