package internal

import (
	"context"
	"sync"
	"sync/atomic"
	"time"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/mock"

	"github.com/vadiminshakov/trendalert/internal/domain"
	"github.com/vadiminshakov/trendalert/internal/services/notifier"
)

// sequenceProvider serves the queued responses in order and repeats the last one.
type sequenceProvider struct {
	mu        sync.Mutex
	responses []providerResponse
	calls     int
}

type providerResponse struct {
	candles []domain.MarketCandle
	err     error
}

func (p *sequenceProvider) GetKlines(_ context.Context, _ domain.Pair, _ string, _ int) ([]domain.MarketCandle, error) {
	p.mu.Lock()
	defer p.mu.Unlock()

	idx := p.calls
	if idx >= len(p.responses) {
		idx = len(p.responses) - 1
	}
	p.calls++
	r := p.responses[idx]
	return r.candles, r.err
}

func (p *sequenceProvider) Calls() int {
	p.mu.Lock()
	defer p.mu.Unlock()
	return p.calls
}

// fakeMessenger records outgoing messages and feeds queued commands to the listener.
type fakeMessenger struct {
	mu       sync.Mutex
	notified []string
	sent     []domain.ChatMessage
	commands chan domain.ChatCommand
	sendErr  error
}

func newFakeMessenger() *fakeMessenger {
	return &fakeMessenger{commands: make(chan domain.ChatCommand, 8)}
}

func (m *fakeMessenger) Send(_ context.Context, msg domain.ChatMessage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.sent = append(m.sent, msg)
	return m.sendErr
}

func (m *fakeMessenger) Notify(ctx context.Context, text string) error {
	m.mu.Lock()
	m.notified = append(m.notified, text)
	err := m.sendErr
	m.mu.Unlock()
	return err
}

func (m *fakeMessenger) Listen(ctx context.Context, handle notifier.CommandHandler) error {
	for {
		select {
		case <-ctx.Done():
			return nil
		case cmd := <-m.commands:
			handle(ctx, cmd)
		}
	}
}

func (m *fakeMessenger) Notified() []string {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]string(nil), m.notified...)
}

func (m *fakeMessenger) Sent() []domain.ChatMessage {
	m.mu.Lock()
	defer m.mu.Unlock()
	return append([]domain.ChatMessage(nil), m.sent...)
}

type mockChecker struct {
	mock.Mock
	checks atomic.Int32
}

func (m *mockChecker) Check(ctx context.Context) (*domain.Signal, error) {
	m.checks.Add(1)
	args := m.Called(ctx)
	sig, _ := args.Get(0).(*domain.Signal)
	return sig, args.Error(1)
}

type mockTracker struct {
	mock.Mock
	observed atomic.Int32
}

func (m *mockTracker) Observe(ctx context.Context, sig *domain.Signal) (bool, error) {
	defer m.observed.Add(1)
	args := m.Called(ctx, sig)
	return args.Bool(0), args.Error(1)
}

func (m *mockTracker) SetRunning(running bool) {
	m.Called(running)
}

var testPair = domain.Pair{From: "BTC", To: "USDT"}

// trendCandles builds a steady 15m trend of n candles, rising for step > 0.
func trendCandles(start, step float64, n int) []domain.MarketCandle {
	begin := time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC)
	out := make([]domain.MarketCandle, n)
	for i := range out {
		c := start + step*float64(i)
		open := begin.Add(time.Duration(i) * 15 * time.Minute)
		out[i] = domain.MarketCandle{
			OpenTime:  open,
			Open:      decimal.NewFromFloat(c),
			High:      decimal.NewFromFloat(c + 1),
			Low:       decimal.NewFromFloat(c - 1),
			Close:     decimal.NewFromFloat(c),
			Volume:    decimal.NewFromInt(1),
			CloseTime: open.Add(15*time.Minute - time.Millisecond),
		}
	}
	return out
}
