package domain

import (
	"encoding/json"
	"fmt"
	"time"

	"github.com/shopspring/decimal"
)

// Signal outcome of one evaluation: the direction of the latest bar and its close.
// Fields are unexported, a Signal never changes after NewSignal.
type Signal struct {
	direction  Direction
	price      decimal.Decimal
	observedAt time.Time
}

// NewSignal constructs a Signal.
func NewSignal(direction Direction, price decimal.Decimal, observedAt time.Time) (*Signal, error) {
	if !direction.IsValid() {
		return nil, fmt.Errorf("invalid direction %q", direction)
	}
	return &Signal{direction: direction, price: price, observedAt: observedAt}, nil
}

// Direction returns the trend direction.
func (s *Signal) Direction() Direction { return s.direction }

// Price returns the close price of the evaluated bar.
func (s *Signal) Price() decimal.Decimal { return s.price }

// ObservedAt returns the evaluation time.
func (s *Signal) ObservedAt() time.Time { return s.observedAt }

// SameDirection reports whether both signals point the same way.
// A nil signal never matches.
func (s *Signal) SameDirection(other *Signal) bool {
	if s == nil || other == nil {
		return false
	}
	return s.direction == other.direction
}

type signalJSON struct {
	Direction  Direction       `json:"direction"`
	Price      decimal.Decimal `json:"price"`
	ObservedAt time.Time       `json:"observed_at"`
}

// MarshalJSON implements json.Marshaler.
func (s *Signal) MarshalJSON() ([]byte, error) {
	return json.Marshal(signalJSON{
		Direction:  s.direction,
		Price:      s.price,
		ObservedAt: s.observedAt,
	})
}
