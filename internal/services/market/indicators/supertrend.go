// Package indicators computes the SuperTrend trend direction.
// True range and the ATR pipeline come from the cinar/indicator library; the
// smoothing and the band recursion follow pandas_ta's supertrend.
package indicators

import (
	"fmt"

	"github.com/cinar/indicator/v2/helper"
	"github.com/cinar/indicator/v2/volatility"
	"github.com/pkg/errors"

	"github.com/vadiminshakov/trendalert/internal/domain"
)

const (
	// DefaultPeriod ATR period of the SuperTrend.
	DefaultPeriod = 10
	// DefaultMultiplier ATR multiplier of the SuperTrend bands.
	DefaultMultiplier = 3.0
)

// SuperTrend returns the trend direction per bar. The result is aligned to the end
// of the input: result[len(result)-1] is the direction of the last candle. Bars inside
// the ATR warmup window have no direction and are not part of the result.
//
// A bar is Up when its close breaks above the previous upper band, Down when it
// breaks below the previous lower band, and keeps the previous direction otherwise.
// Only a continued trend ratchets its band; a flip bar keeps the basic bands.
func SuperTrend(highs, lows, closes []float64, period int, multiplier float64) ([]domain.Direction, error) {
	if period <= 0 {
		return nil, errors.Errorf("period must be > 0, got %d", period)
	}
	if multiplier <= 0 {
		return nil, errors.Errorf("multiplier must be > 0, got %f", multiplier)
	}
	if len(highs) != len(lows) || len(lows) != len(closes) {
		return nil, errors.Errorf("series length mismatch: highs=%d lows=%d closes=%d", len(highs), len(lows), len(closes))
	}
	if len(closes) < period+1 {
		return nil, errors.Wrapf(domain.ErrNoData, "not enough data points for SuperTrend: need %d, got %d", period+1, len(closes))
	}

	atr := CalculateATR(highs, lows, closes, period)
	if len(atr) == 0 {
		return nil, errors.Wrap(domain.ErrNoData, "ATR returned no values")
	}

	offset := len(closes) - len(atr)
	directions := make([]domain.Direction, len(atr))

	var upperPrev, lowerPrev float64
	for i := range atr {
		bar := offset + i
		mid := (highs[bar] + lows[bar]) / 2
		upper := mid + multiplier*atr[i]
		lower := mid - multiplier*atr[i]

		switch {
		case i == 0:
			directions[i] = domain.DirectionUp
		case closes[bar] > upperPrev:
			directions[i] = domain.DirectionUp
		case closes[bar] < lowerPrev:
			directions[i] = domain.DirectionDown
		default:
			directions[i] = directions[i-1]
			if directions[i] == domain.DirectionUp && lower < lowerPrev {
				lower = lowerPrev
			}
			if directions[i] == domain.DirectionDown && upper > upperPrev {
				upper = upperPrev
			}
		}

		upperPrev, lowerPrev = upper, lower
	}

	return directions, nil
}

// CalculateATR calculates the Average True Range for the given period with
// Wilder smoothing. The first value belongs to bar period.
func CalculateATR(highs, lows, closes []float64, period int) []float64 {
	atr := volatility.NewAtrWithMa[float64](newWilderEwm(period))

	out := atr.Compute(
		helper.SliceToChan(highs),
		helper.SliceToChan(lows),
		helper.SliceToChan(closes),
	)

	return helper.ChanToSlice(out)
}

// wilderEwm is an exponentially weighted mean with alpha 1/period, weighted over
// every observation so far (pandas ewm with adjust=True). It yields values once
// period observations were seen.
type wilderEwm struct {
	period int
}

func newWilderEwm(period int) *wilderEwm {
	return &wilderEwm{period: period}
}

// Compute implements trend.Ma.
func (w *wilderEwm) Compute(c <-chan float64) <-chan float64 {
	result := make(chan float64, cap(c))

	go func() {
		defer close(result)

		decay := 1 - 1/float64(w.period)
		var num, den float64
		seen := 0
		for v := range c {
			num = v + decay*num
			den = 1 + decay*den
			seen++
			if seen >= w.period {
				result <- num / den
			}
		}
	}()

	return result
}

// IdlePeriod implements trend.Ma.
func (w *wilderEwm) IdlePeriod() int {
	return w.period - 1
}

// String implements trend.Ma.
func (w *wilderEwm) String() string {
	return fmt.Sprintf("WILDER_EWM(%d)", w.period)
}
