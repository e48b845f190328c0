package domain

import "errors"

// ErrNoData is returned when the market has no usable data for evaluation.
var ErrNoData = errors.New("no market data")
