package builders

import (
	"time"

	"github.com/shopspring/decimal"
)

const secondsPerDay = 24 * 60 * 60

// DateOnly truncates t to midnight UTC of its calendar date
func DateOnly(t time.Time) time.Time {
	y, m, d := t.Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

// Nights counts whole calendar days between arrival and departure.
// The result is negative when departure precedes arrival.
func Nights(arrival, departure time.Time) int64 {
	return (DateOnly(departure).Unix() - DateOnly(arrival).Unix()) / secondsPerDay
}

// TotalPrice returns nights x nightly rounded to two decimals
func TotalPrice(nightly decimal.Decimal, nights int64) decimal.Decimal {
	return nightly.Mul(decimal.NewFromInt(nights)).Round(2)
}
