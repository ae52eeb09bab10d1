package validate

import (
	"time"

	"github.com/shopspring/decimal"
)

// IsPositiveAmount reports whether a money amount is strictly greater
// than zero.
func IsPositiveAmount(amount decimal.Decimal) bool {
	return amount.GreaterThan(decimal.Zero)
}

// IsValidTimeRange reports whether both bounds are set and end is
// strictly after start.
func IsValidTimeRange(start, end time.Time) bool {
	if start.IsZero() || end.IsZero() {
		return false
	}
	return end.After(start)
}
