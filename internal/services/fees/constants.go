package fees

import "github.com/shopspring/decimal"

// Reason bounds for mutation audit reasons.
const (
	ReasonMinLength = 5
	ReasonMaxLength = 500
)

// PercentBounds are the platform-wide limits on fee percentages, inclusive.
type PercentBounds struct {
	Min decimal.Decimal
	Max decimal.Decimal
}

// PlatformFeeBounds returns the built-in [0.5%, 5.0%] percentage bounds.
func PlatformFeeBounds() PercentBounds {
	return PercentBounds{
		Min: decimal.RequireFromString("0.5"),
		Max: decimal.RequireFromString("5.0"),
	}
}
