package errors

// Machine-readable validation codes for fee configuration.
const (
	CodeFeeBelowPlatformMinimum = "FEE_BELOW_PLATFORM_MINIMUM"
	CodeFeeAbovePlatformMaximum = "FEE_ABOVE_PLATFORM_MAXIMUM"
	CodeInvalidMinMaxRange      = "INVALID_MIN_MAX_RANGE"
	CodeTiersEmpty              = "TIERS_EMPTY"
	CodeTiersMustStartAtZero    = "TIERS_MUST_START_AT_ZERO"
	CodeTiersGap                = "TIERS_GAP"
	CodeTiersOverlap            = "TIERS_OVERLAP"
	CodeTiersInvalidRange       = "TIERS_INVALID_RANGE"
	CodeTiersMustCoverInfinity  = "TIERS_MUST_COVER_INFINITY"
	CodeNotANumber              = "NOT_A_NUMBER"
	CodeReasonRequired          = "REASON_REQUIRED"
	CodeInvalidTier             = "INVALID_TIER"
)

// MerchantNotFound reports a missing merchant aggregate.
func MerchantNotFound(id string) *NotFoundError {
	return &NotFoundError{Resource: "merchant", ID: id}
}

// UserNotFound reports a missing actor account.
func UserNotFound(id string) *NotFoundError {
	return &NotFoundError{Resource: "user", ID: id}
}
