package fees

import (
	"fmt"
	"sort"

	apperrors "paygrid/internal/errors"
	"paygrid/internal/models"

	"github.com/shopspring/decimal"
)

// parseDecimal parses a decimal string, failing with NOT_A_NUMBER naming the
// offending field.
func parseDecimal(value, field string) (decimal.Decimal, error) {
	d, err := decimal.NewFromString(value)
	if err != nil {
		return decimal.Decimal{}, &apperrors.DomainError{
			Code:    apperrors.CodeNotANumber,
			Message: fmt.Sprintf("%s must be a valid number", field),
			Field:   field,
		}
	}
	return d, nil
}

// assertPercentWithinBounds checks a fee percentage against the platform
// bounds, inclusive on both ends.
func assertPercentWithinBounds(value, field string, bounds PercentBounds) error {
	d, err := parseDecimal(value, field)
	if err != nil {
		return err
	}

	if d.LessThan(bounds.Min) {
		return &apperrors.DomainError{
			Code:    apperrors.CodeFeeBelowPlatformMinimum,
			Message: fmt.Sprintf("%s cannot be below %s%%", field, bounds.Min.StringFixed(2)),
			Field:   field,
		}
	}

	if d.GreaterThan(bounds.Max) {
		return &apperrors.DomainError{
			Code:    apperrors.CodeFeeAbovePlatformMaximum,
			Message: fmt.Sprintf("%s cannot exceed %s%%", field, bounds.Max.StringFixed(2)),
			Field:   field,
		}
	}

	return nil
}

// ValidateTieredFees checks that tiers form a contiguous partition of
// [0, infinity): the lowest tier starts at 0, adjacent tiers meet exactly at
// their shared boundary, and the highest tier is unbounded. Every tier's
// percentage must sit within the platform bounds; the lowest offending tier
// is reported first. Input order is irrelevant.
func ValidateTieredFees(tiers []models.TieredFee, bounds PercentBounds) error {
	if len(tiers) == 0 {
		return &apperrors.DomainError{
			Code:    apperrors.CodeTiersEmpty,
			Message: "tieredFees must contain at least one tier",
			Field:   "tieredFees",
		}
	}

	sorted := make([]models.TieredFee, len(tiers))
	copy(sorted, tiers)
	sort.SliceStable(sorted, func(i, j int) bool {
		return sorted[i].MinVolumeUsd < sorted[j].MinVolumeUsd
	})

	if sorted[0].MinVolumeUsd != 0 {
		return &apperrors.DomainError{
			Code:    apperrors.CodeTiersMustStartAtZero,
			Message: "tieredFees must start at minVolumeUsd = 0",
			Field:   "tieredFees",
		}
	}

	for i, current := range sorted {
		field := fmt.Sprintf("tieredFees[%d].feePercentage", i)
		if err := assertPercentWithinBounds(current.FeePercentage, field, bounds); err != nil {
			return err
		}

		if current.MaxVolumeUsd != nil && *current.MaxVolumeUsd <= current.MinVolumeUsd {
			return &apperrors.DomainError{
				Code:    apperrors.CodeTiersInvalidRange,
				Message: fmt.Sprintf("tieredFees[%d] has invalid range: maxVolumeUsd must be greater than minVolumeUsd", i),
				Field:   "tieredFees",
			}
		}

		if i == len(sorted)-1 {
			if current.MaxVolumeUsd != nil {
				return &apperrors.DomainError{
					Code:    apperrors.CodeTiersMustCoverInfinity,
					Message: "tieredFees must cover 0 to infinity. The last tier maxVolumeUsd must be null.",
					Field:   "tieredFees",
				}
			}
			return nil
		}

		if current.MaxVolumeUsd == nil {
			return &apperrors.DomainError{
				Code:    apperrors.CodeTiersInvalidRange,
				Message: fmt.Sprintf("tieredFees[%d] has maxVolumeUsd = null before the last tier", i),
				Field:   "tieredFees",
			}
		}

		next := sorted[i+1]
		if *current.MaxVolumeUsd < next.MinVolumeUsd {
			return &apperrors.DomainError{
				Code:    apperrors.CodeTiersGap,
				Message: fmt.Sprintf("tieredFees gap detected between %v and %v", *current.MaxVolumeUsd, next.MinVolumeUsd),
				Field:   "tieredFees",
			}
		}

		if *current.MaxVolumeUsd > next.MinVolumeUsd {
			return &apperrors.DomainError{
				Code:    apperrors.CodeTiersOverlap,
				Message: fmt.Sprintf("tieredFees overlap detected between %v and %v", *current.MaxVolumeUsd, next.MinVolumeUsd),
				Field:   "tieredFees",
			}
		}
	}

	return nil
}

// ValidateFeeShape validates a fully-merged fee shape: percentage bounds,
// minimumFee <= maximumFee ordering, then the tiered schedule when present.
// The first failure found is returned; nothing runs with side effects.
func ValidateFeeShape(shape models.FeeShape, bounds PercentBounds) error {
	if err := assertPercentWithinBounds(shape.TransactionFeePercentage, "transactionFeePercentage", bounds); err != nil {
		return err
	}

	minimumFee, err := parseDecimal(shape.MinimumFee, "minimumFee")
	if err != nil {
		return err
	}
	maximumFee, err := parseDecimal(shape.MaximumFee, "maximumFee")
	if err != nil {
		return err
	}
	if minimumFee.GreaterThan(maximumFee) {
		return &apperrors.DomainError{
			Code:    apperrors.CodeInvalidMinMaxRange,
			Message: "minimumFee must be less than or equal to maximumFee",
			Field:   "minimumFee",
		}
	}

	if shape.TieredFees != nil {
		return ValidateTieredFees(shape.TieredFees, bounds)
	}

	return nil
}

// ValidateReason enforces the mandatory mutation reason: present and between
// 5 and 500 characters.
func ValidateReason(reason string) error {
	if len(reason) < ReasonMinLength {
		return &apperrors.DomainError{
			Code:    apperrors.CodeReasonRequired,
			Message: fmt.Sprintf("reason must be at least %d characters", ReasonMinLength),
			Field:   "reason",
		}
	}
	if len(reason) > ReasonMaxLength {
		return &apperrors.DomainError{
			Code:    apperrors.CodeReasonRequired,
			Message: fmt.Sprintf("reason must be at most %d characters", ReasonMaxLength),
			Field:   "reason",
		}
	}
	return nil
}
