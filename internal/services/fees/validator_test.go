package fees

import (
	"strings"
	"testing"

	apperrors "paygrid/internal/errors"
	"paygrid/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func f64(v float64) *float64 {
	return &v
}

func tier(min float64, max *float64, pct string) models.TieredFee {
	return models.TieredFee{MinVolumeUsd: min, MaxVolumeUsd: max, FeePercentage: pct}
}

func domainCode(t *testing.T, err error) string {
	t.Helper()
	require.Error(t, err)
	domainErr, ok := err.(*apperrors.DomainError)
	require.True(t, ok, "expected *errors.DomainError, got %T: %v", err, err)
	return domainErr.Code
}

func TestValidateTieredFees(t *testing.T) {
	bounds := PlatformFeeBounds()

	tests := []struct {
		name     string
		tiers    []models.TieredFee
		wantCode string
	}{
		{
			name: "valid three-band partition",
			tiers: []models.TieredFee{
				tier(0, f64(10000), "1.50"),
				tier(10000, f64(100000), "1.20"),
				tier(100000, nil, "0.90"),
			},
		},
		{
			name: "valid regardless of input order",
			tiers: []models.TieredFee{
				tier(100000, nil, "0.90"),
				tier(0, f64(10000), "1.50"),
				tier(10000, f64(100000), "1.20"),
			},
		},
		{
			name:  "valid single unbounded tier",
			tiers: []models.TieredFee{tier(0, nil, "1.50")},
		},
		{
			name:     "empty schedule",
			tiers:    []models.TieredFee{},
			wantCode: apperrors.CodeTiersEmpty,
		},
		{
			name:     "first tier does not start at zero",
			tiers:    []models.TieredFee{tier(1, nil, "1.50")},
			wantCode: apperrors.CodeTiersMustStartAtZero,
		},
		{
			name: "gap between adjacent tiers",
			tiers: []models.TieredFee{
				tier(0, f64(10000), "1.50"),
				tier(11000, nil, "1.20"),
			},
			wantCode: apperrors.CodeTiersGap,
		},
		{
			name: "overlap between adjacent tiers",
			tiers: []models.TieredFee{
				tier(0, f64(10000), "1.50"),
				tier(9000, nil, "1.20"),
			},
			wantCode: apperrors.CodeTiersOverlap,
		},
		{
			name:     "percentage below platform minimum",
			tiers:    []models.TieredFee{tier(0, nil, "0.10")},
			wantCode: apperrors.CodeFeeBelowPlatformMinimum,
		},
		{
			name:     "percentage above platform maximum",
			tiers:    []models.TieredFee{tier(0, nil, "7.50")},
			wantCode: apperrors.CodeFeeAbovePlatformMaximum,
		},
		{
			name: "lowest offending tier reported first",
			tiers: []models.TieredFee{
				tier(10000, nil, "9.00"),
				tier(0, f64(10000), "0.10"),
			},
			wantCode: apperrors.CodeFeeBelowPlatformMinimum,
		},
		{
			name:     "max not greater than min",
			tiers:    []models.TieredFee{tier(0, f64(0), "1.50")},
			wantCode: apperrors.CodeTiersInvalidRange,
		},
		{
			name: "unbounded tier before the last",
			tiers: []models.TieredFee{
				tier(0, nil, "1.50"),
				tier(10000, nil, "1.20"),
			},
			wantCode: apperrors.CodeTiersInvalidRange,
		},
		{
			name: "terminal tier must be unbounded",
			tiers: []models.TieredFee{
				tier(0, f64(10000), "1.50"),
				tier(10000, f64(100000), "1.20"),
			},
			wantCode: apperrors.CodeTiersMustCoverInfinity,
		},
		{
			name:     "non-numeric percentage",
			tiers:    []models.TieredFee{tier(0, nil, "lots")},
			wantCode: apperrors.CodeNotANumber,
		},
		{
			name:  "boundary percentages are inclusive",
			tiers: []models.TieredFee{tier(0, f64(500), "0.5"), tier(500, nil, "5.0")},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := ValidateTieredFees(tt.tiers, bounds)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantCode, domainCode(t, err))
			}
		})
	}
}

func TestValidateTieredFees_AdjacencyMustBeExact(t *testing.T) {
	bounds := PlatformFeeBounds()

	// The shared boundary is the only valid adjacency.
	err := ValidateTieredFees([]models.TieredFee{
		tier(0, f64(10000), "1.50"),
		tier(10000, nil, "1.20"),
	}, bounds)
	assert.NoError(t, err)
}

func validShape() models.FeeShape {
	return models.FeeShape{
		TransactionFeePercentage: "2.00",
		TransactionFeeFlat:       "0.30",
		SettlementFeePercentage:  "0.50",
		MinimumFee:               "0.50",
		MaximumFee:               "100.00",
	}
}

func TestValidateFeeShape(t *testing.T) {
	bounds := PlatformFeeBounds()

	tests := []struct {
		name     string
		mutate   func(*models.FeeShape)
		wantCode string
	}{
		{
			name:   "valid shape without tiers",
			mutate: func(s *models.FeeShape) {},
		},
		{
			name: "valid shape with tiers",
			mutate: func(s *models.FeeShape) {
				s.TieredFees = models.TieredFees{tier(0, nil, "1.50")}
			},
		},
		{
			name:     "transaction fee below minimum",
			mutate:   func(s *models.FeeShape) { s.TransactionFeePercentage = "0.10" },
			wantCode: apperrors.CodeFeeBelowPlatformMinimum,
		},
		{
			name:     "transaction fee above maximum",
			mutate:   func(s *models.FeeShape) { s.TransactionFeePercentage = "5.01" },
			wantCode: apperrors.CodeFeeAbovePlatformMaximum,
		},
		{
			name:     "minimum greater than maximum",
			mutate:   func(s *models.FeeShape) { s.MinimumFee = "200.00" },
			wantCode: apperrors.CodeInvalidMinMaxRange,
		},
		{
			name: "min max ordering checked even with invalid tiers present",
			mutate: func(s *models.FeeShape) {
				s.MinimumFee = "200.00"
				s.TieredFees = models.TieredFees{tier(1, nil, "1.50")}
			},
			wantCode: apperrors.CodeInvalidMinMaxRange,
		},
		{
			name:     "non-numeric transaction fee",
			mutate:   func(s *models.FeeShape) { s.TransactionFeePercentage = "NaN-ish" },
			wantCode: apperrors.CodeNotANumber,
		},
		{
			name:     "non-numeric minimum fee",
			mutate:   func(s *models.FeeShape) { s.MinimumFee = "" },
			wantCode: apperrors.CodeNotANumber,
		},
		{
			name: "invalid tier schedule",
			mutate: func(s *models.FeeShape) {
				s.TieredFees = models.TieredFees{tier(0, f64(10000), "1.50"), tier(11000, nil, "1.20")}
			},
			wantCode: apperrors.CodeTiersGap,
		},
		{
			name:   "equal min and max fees",
			mutate: func(s *models.FeeShape) { s.MinimumFee = "5.00"; s.MaximumFee = "5.00" },
		},
		{
			name:   "bounds are inclusive",
			mutate: func(s *models.FeeShape) { s.TransactionFeePercentage = "5.00" },
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			shape := validShape()
			tt.mutate(&shape)
			err := ValidateFeeShape(shape, bounds)
			if tt.wantCode == "" {
				assert.NoError(t, err)
			} else {
				assert.Equal(t, tt.wantCode, domainCode(t, err))
			}
		})
	}
}

func TestValidateReason(t *testing.T) {
	assert.NoError(t, ValidateReason("quarterly pricing review"))
	assert.NoError(t, ValidateReason("12345"))

	err := ValidateReason("")
	assert.Equal(t, apperrors.CodeReasonRequired, domainCode(t, err))

	err = ValidateReason("hey")
	assert.Equal(t, apperrors.CodeReasonRequired, domainCode(t, err))

	err = ValidateReason(strings.Repeat("x", 501))
	assert.Equal(t, apperrors.CodeReasonRequired, domainCode(t, err))

	assert.NoError(t, ValidateReason(strings.Repeat("x", 500)))
}
