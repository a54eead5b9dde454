package fees

import (
	"sort"

	"paygrid/internal/models"
)

// percentString renders a percentage at the canonical 2 decimal digits.
// Values are stored and validated at up to 4 digits; display is always 2.
func percentString(value, field string) (string, error) {
	d, err := parseDecimal(value, field)
	if err != nil {
		return "", err
	}
	return d.StringFixed(2), nil
}

// moneyString renders a money amount at the canonical 2 decimal digits.
func moneyString(value, field string) (string, error) {
	d, err := parseDecimal(value, field)
	if err != nil {
		return "", err
	}
	return d.StringFixed(2), nil
}

// normalizeTieredFees canonicalizes a tiered schedule: percentages at 2
// decimal digits, bands sorted ascending by minVolumeUsd.
func normalizeTieredFees(tiers []models.TieredFee) (models.TieredFees, error) {
	if tiers == nil {
		return nil, nil
	}

	out := make(models.TieredFees, len(tiers))
	for i, tier := range tiers {
		pct, err := percentString(tier.FeePercentage, "tieredFees.feePercentage")
		if err != nil {
			return nil, err
		}
		out[i] = models.TieredFee{
			MinVolumeUsd:  tier.MinVolumeUsd,
			MaxVolumeUsd:  tier.MaxVolumeUsd,
			FeePercentage: pct,
		}
	}
	sort.SliceStable(out, func(i, j int) bool {
		return out[i].MinVolumeUsd < out[j].MinVolumeUsd
	})
	return out, nil
}

// normalizeFeeShape renders every numeric field of a shape in canonical
// string form. Applied everywhere a shape leaves the engine.
func normalizeFeeShape(shape models.FeeShape) (models.FeeShape, error) {
	txnPct, err := percentString(shape.TransactionFeePercentage, "transactionFeePercentage")
	if err != nil {
		return models.FeeShape{}, err
	}
	txnFlat, err := moneyString(shape.TransactionFeeFlat, "transactionFeeFlat")
	if err != nil {
		return models.FeeShape{}, err
	}
	settlePct, err := percentString(shape.SettlementFeePercentage, "settlementFeePercentage")
	if err != nil {
		return models.FeeShape{}, err
	}
	minFee, err := moneyString(shape.MinimumFee, "minimumFee")
	if err != nil {
		return models.FeeShape{}, err
	}
	maxFee, err := moneyString(shape.MaximumFee, "maximumFee")
	if err != nil {
		return models.FeeShape{}, err
	}
	tiers, err := normalizeTieredFees(shape.TieredFees)
	if err != nil {
		return models.FeeShape{}, err
	}

	return models.FeeShape{
		TransactionFeePercentage: txnPct,
		TransactionFeeFlat:       txnFlat,
		SettlementFeePercentage:  settlePct,
		MinimumFee:               minFee,
		MaximumFee:               maxFee,
		TieredFees:               tiers,
	}, nil
}
