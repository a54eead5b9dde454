package fees

import (
	"context"

	"paygrid/internal/models"
	"paygrid/internal/repositories"
)

// DefaultTierSchedule returns the built-in fee schedule per merchant tier.
// It seeds a tier's PlatformFeeDefault row the first time that tier is
// resolved and is never consulted again once the row exists. Callers get a
// fresh map, so tests can pass alternate tier economics to NewService
// without touching shared state.
func DefaultTierSchedule() map[models.MerchantTier]models.FeeShape {
	return map[models.MerchantTier]models.FeeShape{
		models.TierStarter: {
			TransactionFeePercentage: "2.00",
			TransactionFeeFlat:       "0.30",
			SettlementFeePercentage:  "0.50",
			MinimumFee:               "0.50",
			MaximumFee:               "100.00",
			TieredFees:               nil,
		},
		models.TierGrowth: {
			TransactionFeePercentage: "1.50",
			TransactionFeeFlat:       "0.30",
			SettlementFeePercentage:  "0.25",
			MinimumFee:               "0.50",
			MaximumFee:               "50.00",
			TieredFees:               nil,
		},
		models.TierEnterprise: {
			TransactionFeePercentage: "1.00",
			TransactionFeeFlat:       "0.20",
			SettlementFeePercentage:  "0.10",
			MinimumFee:               "0.25",
			MaximumFee:               "25.00",
			TieredFees:               nil,
		},
	}
}

// tierDefaultsStore lazily materializes PlatformFeeDefault rows from the
// injected schedule.
type tierDefaultsStore struct {
	schedule map[models.MerchantTier]models.FeeShape
}

// getOrCreate returns the persisted defaults for a tier, seeding the row from
// the schedule if absent. Concurrent callers may race to create; the tier
// uniqueness constraint rejects the loser, which then re-reads the winner's
// row. Idempotent either way.
func (s *tierDefaultsStore) getOrCreate(ctx context.Context, repo repositories.PlatformDefaultRepository, tier models.MerchantTier) (*models.PlatformFeeDefault, error) {
	existing, err := repo.GetByTier(ctx, tier)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return existing, nil
	}

	def := &models.PlatformFeeDefault{
		Tier:     tier,
		FeeShape: s.schedule[tier],
	}
	if createErr := repo.Create(ctx, def); createErr != nil {
		// Lost the creation race: someone else's row must exist now.
		existing, err = repo.GetByTier(ctx, tier)
		if err != nil {
			return nil, err
		}
		if existing != nil {
			return existing, nil
		}
		return nil, createErr
	}
	return def, nil
}

// ensureAll materializes every tier and returns the rows in tier order.
func (s *tierDefaultsStore) ensureAll(ctx context.Context, repo repositories.PlatformDefaultRepository) ([]*models.PlatformFeeDefault, error) {
	out := make([]*models.PlatformFeeDefault, 0, len(models.AllTiers))
	for _, tier := range models.AllTiers {
		def, err := s.getOrCreate(ctx, repo, tier)
		if err != nil {
			return nil, err
		}
		out = append(out, def)
	}
	return out, nil
}
