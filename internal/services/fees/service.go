package fees

import (
	"context"
	"errors"
	"log"

	apperrors "paygrid/internal/errors"
	"paygrid/internal/models"
	"paygrid/internal/repositories"
)

// Config tunes the engine. Zero values fall back to the platform built-ins,
// so production wiring passes Config{} and tests substitute alternate tier
// economics or bounds.
type Config struct {
	Bounds   PercentBounds
	Schedule map[models.MerchantTier]models.FeeShape
}

type service struct {
	store    repositories.Store
	cache    CacheInvalidator
	bounds   PercentBounds
	defaults *tierDefaultsStore
}

// NewService creates the fee configuration engine.
func NewService(store repositories.Store, cache CacheInvalidator, cfg Config) Service {
	bounds := cfg.Bounds
	if bounds.Max.IsZero() {
		bounds = PlatformFeeBounds()
	}
	schedule := cfg.Schedule
	if schedule == nil {
		schedule = DefaultTierSchedule()
	}
	return &service{
		store:    store,
		cache:    cache,
		bounds:   bounds,
		defaults: &tierDefaultsStore{schedule: schedule},
	}
}

func (s *service) GetMerchantFeeConfig(ctx context.Context, merchantID string) (*EffectiveFeeConfig, error) {
	merchant, err := s.store.Merchants().GetByID(ctx, merchantID)
	if err != nil {
		return nil, s.classify("load merchant", err)
	}

	tierDefaults, err := s.defaults.getOrCreate(ctx, s.store.PlatformDefaults(), merchant.Tier())
	if err != nil {
		return nil, s.classify("resolve tier defaults", err)
	}

	config, err := s.store.FeeConfigs().GetByMerchantID(ctx, merchantID)
	if err != nil {
		return nil, s.classify("load fee config", err)
	}

	source := tierDefaults.FeeShape
	if config != nil {
		source = config.FeeShape
	}
	effective, err := normalizeFeeShape(source)
	if err != nil {
		return nil, err
	}

	defaultPct, err := percentString(tierDefaults.TransactionFeePercentage, "transactionFeePercentage")
	if err != nil {
		return nil, err
	}
	defaultFlat, err := moneyString(tierDefaults.TransactionFeeFlat, "transactionFeeFlat")
	if err != nil {
		return nil, err
	}

	out := &EffectiveFeeConfig{
		MerchantID: merchantID,
		FeeShape:   effective,
		PlatformDefaults: PlatformDefaultSummary{
			TransactionFeePercentage: defaultPct,
			TransactionFeeFlat:       defaultFlat,
		},
	}
	if config != nil {
		out.IsCustom = config.IsCustom
		updatedAt := config.UpdatedAt
		out.UpdatedAt = &updatedAt
		if config.UpdatedByID != nil {
			// Editor may have been deleted since; the config still stands.
			if user, userErr := s.store.Users().GetByID(ctx, *config.UpdatedByID); userErr == nil {
				out.UpdatedBy = &UpdatedBySummary{ID: user.ID, Email: user.Email}
			}
		}
	}
	return out, nil
}

func (s *service) UpdateMerchantFeeConfig(ctx context.Context, merchantID string, input UpdateMerchantFeesInput, actor Actor) (*EffectiveFeeConfig, error) {
	if err := ValidateReason(input.Reason); err != nil {
		return nil, err
	}

	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		merchant, err := tx.Merchants().GetByID(ctx, merchantID)
		if err != nil {
			return err
		}

		tierDefaults, err := s.defaults.getOrCreate(ctx, tx.PlatformDefaults(), merchant.Tier())
		if err != nil {
			return err
		}

		existing, err := tx.FeeConfigs().GetByMerchantID(ctx, merchantID)
		if err != nil {
			return err
		}

		baseline := tierDefaults.FeeShape
		if existing != nil {
			baseline = existing.FeeShape
		}
		before, err := normalizeFeeShape(baseline)
		if err != nil {
			return err
		}

		merged, err := mergeShape(before, input.TransactionFeePercentage, input.TransactionFeeFlat,
			input.SettlementFeePercentage, input.MinimumFee, input.MaximumFee, input.TieredFees)
		if err != nil {
			return err
		}

		if err := ValidateFeeShape(merged, s.bounds); err != nil {
			return err
		}

		return s.persistMerchantFees(ctx, tx, merchant, existing, merged, true, actor,
			models.ActionMerchantFeesUpdated, input.Reason, before)
	})
	if err != nil {
		return nil, s.classify("update merchant fees", err)
	}

	s.invalidateMerchantCaches(ctx, merchantID)
	return s.GetMerchantFeeConfig(ctx, merchantID)
}

func (s *service) ResetMerchantFeesToDefaults(ctx context.Context, merchantID string, actor Actor) (*EffectiveFeeConfig, error) {
	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		merchant, err := tx.Merchants().GetByID(ctx, merchantID)
		if err != nil {
			return err
		}

		tierDefaults, err := s.defaults.getOrCreate(ctx, tx.PlatformDefaults(), merchant.Tier())
		if err != nil {
			return err
		}

		existing, err := tx.FeeConfigs().GetByMerchantID(ctx, merchantID)
		if err != nil {
			return err
		}

		baseline := tierDefaults.FeeShape
		if existing != nil {
			baseline = existing.FeeShape
		}
		before, err := normalizeFeeShape(baseline)
		if err != nil {
			return err
		}

		defaults, err := normalizeFeeShape(tierDefaults.FeeShape)
		if err != nil {
			return err
		}

		return s.persistMerchantFees(ctx, tx, merchant, existing, defaults, false, actor,
			models.ActionMerchantFeesResetToDefault, "", before)
	})
	if err != nil {
		return nil, s.classify("reset merchant fees", err)
	}

	s.invalidateMerchantCaches(ctx, merchantID)
	return s.GetMerchantFeeConfig(ctx, merchantID)
}

func (s *service) GetPlatformFeeDefaults(ctx context.Context) (map[models.MerchantTier]models.FeeShape, error) {
	defs, err := s.defaults.ensureAll(ctx, s.store.PlatformDefaults())
	if err != nil {
		return nil, s.classify("resolve platform defaults", err)
	}

	out := make(map[models.MerchantTier]models.FeeShape, len(defs))
	for _, def := range defs {
		normalized, err := normalizeFeeShape(def.FeeShape)
		if err != nil {
			return nil, err
		}
		out[def.Tier] = normalized
	}
	return out, nil
}

func (s *service) UpdatePlatformFeeDefaults(ctx context.Context, input UpdatePlatformFeesInput, actor Actor) (map[models.MerchantTier]models.FeeShape, error) {
	if err := ValidateReason(input.Reason); err != nil {
		return nil, err
	}
	if _, ok := s.defaults.schedule[input.Tier]; !ok {
		return nil, &apperrors.DomainError{
			Code:    apperrors.CodeInvalidTier,
			Message: "unknown merchant tier: " + string(input.Tier),
			Field:   "tier",
		}
	}

	err := s.store.Atomic(ctx, func(tx repositories.Store) error {
		existing, err := s.defaults.getOrCreate(ctx, tx.PlatformDefaults(), input.Tier)
		if err != nil {
			return err
		}

		before, err := normalizeFeeShape(existing.FeeShape)
		if err != nil {
			return err
		}

		merged, err := mergeShape(before, input.TransactionFeePercentage, input.TransactionFeeFlat,
			input.SettlementFeePercentage, input.MinimumFee, input.MaximumFee, input.TieredFees)
		if err != nil {
			return err
		}

		if err := ValidateFeeShape(merged, s.bounds); err != nil {
			return err
		}

		existing.FeeShape = merged
		if err := tx.PlatformDefaults().Save(ctx, existing); err != nil {
			return err
		}

		after, err := normalizeFeeShape(merged)
		if err != nil {
			return err
		}

		reason := input.Reason
		return tx.PlatformAudits().Append(ctx, &models.PlatformFeeAuditLog{
			Action:    models.ActionPlatformFeeDefaultsUpdated,
			ChangedBy: models.ChangedBy{ID: actor.ID, Email: actor.Email, Role: actor.Role},
			Changes:   models.FeeChangeSet{Tier: input.Tier, Before: before, After: after},
			Reason:    &reason,
		})
	})
	if err != nil {
		return nil, s.classify("update platform fee defaults", err)
	}

	// Platform-scoped mutations touch no merchant-keyed cache.
	return s.GetPlatformFeeDefaults(ctx)
}

func (s *service) GetActorSummary(ctx context.Context, userID string) (Actor, error) {
	user, err := s.store.Users().GetByID(ctx, userID)
	if err != nil {
		return Actor{}, s.classify("load actor", err)
	}
	return Actor{ID: user.ID, Email: user.Email, Role: user.Role}, nil
}

// persistMerchantFees runs the write half of a merchant-scoped mutation
// inside the caller's transaction: save the override row, mirror the
// normalized shape onto the merchant record, append the audit row.
func (s *service) persistMerchantFees(ctx context.Context, tx repositories.Store, merchant *models.Merchant,
	existing *models.MerchantFeeConfig, shape models.FeeShape, isCustom bool, actor Actor,
	action, reason string, before models.FeeShape) error {

	cfg := existing
	if cfg == nil {
		cfg = &models.MerchantFeeConfig{MerchantID: merchant.ID}
	}
	cfg.FeeShape = shape
	cfg.IsCustom = isCustom
	cfg.UpdatedByID = &actor.ID
	if err := tx.FeeConfigs().Save(ctx, cfg); err != nil {
		return err
	}

	after, err := normalizeFeeShape(shape)
	if err != nil {
		return err
	}

	snapshot := models.FeeSnapshot(after)
	merchant.FeeStructure = &snapshot
	if err := tx.Merchants().Save(ctx, merchant); err != nil {
		return err
	}

	return tx.MerchantAudits().Append(ctx, &models.MerchantAuditLog{
		MerchantID: merchant.ID,
		Action:     action,
		ChangedBy:  models.ChangedBy{ID: actor.ID, Email: actor.Email, Role: actor.Role},
		Changes:    models.FeeChangeSet{Reason: reason, Before: before, After: after},
	})
}

// mergeShape applies a partial update onto the baseline shape. nil fields
// inherit the baseline; a provided tier array replaces the whole schedule
// after canonicalization.
func mergeShape(baseline models.FeeShape, txnPct, txnFlat, settlePct, minFee, maxFee *string,
	tiers *[]models.TieredFee) (models.FeeShape, error) {

	merged := baseline
	if txnPct != nil {
		merged.TransactionFeePercentage = *txnPct
	}
	if txnFlat != nil {
		merged.TransactionFeeFlat = *txnFlat
	}
	if settlePct != nil {
		merged.SettlementFeePercentage = *settlePct
	}
	if minFee != nil {
		merged.MinimumFee = *minFee
	}
	if maxFee != nil {
		merged.MaximumFee = *maxFee
	}
	if tiers != nil {
		normalized, err := normalizeTieredFees(*tiers)
		if err != nil {
			return models.FeeShape{}, err
		}
		merged.TieredFees = normalized
	}
	return merged, nil
}

// invalidateMerchantCaches evicts the merchant-detail and merchant-fee views
// after a committed mutation. Best-effort: a failed eviction leaves a stale
// entry bounded by the cache TTL.
func (s *service) invalidateMerchantCaches(ctx context.Context, merchantID string) {
	if s.cache == nil {
		return
	}
	keys := []string{
		s.cache.MerchantDetailKey(merchantID),
		s.cache.MerchantFeesKey(merchantID),
	}
	if err := s.cache.Delete(ctx, keys...); err != nil {
		log.Printf("cache eviction failed for merchant %s: %v", merchantID, err)
	}
}

// classify passes validation and not-found errors through untouched and
// wraps everything else as a persistence failure.
func (s *service) classify(op string, err error) error {
	var domainErr *apperrors.DomainError
	var notFoundErr *apperrors.NotFoundError
	if errors.As(err, &domainErr) || errors.As(err, &notFoundErr) {
		return err
	}
	return &apperrors.PersistenceError{Op: op, Err: err}
}
