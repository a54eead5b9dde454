/*
Package fees implements the fee configuration engine: tiered-fee and fee-shape
validation, lazy per-tier platform defaults, effective-configuration
resolution, and the audit/cache-invalidation contract around every mutation.

Resolution model:

A merchant's effective fee shape is its custom override when one exists,
otherwise its tier's platform default. Partial updates merge field-by-field
onto that baseline; a provided tieredFees array always replaces the previous
schedule wholesale. Every merged shape is validated before anything is
written.

Usage:

	store := repositories.NewStore(repositories.DB)
	svc := fees.NewService(store, repositories.CacheService, fees.Config{})

	// Effective configuration for one merchant
	cfg, err := svc.GetMerchantFeeConfig(ctx, merchantID)

	// Partial override
	cfg, err = svc.UpdateMerchantFeeConfig(ctx, merchantID, input, actor)

	// Back to tier defaults
	cfg, err = svc.ResetMerchantFeesToDefaults(ctx, merchantID, actor)

Atomicity:

Each mutation runs as one transaction: persist the configuration row, mirror
the shape onto the merchant record, append the audit row. If any step fails
everything rolls back, so the audit trail never diverges from the persisted
configuration. Cache eviction happens after commit and is best-effort; a
failed eviction is logged and bounded by the cache TTL.

Error Handling:

Validation failures return *errors.DomainError with a machine-readable code
(FEE_BELOW_PLATFORM_MINIMUM, INVALID_MIN_MAX_RANGE, TIERS_GAP, ...). Missing
merchants or actors return *errors.NotFoundError. Failed transactions return
*errors.PersistenceError and are safe to retry whole.
*/
package fees
