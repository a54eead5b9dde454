package fees

import (
	"context"

	"paygrid/internal/models"
)

// Service is the fee configuration engine consumed by the host transport.
// Authorization is the caller's responsibility; every mutation records the
// supplied actor in the audit trail.
type Service interface {
	// Read operations
	GetMerchantFeeConfig(ctx context.Context, merchantID string) (*EffectiveFeeConfig, error)
	GetPlatformFeeDefaults(ctx context.Context) (map[models.MerchantTier]models.FeeShape, error)

	// Write operations
	UpdateMerchantFeeConfig(ctx context.Context, merchantID string, input UpdateMerchantFeesInput, actor Actor) (*EffectiveFeeConfig, error)
	ResetMerchantFeesToDefaults(ctx context.Context, merchantID string, actor Actor) (*EffectiveFeeConfig, error)
	UpdatePlatformFeeDefaults(ctx context.Context, input UpdatePlatformFeesInput, actor Actor) (map[models.MerchantTier]models.FeeShape, error)

	// Actor resolution
	GetActorSummary(ctx context.Context, userID string) (Actor, error)
}

// CacheInvalidator evicts derived views after a committed mutation.
// Best-effort: eviction failures are logged by the engine, never surfaced.
type CacheInvalidator interface {
	Delete(ctx context.Context, keys ...string) error
	MerchantDetailKey(merchantID string) string
	MerchantFeesKey(merchantID string) string
}
