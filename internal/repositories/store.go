package repositories

import (
	"context"

	"paygrid/internal/models"

	"gorm.io/gorm"
)

// MerchantRepository reads and writes merchant aggregates.
type MerchantRepository interface {
	GetByID(ctx context.Context, id string) (*models.Merchant, error)
	Save(ctx context.Context, merchant *models.Merchant) error
}

// UserRepository resolves actor accounts. Read-only from the fee engine's
// point of view.
type UserRepository interface {
	GetByID(ctx context.Context, id string) (*models.User, error)
}

// FeeConfigRepository manages merchant fee overrides. GetByMerchantID returns
// (nil, nil) when the merchant has no override row.
type FeeConfigRepository interface {
	GetByMerchantID(ctx context.Context, merchantID string) (*models.MerchantFeeConfig, error)
	Save(ctx context.Context, config *models.MerchantFeeConfig) error
}

// PlatformDefaultRepository manages per-tier platform fee defaults.
// GetByTier returns (nil, nil) when the tier has not been materialized yet.
type PlatformDefaultRepository interface {
	GetByTier(ctx context.Context, tier models.MerchantTier) (*models.PlatformFeeDefault, error)
	Create(ctx context.Context, def *models.PlatformFeeDefault) error
	Save(ctx context.Context, def *models.PlatformFeeDefault) error
}

// MerchantAuditRepository appends merchant-scoped audit rows. Append-only.
type MerchantAuditRepository interface {
	Append(ctx context.Context, entry *models.MerchantAuditLog) error
}

// PlatformAuditRepository appends platform-scoped audit rows. Append-only.
type PlatformAuditRepository interface {
	Append(ctx context.Context, entry *models.PlatformFeeAuditLog) error
}

// Store bundles the repositories behind one handle. Atomic runs fn against a
// Store bound to a single database transaction: every write made through that
// Store commits or rolls back together.
type Store interface {
	Merchants() MerchantRepository
	Users() UserRepository
	FeeConfigs() FeeConfigRepository
	PlatformDefaults() PlatformDefaultRepository
	MerchantAudits() MerchantAuditRepository
	PlatformAudits() PlatformAuditRepository
	Atomic(ctx context.Context, fn func(Store) error) error
}

type gormStore struct {
	db *gorm.DB
}

// NewStore returns a Store backed by the given gorm handle.
func NewStore(db *gorm.DB) Store {
	return &gormStore{db: db}
}

func (s *gormStore) Merchants() MerchantRepository {
	return &merchantRepository{db: s.db}
}

func (s *gormStore) Users() UserRepository {
	return &userRepository{db: s.db}
}

func (s *gormStore) FeeConfigs() FeeConfigRepository {
	return &feeConfigRepository{db: s.db}
}

func (s *gormStore) PlatformDefaults() PlatformDefaultRepository {
	return &platformDefaultRepository{db: s.db}
}

func (s *gormStore) MerchantAudits() MerchantAuditRepository {
	return &merchantAuditRepository{db: s.db}
}

func (s *gormStore) PlatformAudits() PlatformAuditRepository {
	return &platformAuditRepository{db: s.db}
}

func (s *gormStore) Atomic(ctx context.Context, fn func(Store) error) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		return fn(&gormStore{db: tx})
	})
}
