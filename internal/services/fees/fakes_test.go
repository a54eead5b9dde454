package fees

import (
	"context"
	"errors"
	"time"

	apperrors "paygrid/internal/errors"
	"paygrid/internal/models"
	"paygrid/internal/repositories"

	"github.com/google/uuid"
)

var errDuplicateTier = errors.New("duplicate key value violates unique constraint")

// fakeStore is an in-memory repositories.Store. Reads hand out copies the way
// a row scan would, Atomic restores the pre-transaction state when fn fails,
// and injected errors simulate write failures mid-transaction.
type fakeStore struct {
	merchants map[string]*models.Merchant
	users     map[string]*models.User
	configs   map[string]*models.MerchantFeeConfig
	defaults  map[models.MerchantTier]*models.PlatformFeeDefault

	merchantAudits []models.MerchantAuditLog
	platformAudits []models.PlatformFeeAuditLog

	merchantAuditErr error
	platformCreate   func(def *models.PlatformFeeDefault) error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		merchants: make(map[string]*models.Merchant),
		users:     make(map[string]*models.User),
		configs:   make(map[string]*models.MerchantFeeConfig),
		defaults:  make(map[models.MerchantTier]*models.PlatformFeeDefault),
	}
}

func (s *fakeStore) seedMerchant(id string, tier models.MerchantTier) {
	s.merchants[id] = &models.Merchant{
		ID:           id,
		BusinessName: "Acme " + id,
		Email:        id + "@merchants.test",
		Status:       "active",
		Settings:     models.JSON{"tier": string(tier)},
	}
}

func (s *fakeStore) seedUser(id, email, role string) {
	s.users[id] = &models.User{ID: id, Email: email, Role: role}
}

type fakeState struct {
	merchants map[string]*models.Merchant
	users     map[string]*models.User
	configs   map[string]*models.MerchantFeeConfig
	defaults  map[models.MerchantTier]*models.PlatformFeeDefault

	merchantAudits []models.MerchantAuditLog
	platformAudits []models.PlatformFeeAuditLog
}

func (s *fakeStore) snapshot() fakeState {
	st := fakeState{
		merchants: make(map[string]*models.Merchant, len(s.merchants)),
		users:     make(map[string]*models.User, len(s.users)),
		configs:   make(map[string]*models.MerchantFeeConfig, len(s.configs)),
		defaults:  make(map[models.MerchantTier]*models.PlatformFeeDefault, len(s.defaults)),
	}
	for k, v := range s.merchants {
		cp := *v
		st.merchants[k] = &cp
	}
	for k, v := range s.users {
		cp := *v
		st.users[k] = &cp
	}
	for k, v := range s.configs {
		cp := *v
		st.configs[k] = &cp
	}
	for k, v := range s.defaults {
		cp := *v
		st.defaults[k] = &cp
	}
	st.merchantAudits = append([]models.MerchantAuditLog(nil), s.merchantAudits...)
	st.platformAudits = append([]models.PlatformFeeAuditLog(nil), s.platformAudits...)
	return st
}

func (s *fakeStore) restore(st fakeState) {
	s.merchants = st.merchants
	s.users = st.users
	s.configs = st.configs
	s.defaults = st.defaults
	s.merchantAudits = st.merchantAudits
	s.platformAudits = st.platformAudits
}

func (s *fakeStore) Merchants() repositories.MerchantRepository           { return fakeMerchants{s} }
func (s *fakeStore) Users() repositories.UserRepository                   { return fakeUsers{s} }
func (s *fakeStore) FeeConfigs() repositories.FeeConfigRepository         { return fakeFeeConfigs{s} }
func (s *fakeStore) PlatformDefaults() repositories.PlatformDefaultRepository {
	return fakePlatformDefaults{s}
}
func (s *fakeStore) MerchantAudits() repositories.MerchantAuditRepository { return fakeMerchantAudits{s} }
func (s *fakeStore) PlatformAudits() repositories.PlatformAuditRepository { return fakePlatformAudits{s} }

func (s *fakeStore) Atomic(ctx context.Context, fn func(repositories.Store) error) error {
	st := s.snapshot()
	if err := fn(s); err != nil {
		s.restore(st)
		return err
	}
	return nil
}

type fakeMerchants struct{ s *fakeStore }

func (r fakeMerchants) GetByID(ctx context.Context, id string) (*models.Merchant, error) {
	m, ok := r.s.merchants[id]
	if !ok {
		return nil, apperrors.MerchantNotFound(id)
	}
	cp := *m
	return &cp, nil
}

func (r fakeMerchants) Save(ctx context.Context, merchant *models.Merchant) error {
	cp := *merchant
	cp.UpdatedAt = time.Now()
	r.s.merchants[merchant.ID] = &cp
	return nil
}

type fakeUsers struct{ s *fakeStore }

func (r fakeUsers) GetByID(ctx context.Context, id string) (*models.User, error) {
	u, ok := r.s.users[id]
	if !ok {
		return nil, apperrors.UserNotFound(id)
	}
	cp := *u
	return &cp, nil
}

type fakeFeeConfigs struct{ s *fakeStore }

func (r fakeFeeConfigs) GetByMerchantID(ctx context.Context, merchantID string) (*models.MerchantFeeConfig, error) {
	c, ok := r.s.configs[merchantID]
	if !ok {
		return nil, nil
	}
	cp := *c
	return &cp, nil
}

func (r fakeFeeConfigs) Save(ctx context.Context, config *models.MerchantFeeConfig) error {
	cp := *config
	if cp.ID == "" {
		cp.ID = uuid.NewString()
		cp.CreatedAt = time.Now()
	}
	cp.UpdatedAt = time.Now()
	r.s.configs[config.MerchantID] = &cp
	*config = cp
	return nil
}

type fakePlatformDefaults struct{ s *fakeStore }

func (r fakePlatformDefaults) GetByTier(ctx context.Context, tier models.MerchantTier) (*models.PlatformFeeDefault, error) {
	d, ok := r.s.defaults[tier]
	if !ok {
		return nil, nil
	}
	cp := *d
	return &cp, nil
}

func (r fakePlatformDefaults) Create(ctx context.Context, def *models.PlatformFeeDefault) error {
	if r.s.platformCreate != nil {
		if err := r.s.platformCreate(def); err != nil {
			return err
		}
	}
	if _, exists := r.s.defaults[def.Tier]; exists {
		return errDuplicateTier
	}
	cp := *def
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	cp.CreatedAt = time.Now()
	cp.UpdatedAt = cp.CreatedAt
	r.s.defaults[def.Tier] = &cp
	*def = cp
	return nil
}

func (r fakePlatformDefaults) Save(ctx context.Context, def *models.PlatformFeeDefault) error {
	cp := *def
	cp.UpdatedAt = time.Now()
	r.s.defaults[def.Tier] = &cp
	*def = cp
	return nil
}

type fakeMerchantAudits struct{ s *fakeStore }

func (r fakeMerchantAudits) Append(ctx context.Context, entry *models.MerchantAuditLog) error {
	if r.s.merchantAuditErr != nil {
		return r.s.merchantAuditErr
	}
	cp := *entry
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	cp.CreatedAt = time.Now()
	r.s.merchantAudits = append(r.s.merchantAudits, cp)
	return nil
}

type fakePlatformAudits struct{ s *fakeStore }

func (r fakePlatformAudits) Append(ctx context.Context, entry *models.PlatformFeeAuditLog) error {
	cp := *entry
	if cp.ID == "" {
		cp.ID = uuid.NewString()
	}
	cp.CreatedAt = time.Now()
	r.s.platformAudits = append(r.s.platformAudits, cp)
	return nil
}

// fakeCache records evicted keys and can simulate a failing backend.
type fakeCache struct {
	deleted []string
	err     error
}

func (c *fakeCache) Delete(ctx context.Context, keys ...string) error {
	if c.err != nil {
		return c.err
	}
	c.deleted = append(c.deleted, keys...)
	return nil
}

func (c *fakeCache) MerchantDetailKey(merchantID string) string {
	return "merchant:detail:" + merchantID
}

func (c *fakeCache) MerchantFeesKey(merchantID string) string {
	return "merchant:fees:" + merchantID
}
