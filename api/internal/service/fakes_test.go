package service

import (
	"sync"
	"time"

	"payhub/api/internal/config"
	"payhub/api/internal/domain"

	"github.com/shopspring/decimal"
	"gorm.io/gorm"
)

// in-memory repositories for the service tests. they honor the same error
// contract as the postgres ones: gorm.ErrRecordNotFound for misses and
// gorm.ErrDuplicatedKey for unique violations, so postgres.IsNotFound and
// postgres.IsDuplicate keep working.

type fakeGatewayConfigs struct {
	mu   sync.Mutex
	rows []*domain.GatewayConfigurations
}

func (f *fakeGatewayConfigs) find(storeID string, p domain.Provider) *domain.GatewayConfigurations {
	for _, row := range f.rows {
		if row.StoreID == storeID && row.Provider == p {
			return row
		}
	}
	return nil
}

func (f *fakeGatewayConfigs) Upsert(_ *gorm.DB, cfg *domain.GatewayConfigurations) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if row := f.find(cfg.StoreID, cfg.Provider); row != nil {
		row.Configured = cfg.Configured
		row.Credentials = cfg.Credentials
		row.ConfiguredAt = cfg.ConfiguredAt
		return nil
	}

	cp := *cfg
	cp.ID = uint(len(f.rows) + 1)
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeGatewayConfigs) Find(_ *gorm.DB, storeID string, p domain.Provider) (*domain.GatewayConfigurations, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if row := f.find(storeID, p); row != nil {
		cp := *row
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeGatewayConfigs) FindByStore(_ *gorm.DB, storeID string) ([]domain.GatewayConfigurations, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.GatewayConfigurations
	for _, row := range f.rows {
		if row.StoreID == storeID {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeGatewayConfigs) findActive(storeID string, mustBeConfigured bool) (*domain.GatewayConfigurations, error) {
	var best *domain.GatewayConfigurations
	for _, row := range f.rows {
		if row.StoreID != storeID || !row.Active {
			continue
		}
		if mustBeConfigured && !row.Configured {
			continue
		}
		if best == nil || newerConfiguredAt(row, best) {
			best = row
		}
	}
	if best == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *best
	return &cp, nil
}

func newerConfiguredAt(a, b *domain.GatewayConfigurations) bool {
	if a.ConfiguredAt == nil {
		return false
	}
	if b.ConfiguredAt == nil {
		return true
	}
	return a.ConfiguredAt.After(*b.ConfiguredAt)
}

func (f *fakeGatewayConfigs) FindActive(_ *gorm.DB, storeID string) (*domain.GatewayConfigurations, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findActive(storeID, true)
}

func (f *fakeGatewayConfigs) FindActiveAny(_ *gorm.DB, storeID string) (*domain.GatewayConfigurations, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.findActive(storeID, false)
}

func (f *fakeGatewayConfigs) Activate(_ *gorm.DB, storeID string, p domain.Provider) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	target := f.find(storeID, p)
	if target == nil {
		return domain.ErrConfigNotFound
	}
	for _, row := range f.rows {
		if row.StoreID == storeID && row.Provider != p {
			row.Active = false
		}
	}
	target.Active = true
	return nil
}

func (f *fakeGatewayConfigs) Deactivate(_ *gorm.DB, storeID string, p domain.Provider) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if row := f.find(storeID, p); row != nil {
		row.Active = false
	}
	return nil
}

// activeCount reports how many gateways a store has switched on, for the
// exclusivity assertions.
func (f *fakeGatewayConfigs) activeCount(storeID string) int {
	f.mu.Lock()
	defer f.mu.Unlock()

	n := 0
	for _, row := range f.rows {
		if row.StoreID == storeID && row.Active {
			n++
		}
	}
	return n
}

type fakeApprovals struct {
	mu   sync.Mutex
	rows []*domain.WalletApprovalRequests
}

func (f *fakeApprovals) Create(_ *gorm.DB, req *domain.WalletApprovalRequests) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, row := range f.rows {
		if row.RequestID == req.RequestID {
			return gorm.ErrDuplicatedKey
		}
	}

	req.ID = uint(len(f.rows) + 1)
	cp := *req
	f.rows = append(f.rows, &cp)
	return nil
}

func (f *fakeApprovals) FindByRequestID(_ *gorm.DB, requestID string) (*domain.WalletApprovalRequests, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, row := range f.rows {
		if row.RequestID == requestID {
			cp := *row
			return &cp, nil
		}
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeApprovals) FindLatestByUser(_ *gorm.DB, userID string) (*domain.WalletApprovalRequests, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var latest *domain.WalletApprovalRequests
	for _, row := range f.rows {
		if row.UserID != userID {
			continue
		}
		if latest == nil || row.RequestedAt.After(latest.RequestedAt) {
			latest = row
		}
	}
	if latest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *latest
	return &cp, nil
}

func (f *fakeApprovals) FindPending(_ *gorm.DB) ([]domain.WalletApprovalRequests, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.WalletApprovalRequests
	for _, row := range f.rows {
		if row.Status.IsPending() {
			out = append(out, *row)
		}
	}
	return out, nil
}

func (f *fakeApprovals) Decide(_ *gorm.DB, id uint, status domain.ApprovalStatus, decidedBy string, notes string) (int64, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	for _, row := range f.rows {
		if row.ID != id || !row.Status.IsPending() {
			continue
		}
		now := time.Now()
		row.Status = status
		row.DecidedAt = &now
		row.DecidedBy = decidedBy
		row.DecisionNotes = notes
		return 1, nil
	}
	return 0, nil
}

type fakeCommissions struct {
	mu   sync.Mutex
	rows map[string]*domain.Commissions
}

func newFakeCommissions() *fakeCommissions {
	return &fakeCommissions{rows: map[string]*domain.Commissions{}}
}

func (f *fakeCommissions) Create(_ *gorm.DB, commission *domain.Commissions) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if _, ok := f.rows[commission.SaleID]; ok {
		return gorm.ErrDuplicatedKey
	}
	commission.ID = uint(len(f.rows) + 1)
	cp := *commission
	f.rows[commission.SaleID] = &cp
	return nil
}

func (f *fakeCommissions) FindBySale(_ *gorm.DB, saleID string) (*domain.Commissions, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if row, ok := f.rows[saleID]; ok {
		cp := *row
		return &cp, nil
	}
	return nil, gorm.ErrRecordNotFound
}

func (f *fakeCommissions) FindByStore(_ *gorm.DB, storeID string, limit int) ([]domain.Commissions, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var out []domain.Commissions
	for _, row := range f.rows {
		if row.StoreID == storeID {
			out = append(out, *row)
		}
		if limit > 0 && len(out) == limit {
			break
		}
	}
	return out, nil
}

func (f *fakeCommissions) SummarizeStore(_ *gorm.DB, storeID string) (*domain.CommissionSummary, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	summary := &domain.CommissionSummary{}
	for _, row := range f.rows {
		if row.StoreID != storeID {
			continue
		}
		summary.Count++
		summary.Gross = summary.Gross.Add(row.GrossAmount)
		summary.Commission = summary.Commission.Add(row.CommissionAmount)
		summary.Net = summary.Net.Add(row.NetAmount)
	}
	return summary, nil
}

type fakeSettings struct {
	mu       sync.Mutex
	settings *domain.PlatformSettings
	fees     []*domain.FeeSchedules
}

func (f *fakeSettings) Get(_ *gorm.DB) (*domain.PlatformSettings, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.settings == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *f.settings
	return &cp, nil
}

func (f *fakeSettings) SetDefaultProvider(_ *gorm.DB, p domain.Provider) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	if f.settings == nil {
		f.settings = &domain.PlatformSettings{ID: domain.PLATFORM_SETTINGS_ID}
	}
	f.settings.DefaultProvider = p
	return nil
}

func (f *fakeSettings) CurrentFees(_ *gorm.DB) (*domain.FeeSchedules, error) {
	f.mu.Lock()
	defer f.mu.Unlock()

	var newest *domain.FeeSchedules
	for _, fs := range f.fees {
		if newest == nil || fs.EffectiveAt.After(newest.EffectiveAt) {
			newest = fs
		}
	}
	if newest == nil {
		return nil, gorm.ErrRecordNotFound
	}
	cp := *newest
	return &cp, nil
}

func (f *fakeSettings) AddFeeSchedule(_ *gorm.DB, fs *domain.FeeSchedules) error {
	f.mu.Lock()
	defer f.mu.Unlock()

	cp := *fs
	f.fees = append(f.fees, &cp)
	return nil
}

func testConfig() *config.Config {
	c := &config.Config{}
	c.Fees.FixedFee = decimal.RequireFromString("0.50")
	c.Fees.PercentFee = decimal.RequireFromString("3.00")
	c.Testing.Enabled = true
	return c
}

func owner(userID, storeID string) domain.Actor {
	return domain.Actor{UserID: userID, StoreID: storeID, Role: domain.ROLE_STORE_OWNER}
}

func admin(userID string) domain.Actor {
	return domain.Actor{UserID: userID, Role: domain.ROLE_PLATFORM_ADMIN}
}
