package service

import (
	"errors"
	"sync"
	"testing"
	"time"

	"payhub/api/internal/domain"
	"payhub/api/internal/logger"
)

func newActivationService(configs *fakeGatewayConfigs, approvals *fakeApprovals) *ActivationService {
	return NewActivationService(nil, configs, approvals, NewLockerService(), logger.Logger{}, testConfig())
}

func approvedRequest(userID, storeID string) *domain.WalletApprovalRequests {
	return &domain.WalletApprovalRequests{
		RequestID:   "req-" + userID,
		UserID:      userID,
		StoreID:     storeID,
		Status:      domain.APPROVAL_APPROVED,
		RequestedAt: time.Now(),
	}
}

func TestSetActiveWalletRequiresApproval(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	approvals := &fakeApprovals{}
	s := newActivationService(configs, approvals)

	actor := owner("u1", "store-1")

	err := s.SetActive("store-1", domain.PROVIDER_WALLET, true, actor)
	if !errors.Is(err, domain.ErrApprovalNotRequested) {
		t.Fatalf("no request: want ErrApprovalNotRequested, got %v", err)
	}

	pending := approvedRequest("u1", "store-1")
	pending.Status = domain.APPROVAL_PENDING
	if err := approvals.Create(nil, pending); err != nil {
		t.Fatal(err)
	}

	err = s.SetActive("store-1", domain.PROVIDER_WALLET, true, actor)
	if !errors.Is(err, domain.ErrApprovalPending) {
		t.Fatalf("pending request: want ErrApprovalPending, got %v", err)
	}
}

func TestSetActiveWalletApproved(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	approvals := &fakeApprovals{}
	s := newActivationService(configs, approvals)

	if err := approvals.Create(nil, approvedRequest("u1", "store-1")); err != nil {
		t.Fatal(err)
	}

	if err := s.SetActive("store-1", domain.PROVIDER_WALLET, true, owner("u1", "store-1")); err != nil {
		t.Fatalf("approved owner should activate wallet: %v", err)
	}

	row, err := configs.Find(nil, "store-1", domain.PROVIDER_WALLET)
	if err != nil {
		t.Fatal(err)
	}
	if !row.Active || !row.Configured {
		t.Fatalf("wallet row not active+configured: %+v", row)
	}
}

func TestSetActiveWalletRejectedThenResubmitted(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	approvals := &fakeApprovals{}
	s := newActivationService(configs, approvals)

	rejected := approvedRequest("u1", "store-1")
	rejected.Status = domain.APPROVAL_REJECTED
	rejected.RequestedAt = time.Now().Add(time.Minute) // newer than the approval
	older := approvedRequest("u1", "store-1")
	older.RequestID = "req-old"

	if err := approvals.Create(nil, older); err != nil {
		t.Fatal(err)
	}
	if err := approvals.Create(nil, rejected); err != nil {
		t.Fatal(err)
	}

	// the rejection is the latest word, the old approval no longer counts
	err := s.SetActive("store-1", domain.PROVIDER_WALLET, true, owner("u1", "store-1"))
	if !errors.Is(err, domain.ErrApprovalNotRequested) {
		t.Fatalf("want ErrApprovalNotRequested after rejection, got %v", err)
	}
}

func TestSetActiveAdminBypassesApproval(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	s := newActivationService(configs, &fakeApprovals{})

	if err := s.SetActive("store-1", domain.PROVIDER_WALLET, true, admin("adm")); err != nil {
		t.Fatalf("admin activation failed: %v", err)
	}
	if configs.activeCount("store-1") != 1 {
		t.Fatal("wallet not active")
	}
}

func TestSetActiveExternalRequiresConfiguration(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	s := newActivationService(configs, &fakeApprovals{})

	actor := owner("u1", "store-1")

	err := s.SetActive("store-1", domain.PROVIDER_MERCADOPAGO, true, actor)
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("unconfigured: want ErrNotConfigured, got %v", err)
	}

	creds := domain.JSONMap{"access_token": "TEST-token"}
	if err := s.SaveCredentials("store-1", domain.PROVIDER_MERCADOPAGO, creds, actor); err != nil {
		t.Fatalf("SaveCredentials: %v", err)
	}

	if err := s.SetActive("store-1", domain.PROVIDER_MERCADOPAGO, true, actor); err != nil {
		t.Fatalf("configured activation failed: %v", err)
	}
}

func TestSetActiveSwitchKeepsOneActive(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	approvals := &fakeApprovals{}
	s := newActivationService(configs, approvals)

	actor := owner("u1", "store-1")
	if err := approvals.Create(nil, approvedRequest("u1", "store-1")); err != nil {
		t.Fatal(err)
	}

	if err := s.SaveCredentials("store-1", domain.PROVIDER_PICPAY, domain.JSONMap{"picpay_token": "tok"}, actor); err != nil {
		t.Fatal(err)
	}

	if err := s.SetActive("store-1", domain.PROVIDER_WALLET, true, actor); err != nil {
		t.Fatal(err)
	}
	if err := s.SetActive("store-1", domain.PROVIDER_PICPAY, true, actor); err != nil {
		t.Fatal(err)
	}

	if n := configs.activeCount("store-1"); n != 1 {
		t.Fatalf("want exactly one active gateway, got %d", n)
	}
	row, _ := configs.Find(nil, "store-1", domain.PROVIDER_PICPAY)
	if !row.Active {
		t.Fatal("picpay should be the active one")
	}
}

func TestSetActiveConcurrentTogglesStayExclusive(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	approvals := &fakeApprovals{}
	s := newActivationService(configs, approvals)

	actor := owner("u1", "store-1")
	if err := approvals.Create(nil, approvedRequest("u1", "store-1")); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveCredentials("store-1", domain.PROVIDER_MERCADOPAGO, domain.JSONMap{"access_token": "t"}, actor); err != nil {
		t.Fatal(err)
	}
	if err := s.SaveCredentials("store-1", domain.PROVIDER_PICPAY, domain.JSONMap{"picpay_token": "t"}, actor); err != nil {
		t.Fatal(err)
	}

	providers := []domain.Provider{domain.PROVIDER_WALLET, domain.PROVIDER_MERCADOPAGO, domain.PROVIDER_PICPAY}

	var wg sync.WaitGroup
	for i := 0; i < 30; i++ {
		wg.Add(1)
		go func(p domain.Provider) {
			defer wg.Done()
			if err := s.SetActive("store-1", p, true, actor); err != nil {
				t.Errorf("SetActive(%s): %v", p.ToString(), err)
			}
		}(providers[i%len(providers)])
	}
	wg.Wait()

	if n := configs.activeCount("store-1"); n != 1 {
		t.Fatalf("want exactly one active gateway after the race, got %d", n)
	}
}

func TestSetActiveDeactivationIsUnconditional(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	s := newActivationService(configs, &fakeApprovals{})

	actor := owner("u1", "store-1")

	// never configured, never approved: switching off still succeeds
	if err := s.SetActive("store-1", domain.PROVIDER_WALLET, false, actor); err != nil {
		t.Fatalf("deactivate: %v", err)
	}

	if err := s.SetActive("store-1", domain.PROVIDER_WALLET, true, admin("adm")); err != nil {
		t.Fatal(err)
	}
	if err := s.SetActive("store-1", domain.PROVIDER_WALLET, false, actor); err != nil {
		t.Fatalf("deactivate active wallet: %v", err)
	}
	if configs.activeCount("store-1") != 0 {
		t.Fatal("wallet still active after deactivation")
	}
}

func TestSetActivePermissions(t *testing.T) {
	s := newActivationService(&fakeGatewayConfigs{}, &fakeApprovals{})

	err := s.SetActive("store-1", domain.PROVIDER_WALLET, true, owner("u2", "store-2"))
	if !errors.Is(err, domain.ErrInsufficientRole) {
		t.Fatalf("foreign owner: want ErrInsufficientRole, got %v", err)
	}

	err = s.SetActive("store-1", domain.PROVIDER_NONE, true, admin("adm"))
	if !errors.Is(err, domain.ErrUnsupportedProvider) {
		t.Fatalf("provider none: want ErrUnsupportedProvider, got %v", err)
	}
}

func TestSaveCredentialsMissingRequiredKey(t *testing.T) {
	s := newActivationService(&fakeGatewayConfigs{}, &fakeApprovals{})

	err := s.SaveCredentials("store-1", domain.PROVIDER_MERCADOPAGO, domain.JSONMap{}, owner("u1", "store-1"))
	if !errors.Is(err, domain.ErrNotConfigured) {
		t.Fatalf("want ErrNotConfigured, got %v", err)
	}
}

func TestGetConfigurationsRoleGate(t *testing.T) {
	configs := &fakeGatewayConfigs{}
	s := newActivationService(configs, &fakeApprovals{})

	if err := s.SaveCredentials("store-1", domain.PROVIDER_PICPAY, domain.JSONMap{"picpay_token": "t"}, owner("u1", "store-1")); err != nil {
		t.Fatal(err)
	}

	if _, err := s.GetConfigurations("store-1", owner("u2", "store-2")); !errors.Is(err, domain.ErrInsufficientRole) {
		t.Fatalf("foreign owner: want ErrInsufficientRole, got %v", err)
	}

	rows, err := s.GetConfigurations("store-1", admin("adm"))
	if err != nil {
		t.Fatal(err)
	}
	if len(rows) != 1 {
		t.Fatalf("want 1 configuration, got %d", len(rows))
	}
}
