package v1

import (
	"payhub/api/internal/domain"

	"github.com/gin-gonic/gin"
	"github.com/shopspring/decimal"
)

type responseError struct {
	Error   bool   `json:"error"`
	ErrorID string `json:"error_id"`
	Msg     string `json:"msg"`
}

// credentials never leave the service, only their key names do
type responseGatewayConfig struct {
	Provider       string   `json:"provider"`
	Active         bool     `json:"active"`
	Configured     bool     `json:"configured"`
	CredentialKeys []string `json:"credential_keys"`
	ConfiguredAt   string   `json:"configured_at,omitempty"`
}

type responseGatewayList struct {
	Error    bool                    `json:"error"`
	StoreID  string                  `json:"store_id"`
	Gateways []responseGatewayConfig `json:"gateways"`
}

type responseActivation struct {
	Error    bool   `json:"error"`
	Provider string `json:"provider"`
	Active   bool   `json:"active"`
}

type responseCredentialsSaved struct {
	Error    bool   `json:"error"`
	Provider string `json:"provider"`
}

type responseApproval struct {
	Error         bool   `json:"error"`
	RequestID     string `json:"request_id"`
	Status        string `json:"status"`
	RequestedAt   string `json:"requested_at"`
	DecidedAt     string `json:"decided_at,omitempty"`
	DecisionNotes string `json:"decision_notes,omitempty"`
}

type responseApprovalList struct {
	Error    bool               `json:"error"`
	Requests []responseApproval `json:"requests"`
}

type responsePaymentCreated struct {
	Error       bool   `json:"error"`
	PaymentID   string `json:"payment_id"`
	Provider    string `json:"provider"`
	Code        string `json:"code,omitempty"`
	QrCode      string `json:"qr_code,omitempty"`
	RedirectURL string `json:"redirect_url,omitempty"`
}

type responsePaymentStatus struct {
	Error  bool   `json:"error"`
	Status string `json:"status"`
	Paid   bool   `json:"paid"`
}

type responseCommission struct {
	Error      bool            `json:"error"`
	SaleID     string          `json:"sale_id"`
	Gross      decimal.Decimal `json:"gross"`
	Commission decimal.Decimal `json:"commission"`
	Net        decimal.Decimal `json:"net"`
	SaleDate   string          `json:"sale_date"`
}

type responseCommissionSummary struct {
	Error      bool            `json:"error"`
	StoreID    string          `json:"store_id"`
	Count      int64           `json:"count"`
	Gross      decimal.Decimal `json:"gross"`
	Commission decimal.Decimal `json:"commission"`
	Net        decimal.Decimal `json:"net"`
}

type responseDefaultGateway struct {
	Error    bool   `json:"error"`
	Provider string `json:"provider"`
}

func responseErr(c *gin.Context, statusCode int, msg, errorID string) {
	c.AbortWithStatusJSON(statusCode, responseError{true, errorID, msg})
}

func newResponseApproval(req *domain.WalletApprovalRequests) responseApproval {
	res := responseApproval{
		RequestID:     req.RequestID,
		Status:        req.Status.ToString(),
		RequestedAt:   req.RequestedAt.Format("2006-01-02 15:04:05"),
		DecisionNotes: req.DecisionNotes,
	}
	if req.DecidedAt != nil {
		res.DecidedAt = req.DecidedAt.Format("2006-01-02 15:04:05")
	}
	return res
}

func newResponseGatewayConfig(cfg *domain.GatewayConfigurations) responseGatewayConfig {
	res := responseGatewayConfig{
		Provider:       cfg.Provider.ToString(),
		Active:         cfg.Active,
		Configured:     cfg.Configured,
		CredentialKeys: cfg.Credentials.Keys(),
	}
	if cfg.ConfiguredAt != nil {
		res.ConfiguredAt = cfg.ConfiguredAt.Format("2006-01-02 15:04:05")
	}
	return res
}
