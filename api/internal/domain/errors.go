package domain

import (
	"errors"
	"fmt"
	"net/http"
)

const (
	ErrMsgInternalServerError = "internal server error"
	ErrMsgBadRequest          = "bad request"
	ErrMsgRateLimitExceeded   = "rate limit exceeded"
	ErrMsgAccessError         = "access error"

	ErrMsgStoreNotFound   = "store not found"
	ErrMsgRequestNotFound = "approval request not found"
	ErrMsgConfigNotFound  = "gateway configuration not found"

	ErrMsgApprovalNotRequested = "wallet approval not requested. submit an approval request first"
	ErrMsgApprovalPending      = "wallet approval awaiting an admin decision"
	ErrMsgInsufficientRole     = "insufficient role"
	ErrMsgNotConfigured        = "provider credentials are not configured"
	ErrMsgUnsupportedProvider  = "unsupported provider"
	ErrMsgProviderUnavailable  = "payment provider is unavailable"
	ErrMsgInvalidTaxID         = "invalid tax id"
)

var (
	ErrInternalServerError = errors.New(ErrMsgInternalServerError)

	// PermissionError subtypes. The wrapping lets handlers match the family
	// while the UI gets the precise next step.
	ErrPermission           = errors.New("permission denied")
	ErrApprovalNotRequested = fmt.Errorf("%w: wallet approval not requested", ErrPermission)
	ErrApprovalPending      = fmt.Errorf("%w: wallet approval awaiting decision", ErrPermission)
	ErrInsufficientRole     = fmt.Errorf("%w: insufficient role", ErrPermission)

	ErrNotConfigured       = errors.New("provider is not configured")
	ErrUnsupportedProvider = errors.New("unsupported provider")

	ErrStoreNotFound         = errors.New("store not found")
	ErrRequestNotFound       = errors.New("approval request not found")
	ErrConfigNotFound        = errors.New("gateway configuration not found")
	ErrCommissionNotFound    = errors.New("commission not found")
	ErrRequestAlreadyDecided = errors.New("approval request already decided")

	ErrProviderUnavailable = errors.New("provider communication error")
	ErrProviderTimeout     = fmt.Errorf("%w: timeout", ErrProviderUnavailable)

	// benign: callers treat it as a no-op
	ErrDuplicateCommission = errors.New("commission already recorded for sale")

	ErrInvalidTaxID  = errors.New("invalid tax id")
	ErrInvalidAmount = errors.New("invalid amount")
)

func GetStatusByErr(err error) (status int) {
	if err == nil {
		return http.StatusOK
	}

	switch {
	case errors.Is(err, ErrPermission):
		status = http.StatusForbidden
	case errors.Is(err, ErrStoreNotFound),
		errors.Is(err, ErrRequestNotFound),
		errors.Is(err, ErrConfigNotFound),
		errors.Is(err, ErrCommissionNotFound):
		status = http.StatusNotFound
	case errors.Is(err, ErrNotConfigured),
		errors.Is(err, ErrUnsupportedProvider),
		errors.Is(err, ErrInvalidTaxID),
		errors.Is(err, ErrInvalidAmount):
		status = http.StatusBadRequest
	case errors.Is(err, ErrRequestAlreadyDecided),
		errors.Is(err, ErrDuplicateCommission):
		status = http.StatusConflict
	case errors.Is(err, ErrProviderUnavailable):
		status = http.StatusBadGateway
	default:
		status = http.StatusInternalServerError
	}
	return status
}
