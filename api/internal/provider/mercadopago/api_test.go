package mercadopago

import (
	"context"
	"errors"
	"fmt"
	"testing"

	"payhub/api/internal/domain"
)

type timeoutErr struct{}

func (timeoutErr) Error() string   { return "i/o timeout" }
func (timeoutErr) Timeout() bool   { return true }
func (timeoutErr) Temporary() bool { return true }

func TestAsProviderErr(t *testing.T) {
	cases := []struct {
		name    string
		err     error
		timeout bool
	}{
		{"deadline exceeded", context.DeadlineExceeded, true},
		{"wrapped deadline", fmt.Errorf("Post \"/v1/payments\": %w", context.DeadlineExceeded), true},
		{"net timeout", timeoutErr{}, true},
		{"connection refused", errors.New("connection refused"), false},
	}

	for _, tc := range cases {
		got := asProviderErr(tc.err)

		if errors.Is(got, domain.ErrProviderTimeout) != tc.timeout {
			t.Errorf("%s: ErrProviderTimeout match = %v, want %v", tc.name, !tc.timeout, tc.timeout)
		}
		// timeouts are still provider communication failures
		if !errors.Is(got, domain.ErrProviderUnavailable) {
			t.Errorf("%s: must wrap ErrProviderUnavailable", tc.name)
		}
	}
}
