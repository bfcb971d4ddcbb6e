//go:build unit

package payment_test

import (
	"context"
	"encoding/json"
	"errors"
	"net/http"
	"net/http/httptest"
	"testing"
	"time"

	"pharmashift/internal/infra/payment"
	"pharmashift/internal/usecase/shared"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestHTTPGateway_Capture(t *testing.T) {
	var got struct {
		Amount        int64             `json:"amount"`
		Currency      string            `json:"currency"`
		PaymentMethod string            `json:"payment_method"`
		Metadata      map[string]string `json:"metadata"`
	}
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		assert.Equal(t, http.MethodPost, r.Method)
		assert.Equal(t, "/v1/captures", r.URL.Path)
		assert.Equal(t, "Bearer sk_test", r.Header.Get("Authorization"))
		assert.Equal(t, "shift-cancel:abc", r.Header.Get("Idempotency-Key"))
		require.NoError(t, json.NewDecoder(r.Body).Decode(&got))

		w.Header().Set("Content-Type", "application/json")
		_, _ = w.Write([]byte(`{"id":"ch_42","status":"succeeded"}`))
	}))
	defer srv.Close()

	gw, err := payment.NewHTTPGateway(srv.URL+"/", "sk_test", "USD", time.Second)
	require.NoError(t, err)

	ref, err := gw.Capture(context.Background(), shared.CaptureRequest{
		AmountCents:      15000,
		PaymentMethodRef: "pm_1",
		IdempotencyKey:   "shift-cancel:abc",
		Metadata:         map[string]string{"breaching_role": "worker"},
	})
	require.NoError(t, err)
	assert.Equal(t, "ch_42", ref)
	assert.Equal(t, int64(15000), got.Amount)
	assert.Equal(t, "usd", got.Currency)
	assert.Equal(t, "pm_1", got.PaymentMethod)
	assert.Equal(t, "worker", got.Metadata["breaching_role"])
}

func TestHTTPGateway_Declined(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusPaymentRequired)
		_, _ = w.Write([]byte(`{"error":{"code":"card_declined","message":"Your card was declined."}}`))
	}))
	defer srv.Close()

	gw, err := payment.NewHTTPGateway(srv.URL, "sk_test", "usd", time.Second)
	require.NoError(t, err)

	_, err = gw.Capture(context.Background(), shared.CaptureRequest{AmountCents: 100, PaymentMethodRef: "pm_1"})
	var gwErr *payment.GatewayError
	require.True(t, errors.As(err, &gwErr))
	assert.Equal(t, http.StatusPaymentRequired, gwErr.StatusCode)
	assert.Equal(t, "card_declined", gwErr.Code)
}

func TestHTTPGateway_Timeout(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		time.Sleep(200 * time.Millisecond)
	}))
	defer srv.Close()

	gw, err := payment.NewHTTPGateway(srv.URL, "sk_test", "usd", 20*time.Millisecond)
	require.NoError(t, err)

	_, err = gw.Capture(context.Background(), shared.CaptureRequest{AmountCents: 100, PaymentMethodRef: "pm_1"})
	assert.Error(t, err)
}

func TestNewHTTPGateway_RequiresURL(t *testing.T) {
	_, err := payment.NewHTTPGateway("  ", "k", "usd", 0)
	assert.Error(t, err)
}

func TestSandboxGateway_StableRef(t *testing.T) {
	req := shared.CaptureRequest{AmountCents: 5000, IdempotencyKey: "shift-cancel:x"}
	first, err := payment.SandboxGateway{}.Capture(context.Background(), req)
	require.NoError(t, err)
	second, err := payment.SandboxGateway{}.Capture(context.Background(), req)
	require.NoError(t, err)
	assert.Equal(t, first, second)
}
