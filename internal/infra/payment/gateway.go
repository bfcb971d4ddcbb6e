package payment

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"net/http"
	"strings"
	"time"

	"pharmashift/internal/pkg/errs"
	"pharmashift/internal/usecase/shared"

	"github.com/google/uuid"
)

// GatewayError is a non-2xx answer from the payment provider.
type GatewayError struct {
	StatusCode int
	Code       string
	Message    string
}

func (e *GatewayError) Error() string {
	if e.Code != "" {
		return fmt.Sprintf("payment gateway: %d %s: %s", e.StatusCode, e.Code, e.Message)
	}
	return fmt.Sprintf("payment gateway: %d: %s", e.StatusCode, e.Message)
}

type HTTPGateway struct {
	baseURL    string
	apiKey     string
	currency   string
	httpClient *http.Client
}

var _ shared.PaymentGateway = (*HTTPGateway)(nil)

func NewHTTPGateway(baseURL, apiKey, currency string, timeout time.Duration) (*HTTPGateway, error) {
	baseURL = strings.TrimRight(strings.TrimSpace(baseURL), "/")
	if baseURL == "" {
		return nil, errs.New("payment gateway: missing base url")
	}
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	if currency == "" {
		currency = "usd"
	}
	return &HTTPGateway{
		baseURL:    baseURL,
		apiKey:     apiKey,
		currency:   strings.ToLower(currency),
		httpClient: &http.Client{Timeout: timeout},
	}, nil
}

type captureBody struct {
	Amount        int64             `json:"amount"`
	Currency      string            `json:"currency"`
	PaymentMethod string            `json:"payment_method"`
	Metadata      map[string]string `json:"metadata,omitempty"`
}

type captureResponse struct {
	ID     string `json:"id"`
	Status string `json:"status"`
}

// Capture charges the instrument once; the provider replays the original
// result for a repeated idempotency key.
func (g *HTTPGateway) Capture(ctx context.Context, req shared.CaptureRequest) (string, error) {
	body, err := json.Marshal(captureBody{
		Amount:        req.AmountCents,
		Currency:      g.currency,
		PaymentMethod: req.PaymentMethodRef,
		Metadata:      req.Metadata,
	})
	if err != nil {
		return "", errs.Wrap(err, "encode capture request")
	}

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodPost, g.baseURL+"/v1/captures", bytes.NewReader(body))
	if err != nil {
		return "", errs.Wrap(err, "build capture request")
	}
	httpReq.Header.Set("Accept", "application/json")
	httpReq.Header.Set("Content-Type", "application/json")
	httpReq.Header.Set("Authorization", "Bearer "+g.apiKey)
	if req.IdempotencyKey != "" {
		httpReq.Header.Set("Idempotency-Key", req.IdempotencyKey)
	}

	resp, err := g.httpClient.Do(httpReq)
	if err != nil {
		return "", errs.Wrap(err, "send capture request")
	}
	defer resp.Body.Close()

	if resp.StatusCode/100 != 2 {
		return "", readGatewayError(resp)
	}

	var out captureResponse
	if err := json.NewDecoder(resp.Body).Decode(&out); err != nil {
		return "", errs.Wrap(err, "decode capture response")
	}
	if out.ID == "" {
		return "", errs.New("payment gateway: missing capture id")
	}
	if out.Status != "" && out.Status != "succeeded" {
		return "", &GatewayError{StatusCode: resp.StatusCode, Code: out.Status, Message: "capture not settled"}
	}
	return out.ID, nil
}

func readGatewayError(resp *http.Response) error {
	const maxBody = 4096
	b, _ := io.ReadAll(io.LimitReader(resp.Body, maxBody))

	var parsed struct {
		Error struct {
			Code    string `json:"code"`
			Message string `json:"message"`
		} `json:"error"`
	}
	if json.Unmarshal(b, &parsed) == nil && parsed.Error.Message != "" {
		return &GatewayError{StatusCode: resp.StatusCode, Code: parsed.Error.Code, Message: parsed.Error.Message}
	}
	return &GatewayError{StatusCode: resp.StatusCode, Message: strings.TrimSpace(string(b))}
}

// SandboxGateway approves every capture. It is bound when no gateway URL is configured.
type SandboxGateway struct{}

var _ shared.PaymentGateway = SandboxGateway{}

func (SandboxGateway) Capture(_ context.Context, req shared.CaptureRequest) (string, error) {
	ref := "sandbox_" + uuid.NewSHA1(uuid.NameSpaceOID, []byte(req.IdempotencyKey)).String()
	slog.Info("sandbox capture approved", "amount_cents", req.AmountCents, "payment_ref", ref)
	return ref, nil
}
