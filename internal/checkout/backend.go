package checkout

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"go.opentelemetry.io/contrib/instrumentation/net/http/otelhttp"
)

// BackendError is a non-2xx answer from the payment backend.
type BackendError struct {
	StatusCode int
	Message    string
	// PaymentStatus is set when the intent exists but has not settled.
	PaymentStatus string
}

func (e *BackendError) Error() string {
	return fmt.Sprintf("payment backend: %d %s", e.StatusCode, e.Message)
}

func (e *BackendError) NotSettled() bool {
	return e.StatusCode == http.StatusConflict && e.PaymentStatus != ""
}

type backendRequest struct {
	Action          string `json:"action"`
	OrderID         string `json:"orderId,omitempty"`
	Currency        string `json:"currency,omitempty"`
	ReceiptEmail    string `json:"receiptEmail,omitempty"`
	PaymentIntentID string `json:"paymentIntentId,omitempty"`
}

type backendResponse struct {
	ClientSecret  string `json:"clientSecret"`
	OrderID       string `json:"orderId"`
	Error         string `json:"error"`
	PaymentStatus string `json:"paymentStatus"`
}

// HTTPBackend calls the payment backend function over HTTP.
type HTTPBackend struct {
	url    string
	client *http.Client
}

func NewHTTPBackend(url string, timeout time.Duration) *HTTPBackend {
	return &HTTPBackend{
		url: url,
		client: &http.Client{
			Timeout:   timeout,
			Transport: otelhttp.NewTransport(http.DefaultTransport),
		},
	}
}

func (b *HTTPBackend) CreateIntent(ctx context.Context, req IntentRequest, credential string) (string, error) {
	resp, err := b.do(ctx, backendRequest{
		Action:       "create",
		OrderID:      req.OrderID,
		Currency:     req.Currency,
		ReceiptEmail: req.ReceiptEmail,
	}, credential)
	if err != nil {
		return "", err
	}
	return resp.ClientSecret, nil
}

func (b *HTTPBackend) Finalize(ctx context.Context, intentID, credential string) (string, error) {
	resp, err := b.do(ctx, backendRequest{
		Action:          "finalize",
		PaymentIntentID: intentID,
	}, credential)
	if err != nil {
		return "", err
	}
	return resp.OrderID, nil
}

func (b *HTTPBackend) do(ctx context.Context, body backendRequest, credential string) (backendResponse, error) {
	payload, err := json.Marshal(body)
	if err != nil {
		return backendResponse{}, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, b.url, bytes.NewReader(payload))
	if err != nil {
		return backendResponse{}, err
	}
	req.Header.Set("Content-Type", "application/json")
	if credential != "" {
		req.Header.Set("Authorization", "Bearer "+credential)
	}

	res, err := b.client.Do(req)
	if err != nil {
		return backendResponse{}, fmt.Errorf("payment backend %s: %w", body.Action, err)
	}
	defer res.Body.Close()

	data, err := io.ReadAll(io.LimitReader(res.Body, 1<<20))
	if err != nil {
		return backendResponse{}, fmt.Errorf("payment backend %s: %w", body.Action, err)
	}

	var out backendResponse
	if len(data) > 0 {
		if err := json.Unmarshal(data, &out); err != nil && res.StatusCode < 300 {
			return backendResponse{}, fmt.Errorf("payment backend %s: decode response: %w", body.Action, err)
		}
	}

	if res.StatusCode < 200 || res.StatusCode >= 300 {
		msg := out.Error
		if msg == "" {
			msg = http.StatusText(res.StatusCode)
		}
		return backendResponse{}, &BackendError{StatusCode: res.StatusCode, Message: msg, PaymentStatus: out.PaymentStatus}
	}
	return out, nil
}
