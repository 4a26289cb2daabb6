// Package mobilemoney implements the payment gateway collaborator over
// its JSON HTTP API. The same contract covers mobile-money numbers and
// card references. Outcomes are three-valued: succeeded, pending or
// failed, plus a provider reference and a human message.
package mobilemoney

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"log/slog"
	"net/http"
	"time"

	"github.com/google/uuid"
	"github.com/olimarket/marketplace-service/internal/domain"
	"github.com/shopspring/decimal"
)

const (
	requestTimeout = 10 * time.Second
	maxAttempts    = 3
	retryBackoff   = 500 * time.Millisecond
)

type HTTPGateway struct {
	address string
	client  *http.Client
}

func NewHTTPGateway(address string) *HTTPGateway {
	return &HTTPGateway{
		address: address,
		client:  &http.Client{Timeout: requestTimeout},
	}
}

type initiateRequest struct {
	Provider    string `json:"provider"`
	PhoneOrCard string `json:"phone_or_card"`
	Amount      string `json:"amount"`
	Reference   string `json:"reference"`
}

type initiateResponse struct {
	Status        string `json:"status"`
	TransactionID string `json:"transaction_id"`
	Message       string `json:"message"`
}

// Initiate charges the buyer's mobile-money account or card, depending
// on the provider. Transport errors are retried a bounded number of
// times, each attempt under its own fresh reference so a retry can
// never double-apply on the provider side. A decided outcome
// (succeeded/pending/failed) is never retried.
func (g *HTTPGateway) Initiate(ctx context.Context, provider, phoneOrCard string, amount decimal.Decimal) (*domain.PaymentResult, error) {
	return g.call(ctx, "/payments/initiate", provider, phoneOrCard, amount)
}

// Payout sends money out to a mobile-money account (withdrawals).
func (g *HTTPGateway) Payout(ctx context.Context, provider, phoneOrCard string, amount decimal.Decimal) (*domain.PaymentResult, error) {
	return g.call(ctx, "/payments/payout", provider, phoneOrCard, amount)
}

func (g *HTTPGateway) call(ctx context.Context, path, provider, phoneOrCard string, amount decimal.Decimal) (*domain.PaymentResult, error) {
	var lastErr error

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		reference := uuid.NewString()

		result, err := g.post(ctx, path, initiateRequest{
			Provider:    provider,
			PhoneOrCard: phoneOrCard,
			Amount:      amount.StringFixed(2),
			Reference:   reference,
		})
		if err == nil {
			return result, nil
		}

		lastErr = err
		slog.Warn("mobile-money call failed",
			"path", path,
			"provider", provider,
			"attempt", attempt,
			"error", err.Error(),
		)

		select {
		case <-ctx.Done():
			return nil, ctx.Err()
		case <-time.After(retryBackoff * time.Duration(attempt)):
		}
	}

	return nil, fmt.Errorf("mobile-money gateway unreachable after %d attempts: %w", maxAttempts, lastErr)
}

func (g *HTTPGateway) post(ctx context.Context, path string, payload initiateRequest) (*domain.PaymentResult, error) {
	body, err := json.Marshal(payload)
	if err != nil {
		return nil, err
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, g.address+path, bytes.NewBuffer(body))
	if err != nil {
		return nil, err
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := g.client.Do(req)
	if err != nil {
		return nil, err
	}
	defer resp.Body.Close()

	if resp.StatusCode >= 500 {
		return nil, fmt.Errorf("gateway returned status %d", resp.StatusCode)
	}

	var decoded initiateResponse
	if err := json.NewDecoder(resp.Body).Decode(&decoded); err != nil {
		return nil, fmt.Errorf("decode gateway response: %w", err)
	}

	outcome := domain.PaymentOutcome(decoded.Status)
	switch outcome {
	case domain.PaymentSucceeded, domain.PaymentInFlight, domain.PaymentDeclined:
	default:
		return nil, fmt.Errorf("unknown gateway outcome %q", decoded.Status)
	}

	reference := decoded.TransactionID
	if reference == "" {
		reference = payload.Reference
	}

	return &domain.PaymentResult{
		Outcome:   outcome,
		Reference: reference,
		Message:   decoded.Message,
	}, nil
}
