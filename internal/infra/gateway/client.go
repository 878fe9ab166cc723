package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/errs"
)

// Payment is the subset of the gateway's payment detail this system acts
// on. Status carries the gateway's raw vocabulary; callers map it through
// transaction.MapGatewayStatus.
type Payment struct {
	ID                string
	Status            string
	ExternalReference string
	AmountCents       int64
	PayerName         string
	PayerEmail        string
	Metadata          map[string]any
}

type paymentResponse struct {
	ID                json.Number `json:"id"`
	Status            string      `json:"status"`
	ExternalReference string      `json:"external_reference"`
	TransactionAmount float64     `json:"transaction_amount"`
	Payer             struct {
		Email     string `json:"email"`
		FirstName string `json:"first_name"`
		LastName  string `json:"last_name"`
	} `json:"payer"`
	Metadata map[string]any `json:"metadata"`
}

// Client fetches payment details from the payment gateway. Webhook bodies
// are treated as hints only; every decision is made against this endpoint.
type Client struct {
	baseURL     string
	accessToken string
	http        *http.Client
}

func NewClient(cfg config.GatewayConfig) *Client {
	return &Client{
		baseURL:     strings.TrimRight(cfg.BaseURL, "/"),
		accessToken: cfg.AccessToken,
		http:        &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) GetPayment(ctx context.Context, paymentID string) (*Payment, error) {
	url := fmt.Sprintf("%s/v1/payments/%s", c.baseURL, paymentID)
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, errs.Wrap(err, "failed to build payment request")
	}
	req.Header.Set("Authorization", "Bearer "+c.accessToken)

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "gateway request failed"), errs.ErrGatewayUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read gateway response"), errs.ErrGatewayUnavailable)
	}

	switch {
	case resp.StatusCode == http.StatusNotFound:
		return nil, errs.Mark(errs.New("payment not found at gateway"), errs.ErrPaymentIDNotFound)
	case resp.StatusCode >= 400:
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("gateway returned status %d", resp.StatusCode)),
			errs.ErrGatewayUnavailable,
		)
	}

	var pr paymentResponse
	if err := json.Unmarshal(body, &pr); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode gateway response"), errs.ErrGatewayUnavailable)
	}

	name := strings.TrimSpace(pr.Payer.FirstName + " " + pr.Payer.LastName)
	return &Payment{
		ID:                pr.ID.String(),
		Status:            pr.Status,
		ExternalReference: pr.ExternalReference,
		AmountCents:       int64(pr.TransactionAmount*100 + 0.5),
		PayerName:         name,
		PayerEmail:        pr.Payer.Email,
		Metadata:          pr.Metadata,
	}, nil
}
