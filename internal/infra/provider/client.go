package provider

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"strings"

	"fulfillment-core/internal/pkg/config"
	"fulfillment-core/internal/pkg/errs"
)

// OrderResult carries the provider's answer for one order attempt. Raw is
// kept verbatim so failed attempts stay diagnosable from the database.
type OrderResult struct {
	ExternalOrderID string
	Raw             json.RawMessage
}

type orderRequest struct {
	Key      string `json:"key"`
	Action   string `json:"action"`
	Service  string `json:"service"`
	Link     string `json:"link"`
	Quantity int    `json:"quantity"`
}

type orderResponse struct {
	Order json.Number `json:"order"`
	Error string      `json:"error"`
}

// Client submits orders to the fulfillment provider's panel API. The API
// reports rejections in-band: HTTP 200 with an error field. Transport and
// 5xx failures are marked retryable; in-band rejections are terminal for
// the attempt and come back with the raw response attached.
type Client struct {
	baseURL string
	apiKey  string
	http    *http.Client
}

func NewClient(cfg config.ProviderConfig) *Client {
	return &Client{
		baseURL: strings.TrimRight(cfg.BaseURL, "/"),
		apiKey:  cfg.APIKey,
		http:    &http.Client{Timeout: cfg.Timeout},
	}
}

func (c *Client) CreateOrder(ctx context.Context, serviceID, link string, quantity int) (*OrderResult, error) {
	payload, err := json.Marshal(orderRequest{
		Key:      c.apiKey,
		Action:   "add",
		Service:  serviceID,
		Link:     link,
		Quantity: quantity,
	})
	if err != nil {
		return nil, errs.Wrap(err, "failed to encode provider request")
	}

	req, err := http.NewRequestWithContext(ctx, http.MethodPost, c.baseURL, bytes.NewReader(payload))
	if err != nil {
		return nil, errs.Wrap(err, "failed to build provider request")
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := c.http.Do(req)
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "provider request failed"), errs.ErrProviderUnavailable)
	}
	defer resp.Body.Close()

	body, err := io.ReadAll(io.LimitReader(resp.Body, 1<<20))
	if err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to read provider response"), errs.ErrProviderUnavailable)
	}

	if resp.StatusCode >= 500 {
		return nil, errs.Mark(
			errs.New(fmt.Sprintf("provider returned status %d", resp.StatusCode)),
			errs.ErrProviderUnavailable,
		)
	}

	var or orderResponse
	if err := json.Unmarshal(body, &or); err != nil {
		return nil, errs.Mark(errs.Wrap(err, "failed to decode provider response"), errs.ErrProviderUnavailable)
	}

	if or.Error != "" || resp.StatusCode >= 400 {
		detail := or.Error
		if detail == "" {
			detail = fmt.Sprintf("provider returned status %d", resp.StatusCode)
		}
		return &OrderResult{Raw: body}, errs.Mark(errs.New(detail), errs.ErrProviderRejected)
	}
	if or.Order.String() == "" {
		return &OrderResult{Raw: body}, errs.Mark(errs.New("provider response missing order id"), errs.ErrProviderRejected)
	}

	return &OrderResult{ExternalOrderID: or.Order.String(), Raw: body}, nil
}
