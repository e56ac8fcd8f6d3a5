package gateway

import (
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	httpclient "github.com/quarmyne/otpauth/internal/pkg/http"
	"github.com/quarmyne/otpauth/internal/pkg/models"
)

// AccountGW is an HTTP client for the external account lookup service
type AccountGW struct {
	client *httpclient.Client
}

// NewAccountGW creates a new account service client
func NewAccountGW(cfg models.AccountsConfig) *AccountGW {
	return &AccountGW{
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second),
	}
}

// GetUserAccount looks up an account by MSISDN. The service always answers
// with a coded envelope; its code is returned as-is for the flow to act on,
// including non-success values. Transport and decode problems return an
// error instead.
func (g *AccountGW) GetUserAccount(ctx context.Context, msisdn string) (*models.AccountResult, error) {
	url := g.client.Endpoint("/accounts/" + msisdn)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to create account lookup request: %w", err)
	}

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("account lookup failed: %w", err)
	}
	defer resp.Body.Close()

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return nil, fmt.Errorf("failed to read account lookup response: %w", err)
	}

	var result models.AccountResult
	if err := json.Unmarshal(respBody, &result); err != nil {
		return nil, fmt.Errorf("failed to parse account lookup response: (body: %s): %w", string(respBody), err)
	}

	return &result, nil
}
