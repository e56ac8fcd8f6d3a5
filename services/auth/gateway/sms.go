package gateway

import (
	"context"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"time"

	httpclient "github.com/quarmyne/otpauth/internal/pkg/http"
	"github.com/quarmyne/otpauth/internal/pkg/logger"
	"github.com/quarmyne/otpauth/internal/pkg/models"
)

// SMSGW dispatches OTP codes through the SMS gateway. Every transport
// failure collapses to false here; the flow above only learns pass or fail.
type SMSGW struct {
	cfg    models.SMSConfig
	client *httpclient.Client
}

// NewSMSGW creates a new SMS gateway client
func NewSMSGW(cfg models.SMSConfig) *SMSGW {
	return &SMSGW{
		cfg:    cfg,
		client: httpclient.NewClient(cfg.BaseURL, time.Duration(cfg.Timeout)*time.Second),
	}
}

// SendOTP sends the code to the given MSISDN. Returns true only when the
// gateway answered with a success status.
func (g *SMSGW) SendOTP(ctx context.Context, req models.SendSmsRequest) bool {
	query := url.Values{}
	query.Set("clientid", g.cfg.ClientID)
	query.Set("clientsecret", g.cfg.ClientSecret)
	query.Set("from", g.cfg.From)
	query.Set("to", req.MSISDN)
	query.Set("content", fmt.Sprintf("Your verification code is %s-%d", req.Prefix, req.Code))

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, g.client.Endpoint("?"+query.Encode()), nil)
	if err != nil {
		logger.Error("Failed to build SMS request",
			logger.Err(err),
			logger.String("msisdn", req.MSISDN))
		return false
	}

	resp, err := g.client.HTTPClient.Do(httpReq)
	if err != nil {
		logger.Error("SMS dispatch failed",
			logger.Err(err),
			logger.String("msisdn", req.MSISDN))
		return false
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		body, _ := io.ReadAll(resp.Body)
		logger.Error("SMS gateway returned non-success status",
			logger.Int("status", resp.StatusCode),
			logger.String("body", string(body)),
			logger.String("msisdn", req.MSISDN))
		return false
	}

	return true
}
