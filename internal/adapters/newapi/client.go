package newapi

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"net/http"
	"net/url"
	"strconv"
	"strings"
	"time"

	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/ports"
)

const (
	statPath = "/api/log/self/stat"
	// Only consumption logs are counted
	logTypeConsume = "2"
	maxBodyBytes   = 1 << 20
)

// Client queries the usage statistics endpoint of a New API gateway
type Client struct {
	transport http.RoundTripper
}

// Verify interface compliance at compile time
var _ ports.UsageStatClient = (*Client)(nil)

// NewClient creates a Client using the default transport
func NewClient() *Client {
	return &Client{}
}

// NewClientWithTransport creates a Client with a custom transport (for testing)
func NewClientWithTransport(transport http.RoundTripper) *Client {
	return &Client{transport: transport}
}

type statResponse struct {
	Data    *statData `json:"data"`
	Message string    `json:"message"`
	Success bool      `json:"success"`
}

type statData struct {
	Quota int64  `json:"quota"`
	RPM   *int64 `json:"rpm"`
	TPM   *int64 `json:"tpm"`
}

// StatURL builds the request URL for req
func StatURL(req domain.UsageStatRequest) string {
	query := "start_timestamp=" + strconv.FormatInt(req.Start, 10) +
		"&end_timestamp=" + strconv.FormatInt(req.End, 10) +
		"&type=" + logTypeConsume
	if req.TokenName != "" {
		query += "&token_name=" + url.QueryEscape(req.TokenName)
	}
	return strings.TrimRight(req.BaseURL, "/") + statPath + "?" + query
}

// FetchStat implements UsageStatClient.FetchStat.
// A single attempt is made; the whole exchange must finish within timeout.
func (c *Client) FetchStat(ctx context.Context, req domain.UsageStatRequest, timeout time.Duration) (*domain.UsageStat, error) {
	endpoint := StatURL(req)
	logging.Logger.Debug("Fetching usage stat", "url", endpoint, "timeout", timeout)

	httpReq, err := http.NewRequestWithContext(ctx, http.MethodGet, endpoint, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to build request: %w", err)
	}
	httpReq.Header.Set("Authorization", "Bearer "+req.Token)
	httpReq.Header.Set("New-Api-User", req.AccountID)
	httpReq.Header.Set("Content-Type", "application/json")

	client := &http.Client{Timeout: timeout, Transport: c.transport}
	resp, err := client.Do(httpReq)
	if err != nil {
		return nil, fmt.Errorf("request failed: %w", err)
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode > 299 {
		return nil, fmt.Errorf("%w: %d", domain.ErrUnexpectedStatus, resp.StatusCode)
	}

	var body statResponse
	if err := json.NewDecoder(io.LimitReader(resp.Body, maxBodyBytes)).Decode(&body); err != nil {
		return nil, fmt.Errorf("failed to decode response: %w", err)
	}
	if !body.Success {
		return nil, fmt.Errorf("%w: %s", domain.ErrRequestUnsuccessful, body.Message)
	}
	if body.Data == nil {
		return nil, errors.New("response has no data")
	}

	logging.Logger.Debug("Usage stat fetched", "quota", body.Data.Quota)
	return &domain.UsageStat{
		Quota: body.Data.Quota,
		RPM:   body.Data.RPM,
		TPM:   body.Data.TPM,
	}, nil
}
