package segments

import (
	"context"
	"fmt"
	"strconv"
	"time"

	"ccline/internal/domain"
	"ccline/internal/logging"
	"ccline/internal/ports"
)

const (
	// DefaultCostTimeout applies when the stored timeout is missing or invalid
	DefaultCostTimeout = 5 * time.Second
	// QuotaPerUnit is the number of quota units in one currency unit
	QuotaPerUnit = 500000.0

	currencySymbol = "¥"
)

// CostSegment shows today's spend reported by a New API gateway
type CostSegment struct {
	client  ports.UsageStatClient
	now     func() time.Time
	options domain.Options
	store   ports.SegmentOptionsReader
}

// NewCostSegment creates a CostSegment. store is consulted for the request
// timeout each time Collect runs; now defaults to time.Now.
func NewCostSegment(client ports.UsageStatClient, store ports.SegmentOptionsReader, opts domain.Options, now func() time.Time) *CostSegment {
	if now == nil {
		now = time.Now
	}
	return &CostSegment{
		client:  client,
		now:     now,
		options: opts,
		store:   store,
	}
}

func (s *CostSegment) ID() domain.SegmentID { return domain.SegmentCost }

func (s *CostSegment) Collect(ctx context.Context, _ *domain.SessionSnapshot) (domain.SegmentResult, bool) {
	baseURL, _ := s.options.String(domain.OptionBaseURL)
	token, _ := s.options.String(domain.OptionUserToken)
	userID, _ := s.options.String(domain.OptionUserID)
	if baseURL == "" || token == "" || userID == "" {
		logging.Logger.Debug("Cost segment not configured, skipping request")
		return domain.SegmentResult{}, false
	}

	start, end := DayWindow(s.now())
	req := domain.UsageStatRequest{
		AccountID: userID,
		BaseURL:   baseURL,
		End:       end,
		Start:     start,
		Token:     token,
		TokenName: s.options.StringOr(domain.OptionTokenName, ""),
	}

	stat, err := s.client.FetchStat(ctx, req, s.resolveTimeout())
	if err != nil {
		logging.Logger.Warn("Failed to fetch usage stat", "error", err)
		return domain.SegmentResult{}, false
	}

	cost := float64(stat.Quota) / QuotaPerUnit
	provider := s.options.StringOr(domain.OptionProvider, "")

	metadata := map[string]string{
		"cost": strconv.FormatFloat(cost, 'f', -1, 64),
	}
	if provider != "" {
		metadata["provider"] = provider
	}

	return domain.SegmentResult{
		Primary:   FormatCost(cost),
		Secondary: provider,
		Metadata:  metadata,
	}, true
}

// resolveTimeout re-reads the timeout from the stored configuration.
// Only a positive integer number of seconds is accepted.
func (s *CostSegment) resolveTimeout() time.Duration {
	if s.store == nil {
		return DefaultCostTimeout
	}

	opts, err := s.store.SegmentOptions(domain.SegmentCost)
	if err != nil {
		logging.Logger.Debug("Failed to re-read cost timeout, using default", "error", err)
		return DefaultCostTimeout
	}

	secs, ok := opts.Int(domain.OptionTimeout)
	if !ok || secs <= 0 {
		logging.Logger.Debug("No valid cost timeout stored, using default", "default", DefaultCostTimeout)
		return DefaultCostTimeout
	}

	timeout := time.Duration(secs) * time.Second
	logging.Logger.Debug("Resolved cost timeout from config", "timeout", timeout)
	return timeout
}

// DayWindow returns the start of the local day containing now and now itself, as Unix seconds
func DayWindow(now time.Time) (start, end int64) {
	midnight := time.Date(now.Year(), now.Month(), now.Day(), 0, 0, 0, 0, now.Location())
	return midnight.Unix(), now.Unix()
}

// FormatCost renders an amount in currency units. Amounts below 0.01 show as a bare zero.
func FormatCost(cost float64) string {
	if cost < 0.01 {
		return currencySymbol + "0"
	}
	return fmt.Sprintf("%s%.2f", currencySymbol, cost)
}
