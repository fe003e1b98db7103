package domain

import "time"

// TokenUsage is the token accounting of one assistant message
type TokenUsage struct {
	CacheCreation int
	CacheRead     int
	InputTokens   int
	OutputTokens  int
	Timestamp     time.Time
}

// ContextTokens returns the tokens occupying the context window for this message
func (u TokenUsage) ContextTokens() int {
	return u.InputTokens + u.CacheCreation + u.CacheRead
}

// UsageStatRequest describes a query for consumption over a time window
type UsageStatRequest struct {
	AccountID string
	BaseURL   string
	End       int64 // Unix seconds
	Start     int64 // Unix seconds
	Token     string
	TokenName string // Optional filter
}

// UsageStat is the consumption reported by the accounting service
type UsageStat struct {
	Quota int64
	RPM   *int64
	TPM   *int64
}
