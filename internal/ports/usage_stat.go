package ports

import (
	"context"
	"time"

	"ccline/internal/domain"
)

// UsageStatClient queries a remote accounting service for consumption
type UsageStatClient interface {
	FetchStat(ctx context.Context, req domain.UsageStatRequest, timeout time.Duration) (*domain.UsageStat, error)
}
