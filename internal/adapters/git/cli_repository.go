package git

import (
	"context"

	"ccline/internal/domain"
	"ccline/internal/ports"
)

// CLIRepository implements ports.GitStatusProvider using local git commands
type CLIRepository struct{}

// Verify interface compliance at compile time
var _ ports.GitStatusProvider = (*CLIRepository)(nil)

// NewCLIRepository creates a new CLIRepository
func NewCLIRepository() *CLIRepository {
	return &CLIRepository{}
}

// FetchStatus implements GitStatusProvider.FetchStatus
func (r *CLIRepository) FetchStatus(ctx context.Context, path string) (*domain.GitStatus, error) {
	return fetchStatus(ctx, path)
}
