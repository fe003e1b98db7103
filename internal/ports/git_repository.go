package ports

import (
	"context"

	"ccline/internal/domain"
)

// GitStatusProvider inspects the working tree of a repository
type GitStatusProvider interface {
	// FetchStatus returns domain.ErrNotGitRepo when path is outside a repository
	FetchStatus(ctx context.Context, path string) (*domain.GitStatus, error)
}
