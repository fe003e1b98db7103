package git

import (
	"bufio"
	"context"
	"fmt"
	"os/exec"
	"strconv"
	"strings"

	"golang.org/x/sync/errgroup"

	"ccline/internal/domain"
	"ccline/internal/logging"
)

const shortSHALength = 7

// fetchStatus collects branch, working tree and diff statistics for path.
// The git commands run concurrently and share the deadline of ctx.
func fetchStatus(ctx context.Context, path string) (*domain.GitStatus, error) {
	logging.Logger.Debug("Fetching git status", "path", path)

	if !isGitRepo(ctx, path) {
		return nil, fmt.Errorf("%w: %s", domain.ErrNotGitRepo, path)
	}

	status := &domain.GitStatus{}
	var additions, deletions int

	g, ctx := errgroup.WithContext(ctx)

	// Branch and file state
	g.Go(func() error {
		output, err := runGit(ctx, path, "status", "--porcelain=v2", "--branch")
		if err != nil {
			return fmt.Errorf("git status failed: %w", err)
		}
		parsePorcelainV2(output, status)
		return nil
	})

	// Line counts
	g.Go(func() error {
		output, err := runGit(ctx, path, "diff", "--numstat", "HEAD")
		if err != nil {
			// No commits yet or HEAD unreadable
			logging.Logger.Debug("Failed to get diff stats", "error", err)
			return nil
		}
		additions, deletions = parseNumstat(output)
		return nil
	})

	if err := g.Wait(); err != nil {
		return nil, err
	}

	status.Additions = additions
	status.Deletions = deletions

	logging.Logger.Debug("Git status fetched",
		"branch", status.Branch,
		"commit", status.Commit,
		"ahead", status.Ahead,
		"behind", status.Behind,
		"modified", status.Modified,
		"untracked", status.Untracked,
		"conflicted", status.Conflicted)

	return status, nil
}

// isGitRepo checks if the given path is within a git work tree
func isGitRepo(ctx context.Context, path string) bool {
	output, err := runGit(ctx, path, "rev-parse", "--is-inside-work-tree")
	if err != nil {
		logging.Logger.Debug("Not a git repository", "path", path)
		return false
	}
	return strings.TrimSpace(output) == "true"
}

func runGit(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Dir = dir
	output, err := cmd.Output()
	if err != nil {
		return "", err
	}
	return string(output), nil
}

// parsePorcelainV2 fills status from `git status --porcelain=v2 --branch` output
func parsePorcelainV2(output string, status *domain.GitStatus) {
	scanner := bufio.NewScanner(strings.NewReader(output))
	for scanner.Scan() {
		line := scanner.Text()
		if line == "" {
			continue
		}

		switch {
		case strings.HasPrefix(line, "# branch.oid "):
			oid := strings.TrimPrefix(line, "# branch.oid ")
			if oid != "(initial)" {
				status.Commit = oid[:min(len(oid), shortSHALength)]
			}
		case strings.HasPrefix(line, "# branch.head "):
			head := strings.TrimPrefix(line, "# branch.head ")
			if head != "(detached)" {
				status.Branch = head
			}
		case strings.HasPrefix(line, "# branch.ab "):
			// Format: "# branch.ab +AHEAD -BEHIND"
			fields := strings.Fields(strings.TrimPrefix(line, "# branch.ab "))
			if len(fields) == 2 {
				status.Ahead, _ = strconv.Atoi(strings.TrimPrefix(fields[0], "+"))
				status.Behind, _ = strconv.Atoi(strings.TrimPrefix(fields[1], "-"))
			}
		case line[0] == '1' || line[0] == '2':
			status.Modified++
		case line[0] == 'u':
			status.Conflicted++
		case line[0] == '?':
			status.Untracked++
		}
	}
}

// parseNumstat sums the added and deleted line counts of `git diff --numstat`
func parseNumstat(output string) (additions, deletions int) {
	for _, line := range strings.Split(strings.TrimSpace(output), "\n") {
		parts := strings.Fields(line)
		if len(parts) < 2 {
			continue
		}

		// Binary files are shown as "-"
		if added, err := strconv.Atoi(parts[0]); err == nil {
			additions += added
		}
		if deleted, err := strconv.Atoi(parts[1]); err == nil {
			deletions += deleted
		}
	}
	return additions, deletions
}
