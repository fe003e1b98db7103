package harness

import (
	"os"
	"os/exec"
	"path/filepath"
	"testing"
)

// TestGitSetup holds paths for a git repository with an origin remote.
//
//	tb.TempDir()/
//	├── bare/   <- git init --bare (acts as origin)
//	└── clone/  <- git clone bare/ clone/ (working repo on main)
type TestGitSetup struct {
	BareRepoPath string
	ClonePath    string
	tb           testing.TB
}

// NewTestGitSetup creates a bare origin and a clone with one pushed commit on main.
func NewTestGitSetup(tb testing.TB) *TestGitSetup {
	tb.Helper()

	baseDir := tb.TempDir()
	bareRepoPath := filepath.Join(baseDir, "bare")
	clonePath := filepath.Join(baseDir, "clone")

	runGitCommand(tb, baseDir, "init", "--bare", bareRepoPath)
	runGitCommand(tb, baseDir, "clone", bareRepoPath, clonePath)

	runGitCommand(tb, clonePath, "config", "user.email", "test@example.com")
	runGitCommand(tb, clonePath, "config", "user.name", "Test User")

	g := &TestGitSetup{
		BareRepoPath: bareRepoPath,
		ClonePath:    clonePath,
		tb:           tb,
	}
	g.Commit("README.md", "# Test Repo\n", "Initial commit")

	// Ensure branch is named "main" (git might default to "master")
	runGitCommand(tb, clonePath, "branch", "-M", "main")
	runGitCommand(tb, clonePath, "push", "-u", "origin", "main")

	return g
}

// WriteFile writes a file in the working repo without staging it.
func (g *TestGitSetup) WriteFile(name, content string) {
	g.tb.Helper()
	if err := os.WriteFile(filepath.Join(g.ClonePath, name), []byte(content), 0644); err != nil {
		g.tb.Fatalf("Failed to write %s: %v", name, err)
	}
}

// Commit writes, stages and commits a file in the working repo.
func (g *TestGitSetup) Commit(name, content, message string) {
	g.tb.Helper()
	g.WriteFile(name, content)
	runGitCommand(g.tb, g.ClonePath, "add", name)
	runGitCommand(g.tb, g.ClonePath, "commit", "-m", message)
}

// RunGitCommand executes a git command in the specified directory (exported for tests).
func RunGitCommand(tb testing.TB, dir string, args ...string) {
	runGitCommand(tb, dir, args...)
}

// runGitCommand executes a git command in the specified directory.
func runGitCommand(tb testing.TB, dir string, args ...string) {
	tb.Helper()

	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test User",
		"GIT_AUTHOR_EMAIL=test@example.com",
		"GIT_COMMITTER_NAME=Test User",
		"GIT_COMMITTER_EMAIL=test@example.com",
	)

	output, err := cmd.CombinedOutput()
	if err != nil {
		tb.Fatalf("git %v failed in %s: %v\nOutput: %s", args, dir, err, output)
	}
}
