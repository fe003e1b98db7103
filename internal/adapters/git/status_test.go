package git

import (
	"context"
	"os"
	"os/exec"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ccline/internal/domain"
)

// setupTestRepo creates a git repo with initial commit for testing
func setupTestRepo(t *testing.T) string {
	t.Helper()
	dir := t.TempDir()

	runGitCmd(t, dir, "init", "-b", "main")
	runGitCmd(t, dir, "config", "user.email", "test@test.com")
	runGitCmd(t, dir, "config", "user.name", "Test")

	readme := filepath.Join(dir, "README.md")
	require.NoError(t, os.WriteFile(readme, []byte("# Test\n"), 0644))
	runGitCmd(t, dir, "add", "README.md")
	runGitCmd(t, dir, "commit", "-m", "Initial commit")

	return dir
}

func runGitCmd(t *testing.T, dir string, args ...string) {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	cmd.Env = append(os.Environ(),
		"GIT_AUTHOR_NAME=Test",
		"GIT_AUTHOR_EMAIL=test@test.com",
		"GIT_COMMITTER_NAME=Test",
		"GIT_COMMITTER_EMAIL=test@test.com",
	)
	out, err := cmd.CombinedOutput()
	require.NoError(t, err, "git %v failed: %s", args, out)
}

func TestFetchStatus_CleanRepo(t *testing.T) {
	repoPath := setupTestRepo(t)

	status, err := NewCLIRepository().FetchStatus(context.Background(), repoPath)

	require.NoError(t, err)
	assert.Equal(t, "main", status.Branch)
	assert.Len(t, status.Commit, shortSHALength)
	assert.False(t, status.Dirty())
	assert.Zero(t, status.Additions)
	assert.Zero(t, status.Deletions)
}

func TestFetchStatus_DirtyRepo(t *testing.T) {
	repoPath := setupTestRepo(t)

	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "README.md"), []byte("# Changed\nline\n"), 0644))
	require.NoError(t, os.WriteFile(filepath.Join(repoPath, "new.txt"), []byte("new"), 0644))

	status, err := NewCLIRepository().FetchStatus(context.Background(), repoPath)

	require.NoError(t, err)
	assert.True(t, status.Dirty())
	assert.Equal(t, 1, status.Modified)
	assert.Equal(t, 1, status.Untracked)
	assert.Equal(t, 2, status.Additions)
	assert.Equal(t, 1, status.Deletions)
}

func TestFetchStatus_DetachedHead(t *testing.T) {
	repoPath := setupTestRepo(t)
	runGitCmd(t, repoPath, "checkout", "--detach")

	status, err := NewCLIRepository().FetchStatus(context.Background(), repoPath)

	require.NoError(t, err)
	assert.Empty(t, status.Branch)
	assert.NotEmpty(t, status.Commit)
}

func TestFetchStatus_NotARepo(t *testing.T) {
	dir := t.TempDir()

	_, err := NewCLIRepository().FetchStatus(context.Background(), dir)

	assert.ErrorIs(t, err, domain.ErrNotGitRepo)
}

func TestFetchStatus_CancelledContext(t *testing.T) {
	repoPath := setupTestRepo(t)
	ctx, cancel := context.WithCancel(context.Background())
	cancel()

	_, err := NewCLIRepository().FetchStatus(ctx, repoPath)

	assert.Error(t, err)
}

func TestParsePorcelainV2(t *testing.T) {
	output := `# branch.oid 0123456789abcdef0123456789abcdef01234567
# branch.head feature/x
# branch.upstream origin/feature/x
# branch.ab +3 -2
1 .M N... 100644 100644 100644 aaa bbb README.md
2 R. N... 100644 100644 100644 aaa bbb R100 new.go	old.go
u UU N... 100644 100644 100644 100644 aaa bbb ccc conflict.go
? scratch.txt
? notes.md
! ignored.log
`
	var status domain.GitStatus
	parsePorcelainV2(output, &status)

	assert.Equal(t, "feature/x", status.Branch)
	assert.Equal(t, "0123456", status.Commit)
	assert.Equal(t, 3, status.Ahead)
	assert.Equal(t, 2, status.Behind)
	assert.Equal(t, 2, status.Modified)
	assert.Equal(t, 1, status.Conflicted)
	assert.Equal(t, 2, status.Untracked)
}

func TestParsePorcelainV2_InitialAndDetached(t *testing.T) {
	var status domain.GitStatus
	parsePorcelainV2("# branch.oid (initial)\n# branch.head (detached)\n", &status)

	assert.Empty(t, status.Commit)
	assert.Empty(t, status.Branch)
}

func TestParseNumstat(t *testing.T) {
	tests := []struct {
		name      string
		output    string
		additions int
		deletions int
	}{
		{"empty", "", 0, 0},
		{"single file", "3\t1\tmain.go\n", 3, 1},
		{"multiple files", "3\t1\tmain.go\n10\t0\tREADME.md\n", 13, 1},
		{"binary file", "-\t-\timage.png\n2\t2\tmain.go\n", 2, 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			additions, deletions := parseNumstat(tt.output)
			assert.Equal(t, tt.additions, additions)
			assert.Equal(t, tt.deletions, deletions)
		})
	}
}
