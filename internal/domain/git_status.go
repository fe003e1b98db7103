package domain

// Git state glyphs
const (
	SymbolGitClean    = "✓"
	SymbolGitConflict = "⚠"
	SymbolGitDirty    = "●"
	SymbolGitAhead    = "↑"
	SymbolGitBehind   = "↓"
)

// GitStatus holds the working tree state of a repository
type GitStatus struct {
	Additions  int    // Lines added in working directory
	Ahead      int    // Commits ahead of tracking branch
	Behind     int    // Commits behind tracking branch
	Branch     string // Empty when HEAD is detached
	Commit     string // Short commit hash
	Conflicted int    // Unmerged paths
	Deletions  int    // Lines deleted in working directory
	Modified   int    // Staged or unstaged tracked changes
	Untracked  int
}

// Dirty reports whether the working tree has any change
func (s *GitStatus) Dirty() bool {
	return s.Modified > 0 || s.Untracked > 0 || s.Conflicted > 0
}
