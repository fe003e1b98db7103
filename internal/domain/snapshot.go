package domain

// SessionSnapshot is the session state Claude Code pipes to the status line command.
// Every field is optional; segments decide what they need.
type SessionSnapshot struct {
	Cost           *SessionCost `json:"cost,omitempty"`
	Cwd            string       `json:"cwd,omitempty"`
	Model          ModelInfo    `json:"model"`
	OutputStyle    OutputStyle  `json:"output_style"`
	SessionID      string       `json:"session_id,omitempty"`
	TranscriptPath string       `json:"transcript_path,omitempty"`
	Version        string       `json:"version,omitempty"`
	Workspace      Workspace    `json:"workspace"`
}

// ModelInfo identifies the model serving the session
type ModelInfo struct {
	DisplayName string `json:"display_name,omitempty"`
	ID          string `json:"id,omitempty"`
}

// Workspace describes where the session runs
type Workspace struct {
	CurrentDir string `json:"current_dir,omitempty"`
	ProjectDir string `json:"project_dir,omitempty"`
}

// OutputStyle is the active output style
type OutputStyle struct {
	Name string `json:"name,omitempty"`
}

// SessionCost holds the session totals reported by Claude Code
type SessionCost struct {
	TotalAPIDurationMS int64   `json:"total_api_duration_ms"`
	TotalCostUSD       float64 `json:"total_cost_usd"`
	TotalDurationMS    int64   `json:"total_duration_ms"`
	TotalLinesAdded    int     `json:"total_lines_added"`
	TotalLinesRemoved  int     `json:"total_lines_removed"`
}

// WorkingDir returns the directory the session is working in
func (s *SessionSnapshot) WorkingDir() string {
	if s.Workspace.CurrentDir != "" {
		return s.Workspace.CurrentDir
	}
	return s.Cwd
}
