package domain

// Option keys understood by the built-in segments
const (
	OptionContextLimit  = "context_limit"
	OptionFullPath      = "full_path"
	OptionMaxWidth      = "max_width"
	OptionShowDiffStats = "show_diff_stats"
	OptionShowLines     = "show_lines"
	OptionShowSHA       = "show_sha"
	OptionTimeout       = "timeout"

	// Cost segment
	OptionBaseURL   = "base_url"
	OptionProvider  = "provider"
	OptionTokenName = "token_name"
	OptionUserID    = "user_id"
	OptionUserToken = "user_token"
)
