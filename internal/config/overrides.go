package config

import (
	"ccline/internal/domain"
	"ccline/internal/logging"
)

// CostOverrides holds cost segment options supplied on the command line
type CostOverrides struct {
	BaseURL   string
	Provider  string
	TokenName string
	UserID    string
	UserToken string
}

// IsEmpty reports whether no override was supplied
func (o CostOverrides) IsEmpty() bool {
	return o == CostOverrides{}
}

// ApplyCostOverrides writes the non-empty overrides into the cost segment options.
// Returns false when the configuration has no cost segment.
func (c *Config) ApplyCostOverrides(o CostOverrides) bool {
	if o.IsEmpty() {
		return false
	}

	seg := c.Segment(domain.SegmentCost)
	if seg == nil {
		logging.Logger.Warn("Cost overrides given but no cost segment is configured")
		return false
	}

	opts := seg.Options.Clone()
	set := func(key, value string) {
		if value != "" {
			opts[key] = domain.StringValue(value)
		}
	}
	set(domain.OptionBaseURL, o.BaseURL)
	set(domain.OptionUserToken, o.UserToken)
	set(domain.OptionUserID, o.UserID)
	set(domain.OptionTokenName, o.TokenName)
	set(domain.OptionProvider, o.Provider)
	seg.Options = opts

	logging.Logger.Debug("Applied cost overrides from command line")
	return true
}
