package features

// Config holds the aggregation thresholds.
type Config struct {
	// BreakThresholdMS is the timing gap, in ms, at or above which a pair
	// counts as a break and is excluded from the time average.
	BreakThresholdMS float64 `json:"break_threshold_ms"`

	// RhythmTolerance is the relative half-width of each subdivision
	// bucket's acceptance band.
	RhythmTolerance float64 `json:"rhythm_tolerance"`
}

// DefaultConfig returns the default aggregation configuration: 2 second
// break threshold, 5% tolerance band.
func DefaultConfig() *Config {
	return &Config{
		BreakThresholdMS: 2000,
		RhythmTolerance:  0.05,
	}
}
