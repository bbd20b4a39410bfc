package features

import (
	"errors"

	"github.com/RyanBlaney/ritmo-radar/beatmap"
	"github.com/RyanBlaney/ritmo-radar/logging"
	"github.com/RyanBlaney/ritmo-radar/stats"
)

// ErrDegenerateInput reports a document with fewer than two hit objects;
// pairwise statistics are undefined for it and aggregation is refused
// before any division can happen.
var ErrDegenerateInput = errors.New("features: fewer than two hit objects")

// Aggregator walks consecutive hit object pairs and produces the spacing
// and timing statistics for one document.
type Aggregator struct {
	config *Config
	logger logging.Logger
}

// NewAggregator creates an aggregator with the given configuration. A nil
// config falls back to defaults.
func NewAggregator(config *Config) *Aggregator {
	if config == nil {
		config = DefaultConfig()
	}

	return &Aggregator{
		config: config,
		logger: logging.WithFields(logging.Fields{
			"component": "feature_aggregator",
		}),
	}
}

// Aggregate walks pairs (prev, cur) over the object sequence. For each
// pair the timing gap runs from prev's effective end (sliders and spinners
// end at their end time), the spacing distance runs from prev's last point
// (a slider's exit coordinate), and the gap-to-beat ratio is classified
// against the subdivision bucket table. Pairs whose gap reaches the break
// threshold are excluded from the time average but still contribute their
// distance.
func (a *Aggregator) Aggregate(objects []beatmap.HitObject, timing *beatmap.TimingTable) (*MapFeatures, error) {
	n := len(objects)
	if n < 2 {
		return nil, ErrDegenerateInput
	}

	distances := make([]float64, 0, n-1)
	includedGaps := make([]float64, 0, n-1)
	var bucketCounts [BucketCount]int

	for i := 1; i < n; i++ {
		prev, cur := objects[i-1], objects[i]

		gap := float64(cur.Time) - prev.EffectiveEnd()

		from := prev.Position
		if prev.Kind == beatmap.KindSlider {
			from = prev.LastPoint
		}
		distances = append(distances, from.DistanceTo(cur.Position))

		if gap < a.config.BreakThresholdMS {
			includedGaps = append(includedGaps, gap)
		}

		beatLength := timing.LatestPositiveBeatLength(cur.Time)
		bucketCounts[a.classifyRatio(gap/beatLength)]++
	}

	result := &MapFeatures{
		AvgDistance: stats.Mean(distances),
		AvgTimeGap:  stats.Mean(includedGaps),
	}
	for i, count := range bucketCounts {
		// Percentages describe rhythmic coverage of the whole map: every
		// pair counts here, break pairs included.
		result.RhythmPercents[i] = float64(count) / float64(n-1) * 100
	}

	a.logger.Debug("aggregated map features", logging.Fields{
		"objects":       n,
		"breaks":        (n - 1) - len(includedGaps),
		"avg_distance":  result.AvgDistance,
		"avg_time_gap":  result.AvgTimeGap,
		"other_percent": result.RhythmPercents[BucketCount-1],
	})

	return result, nil
}

// classifyRatio assigns a gap-to-beat ratio to the first bucket whose
// tolerance band contains it; coarser subdivisions win near band overlaps.
// Ratios that miss every band land in the trailing "other" bucket.
func (a *Aggregator) classifyRatio(ratio float64) int {
	tolerance := a.config.RhythmTolerance
	for i, target := range bucketTargets {
		if ratio >= target*(1-tolerance) && ratio <= target*(1+tolerance) {
			return i
		}
	}
	return BucketCount - 1
}
