// Package features aggregates spacing and timing statistics from a parsed
// beatmap's hit object sequence and serializes them as fixed-order feature
// records for downstream classification.
package features

// BucketCount is the number of rhythmic subdivision buckets, including the
// catch-all "other".
const BucketCount = 9

// BucketNames lists the buckets in priority order. The "eigths" spelling
// is part of the output header contract and must not be corrected.
var BucketNames = [BucketCount]string{
	"wholes",
	"halves",
	"thirds",
	"fourths",
	"sixths",
	"eigths",
	"twelfths",
	"sixteenths",
	"other",
}

// bucketTargets are the beat-fraction targets tested in priority order;
// the trailing "other" bucket has no target and collects everything that
// misses every band.
var bucketTargets = [BucketCount - 1]float64{
	1.0,
	1.0 / 2,
	1.0 / 3,
	1.0 / 4,
	1.0 / 6,
	1.0 / 8,
	1.0 / 12,
	1.0 / 16,
}

// MapFeatures is the aggregate output for one document: average spacing
// distance, break-excluded average timing gap, and the percentage
// distribution over the subdivision buckets.
type MapFeatures struct {
	AvgDistance    float64              `json:"avg_distance"`
	AvgTimeGap     float64              `json:"avg_time_gap"`
	RhythmPercents [BucketCount]float64 `json:"rhythm_percents"`
}
