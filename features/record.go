package features

import (
	"strconv"

	"github.com/RyanBlaney/ritmo-radar/beatmap"
)

// Record composes one output row: the six difficulty parameters, the two
// averages, the nine bucket percentages, then the caller-supplied label
// token. The label's domain is the caller's policy; no validation happens
// here.
type Record struct {
	Difficulty beatmap.Difficulty
	Features   *MapFeatures
	Label      string
}

// Header returns the fixed column order of the output table, ending with
// the label column.
func Header() []string {
	header := []string{
		"HPDrainRate",
		"CircleSize",
		"OverallDifficulty",
		"ApproachRate",
		"SliderMultiplier",
		"SliderTickRate",
		"avgDist",
		"avgTime",
	}
	header = append(header, BucketNames[:]...)
	return append(header, "target")
}

// Row renders the record as fields in header order.
func (r Record) Row() []string {
	row := make([]string, 0, len(BucketNames)+9)
	row = append(row,
		formatValue(r.Difficulty.HPDrainRate),
		formatValue(r.Difficulty.CircleSize),
		formatValue(r.Difficulty.OverallDifficulty),
		formatValue(r.Difficulty.ApproachRate),
		formatValue(r.Difficulty.SliderMultiplier),
		formatValue(r.Difficulty.SliderTickRate),
		formatValue(r.Features.AvgDistance),
		formatValue(r.Features.AvgTimeGap),
	)
	for _, percent := range r.Features.RhythmPercents {
		row = append(row, formatValue(percent))
	}
	return append(row, r.Label)
}

func formatValue(v float64) string {
	return strconv.FormatFloat(v, 'g', -1, 64)
}
