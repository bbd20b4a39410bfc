package beatmap

import (
	"math"
	"strconv"
	"strings"
)

// TimingPoint is one tempo or velocity change. A positive Value is an
// absolute beat length in ms per beat ("uninherited"); a negative Value is
// a percentage multiplier applied to the most recent positive beat length
// ("inherited", -100 leaves the tempo unchanged).
type TimingPoint struct {
	Time  int64   `json:"time"`
	Value float64 `json:"value"`
}

// TimingTable is the file-ordered timing point log of one document. The
// document is assumed pre-sorted by timestamp; the table never re-sorts.
// Built once per document, read-only afterwards.
type TimingTable struct {
	points []TimingPoint
}

// NewTimingTable builds a table directly from points in file order.
func NewTimingTable(points []TimingPoint) *TimingTable {
	return &TimingTable{points: points}
}

// Len returns the number of timing points in the table.
func (tt *TimingTable) Len() int {
	return len(tt.points)
}

// Points returns the underlying file-ordered timing point slice.
func (tt *TimingTable) Points() []TimingPoint {
	return tt.points
}

// readTimingPoints seeks the [TimingPoints] section and reads consecutive
// comma-delimited records until a blank line or the next bracketed section
// marker. Inherited (negative) records are kept alongside uninherited ones.
func readTimingPoints(doc *Document) (*TimingTable, error) {
	if err := doc.SeekSection("TimingPoints"); err != nil {
		return nil, err
	}

	var points []TimingPoint
	for {
		line, ok := doc.ReadLine()
		if !ok || line == "" {
			break
		}
		if strings.ContainsAny(line, "[]") {
			// The next section's marker terminates this one; leave it for
			// the following seek.
			doc.UnreadLine(line)
			break
		}

		fields := strings.Split(line, ",")
		if len(fields) < 2 {
			return nil, &ParseError{
				Section: "TimingPoints",
				Line:    doc.Line(),
				Msg:     "timing point record has fewer than 2 fields",
			}
		}

		timestamp, err := strconv.ParseInt(strings.TrimSpace(fields[0]), 10, 64)
		if err != nil {
			return nil, &ParseError{
				Section: "TimingPoints",
				Line:    doc.Line(),
				Msg:     "non-numeric timing point timestamp",
				Err:     err,
			}
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
		if err != nil {
			return nil, &ParseError{
				Section: "TimingPoints",
				Line:    doc.Line(),
				Msg:     "non-numeric timing point value",
				Err:     err,
			}
		}

		points = append(points, TimingPoint{Time: timestamp, Value: value})
	}

	return &TimingTable{points: points}, nil
}

// EffectiveBeatLength resolves the beat length in ms per beat that governs
// instant t. The walk stops at the first record at or past t; if the last
// record before t is inherited, its percentage is applied to the most
// recent uninherited beat length. A query before the first record resolves
// against the first record (no lookup failure on out-of-range queries).
func (tt *TimingTable) EffectiveBeatLength(t int64) float64 {
	if len(tt.points) == 0 {
		return 0
	}

	lastPositive := tt.points[0]
	lastAtOrBefore := tt.points[0]
	for _, p := range tt.points {
		if p.Time >= t {
			break
		}
		lastAtOrBefore = p
		if p.Value > 0 {
			lastPositive = p
		}
	}

	if lastAtOrBefore.Value > 0 {
		return lastAtOrBefore.Value
	}
	return lastPositive.Value * math.Abs(lastAtOrBefore.Value) / 100
}

// LatestPositiveBeatLength returns the value of the most recent
// uninherited record with timestamp <= t. Inherited records are skipped
// entirely, so the result is an absolute tempo rather than a blended one.
// Falls back to the first record when nothing qualifies.
func (tt *TimingTable) LatestPositiveBeatLength(t int64) float64 {
	if len(tt.points) == 0 {
		return 0
	}

	beatLength := tt.points[0].Value
	for _, p := range tt.points {
		if p.Time > t {
			break
		}
		if p.Value > 0 {
			beatLength = p.Value
		}
	}
	return beatLength
}
