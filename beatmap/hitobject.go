package beatmap

import (
	"math"
	"strconv"
	"strings"
)

// Kind discriminates the hit object variants. Each variant-specific
// derivation (slider duration, spinner end time) branches on it
// exhaustively.
type Kind int

const (
	KindCircle Kind = iota
	KindSlider
	KindSpinner
)

func (k Kind) String() string {
	switch k {
	case KindCircle:
		return "circle"
	case KindSlider:
		return "slider"
	case KindSpinner:
		return "spinner"
	default:
		return "unknown"
	}
}

// PathType is the slider curve code read from the document. Codes outside
// the known set are treated as PathPerfect.
type PathType byte

const (
	PathBezier  PathType = 'B'
	PathCatmull PathType = 'C'
	PathLinear  PathType = 'L'
	PathPerfect PathType = 'P'
)

// Point is a position in map pixel space.
type Point struct {
	X float64 `json:"x"`
	Y float64 `json:"y"`
}

// DistanceTo returns the point-to-point Euclidean distance to q.
func (p Point) DistanceTo(q Point) float64 {
	return math.Hypot(q.X-p.X, q.Y-p.Y)
}

// HitObject is one map object as a tagged variant. Position and Time are
// common; the slider fields and EndTime are only meaningful for the Kind
// that sets them.
type HitObject struct {
	Kind     Kind
	Position Point
	Time     int64 // ms

	// Slider geometry. LastPoint is the coordinate the slider ends on:
	// an odd number of traversals ends on the final control point, an
	// even number returns to the start.
	Path        PathType
	Repeats     int
	BaseLength  float64
	TotalLength float64
	LastPoint   Point

	// Set for sliders (derived from tempo and arc length) and spinners
	// (read from the record). A circle's effective end is its Time.
	EndTime float64
}

// EffectiveEnd returns the instant the object stops occupying the
// timeline.
func (h HitObject) EffectiveEnd() float64 {
	if h.Kind == KindCircle {
		return float64(h.Time)
	}
	return h.EndTime
}

// ObjectCounts tracks per-kind and per-path-type totals for one document.
type ObjectCounts struct {
	Circles  int
	Sliders  int
	Spinners int

	Bezier  int
	Catmull int
	Linear  int
	Perfect int
}

// Type bitmask: bit 0 marks a circle, bit 1 a slider; records with neither
// are spinners.
func decodeKind(mask int) Kind {
	switch {
	case mask&1 != 0:
		return KindCircle
	case mask&2 != 0:
		return KindSlider
	default:
		return KindSpinner
	}
}

// readHitObjects seeks the [HitObjects] section and parses comma-delimited
// records until the end of the document. Slider durations are resolved
// against the timing table at each slider's start time.
func readHitObjects(doc *Document, timing *TimingTable, sliderMultiplier float64) ([]HitObject, ObjectCounts, error) {
	if err := doc.SeekSection("HitObjects"); err != nil {
		return nil, ObjectCounts{}, err
	}

	var objects []HitObject
	var counts ObjectCounts
	for {
		line, ok := doc.ReadLine()
		if !ok {
			break
		}
		if strings.TrimSpace(line) == "" {
			continue
		}

		object, err := parseHitObject(doc, line, timing, sliderMultiplier)
		if err != nil {
			return nil, ObjectCounts{}, err
		}

		switch object.Kind {
		case KindCircle:
			counts.Circles++
		case KindSlider:
			counts.Sliders++
			switch object.Path {
			case PathBezier:
				counts.Bezier++
			case PathCatmull:
				counts.Catmull++
			case PathLinear:
				counts.Linear++
			default:
				counts.Perfect++
			}
		case KindSpinner:
			counts.Spinners++
		}

		objects = append(objects, object)
	}

	return objects, counts, nil
}

func parseHitObject(doc *Document, line string, timing *TimingTable, sliderMultiplier float64) (HitObject, error) {
	fields := strings.Split(line, ",")
	if len(fields) < 4 {
		return HitObject{}, &ParseError{
			Section: "HitObjects",
			Line:    doc.Line(),
			Msg:     "hit object record has fewer than 4 fields",
		}
	}

	x, err := strconv.ParseFloat(strings.TrimSpace(fields[0]), 64)
	if err != nil {
		return HitObject{}, numericFieldError(doc, "x coordinate", err)
	}
	y, err := strconv.ParseFloat(strings.TrimSpace(fields[1]), 64)
	if err != nil {
		return HitObject{}, numericFieldError(doc, "y coordinate", err)
	}
	t, err := strconv.ParseInt(strings.TrimSpace(fields[2]), 10, 64)
	if err != nil {
		return HitObject{}, numericFieldError(doc, "time", err)
	}
	mask, err := strconv.Atoi(strings.TrimSpace(fields[3]))
	if err != nil {
		return HitObject{}, numericFieldError(doc, "type bitmask", err)
	}

	object := HitObject{
		Kind:     decodeKind(mask),
		Position: Point{X: x, Y: y},
		Time:     t,
	}

	switch object.Kind {
	case KindSlider:
		if err := parseSliderFields(doc, fields, timing, sliderMultiplier, &object); err != nil {
			return HitObject{}, err
		}
	case KindSpinner:
		if len(fields) < 6 {
			return HitObject{}, &ParseError{
				Section: "HitObjects",
				Line:    doc.Line(),
				Msg:     "spinner record has no end time field",
			}
		}
		endTime, err := strconv.ParseInt(strings.TrimSpace(fields[5]), 10, 64)
		if err != nil {
			return HitObject{}, numericFieldError(doc, "spinner end time", err)
		}
		object.EndTime = float64(endTime)
	}

	return object, nil
}

// parseSliderFields fills the slider geometry and derives its duration:
// timeLength = totalArcLength * effectiveBeatLength(time) / (sliderMultiplier * 100).
func parseSliderFields(doc *Document, fields []string, timing *TimingTable, sliderMultiplier float64, object *HitObject) error {
	if len(fields) < 8 {
		return &ParseError{
			Section: "HitObjects",
			Line:    doc.Line(),
			Msg:     "slider record has fewer than 8 fields",
		}
	}

	params := strings.Split(fields[5], "|")
	if params[0] == "" {
		return &ParseError{
			Section: "HitObjects",
			Line:    doc.Line(),
			Msg:     "slider record has an empty path type",
		}
	}
	switch code := PathType(params[0][0]); code {
	case PathBezier, PathCatmull, PathLinear:
		object.Path = code
	default:
		object.Path = PathPerfect
	}

	endPoint := object.Position
	for _, raw := range params[1:] {
		sx, sy, found := strings.Cut(raw, ":")
		if !found {
			return &ParseError{
				Section: "HitObjects",
				Line:    doc.Line(),
				Msg:     "slider control point has no ':' separator",
			}
		}
		px, err := strconv.ParseFloat(strings.TrimSpace(sx), 64)
		if err != nil {
			return numericFieldError(doc, "slider control point x", err)
		}
		py, err := strconv.ParseFloat(strings.TrimSpace(sy), 64)
		if err != nil {
			return numericFieldError(doc, "slider control point y", err)
		}
		endPoint = Point{X: px, Y: py}
	}

	repeats, err := strconv.Atoi(strings.TrimSpace(fields[6]))
	if err != nil {
		return numericFieldError(doc, "slider repeat count", err)
	}
	baseLength, err := strconv.ParseFloat(strings.TrimSpace(fields[7]), 64)
	if err != nil {
		return numericFieldError(doc, "slider arc length", err)
	}

	object.Repeats = repeats
	object.BaseLength = baseLength
	object.TotalLength = float64(repeats) * baseLength

	if repeats%2 == 1 {
		object.LastPoint = endPoint
	} else {
		object.LastPoint = object.Position
	}

	duration := object.TotalLength * timing.EffectiveBeatLength(object.Time) / (sliderMultiplier * 100)
	object.EndTime = float64(object.Time) + duration
	return nil
}

func numericFieldError(doc *Document, field string, err error) *ParseError {
	return &ParseError{
		Section: "HitObjects",
		Line:    doc.Line(),
		Msg:     "non-numeric " + field,
		Err:     err,
	}
}
