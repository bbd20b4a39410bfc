// Package beatmap parses rhythm-game beatmap documents: a sectioned,
// line-oriented text format carrying difficulty scalars, a timing point
// log, and the hit object sequence. Parsing is a single forward pass per
// document; all state is private to that document and discarded with it.
package beatmap

import (
	"io"
	"os"

	"github.com/RyanBlaney/ritmo-radar/logging"
)

// Beatmap is the parsed, read-only view of one document.
type Beatmap struct {
	Version    string // raw first line, consumed and otherwise ignored
	Difficulty Difficulty
	Timing     *TimingTable
	Objects    []HitObject
	Counts     ObjectCounts
}

// Parse reads one beatmap document in a single forward pass: version line,
// then the [Difficulty], [TimingPoints], and [HitObjects] sections in file
// order. Any malformed section surfaces as a *ParseError for this document
// only.
func Parse(r io.Reader) (*Beatmap, error) {
	logger := logging.WithFields(logging.Fields{
		"component": "beatmap_parser",
	})

	doc := NewDocument(r)

	version, ok := doc.ReadLine()
	if !ok {
		return nil, &ParseError{Line: 0, Msg: "empty document"}
	}

	difficulty, err := readDifficulty(doc)
	if err != nil {
		return nil, err
	}

	timing, err := readTimingPoints(doc)
	if err != nil {
		return nil, err
	}

	objects, counts, err := readHitObjects(doc, timing, difficulty.SliderMultiplier)
	if err != nil {
		return nil, err
	}

	logger.Debug("parsed beatmap document", logging.Fields{
		"version":       version,
		"timing_points": timing.Len(),
		"hit_objects":   len(objects),
		"circles":       counts.Circles,
		"sliders":       counts.Sliders,
		"spinners":      counts.Spinners,
	})

	return &Beatmap{
		Version:    version,
		Difficulty: difficulty,
		Timing:     timing,
		Objects:    objects,
		Counts:     counts,
	}, nil
}

// ParseFile opens and parses the document at path.
func ParseFile(path string) (*Beatmap, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, err
	}
	defer f.Close()

	return Parse(f)
}
