package beatmap

import (
	"strconv"
	"strings"
)

// difficultyFieldCount is the fixed number of Key:Value lines in the
// [Difficulty] section of the assumed format version.
const difficultyFieldCount = 6

// Difficulty holds the six scalar difficulty parameters in file order.
type Difficulty struct {
	HPDrainRate       float64 `json:"hp_drain_rate"`
	CircleSize        float64 `json:"circle_size"`
	OverallDifficulty float64 `json:"overall_difficulty"`
	ApproachRate      float64 `json:"approach_rate"`
	SliderMultiplier  float64 `json:"slider_multiplier"`
	SliderTickRate    float64 `json:"slider_tick_rate"`
}

// readDifficulty seeks the [Difficulty] section and reads exactly six
// Key:Value lines, discarding the keys. File order defines the semantic
// field order.
func readDifficulty(doc *Document) (Difficulty, error) {
	if err := doc.SeekSection("Difficulty"); err != nil {
		return Difficulty{}, err
	}

	var values [difficultyFieldCount]float64
	for i := range values {
		line, ok := doc.ReadLine()
		if !ok {
			return Difficulty{}, &ParseError{
				Section: "Difficulty",
				Line:    doc.Line(),
				Msg:     "difficulty block ended after " + strconv.Itoa(i) + " of 6 lines",
			}
		}

		_, raw, found := strings.Cut(line, ":")
		if !found {
			return Difficulty{}, &ParseError{
				Section: "Difficulty",
				Line:    doc.Line(),
				Msg:     "difficulty line has no ':' separator",
			}
		}

		value, err := strconv.ParseFloat(strings.TrimSpace(raw), 64)
		if err != nil {
			return Difficulty{}, &ParseError{
				Section: "Difficulty",
				Line:    doc.Line(),
				Msg:     "non-numeric difficulty value",
				Err:     err,
			}
		}
		values[i] = value
	}

	return Difficulty{
		HPDrainRate:       values[0],
		CircleSize:        values[1],
		OverallDifficulty: values[2],
		ApproachRate:      values[3],
		SliderMultiplier:  values[4],
		SliderTickRate:    values[5],
	}, nil
}
