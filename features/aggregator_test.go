package features

import (
	"errors"
	"math"
	"testing"

	"github.com/RyanBlaney/ritmo-radar/beatmap"
)

func circleAt(x, y float64, t int64) beatmap.HitObject {
	return beatmap.HitObject{
		Kind:     beatmap.KindCircle,
		Position: beatmap.Point{X: x, Y: y},
		Time:     t,
	}
}

func TestAggregateThreeCircles(t *testing.T) {
	timing := beatmap.NewTimingTable([]beatmap.TimingPoint{{Time: 0, Value: 500}})
	objects := []beatmap.HitObject{
		circleAt(0, 0, 0),
		circleAt(100, 0, 500),
		circleAt(100, 100, 1000),
	}

	result, err := NewAggregator(nil).Aggregate(objects, timing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AvgDistance != 100 {
		t.Fatalf("avg distance = %v, want 100", result.AvgDistance)
	}
	if result.AvgTimeGap != 500 {
		t.Fatalf("avg time gap = %v, want 500", result.AvgTimeGap)
	}
	for i, name := range BucketNames {
		want := 0.0
		if name == "wholes" {
			want = 100
		}
		if result.RhythmPercents[i] != want {
			t.Fatalf("percent[%s] = %v, want %v", name, result.RhythmPercents[i], want)
		}
	}
}

func TestAggregateBreakExclusion(t *testing.T) {
	timing := beatmap.NewTimingTable([]beatmap.TimingPoint{{Time: 0, Value: 500}})
	// The first gap sits exactly on the break threshold: excluded from the
	// time average, still present in the distance average.
	objects := []beatmap.HitObject{
		circleAt(0, 0, 0),
		circleAt(300, 0, 2000),
		circleAt(400, 0, 2500),
	}

	result, err := NewAggregator(nil).Aggregate(objects, timing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if result.AvgTimeGap != 500 {
		t.Fatalf("avg time gap = %v, want 500 (break pair excluded)", result.AvgTimeGap)
	}
	if result.AvgDistance != 200 {
		t.Fatalf("avg distance = %v, want 200 (break pair included)", result.AvgDistance)
	}

	// The break pair still lands in a bucket: 2000/500 = 4 beats -> other.
	if got := result.RhythmPercents[BucketCount-1]; got != 50 {
		t.Fatalf("other percent = %v, want 50", got)
	}
}

func TestAggregateSliderGeometry(t *testing.T) {
	timing := beatmap.NewTimingTable([]beatmap.TimingPoint{{Time: 0, Value: 500}})
	slider := beatmap.HitObject{
		Kind:      beatmap.KindSlider,
		Position:  beatmap.Point{X: 0, Y: 0},
		Time:      0,
		LastPoint: beatmap.Point{X: 200, Y: 0},
		EndTime:   400,
	}
	objects := []beatmap.HitObject{
		slider,
		circleAt(200, 150, 900),
	}

	result, err := NewAggregator(nil).Aggregate(objects, timing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	// Distance runs from the slider's exit coordinate, not its head.
	if result.AvgDistance != 150 {
		t.Fatalf("avg distance = %v, want 150", result.AvgDistance)
	}
	// The gap runs from the slider's end time: 900 - 400 = 500.
	if result.AvgTimeGap != 500 {
		t.Fatalf("avg time gap = %v, want 500", result.AvgTimeGap)
	}
	if result.RhythmPercents[0] != 100 {
		t.Fatalf("wholes percent = %v, want 100", result.RhythmPercents[0])
	}
}

func TestAggregateDegenerateInput(t *testing.T) {
	timing := beatmap.NewTimingTable([]beatmap.TimingPoint{{Time: 0, Value: 500}})

	for _, objects := range [][]beatmap.HitObject{
		nil,
		{circleAt(0, 0, 0)},
	} {
		_, err := NewAggregator(nil).Aggregate(objects, timing)
		if !errors.Is(err, ErrDegenerateInput) {
			t.Fatalf("expected ErrDegenerateInput for %d objects, got %v", len(objects), err)
		}
	}
}

func TestClassifyRatio(t *testing.T) {
	aggregator := NewAggregator(nil)

	tests := []struct {
		name  string
		ratio float64
		want  string
	}{
		{name: "exact whole beat", ratio: 1.0, want: "wholes"},
		{name: "lower edge of whole band", ratio: 0.95, want: "wholes"},
		{name: "upper edge of whole band", ratio: 1.05, want: "wholes"},
		{name: "half beat", ratio: 0.5, want: "halves"},
		{name: "third beat", ratio: 1.0 / 3, want: "thirds"},
		{name: "quarter beat", ratio: 0.25, want: "fourths"},
		{name: "sixth beat", ratio: 1.0 / 6, want: "sixths"},
		{name: "eighth beat", ratio: 0.125, want: "eigths"},
		{name: "twelfth beat", ratio: 1.0 / 12, want: "twelfths"},
		{name: "sixteenth beat", ratio: 1.0 / 16, want: "sixteenths"},
		{name: "between bands", ratio: 0.6, want: "other"},
		{name: "way past every band", ratio: 4.0, want: "other"},
		{name: "negative gap", ratio: -0.5, want: "other"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			got := BucketNames[aggregator.classifyRatio(tc.ratio)]
			if got != tc.want {
				t.Fatalf("classifyRatio(%v) = %s, want %s", tc.ratio, got, tc.want)
			}
		})
	}
}

func TestClassifyRatioIsTotal(t *testing.T) {
	aggregator := NewAggregator(nil)
	for ratio := -2.0; ratio <= 5.0; ratio += 0.001 {
		bucket := aggregator.classifyRatio(ratio)
		if bucket < 0 || bucket >= BucketCount {
			t.Fatalf("classifyRatio(%v) = %d, outside bucket range", ratio, bucket)
		}
	}
}

func TestPercentsWellFormed(t *testing.T) {
	timing := beatmap.NewTimingTable([]beatmap.TimingPoint{{Time: 0, Value: 431}})
	objects := []beatmap.HitObject{
		circleAt(0, 0, 0),
		circleAt(10, 0, 431),
		circleAt(20, 0, 647),
		circleAt(30, 0, 3000),
		circleAt(40, 0, 3108),
	}

	result, err := NewAggregator(nil).Aggregate(objects, timing)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	total := 0.0
	for i, percent := range result.RhythmPercents {
		if percent < 0 || percent > 100 {
			t.Fatalf("percent[%s] = %v, outside [0, 100]", BucketNames[i], percent)
		}
		total += percent
	}
	if math.Abs(total-100) > 1e-9 {
		t.Fatalf("percents sum to %v, want 100", total)
	}
}
