package beatmap

import (
	"errors"
	"math"
	"strings"
	"testing"
)

const sampleDocument = `osu file format v14

[Difficulty]
HPDrainRate:5
CircleSize:4
OverallDifficulty:7
ApproachRate:9
SliderMultiplier:1.4
SliderTickRate:1

[TimingPoints]
0,500,4,2,0,100,1,0
1000,-50,4,2,0,100,0,0

[HitObjects]
100,100,0,1,0,0:0:0:0:
200,100,500,2,0,L|300:100,2,100
256,192,1500,12,0,2600,0:0:0:0:
`

func TestParseSampleDocument(t *testing.T) {
	parsed, err := Parse(strings.NewReader(sampleDocument))
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}

	if parsed.Version != "osu file format v14" {
		t.Fatalf("version = %q", parsed.Version)
	}
	if parsed.Timing.Len() != 2 {
		t.Fatalf("timing table has %d points, want 2", parsed.Timing.Len())
	}
	if len(parsed.Objects) != 3 {
		t.Fatalf("parsed %d objects, want 3", len(parsed.Objects))
	}

	wantCounts := ObjectCounts{Circles: 1, Sliders: 1, Spinners: 1, Linear: 1}
	if parsed.Counts != wantCounts {
		t.Fatalf("counts = %+v, want %+v", parsed.Counts, wantCounts)
	}

	circle := parsed.Objects[0]
	if circle.Kind != KindCircle || circle.Time != 0 {
		t.Fatalf("first object = %+v, want circle at t=0", circle)
	}
	if circle.EffectiveEnd() != 0 {
		t.Fatalf("circle effective end = %v, want 0", circle.EffectiveEnd())
	}

	slider := parsed.Objects[1]
	if slider.Kind != KindSlider || slider.Path != PathLinear {
		t.Fatalf("second object = %+v, want linear slider", slider)
	}
	if slider.TotalLength != 200 {
		t.Fatalf("slider total length = %v, want 200", slider.TotalLength)
	}
	// Even repeat count: the slider returns to its start point.
	if slider.LastPoint != (Point{X: 200, Y: 100}) {
		t.Fatalf("slider last point = %+v, want start point", slider.LastPoint)
	}
	// timeLength = 200 * 500 / (1.4 * 100)
	wantEnd := 500 + 200*500/(1.4*100)
	if math.Abs(slider.EndTime-wantEnd) > 1e-9 {
		t.Fatalf("slider end time = %v, want %v", slider.EndTime, wantEnd)
	}

	spinner := parsed.Objects[2]
	if spinner.Kind != KindSpinner || spinner.EndTime != 2600 {
		t.Fatalf("third object = %+v, want spinner ending at 2600", spinner)
	}
}

func TestSliderLastPoint(t *testing.T) {
	timing := NewTimingTable([]TimingPoint{{Time: 0, Value: 500}})
	tests := []struct {
		name string
		line string
		want Point
	}{
		{
			name: "single traversal ends on final control point",
			line: "100,100,0,2,0,B|150:150|200:100,1,120",
			want: Point{X: 200, Y: 100},
		},
		{
			name: "even repeat count returns to start",
			line: "100,100,0,2,0,B|150:150|200:100,2,120",
			want: Point{X: 100, Y: 100},
		},
		{
			name: "odd repeat count ends away from start",
			line: "100,100,0,2,0,B|150:150|200:100,3,120",
			want: Point{X: 200, Y: 100},
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := NewDocument(strings.NewReader(""))
			object, err := parseHitObject(doc, tc.line, timing, 1.4)
			if err != nil {
				t.Fatalf("unexpected error: %v", err)
			}
			if object.LastPoint != tc.want {
				t.Fatalf("last point = %+v, want %+v", object.LastPoint, tc.want)
			}
		})
	}
}

func TestUnknownPathTypeFallsBackToPerfect(t *testing.T) {
	timing := NewTimingTable([]TimingPoint{{Time: 0, Value: 500}})
	doc := NewDocument(strings.NewReader(""))
	object, err := parseHitObject(doc, "0,0,0,2,0,X|10:10,1,50", timing, 1.4)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if object.Path != PathPerfect {
		t.Fatalf("path = %c, want %c", object.Path, PathPerfect)
	}
}

func TestParseHitObjectErrors(t *testing.T) {
	timing := NewTimingTable([]TimingPoint{{Time: 0, Value: 500}})
	tests := []struct {
		name string
		line string
	}{
		{name: "record with fewer than 4 fields", line: "100,100"},
		{name: "non-numeric x coordinate", line: "abc,100,0,1,0"},
		{name: "non-numeric time", line: "100,100,xyz,1,0"},
		{name: "slider record with fewer than 8 fields", line: "100,100,0,2,0,B|10:10,1"},
		{name: "slider with malformed control point", line: "100,100,0,2,0,B|1010,1,50"},
		{name: "slider with non-numeric repeat count", line: "100,100,0,2,0,B|10:10,x,50"},
		{name: "spinner without end time", line: "256,192,0,8,0"},
		{name: "spinner with non-numeric end time", line: "256,192,0,8,0,end"},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			doc := NewDocument(strings.NewReader(""))
			_, err := parseHitObject(doc, tc.line, timing, 1.4)
			var parseErr *ParseError
			if !errors.As(err, &parseErr) {
				t.Fatalf("expected *ParseError, got %v", err)
			}
		})
	}
}

func TestDecodeKind(t *testing.T) {
	tests := []struct {
		mask int
		want Kind
	}{
		{mask: 1, want: KindCircle},
		{mask: 5, want: KindCircle},
		{mask: 2, want: KindSlider},
		{mask: 6, want: KindSlider},
		{mask: 8, want: KindSpinner},
		{mask: 12, want: KindSpinner},
	}

	for _, tc := range tests {
		if got := decodeKind(tc.mask); got != tc.want {
			t.Fatalf("decodeKind(%d) = %v, want %v", tc.mask, got, tc.want)
		}
	}
}
