package board

import (
	"testing"
	"time"

	"github.com/slboard/slboard/pkg/sl"
)

func TestBuildSortsByExpectedTime(t *testing.T) {
	now := mustParse(t, "2024-01-01T14:00:00+01:00")

	response := &sl.DeparturesResponse{
		Departures: []sl.Departure{
			{
				Destination: "late",
				State:       "EXPECTED",
				Scheduled:   "2024-01-01T14:30:00+01:00",
				Expected:    "2024-01-01T14:40:00+01:00",
				Line:        &sl.Line{Designation: "1", TransportMode: "BUS"},
			},
			{
				Destination: "early",
				State:       "EXPECTED",
				Scheduled:   "2024-01-01T14:10:00+01:00",
				Line:        &sl.Line{Designation: "2", TransportMode: "BUS"},
			},
			{
				Destination: "middle",
				State:       "EXPECTED",
				Scheduled:   "2024-01-01T14:20:00+01:00",
				Line:        &sl.Line{Designation: "3", TransportMode: "BUS"},
			},
		},
	}

	builtBoard, err := Build(response, FilterOptions{}, now)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(builtBoard.Departures) != 3 {
		t.Fatalf("expected 3 departures, got %d", len(builtBoard.Departures))
	}

	order := []string{
		builtBoard.Departures[0].Destination,
		builtBoard.Departures[1].Destination,
		builtBoard.Departures[2].Destination,
	}
	expected := []string{"early", "middle", "late"}
	for i := range expected {
		if order[i] != expected[i] {
			t.Fatalf("expected order %v, got %v", expected, order)
		}
	}
}

func TestBuildSortIsStable(t *testing.T) {
	now := mustParse(t, "2024-01-01T14:00:00+01:00")

	// Two departures with the identical expected time must keep their
	// upstream relative order.
	response := &sl.DeparturesResponse{
		Departures: []sl.Departure{
			{
				Destination: "first",
				State:       "EXPECTED",
				Scheduled:   "2024-01-01T14:15:00+01:00",
				Line:        &sl.Line{Designation: "1", TransportMode: "BUS"},
			},
			{
				Destination: "second",
				State:       "EXPECTED",
				Scheduled:   "2024-01-01T14:15:00+01:00",
				Line:        &sl.Line{Designation: "2", TransportMode: "BUS"},
			},
		},
	}

	builtBoard, err := Build(response, FilterOptions{}, now)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if builtBoard.Departures[0].Destination != "first" || builtBoard.Departures[1].Destination != "second" {
		t.Error("expected ties to keep their upstream relative order")
	}
}

func TestBuildCollectsStopDeviations(t *testing.T) {
	now := mustParse(t, "2024-01-01T14:00:00+01:00")

	response := &sl.DeparturesResponse{
		StopDeviations: []sl.StopDeviation{
			{Message: "Escalator out of service"},
			{Message: ""},
		},
	}

	builtBoard, err := Build(response, FilterOptions{}, now)
	if err != nil {
		t.Fatalf("Build returned error: %v", err)
	}

	if len(builtBoard.StopDeviations) != 1 || builtBoard.StopDeviations[0] != "Escalator out of service" {
		t.Errorf("expected single stop deviation, got %v", builtBoard.StopDeviations)
	}
}

func TestBuildFailsFastOnBadRecord(t *testing.T) {
	now := mustParse(t, "2024-01-01T14:00:00+01:00")

	response := &sl.DeparturesResponse{
		Departures: []sl.Departure{
			{Destination: "broken", Line: &sl.Line{Designation: "1"}},
		},
	}

	if _, err := Build(response, FilterOptions{}, now); err == nil {
		t.Error("expected an error for a departure with no scheduled time")
	}
}

func TestNextDisplay(t *testing.T) {
	emptyBoard := &Board{}
	if emptyBoard.NextDisplay() != "" {
		t.Error("expected empty display for an empty board")
	}

	populatedBoard := &Board{
		Departures: []Departure{{Display: "2 min"}, {Display: "14:40"}},
	}
	if populatedBoard.NextDisplay() != "2 min" {
		t.Errorf("expected next display 2 min, got %s", populatedBoard.NextDisplay())
	}
}

func TestTruncated(t *testing.T) {
	builtBoard := &Board{
		Departures: []Departure{{Line: "1"}, {Line: "2"}, {Line: "3"}},
	}

	if len(builtBoard.Truncated(2)) != 2 {
		t.Error("expected 2 departures")
	}
	if len(builtBoard.Truncated(0)) != 3 {
		t.Error("expected the full list for a zero count")
	}
	if len(builtBoard.Truncated(5)) != 3 {
		t.Error("expected the full list when the count exceeds the board")
	}
}

func TestWindow(t *testing.T) {
	fetchedAt := mustParse(t, "2024-01-01T14:00:00+01:00")

	builtBoard := &Board{
		FetchedAt: fetchedAt,
		Departures: []Departure{
			{Line: "1", ExpectedTime: fetchedAt.Add(10 * time.Minute)},
			{Line: "2", ExpectedTime: fetchedAt.Add(25 * time.Minute)},
			{Line: "3", ExpectedTime: fetchedAt.Add(40 * time.Minute)},
		},
	}

	windowed := builtBoard.Window(30 * time.Minute)

	if len(windowed) != 2 {
		t.Fatalf("expected 2 departures within the window, got %d", len(windowed))
	}
	if windowed[0].Line != "1" || windowed[1].Line != "2" {
		t.Error("expected the two earliest departures")
	}
}
