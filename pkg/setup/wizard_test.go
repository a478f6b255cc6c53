package setup

import (
	"testing"

	"github.com/slboard/slboard/pkg/sl"
)

func sampleResponse() *sl.DeparturesResponse {
	return &sl.DeparturesResponse{
		Departures: []sl.Departure{
			{
				Destination:   "Nynäshamn",
				DirectionCode: 1,
				Line:          &sl.Line{Designation: "43", GroupOfLines: "Pendeltåg", TransportMode: "TRAIN"},
			},
			{
				Destination:   "Bålsta",
				DirectionCode: 2,
				Line:          &sl.Line{Designation: "43", GroupOfLines: "Pendeltåg", TransportMode: "TRAIN"},
			},
			{
				Destination:   "Nynäshamn",
				DirectionCode: 1,
				Line:          &sl.Line{Designation: "48", GroupOfLines: "Pendeltåg", TransportMode: "TRAIN"},
			},
			{
				Destination:   "Gullmarsplan",
				DirectionCode: 1,
				Line:          &sl.Line{Designation: "25", GroupOfLines: "Tvärbanan", TransportMode: "TRAM"},
			},
			{
				Destination:   "Slussen",
				DirectionCode: 0,
				Line:          &sl.Line{Designation: "402", TransportMode: "BUS"},
			},
			{
				Destination: "Okänd",
			},
		},
	}
}

func TestLinesAtSite(t *testing.T) {
	response := sampleResponse()

	allLines := LinesAtSite(response, "")
	if len(allLines) != 4 {
		t.Errorf("expected 4 lines without a mode filter, got %v", allLines)
	}

	trainLines := LinesAtSite(response, "TRAIN")
	if len(trainLines) != 2 {
		t.Errorf("expected 2 train lines, got %v", trainLines)
	}
	if trainLines["43"] != "Pendeltåg" {
		t.Errorf("expected line 43 grouped as Pendeltåg, got %q", trainLines["43"])
	}
	if _, exists := trainLines["25"]; exists {
		t.Error("expected the tram line to be filtered out")
	}
}

func TestDirectionsAtSite(t *testing.T) {
	response := sampleResponse()

	directions := DirectionsAtSite(response, "TRAIN", "43")
	if len(directions) != 2 {
		t.Fatalf("expected 2 directions for line 43, got %v", directions)
	}
	if directions["1"] != "Nynäshamn" || directions["2"] != "Bålsta" {
		t.Errorf("unexpected direction map %v", directions)
	}

	// Direction code 0 carries no routing information and is dropped.
	busDirections := DirectionsAtSite(response, "BUS", "402")
	if len(busDirections) != 0 {
		t.Errorf("expected no directions for the bus line, got %v", busDirections)
	}
}

func TestDirectionsAtSiteKeepsFirstDestination(t *testing.T) {
	response := &sl.DeparturesResponse{
		Departures: []sl.Departure{
			{
				Destination:   "Nynäshamn",
				DirectionCode: 1,
				Line:          &sl.Line{Designation: "43", TransportMode: "TRAIN"},
			},
			{
				Destination:   "Västerhaninge",
				DirectionCode: 1,
				Line:          &sl.Line{Designation: "43", TransportMode: "TRAIN"},
			},
		},
	}

	directions := DirectionsAtSite(response, "TRAIN", "43")
	if directions["1"] != "Nynäshamn" {
		t.Errorf("expected the first destination seen, got %q", directions["1"])
	}
}

func TestBuildEntryID(t *testing.T) {
	tests := []struct {
		name          string
		siteID        string
		mode          string
		line          string
		directionCode string
		expected      string
	}{
		{
			name:     "site only",
			siteID:   "9192",
			expected: "9192",
		},
		{
			name:     "site and mode",
			siteID:   "9192",
			mode:     "TRAIN",
			expected: "9192_TRAIN",
		},
		{
			name:          "fully scoped",
			siteID:        "9192",
			mode:          "TRAIN",
			line:          "43",
			directionCode: "1",
			expected:      "9192_TRAIN_line43_dir1",
		},
		{
			name:          "line and direction without mode",
			siteID:        "9192",
			line:          "43-48",
			directionCode: "2",
			expected:      "9192_line43-48_dir2",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			entryID := BuildEntryID(tt.siteID, tt.mode, tt.line, tt.directionCode)
			if entryID != tt.expected {
				t.Errorf("expected %q, got %q", tt.expected, entryID)
			}
		})
	}
}
