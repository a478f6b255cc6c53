package board

import (
	"sort"
	"time"

	"github.com/slboard/slboard/pkg/sl"
)

// Board is the final ordered departure list for one configured entry,
// rebuilt from scratch on every poll cycle.
type Board struct {
	SiteID   string `json:"site_id" groups:"basic"`
	SiteName string `json:"site_name" groups:"basic"`

	FetchedAt time.Time `json:"fetched_at" groups:"basic"`

	Departures []Departure `json:"upcoming" groups:"basic"`

	StopDeviations []string `json:"stop_deviations,omitempty" groups:"basic"`
}

// Build runs the filter and normalization stages over a raw departures
// response and assembles the sorted board. Sorting is ascending by expected
// time and stable, so records sharing an expected time keep their upstream
// relative order.
func Build(response *sl.DeparturesResponse, options FilterOptions, now time.Time) (*Board, error) {
	filtered := Filter(response.Departures, options)

	departures := make([]Departure, 0, len(filtered))
	for _, raw := range filtered {
		normalized, err := Normalize(raw, now)
		if err != nil {
			return nil, err
		}

		departures = append(departures, normalized)
	}

	sort.SliceStable(departures, func(i, j int) bool {
		return departures[i].ExpectedTime.Before(departures[j].ExpectedTime)
	})

	builtBoard := &Board{
		FetchedAt:  now,
		Departures: departures,
	}

	for _, deviation := range response.StopDeviations {
		if deviation.Message != "" {
			builtBoard.StopDeviations = append(builtBoard.StopDeviations, deviation.Message)
		}
	}

	return builtBoard, nil
}

// NextDisplay is the display string of the next departure, used as the
// aggregate sensor state.
func (b *Board) NextDisplay() string {
	if len(b.Departures) == 0 {
		return ""
	}

	return b.Departures[0].Display
}

// Truncated returns at most count departures for the sensor-per-slot
// variant. The aggregate variant keeps the full list.
func (b *Board) Truncated(count int) []Departure {
	if count <= 0 || count >= len(b.Departures) {
		return b.Departures
	}

	return b.Departures[:count]
}

// Window keeps only departures expected within the given duration of the
// board's fetch time.
func (b *Board) Window(window time.Duration) []Departure {
	cutoff := b.FetchedAt.Add(window)

	var departures []Departure
	for _, departure := range b.Departures {
		if !departure.ExpectedTime.After(cutoff) {
			departures = append(departures, departure)
		}
	}

	return departures
}
