package setup

import (
	"fmt"
	"strconv"

	"github.com/slboard/slboard/pkg/sl"
)

// Helpers behind the setup flow. Lines and directions are derived from a
// live departures response since the API has no dedicated listing endpoint
// for either.

// LinesAtSite maps line designation to group-of-lines name for every line
// currently departing the site with the given mode. An empty mode keeps
// every line.
func LinesAtSite(response *sl.DeparturesResponse, mode string) map[string]string {
	lines := map[string]string{}

	for _, departure := range response.Departures {
		if departure.Line == nil {
			continue
		}
		if mode != "" && departure.Line.TransportMode != mode {
			continue
		}

		designation := departure.Line.Designation
		if designation == "" {
			continue
		}

		if _, exists := lines[designation]; !exists {
			lines[designation] = departure.Line.GroupOfLines
		}
	}

	return lines
}

// DirectionsAtSite maps direction code to a representative destination for
// the site, optionally scoped to a mode and line. Direction codes are the
// stable identifier; destination names are display only.
func DirectionsAtSite(response *sl.DeparturesResponse, mode string, line string) map[string]string {
	directions := map[string]string{}

	for _, departure := range response.Departures {
		if departure.Line == nil {
			continue
		}
		if mode != "" && departure.Line.TransportMode != mode {
			continue
		}
		if line != "" && departure.Line.Designation != line {
			continue
		}

		directionCode := strconv.Itoa(departure.DirectionCode)
		if departure.DirectionCode == 0 || departure.Destination == "" {
			continue
		}

		if _, exists := directions[directionCode]; !exists {
			directions[directionCode] = departure.Destination
		}
	}

	return directions
}

// BuildEntryID builds the unique per-board identifier out of the chosen
// site and filters, matching the pattern site[_MODE][_lineL][_dirC].
func BuildEntryID(siteID string, mode string, line string, directionCode string) string {
	entryID := siteID

	if mode != "" {
		entryID += fmt.Sprintf("_%s", mode)
	}
	if line != "" {
		entryID += fmt.Sprintf("_line%s", line)
	}
	if directionCode != "" {
		entryID += fmt.Sprintf("_dir%s", directionCode)
	}

	return entryID
}
