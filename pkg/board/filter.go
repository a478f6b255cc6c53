package board

import (
	"strings"

	"github.com/slboard/slboard/pkg/sl"
	"github.com/slboard/slboard/pkg/util"
	"golang.org/x/exp/slices"
)

// FilterOptions narrows a raw departure list before normalization. Every
// filter preserves the upstream relative order and never re-sorts.
type FilterOptions struct {
	// Modes keeps departures whose line mode is in the set. Empty means no
	// mode filtering at all ("all transport types").
	Modes []TransportMode

	// Lines keeps departures whose line designation matches one of the
	// entries, compared exactly but case-insensitively.
	Lines []string

	// DirectionCode compares against the stable upstream direction code,
	// never the display direction name.
	DirectionCode string
}

// FilterOptionsFromStrings builds FilterOptions from user entered values:
// a mode list and a comma separated line filter string.
func FilterOptionsFromStrings(modes []string, lineFilter string, directionCode string) FilterOptions {
	options := FilterOptions{
		DirectionCode: directionCode,
	}

	for _, mode := range modes {
		options.Modes = append(options.Modes, TransportMode(strings.ToUpper(strings.TrimSpace(mode))))
	}

	options.Lines = util.SplitAndTrim(lineFilter)

	return options
}

// Filter applies the mode, line and direction filters to a raw departure
// list. The input slice is left untouched.
func Filter(departures []sl.Departure, options FilterOptions) []sl.Departure {
	filtered := make([]sl.Departure, len(departures))
	copy(filtered, departures)

	if len(options.Modes) > 0 {
		util.InPlaceFilter(&filtered, func(departure sl.Departure) bool {
			if departure.Line == nil {
				return false
			}

			return slices.Contains(options.Modes, TransportMode(departure.Line.TransportMode))
		})
	}

	if len(options.Lines) > 0 {
		util.InPlaceFilter(&filtered, func(departure sl.Departure) bool {
			if departure.Line == nil {
				return false
			}

			for _, line := range options.Lines {
				if strings.EqualFold(departure.Line.Designation, line) {
					return true
				}
			}

			return false
		})
	}

	if options.DirectionCode != "" {
		util.InPlaceFilter(&filtered, func(departure sl.Departure) bool {
			return departureDirectionCode(departure) == options.DirectionCode
		})
	}

	return filtered
}
