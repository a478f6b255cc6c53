package board

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/slboard/slboard/pkg/sl"
)

// The API reports wall-clock intent in Stockholm local time. Timestamps
// normally carry an explicit offset; the rare offsetless ones are
// interpreted in this zone rather than wherever the process happens to run.
var stockholm *time.Location

func init() {
	var err error

	stockholm, err = time.LoadLocation("Europe/Stockholm")
	if err != nil {
		stockholm = time.FixedZone("CET", 60*60)
	}
}

// ParseTimestamp parses an SL API timestamp, keeping the embedded offset
// when one is present.
func ParseTimestamp(value string) (time.Time, error) {
	if parsed, err := time.Parse(time.RFC3339, value); err == nil {
		return parsed, nil
	}

	return time.ParseInLocation("2006-01-02T15:04:05", value, stockholm)
}

// Normalize maps one raw departure record into the stable output shape,
// deriving delay, minutes-until, formatted time and the realtime and
// cancellation flags. now is the wall-clock time of the poll cycle.
//
// A record missing its required fields fails with a ParseError instead of
// producing a partially filled departure.
func Normalize(departure sl.Departure, now time.Time) (Departure, error) {
	if departure.Line == nil {
		return Departure{}, &sl.ParseError{Err: fmt.Errorf("departure to %q has no line", departure.Destination)}
	}
	if departure.Scheduled == "" {
		return Departure{}, &sl.ParseError{Err: fmt.Errorf("departure to %q has no scheduled time", departure.Destination)}
	}

	scheduledTime, err := ParseTimestamp(departure.Scheduled)
	if err != nil {
		return Departure{}, &sl.ParseError{Err: err}
	}

	expectedTime := scheduledTime
	realTime := false

	if departure.Expected != "" {
		if parsed, err := ParseTimestamp(departure.Expected); err == nil {
			expectedTime = parsed
			realTime = !parsed.Equal(scheduledTime)
		}
	}

	delayMinutes := int(math.Round(expectedTime.Sub(scheduledTime).Minutes()))
	if delayMinutes < 0 {
		delayMinutes = 0
	}

	minutesUntil := int(math.Floor(expectedTime.Sub(now).Minutes()))
	if minutesUntil < 0 {
		minutesUntil = 0
	}

	normalized := Departure{
		Line:        departure.Line.Designation,
		Destination: departure.Destination,

		ScheduledTime: scheduledTime,
		ExpectedTime:  expectedTime,

		TimeFormatted: expectedTime.Format("15:04"),
		MinutesUntil:  minutesUntil,

		TransportMode: TransportMode(departure.Line.TransportMode),

		RealTime:     realTime,
		DelayMinutes: delayMinutes,
		Canceled:     departure.State == "CANCELLED",

		Agency: Agency,

		Direction: departure.Direction,
		State:     departure.State,

		Display:       departure.Display,
		DirectionCode: departureDirectionCode(departure),
	}

	if departure.StopPoint != nil {
		normalized.Platform = departure.StopPoint.Designation
	}
	if departure.StopArea != nil {
		normalized.StopArea = departure.StopArea.Name
	}

	for _, deviation := range departure.Deviations {
		if deviation.Message != "" {
			normalized.Deviations = append(normalized.Deviations, deviation.Message)
		}
	}

	return normalized, nil
}

func departureDirectionCode(departure sl.Departure) string {
	return strconv.Itoa(departure.DirectionCode)
}
