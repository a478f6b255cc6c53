package events

import (
	"fmt"
	"strings"

	"github.com/slboard/slboard/pkg/board"
	"github.com/slboard/slboard/pkg/util"
)

const maxNotificationMessageLength = 220

type EventNotificationData struct {
	Title   string
	Message string
}

func (e *Event) GetNotificationData() EventNotificationData {
	eventNotificationData := EventNotificationData{}

	switch e.Type {
	case EventTypeDepartureCancelled:
		eventNotificationData.Title = "Departure cancelled"

		if e.Departure != nil {
			eventNotificationData.Message = fmt.Sprintf(
				"The %s %s %s to %s from %s has been cancelled.",
				e.Departure.TimeFormatted,
				e.Departure.Line,
				transportModeNoun(e.Departure.TransportMode),
				e.Departure.Destination,
				e.SiteName,
			)
		}
	case EventTypeStopDeviationCreated:
		eventNotificationData.Title = fmt.Sprintf("Disruption at %s", e.SiteName)
		eventNotificationData.Message = util.TrimString(e.Deviation, maxNotificationMessageLength)
	}

	return eventNotificationData
}

func transportModeNoun(mode board.TransportMode) string {
	switch mode {
	case board.TransportModeBus:
		return "bus"
	case board.TransportModeTrain:
		return "train"
	case board.TransportModeMetro:
		return "metro"
	case board.TransportModeTram:
		return "tram"
	case board.TransportModeShip, board.TransportModeFerry:
		return "ferry"
	default:
		return strings.ToLower(string(mode))
	}
}
