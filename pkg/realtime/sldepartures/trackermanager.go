package sldepartures

import (
	"github.com/rs/zerolog/log"
	"github.com/slboard/slboard/pkg/boardcache"
	"github.com/slboard/slboard/pkg/config"
	"github.com/slboard/slboard/pkg/events"
	"github.com/slboard/slboard/pkg/sl"
)

type TrackerManager struct {
	Entries []config.BoardEntry

	Cache     *boardcache.Cache
	Publisher *events.Publisher
}

func (t TrackerManager) Run() {
	log.Info().Msg("Starting SL Departures Tracker")

	client := sl.NewClient()

	for _, entry := range t.Entries {
		log.Info().
			Str("entry", entry.ID).
			Str("site", entry.SiteID).
			Strs("modes", entry.TransportModes).
			Str("lines", entry.LineFilter).
			Str("direction", entry.DirectionCode).
			Dur("refresh", entry.RefreshRate()).
			Msg("Registered board entry")

		go func(entry config.BoardEntry) {
			siteTracker := SiteTracker{
				Entry:       entry,
				RefreshRate: entry.RefreshRate(),

				Client:    client,
				Cache:     t.Cache,
				Publisher: t.Publisher,
			}

			siteTracker.Run()
		}(entry)
	}
}
