package sldepartures

import (
	"context"
	"time"

	"github.com/rs/zerolog/log"
	"github.com/slboard/slboard/pkg/board"
	"github.com/slboard/slboard/pkg/boardcache"
	"github.com/slboard/slboard/pkg/config"
	"github.com/slboard/slboard/pkg/events"
	"github.com/slboard/slboard/pkg/history"
	"github.com/slboard/slboard/pkg/sl"
	"github.com/slboard/slboard/pkg/util"
)

// A board turns unavailable only after this many consecutive failed polls.
// Until then the last good board keeps being served.
const maxConsecutiveFailures = 3

// SiteTracker polls the departures for one configured board entry on a
// fixed interval. Each poll cycle builds a fresh board from scratch;
// nothing is carried over except the last good board used during failures.
type SiteTracker struct {
	Entry       config.BoardEntry
	RefreshRate time.Duration

	Client    *sl.Client
	Cache     *boardcache.Cache
	Publisher *events.Publisher

	lastGood            *board.Board
	consecutiveFailures int
}

func (t *SiteTracker) Run() {
	log.Info().Str("entry", t.Entry.ID).Str("site", t.Entry.SiteID).Msg("Registering new site tracker")

	for {
		startTime := time.Now()

		t.Poll(context.Background())

		executionDuration := time.Since(startTime)
		waitTime := t.RefreshRate - executionDuration

		if waitTime.Seconds() > 0 {
			time.Sleep(waitTime)
		}
	}
}

func (t *SiteTracker) Poll(ctx context.Context) {
	now := time.Now()

	response, err := t.Client.Departures(ctx, t.Entry.SiteID)
	if err != nil {
		t.recordFailure(ctx, err)
		return
	}

	polledBoard, err := board.Build(response, t.Entry.FilterOptions(), now)
	if err != nil {
		t.recordFailure(ctx, err)
		return
	}

	polledBoard.SiteID = t.Entry.SiteID
	polledBoard.SiteName = t.Entry.SiteName

	t.publishEvents(polledBoard)

	t.consecutiveFailures = 0

	storeErr := t.Cache.Set(ctx, &boardcache.StoredBoard{
		EntryID:   t.Entry.ID,
		Available: true,
		Board:     polledBoard,
	})
	if storeErr != nil {
		log.Error().Err(storeErr).Str("entry", t.Entry.ID).Msg("Failed to store board")
	}

	if t.Entry.History {
		if err := history.Record(ctx, t.Entry.ID, t.Entry.SiteID, polledBoard); err != nil {
			log.Error().Err(err).Str("entry", t.Entry.ID).Msg("Failed to record board history")
		}
	}

	t.lastGood = polledBoard

	log.Debug().
		Str("entry", t.Entry.ID).
		Int("departures", len(polledBoard.Departures)).
		Str("next", polledBoard.NextDisplay()).
		Msg("Updated board")
}

// recordFailure keeps serving the last good board and only flips the entry
// to unavailable after repeated consecutive failures. A failed fetch is
// never stored as an empty board.
func (t *SiteTracker) recordFailure(ctx context.Context, pollError error) {
	t.consecutiveFailures += 1

	log.Warn().
		Err(pollError).
		Str("entry", t.Entry.ID).
		Int("failures", t.consecutiveFailures).
		Msg("Poll failed")

	storeErr := t.Cache.Set(ctx, &boardcache.StoredBoard{
		EntryID:             t.Entry.ID,
		Available:           t.consecutiveFailures < maxConsecutiveFailures,
		ConsecutiveFailures: t.consecutiveFailures,
		Board:               t.lastGood,
	})
	if storeErr != nil {
		log.Error().Err(storeErr).Str("entry", t.Entry.ID).Msg("Failed to store board")
	}
}

func (t *SiteTracker) publishEvents(polledBoard *board.Board) {
	if t.Publisher == nil || t.lastGood == nil {
		return
	}

	for _, event := range diffEvents(t.lastGood, polledBoard, t.Entry.ID, t.Entry.SiteName) {
		if err := t.Publisher.Publish(event); err != nil {
			log.Error().Err(err).Str("entry", t.Entry.ID).Msg("Failed to publish event")
		}
	}
}

// diffEvents compares a new board against the previous poll and returns the
// queue events for newly cancelled departures and newly published stop
// deviations. Departures already cancelled on the previous poll and
// deviations already seen produce nothing.
func diffEvents(previous *board.Board, current *board.Board, entryID string, siteName string) []events.Event {
	var boardEvents []events.Event

	previousCancelled := map[string]bool{}
	for _, departure := range previous.Departures {
		if departure.Canceled {
			previousCancelled[departureKey(departure)] = true
		}
	}

	for _, departure := range current.Departures {
		if !departure.Canceled || previousCancelled[departureKey(departure)] {
			continue
		}

		boardEvents = append(boardEvents, events.Event{
			Type:      events.EventTypeDepartureCancelled,
			Timestamp: current.FetchedAt,
			EntryID:   entryID,
			SiteName:  siteName,
			Departure: &departure,
		})
	}

	for _, deviation := range current.StopDeviations {
		if util.ContainsString(previous.StopDeviations, deviation) {
			continue
		}

		boardEvents = append(boardEvents, events.Event{
			Type:      events.EventTypeStopDeviationCreated,
			Timestamp: current.FetchedAt,
			EntryID:   entryID,
			SiteName:  siteName,
			Deviation: deviation,
		})
	}

	return boardEvents
}

// departureKey identifies the same planned trip across two poll cycles.
// Uses the stable direction code rather than the display direction name.
func departureKey(departure board.Departure) string {
	return departure.Line + "/" + departure.DirectionCode + "/" + departure.ScheduledTime.Format(time.RFC3339)
}
