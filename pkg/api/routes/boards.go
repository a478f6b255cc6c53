package routes

import (
	"fmt"

	"github.com/gofiber/fiber/v2"
	"github.com/liip/sheriff"
	"github.com/rs/zerolog/log"
	"github.com/slboard/slboard/pkg/boardcache"
	"github.com/slboard/slboard/pkg/config"
	iso8601 "github.com/senseyeio/duration"
	"github.com/sourcegraph/conc/pool"
)

func BoardsRouter(router fiber.Router, loadedConfig *config.Config, boardCache *boardcache.Cache) {
	router.Get("/", listBoards(loadedConfig, boardCache))
	router.Get("/:identifier", getBoard(loadedConfig, boardCache))
	router.Get("/:identifier/sensors", getBoardSensors(loadedConfig, boardCache))
}

type boardSummary struct {
	EntryID  string `json:"entry_id"`
	SiteID   string `json:"site_id"`
	SiteName string `json:"site_name"`

	Available bool   `json:"available"`
	State     string `json:"state"`

	Departures int `json:"departures"`
}

func listBoards(loadedConfig *config.Config, boardCache *boardcache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		p := pool.NewWithResults[boardSummary]()

		for _, entry := range loadedConfig.Entries {
			p.Go(func() boardSummary {
				summary := boardSummary{
					EntryID:  entry.ID,
					SiteID:   entry.SiteID,
					SiteName: entry.SiteName,
				}

				storedBoard, err := boardCache.Get(c.Context(), entry.ID)
				if err != nil {
					return summary
				}

				summary.Available = storedBoard.Available
				if storedBoard.Board != nil {
					summary.State = storedBoard.Board.NextDisplay()
					summary.Departures = len(storedBoard.Board.Departures)
				}

				return summary
			})
		}

		return c.JSON(p.Wait())
	}
}

// getBoard is the aggregate sensor variant: the next departure's display
// string as state and the full normalized list under upcoming. An optional
// ISO-8601 window duration narrows the list by expected time.
func getBoard(loadedConfig *config.Config, boardCache *boardcache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry := loadedConfig.Entry(c.Params("identifier"))
		if entry == nil {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find a board matching the entry identifier",
			})
		}

		storedBoard, err := boardCache.Get(c.Context(), entry.ID)
		if err != nil || storedBoard.Board == nil {
			c.SendStatus(fiber.StatusServiceUnavailable)
			return c.JSON(fiber.Map{
				"error": "No board has been published for this entry yet",
			})
		}

		departures := storedBoard.Board.Departures

		if windowQuery := c.Query("window"); windowQuery != "" {
			windowDuration, err := iso8601.ParseISO8601(windowQuery)
			if err != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "Window must be an ISO-8601 duration",
				})
			}

			cutoff := windowDuration.Shift(storedBoard.Board.FetchedAt)
			departures = storedBoard.Board.Window(cutoff.Sub(storedBoard.Board.FetchedAt))
		}

		return c.JSON(fiber.Map{
			"entry_id":   entry.ID,
			"site_id":    entry.SiteID,
			"site_name":  entry.SiteName,
			"available":  storedBoard.Available,
			"state":      storedBoard.Board.NextDisplay(),
			"fetched_at": storedBoard.Board.FetchedAt,
			"attributes": fiber.Map{
				"upcoming": departures,
			},
			"stop_deviations": storedBoard.Board.StopDeviations,
		})
	}
}

type boardSensor struct {
	Name       string      `json:"name"`
	State      string      `json:"state"`
	Available  bool        `json:"available"`
	Attributes interface{} `json:"attributes,omitempty"`
}

// getBoardSensors is the sensor-per-departure variant: one sensor for each
// configured departure slot, truncated to the entry's departure count.
func getBoardSensors(loadedConfig *config.Config, boardCache *boardcache.Cache) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry := loadedConfig.Entry(c.Params("identifier"))
		if entry == nil {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find a board matching the entry identifier",
			})
		}

		storedBoard, err := boardCache.Get(c.Context(), entry.ID)
		if err != nil || storedBoard.Board == nil {
			c.SendStatus(fiber.StatusServiceUnavailable)
			return c.JSON(fiber.Map{
				"error": "No board has been published for this entry yet",
			})
		}

		departures := storedBoard.Board.Truncated(entry.NumDepartures)

		sensors := make([]boardSensor, entry.NumDepartures)
		for index := range sensors {
			sensors[index] = boardSensor{
				Name:      positionLabel(index),
				Available: false,
			}

			if index >= len(departures) || !storedBoard.Available {
				continue
			}

			departure := departures[index]

			attributes, err := sheriff.Marshal(&sheriff.Options{
				Groups: []string{"sensor"},
			}, &departure)
			if err != nil {
				log.Error().Err(err).Str("entry", entry.ID).Msg("Sheriff could not reduce Departure")
				continue
			}

			sensors[index].State = departure.Display
			sensors[index].Available = true
			sensors[index].Attributes = attributes
		}

		return c.JSON(sensors)
	}
}

func positionLabel(index int) string {
	switch index {
	case 0:
		return "Next"
	case 1:
		return "2nd"
	case 2:
		return "3rd"
	default:
		return fmt.Sprintf("%dth", index+1)
	}
}
