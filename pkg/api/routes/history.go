package routes

import (
	"strconv"
	"time"

	"github.com/gofiber/fiber/v2"
	"github.com/slboard/slboard/pkg/config"
	"github.com/slboard/slboard/pkg/history"
)

func HistoryRouter(router fiber.Router, loadedConfig *config.Config) {
	router.Get("/:identifier", getEntryHistory(loadedConfig))
}

func getEntryHistory(loadedConfig *config.Config) fiber.Handler {
	return func(c *fiber.Ctx) error {
		entry := loadedConfig.Entry(c.Params("identifier"))
		if entry == nil {
			c.SendStatus(fiber.StatusNotFound)
			return c.JSON(fiber.Map{
				"error": "Could not find a board matching the entry identifier",
			})
		}

		if !entry.History {
			c.SendStatus(fiber.StatusBadRequest)
			return c.JSON(fiber.Map{
				"error": "History recording is not enabled for this entry",
			})
		}

		var from, to time.Time

		if fromQuery := c.Query("from"); fromQuery != "" {
			parsed, err := time.Parse(time.RFC3339, fromQuery)
			if err != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "from must be an RFC3339 timestamp",
				})
			}
			from = parsed
		}

		if toQuery := c.Query("to"); toQuery != "" {
			parsed, err := time.Parse(time.RFC3339, toQuery)
			if err != nil {
				c.SendStatus(fiber.StatusBadRequest)
				return c.JSON(fiber.Map{
					"error": "to must be an RFC3339 timestamp",
				})
			}
			to = parsed
		}

		limit, _ := strconv.ParseInt(c.Query("limit", "100"), 10, 64)

		records, err := history.ForEntry(c.Context(), entry.ID, from, to, limit)
		if err != nil {
			c.SendStatus(fiber.StatusInternalServerError)
			return c.JSON(fiber.Map{
				"error": err.Error(),
			})
		}

		return c.JSON(records)
	}
}
