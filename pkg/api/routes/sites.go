package routes

import (
	"errors"

	"github.com/gofiber/fiber/v2"
	"github.com/slboard/slboard/pkg/sl"
)

func SitesRouter(router fiber.Router) {
	router.Get("/search", searchSites)
}

// searchSites is the station resolver surface used by the setup flow: a
// case-insensitive name search over the full upstream sites list.
func searchSites(c *fiber.Ctx) error {
	nameQuery := c.Query("name")

	if len(nameQuery) < 2 {
		c.SendStatus(fiber.StatusBadRequest)
		return c.JSON(fiber.Map{
			"error": "Search must be at least 2 characters",
		})
	}

	client := sl.NewClient()

	sites, err := client.SearchSites(c.Context(), nameQuery)
	if err != nil {
		var parseError *sl.ParseError

		status := fiber.StatusBadGateway
		if errors.As(err, &parseError) {
			status = fiber.StatusInternalServerError
		}

		c.SendStatus(status)
		return c.JSON(fiber.Map{
			"error": err.Error(),
		})
	}

	return c.JSON(sites)
}
