package api

import (
	"github.com/gofiber/fiber/v2"
	"github.com/slboard/slboard/pkg/api/routes"
	"github.com/slboard/slboard/pkg/boardcache"
	"github.com/slboard/slboard/pkg/config"
)

func SetupServer(listen string, loadedConfig *config.Config, boardCache *boardcache.Cache) error {
	webApp := fiber.New()
	webApp.Use(NewLogger())

	group := webApp.Group("/core")

	group.Get("version", routes.APIVersion)

	routes.SitesRouter(group.Group("/sites"))
	routes.BoardsRouter(group.Group("/boards"), loadedConfig, boardCache)
	routes.HistoryRouter(group.Group("/history"), loadedConfig)

	return webApp.Listen(listen)
}
