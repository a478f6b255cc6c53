package api

import (
	"github.com/slboard/slboard/pkg/boardcache"
	"github.com/slboard/slboard/pkg/config"
	"github.com/slboard/slboard/pkg/database"
	"github.com/slboard/slboard/pkg/redis_client"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "web-api",
		Usage: "Provides the core web API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run web api server",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:  "listen",
						Value: ":8080",
						Usage: "listen target for the web server",
					},
				},
				Action: func(c *cli.Context) error {
					loadedConfig, err := config.Load(config.Path())
					if err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						return err
					}

					for _, entry := range loadedConfig.Entries {
						if entry.History {
							if err := database.Connect(); err != nil {
								return err
							}
							break
						}
					}

					boardCache := &boardcache.Cache{}
					boardCache.Setup()

					return SetupServer(c.String("listen"), loadedConfig, boardCache)
				},
			},
		},
	}
}
