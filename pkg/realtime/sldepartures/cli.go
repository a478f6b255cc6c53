package sldepartures

import (
	"encoding/json"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/kr/pretty"
	"github.com/rs/zerolog/log"
	"github.com/slboard/slboard/pkg/board"
	"github.com/slboard/slboard/pkg/boardcache"
	"github.com/slboard/slboard/pkg/config"
	"github.com/slboard/slboard/pkg/database"
	"github.com/slboard/slboard/pkg/events"
	"github.com/slboard/slboard/pkg/redis_client"
	"github.com/slboard/slboard/pkg/sl"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "sl-departures",
		Usage: "Track departure boards through the SL Transport API",
		Subcommands: []*cli.Command{
			{
				Name:  "run",
				Usage: "run an instance of the departures tracker",
				Action: func(c *cli.Context) error {
					loadedConfig, err := config.Load(config.Path())
					if err != nil {
						return err
					}

					if err := redis_client.Connect(); err != nil {
						return err
					}

					recordsHistory := false
					for _, entry := range loadedConfig.Entries {
						if entry.History {
							recordsHistory = true
						}
					}
					if recordsHistory {
						if err := database.Connect(); err != nil {
							return err
						}
					}

					boardCache := &boardcache.Cache{}
					boardCache.Setup()

					publisher := &events.Publisher{}
					if err := publisher.Setup(); err != nil {
						return err
					}

					trackerManager := TrackerManager{
						Entries: loadedConfig.Entries,

						Cache:     boardCache,
						Publisher: publisher,
					}
					trackerManager.Run()

					signals := make(chan os.Signal, 1)
					signal.Notify(signals, syscall.SIGINT)
					defer signal.Stop(signals)

					<-signals // wait for signal
					go func() {
						<-signals // hard exit on second signal (in case shutdown gets stuck)
						os.Exit(1)
					}()

					return nil
				},
			},
			{
				Name:  "test",
				Usage: "build a board from a local departures response file",
				Flags: []cli.Flag{
					&cli.StringFlag{
						Name:     "file",
						Usage:    "path to a departures response JSON file",
						Required: true,
					},
					&cli.StringSliceFlag{
						Name:  "mode",
						Usage: "transport modes to keep",
					},
					&cli.StringFlag{
						Name:  "lines",
						Usage: "comma separated line designations to keep",
					},
					&cli.StringFlag{
						Name:  "direction",
						Usage: "direction code to keep",
					},
				},
				Action: func(c *cli.Context) error {
					jsonBytes, err := os.ReadFile(c.String("file"))
					if err != nil {
						log.Fatal().Err(err).Msg("Failed to open file")
					}

					var response sl.DeparturesResponse
					if err := json.Unmarshal(jsonBytes, &response); err != nil {
						log.Fatal().Err(err).Msg("Failed to decode file")
					}

					options := board.FilterOptionsFromStrings(c.StringSlice("mode"), c.String("lines"), c.String("direction"))

					builtBoard, err := board.Build(&response, options, time.Now())
					if err != nil {
						return err
					}

					pretty.Println(builtBoard)

					return nil
				},
			},
		},
	}
}
