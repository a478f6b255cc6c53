package setup

import (
	"errors"
	"fmt"
	"os"
	"sort"
	"strconv"
	"strings"

	"github.com/rs/zerolog/log"
	"github.com/slboard/slboard/pkg/board"
	"github.com/slboard/slboard/pkg/config"
	"github.com/slboard/slboard/pkg/sl"
	"github.com/slboard/slboard/pkg/util"
	"github.com/urfave/cli/v2"
)

// The setup flow mirrors the steps a new board goes through: search for a
// site, inspect its lines and directions, then add the entry to the config
// file. Each step validates against live data and fails inline rather than
// writing a broken entry.

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "setup",
		Usage: "Configure departure board entries",
		Subcommands: []*cli.Command{
			searchCommand(),
			linesCommand(),
			directionsCommand(),
			addCommand(),
		},
	}
}

func searchCommand() *cli.Command {
	return &cli.Command{
		Name:      "search",
		Usage:     "search for a site by name",
		ArgsUsage: "<query>",
		Action: func(c *cli.Context) error {
			query := strings.TrimSpace(c.Args().First())

			if len(query) < 2 {
				return &config.ConfigError{Field: "search", Err: errors.New("search must be at least 2 characters")}
			}

			client := sl.NewClient()

			sites, err := client.SearchSites(c.Context, query)
			if err != nil {
				return err
			}

			if len(sites) == 0 {
				fmt.Println("No matching sites")
				return nil
			}

			for _, site := range sites {
				fmt.Printf("%d\t%s\n", site.ID, site.Name)
			}

			return nil
		},
	}
}

func linesCommand() *cli.Command {
	return &cli.Command{
		Name:  "lines",
		Usage: "list the lines departing a site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "site",
				Usage:    "site id",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "only show lines of this transport mode",
			},
		},
		Action: func(c *cli.Context) error {
			client := sl.NewClient()

			response, err := client.Departures(c.Context, c.String("site"))
			if err != nil {
				return err
			}

			lines := LinesAtSite(response, strings.ToUpper(c.String("mode")))

			var designations []string
			for designation := range lines {
				designations = append(designations, designation)
			}
			sort.Strings(designations)

			for _, designation := range designations {
				if groupName := lines[designation]; groupName != "" && groupName != designation {
					fmt.Printf("%s\t(%s)\n", designation, groupName)
				} else {
					fmt.Println(designation)
				}
			}

			return nil
		},
	}
}

func directionsCommand() *cli.Command {
	return &cli.Command{
		Name:  "directions",
		Usage: "list the directions departing a site",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "site",
				Usage:    "site id",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "only consider departures of this transport mode",
			},
			&cli.StringFlag{
				Name:  "line",
				Usage: "only consider departures of this line",
			},
		},
		Action: func(c *cli.Context) error {
			client := sl.NewClient()

			response, err := client.Departures(c.Context, c.String("site"))
			if err != nil {
				return err
			}

			directions := DirectionsAtSite(response, strings.ToUpper(c.String("mode")), c.String("line"))

			var codes []string
			for code := range directions {
				codes = append(codes, code)
			}
			sort.Strings(codes)

			for _, code := range codes {
				fmt.Printf("%s\t→ %s\n", code, directions[code])
			}

			return nil
		},
	}
}

func addCommand() *cli.Command {
	return &cli.Command{
		Name:  "add",
		Usage: "add a board entry to the config file",
		Flags: []cli.Flag{
			&cli.StringFlag{
				Name:     "site",
				Usage:    "site id",
				Required: true,
			},
			&cli.StringFlag{
				Name:  "mode",
				Usage: "transport mode to keep",
			},
			&cli.StringFlag{
				Name:  "lines",
				Usage: "comma separated line designations to keep",
			},
			&cli.StringFlag{
				Name:  "direction",
				Usage: "direction code to keep",
			},
			&cli.IntFlag{
				Name:  "interval",
				Usage: "poll interval in seconds (30-300)",
				Value: config.DefaultScanIntervalSeconds,
			},
			&cli.IntFlag{
				Name:  "count",
				Usage: "departure slots for the sensor variant (1-5)",
				Value: config.DefaultNumDepartures,
			},
			&cli.BoolFlag{
				Name:  "history",
				Usage: "record every poll cycle to the history store",
			},
		},
		Action: func(c *cli.Context) error {
			siteID := c.String("site")
			mode := strings.ToUpper(c.String("mode"))
			lineFilter := c.String("lines")
			directionCode := c.String("direction")

			if mode != "" {
				if _, known := board.TransportModeLabels[board.TransportMode(mode)]; !known {
					return &config.ConfigError{Field: "mode", Err: fmt.Errorf("unknown transport mode %q", mode)}
				}
			}

			client := sl.NewClient()

			siteName, err := resolveSiteName(c, client, siteID)
			if err != nil {
				return err
			}

			response, err := client.Departures(c.Context, siteID)
			if err != nil {
				return err
			}

			for _, line := range util.SplitAndTrim(lineFilter) {
				if _, exists := LinesAtSite(response, mode)[line]; !exists {
					log.Warn().Str("line", line).Msg("Line has no departures at this site right now")
				}
			}

			directionName := ""
			if directionCode != "" {
				if _, err := strconv.Atoi(directionCode); err != nil {
					return &config.ConfigError{Field: "direction", Err: errors.New("direction code must be numeric")}
				}

				directionName = DirectionsAtSite(response, mode, "")[directionCode]
			}

			entry := config.BoardEntry{
				ID: BuildEntryID(siteID, mode, strings.Join(util.SplitAndTrim(lineFilter), "-"), directionCode),

				SiteID:   siteID,
				SiteName: siteName,

				LineFilter:    lineFilter,
				DirectionCode: directionCode,
				DirectionName: directionName,

				ScanInterval:  c.Int("interval"),
				NumDepartures: c.Int("count"),

				History: c.Bool("history"),
			}
			if mode != "" {
				entry.TransportModes = []string{mode}
			}

			configPath := config.Path()

			loadedConfig := &config.Config{}
			if _, err := os.Stat(configPath); err == nil {
				loadedConfig, err = config.Load(configPath)
				if err != nil {
					return err
				}
			}

			if loadedConfig.Entry(entry.ID) != nil {
				return &config.ConfigError{Field: entry.ID, Err: errors.New("an entry with this site and filters already exists")}
			}

			loadedConfig.Entries = append(loadedConfig.Entries, entry)

			if err := loadedConfig.Validate(); err != nil {
				return err
			}

			if err := loadedConfig.Save(configPath); err != nil {
				return err
			}

			log.Info().Str("entry", entry.ID).Str("config", configPath).Msg("Added board entry")

			return nil
		},
	}
}

func resolveSiteName(c *cli.Context, client *sl.Client, siteID string) (string, error) {
	sites, err := client.Sites(c.Context)
	if err != nil {
		return "", err
	}

	for _, site := range sites {
		if strconv.Itoa(site.ID) == siteID {
			return site.Name, nil
		}
	}

	return "", &config.ConfigError{Field: "site", Err: fmt.Errorf("site %s does not exist", siteID)}
}
