package realtime

import (
	"github.com/slboard/slboard/pkg/realtime/sldepartures"
	"github.com/urfave/cli/v2"
)

func RegisterCLI() *cli.Command {
	return &cli.Command{
		Name:  "realtime",
		Usage: "Realtime sources",
		Subcommands: []*cli.Command{
			sldepartures.RegisterCLI(),
		},
	}
}
