package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/service/archive"
	"github.com/packstat/packstat/pkg/service/classify"
	"github.com/packstat/packstat/pkg/service/extract"
	"github.com/packstat/packstat/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdValidate() *cli.Command {
	return &cli.Command{
		Name:      "validate",
		Aliases:   []string{"v"},
		Usage:     "Check an export archive's structure without analyzing it",
		ArgsUsage: "<archive.zip>",
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if c.Args().Len() != 1 {
				return goerr.New("exactly one archive path is required")
			}
			path := c.Args().First()

			data, err := os.ReadFile(path)
			if err != nil {
				return goerr.Wrap(err, "failed to read archive", goerr.V("path", path))
			}

			ar, err := archive.New(data)
			if err != nil {
				return goerr.Wrap(err, "archive validation failed", goerr.V("path", path))
			}

			identity, err := extract.Identity(ar)
			if err != nil {
				return goerr.Wrap(err, "identity validation failed", goerr.V("path", path))
			}

			channels := classify.Channels(ctx, ar)

			logger.Info("archive is valid",
				"path", path,
				"user_id", identity.ID,
				"conversations", len(channels.Kinds),
				"communities", len(channels.GuildNames),
			)
			return nil
		},
	}
}
