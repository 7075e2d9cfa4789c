package cli

import (
	"context"

	"github.com/packstat/packstat/pkg/cli/config"
	"github.com/packstat/packstat/pkg/utils/errutil"
	"github.com/packstat/packstat/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

// Run executes the packstat CLI
func Run(ctx context.Context, args []string, version string) error {
	var loggerCfg config.Logger
	var closer func()

	app := &cli.Command{
		Name:    "packstat",
		Usage:   "Personal data-export archive analytics",
		Version: version,
		Flags:   loggerCfg.Flags(),
		Before: func(ctx context.Context, c *cli.Command) (context.Context, error) {
			f, err := loggerCfg.Configure()
			if err != nil {
				return ctx, err
			}
			closer = f

			logging.Default().Debug("Starting packstat", "logger", loggerCfg)
			return ctx, nil
		},
		After: func(ctx context.Context, c *cli.Command) error {
			if closer != nil {
				closer()
			}
			return nil
		},
		Commands: []*cli.Command{
			cmdAnalyze(),
			cmdSummary(),
			cmdValidate(),
		},
	}

	return errutil.Handle(ctx, app.Run(ctx, args), "failed to run app")
}
