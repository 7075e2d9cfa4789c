package cli

import (
	"context"
	"os"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/cli/config"
	"github.com/packstat/packstat/pkg/repository/local"
	"github.com/packstat/packstat/pkg/service/lexicon"
	"github.com/packstat/packstat/pkg/usecase"
	"github.com/packstat/packstat/pkg/utils/logging"
	"github.com/urfave/cli/v3"
)

func cmdAnalyze() *cli.Command {
	var output string
	var analyzerCfg config.Analyzer

	flags := []cli.Flag{
		&cli.StringFlag{
			Name:        "output",
			Aliases:     []string{"o"},
			Usage:       "Snapshot output path",
			Value:       "snapshot.json",
			Sources:     cli.EnvVars("PACKSTAT_OUTPUT"),
			Destination: &output,
		},
	}
	flags = append(flags, analyzerCfg.Flags()...)

	return &cli.Command{
		Name:      "analyze",
		Aliases:   []string{"a"},
		Usage:     "Analyze an export archive and write the snapshot",
		ArgsUsage: "<archive.zip>",
		Flags:     flags,
		Action: func(ctx context.Context, c *cli.Command) error {
			logger := logging.Default()

			if c.Args().Len() != 1 {
				return goerr.New("exactly one archive path is required")
			}
			archivePath := c.Args().First()

			settings, err := analyzerCfg.Configure()
			if err != nil {
				return goerr.Wrap(err, "failed to load analyzer configuration")
			}

			data, err := os.ReadFile(archivePath)
			if err != nil {
				return goerr.Wrap(err, "failed to read archive", goerr.V("path", archivePath))
			}

			uc := usecase.New(
				usecase.WithScorer(newScorer(settings)),
				usecase.WithChunkSize(settings.ChunkSize),
				usecase.WithWorkers(settings.Workers),
				usecase.WithGapWindow(settings.GapMinSeconds, settings.GapMaxSeconds),
			)

			lastStage := ""
			snapshot, err := uc.Analyze(ctx, data, func(percent float64, stage string) {
				if stage != lastStage {
					lastStage = stage
					logger.Info("pipeline stage", "stage", stage)
				}
				logger.Debug("pipeline progress", "percent", percent, "stage", stage)
			})
			if err != nil {
				return goerr.Wrap(err, "analysis failed", goerr.V("path", archivePath))
			}

			repo := local.New(output)
			if err := repo.Save(ctx, snapshot); err != nil {
				return goerr.Wrap(err, "failed to save snapshot")
			}

			logger.Info("snapshot written",
				"path", output,
				"messages", snapshot.Aggregate.MessageCount,
				"conversations", len(snapshot.Conversations),
			)
			return nil
		},
	}
}

func newScorer(settings config.Settings) *lexicon.Scorer {
	return lexicon.New(lexicon.WithStopWords(settings.StopWords...))
}
