package usecase

import (
	"context"

	"github.com/google/uuid"
	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/domain/interfaces"
	"github.com/packstat/packstat/pkg/domain/model"
	"github.com/packstat/packstat/pkg/domain/types"
	"github.com/packstat/packstat/pkg/service/activity"
	"github.com/packstat/packstat/pkg/service/aggregate"
	"github.com/packstat/packstat/pkg/service/archive"
	"github.com/packstat/packstat/pkg/service/classify"
	"github.com/packstat/packstat/pkg/service/extract"
	"github.com/packstat/packstat/pkg/utils/logging"
	"golang.org/x/sync/errgroup"
)

// Analyze runs the whole ingestion-and-aggregation pipeline over one export
// bundle and assembles the snapshot. A failure in either concurrent pass
// aborts the pipeline; no partial snapshot is ever returned.
func (uc *UseCase) Analyze(ctx context.Context, data []byte, onProgress interfaces.ProgressFunc) (*model.Snapshot, error) {
	logger := logging.From(ctx).With("run_id", uuid.NewString())
	ctx = logging.With(ctx, logger)

	reporter := newProgressReporter(onProgress)

	ar, err := archive.New(data)
	if err != nil {
		return nil, err
	}

	identity, err := extract.Identity(ar)
	if err != nil {
		return nil, err
	}
	logger.Info("extracted identity", "user_id", identity.ID)

	users, err := extract.Directory(ar)
	if err != nil {
		return nil, goerr.Wrap(err, "failed to build user directory")
	}

	channels := classify.Channels(ctx, ar)
	logger.Info("classified conversations",
		"conversations", len(channels.Kinds),
		"communities", len(channels.GuildNames),
	)

	aggregator := aggregate.New(ar, uc.scorer, identity.ID, users, channels,
		aggregate.WithWorkers(uc.workers),
		aggregate.WithGapWindow(uc.gapMinSeconds, uc.gapMaxSeconds),
		aggregate.WithUserLookup(func(id types.UserID) *model.UserRef {
			return extract.FindUser(ar, id)
		}),
	)
	scanner := activity.NewScanner(activity.WithChunkSize(uc.chunkSize))

	var aggResult *aggregate.Result
	var activityStats model.ActivityStats

	// The two passes share no mutable state; either failure cancels both
	eg, egCtx := errgroup.WithContext(ctx)
	eg.Go(func() error {
		res, err := aggregator.Run(egCtx, reporter.Aggregation)
		if err != nil {
			return goerr.Wrap(err, "message aggregation failed")
		}
		aggResult = res
		return nil
	})
	eg.Go(func() error {
		stats, err := scanner.Scan(egCtx, ar, reporter.Scan)
		if err != nil {
			return goerr.Wrap(err, "activity log scan failed")
		}
		activityStats = stats
		return nil
	})
	if err := eg.Wait(); err != nil {
		return nil, err
	}

	snapshot := &model.Snapshot{
		Self:          *identity,
		Users:         users,
		Channels:      channels,
		Aggregate:     aggResult.Aggregate,
		Conversations: aggResult.Conversations,
		DMManifest:    aggResult.DMManifest,
		Activity:      activityStats,
	}
	if err := snapshot.Validate(); err != nil {
		return nil, goerr.Wrap(err, "assembled snapshot is inconsistent")
	}

	reporter.Done()
	logger.Info("analysis completed",
		"messages", snapshot.Aggregate.MessageCount,
		"conversations", len(snapshot.Conversations),
		"activity_events", snapshot.Activity.Total(),
	)

	return snapshot, nil
}
