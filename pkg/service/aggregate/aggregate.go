package aggregate

import (
	"context"
	"fmt"
	"regexp"
	"runtime"
	"sync/atomic"

	"github.com/packstat/packstat/pkg/domain/model"
	"github.com/packstat/packstat/pkg/domain/types"
	"github.com/packstat/packstat/pkg/service/archive"
	"github.com/packstat/packstat/pkg/service/lexicon"
	"github.com/packstat/packstat/pkg/utils/errutil"
	"golang.org/x/sync/errgroup"
)

// Gap window defaults: gaps at or below the minimum are sub-threshold noise,
// gaps at or above the maximum are multi-day silences. Both are excluded so
// they cannot distort the average.
const (
	DefaultGapMinSeconds = 30
	DefaultGapMaxSeconds = 259200
)

var messagesFileRe = regexp.MustCompile(`(?i)^Messages/c(\d+)/messages\.json$`)

// Aggregator runs the per-conversation statistical reduction and folds the
// results into a single global aggregate.
type Aggregator struct {
	archive  *archive.Archive
	scorer   *lexicon.Scorer
	selfID   types.UserID
	users    model.UserDirectory
	channels *model.ChannelDirectory
	lookup   func(types.UserID) *model.UserRef
	workers  int
	gapMin   int64
	gapMax   int64
}

// Option configures an Aggregator
type Option func(*Aggregator)

// WithWorkers sets the number of concurrent per-conversation workers
func WithWorkers(n int) Option {
	return func(a *Aggregator) {
		if n > 0 {
			a.workers = n
		}
	}
}

// WithGapWindow overrides the inter-message gap window in seconds
func WithGapWindow(minSec, maxSec int64) Option {
	return func(a *Aggregator) {
		if minSec > 0 && maxSec > minSec {
			a.gapMin = minSec
			a.gapMax = maxSec
		}
	}
}

// WithUserLookup sets the fallback lookup used to resolve DM recipients that
// are missing from the user directory
func WithUserLookup(fn func(types.UserID) *model.UserRef) Option {
	return func(a *Aggregator) {
		a.lookup = fn
	}
}

// New creates an Aggregator over an opened archive
func New(ar *archive.Archive, scorer *lexicon.Scorer, selfID types.UserID,
	users model.UserDirectory, channels *model.ChannelDirectory, opts ...Option) *Aggregator {

	a := &Aggregator{
		archive:  ar,
		scorer:   scorer,
		selfID:   selfID,
		users:    users,
		channels: channels,
		workers:  runtime.NumCPU(),
		gapMin:   DefaultGapMinSeconds,
		gapMax:   DefaultGapMaxSeconds,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

// Result holds the outputs of one aggregation pass
type Result struct {
	Aggregate     *model.AggregateStats
	Conversations map[string]*model.ConversationStats
	DMManifest    []string
}

// Run reduces every conversation with a message log and folds the results
// into the global aggregate. Conversations are reduced in parallel; the fold
// itself is performed by a single writer in archive enumeration order so
// that first-seen tie-breaks stay reproducible. onProgress receives 0..100.
func (a *Aggregator) Run(ctx context.Context, onProgress func(float64)) (*Result, error) {
	entries := a.archive.Glob(messagesFileRe)

	results := make([]*convResult, len(entries))
	var done atomic.Int64

	eg, ctx := errgroup.WithContext(ctx)
	eg.SetLimit(a.workers)

	for i, entry := range entries {
		eg.Go(func() error {
			res, err := a.reduceConversation(ctx, entry)
			if err != nil {
				// Per-entry parse failures are recoverable: the conversation
				// is skipped, the pass continues.
				errutil.HandleSkip(ctx, err, "skipping unparseable conversation log")
			} else {
				results[i] = res
			}

			if onProgress != nil {
				onProgress(float64(done.Add(1)) / float64(len(entries)) * 100)
			}
			return ctx.Err()
		})
	}

	if err := eg.Wait(); err != nil {
		return nil, err
	}
	if onProgress != nil {
		onProgress(100)
	}

	return a.fold(results), nil
}

// fold merges per-conversation results into the global aggregate. Single
// writer, fixed order: the bucket fold is commutative, but the global
// word-frequency tie-break and "Deleted User" numbering are not.
func (a *Aggregator) fold(results []*convResult) *Result {
	out := &Result{
		Aggregate:     model.NewAggregateStats(),
		Conversations: make(map[string]*model.ConversationStats),
	}

	agg := out.Aggregate
	globalWords := lexicon.NewWordFreq()
	hourlySentiment := make(map[string]float64)
	deletedUsers := 0

	for _, res := range results {
		if res == nil {
			continue
		}

		stats := res.stats
		if stats.DisplayName == "Deleted User" {
			deletedUsers++
			stats.DisplayName = fmt.Sprintf("Deleted User%d", deletedUsers)
		}

		for hour, n := range stats.Hourly {
			agg.Hourly[hour] += n
		}
		for month, n := range stats.Monthly {
			agg.Monthly[month] += n
		}
		agg.MessageCount += stats.MessageCount
		agg.TotalGapTime += stats.TotalGapTime
		agg.NumGaps += stats.NumGaps
		for hour, score := range res.hourlySentiment {
			hourlySentiment[hour] += score
		}
		globalWords.Merge(res.words)

		out.Conversations[res.key] = stats
		if res.isDM {
			out.DMManifest = append(out.DMManifest, res.key+".json")
		}
	}

	if agg.NumGaps > 0 {
		agg.AverageGap = float64(agg.TotalGapTime) / float64(agg.NumGaps)
	}
	agg.TopWords = globalWords.Top(topWordCount)
	for hour, count := range agg.Hourly {
		if count > 0 {
			agg.HourlySentimentAverage[hour] = hourlySentiment[hour] / float64(count)
		}
	}

	return out
}
