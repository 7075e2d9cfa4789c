package cli

import (
	"bytes"
	"context"
	"fmt"
	"io"
	"os"
	"sort"

	"github.com/fatih/color"
	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/domain/model"
	"github.com/packstat/packstat/pkg/domain/types"
	"github.com/packstat/packstat/pkg/repository/local"
	"github.com/packstat/packstat/pkg/utils/safe"
	"github.com/urfave/cli/v3"
)

func cmdSummary() *cli.Command {
	return &cli.Command{
		Name:      "summary",
		Aliases:   []string{"s"},
		Usage:     "Print a human-readable report from a saved snapshot",
		ArgsUsage: "<snapshot.json>",
		Action: func(ctx context.Context, c *cli.Command) error {
			if c.Args().Len() != 1 {
				return goerr.New("exactly one snapshot path is required")
			}
			path := c.Args().First()

			snapshot, err := local.New(path).Load(ctx)
			if err != nil {
				return goerr.Wrap(err, "failed to load snapshot")
			}
			if snapshot == nil {
				return goerr.New("snapshot not found", goerr.V("path", path))
			}

			var buf bytes.Buffer
			printSummary(&buf, snapshot)
			safe.Write(ctx, os.Stdout, buf.Bytes())
			return nil
		},
	}
}

func printSummary(w io.Writer, s *model.Snapshot) {
	title := color.New(color.FgCyan, color.Bold)
	label := color.New(color.FgWhite, color.Bold)
	value := color.New(color.FgGreen)

	title.Fprintf(w, "Snapshot for %s\n\n", s.Self.Username)

	label.Fprint(w, "Messages:       ")
	value.Fprintf(w, "%d across %d conversations\n", s.Aggregate.MessageCount, len(s.Conversations))

	label.Fprint(w, "Communities:    ")
	value.Fprintf(w, "%d\n", len(s.Channels.GuildNames))

	if hour, count := maxBucket(s.Aggregate.Hourly); count > 0 {
		label.Fprint(w, "Busiest hour:   ")
		value.Fprintf(w, "%s:00 (%d messages)\n", hour, count)
	}
	if month, count := maxBucket(s.Aggregate.Monthly); count > 0 {
		label.Fprint(w, "Busiest month:  ")
		value.Fprintf(w, "%s (%d messages)\n", month, count)
	}

	if len(s.Aggregate.TopWords) > 0 {
		label.Fprint(w, "Top words:      ")
		value.Fprintf(w, "%v\n", s.Aggregate.TopWords)
	}

	if streak := longestConversationStreak(s); streak.Length > 0 {
		label.Fprint(w, "Longest streak: ")
		value.Fprintf(w, "%d days (%s to %s)\n", streak.Length, streak.Start, streak.End)
	}

	if s.Activity.Total() > 0 {
		fmt.Fprintln(w)
		title.Fprintln(w, "Activity")
		for _, cat := range types.AllEventCategories() {
			label.Fprintf(w, "  %-32s", cat)
			value.Fprintf(w, "%d\n", s.Activity.Count(cat))
		}
	}
}

// maxBucket returns the histogram key with the highest count, breaking ties
// by key order
func maxBucket(buckets map[string]int) (string, int) {
	keys := make([]string, 0, len(buckets))
	for k := range buckets {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var bestKey string
	var bestCount int
	for _, k := range keys {
		if buckets[k] > bestCount {
			bestKey = k
			bestCount = buckets[k]
		}
	}
	return bestKey, bestCount
}

func longestConversationStreak(s *model.Snapshot) model.Streak {
	keys := make([]string, 0, len(s.Conversations))
	for k := range s.Conversations {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	var best model.Streak
	for _, k := range keys {
		if streak := s.Conversations[k].Streak; streak.Length > best.Length {
			best = streak
		}
	}
	return best
}
