package aggregate

import (
	"context"
	"encoding/json"
	"fmt"
	"sort"
	"time"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/domain/model"
	"github.com/packstat/packstat/pkg/domain/types"
	"github.com/packstat/packstat/pkg/service/archive"
	"github.com/packstat/packstat/pkg/service/lexicon"
)

const topWordCount = 5

// Export timestamps use a space separator; some tooling rewrites them with a
// "T". Both are local wall-clock times without zone information.
var timestampLayouts = []string{
	"2006-01-02 15:04:05",
	"2006-01-02T15:04:05",
}

type messageRecord struct {
	Timestamp string `json:"Timestamp"`
	Contents  string `json:"Contents"`
}

type timedMessage struct {
	at       time.Time
	valid    bool
	contents string
}

// convResult is the outcome of one per-conversation reduction, carried to
// the single-writer fold.
type convResult struct {
	key             string
	isDM            bool
	stats           *model.ConversationStats
	words           *lexicon.WordFreq
	hourlySentiment map[string]float64
}

func parseTimestamp(s string) (time.Time, bool) {
	if s == "" {
		return time.Time{}, false
	}
	for _, layout := range timestampLayouts {
		if t, err := time.ParseInLocation(layout, s, time.Local); err == nil {
			return t, true
		}
	}
	return time.Time{}, false
}

// reduceConversation parses one message log and runs the single forward scan
// over its chronologically sorted records. Returns nil when the conversation
// is unclassified or has no parseable records; such conversations produce no
// stats entry at all.
func (a *Aggregator) reduceConversation(ctx context.Context, entry *archive.Entry) (*convResult, error) {
	match := messagesFileRe.FindStringSubmatch(entry.Name())
	if match == nil {
		return nil, nil
	}
	channelID := types.ChannelID(match[1])

	kind, ok := a.channels.Kinds[channelID]
	if !ok {
		return nil, nil
	}

	text, err := a.archive.ReadText(entry)
	if err != nil {
		return nil, err
	}

	var records []messageRecord
	if err := json.Unmarshal([]byte(text), &records); err != nil {
		return nil, goerr.Wrap(err, "failed to parse message log", goerr.V("name", entry.Name()))
	}
	if len(records) == 0 {
		return nil, nil
	}

	messages := make([]timedMessage, 0, len(records))
	for _, rec := range records {
		at, valid := parseTimestamp(rec.Timestamp)
		messages = append(messages, timedMessage{at: at, valid: valid, contents: rec.Contents})
	}

	// Export order is not chronological; gap and streak computation need a
	// sorted sequential scan. The sort is stable so records with equal
	// timestamps keep their original order.
	sort.SliceStable(messages, func(i, j int) bool {
		return unixOrZero(messages[i]) < unixOrZero(messages[j])
	})

	res := &convResult{
		stats:           model.NewConversationStats(),
		words:           lexicon.NewWordFreq(),
		hourlySentiment: make(map[string]float64),
	}
	stats := res.stats

	dates := make(map[string]struct{})
	var firstDate string
	var sentimentSum float64
	var prevUnix int64
	havePrev := false

	for _, msg := range messages {
		if !msg.valid {
			continue
		}

		hour := fmt.Sprintf("%02d", msg.at.Hour())
		month := msg.at.Format("2006-01")
		stats.Hourly[hour]++
		stats.Monthly[month]++
		stats.MessageCount++

		now := msg.at.Unix()
		if havePrev {
			gap := now - prevUnix
			if gap > a.gapMin && gap < a.gapMax {
				stats.TotalGapTime += gap
				stats.NumGaps++
			}
		}
		prevUnix = now
		havePrev = true

		// Streak detection works on distinct UTC calendar dates
		date := msg.at.UTC().Format("2006-01-02")
		if _, ok := dates[date]; !ok {
			dates[date] = struct{}{}
			if firstDate == "" {
				firstDate = date
			}
		}

		if msg.contents != "" {
			score := a.scorer.Score(msg.contents)
			switch {
			case score > 0:
				stats.Sentiment.Positive++
			case score < 0:
				stats.Sentiment.Negative++
			default:
				stats.Sentiment.Neutral++
			}
			sentimentSum += float64(score)
			res.hourlySentiment[hour] += float64(score)

			res.words.AddAll(a.scorer.Tokenize(msg.contents))
		}
	}

	if stats.MessageCount == 0 {
		return nil, nil
	}

	stats.Sentiment.Average = sentimentSum / float64(stats.MessageCount)
	if stats.NumGaps > 0 {
		stats.AverageGap = float64(stats.TotalGapTime) / float64(stats.NumGaps)
	}
	stats.TopWords = res.words.Top(topWordCount)
	stats.Streak = longestStreak(dateList(dates))
	stats.FirstMessageDate = firstDate
	stats.DisplayName = a.resolveDisplayName(channelID, kind)

	if kind == types.KindDM {
		res.key = fmt.Sprintf("dm_%s", channelID)
		res.isDM = true
	} else {
		res.key = fmt.Sprintf("channel_%s", channelID)
	}

	return res, nil
}

// resolveDisplayName picks the conversation's display identity. For direct
// messages the non-self recipient is looked up in the directory, then in the
// raw users document, then given a literal unknown placeholder.
func (a *Aggregator) resolveDisplayName(channelID types.ChannelID, kind types.ConversationKind) string {
	if kind != types.KindDM {
		if name, ok := a.channels.Names[channelID]; ok && name != "" {
			return name
		}
		if kind == types.KindGroupDM {
			return fmt.Sprintf("Group DM (%s)", channelID)
		}
		return fmt.Sprintf("Unnamed Channel (%s)", channelID)
	}

	recipient := types.UserID("unknown")
	for _, r := range a.channels.Recipients[channelID] {
		if r != a.selfID {
			recipient = r
			break
		}
	}

	if ref, ok := a.users[recipient]; ok && ref.Username != "" {
		return ref.Username
	}
	if a.lookup != nil {
		if ref := a.lookup(recipient); ref != nil && ref.Username != "" {
			return ref.Username
		}
	}
	return fmt.Sprintf("Unknown (%s)", recipient)
}

func dateList(set map[string]struct{}) []string {
	dates := make([]string, 0, len(set))
	for d := range set {
		dates = append(dates, d)
	}
	return dates
}

func unixOrZero(m timedMessage) int64 {
	if !m.valid {
		return 0
	}
	return m.at.Unix()
}
