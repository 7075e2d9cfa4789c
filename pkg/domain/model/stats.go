package model

// SentimentStats is the per-conversation sentiment distribution. Average is
// the mean lexicon score per message; the category fields count messages by
// score sign.
type SentimentStats struct {
	Average  float64 `json:"average"`
	Positive int     `json:"positive"`
	Negative int     `json:"negative"`
	Neutral  int     `json:"neutral"`
}

// Streak is the longest run of consecutive calendar dates with at least one
// message. Start and End are "YYYY-MM-DD" dates; a zero-length streak has
// empty boundaries.
type Streak struct {
	Length int    `json:"length"`
	Start  string `json:"start,omitempty"`
	End    string `json:"end,omitempty"`
}

// ConversationStats is the per-conversation reduction. One instance per
// conversation, never mutated after its message log is fully consumed.
//
// Hourly keys are fixed buckets "00".."23"; Monthly keys are open-ended
// "YYYY-MM". Gap fields only include gaps inside the configured window.
type ConversationStats struct {
	DisplayName      string         `json:"displayName" masq:"secret"`
	Hourly           map[string]int `json:"hourly"`
	Monthly          map[string]int `json:"monthly"`
	MessageCount     int            `json:"messageCount"`
	TotalGapTime     int64          `json:"totalGapTime"`
	NumGaps          int64          `json:"numGaps"`
	AverageGap       float64        `json:"averageGapBetweenMessages"`
	TopWords         []string       `json:"topWords,omitempty"`
	Sentiment        SentimentStats `json:"sentiment"`
	Streak           Streak         `json:"longestStreak"`
	FirstMessageDate string         `json:"firstMessageDate,omitempty"`
}

// NewConversationStats creates an empty ConversationStats
func NewConversationStats() *ConversationStats {
	return &ConversationStats{
		Hourly:  make(map[string]int),
		Monthly: make(map[string]int),
	}
}

// AggregateStats accumulates the same bucket semantics as ConversationStats
// across all conversations, plus an hourly sentiment-average histogram.
// Invariant: MessageCount equals the sum of all included conversations'
// message counts.
type AggregateStats struct {
	Hourly                 map[string]int     `json:"hourly"`
	Monthly                map[string]int     `json:"monthly"`
	MessageCount           int                `json:"messageCount"`
	TotalGapTime           int64              `json:"totalGapTime"`
	NumGaps                int64              `json:"numGaps"`
	AverageGap             float64            `json:"averageGapBetweenMessages"`
	TopWords               []string           `json:"topWords,omitempty"`
	HourlySentimentAverage map[string]float64 `json:"hourlySentimentAverage"`
}

// NewAggregateStats creates an empty AggregateStats
func NewAggregateStats() *AggregateStats {
	return &AggregateStats{
		Hourly:                 make(map[string]int),
		Monthly:                make(map[string]int),
		HourlySentimentAverage: make(map[string]float64),
	}
}
