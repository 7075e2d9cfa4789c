package lexicon

import (
	"sort"
	"strings"
)

// Scorer tokenizes message text and scores it against a fixed valence
// lexicon. It is stateless and safe for concurrent use.
type Scorer struct {
	weights map[string]int
	stop    map[string]struct{}
}

// Option configures a Scorer
type Option func(*Scorer)

// WithStopWords adds extra stop words on top of the default set
func WithStopWords(words ...string) Option {
	return func(s *Scorer) {
		for _, w := range words {
			s.stop[strings.ToLower(w)] = struct{}{}
		}
	}
}

// New creates a Scorer with the built-in lexicon and stop words
func New(opts ...Option) *Scorer {
	s := &Scorer{
		weights: afinnWeights,
		stop:    make(map[string]struct{}, len(defaultStopWords)),
	}
	for _, w := range defaultStopWords {
		s.stop[w] = struct{}{}
	}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// normalize lower-cases the text and strips every character that is not a
// lowercase letter, digit, or whitespace
func normalize(text string) string {
	var b strings.Builder
	b.Grow(len(text))
	for _, r := range strings.ToLower(text) {
		switch {
		case r >= 'a' && r <= 'z', r >= '0' && r <= '9', r == ' ', r == '\t', r == '\n', r == '\r':
			b.WriteRune(r)
		}
	}
	return b.String()
}

// Tokenize splits message text into lower-cased, stripped, stop-word-filtered
// tokens for frequency counting
func (s *Scorer) Tokenize(text string) []string {
	fields := strings.Fields(normalize(text))
	tokens := fields[:0]
	for _, w := range fields {
		if _, ok := s.stop[w]; ok {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// Score returns the summed lexicon weight over all tokens of the text.
// Stop words are not excluded from scoring: the valence lexicon and the
// frequency stop list are independent concerns.
func (s *Scorer) Score(text string) int {
	var total int
	for _, w := range strings.Fields(normalize(text)) {
		total += s.weights[w]
	}
	return total
}

// WordFreq counts word occurrences while remembering first-seen order, so
// that ranking ties break deterministically in favor of the earlier word.
type WordFreq struct {
	counts map[string]int
	order  map[string]int
	next   int
}

// NewWordFreq creates an empty WordFreq
func NewWordFreq() *WordFreq {
	return &WordFreq{
		counts: make(map[string]int),
		order:  make(map[string]int),
	}
}

// Add counts one occurrence of the word
func (w *WordFreq) Add(word string) {
	if _, ok := w.order[word]; !ok {
		w.order[word] = w.next
		w.next++
	}
	w.counts[word]++
}

// AddAll counts one occurrence of every word in the slice
func (w *WordFreq) AddAll(words []string) {
	for _, word := range words {
		w.Add(word)
	}
}

// Merge folds another WordFreq into this one. Words unknown to the receiver
// are appended in the other's first-seen order, so merging in a fixed order
// keeps the tie-break deterministic.
func (w *WordFreq) Merge(other *WordFreq) {
	words := make([]string, 0, len(other.counts))
	for word := range other.counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		return other.order[words[i]] < other.order[words[j]]
	})

	for _, word := range words {
		if _, ok := w.order[word]; !ok {
			w.order[word] = w.next
			w.next++
		}
		w.counts[word] += other.counts[word]
	}
}

// Top returns the n most frequent words, descending by count. Equal counts
// keep the first-seen word first.
func (w *WordFreq) Top(n int) []string {
	words := make([]string, 0, len(w.counts))
	for word := range w.counts {
		words = append(words, word)
	}
	sort.Slice(words, func(i, j int) bool {
		if w.counts[words[i]] != w.counts[words[j]] {
			return w.counts[words[i]] > w.counts[words[j]]
		}
		return w.order[words[i]] < w.order[words[j]]
	})

	if len(words) > n {
		words = words[:n]
	}
	return words
}
