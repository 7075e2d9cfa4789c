package usecase

import (
	"github.com/packstat/packstat/pkg/service/activity"
	"github.com/packstat/packstat/pkg/service/aggregate"
	"github.com/packstat/packstat/pkg/service/lexicon"
)

// UseCase bundles the analysis pipeline's configuration
type UseCase struct {
	scorer        *lexicon.Scorer
	chunkSize     int
	workers       int
	gapMinSeconds int64
	gapMaxSeconds int64
}

// Option configures a UseCase
type Option func(*UseCase)

// WithScorer replaces the default lexicon scorer
func WithScorer(s *lexicon.Scorer) Option {
	return func(uc *UseCase) {
		uc.scorer = s
	}
}

// WithChunkSize sets the activity scanner chunk size
func WithChunkSize(n int) Option {
	return func(uc *UseCase) {
		if n > 0 {
			uc.chunkSize = n
		}
	}
}

// WithWorkers sets the per-conversation worker count
func WithWorkers(n int) Option {
	return func(uc *UseCase) {
		if n > 0 {
			uc.workers = n
		}
	}
}

// WithGapWindow sets the inter-message gap window in seconds
func WithGapWindow(minSec, maxSec int64) Option {
	return func(uc *UseCase) {
		uc.gapMinSeconds = minSec
		uc.gapMaxSeconds = maxSec
	}
}

// New creates a UseCase with default settings
func New(opts ...Option) *UseCase {
	uc := &UseCase{
		scorer:        lexicon.New(),
		chunkSize:     activity.DefaultChunkSize,
		gapMinSeconds: aggregate.DefaultGapMinSeconds,
		gapMaxSeconds: aggregate.DefaultGapMaxSeconds,
	}
	for _, opt := range opts {
		opt(uc)
	}
	return uc
}
