package usecase

import (
	"math"
	"sync"

	"github.com/packstat/packstat/pkg/domain/interfaces"
)

// Two-stage progress weighting: aggregation occupies the first portion of
// the unified percentage, the activity log scan the rest. The stages run
// concurrently; the reporter clamps the merged value so callers always see a
// monotonically non-decreasing percentage.
const aggregateShare = 8.0

// Stage labels surfaced through the progress callback
const (
	StageAggregating = "aggregating messages"
	StageScanning    = "scanning activity log"
	StageComplete    = "complete"
)

type progressReporter struct {
	mu   sync.Mutex
	fn   interfaces.ProgressFunc
	last float64
}

func newProgressReporter(fn interfaces.ProgressFunc) *progressReporter {
	return &progressReporter{fn: fn}
}

func (r *progressReporter) report(percent float64, stage string) {
	if r.fn == nil {
		return
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if percent < r.last {
		return
	}
	r.last = percent
	r.fn(percent, stage)
}

// easeOut applies a perceptual easing curve so the short aggregation stage
// does not appear to stall at the start
func easeOut(percent float64) float64 {
	return math.Pow(percent/100, 0.6) * 100
}

// Aggregation maps aggregation-stage progress (0..100) into the first
// portion of the unified percentage, with easing
func (r *progressReporter) Aggregation(percent float64) {
	r.report(easeOut(percent)/100*aggregateShare, StageAggregating)
}

// Scan maps scan-stage progress (0..100) linearly into the remaining portion
func (r *progressReporter) Scan(percent float64) {
	r.report(aggregateShare+percent/100*(100-aggregateShare), StageScanning)
}

// Done reports the terminal 100 percent
func (r *progressReporter) Done() {
	r.report(100, StageComplete)
}
