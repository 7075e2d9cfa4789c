package interfaces

// ProgressFunc receives pipeline progress. Percent is 0..100, monotonically
// non-decreasing across calls, and reaches exactly 100 when the pipeline
// completes. Stage is a short human-readable label of the running stage.
type ProgressFunc func(percent float64, stage string)
