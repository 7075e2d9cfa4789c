package activity

import (
	"bytes"
	"context"
	"io"
	"regexp"

	"github.com/m-mizutani/goerr/v2"
	"github.com/packstat/packstat/pkg/domain/model"
	"github.com/packstat/packstat/pkg/domain/types"
	"github.com/packstat/packstat/pkg/service/archive"
	"github.com/packstat/packstat/pkg/utils/logging"
	"github.com/packstat/packstat/pkg/utils/safe"
	"golang.org/x/sync/errgroup"
)

// DefaultChunkSize is the read size for streaming the activity log
const DefaultChunkSize = 1 << 20

// Lines shorter than this are noise (empty records, stray brackets) and are
// skipped before any pattern matching.
const minLineLength = 10

// chunkQueueDepth bounds the chunk channel between the reader and the
// counting goroutine
const chunkQueueDepth = 4

// The activity log lives under one of two known paths depending on export
// vintage
var (
	analyticsFileRe = regexp.MustCompile(`(?i)Activity/Analytics/[^/]+\.json$`)
	activityFileRe  = regexp.MustCompile(`(?i)^Account/activity\.json$`)
)

// Scanner streams the append-only activity log in fixed-size chunks and
// counts the six behavioral event categories. The whole file is never held
// in memory.
type Scanner struct {
	chunkSize int
}

// Option configures a Scanner
type Option func(*Scanner)

// WithChunkSize overrides the streaming chunk size
func WithChunkSize(n int) Option {
	return func(s *Scanner) {
		if n > 0 {
			s.chunkSize = n
		}
	}
}

// NewScanner creates a Scanner
func NewScanner(opts ...Option) *Scanner {
	s := &Scanner{chunkSize: DefaultChunkSize}
	for _, opt := range opts {
		opt(s)
	}
	return s
}

// Scan locates the activity log in the archive and streams it. If the
// archive has no recognizable activity log the result is all-zero counters,
// not an error. onProgress receives 0..100 as bytes consumed over the
// entry's declared size.
func (s *Scanner) Scan(ctx context.Context, ar *archive.Archive, onProgress func(float64)) (model.ActivityStats, error) {
	entry := ar.First(analyticsFileRe)
	if entry == nil {
		entry = ar.First(activityFileRe)
	}
	if entry == nil {
		logging.From(ctx).Info("no activity log found in archive")
		if onProgress != nil {
			onProgress(100)
		}
		return model.ActivityStats{}, nil
	}

	rc, err := ar.Open(entry)
	if err != nil {
		return model.ActivityStats{}, goerr.Wrap(err, "failed to open activity log")
	}
	defer safe.Close(ctx, rc)

	stats, err := s.scanStream(ctx, rc, entry.Size(), onProgress)
	if err != nil {
		return model.ActivityStats{}, goerr.Wrap(err, "failed to scan activity log",
			goerr.V("name", entry.Name()), goerr.V("size", entry.Size()))
	}
	return stats, nil
}

// scanStream reads fixed-size chunks in one goroutine and counts lines in
// another. Chunks are handed over a bounded channel, ownership transfers
// with them: the reader allocates a fresh buffer per chunk and never touches
// it again.
func (s *Scanner) scanStream(ctx context.Context, r io.Reader, totalSize int64, onProgress func(float64)) (model.ActivityStats, error) {
	chunks := make(chan []byte, chunkQueueDepth)
	counter := newLineCounter()

	eg, ctx := errgroup.WithContext(ctx)

	eg.Go(func() error {
		defer close(chunks)
		for {
			buf := make([]byte, s.chunkSize)
			n, err := r.Read(buf)
			if n > 0 {
				select {
				case chunks <- buf[:n]:
				case <-ctx.Done():
					return ctx.Err()
				}
			}
			if err == io.EOF {
				return nil
			}
			if err != nil {
				return goerr.Wrap(err, "failed to read activity log chunk")
			}
		}
	})

	eg.Go(func() error {
		var consumed int64
		for {
			select {
			case chunk, ok := <-chunks:
				if !ok {
					counter.flush()
					if onProgress != nil {
						onProgress(100)
					}
					return nil
				}
				counter.feed(chunk)
				consumed += int64(len(chunk))
				if onProgress != nil && totalSize > 0 {
					onProgress(min(100, float64(consumed)/float64(totalSize)*100))
				}
			case <-ctx.Done():
				return ctx.Err()
			}
		}
	})

	if err := eg.Wait(); err != nil {
		return model.ActivityStats{}, err
	}
	return counter.stats, nil
}

// lineCounter reassembles complete lines from arbitrary chunk boundaries.
// The carry is kept as raw bytes, never decoded text, so a multi-byte
// character split across a chunk boundary survives intact.
type lineCounter struct {
	leftover []byte
	stats    model.ActivityStats
}

func newLineCounter() *lineCounter {
	return &lineCounter{}
}

func (c *lineCounter) feed(chunk []byte) {
	combined := append(c.leftover, chunk...)

	idx := bytes.LastIndexByte(combined, '\n')
	if idx < 0 {
		c.leftover = combined
		return
	}

	for _, line := range bytes.Split(combined[:idx], []byte{'\n'}) {
		c.countLine(line)
	}

	// Copy the remainder: combined aliases the old leftover's backing array
	// and the next append must not clobber it
	c.leftover = append([]byte(nil), combined[idx+1:]...)
}

// flush processes the final fragment after the stream closes
func (c *lineCounter) flush() {
	if len(c.leftover) > 0 {
		c.countLine(c.leftover)
		c.leftover = nil
	}
}

// countLine tests the line against the fixed category patterns in priority
// order; the first match increments exactly one counter.
func (c *lineCounter) countLine(line []byte) {
	if len(line) < minLineLength {
		return
	}
	for _, cat := range types.AllEventCategories() {
		if bytes.Contains(line, []byte(cat.Pattern())) {
			c.stats.Inc(cat)
			return
		}
	}
}
