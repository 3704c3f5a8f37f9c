package palindrome

import (
	"runtime"

	"github.com/aria-lang/biolib-go/internal/sequence"
	"go.uber.org/zap"
	"golang.org/x/sync/errgroup"
)

// DefaultBatchSize is the number of start positions handed to one worker.
const DefaultBatchSize = 100

// Scanner runs Find across several goroutines. Start positions are split
// into contiguous batches and the batch results are concatenated in batch
// order, so Scan returns exactly what Find returns.
type Scanner struct {
	workers   int
	batchSize int
	logger    *zap.Logger
}

// Option configures a Scanner.
type Option func(*Scanner)

// WithWorkers bounds the number of concurrent batches. Values below 1 are
// ignored.
func WithWorkers(n int) Option {
	return func(sc *Scanner) {
		if n >= 1 {
			sc.workers = n
		}
	}
}

// WithBatchSize sets the number of start positions per batch. Values below
// 1 are ignored.
func WithBatchSize(n int) Option {
	return func(sc *Scanner) {
		if n >= 1 {
			sc.batchSize = n
		}
	}
}

// WithLogger attaches a logger for batch planning at debug level.
func WithLogger(l *zap.Logger) Option {
	return func(sc *Scanner) {
		if l != nil {
			sc.logger = l
		}
	}
}

// NewScanner returns a Scanner using one worker per CPU by default.
func NewScanner(opts ...Option) *Scanner {
	sc := &Scanner{
		workers:   runtime.NumCPU(),
		batchSize: DefaultBatchSize,
		logger:    zap.NewNop(),
	}
	for _, opt := range opts {
		opt(sc)
	}
	return sc
}

// Workers returns the concurrency bound.
func (sc *Scanner) Workers() int { return sc.workers }

// BatchSize returns the number of start positions per batch.
func (sc *Scanner) BatchSize() int { return sc.batchSize }

// Scan returns the same matches as Find, in the same order.
func (sc *Scanner) Scan(s sequence.DNA) []Match {
	starts := startCount(s)
	batches := (starts + sc.batchSize - 1) / sc.batchSize

	if batches <= 1 || sc.workers == 1 {
		sc.logger.Debug("scanning serially",
			zap.Int("length", s.Len()),
			zap.Int("starts", starts))
		return scanRange(s, 0, starts)
	}

	sc.logger.Debug("scanning in batches",
		zap.Int("length", s.Len()),
		zap.Int("starts", starts),
		zap.Int("batches", batches),
		zap.Int("batch_size", sc.batchSize),
		zap.Int("workers", sc.workers))

	results := make([][]Match, batches)
	var g errgroup.Group
	g.SetLimit(sc.workers)
	for b := 0; b < batches; b++ {
		from := b * sc.batchSize
		to := min(from+sc.batchSize, starts)
		g.Go(func() error {
			results[b] = scanRange(s, from, to)
			return nil
		})
	}
	// Batches never fail; Wait only joins the workers.
	_ = g.Wait()

	total := 0
	for _, r := range results {
		total += len(r)
	}
	matches := make([]Match, 0, total)
	for _, r := range results {
		matches = append(matches, r...)
	}
	return matches
}
