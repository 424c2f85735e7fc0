package filter

import (
	"context"
	"runtime"
	"sync"

	"github.com/rs/zerolog"
	"golang.org/x/sync/errgroup"
)

// EvaluatorOption configures an evaluator
type EvaluatorOption func(*ConcurrentEvaluator)

// WithWorkers sets the number of worker goroutines
func WithWorkers(workers int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.workerCount = workers
	}
}

// WithBatchSize sets the batch size for chunked processing
func WithBatchSize(size int) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.batchSize = size
	}
}

// WithLogger sets the logger used to report evaluation errors
func WithLogger(logger zerolog.Logger) EvaluatorOption {
	return func(e *ConcurrentEvaluator) {
		e.logger = logger
	}
}

// ConcurrentEvaluator implements BatchEvaluator. Candidates that fail to
// evaluate are dropped and logged at debug level.
type ConcurrentEvaluator struct {
	workerCount int
	batchSize   int
	logger      zerolog.Logger
}

// NewConcurrentEvaluator creates a new concurrent evaluator
func NewConcurrentEvaluator(opts ...EvaluatorOption) *ConcurrentEvaluator {
	e := &ConcurrentEvaluator{
		workerCount: runtime.GOMAXPROCS(0),
		batchSize:   100,
		logger:      zerolog.Nop(),
	}

	for _, opt := range opts {
		opt(e)
	}

	if e.workerCount <= 0 {
		e.workerCount = 1
	}
	if e.batchSize <= 0 {
		e.batchSize = 1
	}

	return e
}

// Evaluate returns the candidates matching filter, in input order
func (e *ConcurrentEvaluator) Evaluate(ctx context.Context, filter CompiledFilter, candidates []Candidate) ([]Candidate, error) {
	if len(candidates) == 0 {
		return []Candidate{}, nil
	}

	// Small lists are not worth the goroutines
	if len(candidates) < e.batchSize {
		if err := ctx.Err(); err != nil {
			return nil, err
		}
		return e.evaluateSequential(filter, candidates), nil
	}

	return e.evaluateConcurrent(ctx, filter, candidates)
}

// EvaluateBatch evaluates multiple filters against the same candidates.
// Filters that fail are left out of the result.
func (e *ConcurrentEvaluator) EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, candidates []Candidate) (map[string][]Candidate, error) {
	results := make(map[string][]Candidate, len(filters))
	if len(filters) == 0 || len(candidates) == 0 {
		return results, nil
	}

	var mu sync.Mutex
	g := new(errgroup.Group)
	g.SetLimit(e.workerCount)

	for name, filter := range filters {
		g.Go(func() error {
			matches, err := e.Evaluate(ctx, filter, candidates)
			if err != nil {
				e.logger.Debug().Err(err).Str("filter", name).Msg("Filter evaluation aborted")
				return nil
			}
			mu.Lock()
			results[name] = matches
			mu.Unlock()
			return nil
		})
	}
	g.Wait()

	if err := ctx.Err(); err != nil {
		return nil, err
	}
	return results, nil
}

func (e *ConcurrentEvaluator) evaluateSequential(filter CompiledFilter, candidates []Candidate) []Candidate {
	matches := make([]Candidate, 0, len(candidates))
	for _, c := range candidates {
		if e.match(filter, c) {
			matches = append(matches, c)
		}
	}
	return matches
}

// evaluateConcurrent splits candidates into chunks evaluated in parallel
// and stitches the matches back together in order.
func (e *ConcurrentEvaluator) evaluateConcurrent(ctx context.Context, filter CompiledFilter, candidates []Candidate) ([]Candidate, error) {
	chunkSize := max(len(candidates)/e.workerCount, e.batchSize)
	chunks := make([][]Candidate, (len(candidates)+chunkSize-1)/chunkSize)

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(e.workerCount)

	for i := range chunks {
		start := i * chunkSize
		end := min(start+chunkSize, len(candidates))
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			chunks[i] = e.evaluateSequential(filter, candidates[start:end])
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return nil, err
	}

	total := 0
	for _, chunk := range chunks {
		total += len(chunk)
	}
	matches := make([]Candidate, 0, total)
	for _, chunk := range chunks {
		matches = append(matches, chunk...)
	}
	return matches, nil
}

func (e *ConcurrentEvaluator) match(filter CompiledFilter, c Candidate) bool {
	ok, err := filter.Run(c)
	if err != nil {
		e.logger.Debug().Err(err).Int("id", c.ID).Msg("Skipping candidate")
		return false
	}
	return ok
}
