package filter

import "context"

// Filter decides whether a candidate is kept
type Filter interface {
	// Match reports whether the candidate satisfies the filter. Evaluation
	// errors count as no match.
	Match(c Candidate) bool
}

// CompiledFilter represents a pre-compiled filter ready for evaluation
type CompiledFilter interface {
	Filter

	// Run evaluates the filter and surfaces evaluation errors
	Run(c Candidate) (bool, error)

	// Expression returns the original filter expression
	Expression() string
}

// Compiler compiles filter expressions into executable filters
type Compiler interface {
	Compile(expression string) (CompiledFilter, error)
}

// CachingCompiler provides caching for compiled filters
type CachingCompiler interface {
	Compiler

	// Clear removes all cached filters
	Clear()

	// Size returns the number of cached filters
	Size() int
}

// BatchEvaluator evaluates several named filters against the same candidates
type BatchEvaluator interface {
	Evaluate(ctx context.Context, filter CompiledFilter, candidates []Candidate) ([]Candidate, error)
	EvaluateBatch(ctx context.Context, filters map[string]CompiledFilter, candidates []Candidate) (map[string][]Candidate, error)
}

// BatchResult represents the result of evaluating a filter
type BatchResult struct {
	FilterName string
	Matches    []Candidate
	Error      error
}
