package filter

import (
	"maps"
	"slices"
	"strings"
	"time"

	"github.com/benbjohnson/clock"
	"github.com/expr-lang/expr"
	"github.com/expr-lang/expr/vm"

	"github.com/s0up4200/tmdb-go/cache"
)

// compiledTTL bounds how long a compiled program stays in the compiler cache
const compiledTTL = time.Hour

// exprFilter implements CompiledFilter using the expr language
type exprFilter struct {
	expression string
	program    *vm.Program
	env        func(Candidate) map[string]any
}

// ExprCompilerOption configures an expr compiler
type ExprCompilerOption func(*exprCompiler)

// WithCache enables filter caching with the specified size
func WithCache(size int) ExprCompilerOption {
	return func(c *exprCompiler) {
		c.cacheSize = size
	}
}

// WithCustomFunctions adds custom helper functions
func WithCustomFunctions(funcs map[string]any) ExprCompilerOption {
	return func(c *exprCompiler) {
		maps.Copy(c.customFuncs, funcs)
	}
}

// WithClock sets the time source used by the date helpers
func WithClock(clk clock.Clock) ExprCompilerOption {
	return func(c *exprCompiler) {
		c.clock = clk
	}
}

// NewExprCompiler creates a new expr-based filter compiler
func NewExprCompiler(opts ...ExprCompilerOption) CachingCompiler {
	c := &exprCompiler{
		customFuncs: make(map[string]any),
		clock:       clock.New(),
	}

	for _, opt := range opts {
		opt(c)
	}

	if c.cacheSize > 0 {
		c.cache = cache.New[CompiledFilter](c.cacheSize, compiledTTL, cache.WithClock(c.clock))
	}

	return c
}

// exprCompiler implements CachingCompiler for expr-based filters
type exprCompiler struct {
	customFuncs map[string]any
	clock       clock.Clock
	cacheSize   int
	cache       *cache.Cache[CompiledFilter]
}

// Compile compiles an expression into an executable filter. Unknown
// identifiers are rejected here rather than at evaluation time.
func (c *exprCompiler) Compile(expression string) (CompiledFilter, error) {
	expression = strings.TrimSpace(expression)
	if expression == "" {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "empty expression",
		}
	}

	if c.cache != nil {
		if cached, ok := c.cache.Get(expression); ok {
			return cached, nil
		}
	}

	program, err := expr.Compile(expression,
		expr.Env(c.environment(Candidate{})),
		expr.AsBool(),
	)
	if err != nil {
		return nil, &CompilationError{
			Expression: expression,
			Reason:     "failed to compile expression",
			Err:        err,
		}
	}

	filter := &exprFilter{
		expression: expression,
		program:    program,
		env:        c.environment,
	}

	if c.cache != nil {
		c.cache.Set(expression, filter)
	}

	return filter, nil
}

// Clear removes all cached filters
func (c *exprCompiler) Clear() {
	if c.cache != nil {
		c.cache.Clear()
	}
}

// Size returns the number of cached filters
func (c *exprCompiler) Size() int {
	if c.cache != nil {
		return c.cache.Len()
	}
	return 0
}

// Match evaluates the filter, treating evaluation errors as no match
func (f *exprFilter) Match(c Candidate) bool {
	ok, err := f.Run(c)
	return err == nil && ok
}

// Run evaluates the filter against a candidate
func (f *exprFilter) Run(c Candidate) (bool, error) {
	result, err := expr.Run(f.program, f.env(c))
	if err != nil {
		return false, &EvaluationError{Expression: f.expression, Title: c.Title, Err: err}
	}
	// AsBool at compile time guarantees the type
	return result.(bool), nil
}

// Expression returns the original expression
func (f *exprFilter) Expression() string {
	return f.expression
}

// environment builds the variables and helpers visible to an expression
func (c *exprCompiler) environment(cand Candidate) map[string]any {
	env := make(map[string]any, 40)

	addHelperFunctions(env, c.clock)
	maps.Copy(env, c.customFuncs)

	env["hasGenre"] = createHasGenreFunc(cand.GenreIDs, cand.GenreNames)
	env["released"] = createReleasedFunc(cand.ReleaseDate, c.clock)

	env["ID"] = cand.ID
	env["MediaType"] = string(cand.MediaType)
	env["Title"] = cand.Title
	env["OriginalTitle"] = cand.OriginalTitle
	env["Overview"] = cand.Overview
	env["OriginalLanguage"] = cand.OriginalLanguage
	env["ReleaseDate"] = cand.ReleaseDate
	env["Year"] = cand.Year
	env["VoteAverage"] = cand.VoteAverage
	env["VoteCount"] = cand.VoteCount
	env["Popularity"] = cand.Popularity
	env["Adult"] = cand.Adult
	env["GenreIDs"] = cand.GenreIDs
	env["Genres"] = cand.GenreNames
	env["Department"] = cand.Department

	return env
}

// addHelperFunctions adds the date and string helpers to env
func addHelperFunctions(env map[string]any, clk clock.Clock) {
	// Date helpers
	env["daysSince"] = func(t time.Time) int {
		return int(clk.Since(t).Hours() / 24)
	}
	env["daysAgo"] = func(days int) time.Time {
		return clk.Now().AddDate(0, 0, -days)
	}
	env["monthsAgo"] = func(months int) time.Time {
		return clk.Now().AddDate(0, -months, 0)
	}
	env["yearsAgo"] = func(years int) time.Time {
		return clk.Now().AddDate(-years, 0, 0)
	}
	env["parseDate"] = func(dateStr string) time.Time {
		t, _ := time.Parse(DateLayout, dateStr)
		return t
	}
	// String helpers
	env["contains"] = func(str, substr string) bool {
		return strings.Contains(strings.ToLower(str), strings.ToLower(substr))
	}
	env["startsWith"] = func(str, prefix string) bool {
		return strings.HasPrefix(strings.ToLower(str), strings.ToLower(prefix))
	}
	env["endsWith"] = func(str, suffix string) bool {
		return strings.HasSuffix(strings.ToLower(str), strings.ToLower(suffix))
	}
	env["lower"] = strings.ToLower
	env["upper"] = strings.ToUpper
	env["now"] = clk.Now
}

// createHasGenreFunc matches a genre by numeric ID or, case-insensitively, by name
func createHasGenreFunc(ids []int, names []string) func(any) bool {
	lowerNames := make([]string, len(names))
	for i, name := range names {
		lowerNames[i] = strings.ToLower(name)
	}
	return func(genre any) bool {
		switch g := genre.(type) {
		case int:
			return slices.Contains(ids, g)
		case float64:
			return slices.Contains(ids, int(g))
		case string:
			return slices.Contains(lowerNames, strings.ToLower(g))
		default:
			return false
		}
	}
}

func createReleasedFunc(date time.Time, clk clock.Clock) func() bool {
	return func() bool {
		return !date.IsZero() && !date.After(clk.Now())
	}
}
