package cmd

import (
	"context"
	"fmt"
	"io"
	"slices"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb-go/filter"
	"github.com/s0up4200/tmdb-go/tmdb"
)

var (
	filterExpr   string
	pageFlag     int
	yearFlag     int
	searchType   string
	trendingType string
	windowFlag   string
	popularType  string
	genresType   string
)

var searchCmd = &cobra.Command{
	Use:   "search <query>",
	Short: "Search movies, shows and people",
	Args:  cobra.MinimumNArgs(1),
	RunE:  runSearch,
}

var trendingCmd = &cobra.Command{
	Use:   "trending",
	Short: "List what is trending today or this week",
	Args:  cobra.NoArgs,
	RunE:  runTrending,
}

var popularCmd = &cobra.Command{
	Use:   "popular",
	Short: "List popular movies, shows or people",
	Args:  cobra.NoArgs,
	RunE:  runPopular,
}

var genresCmd = &cobra.Command{
	Use:   "genres",
	Short: "List the official movie and TV genres",
	Args:  cobra.NoArgs,
	RunE:  runGenres,
}

func init() {
	rootCmd.AddCommand(searchCmd, trendingCmd, popularCmd, genresCmd)

	for _, c := range []*cobra.Command{searchCmd, trendingCmd, popularCmd} {
		c.Flags().StringVarP(&filterExpr, "filter", "f", "", "filter expression or name of a filter from the config")
		c.Flags().IntVarP(&pageFlag, "page", "p", 1, "result page")
	}

	searchCmd.Flags().StringVarP(&searchType, "type", "t", "multi", "what to search: movie, tv, person or multi")
	searchCmd.Flags().IntVar(&yearFlag, "year", 0, "release or first air year")

	trendingCmd.Flags().StringVarP(&trendingType, "type", "t", "all", "media type: all, movie, tv or person")
	trendingCmd.Flags().StringVarP(&windowFlag, "window", "w", "day", "time window: day or week")

	popularCmd.Flags().StringVarP(&popularType, "type", "t", "movie", "media type: movie, tv or person")

	genresCmd.Flags().StringVarP(&genresType, "type", "t", "", "only list movie or tv genres")
}

func runSearch(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	query := strings.Join(args, " ")
	opts := tmdb.SearchOptions{
		Page:         pageFlag,
		IncludeAdult: tmdb.Bool(cfg.TMDB.IncludeAdult),
		Region:       cfg.TMDB.Region,
	}

	var (
		candidates []filter.Candidate
		total      int
	)

	logger.Debug().Str("query", query).Str("type", searchType).Msg("Searching")

	switch tmdb.MediaType(searchType) {
	case tmdb.MediaMovie:
		opts.Year = yearFlag
		res, err := client.Search.Movies(ctx, query, opts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		candidates, total = movieCandidates(res.Results), res.TotalResults
	case tmdb.MediaTV:
		opts.FirstAirDateYear = yearFlag
		res, err := client.Search.TV(ctx, query, opts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		candidates, total = tvCandidates(res.Results), res.TotalResults
	case tmdb.MediaPerson:
		res, err := client.Search.People(ctx, query, opts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		candidates, total = personCandidates(res.Results), res.TotalResults
	case "multi":
		res, err := client.Search.Multi(ctx, query, opts)
		if err != nil {
			return fmt.Errorf("search failed: %w", err)
		}
		candidates, total = multiCandidates(res.Results, ""), res.TotalResults
	default:
		return fmt.Errorf("invalid type %q (must be movie, tv, person or multi)", searchType)
	}

	return renderCandidates(cmd, candidates, total)
}

func runTrending(cmd *cobra.Command, args []string) error {
	mediaType := tmdb.MediaType(trendingType)
	res, err := client.Trending.All(cmd.Context(), mediaType, tmdb.TimeWindow(windowFlag), pageFlag)
	if err != nil {
		return fmt.Errorf("failed to get trending %s: %w", trendingType, err)
	}
	return renderCandidates(cmd, multiCandidates(res.Results, mediaType), res.TotalResults)
}

func runPopular(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()

	var (
		candidates []filter.Candidate
		total      int
	)

	switch tmdb.MediaType(popularType) {
	case tmdb.MediaMovie:
		res, err := client.Movies.Popular(ctx, pageFlag)
		if err != nil {
			return fmt.Errorf("failed to get popular movies: %w", err)
		}
		candidates, total = movieCandidates(res.Results), res.TotalResults
	case tmdb.MediaTV:
		res, err := client.TV.Popular(ctx, pageFlag)
		if err != nil {
			return fmt.Errorf("failed to get popular shows: %w", err)
		}
		candidates, total = tvCandidates(res.Results), res.TotalResults
	case tmdb.MediaPerson:
		res, err := client.People.Popular(ctx, pageFlag)
		if err != nil {
			return fmt.Errorf("failed to get popular people: %w", err)
		}
		candidates, total = personCandidates(res.Results), res.TotalResults
	default:
		return fmt.Errorf("invalid type %q (must be movie, tv or person)", popularType)
	}

	return renderCandidates(cmd, candidates, total)
}

type genreRow struct {
	ID        int            `json:"id"`
	Name      string         `json:"name"`
	MediaType tmdb.MediaType `json:"media_type"`
}

func runGenres(cmd *cobra.Command, args []string) error {
	ctx := cmd.Context()
	var rows []genreRow

	if genresType == "" || genresType == string(tmdb.MediaMovie) {
		list, err := client.Configuration.MovieGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to get movie genres: %w", err)
		}
		for _, g := range list.Genres {
			rows = append(rows, genreRow{ID: g.ID, Name: g.Name, MediaType: tmdb.MediaMovie})
		}
	}
	if genresType == "" || genresType == string(tmdb.MediaTV) {
		list, err := client.Configuration.TVGenres(ctx)
		if err != nil {
			return fmt.Errorf("failed to get TV genres: %w", err)
		}
		for _, g := range list.Genres {
			rows = append(rows, genreRow{ID: g.ID, Name: g.Name, MediaType: tmdb.MediaTV})
		}
	}
	if rows == nil && genresType != "" {
		return fmt.Errorf("invalid type %q (must be movie or tv)", genresType)
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, rows, func(w io.Writer) error {
		fmt.Fprintf(w, "%-8s %-6s %s\n", "ID", "TYPE", "NAME")
		fmt.Fprintln(w, strings.Repeat("━", 40))
		for _, r := range rows {
			fmt.Fprintf(w, "%-8d %-6s %s\n", r.ID, r.MediaType, r.Name)
		}
		return nil
	})
}

// renderCandidates applies --filter and prints what is left
func renderCandidates(cmd *cobra.Command, candidates []filter.Candidate, total int) error {
	matches, err := applyFilter(cmd.Context(), candidates)
	if err != nil {
		return err
	}
	if filterExpr != "" {
		logger.Debug().Str("filter", filterExpr).Int("candidates", len(candidates)).Int("matches", len(matches)).Msg("Filter applied")
		total = len(matches)
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, sources(matches), func(w io.Writer) error {
		return printCandidates(w, matches, total)
	})
}

func applyFilter(ctx context.Context, candidates []filter.Candidate) ([]filter.Candidate, error) {
	if filterExpr == "" {
		return candidates, nil
	}

	names, err := genreLookup(ctx)
	if err != nil {
		// Genre names are a convenience; ID based filters still work
		logger.Warn().Err(err).Msg("Could not load genre names")
	}
	for i := range candidates {
		candidates[i] = candidates[i].WithGenreNames(names)
	}

	matches, err := filters.Apply(ctx, filterExpr, candidates)
	if err != nil {
		return nil, fmt.Errorf("invalid filter: %w", err)
	}
	return matches, nil
}

// genreLookup merges the movie and TV genre lists into one ID to name map
func genreLookup(ctx context.Context) (map[int]string, error) {
	names := make(map[int]string)
	movie, err := client.Configuration.MovieGenres(ctx)
	if err != nil {
		return names, err
	}
	tv, err := client.Configuration.TVGenres(ctx)
	if err != nil {
		return names, err
	}
	for _, g := range slices.Concat(movie.Genres, tv.Genres) {
		names[g.ID] = g.Name
	}
	return names, nil
}

func movieCandidates(results []tmdb.MovieListResult) []filter.Candidate {
	out := make([]filter.Candidate, len(results))
	for i, r := range results {
		out[i] = filter.FromMovie(r)
	}
	return out
}

func tvCandidates(results []tmdb.TVShowListResult) []filter.Candidate {
	out := make([]filter.Candidate, len(results))
	for i, r := range results {
		out[i] = filter.FromTV(r)
	}
	return out
}

func personCandidates(results []tmdb.PersonListResult) []filter.Candidate {
	out := make([]filter.Candidate, len(results))
	for i, r := range results {
		out[i] = filter.FromPerson(r)
	}
	return out
}

// multiCandidates converts mixed results. Entries from single-type
// endpoints may omit media_type, in which case fallback is used.
func multiCandidates(results []tmdb.MultiResult, fallback tmdb.MediaType) []filter.Candidate {
	out := make([]filter.Candidate, len(results))
	for i, r := range results {
		if r.MediaType == "" && fallback != tmdb.MediaAll {
			r.MediaType = fallback
		}
		out[i] = filter.FromMulti(r)
	}
	return out
}
