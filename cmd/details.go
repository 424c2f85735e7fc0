package cmd

import (
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/spf13/cobra"

	"github.com/s0up4200/tmdb-go/tmdb"
)

var (
	withCredits bool
	seasonNum   int
	castLimit   int
)

var movieCmd = &cobra.Command{
	Use:   "movie <id>",
	Short: "Show details for a movie",
	Args:  cobra.ExactArgs(1),
	RunE:  runMovie,
}

var tvCmd = &cobra.Command{
	Use:   "tv <id>",
	Short: "Show details for a TV show or one of its seasons",
	Args:  cobra.ExactArgs(1),
	RunE:  runTV,
}

var personCmd = &cobra.Command{
	Use:   "person <id>",
	Short: "Show details for a person",
	Args:  cobra.ExactArgs(1),
	RunE:  runPerson,
}

func init() {
	rootCmd.AddCommand(movieCmd, tvCmd, personCmd)

	for _, c := range []*cobra.Command{movieCmd, tvCmd} {
		c.Flags().BoolVar(&withCredits, "credits", false, "include the cast")
		c.Flags().IntVar(&castLimit, "cast", 10, "number of cast members to show")
	}
	tvCmd.Flags().IntVar(&seasonNum, "season", -1, "show a single season (0 for specials)")
}

func parseID(arg string) (int, error) {
	id, err := strconv.Atoi(arg)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("invalid id %q: must be a positive number", arg)
	}
	return id, nil
}

type movieOutput struct {
	*tmdb.MovieDetails
	Credits *tmdb.Credits `json:"credits,omitempty"`
}

func runMovie(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	movie, err := client.Movies.Details(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get movie %d: %w", id, err)
	}
	out := movieOutput{MovieDetails: movie}
	if withCredits {
		if out.Credits, err = client.Movies.Credits(ctx, id); err != nil {
			return fmt.Errorf("failed to get credits for movie %d: %w", id, err)
		}
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, out, func(w io.Writer) error {
		heading(w, fmt.Sprintf("%s (%d)", movie.Title, movie.ID))
		if movie.Tagline != "" {
			fmt.Fprintf(w, "%q\n\n", movie.Tagline)
		}
		field(w, "Original", originalIfDifferent(movie.Title, movie.OriginalTitle))
		field(w, "Released", movie.ReleaseDate)
		field(w, "Status", movie.Status)
		field(w, "Runtime", minutes(movie.Runtime))
		field(w, "Genres", genreNames(movie.Genres))
		field(w, "Rating", rating(movie.VoteAverage, movie.VoteCount))
		field(w, "Budget", money(movie.Budget))
		field(w, "Revenue", money(movie.Revenue))
		field(w, "IMDb", movie.IMDbID)
		if movie.BelongsToCollection != nil {
			field(w, "Collection", movie.BelongsToCollection.Name)
		}
		field(w, "Poster", tmdb.PosterURL(movie.PosterPath, "w500"))
		overview(w, movie.Overview)
		printCast(w, out.Credits)
		return nil
	})
}

type tvOutput struct {
	*tmdb.TVShowDetails
	Credits *tmdb.Credits `json:"credits,omitempty"`
}

func runTV(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}
	ctx := cmd.Context()

	if cmd.Flags().Changed("season") {
		return runSeason(cmd, id, seasonNum)
	}

	show, err := client.TV.Details(ctx, id)
	if err != nil {
		return fmt.Errorf("failed to get show %d: %w", id, err)
	}
	out := tvOutput{TVShowDetails: show}
	if withCredits {
		if out.Credits, err = client.TV.Credits(ctx, id); err != nil {
			return fmt.Errorf("failed to get credits for show %d: %w", id, err)
		}
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, out, func(w io.Writer) error {
		heading(w, fmt.Sprintf("%s (%d)", show.Name, show.ID))
		field(w, "Original", originalIfDifferent(show.Name, show.OriginalName))
		field(w, "First aired", show.FirstAirDate)
		field(w, "Last aired", show.LastAirDate)
		field(w, "Status", show.Status)
		field(w, "Seasons", show.NumberOfSeasons)
		field(w, "Episodes", show.NumberOfEpisodes)
		field(w, "Genres", genreNames(show.Genres))
		field(w, "Rating", rating(show.VoteAverage, show.VoteCount))
		networks := make([]string, len(show.Networks))
		for i, n := range show.Networks {
			networks[i] = n.Name
		}
		field(w, "Networks", strings.Join(networks, ", "))
		if ep := show.NextEpisodeToAir; ep != nil {
			field(w, "Next episode", fmt.Sprintf("S%02dE%02d %s (%s)", ep.SeasonNumber, ep.EpisodeNumber, ep.Name, ep.AirDate))
		}
		field(w, "Poster", tmdb.PosterURL(show.PosterPath, "w500"))
		overview(w, show.Overview)
		printCast(w, out.Credits)
		return nil
	})
}

func runSeason(cmd *cobra.Command, showID, number int) error {
	season, err := client.TV.Season(cmd.Context(), showID, number)
	if err != nil {
		return fmt.Errorf("failed to get season %d of show %d: %w", number, showID, err)
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, season, func(w io.Writer) error {
		heading(w, fmt.Sprintf("%s (%d episodes)", season.Name, len(season.Episodes)))
		field(w, "Aired", season.AirDate)
		overview(w, season.Overview)
		for _, ep := range season.Episodes {
			fmt.Fprintf(w, "  E%02d  %-50s %s\n", ep.EpisodeNumber, truncate(ep.Name, 50), ep.AirDate)
		}
		return nil
	})
}

func runPerson(cmd *cobra.Command, args []string) error {
	id, err := parseID(args[0])
	if err != nil {
		return err
	}

	person, err := client.People.Details(cmd.Context(), id)
	if err != nil {
		return fmt.Errorf("failed to get person %d: %w", id, err)
	}

	return render(cmd.OutOrStdout(), cfg.Output.Format, person, func(w io.Writer) error {
		heading(w, fmt.Sprintf("%s (%d)", person.Name, person.ID))
		field(w, "Known for", person.KnownForDepartment)
		field(w, "Born", strings.TrimSpace(person.Birthday+" "+person.PlaceOfBirth))
		field(w, "Died", person.Deathday)
		field(w, "IMDb", person.IMDbID)
		field(w, "Profile", tmdb.ProfileURL(person.ProfilePath, "h632"))
		overview(w, person.Biography)
		return nil
	})
}

func printCast(w io.Writer, credits *tmdb.Credits) {
	if credits == nil || len(credits.Cast) == 0 {
		return
	}
	fmt.Fprintln(w, "\nCast:")
	for i, member := range credits.Cast {
		if i >= castLimit {
			fmt.Fprintf(w, "  ... and %d more\n", len(credits.Cast)-castLimit)
			break
		}
		fmt.Fprintf(w, "  • %-30s %s\n", member.Name, member.Character)
	}
}

func overview(w io.Writer, text string) {
	if text != "" {
		fmt.Fprintf(w, "\n%s\n", text)
	}
}

func originalIfDifferent(title, original string) string {
	if original == title {
		return ""
	}
	return original
}

func genreNames(genres []tmdb.Genre) string {
	names := make([]string, len(genres))
	for i, g := range genres {
		names[i] = g.Name
	}
	return strings.Join(names, ", ")
}

func rating(average float64, votes int) string {
	if votes == 0 {
		return ""
	}
	return fmt.Sprintf("%.1f/10 (%d votes)", average, votes)
}

func minutes(n int) string {
	if n == 0 {
		return ""
	}
	return fmt.Sprintf("%dh %02dm", n/60, n%60)
}

func money(n int64) string {
	if n == 0 {
		return ""
	}
	s := strconv.FormatInt(n, 10)
	var b strings.Builder
	for i, r := range s {
		if i > 0 && (len(s)-i)%3 == 0 {
			b.WriteByte(',')
		}
		b.WriteRune(r)
	}
	return "$" + b.String()
}
