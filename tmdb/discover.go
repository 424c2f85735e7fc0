package tmdb

import "context"

// DiscoverService handles the /discover endpoints
type DiscoverService service

// MovieDiscoverOptions filters /discover/movie. Zero values are not sent.
// Dates use the YYYY-MM-DD format.
type MovieDiscoverOptions struct {
	Page                  int
	SortBy                string
	IncludeAdult          *bool
	IncludeVideo          *bool
	PrimaryReleaseYear    int
	PrimaryReleaseDateGTE string
	PrimaryReleaseDateLTE string
	ReleaseDateGTE        string
	ReleaseDateLTE        string
	VoteCountGTE          int
	VoteAverageGTE        float64
	VoteAverageLTE        float64
	WithGenres            []int
	WithoutGenres         []int
	WithKeywords          []int
	Certification         string
	CertificationCountry  string
	CertificationGTE      string
	CertificationLTE      string
	WithOriginalLanguage  string
}

func (o MovieDiscoverOptions) params() paramBuilder {
	return pageParams(o.Page).
		setString("sort_by", o.SortBy).
		setBool("include_adult", o.IncludeAdult).
		setBool("include_video", o.IncludeVideo).
		setInt("primary_release_year", o.PrimaryReleaseYear).
		setString("primary_release_date.gte", o.PrimaryReleaseDateGTE).
		setString("primary_release_date.lte", o.PrimaryReleaseDateLTE).
		setString("release_date.gte", o.ReleaseDateGTE).
		setString("release_date.lte", o.ReleaseDateLTE).
		setInt("vote_count.gte", o.VoteCountGTE).
		setFloat("vote_average.gte", o.VoteAverageGTE).
		setFloat("vote_average.lte", o.VoteAverageLTE).
		setInts("with_genres", o.WithGenres).
		setInts("without_genres", o.WithoutGenres).
		setInts("with_keywords", o.WithKeywords).
		setString("certification", o.Certification).
		setString("certification_country", o.CertificationCountry).
		setString("certification.gte", o.CertificationGTE).
		setString("certification.lte", o.CertificationLTE).
		setString("with_original_language", o.WithOriginalLanguage)
}

// TVDiscoverOptions filters /discover/tv. Zero values are not sent.
type TVDiscoverOptions struct {
	Page                 int
	SortBy               string
	FirstAirDateYear     int
	FirstAirDateGTE      string
	FirstAirDateLTE      string
	VoteCountGTE         int
	VoteAverageGTE       float64
	WithNetworks         []int
	WithGenres           []int
	WithoutGenres        []int
	WithKeywords         []int
	WithRuntimeGTE       int
	WithRuntimeLTE       int
	WithOriginalLanguage string
}

func (o TVDiscoverOptions) params() paramBuilder {
	return pageParams(o.Page).
		setString("sort_by", o.SortBy).
		setInt("first_air_date_year", o.FirstAirDateYear).
		setString("first_air_date.gte", o.FirstAirDateGTE).
		setString("first_air_date.lte", o.FirstAirDateLTE).
		setInt("vote_count.gte", o.VoteCountGTE).
		setFloat("vote_average.gte", o.VoteAverageGTE).
		setInts("with_networks", o.WithNetworks).
		setInts("with_genres", o.WithGenres).
		setInts("without_genres", o.WithoutGenres).
		setInts("with_keywords", o.WithKeywords).
		setInt("with_runtime.gte", o.WithRuntimeGTE).
		setInt("with_runtime.lte", o.WithRuntimeLTE).
		setString("with_original_language", o.WithOriginalLanguage)
}

// Movies finds movies matching the given filters.
func (s *DiscoverService) Movies(ctx context.Context, do MovieDiscoverOptions, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	return get[PaginatedResponse[MovieListResult]](ctx, s.client, EndpointDiscoverMovie, do.params(), opts...)
}

// TV finds shows matching the given filters.
func (s *DiscoverService) TV(ctx context.Context, do TVDiscoverOptions, opts ...CallOption) (*PaginatedResponse[TVShowListResult], error) {
	return get[PaginatedResponse[TVShowListResult]](ctx, s.client, EndpointDiscoverTV, do.params(), opts...)
}
