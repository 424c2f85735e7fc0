package tmdb

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSearch_Movies(t *testing.T) {
	rec := newRecorder()
	rec.handle("/search/movie", http.StatusOK, PaginatedResponse[MovieListResult]{
		Page:    1,
		Results: []MovieListResult{{ID: 348, Title: "Alien"}},
	})
	client := newTestClient(t, rec)

	res, err := client.Search.Movies(context.Background(), "  alien ", SearchOptions{
		Page:               2,
		IncludeAdult:       Bool(false),
		Region:             "US",
		Year:               1979,
		PrimaryReleaseYear: 1979,
		FirstAirDateYear:   2000,
	})
	require.NoError(t, err)
	assert.Equal(t, "Alien", res.Results[0].Title)

	q := rec.last().URL.Query()
	assert.Equal(t, "alien", q.Get("query"))
	assert.Equal(t, "2", q.Get("page"))
	assert.Equal(t, "false", q.Get("include_adult"))
	assert.Equal(t, "US", q.Get("region"))
	assert.Equal(t, "1979", q.Get("year"))
	assert.Equal(t, "1979", q.Get("primary_release_year"))
	assert.False(t, q.Has("first_air_date_year"), "tv-only filter is not sent")
}

func TestSearch_TVPeopleMulti(t *testing.T) {
	rec := newRecorder()
	rec.handle("/search/tv", http.StatusOK, PaginatedResponse[TVShowListResult]{Results: []TVShowListResult{{ID: 1396, Name: "Breaking Bad"}}})
	rec.handle("/search/person", http.StatusOK, PaginatedResponse[PersonListResult]{Results: []PersonListResult{{ID: 17419, Name: "Bryan Cranston"}}})
	rec.handle("/search/multi", http.StatusOK, map[string]any{
		"page": 1,
		"results": []map[string]any{
			{"id": 1396, "media_type": "tv", "name": "Breaking Bad", "first_air_date": "2008-01-20"},
			{"id": 17419, "media_type": "person", "name": "Bryan Cranston"},
			{"id": 550, "media_type": "movie", "title": "Fight Club", "release_date": "1999-10-15"},
		},
	})
	client := newTestClient(t, rec)
	ctx := context.Background()

	shows, err := client.Search.TV(ctx, "breaking bad", SearchOptions{FirstAirDateYear: 2008})
	require.NoError(t, err)
	assert.Equal(t, "Breaking Bad", shows.Results[0].Name)
	assert.Equal(t, "2008", rec.last().URL.Query().Get("first_air_date_year"))

	people, err := client.Search.People(ctx, "cranston", SearchOptions{})
	require.NoError(t, err)
	assert.Equal(t, 17419, people.Results[0].ID)
	assert.False(t, rec.last().URL.Query().Has("include_adult"))

	multi, err := client.Search.Multi(ctx, "breaking", SearchOptions{})
	require.NoError(t, err)
	require.Len(t, multi.Results, 3)
	assert.Equal(t, MediaTV, multi.Results[0].MediaType)
	assert.Equal(t, "Breaking Bad", multi.Results[0].DisplayTitle())
	assert.Equal(t, "2008-01-20", multi.Results[0].Date())
	assert.Equal(t, MediaPerson, multi.Results[1].MediaType)
	assert.Equal(t, "Fight Club", multi.Results[2].DisplayTitle())
	assert.Equal(t, "1999-10-15", multi.Results[2].Date())
}

func TestSearch_EmptyQuery(t *testing.T) {
	rec := newRecorder()
	client := newTestClient(t, rec)

	for _, q := range []string{"", "   "} {
		_, err := client.Search.Movies(context.Background(), q, SearchOptions{})
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
	assert.Nil(t, rec.last())
}

func TestDiscover_Movies(t *testing.T) {
	rec := newRecorder()
	rec.handle("/discover/movie", http.StatusOK, PaginatedResponse[MovieListResult]{Results: []MovieListResult{{ID: 1}}})
	client := newTestClient(t, rec)

	_, err := client.Discover.Movies(context.Background(), MovieDiscoverOptions{
		Page:                  1,
		SortBy:                "popularity.desc",
		IncludeVideo:          Bool(false),
		PrimaryReleaseDateGTE: "2020-01-01",
		PrimaryReleaseDateLTE: "2020-12-31",
		VoteCountGTE:          100,
		VoteAverageGTE:        7.5,
		WithGenres:            []int{28, 12},
		WithoutGenres:         []int{27},
		CertificationCountry:  "US",
		CertificationLTE:      "PG-13",
		WithOriginalLanguage:  "en",
	})
	require.NoError(t, err)

	q := rec.last().URL.Query()
	assert.Equal(t, "popularity.desc", q.Get("sort_by"))
	assert.Equal(t, "false", q.Get("include_video"))
	assert.Equal(t, "2020-01-01", q.Get("primary_release_date.gte"))
	assert.Equal(t, "2020-12-31", q.Get("primary_release_date.lte"))
	assert.Equal(t, "100", q.Get("vote_count.gte"))
	assert.Equal(t, "7.5", q.Get("vote_average.gte"))
	assert.Equal(t, "28,12", q.Get("with_genres"))
	assert.Equal(t, "27", q.Get("without_genres"))
	assert.Equal(t, "US", q.Get("certification_country"))
	assert.Equal(t, "PG-13", q.Get("certification.lte"))
	assert.Equal(t, "en", q.Get("with_original_language"))
	assert.False(t, q.Has("include_adult"))
	assert.False(t, q.Has("vote_average.lte"))
	assert.False(t, q.Has("with_keywords"))
}

func TestDiscover_TV(t *testing.T) {
	rec := newRecorder()
	rec.handle("/discover/tv", http.StatusOK, PaginatedResponse[TVShowListResult]{Results: []TVShowListResult{{ID: 1}}})
	client := newTestClient(t, rec)

	_, err := client.Discover.TV(context.Background(), TVDiscoverOptions{
		FirstAirDateGTE: "2019-01-01",
		WithNetworks:    []int{213},
		WithRuntimeGTE:  30,
		WithRuntimeLTE:  60,
	})
	require.NoError(t, err)

	q := rec.last().URL.Query()
	assert.Equal(t, "2019-01-01", q.Get("first_air_date.gte"))
	assert.Equal(t, "213", q.Get("with_networks"))
	assert.Equal(t, "30", q.Get("with_runtime.gte"))
	assert.Equal(t, "60", q.Get("with_runtime.lte"))
	assert.False(t, q.Has("page"))
}

func TestTrending(t *testing.T) {
	rec := newRecorder()
	rec.handle("/trending/all/day", http.StatusOK, PaginatedResponse[MultiResult]{Results: []MultiResult{{ID: 1, MediaType: MediaMovie}}})
	rec.handle("/trending/movie/week", http.StatusOK, PaginatedResponse[MovieListResult]{Results: []MovieListResult{{ID: 2}}})
	rec.handle("/trending/tv/day", http.StatusOK, PaginatedResponse[TVShowListResult]{Results: []TVShowListResult{{ID: 3}}})
	rec.handle("/trending/person/week", http.StatusOK, PaginatedResponse[PersonListResult]{Results: []PersonListResult{{ID: 4}}})
	client := newTestClient(t, rec)
	ctx := context.Background()

	all, err := client.Trending.All(ctx, MediaAll, TimeWindowDay, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, all.Results[0].ID)
	assert.Equal(t, "1", rec.last().URL.Query().Get("page"))

	movies, err := client.Trending.Movies(ctx, TimeWindowWeek, 0)
	require.NoError(t, err)
	assert.Equal(t, 2, movies.Results[0].ID)

	shows, err := client.Trending.TV(ctx, TimeWindowDay, 0)
	require.NoError(t, err)
	assert.Equal(t, 3, shows.Results[0].ID)

	people, err := client.Trending.People(ctx, TimeWindowWeek, 0)
	require.NoError(t, err)
	assert.Equal(t, 4, people.Results[0].ID)
}

func TestTrending_InvalidArguments(t *testing.T) {
	client := newTestClient(t, newRecorder())
	ctx := context.Background()

	_, err := client.Trending.All(ctx, MediaType("collection"), TimeWindowDay, 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.Trending.All(ctx, MediaMovie, TimeWindow("month"), 1)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
