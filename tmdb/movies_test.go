package tmdb

import (
	"context"
	"net/http"
	"sort"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/s0up4200/tmdb-go/httpclient"
)

func TestMovies_Details(t *testing.T) {
	rec := newRecorder()
	rec.handle("/movie/550", http.StatusOK, map[string]any{
		"id":                    550,
		"title":                 "Fight Club",
		"original_title":        "Fight Club",
		"release_date":          "1999-10-15",
		"genre_ids":             []int{},
		"genres":                []map[string]any{{"id": 18, "name": "Drama"}},
		"budget":                63000000,
		"runtime":               139,
		"imdb_id":               "tt0137523",
		"poster_path":           "/pB8BM7pdSp6B6Ih7QZ4DrQ3PmJK.jpg",
		"belongs_to_collection": nil,
		"vote_average":          8.4,
	})
	client := newTestClient(t, rec)

	movie, err := client.Movies.Details(context.Background(), 550)
	require.NoError(t, err)
	assert.Equal(t, 550, movie.ID)
	assert.Equal(t, "Fight Club", movie.Title)
	assert.Equal(t, int64(63000000), movie.Budget)
	assert.Equal(t, 139, movie.Runtime)
	assert.Equal(t, "tt0137523", movie.IMDbID)
	assert.Nil(t, movie.BelongsToCollection)
	require.Len(t, movie.Genres, 1)
	assert.Equal(t, "Drama", movie.Genres[0].Name)
	assert.InDelta(t, 8.4, movie.VoteAverage, 0.001)
}

func TestMovies_SubResources(t *testing.T) {
	rec := newRecorder()
	rec.handle("/movie/550/credits", http.StatusOK, Credits{
		ID:   550,
		Cast: []CastMember{{ID: 287, Name: "Brad Pitt", Character: "Tyler Durden"}},
		Crew: []CrewMember{{ID: 7467, Name: "David Fincher", Job: "Director"}},
	})
	rec.handle("/movie/550/images", http.StatusOK, ImageCollection{ID: 550, Posters: []Image{{FilePath: "/a.jpg", Width: 500}}})
	rec.handle("/movie/550/videos", http.StatusOK, VideoCollection{ID: 550, Results: []Video{{Key: "SUXWAEX2jlg", Site: "YouTube", Type: "Trailer"}}})
	rec.handle("/movie/550/recommendations", http.StatusOK, PaginatedResponse[MovieListResult]{Page: 2, Results: []MovieListResult{{ID: 680}}})
	rec.handle("/movie/550/similar", http.StatusOK, PaginatedResponse[MovieListResult]{Page: 1, Results: []MovieListResult{{ID: 807}}})
	client := newTestClient(t, rec)
	ctx := context.Background()

	credits, err := client.Movies.Credits(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, "Tyler Durden", credits.Cast[0].Character)
	assert.Equal(t, "Director", credits.Crew[0].Job)

	images, err := client.Movies.Images(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, "/a.jpg", images.Posters[0].FilePath)

	videos, err := client.Movies.Videos(ctx, 550)
	require.NoError(t, err)
	assert.Equal(t, "Trailer", videos.Results[0].Type)

	recs, err := client.Movies.Recommendations(ctx, 550, 2)
	require.NoError(t, err)
	assert.Equal(t, 680, recs.Results[0].ID)
	assert.Equal(t, "2", rec.last().URL.Query().Get("page"))

	similar, err := client.Movies.Similar(ctx, 550, 0)
	require.NoError(t, err)
	assert.Equal(t, 807, similar.Results[0].ID)
	assert.False(t, rec.last().URL.Query().Has("page"), "zero page is not sent")
}

func TestMovies_Lists(t *testing.T) {
	tests := []struct {
		name string
		path string
		call func(*Client) (*PaginatedResponse[MovieListResult], error)
	}{
		{"popular", "/movie/popular", func(c *Client) (*PaginatedResponse[MovieListResult], error) {
			return c.Movies.Popular(context.Background(), 3)
		}},
		{"now playing", "/movie/now_playing", func(c *Client) (*PaginatedResponse[MovieListResult], error) {
			return c.Movies.NowPlaying(context.Background(), 3)
		}},
		{"top rated", "/movie/top_rated", func(c *Client) (*PaginatedResponse[MovieListResult], error) {
			return c.Movies.TopRated(context.Background(), 3)
		}},
		{"upcoming", "/movie/upcoming", func(c *Client) (*PaginatedResponse[MovieListResult], error) {
			return c.Movies.Upcoming(context.Background(), 3)
		}},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			rec := newRecorder()
			rec.handle(tt.path, http.StatusOK, PaginatedResponse[MovieListResult]{
				Page:         3,
				Results:      []MovieListResult{{ID: 1, Title: "A"}, {ID: 2, Title: "B"}},
				TotalPages:   10,
				TotalResults: 200,
			})
			client := newTestClient(t, rec, WithRegion("GB"))

			page, err := tt.call(client)
			require.NoError(t, err)
			assert.Equal(t, 3, page.Page)
			assert.Len(t, page.Results, 2)
			assert.Equal(t, 200, page.TotalResults)

			q := rec.last().URL.Query()
			assert.Equal(t, "3", q.Get("page"))
			assert.Equal(t, "GB", q.Get("region"))
			assert.Equal(t, "en-US", q.Get("language"))
		})
	}
}

func TestMovies_InvalidID(t *testing.T) {
	rec := newRecorder()
	client := newTestClient(t, rec)

	for _, id := range []int{0, -1} {
		_, err := client.Movies.Details(context.Background(), id)
		require.Error(t, err)
		assert.ErrorIs(t, err, ErrInvalidArgument)
	}
	assert.Nil(t, rec.last(), "no request is made for invalid ids")
}

func TestMovies_DetailsBatch(t *testing.T) {
	rec := newRecorder()
	rec.handle("/movie/550", http.StatusOK, map[string]any{"id": 550, "title": "Fight Club"})
	rec.handle("/movie/680", http.StatusOK, map[string]any{"id": 680, "title": "Pulp Fiction"})
	rec.handle("/movie/13", http.StatusOK, map[string]any{"id": 13, "title": "Forrest Gump"})
	client := newTestClient(t, rec)

	result := client.Movies.DetailsBatch(context.Background(), []int{550, 680, 13, 999, 550}, 2)

	assert.Equal(t, 5, result.Requested)
	require.Len(t, result.Details, 3)
	assert.Equal(t, "Pulp Fiction", result.Details[680].Title)
	assert.Equal(t, 1, rec.count("/movie/550"), "duplicate ids are fetched once")

	require.Len(t, result.Failed, 1)
	assert.Equal(t, 999, result.Failed[0].ID)
	assert.True(t, httpclient.IsNotFound(result.Failed[0]))
}

func TestMovies_DetailsBatchEmpty(t *testing.T) {
	client := newTestClient(t, newRecorder())

	result := client.Movies.DetailsBatch(context.Background(), nil, 0)
	assert.Equal(t, 0, result.Requested)
	assert.Empty(t, result.Details)
	assert.Empty(t, result.Failed)
}

func TestMovies_DetailsBatchInvalidIDs(t *testing.T) {
	client := newTestClient(t, newRecorder())

	result := client.Movies.DetailsBatch(context.Background(), []int{-2, 0}, 0)
	require.Len(t, result.Failed, 2)

	ids := []int{result.Failed[0].ID, result.Failed[1].ID}
	sort.Ints(ids)
	assert.Equal(t, []int{-2, 0}, ids)
	assert.ErrorIs(t, result.Failed[0], ErrInvalidArgument)
}
