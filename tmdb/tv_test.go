package tmdb

import (
	"context"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTV_Endpoints(t *testing.T) {
	rec := newRecorder()
	rec.handle("/tv/1399", http.StatusOK, map[string]any{
		"id":                  1399,
		"name":                "Game of Thrones",
		"number_of_seasons":   8,
		"origin_country":      []string{"US"},
		"next_episode_to_air": nil,
		"last_episode_to_air": map[string]any{"id": 1551830, "episode_number": 6, "season_number": 8},
	})
	rec.handle("/tv/1399/season/1", http.StatusOK, Season{
		ID:           3624,
		SeasonNumber: 1,
		Episodes:     []Episode{{EpisodeNumber: 1, Name: "Winter Is Coming"}},
	})
	rec.handle("/tv/1399/season/1/episode/1", http.StatusOK, Episode{
		ID:            63056,
		EpisodeNumber: 1,
		SeasonNumber:  1,
		Name:          "Winter Is Coming",
		GuestStars:    []GuestStar{{Name: "Jason Momoa", Character: "Khal Drogo"}},
	})
	rec.handle("/tv/1399/credits", http.StatusOK, Credits{ID: 1399, Cast: []CastMember{{Name: "Emilia Clarke"}}})
	rec.handle("/tv/1399/images", http.StatusOK, ImageCollection{ID: 1399, Backdrops: []Image{{FilePath: "/b.jpg"}}})
	rec.handle("/tv/1399/videos", http.StatusOK, VideoCollection{ID: 1399})
	rec.handle("/tv/1399/similar", http.StatusOK, PaginatedResponse[TVShowListResult]{Results: []TVShowListResult{{ID: 1402}}})
	rec.handle("/tv/popular", http.StatusOK, PaginatedResponse[TVShowListResult]{Page: 1, Results: []TVShowListResult{{ID: 1}}})
	rec.handle("/tv/top_rated", http.StatusOK, PaginatedResponse[TVShowListResult]{Page: 1, Results: []TVShowListResult{{ID: 2}}})
	client := newTestClient(t, rec)
	ctx := context.Background()

	show, err := client.TV.Details(ctx, 1399)
	require.NoError(t, err)
	assert.Equal(t, "Game of Thrones", show.Name)
	assert.Equal(t, 8, show.NumberOfSeasons)
	assert.Equal(t, []string{"US"}, show.OriginCountry)
	assert.Nil(t, show.NextEpisodeToAir)
	require.NotNil(t, show.LastEpisodeToAir)
	assert.Equal(t, 6, show.LastEpisodeToAir.EpisodeNumber)

	season, err := client.TV.Season(ctx, 1399, 1)
	require.NoError(t, err)
	require.Len(t, season.Episodes, 1)
	assert.Equal(t, "Winter Is Coming", season.Episodes[0].Name)

	episode, err := client.TV.Episode(ctx, 1399, 1, 1)
	require.NoError(t, err)
	assert.Equal(t, "Khal Drogo", episode.GuestStars[0].Character)

	credits, err := client.TV.Credits(ctx, 1399)
	require.NoError(t, err)
	assert.Equal(t, "Emilia Clarke", credits.Cast[0].Name)

	images, err := client.TV.Images(ctx, 1399)
	require.NoError(t, err)
	assert.Equal(t, "/b.jpg", images.Backdrops[0].FilePath)

	_, err = client.TV.Videos(ctx, 1399)
	require.NoError(t, err)

	similar, err := client.TV.Similar(ctx, 1399, 1)
	require.NoError(t, err)
	assert.Equal(t, 1402, similar.Results[0].ID)

	popular, err := client.TV.Popular(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 1, popular.Results[0].ID)

	top, err := client.TV.TopRated(ctx, 1)
	require.NoError(t, err)
	assert.Equal(t, 2, top.Results[0].ID)
}

func TestTV_InvalidArguments(t *testing.T) {
	client := newTestClient(t, newRecorder())
	ctx := context.Background()

	_, err := client.TV.Details(ctx, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.TV.Season(ctx, 1399, -1)
	assert.ErrorIs(t, err, ErrInvalidArgument)

	_, err = client.TV.Episode(ctx, 1399, 1, 0)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}

func TestTV_SeasonZero(t *testing.T) {
	rec := newRecorder()
	rec.handle("/tv/1399/season/0", http.StatusOK, Season{SeasonNumber: 0, Name: "Specials"})
	client := newTestClient(t, rec)

	season, err := client.TV.Season(context.Background(), 1399, 0)
	require.NoError(t, err)
	assert.Equal(t, "Specials", season.Name)
}

func TestPeople_Endpoints(t *testing.T) {
	rec := newRecorder()
	rec.handle("/person/287", http.StatusOK, map[string]any{
		"id":             287,
		"name":           "Brad Pitt",
		"birthday":       "1963-12-18",
		"deathday":       nil,
		"place_of_birth": "Shawnee, Oklahoma, USA",
		"also_known_as":  []string{"William Bradley Pitt"},
	})
	rec.handle("/person/287/movie_credits", http.StatusOK, PersonMovieCredits{
		ID:   287,
		Cast: []MovieCredit{{MovieListResult: MovieListResult{ID: 550, Title: "Fight Club"}, Character: "Tyler Durden"}},
	})
	rec.handle("/person/287/tv_credits", http.StatusOK, PersonTVCredits{
		ID:   287,
		Cast: []TVCredit{{TVShowListResult: TVShowListResult{ID: 1, Name: "Friends"}, EpisodeCount: 1}},
	})
	rec.handle("/person/287/images", http.StatusOK, ImageCollection{ID: 287, Profiles: []Image{{FilePath: "/p.jpg"}}})
	rec.handle("/person/popular", http.StatusOK, PaginatedResponse[PersonListResult]{
		Results: []PersonListResult{{
			ID:       287,
			Name:     "Brad Pitt",
			KnownFor: []MultiResult{{ID: 550, MediaType: MediaMovie, Title: "Fight Club"}},
		}},
	})
	client := newTestClient(t, rec)
	ctx := context.Background()

	person, err := client.People.Details(ctx, 287)
	require.NoError(t, err)
	assert.Equal(t, "Brad Pitt", person.Name)
	assert.Equal(t, "1963-12-18", person.Birthday)
	assert.Empty(t, person.Deathday)
	assert.Equal(t, []string{"William Bradley Pitt"}, person.AlsoKnownAs)

	movies, err := client.People.MovieCredits(ctx, 287)
	require.NoError(t, err)
	assert.Equal(t, "Fight Club", movies.Cast[0].Title)
	assert.Equal(t, "Tyler Durden", movies.Cast[0].Character)

	shows, err := client.People.TVCredits(ctx, 287)
	require.NoError(t, err)
	assert.Equal(t, "Friends", shows.Cast[0].Name)
	assert.Equal(t, 1, shows.Cast[0].EpisodeCount)

	images, err := client.People.Images(ctx, 287)
	require.NoError(t, err)
	assert.Equal(t, "/p.jpg", images.Profiles[0].FilePath)

	popular, err := client.People.Popular(ctx, 1)
	require.NoError(t, err)
	require.Len(t, popular.Results[0].KnownFor, 1)
	assert.Equal(t, "Fight Club", popular.Results[0].KnownFor[0].DisplayTitle())

	_, err = client.People.Details(ctx, -5)
	assert.ErrorIs(t, err, ErrInvalidArgument)
}
