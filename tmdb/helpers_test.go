package tmdb

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestReplacePath(t *testing.T) {
	tests := []struct {
		name     string
		template string
		params   map[string]any
		want     string
	}{
		{
			name:     "single placeholder",
			template: EndpointMovieDetails,
			params:   map[string]any{"movie_id": 550},
			want:     "/movie/550",
		},
		{
			name:     "multiple placeholders",
			template: EndpointTVEpisodeDetails,
			params:   map[string]any{"tv_id": 1399, "season_number": 1, "episode_number": 9},
			want:     "/tv/1399/season/1/episode/9",
		},
		{
			name:     "typed strings",
			template: EndpointTrending,
			params:   map[string]any{"media_type": MediaTV, "time_window": TimeWindowWeek},
			want:     "/trending/tv/week",
		},
		{
			name:     "unknown placeholder left alone",
			template: "/movie/{movie_id}/{other}",
			params:   map[string]any{"movie_id": 1},
			want:     "/movie/1/{other}",
		},
		{
			name:     "first occurrence only",
			template: "/{id}/{id}",
			params:   map[string]any{"id": 7},
			want:     "/7/{id}",
		},
		{
			name:     "no params",
			template: EndpointMoviePopular,
			want:     "/movie/popular",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ReplacePath(tt.template, tt.params))
		})
	}
}

func TestImageURL(t *testing.T) {
	tests := []struct {
		name string
		path string
		size string
		kind ImageKind
		want string
	}{
		{"poster", "/abc.jpg", "w500", ImagePoster, "https://image.tmdb.org/t/p/w500/abc.jpg"},
		{"original", "/abc.jpg", SizeOriginal, ImageBackdrop, "https://image.tmdb.org/t/p/original/abc.jpg"},
		{"unknown size falls back", "/abc.jpg", "w9999", ImagePoster, "https://image.tmdb.org/t/p/original/abc.jpg"},
		{"size from another kind", "/abc.jpg", "h632", ImagePoster, "https://image.tmdb.org/t/p/original/abc.jpg"},
		{"profile h632", "/p.jpg", "h632", ImageProfile, "https://image.tmdb.org/t/p/h632/p.jpg"},
		{"empty path", "", "w500", ImagePoster, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, ImageURL(tt.path, tt.size, tt.kind))
		})
	}
}

func TestImageURLVariants(t *testing.T) {
	assert.Equal(t, "https://image.tmdb.org/t/p/w342/a.jpg", PosterURL("/a.jpg", "w342"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w1280/a.jpg", BackdropURL("/a.jpg", "w1280"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w45/a.jpg", ProfileURL("/a.jpg", "w45"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w300/a.jpg", StillURL("/a.jpg", "w300"))
	assert.Equal(t, "https://image.tmdb.org/t/p/w92/a.png", LogoURL("/a.png", "w92"))
	assert.Equal(t, "https://image.tmdb.org/t/p/original/a.jpg", StillURL("/a.jpg", "w500"))
}

func TestMultiResult_DisplayTitle(t *testing.T) {
	movie := MultiResult{MediaType: MediaMovie, Title: "Heat", ReleaseDate: "1995-12-15"}
	show := MultiResult{MediaType: MediaTV, Name: "The Wire", FirstAirDate: "2002-06-02"}
	person := MultiResult{MediaType: MediaPerson, Name: "Al Pacino"}

	assert.Equal(t, "Heat", movie.DisplayTitle())
	assert.Equal(t, "1995-12-15", movie.Date())
	assert.Equal(t, "The Wire", show.DisplayTitle())
	assert.Equal(t, "2002-06-02", show.Date())
	assert.Equal(t, "Al Pacino", person.DisplayTitle())
	assert.Empty(t, person.Date())
}
