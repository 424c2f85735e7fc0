package tmdb

import (
	"fmt"
	"strings"
)

// API endpoint templates. Placeholders in braces are filled by ReplacePath.
const (
	EndpointAuthToken         = "/authentication/token/new"
	EndpointAuthSession       = "/authentication/session/new"
	EndpointAuthValidateToken = "/authentication/token/validate_with_login"

	EndpointConfiguration  = "/configuration"
	EndpointGenreMovieList = "/genre/movie/list"
	EndpointGenreTVList    = "/genre/tv/list"

	EndpointMovieDetails         = "/movie/{movie_id}"
	EndpointMovieCredits         = "/movie/{movie_id}/credits"
	EndpointMovieImages          = "/movie/{movie_id}/images"
	EndpointMovieVideos          = "/movie/{movie_id}/videos"
	EndpointMovieRecommendations = "/movie/{movie_id}/recommendations"
	EndpointMovieSimilar         = "/movie/{movie_id}/similar"
	EndpointMoviePopular         = "/movie/popular"
	EndpointMovieNowPlaying      = "/movie/now_playing"
	EndpointMovieTopRated        = "/movie/top_rated"
	EndpointMovieUpcoming        = "/movie/upcoming"

	EndpointTVDetails        = "/tv/{tv_id}"
	EndpointTVCredits        = "/tv/{tv_id}/credits"
	EndpointTVImages         = "/tv/{tv_id}/images"
	EndpointTVVideos         = "/tv/{tv_id}/videos"
	EndpointTVSimilar        = "/tv/{tv_id}/similar"
	EndpointTVSeasonDetails  = "/tv/{tv_id}/season/{season_number}"
	EndpointTVEpisodeDetails = "/tv/{tv_id}/season/{season_number}/episode/{episode_number}"
	EndpointTVPopular        = "/tv/popular"
	EndpointTVTopRated       = "/tv/top_rated"

	EndpointPersonDetails      = "/person/{person_id}"
	EndpointPersonMovieCredits = "/person/{person_id}/movie_credits"
	EndpointPersonTVCredits    = "/person/{person_id}/tv_credits"
	EndpointPersonImages       = "/person/{person_id}/images"
	EndpointPersonPopular      = "/person/popular"

	EndpointSearchMovie  = "/search/movie"
	EndpointSearchTV     = "/search/tv"
	EndpointSearchPerson = "/search/person"
	EndpointSearchMulti  = "/search/multi"

	EndpointDiscoverMovie = "/discover/movie"
	EndpointDiscoverTV    = "/discover/tv"

	EndpointTrending = "/trending/{media_type}/{time_window}"
)

// ReplacePath substitutes each {name} placeholder in template with the
// matching value from params. Only the first occurrence of each placeholder
// is replaced; unknown placeholders are left untouched.
func ReplacePath(template string, params map[string]any) string {
	result := template
	for key, value := range params {
		result = strings.Replace(result, "{"+key+"}", fmt.Sprint(value), 1)
	}
	return result
}
