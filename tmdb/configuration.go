package tmdb

import "context"

// ConfigurationService handles API configuration and genre lists
type ConfigurationService service

// ImageConfiguration describes the image CDN
type ImageConfiguration struct {
	BaseURL       string   `json:"base_url"`
	SecureBaseURL string   `json:"secure_base_url"`
	BackdropSizes []string `json:"backdrop_sizes"`
	LogoSizes     []string `json:"logo_sizes"`
	PosterSizes   []string `json:"poster_sizes"`
	ProfileSizes  []string `json:"profile_sizes"`
	StillSizes    []string `json:"still_sizes"`
}

// APIConfiguration is returned by /configuration
type APIConfiguration struct {
	Images     ImageConfiguration `json:"images"`
	ChangeKeys []string           `json:"change_keys"`
}

// API fetches the API configuration.
func (s *ConfigurationService) API(ctx context.Context, opts ...CallOption) (*APIConfiguration, error) {
	return get[APIConfiguration](ctx, s.client, EndpointConfiguration, nil, opts...)
}

// MovieGenres lists the official movie genres.
func (s *ConfigurationService) MovieGenres(ctx context.Context, opts ...CallOption) (*GenreList, error) {
	return get[GenreList](ctx, s.client, EndpointGenreMovieList, nil, opts...)
}

// TVGenres lists the official TV genres.
func (s *ConfigurationService) TVGenres(ctx context.Context, opts ...CallOption) (*GenreList, error) {
	return get[GenreList](ctx, s.client, EndpointGenreTVList, nil, opts...)
}
