package tmdb

import "context"

// TVService handles the /tv endpoints
type TVService service

// Details fetches the full record of a show.
func (s *TVService) Details(ctx context.Context, tvID int, opts ...CallOption) (*TVShowDetails, error) {
	path, err := tvPath(EndpointTVDetails, tvID)
	if err != nil {
		return nil, err
	}
	return get[TVShowDetails](ctx, s.client, path, nil, opts...)
}

// Season fetches a season including its episodes.
func (s *TVService) Season(ctx context.Context, tvID, seasonNumber int, opts ...CallOption) (*Season, error) {
	if tvID <= 0 {
		return nil, invalidArgument("tv id must be positive, got %d", tvID)
	}
	if seasonNumber < 0 {
		return nil, invalidArgument("season number must not be negative, got %d", seasonNumber)
	}
	path := ReplacePath(EndpointTVSeasonDetails, map[string]any{
		"tv_id":         tvID,
		"season_number": seasonNumber,
	})
	return get[Season](ctx, s.client, path, nil, opts...)
}

// Episode fetches a single episode.
func (s *TVService) Episode(ctx context.Context, tvID, seasonNumber, episodeNumber int, opts ...CallOption) (*Episode, error) {
	if tvID <= 0 {
		return nil, invalidArgument("tv id must be positive, got %d", tvID)
	}
	if seasonNumber < 0 || episodeNumber <= 0 {
		return nil, invalidArgument("invalid season %d episode %d", seasonNumber, episodeNumber)
	}
	path := ReplacePath(EndpointTVEpisodeDetails, map[string]any{
		"tv_id":          tvID,
		"season_number":  seasonNumber,
		"episode_number": episodeNumber,
	})
	return get[Episode](ctx, s.client, path, nil, opts...)
}

// Credits fetches the cast and crew of the latest season.
func (s *TVService) Credits(ctx context.Context, tvID int, opts ...CallOption) (*Credits, error) {
	path, err := tvPath(EndpointTVCredits, tvID)
	if err != nil {
		return nil, err
	}
	return get[Credits](ctx, s.client, path, nil, opts...)
}

// Images fetches posters, backdrops and logos of a show.
func (s *TVService) Images(ctx context.Context, tvID int, opts ...CallOption) (*ImageCollection, error) {
	path, err := tvPath(EndpointTVImages, tvID)
	if err != nil {
		return nil, err
	}
	return get[ImageCollection](ctx, s.client, path, nil, opts...)
}

// Videos fetches trailers and clips of a show.
func (s *TVService) Videos(ctx context.Context, tvID int, opts ...CallOption) (*VideoCollection, error) {
	path, err := tvPath(EndpointTVVideos, tvID)
	if err != nil {
		return nil, err
	}
	return get[VideoCollection](ctx, s.client, path, nil, opts...)
}

// Similar lists shows similar to tvID.
func (s *TVService) Similar(ctx context.Context, tvID, page int, opts ...CallOption) (*PaginatedResponse[TVShowListResult], error) {
	path, err := tvPath(EndpointTVSimilar, tvID)
	if err != nil {
		return nil, err
	}
	return get[PaginatedResponse[TVShowListResult]](ctx, s.client, path, pageParams(page), opts...)
}

// Popular lists popular shows.
func (s *TVService) Popular(ctx context.Context, page int, opts ...CallOption) (*PaginatedResponse[TVShowListResult], error) {
	return get[PaginatedResponse[TVShowListResult]](ctx, s.client, EndpointTVPopular, pageParams(page), opts...)
}

// TopRated lists the highest rated shows.
func (s *TVService) TopRated(ctx context.Context, page int, opts ...CallOption) (*PaginatedResponse[TVShowListResult], error) {
	return get[PaginatedResponse[TVShowListResult]](ctx, s.client, EndpointTVTopRated, pageParams(page), opts...)
}

func tvPath(template string, tvID int) (string, error) {
	if tvID <= 0 {
		return "", invalidArgument("tv id must be positive, got %d", tvID)
	}
	return ReplacePath(template, map[string]any{"tv_id": tvID}), nil
}
