package tmdb

import "context"

// TrendingService handles the /trending endpoint
type TrendingService service

// All lists trending items of mediaType, which may be MediaAll.
func (s *TrendingService) All(ctx context.Context, mediaType MediaType, window TimeWindow, page int, opts ...CallOption) (*PaginatedResponse[MultiResult], error) {
	path, err := trendingPath(mediaType, window)
	if err != nil {
		return nil, err
	}
	return get[PaginatedResponse[MultiResult]](ctx, s.client, path, pageParams(page), opts...)
}

// Movies lists trending movies.
func (s *TrendingService) Movies(ctx context.Context, window TimeWindow, page int, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	path, err := trendingPath(MediaMovie, window)
	if err != nil {
		return nil, err
	}
	return get[PaginatedResponse[MovieListResult]](ctx, s.client, path, pageParams(page), opts...)
}

// TV lists trending shows.
func (s *TrendingService) TV(ctx context.Context, window TimeWindow, page int, opts ...CallOption) (*PaginatedResponse[TVShowListResult], error) {
	path, err := trendingPath(MediaTV, window)
	if err != nil {
		return nil, err
	}
	return get[PaginatedResponse[TVShowListResult]](ctx, s.client, path, pageParams(page), opts...)
}

// People lists trending people.
func (s *TrendingService) People(ctx context.Context, window TimeWindow, page int, opts ...CallOption) (*PaginatedResponse[PersonListResult], error) {
	path, err := trendingPath(MediaPerson, window)
	if err != nil {
		return nil, err
	}
	return get[PaginatedResponse[PersonListResult]](ctx, s.client, path, pageParams(page), opts...)
}

func trendingPath(mediaType MediaType, window TimeWindow) (string, error) {
	switch mediaType {
	case MediaAll, MediaMovie, MediaTV, MediaPerson:
	default:
		return "", invalidArgument("unknown media type %q", mediaType)
	}
	switch window {
	case TimeWindowDay, TimeWindowWeek:
	default:
		return "", invalidArgument("unknown time window %q", window)
	}
	return ReplacePath(EndpointTrending, map[string]any{
		"media_type":  mediaType,
		"time_window": window,
	}), nil
}
