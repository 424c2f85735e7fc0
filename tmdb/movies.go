package tmdb

import (
	"context"
	"sync"

	"golang.org/x/sync/errgroup"
)

// DefaultBatchConcurrency limits parallel lookups in DetailsBatch
const DefaultBatchConcurrency = 8

// MoviesService handles the /movie endpoints
type MoviesService service

// Details fetches the full record of a movie.
func (s *MoviesService) Details(ctx context.Context, movieID int, opts ...CallOption) (*MovieDetails, error) {
	path, err := moviePath(EndpointMovieDetails, movieID)
	if err != nil {
		return nil, err
	}
	return get[MovieDetails](ctx, s.client, path, nil, opts...)
}

// Credits fetches the cast and crew of a movie.
func (s *MoviesService) Credits(ctx context.Context, movieID int, opts ...CallOption) (*Credits, error) {
	path, err := moviePath(EndpointMovieCredits, movieID)
	if err != nil {
		return nil, err
	}
	return get[Credits](ctx, s.client, path, nil, opts...)
}

// Images fetches posters, backdrops and logos of a movie.
func (s *MoviesService) Images(ctx context.Context, movieID int, opts ...CallOption) (*ImageCollection, error) {
	path, err := moviePath(EndpointMovieImages, movieID)
	if err != nil {
		return nil, err
	}
	return get[ImageCollection](ctx, s.client, path, nil, opts...)
}

// Videos fetches trailers and clips of a movie.
func (s *MoviesService) Videos(ctx context.Context, movieID int, opts ...CallOption) (*VideoCollection, error) {
	path, err := moviePath(EndpointMovieVideos, movieID)
	if err != nil {
		return nil, err
	}
	return get[VideoCollection](ctx, s.client, path, nil, opts...)
}

// Recommendations lists movies TMDB recommends based on movieID.
func (s *MoviesService) Recommendations(ctx context.Context, movieID, page int, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	path, err := moviePath(EndpointMovieRecommendations, movieID)
	if err != nil {
		return nil, err
	}
	return get[PaginatedResponse[MovieListResult]](ctx, s.client, path, pageParams(page), opts...)
}

// Similar lists movies similar to movieID by genre and keywords.
func (s *MoviesService) Similar(ctx context.Context, movieID, page int, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	path, err := moviePath(EndpointMovieSimilar, movieID)
	if err != nil {
		return nil, err
	}
	return get[PaginatedResponse[MovieListResult]](ctx, s.client, path, pageParams(page), opts...)
}

// Popular lists popular movies. Results are cached for PopularCacheTTL
// unless CacheTTL is passed.
func (s *MoviesService) Popular(ctx context.Context, page int, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	opts = append([]CallOption{CacheTTL(PopularCacheTTL)}, opts...)
	return s.list(ctx, EndpointMoviePopular, page, opts)
}

// NowPlaying lists movies currently in theatres.
func (s *MoviesService) NowPlaying(ctx context.Context, page int, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	return s.list(ctx, EndpointMovieNowPlaying, page, opts)
}

// TopRated lists the highest rated movies.
func (s *MoviesService) TopRated(ctx context.Context, page int, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	return s.list(ctx, EndpointMovieTopRated, page, opts)
}

// Upcoming lists movies soon to be released.
func (s *MoviesService) Upcoming(ctx context.Context, page int, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	return s.list(ctx, EndpointMovieUpcoming, page, opts)
}

func (s *MoviesService) list(ctx context.Context, path string, page int, opts []CallOption) (*PaginatedResponse[MovieListResult], error) {
	params := pageParams(page).setString("region", s.client.region)
	return get[PaginatedResponse[MovieListResult]](ctx, s.client, path, params, opts...)
}

// DetailsBatch fetches several movies concurrently. Individual failures are
// collected in the result instead of aborting the batch.
func (s *MoviesService) DetailsBatch(ctx context.Context, movieIDs []int, concurrency int, opts ...CallOption) MovieBatchResult {
	result := MovieBatchResult{
		Requested: len(movieIDs),
		Details:   make(map[int]*MovieDetails, len(movieIDs)),
	}

	if len(movieIDs) == 0 {
		return result
	}
	if concurrency <= 0 {
		concurrency = DefaultBatchConcurrency
	}

	g, ctx := errgroup.WithContext(ctx)
	g.SetLimit(concurrency)

	var mu sync.Mutex
	seen := make(map[int]struct{}, len(movieIDs))

	for _, id := range movieIDs {
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}

		g.Go(func() error {
			details, err := s.Details(ctx, id, opts...)

			mu.Lock()
			defer mu.Unlock()
			if err != nil {
				s.client.logger.Warn().
					Err(err).
					Int("movie_id", id).
					Msg("Failed to get movie details")
				result.Failed = append(result.Failed, BatchError{ID: id, Err: err})
				return nil
			}
			result.Details[id] = details
			return nil
		})
	}

	g.Wait()

	return result
}

func moviePath(template string, movieID int) (string, error) {
	if movieID <= 0 {
		return "", invalidArgument("movie id must be positive, got %d", movieID)
	}
	return ReplacePath(template, map[string]any{"movie_id": movieID}), nil
}
