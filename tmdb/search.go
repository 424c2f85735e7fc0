package tmdb

import (
	"context"
	"strings"
)

// SearchService handles the /search endpoints
type SearchService service

// SearchOptions are the filters shared by all search endpoints. Fields left
// at their zero value are not sent.
type SearchOptions struct {
	Page         int
	IncludeAdult *bool
	Region       string
	// Year and PrimaryReleaseYear apply to movie searches.
	Year               int
	PrimaryReleaseYear int
	// FirstAirDateYear applies to TV searches.
	FirstAirDateYear int
}

// Movies searches movies by title.
func (s *SearchService) Movies(ctx context.Context, query string, so SearchOptions, opts ...CallOption) (*PaginatedResponse[MovieListResult], error) {
	params, err := searchParams(query, so)
	if err != nil {
		return nil, err
	}
	params.setString("region", so.Region).
		setInt("year", so.Year).
		setInt("primary_release_year", so.PrimaryReleaseYear)
	return get[PaginatedResponse[MovieListResult]](ctx, s.client, EndpointSearchMovie, params, opts...)
}

// TV searches shows by name.
func (s *SearchService) TV(ctx context.Context, query string, so SearchOptions, opts ...CallOption) (*PaginatedResponse[TVShowListResult], error) {
	params, err := searchParams(query, so)
	if err != nil {
		return nil, err
	}
	params.setInt("first_air_date_year", so.FirstAirDateYear)
	return get[PaginatedResponse[TVShowListResult]](ctx, s.client, EndpointSearchTV, params, opts...)
}

// People searches people by name.
func (s *SearchService) People(ctx context.Context, query string, so SearchOptions, opts ...CallOption) (*PaginatedResponse[PersonListResult], error) {
	params, err := searchParams(query, so)
	if err != nil {
		return nil, err
	}
	params.setString("region", so.Region)
	return get[PaginatedResponse[PersonListResult]](ctx, s.client, EndpointSearchPerson, params, opts...)
}

// Multi searches movies, shows and people in one request.
func (s *SearchService) Multi(ctx context.Context, query string, so SearchOptions, opts ...CallOption) (*PaginatedResponse[MultiResult], error) {
	params, err := searchParams(query, so)
	if err != nil {
		return nil, err
	}
	params.setString("region", so.Region)
	return get[PaginatedResponse[MultiResult]](ctx, s.client, EndpointSearchMulti, params, opts...)
}

func searchParams(query string, so SearchOptions) (paramBuilder, error) {
	query = strings.TrimSpace(query)
	if query == "" {
		return nil, invalidArgument("search query is required")
	}
	return pageParams(so.Page).
		setString("query", query).
		setBool("include_adult", so.IncludeAdult), nil
}
