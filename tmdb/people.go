package tmdb

import "context"

// PeopleService handles the /person endpoints
type PeopleService service

// Details fetches the full record of a person.
func (s *PeopleService) Details(ctx context.Context, personID int, opts ...CallOption) (*PersonDetails, error) {
	path, err := personPath(EndpointPersonDetails, personID)
	if err != nil {
		return nil, err
	}
	return get[PersonDetails](ctx, s.client, path, nil, opts...)
}

// MovieCredits fetches a person's movie filmography.
func (s *PeopleService) MovieCredits(ctx context.Context, personID int, opts ...CallOption) (*PersonMovieCredits, error) {
	path, err := personPath(EndpointPersonMovieCredits, personID)
	if err != nil {
		return nil, err
	}
	return get[PersonMovieCredits](ctx, s.client, path, nil, opts...)
}

// TVCredits fetches a person's TV filmography.
func (s *PeopleService) TVCredits(ctx context.Context, personID int, opts ...CallOption) (*PersonTVCredits, error) {
	path, err := personPath(EndpointPersonTVCredits, personID)
	if err != nil {
		return nil, err
	}
	return get[PersonTVCredits](ctx, s.client, path, nil, opts...)
}

// Images fetches profile images of a person.
func (s *PeopleService) Images(ctx context.Context, personID int, opts ...CallOption) (*ImageCollection, error) {
	path, err := personPath(EndpointPersonImages, personID)
	if err != nil {
		return nil, err
	}
	return get[ImageCollection](ctx, s.client, path, nil, opts...)
}

// Popular lists popular people.
func (s *PeopleService) Popular(ctx context.Context, page int, opts ...CallOption) (*PaginatedResponse[PersonListResult], error) {
	return get[PaginatedResponse[PersonListResult]](ctx, s.client, EndpointPersonPopular, pageParams(page), opts...)
}

func personPath(template string, personID int) (string, error) {
	if personID <= 0 {
		return "", invalidArgument("person id must be positive, got %d", personID)
	}
	return ReplacePath(template, map[string]any{"person_id": personID}), nil
}
