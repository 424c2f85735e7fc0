package tmdb

// MediaType identifies the kind of a TMDB entity
type MediaType string

const (
	MediaMovie  MediaType = "movie"
	MediaTV     MediaType = "tv"
	MediaPerson MediaType = "person"
	// MediaAll is only valid for trending lookups
	MediaAll MediaType = "all"
)

// TimeWindow is the trending aggregation window
type TimeWindow string

const (
	TimeWindowDay  TimeWindow = "day"
	TimeWindowWeek TimeWindow = "week"
)

// PaginatedResponse is the envelope of every list endpoint
type PaginatedResponse[T any] struct {
	Page         int `json:"page"`
	Results      []T `json:"results"`
	TotalPages   int `json:"total_pages"`
	TotalResults int `json:"total_results"`
}

// Genre is a movie or TV genre
type Genre struct {
	ID   int    `json:"id"`
	Name string `json:"name"`
}

// GenreList is returned by the genre list endpoints
type GenreList struct {
	Genres []Genre `json:"genres"`
}

// Image describes a single image asset
type Image struct {
	AspectRatio float64 `json:"aspect_ratio"`
	FilePath    string  `json:"file_path"`
	Height      int     `json:"height"`
	Width       int     `json:"width"`
	Language    string  `json:"iso_639_1"`
	VoteAverage float64 `json:"vote_average"`
	VoteCount   int     `json:"vote_count"`
}

// ImageCollection groups the images of a movie, show, person or episode
type ImageCollection struct {
	ID        int     `json:"id"`
	Backdrops []Image `json:"backdrops,omitempty"`
	Logos     []Image `json:"logos,omitempty"`
	Posters   []Image `json:"posters,omitempty"`
	Profiles  []Image `json:"profiles,omitempty"`
	Stills    []Image `json:"stills,omitempty"`
}

// Video is a trailer, teaser, clip or similar asset hosted elsewhere
type Video struct {
	ID          string `json:"id"`
	Language    string `json:"iso_639_1"`
	Country     string `json:"iso_3166_1"`
	Name        string `json:"name"`
	Key         string `json:"key"`
	Site        string `json:"site"`
	Size        int    `json:"size"`
	Type        string `json:"type"`
	Official    bool   `json:"official"`
	PublishedAt string `json:"published_at"`
}

// VideoCollection is returned by the videos endpoints
type VideoCollection struct {
	ID      int     `json:"id"`
	Results []Video `json:"results"`
}

// ProductionCompany is a studio credited on a title
type ProductionCompany struct {
	ID            int    `json:"id"`
	LogoPath      string `json:"logo_path"`
	Name          string `json:"name"`
	OriginCountry string `json:"origin_country"`
}

// ProductionCountry is a country credited on a title
type ProductionCountry struct {
	ISO31661 string `json:"iso_3166_1"`
	Name     string `json:"name"`
}

// SpokenLanguage is a language spoken in a title
type SpokenLanguage struct {
	EnglishName string `json:"english_name"`
	ISO6391     string `json:"iso_639_1"`
	Name        string `json:"name"`
}

// CastMember is a credited performer
type CastMember struct {
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	ID                 int     `json:"id"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	CastID             int     `json:"cast_id,omitempty"`
	Character          string  `json:"character"`
	CreditID           string  `json:"credit_id"`
	Order              int     `json:"order"`
}

// CrewMember is a credited crew member
type CrewMember struct {
	Adult              bool    `json:"adult"`
	Gender             int     `json:"gender"`
	ID                 int     `json:"id"`
	KnownForDepartment string  `json:"known_for_department"`
	Name               string  `json:"name"`
	OriginalName       string  `json:"original_name"`
	Popularity         float64 `json:"popularity"`
	ProfilePath        string  `json:"profile_path"`
	CreditID           string  `json:"credit_id"`
	Department         string  `json:"department"`
	Job                string  `json:"job"`
}

// Credits lists the cast and crew of a movie or show
type Credits struct {
	ID   int          `json:"id"`
	Cast []CastMember `json:"cast"`
	Crew []CrewMember `json:"crew"`
}

// MultiResult is an entry of a multi search or an "all" trending list.
// Which fields are populated depends on MediaType.
type MultiResult struct {
	ID                 int       `json:"id"`
	MediaType          MediaType `json:"media_type"`
	Adult              bool      `json:"adult"`
	Title              string    `json:"title,omitempty"`
	OriginalTitle      string    `json:"original_title,omitempty"`
	ReleaseDate        string    `json:"release_date,omitempty"`
	Name               string    `json:"name,omitempty"`
	OriginalName       string    `json:"original_name,omitempty"`
	FirstAirDate       string    `json:"first_air_date,omitempty"`
	Overview           string    `json:"overview,omitempty"`
	OriginalLanguage   string    `json:"original_language,omitempty"`
	GenreIDs           []int     `json:"genre_ids,omitempty"`
	PosterPath         string    `json:"poster_path,omitempty"`
	BackdropPath       string    `json:"backdrop_path,omitempty"`
	ProfilePath        string    `json:"profile_path,omitempty"`
	KnownForDepartment string    `json:"known_for_department,omitempty"`
	Popularity         float64   `json:"popularity"`
	VoteAverage        float64   `json:"vote_average"`
	VoteCount          int       `json:"vote_count"`
}

// DisplayTitle returns the title for movies and the name for shows and people
func (r MultiResult) DisplayTitle() string {
	if r.Title != "" {
		return r.Title
	}
	return r.Name
}

// Date returns the release date for movies and the first air date for shows
func (r MultiResult) Date() string {
	if r.ReleaseDate != "" {
		return r.ReleaseDate
	}
	return r.FirstAirDate
}
