package tmdb

// TVShowListResult is a show as it appears in list endpoints
type TVShowListResult struct {
	BackdropPath     string   `json:"backdrop_path"`
	FirstAirDate     string   `json:"first_air_date"`
	GenreIDs         []int    `json:"genre_ids"`
	ID               int      `json:"id"`
	Name             string   `json:"name"`
	OriginCountry    []string `json:"origin_country"`
	OriginalLanguage string   `json:"original_language"`
	OriginalName     string   `json:"original_name"`
	Overview         string   `json:"overview"`
	Popularity       float64  `json:"popularity"`
	PosterPath       string   `json:"poster_path"`
	VoteAverage      float64  `json:"vote_average"`
	VoteCount        int      `json:"vote_count"`
}

// Network is a broadcaster or streaming service
type Network struct {
	ID            int    `json:"id"`
	Name          string `json:"name"`
	LogoPath      string `json:"logo_path"`
	OriginCountry string `json:"origin_country"`
}

// Creator is a credited show creator
type Creator struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Gender      int    `json:"gender"`
	ProfilePath string `json:"profile_path"`
}

// EpisodeCrew is a crew member credited on a single episode
type EpisodeCrew struct {
	ID          int    `json:"id"`
	CreditID    string `json:"credit_id"`
	Name        string `json:"name"`
	Department  string `json:"department"`
	Job         string `json:"job"`
	ProfilePath string `json:"profile_path"`
}

// GuestStar is a performer credited on a single episode
type GuestStar struct {
	ID          int    `json:"id"`
	Name        string `json:"name"`
	CreditID    string `json:"credit_id"`
	Character   string `json:"character"`
	Order       int    `json:"order"`
	ProfilePath string `json:"profile_path"`
}

// Episode is a single TV episode
type Episode struct {
	AirDate        string        `json:"air_date"`
	EpisodeNumber  int           `json:"episode_number"`
	ID             int           `json:"id"`
	Name           string        `json:"name"`
	Overview       string        `json:"overview"`
	ProductionCode string        `json:"production_code"`
	Runtime        int           `json:"runtime"`
	SeasonNumber   int           `json:"season_number"`
	StillPath      string        `json:"still_path"`
	VoteAverage    float64       `json:"vote_average"`
	VoteCount      int           `json:"vote_count"`
	Crew           []EpisodeCrew `json:"crew,omitempty"`
	GuestStars     []GuestStar   `json:"guest_stars,omitempty"`
}

// Season is a TV season. Episodes is only populated by the season endpoint.
type Season struct {
	AirDate      string    `json:"air_date"`
	EpisodeCount int       `json:"episode_count"`
	ID           int       `json:"id"`
	Name         string    `json:"name"`
	Overview     string    `json:"overview"`
	PosterPath   string    `json:"poster_path"`
	SeasonNumber int       `json:"season_number"`
	Episodes     []Episode `json:"episodes,omitempty"`
}

// TVShowDetails is the full show record
type TVShowDetails struct {
	TVShowListResult
	Adult               bool                `json:"adult"`
	CreatedBy           []Creator           `json:"created_by"`
	EpisodeRunTime      []int               `json:"episode_run_time"`
	Genres              []Genre             `json:"genres"`
	Homepage            string              `json:"homepage"`
	InProduction        bool                `json:"in_production"`
	Languages           []string            `json:"languages"`
	LastAirDate         string              `json:"last_air_date"`
	LastEpisodeToAir    *Episode            `json:"last_episode_to_air"`
	NextEpisodeToAir    *Episode            `json:"next_episode_to_air"`
	Networks            []Network           `json:"networks"`
	NumberOfEpisodes    int                 `json:"number_of_episodes"`
	NumberOfSeasons     int                 `json:"number_of_seasons"`
	ProductionCompanies []ProductionCompany `json:"production_companies"`
	ProductionCountries []ProductionCountry `json:"production_countries"`
	Seasons             []Season            `json:"seasons"`
	SpokenLanguages     []SpokenLanguage    `json:"spoken_languages"`
	Status              string              `json:"status"`
	Type                string              `json:"type"`
}
