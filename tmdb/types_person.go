package tmdb

// PersonListResult is a person as it appears in list endpoints
type PersonListResult struct {
	Adult              bool          `json:"adult"`
	Gender             int           `json:"gender"`
	ID                 int           `json:"id"`
	KnownForDepartment string        `json:"known_for_department"`
	Name               string        `json:"name"`
	OriginalName       string        `json:"original_name,omitempty"`
	Popularity         float64       `json:"popularity"`
	ProfilePath        string        `json:"profile_path"`
	KnownFor           []MultiResult `json:"known_for,omitempty"`
}

// PersonDetails is the full person record
type PersonDetails struct {
	PersonListResult
	AlsoKnownAs  []string `json:"also_known_as,omitempty"`
	Biography    string   `json:"biography"`
	Birthday     string   `json:"birthday"`
	Deathday     string   `json:"deathday"`
	Homepage     string   `json:"homepage"`
	IMDbID       string   `json:"imdb_id"`
	PlaceOfBirth string   `json:"place_of_birth"`
}

// MovieCredit is a movie in a person's filmography
type MovieCredit struct {
	MovieListResult
	Character  string `json:"character,omitempty"`
	CreditID   string `json:"credit_id"`
	Order      int    `json:"order,omitempty"`
	Department string `json:"department,omitempty"`
	Job        string `json:"job,omitempty"`
}

// TVCredit is a show in a person's filmography
type TVCredit struct {
	TVShowListResult
	Character    string `json:"character,omitempty"`
	CreditID     string `json:"credit_id"`
	EpisodeCount int    `json:"episode_count,omitempty"`
	Department   string `json:"department,omitempty"`
	Job          string `json:"job,omitempty"`
}

// PersonMovieCredits is a person's movie filmography
type PersonMovieCredits struct {
	ID   int           `json:"id"`
	Cast []MovieCredit `json:"cast"`
	Crew []MovieCredit `json:"crew"`
}

// PersonTVCredits is a person's TV filmography
type PersonTVCredits struct {
	ID   int        `json:"id"`
	Cast []TVCredit `json:"cast"`
	Crew []TVCredit `json:"crew"`
}
