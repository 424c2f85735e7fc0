package filter

import (
	"time"

	"github.com/s0up4200/tmdb-go/tmdb"
)

// DateLayout is the date format TMDB uses for release and air dates
const DateLayout = "2006-01-02"

// Candidate is the flattened view of a TMDB list entry that filter
// expressions are evaluated against.
type Candidate struct {
	ID               int
	MediaType        tmdb.MediaType
	Title            string
	OriginalTitle    string
	Overview         string
	OriginalLanguage string
	ReleaseDate      time.Time
	Year             int
	VoteAverage      float64
	VoteCount        int
	Popularity       float64
	Adult            bool
	GenreIDs         []int
	GenreNames       []string
	Department       string

	// Source holds the TMDB value the candidate was built from.
	Source any
}

// FromMovie builds a candidate from a movie list entry
func FromMovie(m tmdb.MovieListResult) Candidate {
	c := Candidate{
		ID:               m.ID,
		MediaType:        tmdb.MediaMovie,
		Title:            m.Title,
		OriginalTitle:    m.OriginalTitle,
		Overview:         m.Overview,
		OriginalLanguage: m.OriginalLanguage,
		VoteAverage:      m.VoteAverage,
		VoteCount:        m.VoteCount,
		Popularity:       m.Popularity,
		Adult:            m.Adult,
		GenreIDs:         m.GenreIDs,
		Source:           m,
	}
	c.setDate(m.ReleaseDate)
	return c
}

// FromTV builds a candidate from a TV list entry
func FromTV(s tmdb.TVShowListResult) Candidate {
	c := Candidate{
		ID:               s.ID,
		MediaType:        tmdb.MediaTV,
		Title:            s.Name,
		OriginalTitle:    s.OriginalName,
		Overview:         s.Overview,
		OriginalLanguage: s.OriginalLanguage,
		VoteAverage:      s.VoteAverage,
		VoteCount:        s.VoteCount,
		Popularity:       s.Popularity,
		GenreIDs:         s.GenreIDs,
		Source:           s,
	}
	c.setDate(s.FirstAirDate)
	return c
}

// FromPerson builds a candidate from a person list entry. People have no
// dates or votes, so only the name and popularity are meaningful.
func FromPerson(p tmdb.PersonListResult) Candidate {
	return Candidate{
		ID:            p.ID,
		MediaType:     tmdb.MediaPerson,
		Title:         p.Name,
		OriginalTitle: p.OriginalName,
		Popularity:    p.Popularity,
		Adult:         p.Adult,
		Department:    p.KnownForDepartment,
		Source:        p,
	}
}

// FromMulti builds a candidate from a multi search or trending entry
func FromMulti(r tmdb.MultiResult) Candidate {
	original := r.OriginalTitle
	if original == "" {
		original = r.OriginalName
	}
	c := Candidate{
		ID:               r.ID,
		MediaType:        r.MediaType,
		Title:            r.DisplayTitle(),
		OriginalTitle:    original,
		Overview:         r.Overview,
		OriginalLanguage: r.OriginalLanguage,
		VoteAverage:      r.VoteAverage,
		VoteCount:        r.VoteCount,
		Popularity:       r.Popularity,
		Adult:            r.Adult,
		GenreIDs:         r.GenreIDs,
		Department:       r.KnownForDepartment,
		Source:           r,
	}
	c.setDate(r.Date())
	return c
}

// WithGenreNames returns a copy of c with GenreNames resolved from names.
// IDs missing from names are skipped.
func (c Candidate) WithGenreNames(names map[int]string) Candidate {
	resolved := make([]string, 0, len(c.GenreIDs))
	for _, id := range c.GenreIDs {
		if name, ok := names[id]; ok {
			resolved = append(resolved, name)
		}
	}
	c.GenreNames = resolved
	return c
}

func (c *Candidate) setDate(value string) {
	if value == "" {
		return
	}
	t, err := time.Parse(DateLayout, value)
	if err != nil {
		return
	}
	c.ReleaseDate = t
	c.Year = t.Year()
}
