package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
)

// Film is one row of the Bechdel dataset: a single film and its rating.
//
// The rating counts how many of the three Bechdel criteria the film meets:
// 0 = fewer than two named women, 1 = two women, 2 = the women talk to
// each other, 3 = they talk about something other than a man.
type Film struct {
	Year   int    `json:"year"`
	IMDBID string `json:"imdb_id,omitempty"`
	Title  string `json:"title"`
	Rating int    `json:"rating"`
}

// ParseBechdel reads the raw_bechdel.csv format.
//
// Required columns: year, title, rating. The imdb_id column is optional.
// Rows with a non-numeric year, a year outside 1000-9999, or a rating
// outside 0-3 are skipped. A missing required header fails the parse.
func ParseBechdel(r io.Reader) ([]Film, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "reading bechdel header")
	}
	cols, err := columnIndex(header, "year", "title", "rating")
	if err != nil {
		return nil, err
	}
	imdbCol := optionalColumn(header, "imdb_id")

	var films []Film
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "reading bechdel row")
		}

		year, yerr := strconv.Atoi(field(rec, cols["year"]))
		rating, rerr := strconv.Atoi(field(rec, cols["rating"]))
		if yerr != nil || rerr != nil {
			continue
		}
		if year < 1000 || year > 9999 || rating < 0 || rating > 3 {
			continue
		}

		f := Film{
			Year:   year,
			Title:  field(rec, cols["title"]),
			Rating: rating,
		}
		if imdbCol >= 0 {
			f.IMDBID = field(rec, imdbCol)
		}
		films = append(films, f)
	}
	return films, nil
}

// columnIndex maps required column names to their positions in the header.
// Returns INVALID_RECORD if any required column is missing.
func columnIndex(header []string, required ...string) (map[string]int, error) {
	idx := make(map[string]int, len(required))
	for i, h := range header {
		idx[h] = i
	}
	out := make(map[string]int, len(required))
	for _, name := range required {
		i, ok := idx[name]
		if !ok {
			return nil, errors.New(errors.ErrCodeInvalidRecord, "missing required column %q", name)
		}
		out[name] = i
	}
	return out, nil
}

// optionalColumn returns the position of name in the header, or -1.
func optionalColumn(header []string, name string) int {
	for i, h := range header {
		if h == name {
			return i
		}
	}
	return -1
}

// field returns rec[i], or "" when the row is shorter than the header.
func field(rec []string, i int) string {
	if i < 0 || i >= len(rec) {
		return ""
	}
	return rec[i]
}
