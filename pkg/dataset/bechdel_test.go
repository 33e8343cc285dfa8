package dataset

import (
	"strings"
	"testing"
)

const bechdelSample = `year,id,imdb_id,title,rating
1888,1594,tt0392728,Roundhay Garden Scene,0
1892,1595,tt0000003,Pauvre Pierrot,0
1997,112,tt0118715,The Big Lebowski,3
1997,113,tt0119654,Men in Black,2
bad-year,114,tt0000001,Broken Row,1
1998,115,tt0120601,Out of Range,7
`

func TestParseBechdel(t *testing.T) {
	films, err := ParseBechdel(strings.NewReader(bechdelSample))
	if err != nil {
		t.Fatalf("ParseBechdel: %v", err)
	}

	// Two malformed rows are dropped: bad year and rating 7.
	if len(films) != 4 {
		t.Fatalf("got %d films, want 4", len(films))
	}

	first := films[0]
	if first.Year != 1888 || first.Title != "Roundhay Garden Scene" || first.Rating != 0 {
		t.Errorf("first film = %+v", first)
	}
	if first.IMDBID != "tt0392728" {
		t.Errorf("imdb id = %q", first.IMDBID)
	}

	last := films[3]
	if last.Year != 1997 || last.Rating != 2 {
		t.Errorf("last film = %+v", last)
	}
}

func TestParseBechdelColumnOrder(t *testing.T) {
	// Column resolution is by header name, not position.
	reordered := "rating,title,year\n3,Alien,1979\n"
	films, err := ParseBechdel(strings.NewReader(reordered))
	if err != nil {
		t.Fatalf("ParseBechdel: %v", err)
	}
	if len(films) != 1 {
		t.Fatalf("got %d films, want 1", len(films))
	}
	if films[0].Year != 1979 || films[0].Title != "Alien" || films[0].Rating != 3 {
		t.Errorf("film = %+v", films[0])
	}
}

func TestParseBechdelMissingColumn(t *testing.T) {
	noRating := "year,title\n1979,Alien\n"
	if _, err := ParseBechdel(strings.NewReader(noRating)); err == nil {
		t.Error("missing rating column should fail")
	}
}

func TestParseBechdelShortRows(t *testing.T) {
	// Rows shorter than the header are dropped, not fatal.
	short := "year,id,imdb_id,title,rating\n1979\n1980,1,tt1,Oddball,2\n"
	films, err := ParseBechdel(strings.NewReader(short))
	if err != nil {
		t.Fatalf("ParseBechdel: %v", err)
	}
	if len(films) != 1 || films[0].Year != 1980 {
		t.Errorf("films = %+v", films)
	}
}
