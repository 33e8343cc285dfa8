package dataset

import (
	"encoding/csv"
	"io"
	"strconv"

	"github.com/moharchaudhuri17/tidytuesday/pkg/errors"
)

// PostOffice is one row of the post office dataset: a single office, where
// it stood, and when it operated.
type PostOffice struct {
	Name  string `json:"name"`
	State string `json:"state"`

	// Established is the year the office opened.
	Established int `json:"established"`

	// Discontinued is the year the office closed, or 0 if it was still
	// operating at the end of the record (2000).
	Discontinued int `json:"discontinued,omitempty"`

	Latitude  float64 `json:"latitude"`
	Longitude float64 `json:"longitude"`
}

// Open reports whether the office was operating in the given year.
func (p PostOffice) Open(year int) bool {
	if year < p.Established {
		return false
	}
	return p.Discontinued == 0 || year < p.Discontinued
}

// ParsePostOffices reads the post_offices.csv format.
//
// Required columns: name, state, established, discontinued, latitude,
// longitude. Rows without coordinates or an establishment year are dropped:
// they cannot be placed on the map. An empty or zero discontinued field
// means the office was still open at the end of the record.
//
// The source contains a few offices with implausible establishment years
// (data-entry artifacts like year 997); rows with an establishment year
// before 1600 or after 2010 are dropped as well.
func ParsePostOffices(r io.Reader) ([]PostOffice, error) {
	cr := csv.NewReader(r)
	cr.FieldsPerRecord = -1

	header, err := cr.Read()
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "reading post office header")
	}
	cols, err := columnIndex(header, "name", "state", "established", "discontinued", "latitude", "longitude")
	if err != nil {
		return nil, err
	}

	var offices []PostOffice
	for {
		rec, err := cr.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, errors.Wrap(errors.ErrCodeInvalidRecord, err, "reading post office row")
		}

		est, eerr := strconv.Atoi(field(rec, cols["established"]))
		lat, laterr := strconv.ParseFloat(field(rec, cols["latitude"]), 64)
		lon, lonerr := strconv.ParseFloat(field(rec, cols["longitude"]), 64)
		if eerr != nil || laterr != nil || lonerr != nil {
			continue
		}
		if est < 1600 || est > 2010 {
			continue
		}

		p := PostOffice{
			Name:        field(rec, cols["name"]),
			State:       field(rec, cols["state"]),
			Established: est,
			Latitude:    lat,
			Longitude:   lon,
		}
		if disc, err := strconv.Atoi(field(rec, cols["discontinued"])); err == nil && disc > 0 {
			p.Discontinued = disc
		}
		offices = append(offices, p)
	}
	return offices, nil
}
