package metallum

import (
	"net/url"
	"strconv"

	"github.com/lkowal/metallum/countries"
	"github.com/lkowal/metallum/pages"
)

// A BandQuery describes an advanced band search. Zero-valued fields are
// left out of the search; a wholly zero query matches nothing.
type BandQuery struct {
	// Name matches the band name, as a substring unless Strict is set.
	Name   string
	Strict bool
	// Genre matches the band's genre text.
	Genre string
	// Countries restricts matches to bands from any of the given
	// countries.
	Countries []countries.Country
	// FormedFrom and FormedTo bound the formation year, inclusive.
	FormedFrom int
	FormedTo   int
}

func (q BandQuery) isZero() bool {
	return q.Name == "" && q.Genre == "" && len(q.Countries) == 0 &&
		q.FormedFrom == 0 && q.FormedTo == 0
}

func (q BandQuery) params() url.Values {
	params := url.Values{}
	params.Set("bandName", q.Name)
	if q.Strict {
		params.Set("exactBandMatch", "1")
	}
	params.Set("genre", q.Genre)
	for _, c := range q.Countries {
		params.Add("country[]", c.Code())
	}
	if q.FormedFrom != 0 {
		params.Set("yearCreationFrom", strconv.Itoa(q.FormedFrom))
	}
	if q.FormedTo != 0 {
		params.Set("yearCreationTo", strconv.Itoa(q.FormedTo))
	}
	return params
}

// SearchBands runs the advanced band search and returns the matching bands.
// An empty query returns nothing without touching the site.
func SearchBands(q BandQuery) ([]*Band, error) {
	if q.isZero() {
		return nil, nil
	}
	rows, err := pages.NewBandSearchPage(site(), q.params()).Bands()
	if err != nil {
		return nil, err
	}
	bands := make([]*Band, len(rows))
	for i, row := range rows {
		hints := bandHints{name: row.Name, genres: pages.SplitList(row.Genres)}
		// The country cell degrades to a location when the search named
		// a single country; only a recognized country becomes a hint.
		if c, err := countries.ByName(row.Country); err == nil {
			hints.country = c
		}
		bands[i] = getBand(urlToID(row.URL), hints)
	}
	return bands, nil
}

// An AlbumQuery describes an advanced album search. Zero-valued fields are
// left out of the search; a wholly zero query matches nothing.
type AlbumQuery struct {
	// Name matches the release title, as a substring unless Strict is
	// set.
	Name   string
	Strict bool
	// Band matches the owning band's name, as a substring unless
	// BandStrict is set.
	Band       string
	BandStrict bool
	// YearFrom/MonthFrom and YearTo/MonthTo bound the release date,
	// inclusive. A month without its year is ignored.
	YearFrom  int
	MonthFrom int
	YearTo    int
	MonthTo   int
	// Genre matches the band's genre text.
	Genre string
	// Types restricts matches to the given release kinds.
	Types []ReleaseType
}

func (q AlbumQuery) isZero() bool {
	return q.Name == "" && q.Band == "" && q.Genre == "" && len(q.Types) == 0 &&
		q.YearFrom == 0 && q.MonthFrom == 0 && q.YearTo == 0 && q.MonthTo == 0
}

func (q AlbumQuery) params() url.Values {
	params := url.Values{}
	params.Set("releaseTitle", q.Name)
	if q.Strict {
		params.Set("exactReleaseMatch", "1")
	}
	params.Set("bandName", q.Band)
	if q.BandStrict {
		params.Set("exactBandMatch", "1")
	}
	// The site requires both ends of the date range once any part of it
	// is given, so the missing end gets a far-out default.
	if q.YearFrom != 0 || q.MonthFrom != 0 || q.YearTo != 0 || q.MonthTo != 0 {
		yearFrom, yearTo := q.YearFrom, q.YearTo
		if yearFrom == 0 {
			yearFrom = 1900
		}
		if yearTo == 0 {
			yearTo = 2999
		}
		params.Set("releaseYearFrom", strconv.Itoa(yearFrom))
		params.Set("releaseYearTo", strconv.Itoa(yearTo))
		if q.MonthFrom != 0 {
			params.Set("releaseMonthFrom", strconv.Itoa(q.MonthFrom))
		}
		if q.MonthTo != 0 {
			params.Set("releaseMonthTo", strconv.Itoa(q.MonthTo))
		}
	}
	params.Set("genre", q.Genre)
	for _, rt := range q.Types {
		if id, ok := releaseTypeSearchIDs[rt]; ok {
			params.Add("releaseType[]", strconv.Itoa(id))
		}
	}
	return params
}

// SearchAlbums runs the advanced album search and returns the matching
// albums. An empty query returns nothing without touching the site.
func SearchAlbums(q AlbumQuery) ([]*Album, error) {
	if q.isZero() {
		return nil, nil
	}
	rows, err := pages.NewAlbumSearchPage(site(), q.params()).Albums()
	if err != nil {
		return nil, err
	}
	albums := make([]*Album, len(rows))
	for i, row := range rows {
		hints := albumHints{name: row.Name}
		if date, err := ParseDate(row.ReleaseDate); err == nil {
			hints.year = date.Year
		}
		album := getAlbum(urlToID(row.URL), hints)
		// Seed the owning band too, so reading it later costs nothing.
		getBand(urlToID(row.BandURL), bandHints{name: row.BandName})
		albums[i] = album
	}
	return albums, nil
}

// RandomBand returns a random band from the site's catalog.
func RandomBand() (*Band, error) {
	u, err := pages.RandomBandURL(site())
	if err != nil {
		return nil, err
	}
	return GetBand(urlToID(u)), nil
}
