package pages

import (
	"encoding/json"
	"fmt"
	"net/url"
	"strconv"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lkowal/metallum/lazy"
)

// A BandResult is one advanced-band-search match.
type BandResult struct {
	URL     string
	Name    string
	Genres  string
	Country string
	Formed  string
}

// A BandSearchPage runs the advanced band search with the given datatable
// parameters.
type BandSearchPage struct {
	site   Site
	params url.Values
	rows   lazy.Cell[[]BandResult]
}

func NewBandSearchPage(site Site, params url.Values) *BandSearchPage {
	return &BandSearchPage{site: site, params: params}
}

func (p *BandSearchPage) Bands() ([]BandResult, error) {
	return p.rows.Get(func() ([]BandResult, error) {
		records, err := fetchSearchRecords(p.site, "search/ajax-advanced/searching/bands", p.params)
		if err != nil {
			return nil, err
		}

		var results []BandResult
		for _, record := range records {
			href, name, err := parseFragmentLink(cellText(record, 0))
			if err != nil {
				return nil, err
			}
			entry := BandResult{
				URL:     href,
				Name:    name,
				Genres:  cellText(record, 1),
				Country: cellText(record, 2), // location when a single country was searched
			}
			if len(record) == 4 {
				entry.Formed = cellText(record, 3)
			}
			results = append(results, entry)
		}
		return results, nil
	})
}

// An AlbumResult is one advanced-album-search match.
type AlbumResult struct {
	URL         string
	Name        string
	BandURL     string
	BandName    string
	ReleaseDate string
}

// An AlbumSearchPage runs the advanced album search with the given
// datatable parameters.
type AlbumSearchPage struct {
	site   Site
	params url.Values
	rows   lazy.Cell[[]AlbumResult]
}

func NewAlbumSearchPage(site Site, params url.Values) *AlbumSearchPage {
	return &AlbumSearchPage{site: site, params: params}
}

func (p *AlbumSearchPage) Albums() ([]AlbumResult, error) {
	return p.rows.Get(func() ([]AlbumResult, error) {
		records, err := fetchSearchRecords(p.site, "search/ajax-advanced/searching/albums/", p.params)
		if err != nil {
			return nil, err
		}

		var results []AlbumResult
		for _, record := range records {
			bandHref, bandName, err := parseFragmentLink(cellText(record, 0))
			if err != nil {
				return nil, err
			}
			albumHref, albumName, err := parseFragmentLink(cellText(record, 1))
			if err != nil {
				return nil, err
			}
			// The date cell carries a trailing HTML comment.
			date := cellText(record, 3)
			if idx := strings.Index(date, "<"); idx >= 0 {
				date = date[:idx]
			}
			results = append(results, AlbumResult{
				URL:         albumHref,
				Name:        albumName,
				BandURL:     bandHref,
				BandName:    bandName,
				ReleaseDate: strings.TrimSpace(date),
			})
		}
		return results, nil
	})
}

// fetchSearchRecords pages through a datatable endpoint, accumulating rows
// until iTotalRecords are in hand. The iDisplayLength parameter is ignored
// by the site, so paging via iDisplayStart is the only option.
func fetchSearchRecords(site Site, resource string, params url.Values) ([][]any, error) {
	fetch := func() (int, [][]any, error) {
		body, err := site.Data(resource, params)
		if err != nil {
			return 0, nil, err
		}
		var payload struct {
			TotalRecords int     `json:"iTotalRecords"`
			Data         [][]any `json:"aaData"`
		}
		if err := json.Unmarshal(body, &payload); err != nil {
			return 0, nil, fmt.Errorf("error decoding search response: %w", err)
		}
		return payload.TotalRecords, payload.Data, nil
	}

	total, records, err := fetch()
	if err != nil {
		return nil, err
	}
	if len(records) == 0 {
		return nil, nil
	}
	for len(records) < total {
		params.Set("iDisplayStart", strconv.Itoa(len(records)))
		_, page, err := fetch()
		if err != nil {
			return nil, err
		}
		if len(page) == 0 {
			break
		}
		records = append(records, page...)
	}
	return records, nil
}

func cellText(record []any, i int) string {
	if i >= len(record) {
		return ""
	}
	if s, ok := record[i].(string); ok {
		return s
	}
	return fmt.Sprint(record[i])
}

// parseFragmentLink extracts the href and text of the first anchor in an
// HTML fragment, as the search endpoints embed links inside JSON cells.
func parseFragmentLink(fragment string) (string, string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(fragment))
	if err != nil {
		return "", "", fmt.Errorf("error parsing search result fragment: %w", err)
	}
	a := doc.Find("a").First()
	if a.Length() == 0 {
		return "", "", fmt.Errorf("no link in search result fragment '%s'", fragment)
	}
	href, _ := a.Attr("href")
	return href, a.Text(), nil
}

// RandomBandURL asks the site for a random band and returns the band page
// URL it redirects to.
func RandomBandURL(site Site) (string, error) {
	return site.Resolve("band/random")
}
