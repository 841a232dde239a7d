package pages

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lkowal/metallum/lazy"
)

// LyricsRef is the lyrics marker on a track row: the row either links to
// lyrics, is marked instrumental, or says nothing.
type LyricsRef int

const (
	LyricsUnknown LyricsRef = iota
	LyricsInstrumental
	LyricsAvailable
)

// A TrackRow is one track-list row. Number and Time are kept as page text;
// the entity layer parses them.
type TrackRow struct {
	ID     string
	Number string
	Name   string
	Time   string
	Lyrics LyricsRef
}

// An AlbumPage reads an album page, like
// https://www.metal-archives.com/albums/_/_/826.
type AlbumPage struct {
	site Site
	id   string
	doc  lazy.Cell[*goquery.Document]
}

func NewAlbumPage(site Site, id string) *AlbumPage {
	return &AlbumPage{site: site, id: id}
}

func (p *AlbumPage) document() (*goquery.Document, error) {
	return p.doc.Get(func() (*goquery.Document, error) {
		return p.site.Page(fmt.Sprintf("albums/_/_/%s", p.id))
	})
}

func (p *AlbumPage) Name() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return doc.Find(".album_name a").First().Text(), nil
}

// Bands returns the album's owning bands. More than one band signals a
// split or collaboration release.
func (p *AlbumPage) Bands() ([]Link, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	var bands []Link
	doc.Find("#album_info .band_name a").Each(func(i int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		bands = append(bands, Link{URL: href, Label: a.Text()})
	})
	return bands, nil
}

func (p *AlbumPage) Type() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Type:"), nil
}

func (p *AlbumPage) ReleaseDate() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Release date:"), nil
}

func (p *AlbumPage) CatalogID() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Catalog ID:"), nil
}

func (p *AlbumPage) Label() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Label:"), nil
}

func (p *AlbumPage) Format() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Format:"), nil
}

// Reviews returns the review count text and, when reviews exist, a link to
// the review page.
func (p *AlbumPage) Reviews() (Link, error) {
	doc, err := p.document()
	if err != nil {
		return Link{}, err
	}
	elem, ok := headerItem(doc, "Reviews:")
	if !ok {
		return Link{}, nil
	}
	link := Link{Label: elem.Text()}
	if a := elem.Find("a").First(); a.Length() > 0 {
		link.URL, _ = a.Attr("href")
	}
	return link, nil
}

// Tracks returns the track rows grouped by disc. Albums without named discs
// yield a single group.
func (p *AlbumPage) Tracks() ([][]TrackRow, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}

	result := [][]TrackRow{{}}
	doc.Find("#album_tabs_tracklist").Find("tr.even,tr.odd,.discRow").Each(func(i int, row *goquery.Selection) {
		if row.HasClass("discRow") {
			if len(result[len(result)-1]) != 0 {
				result = append(result, []TrackRow{})
			}
			return
		}

		var track TrackRow
		first := row.Find("td:nth-of-type(1)")
		track.ID, _ = first.Find("a").First().Attr("name")
		number := first.Text()
		if idx := strings.Index(number, "."); idx >= 0 {
			number = number[:idx]
		}
		track.Number = strings.TrimSpace(number)
		track.Name = strings.TrimSpace(row.Find("td:nth-of-type(2)").Text())
		track.Time = strings.TrimSpace(row.Find("td:nth-of-type(3)").Text())

		lyrics := row.Find("td:nth-of-type(4)")
		switch {
		case lyrics.Find("a").Length() > 0:
			track.Lyrics = LyricsAvailable
		case lyrics.Find("em").Length() > 0:
			track.Lyrics = LyricsInstrumental
		default:
			track.Lyrics = LyricsUnknown
		}

		result[len(result)-1] = append(result[len(result)-1], track)
	})
	return result, nil
}

// DiscNames returns the disc header texts, one per disc. An album without
// disc headers yields a single empty name.
func (p *AlbumPage) DiscNames() ([]string, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	var names []string
	doc.Find(".discRow td").Each(func(i int, s *goquery.Selection) {
		names = append(names, s.Text())
	})
	if len(names) == 0 {
		names = []string{""}
	}
	return names, nil
}

// TotalTimes returns the per-disc total-time texts, aligned with DiscNames.
func (p *AlbumPage) TotalTimes() ([]string, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	var times []string
	doc.Find(".table_lyrics strong").Each(func(i int, s *goquery.Selection) {
		times = append(times, s.Text())
	})
	if len(times) == 0 {
		times = []string{""}
	}
	return times, nil
}

func (p *AlbumPage) Lineup() ([]MemberRow, error) {
	return p.people("#album_members_lineup")
}

func (p *AlbumPage) GuestSessionMusicians() ([]MemberRow, error) {
	return p.people("#album_members_guest")
}

func (p *AlbumPage) OtherStaff() ([]MemberRow, error) {
	return p.people("#album_members_misc")
}

func (p *AlbumPage) people(groupID string) ([]MemberRow, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	return memberRows(doc.Find(groupID + " tr.lineupRow")), nil
}

func (p *AlbumPage) AdditionalNotes() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Find("#album_tabs_notes").Text()), nil
}

// A LyricsPage reads the lyrics of a single track.
type LyricsPage struct {
	site Site
	id   string
}

func NewLyricsPage(site Site, id string) *LyricsPage {
	return &LyricsPage{site: site, id: id}
}

func (p *LyricsPage) Lyrics() (string, error) {
	doc, err := p.site.Page(fmt.Sprintf("release/ajax-view-lyrics/id/%s", p.id))
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(doc.Text()), nil
}
