package pages

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lkowal/metallum/lazy"
)

// A BandPage reads a band's main page, like
// https://www.metal-archives.com/bands/_/138.
type BandPage struct {
	site Site
	id   string
	doc  lazy.Cell[*goquery.Document]
}

func NewBandPage(site Site, id string) *BandPage {
	return &BandPage{site: site, id: id}
}

func (p *BandPage) document() (*goquery.Document, error) {
	return p.doc.Get(func() (*goquery.Document, error) {
		return p.site.Page(fmt.Sprintf("bands/_/%s", p.id))
	})
}

func (p *BandPage) Name() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return doc.Find(".band_name a").First().Text(), nil
}

func (p *BandPage) Country() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Country of origin:"), nil
}

func (p *BandPage) Location() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Location:"), nil
}

func (p *BandPage) Status() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Status:"), nil
}

func (p *BandPage) FormedIn() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Formed in:"), nil
}

func (p *BandPage) YearsActive() ([]string, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	return SplitList(headerText(doc, "Years active:")), nil
}

func (p *BandPage) Genres() ([]string, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	return SplitList(headerText(doc, "Genre:")), nil
}

func (p *BandPage) LyricalThemes() ([]string, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	return SplitList(headerText(doc, "Lyrical themes:")), nil
}

func (p *BandPage) CurrentLabel() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Current label:"), nil
}

func (p *BandPage) LastLabel() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Last label:"), nil
}

func (p *BandPage) Lineup() ([]MemberRow, error) {
	return p.members("#band_tab_members_current tr.lineupRow")
}

func (p *BandPage) PastMembers() ([]MemberRow, error) {
	return p.members("#band_tab_members_past tr.lineupRow")
}

func (p *BandPage) LiveMusicians() ([]MemberRow, error) {
	return p.members("#band_tab_members_live tr.lineupRow")
}

func (p *BandPage) members(selector string) ([]MemberRow, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	return memberRows(doc.Find(selector)), nil
}

// Info returns the band's free-text comment. Long comments are truncated on
// the band page behind a "read more" link; in that case the full text comes
// from a secondary page.
func (p *BandPage) Info() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	if doc.Find(".band_comment a.btn_read_more").Length() > 0 {
		full, err := p.site.Page(fmt.Sprintf("band/read-more/id/%s", p.id))
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(full.Text()), nil
	}
	var parts []string
	doc.Find(".band_comment").Contents().Each(func(i int, s *goquery.Selection) {
		parts = append(parts, strings.TrimSpace(s.Text()))
	})
	return strings.TrimSpace(strings.Join(parts, " ")), nil
}

func (p *BandPage) LastModified() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	row := doc.Find("td").FilterFunction(func(i int, s *goquery.Selection) bool {
		return strings.Contains(s.Text(), "Last modified on")
	})
	return row.First().Text(), nil
}

// A DiscographyPage reads a band's complete-discography tab.
type DiscographyPage struct {
	site Site
	id   string
	doc  lazy.Cell[*goquery.Document]
}

func NewDiscographyPage(site Site, id string) *DiscographyPage {
	return &DiscographyPage{site: site, id: id}
}

// An AlbumRow is one discography entry, in the page's chronological order.
type AlbumRow struct {
	URL     string
	Name    string
	Type    string
	Year    string
	Reviews Link
}

func (p *DiscographyPage) Albums() ([]AlbumRow, error) {
	doc, err := p.doc.Get(func() (*goquery.Document, error) {
		return p.site.Page(fmt.Sprintf("band/discography/id/%s/tab/all", p.id))
	})
	if err != nil {
		return nil, err
	}

	var rows []AlbumRow
	doc.Find(".discog tbody tr").Each(func(i int, row *goquery.Selection) {
		a := row.Find("td:nth-child(1) a").First()
		href, _ := a.Attr("href")
		entry := AlbumRow{
			URL:  href,
			Name: a.Text(),
			Type: row.Find("td:nth-child(2)").Text(),
			Year: row.Find("td:nth-child(3)").Text(),
		}
		reviews := row.Find("td:nth-child(4)")
		if strings.TrimSpace(reviews.Text()) != "" {
			link := reviews.Find("a").First()
			rhref, _ := link.Attr("href")
			entry.Reviews = Link{URL: rhref, Label: link.Text()}
		}
		rows = append(rows, entry)
	})
	return rows, nil
}

// A BandRecommendationsPage reads a band's similar-artists table.
type BandRecommendationsPage struct {
	site Site
	id   string
	doc  lazy.Cell[*goquery.Document]
}

func NewBandRecommendationsPage(site Site, id string) *BandRecommendationsPage {
	return &BandRecommendationsPage{site: site, id: id}
}

// A SimilarRow is one similar-band entry with its similarity score.
type SimilarRow struct {
	URL     string
	Name    string
	Country string
	Genres  string
	Score   string
}

func (p *BandRecommendationsPage) SimilarArtists() ([]SimilarRow, error) {
	doc, err := p.doc.Get(func() (*goquery.Document, error) {
		return p.site.Page(fmt.Sprintf("band/ajax-recommendations/id/%s/showMoreSimilar/1", p.id))
	})
	if err != nil {
		return nil, err
	}

	rows := doc.Find("#artist_list tr:not(:last-child)")
	if rows.Length() > 0 && strings.HasPrefix(strings.TrimSpace(rows.First().Text()), "No similar artist") {
		return nil, nil
	}

	var results []SimilarRow
	rows.Each(func(i int, row *goquery.Selection) {
		cells := row.Find("td")
		a := cells.Eq(0).Find("a").First()
		href, _ := a.Attr("href")
		results = append(results, SimilarRow{
			URL:     href,
			Name:    cells.Eq(0).Text(),
			Country: cells.Eq(1).Text(),
			Genres:  cells.Eq(2).Text(),
			Score:   strings.TrimSpace(cells.Eq(3).Text()),
		})
	})
	return results, nil
}
