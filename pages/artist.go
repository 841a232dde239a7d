package pages

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lkowal/metallum/lazy"
)

// A BandTab is one band section of an artist's bands tab: the band itself
// (URL empty when the band is outside the site's catalog), the artist's
// role there, the name they appear under, and their album credits.
type BandTab struct {
	BandURL      string
	BandName     string
	Role         string
	NameInLineup string
	Albums       []CreditRow
}

// A CreditRow is one album credit within a band section.
type CreditRow struct {
	URL         string
	Name        string
	Role        string
	NameOnAlbum string
}

// An ArtistPage reads an artist page, like
// https://www.metal-archives.com/artists/_/184.
type ArtistPage struct {
	site Site
	id   string
	doc  lazy.Cell[*goquery.Document]
}

func NewArtistPage(site Site, id string) *ArtistPage {
	return &ArtistPage{site: site, id: id}
}

func (p *ArtistPage) document() (*goquery.Document, error) {
	return p.doc.Get(func() (*goquery.Document, error) {
		return p.site.Page(fmt.Sprintf("artists/_/%s", p.id))
	})
}

func (p *ArtistPage) Name() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return doc.Find(".band_member_name").First().Text(), nil
}

func (p *ArtistPage) RealFullName() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Real/full name:"), nil
}

func (p *ArtistPage) Age() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Age:"), nil
}

func (p *ArtistPage) PlaceOfBirth() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Place of birth:"), nil
}

func (p *ArtistPage) Gender() (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}
	return headerText(doc, "Gender:"), nil
}

// Biography returns the artist's biography section, following the
// "Read more" link to the full text when the section is truncated.
func (p *ArtistPage) Biography() (string, error) {
	return p.extendedSection("Biography", fmt.Sprintf("artist/read-more/id/%s", p.id))
}

// Trivia returns the artist's trivia section, following "Read more" like
// Biography does.
func (p *ArtistPage) Trivia() (string, error) {
	return p.extendedSection("Trivia", fmt.Sprintf("artist/read-more/id/%s/field/trivia", p.id))
}

// extendedSection pulls the text under an <h2> caption in the member
// comment block. The HTML there is loose: the text lives in a mix of bare
// text nodes and elements, terminated by the next caption or a "Read more"
// link pointing at a secondary page with the complete text.
func (p *ArtistPage) extendedSection(caption, readMoreResource string) (string, error) {
	doc, err := p.document()
	if err != nil {
		return "", err
	}

	top := doc.Find("#member_content .band_comment").First()
	heading := top.ChildrenFiltered("h2").FilterFunction(func(i int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == caption
	})
	if heading.Length() == 0 {
		return "", nil
	}

	contents := top.Contents()
	start := -1
	contents.EachWithBreak(func(i int, s *goquery.Selection) bool {
		if s.Nodes[0] == heading.Nodes[0] {
			start = i
			return false
		}
		return true
	})
	if start < 0 {
		return "", nil
	}

	var parts []string
	hasReadMore := false
	for i := start + 1; i < contents.Length(); i++ {
		s := contents.Eq(i)
		name := goquery.NodeName(s)
		if name == "h2" {
			break
		}
		text := strings.TrimSpace(s.Text())
		if text == "Read more" {
			hasReadMore = true
			break
		}
		if text != "" {
			parts = append(parts, text)
		}
	}

	if hasReadMore {
		full, err := p.site.Page(readMoreResource)
		if err != nil {
			return "", err
		}
		return strings.TrimSpace(full.Text()), nil
	}
	return strings.Join(parts, " "), nil
}

var (
	lineupAliasRE = regexp.MustCompile(`(?i)^As (.+): (.+)$`)
	albumAliasRE  = regexp.MustCompile(`(?i)^(.+) \(as "(.+)"\)$`)
)

func (p *ArtistPage) ActiveBands() ([]BandTab, error) {
	return p.bandTab("#artist_tab_active")
}

func (p *ArtistPage) PastBands() ([]BandTab, error) {
	return p.bandTab("#artist_tab_past")
}

func (p *ArtistPage) GuestSession() ([]BandTab, error) {
	return p.bandTab("#artist_tab_guest")
}

func (p *ArtistPage) MiscStaff() ([]BandTab, error) {
	return p.bandTab("#artist_tab_misc")
}

// bandTab extracts one of the four band-association tabs. Role text may
// carry an "As Stagename: role" prefix naming the artist's lineup-wide
// alias, and individual album roles may carry a `role (as "Name")` suffix
// overriding the display name for that one credit.
func (p *ArtistPage) bandTab(tab string) ([]BandTab, error) {
	doc, err := p.document()
	if err != nil {
		return nil, err
	}
	artistName, err := p.Name()
	if err != nil {
		return nil, err
	}

	var result []BandTab
	doc.Find(tab + " div.member_in_band").Each(func(i int, section *goquery.Selection) {
		var entry BandTab

		band := section.Find(".member_in_band_name").First()
		if a := band.Find("a").First(); a.Length() > 0 {
			entry.BandURL, _ = a.Attr("href")
			entry.BandName = a.Text()
		} else {
			entry.BandName = strings.TrimSpace(band.Text())
		}

		roleText := strings.TrimSpace(strings.ReplaceAll(section.Find(".member_in_band_role").First().Text(), "\n", " "))
		entry.NameInLineup = artistName
		if m := lineupAliasRE.FindStringSubmatch(roleText); m != nil {
			entry.NameInLineup = m[1]
			entry.Role = m[2]
		} else {
			entry.Role = roleText
		}

		section.Find("table tr").Each(func(j int, row *goquery.Selection) {
			if strings.Contains(row.Text(), "show all") {
				return
			}
			var credit CreditRow
			album := row.Find("td:nth-of-type(2) a").First()
			credit.URL, _ = album.Attr("href")
			credit.Name = album.Text()
			credit.Role = strings.TrimSpace(row.Find("td:nth-of-type(3)").Text())
			credit.NameOnAlbum = entry.NameInLineup
			if m := albumAliasRE.FindStringSubmatch(credit.Role); m != nil {
				credit.Role = m[1]
				credit.NameOnAlbum = m[2]
			}
			entry.Albums = append(entry.Albums, credit)
		})

		result = append(result, entry)
	})
	return result, nil
}

// Links returns the artist's external links from the links popup.
func (p *ArtistPage) Links() ([]Link, error) {
	doc, err := p.site.Page(fmt.Sprintf("link/ajax-list/type/person/id/%s", p.id))
	if err != nil {
		return nil, err
	}
	var links []Link
	doc.Find("a").Each(func(i int, a *goquery.Selection) {
		href, _ := a.Attr("href")
		links = append(links, Link{URL: href, Label: a.Text()})
	})
	return links, nil
}
