// Package pages reads the site's HTML pages and extracts structured records
// from them: lists of strings and link+label rows. It knows about page
// layout and nothing about entities; the entity layer turns these records
// into typed domain values.
package pages

import (
	"net/url"
	"regexp"
	"strings"

	"github.com/PuerkitoBio/goquery"
)

// A Site hands pages documents and raw payloads. The production
// implementation is the session package; tests use fakes that serve static
// HTML.
type Site interface {
	// Page fetches an HTML page by resource path and parses it.
	Page(resource string) (*goquery.Document, error)
	// Data fetches a raw payload, for the search endpoints that answer
	// with JSON.
	Data(resource string, query url.Values) ([]byte, error)
	// Resolve fetches a resource and reports the final URL after
	// redirects.
	Resolve(resource string) (string, error)
}

// A Link pairs a URL with its display text.
type Link struct {
	URL   string
	Label string
}

// A MemberRow is one row of a lineup table: a link to the artist, the name
// they are listed under, and their role text.
type MemberRow struct {
	URL  string
	Name string
	Role string
}

var sepRE = regexp.MustCompile(`\s*[,;]\s*`)

// SplitList splits a textual list field (genres, lyrical themes, years
// active) into its parts.
func SplitList(data string) []string {
	return sepRE.Split(strings.TrimSpace(data), -1)
}

// headerItem finds the value element for a <dt>label</dt><dd>value</dd>
// pair. The bool is false when the page has no such label.
func headerItem(doc *goquery.Document, name string) (*goquery.Selection, bool) {
	dt := doc.Find("dt").FilterFunction(func(i int, s *goquery.Selection) bool {
		return strings.TrimSpace(s.Text()) == name
	})
	if dt.Length() == 0 {
		return nil, false
	}
	return dt.First().Next(), true
}

// headerText returns the trimmed text of a header value, or "" when the
// label is absent.
func headerText(doc *goquery.Document, name string) string {
	elem, ok := headerItem(doc, name)
	if !ok {
		return ""
	}
	return strings.TrimSpace(elem.Text())
}

// memberRows extracts lineup-style rows: first cell holds the artist link,
// second cell the role.
func memberRows(rows *goquery.Selection) []MemberRow {
	var result []MemberRow
	rows.Each(func(i int, row *goquery.Selection) {
		a := row.Find("a").First()
		href, _ := a.Attr("href")
		role := row.Find("td:nth-child(2)").Text()
		role = strings.NewReplacer("\n", " ", "\u00a0", " ").Replace(role)
		result = append(result, MemberRow{
			URL:  href,
			Name: a.Text(),
			Role: strings.TrimSpace(role),
		})
	})
	return result
}
