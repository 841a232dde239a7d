package pages_test

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lkowal/metallum/pages"
)

// fakeSite serves static fixtures, counting page fetches per resource.
type fakeSite struct {
	pages    map[string]string
	data     func(resource string, query url.Values) ([]byte, error)
	resolved string
	fetches  map[string]int
}

func newFakeSite(fixtures map[string]string) *fakeSite {
	return &fakeSite{pages: fixtures, fetches: map[string]int{}}
}

func (f *fakeSite) Page(resource string) (*goquery.Document, error) {
	f.fetches[resource]++
	html, ok := f.pages[resource]
	if !ok {
		return nil, fmt.Errorf("no fixture for '%s'", resource)
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

func (f *fakeSite) Data(resource string, query url.Values) ([]byte, error) {
	if f.data == nil {
		return nil, fmt.Errorf("no data fixture for '%s'", resource)
	}
	return f.data(resource, query)
}

func (f *fakeSite) Resolve(resource string) (string, error) {
	if f.resolved == "" {
		return "", fmt.Errorf("no resolve fixture for '%s'", resource)
	}
	return f.resolved, nil
}

var _ pages.Site = (*fakeSite)(nil)
