// Package metallum is a read-only client for www.metal-archives.com that
// models the site as a graph of domain entities: bands, albums, discs,
// tracks, and artists.
//
// Entities are cheap to construct and lazy about everything else. Getting a
// band by id touches nothing; reading its first attribute fetches and
// parses the band's page, and the parsed value is memoized on the instance.
// Constructing the same entity twice yields the same instance, so values
// resolved through one reference are visible through every other.
package metallum

import (
	"net/url"
	"path"
	"strings"
	"sync"

	"github.com/PuerkitoBio/goquery"
	"github.com/lkowal/metallum/pages"
	"github.com/lkowal/metallum/session"
)

// An Entity is a thing, like a band or an album. Every entity has a
// displayable name and an enumerable set of named attributes; Attr is the
// by-name accessor that wrapper entities use to fall through to the entity
// they wrap.
type Entity interface {
	Name() (string, error)
	Attrs() []string
	Attr(name string) (any, error)
	String() string
}

// A Link pairs a URL with its display text.
type Link struct {
	URL   string
	Label string
}

var (
	siteMu  sync.Mutex
	curSite pages.Site
)

// UseSite replaces the page source used by entities constructed from now
// on. It exists for tests and custom transports; entities already
// constructed keep the source they were built with. The default source is
// the process-wide session.
func UseSite(s pages.Site) {
	siteMu.Lock()
	defer siteMu.Unlock()
	curSite = s
}

func site() pages.Site {
	siteMu.Lock()
	defer siteMu.Unlock()
	if curSite == nil {
		curSite = defaultSite{}
	}
	return curSite
}

// defaultSite defers to the session singleton, so that the session is not
// initialized before a page is actually needed and Configure still works
// any time before first use.
type defaultSite struct{}

func (defaultSite) Page(resource string) (*goquery.Document, error) {
	s, err := session.Default()
	if err != nil {
		return nil, err
	}
	return s.Page(resource)
}

func (defaultSite) Data(resource string, query url.Values) ([]byte, error) {
	s, err := session.Default()
	if err != nil {
		return nil, err
	}
	return s.Data(resource, query)
}

func (defaultSite) Resolve(resource string) (string, error) {
	s, err := session.Default()
	if err != nil {
		return "", err
	}
	return s.Resolve(resource)
}

// urlToID extracts the entity id from a site URL; the id is the last path
// segment, like https://host/path/more_path/id?param=value.
func urlToID(raw string) string {
	u, err := url.Parse(raw)
	if err != nil {
		return path.Base(raw)
	}
	return path.Base(u.Path)
}

// normalizeNA maps the site's "not applicable" markers onto an absent
// value.
func normalizeNA(s string) string {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "n/a", "unknown", "":
		return ""
	}
	return strings.TrimSpace(s)
}

// normalizeNAList maps a single-element "N/A" list onto an empty one.
func normalizeNAList(items []string) []string {
	if len(items) == 1 && strings.EqualFold(items[0], "n/a") {
		return nil
	}
	return items
}
