package metallum

import (
	"fmt"
	"regexp"
	"strconv"
	"time"

	"github.com/lkowal/metallum/countries"
	"github.com/lkowal/metallum/identity"
	"github.com/lkowal/metallum/lazy"
	"github.com/lkowal/metallum/pages"
)

// A Band is a band, or an artist performing as one. All attributes resolve
// lazily from the band's pages and are memoized per instance.
type Band struct {
	id    string
	page  *pages.BandPage
	disco *pages.DiscographyPage

	name          lazy.Cell[string]
	country       lazy.Cell[countries.Country]
	location      lazy.Cell[string]
	formedIn      lazy.Cell[int]
	yearsActive   lazy.Cell[[]string]
	genres        lazy.Cell[[]string]
	status        lazy.Cell[BandStatus]
	lyricalThemes lazy.Cell[[]string]
	label         lazy.Cell[string]
	lineup        lazy.Cell[[]*LineupArtist]
	pastMembers   lazy.Cell[[]*LineupArtist]
	liveMusicians lazy.Cell[[]*LineupArtist]
	discography   lazy.Cell[[]*Album]
	similarBands  lazy.Cell[[]*SimilarBand]
	info          lazy.Cell[string]
	lastModified  lazy.Cell[time.Time]
}

type bandHints struct {
	name    string
	country countries.Country
	genres  []string
}

// GetBand returns the band with the given id. Constructing the same id
// twice yields the same instance.
func GetBand(id string) *Band {
	return getBand(id, bandHints{})
}

// getBand acquires a band through the identity registry. Hints discovered
// while enumerating another page (a name, a country) pre-resolve the
// matching attributes, but only on a genuinely new instance: on a cache hit
// they are discarded in favor of whatever the instance already holds.
func getBand(id string, hints bandHints) *Band {
	b, isNew := identity.Acquire(identity.Default, identity.Key("band", id), func() *Band {
		s := site()
		return &Band{
			id:    id,
			page:  pages.NewBandPage(s, id),
			disco: pages.NewDiscographyPage(s, id),
		}
	})
	if isNew {
		if hints.name != "" {
			b.name.Set(hints.name)
		}
		if hints.country != "" {
			b.country.Set(hints.country)
		}
		if len(hints.genres) > 0 {
			b.genres.Set(hints.genres)
		}
	}
	return b
}

func (b *Band) ID() string {
	return b.id
}

func (b *Band) Name() (string, error) {
	return b.name.Get(b.page.Name)
}

func (b *Band) Country() (countries.Country, error) {
	return b.country.Get(func() (countries.Country, error) {
		raw, err := b.page.Country()
		if err != nil {
			return "", err
		}
		return countries.ByName(raw)
	})
}

// Location returns the band's location, or "" where the page says N/A.
func (b *Band) Location() (string, error) {
	return b.location.Get(func() (string, error) {
		raw, err := b.page.Location()
		if err != nil {
			return "", err
		}
		return normalizeNA(raw), nil
	})
}

// FormedIn returns the year the band formed, or 0 when unknown.
func (b *Band) FormedIn() (int, error) {
	return b.formedIn.Get(func() (int, error) {
		raw, err := b.page.FormedIn()
		if err != nil {
			return 0, err
		}
		if normalizeNA(raw) == "" {
			return 0, nil
		}
		return strconv.Atoi(normalizeNA(raw))
	})
}

func (b *Band) YearsActive() ([]string, error) {
	return b.yearsActive.Get(func() ([]string, error) {
		raw, err := b.page.YearsActive()
		if err != nil {
			return nil, err
		}
		return normalizeNAList(raw), nil
	})
}

func (b *Band) Genres() ([]string, error) {
	return b.genres.Get(b.page.Genres)
}

func (b *Band) Status() (BandStatus, error) {
	return b.status.Get(func() (BandStatus, error) {
		raw, err := b.page.Status()
		if err != nil {
			return "", err
		}
		return ParseBandStatus(raw)
	})
}

func (b *Band) LyricalThemes() ([]string, error) {
	return b.lyricalThemes.Get(func() ([]string, error) {
		raw, err := b.page.LyricalThemes()
		if err != nil {
			return nil, err
		}
		return normalizeNAList(raw), nil
	})
}

// Label returns the band's current label, falling back to its last label
// for bands that no longer have one.
func (b *Band) Label() (string, error) {
	return b.label.Get(func() (string, error) {
		current, err := b.page.CurrentLabel()
		if err != nil {
			return "", err
		}
		if current != "" {
			return current, nil
		}
		return b.page.LastLabel()
	})
}

func (b *Band) Lineup() ([]*LineupArtist, error) {
	return b.lineup.Get(func() ([]*LineupArtist, error) {
		rows, err := b.page.Lineup()
		if err != nil {
			return nil, err
		}
		return b.lineupArtists(rows), nil
	})
}

func (b *Band) PastMembers() ([]*LineupArtist, error) {
	return b.pastMembers.Get(func() ([]*LineupArtist, error) {
		rows, err := b.page.PastMembers()
		if err != nil {
			return nil, err
		}
		return b.lineupArtists(rows), nil
	})
}

func (b *Band) LiveMusicians() ([]*LineupArtist, error) {
	return b.liveMusicians.Get(func() ([]*LineupArtist, error) {
		rows, err := b.page.LiveMusicians()
		if err != nil {
			return nil, err
		}
		return b.lineupArtists(rows), nil
	})
}

func (b *Band) lineupArtists(rows []pages.MemberRow) []*LineupArtist {
	artists := make([]*LineupArtist, len(rows))
	for i, row := range rows {
		artists[i] = newLineupArtist(urlToID(row.URL), b, row.Name, row.Role)
	}
	return artists
}

// Discography returns the band's albums in chronological order.
func (b *Band) Discography() ([]*Album, error) {
	return b.discography.Get(func() ([]*Album, error) {
		rows, err := b.disco.Albums()
		if err != nil {
			return nil, err
		}
		albums := make([]*Album, len(rows))
		for i, row := range rows {
			hints := albumHints{name: row.Name}
			if year, err := strconv.Atoi(row.Year); err == nil {
				hints.year = year
			}
			albums[i] = getAlbum(urlToID(row.URL), hints)
		}
		return albums, nil
	})
}

// SimilarBands returns the site's similar-band recommendations with their
// scores, best first.
func (b *Band) SimilarBands() ([]*SimilarBand, error) {
	return b.similarBands.Get(func() ([]*SimilarBand, error) {
		rows, err := pages.NewBandRecommendationsPage(site(), b.id).SimilarArtists()
		if err != nil {
			return nil, err
		}
		similar := make([]*SimilarBand, len(rows))
		for i, row := range rows {
			hints := bandHints{name: row.Name, genres: pages.SplitList(row.Genres)}
			if c, err := countries.ByName(row.Country); err == nil {
				hints.country = c
			}
			score, err := strconv.Atoi(row.Score)
			if err != nil {
				return nil, fmt.Errorf("error parsing similarity score '%s': %w", row.Score, err)
			}
			similar[i] = newSimilarBand(getBand(urlToID(row.URL), hints), b, score)
		}
		return similar, nil
	})
}

// Info returns the band's free-text comment, or "" when there is none.
func (b *Band) Info() (string, error) {
	return b.info.Get(func() (string, error) {
		raw, err := b.page.Info()
		if err != nil {
			return "", err
		}
		return normalizeNA(raw), nil
	})
}

var lastModifiedRE = regexp.MustCompile(`(\d{4})-(\d{2})-(\d{2})\s+(\d{2}):(\d{2}):(\d{2})`)

// LastModified returns the page's last-modification timestamp.
func (b *Band) LastModified() (time.Time, error) {
	return b.lastModified.Get(func() (time.Time, error) {
		raw, err := b.page.LastModified()
		if err != nil {
			return time.Time{}, err
		}
		m := lastModifiedRE.FindStringSubmatch(raw)
		if m == nil {
			return time.Time{}, fmt.Errorf("no timestamp in '%s'", raw)
		}
		return time.Parse("2006-01-02 15:04:05", fmt.Sprintf("%s-%s-%s %s:%s:%s", m[1], m[2], m[3], m[4], m[5], m[6]))
	})
}

func (b *Band) String() string {
	name, err := b.Name()
	if err != nil {
		return fmt.Sprintf("<Band %s>", b.id)
	}
	country, err := b.Country()
	if err != nil {
		return name
	}
	return fmt.Sprintf("%s (%s)", name, country)
}

var bandAttrs = []string{
	"country", "discography", "formed_in", "genres", "info", "label",
	"last_modified", "lineup", "live_musicians", "location",
	"lyrical_themes", "name", "past_members", "similar_bands", "status",
	"years_active",
}

func (b *Band) Attrs() []string {
	return bandAttrs
}

func (b *Band) Attr(name string) (any, error) {
	switch name {
	case "country":
		return b.Country()
	case "discography":
		return b.Discography()
	case "formed_in":
		return b.FormedIn()
	case "genres":
		return b.Genres()
	case "info":
		return b.Info()
	case "label":
		return b.Label()
	case "last_modified":
		return b.LastModified()
	case "lineup":
		return b.Lineup()
	case "live_musicians":
		return b.LiveMusicians()
	case "location":
		return b.Location()
	case "lyrical_themes":
		return b.LyricalThemes()
	case "name":
		return b.Name()
	case "past_members":
		return b.PastMembers()
	case "similar_bands":
		return b.SimilarBands()
	case "status":
		return b.Status()
	case "years_active":
		return b.YearsActive()
	}
	return nil, fmt.Errorf("band attribute '%s': %w", name, ErrUnknownAttr)
}
