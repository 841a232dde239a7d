package metallum

import (
	"fmt"
	"strconv"
	"strings"
	"time"

	"github.com/lkowal/metallum/identity"
	"github.com/lkowal/metallum/lazy"
	"github.com/lkowal/metallum/pages"
)

// An Album is a release: a full-length, an EP, a split, or any of the
// site's other release kinds.
type Album struct {
	id   string
	page *pages.AlbumPage

	name            lazy.Cell[string]
	bands           lazy.Cell[[]*Band]
	releaseType     lazy.Cell[ReleaseType]
	year            lazy.Cell[int]
	releaseDate     lazy.Cell[PartialDate]
	catalogID       lazy.Cell[string]
	label           lazy.Cell[string]
	format          lazy.Cell[string]
	reviews         lazy.Cell[Link]
	discs           lazy.Cell[[]*Disc]
	lineup          lazy.Cell[[]*AlbumArtist]
	guestSession    lazy.Cell[[]*AlbumArtist]
	otherStaff      lazy.Cell[[]*AlbumArtist]
	additionalNotes lazy.Cell[string]
}

type albumHints struct {
	name string
	year int
}

// GetAlbum returns the album with the given id. Constructing the same id
// twice yields the same instance.
func GetAlbum(id string) *Album {
	return getAlbum(id, albumHints{})
}

func getAlbum(id string, hints albumHints) *Album {
	a, isNew := identity.Acquire(identity.Default, identity.Key("album", id), func() *Album {
		return &Album{id: id, page: pages.NewAlbumPage(site(), id)}
	})
	if isNew {
		if hints.name != "" {
			a.name.Set(hints.name)
		}
		if hints.year != 0 {
			a.year.Set(hints.year)
		}
	}
	return a
}

func (a *Album) ID() string {
	return a.id
}

func (a *Album) Name() (string, error) {
	return a.name.Get(a.page.Name)
}

// Bands returns the album's owning bands. More than one band means a split
// or a collaboration.
func (a *Album) Bands() ([]*Band, error) {
	return a.bands.Get(func() ([]*Band, error) {
		links, err := a.page.Bands()
		if err != nil {
			return nil, err
		}
		bands := make([]*Band, len(links))
		for i, link := range links {
			bands[i] = getBand(urlToID(link.URL), bandHints{name: link.Label})
		}
		return bands, nil
	})
}

func (a *Album) Type() (ReleaseType, error) {
	return a.releaseType.Get(func() (ReleaseType, error) {
		raw, err := a.page.Type()
		if err != nil {
			return "", err
		}
		return ParseReleaseType(raw)
	})
}

// Year returns the release year.
func (a *Album) Year() (int, error) {
	return a.year.Get(func() (int, error) {
		date, err := a.ReleaseDate()
		if err != nil {
			return 0, err
		}
		return date.Year, nil
	})
}

func (a *Album) ReleaseDate() (PartialDate, error) {
	return a.releaseDate.Get(func() (PartialDate, error) {
		raw, err := a.page.ReleaseDate()
		if err != nil {
			return PartialDate{}, err
		}
		return ParseDate(raw)
	})
}

// CatalogID returns the release's catalog id, or "" where the page says
// N/A.
func (a *Album) CatalogID() (string, error) {
	return a.catalogID.Get(func() (string, error) {
		raw, err := a.page.CatalogID()
		if err != nil {
			return "", err
		}
		return normalizeNA(raw), nil
	})
}

func (a *Album) Label() (string, error) {
	return a.label.Get(a.page.Label)
}

func (a *Album) Format() (string, error) {
	return a.format.Get(func() (string, error) {
		raw, err := a.page.Format()
		if err != nil {
			return "", err
		}
		return normalizeNA(raw), nil
	})
}

// Reviews returns the review summary text and, when reviews exist, the URL
// of the review page.
func (a *Album) Reviews() (Link, error) {
	return a.reviews.Get(func() (Link, error) {
		link, err := a.page.Reviews()
		if err != nil {
			return Link{}, err
		}
		return Link{URL: link.URL, Label: link.Label}, nil
	})
}

// Discs returns the album's discs in order. Single-disc albums have exactly
// one, unnamed.
func (a *Album) Discs() ([]*Disc, error) {
	return a.discs.Get(func() ([]*Disc, error) {
		names, err := a.page.DiscNames()
		if err != nil {
			return nil, err
		}
		discs := make([]*Disc, len(names))
		for i := range names {
			discs[i] = getDisc(a, i)
		}
		return discs, nil
	})
}

// TotalTime returns the album's total play time, summed over its discs.
// Zero means the page carries no time at all.
func (a *Album) TotalTime() (time.Duration, error) {
	discs, err := a.Discs()
	if err != nil {
		return 0, err
	}
	var total time.Duration
	for _, disc := range discs {
		t, err := disc.TotalTime()
		if err != nil {
			return 0, err
		}
		total += t
	}
	return total, nil
}

func (a *Album) Lineup() ([]*AlbumArtist, error) {
	return a.lineup.Get(func() ([]*AlbumArtist, error) {
		rows, err := a.page.Lineup()
		if err != nil {
			return nil, err
		}
		return a.albumArtists(rows), nil
	})
}

func (a *Album) GuestSessionMusicians() ([]*AlbumArtist, error) {
	return a.guestSession.Get(func() ([]*AlbumArtist, error) {
		rows, err := a.page.GuestSessionMusicians()
		if err != nil {
			return nil, err
		}
		return a.albumArtists(rows), nil
	})
}

func (a *Album) OtherStaff() ([]*AlbumArtist, error) {
	return a.otherStaff.Get(func() ([]*AlbumArtist, error) {
		rows, err := a.page.OtherStaff()
		if err != nil {
			return nil, err
		}
		return a.albumArtists(rows), nil
	})
}

func (a *Album) albumArtists(rows []pages.MemberRow) []*AlbumArtist {
	artists := make([]*AlbumArtist, len(rows))
	for i, row := range rows {
		artists[i] = newAlbumArtist(urlToID(row.URL), a, row.Name, row.Role)
	}
	return artists
}

func (a *Album) AdditionalNotes() (string, error) {
	return a.additionalNotes.Get(a.page.AdditionalNotes)
}

func (a *Album) String() string {
	name, err := a.Name()
	if err != nil {
		return fmt.Sprintf("<Album %s>", a.id)
	}
	if year, err := a.Year(); err == nil && year != 0 {
		return fmt.Sprintf("%s (%d)", name, year)
	}
	return name
}

var albumAttrs = []string{
	"additional_notes", "bands", "catalog_id", "discs", "format",
	"guest_session_musicians", "label", "lineup", "name", "other_staff",
	"release_date", "reviews", "total_time", "type", "year",
}

func (a *Album) Attrs() []string {
	return albumAttrs
}

func (a *Album) Attr(name string) (any, error) {
	switch name {
	case "additional_notes":
		return a.AdditionalNotes()
	case "bands":
		return a.Bands()
	case "catalog_id":
		return a.CatalogID()
	case "discs":
		return a.Discs()
	case "format":
		return a.Format()
	case "guest_session_musicians":
		return a.GuestSessionMusicians()
	case "label":
		return a.Label()
	case "lineup":
		return a.Lineup()
	case "name":
		return a.Name()
	case "other_staff":
		return a.OtherStaff()
	case "release_date":
		return a.ReleaseDate()
	case "reviews":
		return a.Reviews()
	case "total_time":
		return a.TotalTime()
	case "type":
		return a.Type()
	case "year":
		return a.Year()
	}
	return nil, fmt.Errorf("album attribute '%s': %w", name, ErrUnknownAttr)
}

// A Disc is one disc of an album. Its identity is positional: disc n of
// album x is the same instance everywhere.
type Disc struct {
	album *Album
	n     int

	name      lazy.Cell[string]
	totalTime lazy.Cell[time.Duration]
	tracks    lazy.Cell[[]*Track]
}

func getDisc(album *Album, n int) *Disc {
	d, _ := identity.Acquire(identity.Default, identity.PositionalKey("disc", album.id, n), func() *Disc {
		return &Disc{album: album, n: n}
	})
	return d
}

// Number returns the disc's 1-based position within its album.
func (d *Disc) Number() int {
	return d.n + 1
}

// Name returns the disc's title, like "Speak English or Die" for a disc
// headed "Disc 1 - Speak English or Die". Unnamed discs return "".
func (d *Disc) Name() (string, error) {
	return d.name.Get(func() (string, error) {
		names, err := d.album.page.DiscNames()
		if err != nil {
			return "", err
		}
		if _, name, ok := strings.Cut(names[d.n], "-"); ok {
			return strings.TrimSpace(name), nil
		}
		return "", nil
	})
}

// TotalTime returns the disc's total play time, or zero when the page
// carries none.
func (d *Disc) TotalTime() (time.Duration, error) {
	return d.totalTime.Get(func() (time.Duration, error) {
		times, err := d.album.page.TotalTimes()
		if err != nil {
			return 0, err
		}
		if d.n >= len(times) {
			return 0, nil
		}
		return ParseTime(times[d.n])
	})
}

// Tracks returns the disc's tracks in order.
func (d *Disc) Tracks() ([]*Track, error) {
	return d.tracks.Get(func() ([]*Track, error) {
		groups, err := d.album.page.Tracks()
		if err != nil {
			return nil, err
		}
		if d.n >= len(groups) {
			return nil, fmt.Errorf("album %s has no track list for disc %d", d.album.id, d.Number())
		}
		bands, err := d.album.Bands()
		if err != nil {
			return nil, err
		}
		tracks := make([]*Track, len(groups[d.n]))
		for i, row := range groups[d.n] {
			number, err := strconv.Atoi(row.Number)
			if err != nil {
				return nil, fmt.Errorf("error parsing track number '%s': %w", row.Number, err)
			}
			length, err := ParseTime(row.Time)
			if err != nil {
				return nil, err
			}
			// Some releases carry no per-track anchors; those tracks are
			// identified by their position instead of a site id.
			key := identity.Key("track", row.ID)
			if row.ID == "" {
				key = identity.PositionalKey("track", fmt.Sprintf("%s/%d", d.album.id, d.n), i)
			}
			tracks[i] = getTrack(key, row.ID, number, row.Name, length, row.Lyrics, bands)
		}
		return tracks, nil
	})
}

func (d *Disc) String() string {
	name, err := d.Name()
	if err != nil || name == "" {
		return fmt.Sprintf("<Disc %d of %s>", d.Number(), d.album.String())
	}
	return name
}

var discAttrs = []string{"name", "number", "total_time", "tracks"}

func (d *Disc) Attrs() []string {
	return discAttrs
}

func (d *Disc) Attr(name string) (any, error) {
	switch name {
	case "name":
		return d.Name()
	case "number":
		return d.Number(), nil
	case "total_time":
		return d.TotalTime()
	case "tracks":
		return d.Tracks()
	}
	return nil, fmt.Errorf("disc attribute '%s': %w", name, ErrUnknownAttr)
}
