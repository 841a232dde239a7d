package metallum

import (
	"fmt"

	"github.com/lkowal/metallum/identity"
	"github.com/lkowal/metallum/lazy"
	"github.com/lkowal/metallum/pages"
)

// An Artist is a person: a musician or other staff credited on the site.
type Artist struct {
	id   string
	page *pages.ArtistPage

	name         lazy.Cell[string]
	realFullName lazy.Cell[string]
	age          lazy.Cell[string]
	placeOfBirth lazy.Cell[string]
	gender       lazy.Cell[string]
	biography    lazy.Cell[string]
	trivia       lazy.Cell[string]
	links        lazy.Cell[[]Link]
	activeBands  lazy.Cell[[]BandAssociation]
	pastBands    lazy.Cell[[]BandAssociation]
	guestSession lazy.Cell[[]BandAssociation]
	miscStaff    lazy.Cell[[]BandAssociation]
}

// A BandAssociation ties an artist to a band: the band (an ExternalEntity
// when the band is outside the site's catalog), the artist's role there,
// the name they appear under, and their album credits.
type BandAssociation struct {
	Band         Entity
	Role         string
	NameInLineup string
	Albums       []AlbumCredit
}

// An AlbumCredit is one album the artist is credited on within a band
// association. NameOnAlbum is the name the artist used on that album, which
// overrides the lineup-wide name when the credit carries its own alias.
type AlbumCredit struct {
	Album       *Album
	Role        string
	NameOnAlbum string
}

type artistHints struct {
	name string
}

// GetArtist returns the artist with the given id. Constructing the same id
// twice yields the same instance.
func GetArtist(id string) *Artist {
	return getArtist(id, artistHints{})
}

func getArtist(id string, hints artistHints) *Artist {
	a, isNew := identity.Acquire(identity.Default, identity.Key("artist", id), func() *Artist {
		return &Artist{id: id, page: pages.NewArtistPage(site(), id)}
	})
	if isNew && hints.name != "" {
		a.name.Set(hints.name)
	}
	return a
}

func (a *Artist) ID() string {
	return a.id
}

// Name returns the artist's stage name.
func (a *Artist) Name() (string, error) {
	return a.name.Get(a.page.Name)
}

// RealFullName returns the artist's legal name, or "" when unknown.
func (a *Artist) RealFullName() (string, error) {
	return a.realFullName.Get(func() (string, error) {
		raw, err := a.page.RealFullName()
		if err != nil {
			return "", err
		}
		return normalizeNA(raw), nil
	})
}

func (a *Artist) Age() (string, error) {
	return a.age.Get(func() (string, error) {
		raw, err := a.page.Age()
		if err != nil {
			return "", err
		}
		return normalizeNA(raw), nil
	})
}

func (a *Artist) PlaceOfBirth() (string, error) {
	return a.placeOfBirth.Get(func() (string, error) {
		raw, err := a.page.PlaceOfBirth()
		if err != nil {
			return "", err
		}
		return normalizeNA(raw), nil
	})
}

func (a *Artist) Gender() (string, error) {
	return a.gender.Get(a.page.Gender)
}

// Biography returns the artist's biography, following the site's
// "Read more" truncation to the full text.
func (a *Artist) Biography() (string, error) {
	return a.biography.Get(a.page.Biography)
}

// Trivia returns the artist's trivia section.
func (a *Artist) Trivia() (string, error) {
	return a.trivia.Get(a.page.Trivia)
}

// Links returns the artist's external links.
func (a *Artist) Links() ([]Link, error) {
	return a.links.Get(func() ([]Link, error) {
		raw, err := a.page.Links()
		if err != nil {
			return nil, err
		}
		links := make([]Link, len(raw))
		for i, l := range raw {
			links[i] = Link{URL: l.URL, Label: l.Label}
		}
		return links, nil
	})
}

// ActiveBands returns the artist's current band memberships.
func (a *Artist) ActiveBands() ([]BandAssociation, error) {
	return a.activeBands.Get(func() ([]BandAssociation, error) {
		return a.associations(a.page.ActiveBands)
	})
}

// PastBands returns band memberships the artist has left.
func (a *Artist) PastBands() ([]BandAssociation, error) {
	return a.pastBands.Get(func() ([]BandAssociation, error) {
		return a.associations(a.page.PastBands)
	})
}

// GuestSession returns the artist's guest and session credits.
func (a *Artist) GuestSession() ([]BandAssociation, error) {
	return a.guestSession.Get(func() ([]BandAssociation, error) {
		return a.associations(a.page.GuestSession)
	})
}

// MiscStaff returns the artist's non-performing credits, like production or
// artwork.
func (a *Artist) MiscStaff() ([]BandAssociation, error) {
	return a.miscStaff.Get(func() ([]BandAssociation, error) {
		return a.associations(a.page.MiscStaff)
	})
}

func (a *Artist) associations(tab func() ([]pages.BandTab, error)) ([]BandAssociation, error) {
	entries, err := tab()
	if err != nil {
		return nil, err
	}
	result := make([]BandAssociation, len(entries))
	for i, entry := range entries {
		assoc := BandAssociation{
			Role:         entry.Role,
			NameInLineup: entry.NameInLineup,
		}
		if entry.BandURL != "" {
			assoc.Band = getBand(urlToID(entry.BandURL), bandHints{name: entry.BandName})
		} else {
			assoc.Band = NewExternalEntity(entry.BandName, map[string]string{"role": entry.Role})
		}
		assoc.Albums = make([]AlbumCredit, len(entry.Albums))
		for j, credit := range entry.Albums {
			assoc.Albums[j] = AlbumCredit{
				Album:       getAlbum(urlToID(credit.URL), albumHints{name: credit.Name}),
				Role:        credit.Role,
				NameOnAlbum: credit.NameOnAlbum,
			}
		}
		result[i] = assoc
	}
	return result, nil
}

func (a *Artist) String() string {
	name, err := a.Name()
	if err != nil {
		return fmt.Sprintf("<Artist %s>", a.id)
	}
	return name
}

var artistAttrs = []string{
	"active_bands", "age", "biography", "gender", "guest_session", "links",
	"misc_staff", "name", "past_bands", "place_of_birth", "real_full_name",
	"trivia",
}

func (a *Artist) Attrs() []string {
	return artistAttrs
}

func (a *Artist) Attr(name string) (any, error) {
	switch name {
	case "active_bands":
		return a.ActiveBands()
	case "age":
		return a.Age()
	case "biography":
		return a.Biography()
	case "gender":
		return a.Gender()
	case "guest_session":
		return a.GuestSession()
	case "links":
		return a.Links()
	case "misc_staff":
		return a.MiscStaff()
	case "name":
		return a.Name()
	case "past_bands":
		return a.PastBands()
	case "place_of_birth":
		return a.PlaceOfBirth()
	case "real_full_name":
		return a.RealFullName()
	case "trivia":
		return a.Trivia()
	}
	return nil, fmt.Errorf("artist attribute '%s': %w", name, ErrUnknownAttr)
}
