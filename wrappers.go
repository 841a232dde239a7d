package metallum

import (
	"fmt"
	"strconv"

	"github.com/lkowal/metallum/identity"
)

// A LineupArtist is an artist in the context of a band's lineup: the artist
// plus the name they use there and their role. Attribute lookups it does
// not answer itself fall through to the artist.
type LineupArtist struct {
	Artist       *Artist
	Band         *Band
	NameInLineup string
	Role         string
}

func newLineupArtist(artistID string, band *Band, nameInLineup, role string) *LineupArtist {
	key := identity.StructuralKey("lineup_artist", map[string]string{
		"artist": artistID,
		"band":   band.id,
		"name":   nameInLineup,
		"role":   role,
	})
	// Resolved before Acquire: the build closure must not re-enter the
	// registry.
	artist := GetArtist(artistID)
	la, _ := identity.Acquire(identity.Default, key, func() *LineupArtist {
		return &LineupArtist{
			Artist:       artist,
			Band:         band,
			NameInLineup: nameInLineup,
			Role:         role,
		}
	})
	return la
}

// Name returns the name the artist appears under in this lineup, which may
// be a stage alias rather than the artist's canonical name.
func (la *LineupArtist) Name() (string, error) {
	return la.NameInLineup, nil
}

var lineupArtistAttrs = []string{"band", "name_in_lineup", "role"}

func (la *LineupArtist) Attrs() []string {
	return mergeAttrs(lineupArtistAttrs, la.Artist.Attrs())
}

func (la *LineupArtist) Attr(name string) (any, error) {
	switch name {
	case "band":
		return la.Band, nil
	case "name_in_lineup":
		return la.NameInLineup, nil
	case "role":
		return la.Role, nil
	}
	return la.Artist.Attr(name)
}

func (la *LineupArtist) String() string {
	return fmt.Sprintf("%s (%s)", la.NameInLineup, la.Role)
}

// An AlbumArtist is an artist in the context of one album's credits.
// Attribute lookups it does not answer itself fall through to the artist.
type AlbumArtist struct {
	Artist      *Artist
	Album       *Album
	NameOnAlbum string
	Role        string
}

func newAlbumArtist(artistID string, album *Album, nameOnAlbum, role string) *AlbumArtist {
	key := identity.StructuralKey("album_artist", map[string]string{
		"artist": artistID,
		"album":  album.id,
		"name":   nameOnAlbum,
		"role":   role,
	})
	artist := GetArtist(artistID)
	aa, _ := identity.Acquire(identity.Default, key, func() *AlbumArtist {
		return &AlbumArtist{
			Artist:      artist,
			Album:       album,
			NameOnAlbum: nameOnAlbum,
			Role:        role,
		}
	})
	return aa
}

// Name returns the name the artist is credited under on this album.
func (aa *AlbumArtist) Name() (string, error) {
	return aa.NameOnAlbum, nil
}

var albumArtistAttrs = []string{"album", "name_on_album", "role"}

func (aa *AlbumArtist) Attrs() []string {
	return mergeAttrs(albumArtistAttrs, aa.Artist.Attrs())
}

func (aa *AlbumArtist) Attr(name string) (any, error) {
	switch name {
	case "album":
		return aa.Album, nil
	case "name_on_album":
		return aa.NameOnAlbum, nil
	case "role":
		return aa.Role, nil
	}
	return aa.Artist.Attr(name)
}

func (aa *AlbumArtist) String() string {
	return fmt.Sprintf("%s (%s)", aa.NameOnAlbum, aa.Role)
}

// A SimilarBand is a band in the context of a recommendation list: the band
// plus the band it was recommended for and the similarity score. Attribute
// lookups it does not answer itself fall through to the band.
type SimilarBand struct {
	Band      *Band
	SimilarTo *Band
	Score     int
}

func newSimilarBand(band, similarTo *Band, score int) *SimilarBand {
	key := identity.StructuralKey("similar_band", map[string]string{
		"band":       band.id,
		"similar_to": similarTo.id,
		"score":      strconv.Itoa(score),
	})
	sb, _ := identity.Acquire(identity.Default, key, func() *SimilarBand {
		return &SimilarBand{Band: band, SimilarTo: similarTo, Score: score}
	})
	return sb
}

func (sb *SimilarBand) Name() (string, error) {
	return sb.Band.Name()
}

var similarBandAttrs = []string{"score", "similar_to"}

func (sb *SimilarBand) Attrs() []string {
	return mergeAttrs(similarBandAttrs, sb.Band.Attrs())
}

func (sb *SimilarBand) Attr(name string) (any, error) {
	switch name {
	case "score":
		return sb.Score, nil
	case "similar_to":
		return sb.SimilarTo, nil
	}
	return sb.Band.Attr(name)
}

func (sb *SimilarBand) String() string {
	return fmt.Sprintf("%s (%d)", sb.Band.String(), sb.Score)
}

// mergeAttrs joins a wrapper's own attribute names with the wrapped
// entity's, keeping both sorted sets in one sorted result.
func mergeAttrs(own, wrapped []string) []string {
	result := make([]string, 0, len(own)+len(wrapped))
	i, j := 0, 0
	for i < len(own) && j < len(wrapped) {
		switch {
		case own[i] < wrapped[j]:
			result = append(result, own[i])
			i++
		case own[i] > wrapped[j]:
			result = append(result, wrapped[j])
			j++
		default:
			result = append(result, own[i])
			i++
			j++
		}
	}
	result = append(result, own[i:]...)
	result = append(result, wrapped[j:]...)
	return result
}
