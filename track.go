package metallum

import (
	"fmt"
	"strings"
	"time"

	"github.com/lkowal/metallum/identity"
	"github.com/lkowal/metallum/lazy"
	"github.com/lkowal/metallum/pages"
)

// A LyricsStatus says what the track list promises about a track's lyrics.
type LyricsStatus int

const (
	// LyricsNone means the track list says nothing about lyrics.
	LyricsNone LyricsStatus = iota
	// LyricsInstrumental marks an instrumental track.
	LyricsInstrumental
	// LyricsAvailable means lyrics exist and can be fetched.
	LyricsAvailable
)

// Lyrics is a track's lyrics. Text is populated only when Status is
// LyricsAvailable.
type Lyrics struct {
	Status LyricsStatus
	Text   string
}

// A Track is one track of a disc. On split albums the site prefixes track
// names with the owning band, like "Vektor - Activate"; Name strips the
// prefix and Band resolves it.
type Track struct {
	id      string
	number  int
	rawName string
	length  time.Duration
	ref     pages.LyricsRef
	bands   []*Band

	name   lazy.Cell[string]
	band   lazy.Cell[*Band]
	lyrics lazy.Cell[Lyrics]
}

func getTrack(key, id string, number int, rawName string, length time.Duration, ref pages.LyricsRef, bands []*Band) *Track {
	t, _ := identity.Acquire(identity.Default, key, func() *Track {
		return &Track{
			id:      id,
			number:  number,
			rawName: rawName,
			length:  length,
			ref:     ref,
			bands:   bands,
		}
	})
	return t
}

func (t *Track) ID() string {
	return t.id
}

// Number returns the track's 1-based position within its disc.
func (t *Track) Number() int {
	return t.number
}

// Length returns the track's play time, or zero when the page carries none.
func (t *Track) Length() time.Duration {
	return t.length
}

// Name returns the track's title. On multi-band albums the owning band's
// prefix is stripped; single-band track names pass through unchanged. The
// dash spacing between band and title varies across pages, so the match is
// on the band name alone and the cut is at the first dash after it.
func (t *Track) Name() (string, error) {
	return t.name.Get(func() (string, error) {
		if len(t.bands) < 2 {
			return t.rawName, nil
		}
		for _, band := range t.bands {
			bandName, err := band.Name()
			if err != nil {
				return "", err
			}
			if rest, ok := strings.CutPrefix(t.rawName, bandName); ok {
				if _, title, ok := strings.Cut(rest, "-"); ok {
					return strings.TrimSpace(title), nil
				}
			}
		}
		return t.rawName, nil
	})
}

// Band returns the band the track belongs to. On multi-band albums the band
// is resolved by matching its name against the track's prefix; a track that
// matches no band returns ErrNoBandForTrack.
func (t *Track) Band() (*Band, error) {
	return t.band.Get(func() (*Band, error) {
		if len(t.bands) == 1 {
			return t.bands[0], nil
		}
		for _, band := range t.bands {
			bandName, err := band.Name()
			if err != nil {
				return nil, err
			}
			if strings.HasPrefix(t.rawName, bandName) {
				return band, nil
			}
		}
		return nil, fmt.Errorf("track '%s': %w", t.rawName, ErrNoBandForTrack)
	})
}

// Lyrics returns the track's lyrics. Instrumental tracks and tracks with no
// lyrics on file return only a status; available lyrics are fetched from
// the site on first call.
func (t *Track) Lyrics() (Lyrics, error) {
	return t.lyrics.Get(func() (Lyrics, error) {
		switch t.ref {
		case pages.LyricsInstrumental:
			return Lyrics{Status: LyricsInstrumental}, nil
		case pages.LyricsAvailable:
			text, err := pages.NewLyricsPage(site(), t.id).Lyrics()
			if err != nil {
				return Lyrics{}, err
			}
			return Lyrics{Status: LyricsAvailable, Text: text}, nil
		}
		return Lyrics{Status: LyricsNone}, nil
	})
}

func (t *Track) String() string {
	name, err := t.Name()
	if err != nil {
		return fmt.Sprintf("<Track %s>", t.id)
	}
	return fmt.Sprintf("%d. %s", t.number, name)
}

var trackAttrs = []string{"band", "lyrics", "name", "number", "time"}

func (t *Track) Attrs() []string {
	return trackAttrs
}

func (t *Track) Attr(name string) (any, error) {
	switch name {
	case "band":
		return t.Band()
	case "lyrics":
		return t.Lyrics()
	case "name":
		return t.Name()
	case "number":
		return t.Number(), nil
	case "time":
		return t.Length(), nil
	}
	return nil, fmt.Errorf("track attribute '%s': %w", name, ErrUnknownAttr)
}
