package metallum

import "errors"

var (
	// ErrValidation reports malformed date or duration input, like an
	// unrecognized month name or a day out of range for its month.
	ErrValidation = errors.New("validation error")

	// ErrNoBandForTrack reports a split-album track whose name matches
	// none of the album's bands by prefix.
	ErrNoBandForTrack = errors.New("no band available for split album track")

	// ErrUnknownAttr reports an Attr lookup for a name the entity does
	// not expose.
	ErrUnknownAttr = errors.New("unknown attribute")
)
