package metallum

import "fmt"

// A ReleaseType is one of the site's release kinds, as printed on album
// pages and discographies.
type ReleaseType string

const (
	ReleaseFull          ReleaseType = "Full-length"
	ReleaseLive          ReleaseType = "Live album"
	ReleaseDemo          ReleaseType = "Demo"
	ReleaseSingle        ReleaseType = "Single"
	ReleaseEP            ReleaseType = "EP"
	ReleaseVideo         ReleaseType = "Video"
	ReleaseBox           ReleaseType = "Boxed set"
	ReleaseSplit         ReleaseType = "Split"
	ReleaseCompilation   ReleaseType = "Compilation"
	ReleaseSplitVideo    ReleaseType = "Split video"
	ReleaseCollaboration ReleaseType = "Collaboration"
)

// releaseTypeSearchIDs are the numeric ids the advanced album search uses
// for its releaseType[] parameter.
var releaseTypeSearchIDs = map[ReleaseType]int{
	ReleaseFull:          1,
	ReleaseLive:          2,
	ReleaseDemo:          3,
	ReleaseSingle:        4,
	ReleaseEP:            5,
	ReleaseVideo:         6,
	ReleaseBox:           7,
	ReleaseSplit:         8,
	ReleaseCompilation:   10,
	ReleaseSplitVideo:    12,
	ReleaseCollaboration: 13,
}

// ParseReleaseType maps page text onto a ReleaseType.
func ParseReleaseType(s string) (ReleaseType, error) {
	rt := ReleaseType(s)
	if _, ok := releaseTypeSearchIDs[rt]; !ok {
		return "", fmt.Errorf("unknown release type '%s'", s)
	}
	return rt, nil
}

// A BandStatus is one of the site's band statuses.
type BandStatus string

const (
	StatusActive      BandStatus = "Active"
	StatusOnHold      BandStatus = "On hold"
	StatusSplitUp     BandStatus = "Split-up"
	StatusUnknown     BandStatus = "Unknown"
	StatusChangedName BandStatus = "Changed name"
	StatusDisputed    BandStatus = "Disputed"
)

var bandStatuses = map[BandStatus]bool{
	StatusActive:      true,
	StatusOnHold:      true,
	StatusSplitUp:     true,
	StatusUnknown:     true,
	StatusChangedName: true,
	StatusDisputed:    true,
}

// ParseBandStatus maps page text onto a BandStatus. Empty input maps to the
// zero value, meaning the page carried no status at all.
func ParseBandStatus(s string) (BandStatus, error) {
	if s == "" {
		return "", nil
	}
	st := BandStatus(s)
	if !bandStatuses[st] {
		return "", fmt.Errorf("unknown band status '%s'", s)
	}
	return st, nil
}
