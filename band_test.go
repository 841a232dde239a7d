package metallum_test

import (
	"testing"
	"time"

	"github.com/lkowal/metallum"
	"github.com/lkowal/metallum/countries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandIdentity(t *testing.T) {
	a := metallum.GetBand("800")
	b := metallum.GetBand("800")
	assert.Same(t, a, b)
}

func TestBandAttributes(t *testing.T) {
	band := metallum.GetBand("800")

	name, err := band.Name()
	require.NoError(t, err)
	assert.Equal(t, "Haunter", name)

	country, err := band.Country()
	require.NoError(t, err)
	assert.Equal(t, countries.Country("US"), country)

	status, err := band.Status()
	require.NoError(t, err)
	assert.Equal(t, metallum.StatusActive, status)

	formed, err := band.FormedIn()
	require.NoError(t, err)
	assert.Equal(t, 2013, formed)

	genres, err := band.Genres()
	require.NoError(t, err)
	assert.Equal(t, []string{"Progressive Black/Death Metal"}, genres)

	themes, err := band.LyricalThemes()
	require.NoError(t, err)
	assert.Equal(t, []string{"Decay", "Nature"}, themes)

	info, err := band.Info()
	require.NoError(t, err)
	assert.Equal(t, "Started as a solo project.", info)

	// The page's N/A marker reads as an absent value.
	location, err := band.Location()
	require.NoError(t, err)
	assert.Equal(t, "", location)

	// The current label is empty, so the last label stands in.
	label, err := band.Label()
	require.NoError(t, err)
	assert.Equal(t, "Debemur Morti Productions", label)

	modified, err := band.LastModified()
	require.NoError(t, err)
	assert.Equal(t, time.Date(2023, 5, 11, 4, 26, 18, 0, time.UTC), modified)

	assert.Equal(t, "Haunter (United States)", band.String())

	// Every read resolved against the one fetched page.
	assert.Equal(t, 1, site.fetches["bands/_/800"])
}

func TestBandLineup(t *testing.T) {
	band := metallum.GetBand("800")

	lineup, err := band.Lineup()
	require.NoError(t, err)
	require.Len(t, lineup, 1)
	assert.Equal(t, "Bradley", lineup[0].NameInLineup)
	assert.Equal(t, "Guitars, Vocals", lineup[0].Role)
	assert.Same(t, band, lineup[0].Band)
}

func TestBandDiscographySeedsAlbums(t *testing.T) {
	band := metallum.GetBand("800")

	albums, err := band.Discography()
	require.NoError(t, err)
	require.Len(t, albums, 2)

	// Names and years came along with the discography rows; reading them
	// must not fetch the album pages, which have no fixtures at all.
	name, err := albums[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "First Light", name)

	year, err := albums[1].Year()
	require.NoError(t, err)
	assert.Equal(t, 2017, year)

	assert.Same(t, albums[0], metallum.GetAlbum("8001"))
}

func TestBandSimilarBands(t *testing.T) {
	band := metallum.GetBand("800")

	similar, err := band.SimilarBands()
	require.NoError(t, err)
	require.Len(t, similar, 1)

	assert.Equal(t, 12, similar[0].Score)
	assert.Same(t, band, similar[0].SimilarTo)

	name, err := similar[0].Name()
	require.NoError(t, err)
	assert.Equal(t, "Velnias", name)

	country, err := similar[0].Band.Country()
	require.NoError(t, err)
	assert.Equal(t, countries.Country("US"), country)
}

func TestBandAttrRegistry(t *testing.T) {
	band := metallum.GetBand("800")

	assert.Contains(t, band.Attrs(), "genres")

	v, err := band.Attr("name")
	require.NoError(t, err)
	assert.Equal(t, "Haunter", v)

	_, err = band.Attr("shoe_size")
	assert.ErrorIs(t, err, metallum.ErrUnknownAttr)
}
