package pages_test

import (
	"testing"

	"github.com/lkowal/metallum/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const splitAlbumHTML = `<html><body>
<h1 class="album_name"><a href="https://www.metal-archives.com/albums/Vektor_-_Cryptosis/Transmissions/903">Transmissions</a></h1>
<div id="album_info">
<h2 class="band_name"><a href="https://www.metal-archives.com/bands/Vektor/901">Vektor</a> /
<a href="https://www.metal-archives.com/bands/Cryptosis/902">Cryptosis</a></h2>
<dl>
<dt>Type:</dt><dd>Split</dd>
<dt>Release date:</dt><dd>August 5th, 2022</dd>
<dt>Catalog ID:</dt><dd>N/A</dd>
<dt>Label:</dt><dd>Century Media Records</dd>
<dt>Format:</dt><dd>12" vinyl</dd>
<dt>Reviews:</dt><dd>2 reviews (avg. 85%) <a href="https://www.metal-archives.com/reviews/Transmissions/903">2 reviews</a></dd>
</dl>
</div>
<div id="album_tabs_tracklist"><table class="table_lyrics">
<tr class="even"><td><a name="t9031"></a>1.</td><td>Vektor - Activate</td><td>04:20</td><td><a href="#">Show lyrics</a></td></tr>
<tr class="odd"><td><a name="t9032"></a>2.</td><td>Cryptosis - Astral Matter</td><td>03:58</td><td><em>instrumental</em></td></tr>
<tr class="even"><td><a name="t9033"></a>3.</td><td>Interlude</td><td>01:00</td><td></td></tr>
<tr><td colspan="3">Total length</td><td><strong>09:18</strong></td></tr>
</table></div>
<div id="album_members_lineup"><table>
<tr class="lineupRow"><td><a href="https://www.metal-archives.com/artists/David_DiSanto/7002">David DiSanto</a></td><td>Vocals, Guitars</td></tr>
</table></div>
<div id="album_members_guest"><table>
<tr class="lineupRow"><td><a href="https://www.metal-archives.com/artists/Guest/7004">Guest</a></td><td>Synths</td></tr>
</table></div>
<div id="album_tabs_notes">Recorded live at Roadburn.</div>
</body></html>`

func TestAlbumPage(t *testing.T) {
	site := newFakeSite(map[string]string{"albums/_/_/903": splitAlbumHTML})
	page := pages.NewAlbumPage(site, "903")

	name, err := page.Name()
	require.NoError(t, err)
	assert.Equal(t, "Transmissions", name)

	bands, err := page.Bands()
	require.NoError(t, err)
	require.Len(t, bands, 2)
	assert.Equal(t, "Vektor", bands[0].Label)
	assert.Equal(t, "Cryptosis", bands[1].Label)

	kind, err := page.Type()
	require.NoError(t, err)
	assert.Equal(t, "Split", kind)

	date, err := page.ReleaseDate()
	require.NoError(t, err)
	assert.Equal(t, "August 5th, 2022", date)

	catalog, err := page.CatalogID()
	require.NoError(t, err)
	assert.Equal(t, "N/A", catalog)

	reviews, err := page.Reviews()
	require.NoError(t, err)
	assert.Equal(t, "https://www.metal-archives.com/reviews/Transmissions/903", reviews.URL)

	notes, err := page.AdditionalNotes()
	require.NoError(t, err)
	assert.Equal(t, "Recorded live at Roadburn.", notes)

	assert.Equal(t, 1, site.fetches["albums/_/_/903"])
}

func TestAlbumPageTracks(t *testing.T) {
	site := newFakeSite(map[string]string{"albums/_/_/903": splitAlbumHTML})
	page := pages.NewAlbumPage(site, "903")

	groups, err := page.Tracks()
	require.NoError(t, err)
	require.Len(t, groups, 1)
	tracks := groups[0]
	require.Len(t, tracks, 3)

	assert.Equal(t, "t9031", tracks[0].ID)
	assert.Equal(t, "1", tracks[0].Number)
	assert.Equal(t, "Vektor - Activate", tracks[0].Name)
	assert.Equal(t, "04:20", tracks[0].Time)
	assert.Equal(t, pages.LyricsAvailable, tracks[0].Lyrics)

	assert.Equal(t, pages.LyricsInstrumental, tracks[1].Lyrics)
	assert.Equal(t, pages.LyricsUnknown, tracks[2].Lyrics)

	names, err := page.DiscNames()
	require.NoError(t, err)
	assert.Equal(t, []string{""}, names)

	times, err := page.TotalTimes()
	require.NoError(t, err)
	assert.Equal(t, []string{"09:18"}, times)
}

func TestAlbumPagePeople(t *testing.T) {
	site := newFakeSite(map[string]string{"albums/_/_/903": splitAlbumHTML})
	page := pages.NewAlbumPage(site, "903")

	lineup, err := page.Lineup()
	require.NoError(t, err)
	require.Len(t, lineup, 1)
	assert.Equal(t, "David DiSanto", lineup[0].Name)
	assert.Equal(t, "Vocals, Guitars", lineup[0].Role)

	guests, err := page.GuestSessionMusicians()
	require.NoError(t, err)
	require.Len(t, guests, 1)
	assert.Equal(t, "Synths", guests[0].Role)

	staff, err := page.OtherStaff()
	require.NoError(t, err)
	assert.Empty(t, staff)
}

const multiDiscHTML = `<html><body>
<h1 class="album_name"><a href="#">Alive Beyond</a></h1>
<div id="album_info">
<h2 class="band_name"><a href="https://www.metal-archives.com/bands/Vektor/901">Vektor</a></h2>
<dl><dt>Type:</dt><dd>Live album</dd><dt>Release date:</dt><dd>1999</dd></dl>
</div>
<div id="album_tabs_tracklist"><table class="table_lyrics">
<tr class="discRow"><td colspan="4">Disc 1 - Alive</td></tr>
<tr class="even"><td><a name="t9041"></a>1.</td><td>Opener</td><td>02:00</td><td></td></tr>
<tr><td colspan="3"></td><td><strong>02:00</strong></td></tr>
<tr class="discRow"><td colspan="4">Disc 2</td></tr>
<tr class="odd"><td><a name="t9042"></a>1.</td><td>Closer</td><td>03:00</td><td></td></tr>
<tr><td colspan="3"></td><td><strong>03:00</strong></td></tr>
</table></div>
</body></html>`

func TestAlbumPageMultiDisc(t *testing.T) {
	site := newFakeSite(map[string]string{"albums/_/_/904": multiDiscHTML})
	page := pages.NewAlbumPage(site, "904")

	groups, err := page.Tracks()
	require.NoError(t, err)
	require.Len(t, groups, 2)
	assert.Equal(t, "Opener", groups[0][0].Name)
	assert.Equal(t, "Closer", groups[1][0].Name)

	names, err := page.DiscNames()
	require.NoError(t, err)
	assert.Equal(t, []string{"Disc 1 - Alive", "Disc 2"}, names)

	times, err := page.TotalTimes()
	require.NoError(t, err)
	assert.Equal(t, []string{"02:00", "03:00"}, times)
}

func TestLyricsPage(t *testing.T) {
	site := newFakeSite(map[string]string{
		"release/ajax-view-lyrics/id/t9031": "<html><body>\n\nActivate the core\n\n</body></html>",
	})
	lyrics, err := pages.NewLyricsPage(site, "t9031").Lyrics()
	require.NoError(t, err)
	assert.Equal(t, "Activate the core", lyrics)
}
