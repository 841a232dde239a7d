package metallum_test

import (
	"fmt"
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/lkowal/metallum"
)

// testSite serves static fixtures to the whole test binary, counting page
// fetches so tests can assert on laziness. Entity ids are unique per
// concern because the identity registry is process-wide.
type testSite struct {
	pages    map[string]string
	data     func(resource string, query url.Values) ([]byte, error)
	resolved string
	fetches  map[string]int
}

var site = &testSite{pages: fixtures, fetches: map[string]int{}}

func init() {
	metallum.UseSite(site)
}

func (s *testSite) Page(resource string) (*goquery.Document, error) {
	s.fetches[resource]++
	html, ok := s.pages[resource]
	if !ok {
		return nil, fmt.Errorf("no fixture for '%s'", resource)
	}
	return goquery.NewDocumentFromReader(strings.NewReader(html))
}

func (s *testSite) Data(resource string, query url.Values) ([]byte, error) {
	if s.data == nil {
		return nil, fmt.Errorf("no data fixture for '%s'", resource)
	}
	return s.data(resource, query)
}

func (s *testSite) Resolve(resource string) (string, error) {
	if s.resolved == "" {
		return "", fmt.Errorf("no resolve fixture for '%s'", resource)
	}
	return s.resolved, nil
}

var fixtures = map[string]string{
	"bands/_/800": `<html><body>
<h1 class="band_name"><a href="https://www.metal-archives.com/bands/Haunter/800">Haunter</a></h1>
<div id="band_stats"><dl>
<dt>Country of origin:</dt><dd>United States</dd>
<dt>Location:</dt><dd>N/A</dd>
<dt>Status:</dt><dd>Active</dd>
<dt>Formed in:</dt><dd>2013</dd>
<dt>Genre:</dt><dd>Progressive Black/Death Metal</dd>
<dt>Lyrical themes:</dt><dd>Decay, Nature</dd>
<dt>Years active:</dt><dd>2013-present</dd>
<dt>Current label:</dt><dd></dd>
<dt>Last label:</dt><dd>Debemur Morti Productions</dd>
</dl></div>
<div class="band_comment">Started as a solo project.</div>
<div id="band_tab_members_current"><table>
<tr class="lineupRow"><td><a href="https://www.metal-archives.com/artists/Bradley/7001">Bradley</a></td>
<td>Guitars, Vocals</td></tr>
</table></div>
<table><tr><td>Last modified on: 2023-05-11 04:26:18</td></tr></table>
</body></html>`,

	"band/discography/id/800/tab/all": `<html><body>
<table class="discog"><tbody>
<tr><td><a href="https://www.metal-archives.com/albums/Haunter/First_Light/8001">First Light</a></td>
<td>Full-length</td><td>2015</td><td></td></tr>
<tr><td><a href="https://www.metal-archives.com/albums/Haunter/Second_Sight/8002">Second Sight</a></td>
<td>EP</td><td>2017</td><td><a href="https://www.metal-archives.com/reviews/8002">1 (80%)</a></td></tr>
</tbody></table>
</body></html>`,

	"band/ajax-recommendations/id/800/showMoreSimilar/1": `<html><body>
<table id="artist_list">
<tr><td><a href="https://www.metal-archives.com/bands/Velnias/805">Velnias</a></td>
<td>United States</td><td>Black/Doom Metal</td><td>12</td></tr>
<tr><td colspan="4">see more</td></tr>
</table>
</body></html>`,

	"albums/_/_/903": `<html><body>
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
</dl>
</div>
<div id="album_tabs_tracklist"><table class="table_lyrics">
<tr class="even"><td><a name="t9031"></a>1.</td><td>Vektor - Activate</td><td>04:20</td><td><a href="#">Show lyrics</a></td></tr>
<tr class="odd"><td><a name="t9032"></a>2.</td><td>Cryptosis- Astral Matter</td><td>03:58</td><td><em>instrumental</em></td></tr>
<tr class="even"><td><a name="t9033"></a>3.</td><td>Interlude</td><td>01:00</td><td></td></tr>
<tr><td colspan="3">Total length</td><td><strong>09:18</strong></td></tr>
</table></div>
<div id="album_members_lineup"><table>
<tr class="lineupRow"><td><a href="https://www.metal-archives.com/artists/David_DiSanto/7002">David DiSanto</a></td>
<td>Vocals, Guitars</td></tr>
</table></div>
<div id="album_tabs_notes">Recorded live at Roadburn.</div>
</body></html>`,

	"release/ajax-view-lyrics/id/t9031": "<html><body>\nActivate the core\n</body></html>",

	"albums/_/_/904": `<html><body>
<h1 class="album_name"><a href="#">Alive Beyond</a></h1>
<div id="album_info">
<h2 class="band_name"><a href="https://www.metal-archives.com/bands/Vektor/901">Vektor</a></h2>
<dl><dt>Type:</dt><dd>Live album</dd><dt>Release date:</dt><dd>1999</dd></dl>
</div>
<div id="album_tabs_tracklist"><table class="table_lyrics">
<tr class="discRow"><td colspan="4">Disc 1 -  Alive </td></tr>
<tr class="even"><td><a name="t9041"></a>1.</td><td>Opener</td><td>02:00</td><td></td></tr>
<tr><td colspan="3"></td><td><strong>02:00</strong></td></tr>
<tr class="discRow"><td colspan="4">Disc 2</td></tr>
<tr class="odd"><td><a name="t9042"></a>1.</td><td>Closer</td><td>03:00</td><td></td></tr>
<tr><td colspan="3"></td><td><strong>03:00</strong></td></tr>
</table></div>
</body></html>`,

	"bands/_/801": `<html><body>
<h1 class="band_name"><a href="https://www.metal-archives.com/bands/Velnias/801">Velnias</a></h1>
<div id="band_tab_members_current"><table>
<tr class="lineupRow"><td><a href="https://www.metal-archives.com/artists/Bradley/7001">Bradley</a></td>
<td>Drums</td></tr>
</table></div>
</body></html>`,

	"albums/_/_/905": `<html><body>
<h1 class="album_name"><a href="#">Untethered</a></h1>
<div id="album_info">
<h2 class="band_name"><a href="https://www.metal-archives.com/bands/Vektor/901">Vektor</a></h2>
<dl><dt>Type:</dt><dd>Demo</dd><dt>Release date:</dt><dd>1997</dd></dl>
</div>
<div id="album_tabs_tracklist"><table class="table_lyrics">
<tr class="even"><td>1.</td><td>Untitled</td><td>02:00</td><td></td></tr>
</table></div>
</body></html>`,

	"albums/_/_/906": `<html><body>
<h1 class="album_name"><a href="#">Rehearsal Tape</a></h1>
<div id="album_info">
<h2 class="band_name"><a href="https://www.metal-archives.com/bands/Vektor/901">Vektor</a></h2>
<dl><dt>Type:</dt><dd>Demo</dd><dt>Release date:</dt><dd>1998</dd></dl>
</div>
<div id="album_tabs_tracklist"><table class="table_lyrics">
<tr class="even"><td>1.</td><td>Untitled</td><td>03:00</td><td></td></tr>
</table></div>
</body></html>`,

	"artists/_/7001": `<html><body>
<h1 class="band_member_name">Bradley</h1>
<div id="member_info"><dl>
<dt>Real/full name:</dt><dd>Bradley Tiffin</dd>
<dt>Gender:</dt><dd>Male</dd>
</dl></div>
</body></html>`,

	"artists/_/7002": `<html><body>
<h1 class="band_member_name">David DiSanto</h1>
<div id="member_info"><dl>
<dt>Real/full name:</dt><dd>David DiSanto</dd>
<dt>Age:</dt><dd>N/A</dd>
<dt>Place of birth:</dt><dd>United States (Philadelphia, Pennsylvania)</dd>
<dt>Gender:</dt><dd>Male</dd>
</dl></div>
<div id="member_content"><div class="band_comment">
<h2>Biography</h2>
Founded Vektor in 2004.
</div></div>
<div id="artist_tab_active">
<div class="member_in_band">
<h3 class="member_in_band_name"><a href="https://www.metal-archives.com/bands/Vektor/901">Vektor</a></h3>
<p class="member_in_band_role">As Dave: Vocals, Guitars</p>
<table>
<tr><td>2022</td><td><a href="https://www.metal-archives.com/albums/V/Transmissions/903">Transmissions</a></td><td>Vocals (as "David")</td></tr>
</table>
</div>
<div class="member_in_band">
<h3 class="member_in_band_name">Acoustic Solo Project</h3>
<p class="member_in_band_role">Guitars</p>
</div>
</div>
</body></html>`,
}
