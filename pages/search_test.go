package pages_test

import (
	"net/url"
	"testing"

	"github.com/lkowal/metallum/pages"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestBandSearchPage(t *testing.T) {
	site := newFakeSite(nil)
	site.data = func(resource string, query url.Values) ([]byte, error) {
		assert.Equal(t, "search/ajax-advanced/searching/bands", resource)
		assert.Equal(t, "Vektor", query.Get("bandName"))
		return []byte(`{"iTotalRecords": 2, "aaData": [
			["<a href=\"https://www.metal-archives.com/bands/Vektor/901\">Vektor</a>", "Progressive Thrash Metal", "United States", "2004"],
			["<a href=\"https://www.metal-archives.com/bands/Vektor/910\">Vektor</a>", "Death Metal", "Poland (Warsaw)", "1998"]
		]}`), nil
	}

	params := url.Values{}
	params.Set("bandName", "Vektor")
	rows, err := pages.NewBandSearchPage(site, params).Bands()
	require.NoError(t, err)

	require.Len(t, rows, 2)
	assert.Equal(t, "https://www.metal-archives.com/bands/Vektor/901", rows[0].URL)
	assert.Equal(t, "Vektor", rows[0].Name)
	assert.Equal(t, "Progressive Thrash Metal", rows[0].Genres)
	assert.Equal(t, "United States", rows[0].Country)
	assert.Equal(t, "2004", rows[0].Formed)
	assert.Equal(t, "Poland (Warsaw)", rows[1].Country)
}

func TestBandSearchPagePagination(t *testing.T) {
	site := newFakeSite(nil)
	calls := 0
	site.data = func(resource string, query url.Values) ([]byte, error) {
		calls++
		if query.Get("iDisplayStart") == "" {
			return []byte(`{"iTotalRecords": 2, "aaData": [
				["<a href=\"https://x/bands/A/1\">A</a>", "Doom Metal", "Finland"]
			]}`), nil
		}
		assert.Equal(t, "1", query.Get("iDisplayStart"))
		return []byte(`{"iTotalRecords": 2, "aaData": [
			["<a href=\"https://x/bands/B/2\">B</a>", "Doom Metal", "Finland"]
		]}`), nil
	}

	rows, err := pages.NewBandSearchPage(site, url.Values{}).Bands()
	require.NoError(t, err)
	require.Len(t, rows, 2)
	assert.Equal(t, "A", rows[0].Name)
	assert.Equal(t, "B", rows[1].Name)
	assert.Equal(t, 2, calls)
}

func TestBandSearchPageNoMatches(t *testing.T) {
	site := newFakeSite(nil)
	site.data = func(resource string, query url.Values) ([]byte, error) {
		return []byte(`{"iTotalRecords": 0, "aaData": []}`), nil
	}
	rows, err := pages.NewBandSearchPage(site, url.Values{}).Bands()
	require.NoError(t, err)
	assert.Empty(t, rows)
}

func TestAlbumSearchPage(t *testing.T) {
	site := newFakeSite(nil)
	site.data = func(resource string, query url.Values) ([]byte, error) {
		assert.Equal(t, "search/ajax-advanced/searching/albums/", resource)
		return []byte(`{"iTotalRecords": 1, "aaData": [
			["<a href=\"https://www.metal-archives.com/bands/Vektor/901\">Vektor</a>",
			 "<a href=\"https://www.metal-archives.com/albums/Vektor/Outer_Isolation/907\">Outer Isolation</a>",
			 "Full-length",
			 "November 11th, 2011 <!-- 2011-11-11 -->"]
		]}`), nil
	}

	rows, err := pages.NewAlbumSearchPage(site, url.Values{}).Albums()
	require.NoError(t, err)

	require.Len(t, rows, 1)
	assert.Equal(t, "Outer Isolation", rows[0].Name)
	assert.Equal(t, "https://www.metal-archives.com/albums/Vektor/Outer_Isolation/907", rows[0].URL)
	assert.Equal(t, "Vektor", rows[0].BandName)
	assert.Equal(t, "https://www.metal-archives.com/bands/Vektor/901", rows[0].BandURL)
	assert.Equal(t, "November 11th, 2011", rows[0].ReleaseDate)
}

func TestRandomBandURL(t *testing.T) {
	site := newFakeSite(nil)
	site.resolved = "https://www.metal-archives.com/bands/Voivod/906"
	u, err := pages.RandomBandURL(site)
	require.NoError(t, err)
	assert.Equal(t, "https://www.metal-archives.com/bands/Voivod/906", u)
}
