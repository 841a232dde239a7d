package countries_test

import (
	"testing"

	"github.com/lkowal/metallum/countries"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByName(t *testing.T) {
	c, err := countries.ByName("United States")
	require.NoError(t, err)
	assert.Equal(t, "US", c.Code())
	assert.Equal(t, "United States", c.String())
}

func TestByNameIsCaseInsensitive(t *testing.T) {
	c, err := countries.ByName("pOlAnD")
	require.NoError(t, err)
	assert.Equal(t, "PL", c.Code())
}

func TestByNameLegacyAliases(t *testing.T) {
	// The site still uses some pre-rename country names.
	c, err := countries.ByName("Czech Republic")
	require.NoError(t, err)
	assert.Equal(t, "CZ", c.Code())
}

func TestByNameSpecialEntries(t *testing.T) {
	c, err := countries.ByName("International")
	require.NoError(t, err)
	assert.Equal(t, "XX", c.Code())

	c, err = countries.ByName("Unknown")
	require.NoError(t, err)
	assert.Equal(t, "ZZ", c.Code())
}

func TestByNameUnknown(t *testing.T) {
	_, err := countries.ByName("Atlantis")
	assert.ErrorContains(t, err, "unknown country")
}
