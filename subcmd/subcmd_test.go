package subcmd_test

import (
	"bytes"
	"testing"

	"github.com/lkowal/metallum/subcmd"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUsageWithArg(t *testing.T) {
	sc := subcmd.New("band", "band prints a band's attributes.").
		SetArg("id", "string", "the band's id")
	sc.String("format", "table", "output format")

	var buf bytes.Buffer
	sc.SetOutput(&buf)
	sc.Usage()

	out := buf.String()
	assert.Contains(t, out, "band prints a band's attributes.")
	assert.Contains(t, out, "metallum band [flags] <id>")
	assert.Contains(t, out, "-format")
	assert.Contains(t, out, "<id> string")
}

func TestUsageWithoutArg(t *testing.T) {
	sc := subcmd.New("random", "random prints a random band.")

	var buf bytes.Buffer
	sc.SetOutput(&buf)
	sc.Usage()

	assert.Contains(t, buf.String(), "metallum random [flags]")
	assert.NotContains(t, buf.String(), "<")
}

func TestParseArg(t *testing.T) {
	sc := subcmd.New("band", "doc").SetArg("id", "string", "the id")
	verbose := sc.Bool("v", false, "verbose")

	id, err := sc.ParseArg([]string{"-v", "138"})
	require.NoError(t, err)
	assert.Equal(t, "138", id)
	assert.True(t, *verbose)
}
