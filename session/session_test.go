package session_test

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/lkowal/metallum/session"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewCreatesCacheDir(t *testing.T) {
	dir := filepath.Join(t.TempDir(), "nested", "cache")
	s, err := session.New(session.Options{
		CacheDir: dir,
		Delay:    time.Millisecond,
	})
	require.NoError(t, err)
	defer s.Close()

	_, err = os.Stat(filepath.Join(dir, "metallum.sqlite"))
	assert.NoError(t, err)
}

func TestNewRejectsUnwritableCacheDir(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("root can write anywhere")
	}
	_, err := session.New(session.Options{CacheDir: "/proc/no-such-dir"})
	assert.Error(t, err)
}
