package themelog

import (
	"os"
	"path/filepath"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestAppendAndRecent(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.json")
	l := Open(path)

	for _, theme := range []string{"airport announcement", "office voicemail", "museum tour"} {
		require.NoError(t, l.Append(Entry{
			Timestamp: time.Now(),
			Level:     "TOEIC 600",
			WordCount: 150,
			Theme:     theme,
		}))
	}

	recent := l.Recent(2)
	require.Len(t, recent, 2)
	assert.Equal(t, "office voicemail", recent[0].Theme)
	assert.Equal(t, "museum tour", recent[1].Theme)

	assert.Equal(t, []string{"office voicemail", "museum tour"}, l.RecentThemes(2))
}

func TestRecentThemes_CapsAtKeep(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.json")
	l := Open(path)

	themes := []string{"one", "two", "three", "four", "five", "six", "seven"}
	for _, th := range themes {
		require.NoError(t, l.Append(Entry{Theme: th}))
	}

	got := l.RecentThemes(DefaultKeep)
	assert.Equal(t, []string{"three", "four", "five", "six", "seven"}, got)
}

func TestMissingFileIsEmptyLog(t *testing.T) {
	l := Open(filepath.Join(t.TempDir(), "nope.json"))
	assert.Empty(t, l.Recent(5))
	assert.Empty(t, l.RecentThemes(5))
}

func TestCorruptFileIsEmptyLog(t *testing.T) {
	path := filepath.Join(t.TempDir(), "themes.json")
	require.NoError(t, os.WriteFile(path, []byte("{not json"), 0o644))

	l := Open(path)
	assert.Empty(t, l.RecentThemes(5))

	// Appending over a corrupt file starts a fresh array.
	require.NoError(t, l.Append(Entry{Theme: "fresh start"}))
	assert.Equal(t, []string{"fresh start"}, l.RecentThemes(5))
}

func TestAppendCreatesParentDir(t *testing.T) {
	path := filepath.Join(t.TempDir(), "nested", "dir", "themes.json")
	l := Open(path)
	require.NoError(t, l.Append(Entry{Theme: "t"}))
	assert.FileExists(t, path)
}
