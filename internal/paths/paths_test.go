package paths

import (
	"errors"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func stubPlatform(t *testing.T, exe, cwd, cache string) {
	t.Helper()
	old := platformDir
	t.Cleanup(func() { platformDir = old })

	platformDir.executable = func() (string, error) {
		if exe == "" {
			return "", errors.New("no executable")
		}
		return exe, nil
	}
	platformDir.getwd = func() (string, error) { return cwd, nil }
	platformDir.userCacheDir = func() (string, error) {
		if cache == "" {
			return "", errors.New("no cache dir")
		}
		return cache, nil
	}
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
}

func TestResolveResourceDir(t *testing.T) {
	t.Run("configured value wins", func(t *testing.T) {
		stubPlatform(t, "", "/work", "")
		dir := t.TempDir()

		got, err := ResolveResourceDir(dir, "ChaliceCompass.db")
		require.NoError(t, err)
		assert.Equal(t, dir, got)
	})

	t.Run("executable dir when it holds the primary db", func(t *testing.T) {
		exeDir := t.TempDir()
		touch(t, filepath.Join(exeDir, "ChaliceCompass.db"))
		touch(t, filepath.Join(exeDir, "compass"))
		stubPlatform(t, filepath.Join(exeDir, "compass"), "/work", "")

		got, err := ResolveResourceDir("", "ChaliceCompass.db")
		require.NoError(t, err)

		want, err := filepath.EvalSymlinks(exeDir)
		require.NoError(t, err)
		assert.Equal(t, want, got)
	})

	t.Run("working dir otherwise", func(t *testing.T) {
		exeDir := t.TempDir()
		touch(t, filepath.Join(exeDir, "compass"))
		stubPlatform(t, filepath.Join(exeDir, "compass"), "/work", "")

		got, err := ResolveResourceDir("", "ChaliceCompass.db")
		require.NoError(t, err)
		assert.Equal(t, "/work", got)
	})

	t.Run("working dir when executable is unknown", func(t *testing.T) {
		stubPlatform(t, "", "/work", "")

		got, err := ResolveResourceDir("", "ChaliceCompass.db")
		require.NoError(t, err)
		assert.Equal(t, "/work", got)
	})
}

func TestCandidates(t *testing.T) {
	got := Candidates("/data", "ChaliceCompass.db", "", "/abs/backup.db")
	assert.Equal(t, []string{filepath.Join("/data", "ChaliceCompass.db"), "/abs/backup.db"}, got)
}

func TestDefaultLogFile(t *testing.T) {
	cache := t.TempDir()
	stubPlatform(t, "", "/work", cache)

	got, err := DefaultLogFile()
	require.NoError(t, err)
	assert.Equal(t, filepath.Join(cache, AppDirName, LogFileName), got)
	assert.DirExists(t, filepath.Join(cache, AppDirName))

	stubPlatform(t, "", "/work", "")
	_, err = DefaultLogFile()
	assert.Error(t, err)
}
