// Package paths resolves where Chalice Compass finds its database files and
// where it writes its log when the terminal is taken by the UI.
package paths

import (
	"os"
	"path/filepath"
)

// AppDirName is the per-user directory name under the cache dir.
const AppDirName = "chalice-compass"

// LogFileName is the default log file inside the cache directory.
const LogFileName = "compass.log"

// platformDir holds lookups that tests override.
var platformDir = struct {
	executable   func() (string, error)
	getwd        func() (string, error)
	userCacheDir func() (string, error)
}{
	executable:   os.Executable,
	getwd:        os.Getwd,
	userCacheDir: os.UserCacheDir,
}

// ResolveResourceDir returns the directory database names are relative to,
// following the precedence chain: configured value > directory of the
// running executable when it holds primary > current working directory.
//
// The executable rule lets a packaged binary find the database shipped next
// to it regardless of where it is started from.
func ResolveResourceDir(configured, primary string) (string, error) {
	if configured != "" {
		return filepath.Abs(configured)
	}

	if exe, err := platformDir.executable(); err == nil {
		if resolved, err := filepath.EvalSymlinks(exe); err == nil {
			exe = resolved
		}
		dir := filepath.Dir(exe)
		if fileExists(filepath.Join(dir, primary)) {
			return dir, nil
		}
	}

	return platformDir.getwd()
}

// Candidates joins the database names onto dir, primary first. Absolute names
// are kept as given and empty names are skipped.
func Candidates(dir string, names ...string) []string {
	out := make([]string, 0, len(names))
	for _, n := range names {
		if n == "" {
			continue
		}
		if filepath.IsAbs(n) {
			out = append(out, n)
			continue
		}
		out = append(out, filepath.Join(dir, n))
	}
	return out
}

// DefaultLogFile returns <user cache dir>/chalice-compass/compass.log,
// creating the directory.
func DefaultLogFile() (string, error) {
	base, err := platformDir.userCacheDir()
	if err != nil {
		return "", err
	}
	dir := filepath.Join(base, AppDirName)
	if err := os.MkdirAll(dir, 0o755); err != nil {
		return "", err
	}
	return filepath.Join(dir, LogFileName), nil
}

func fileExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && !info.IsDir()
}
