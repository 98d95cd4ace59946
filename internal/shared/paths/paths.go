// Package paths resolves the XDG base directories the launcher reads
// and writes: application entry directories for the index scan, and
// the per-user state directory for frecency data.
package paths

import (
	"os"
	"path/filepath"
)

// ApplicationDirs returns every directory that may contain .desktop
// entries: XDG_DATA_HOME and XDG_DATA_DIRS application subdirectories
// plus the Flatpak and Snap export locations. Directories are returned
// highest-precedence first; missing ones are fine, the scan skips
// them.
func ApplicationDirs() []string {
	var dirs []string

	if dataHome := dataHome(); dataHome != "" {
		dirs = append(dirs, filepath.Join(dataHome, "applications"))
	}
	if home, err := os.UserHomeDir(); err == nil {
		dirs = append(dirs, filepath.Join(home, ".local/share/flatpak/exports/share/applications"))
	}

	dataDirs := os.Getenv("XDG_DATA_DIRS")
	if dataDirs == "" {
		dataDirs = "/usr/local/share:/usr/share"
	}
	for _, d := range filepath.SplitList(dataDirs) {
		if d != "" {
			dirs = append(dirs, filepath.Join(d, "applications"))
		}
	}

	dirs = append(dirs, "/var/lib/snapd/desktop/applications")
	return dedupe(dirs)
}

// StateDir returns the launcher's writable state directory, honoring
// XDG_STATE_HOME. The directory is not created here.
func StateDir() string {
	if state := os.Getenv("XDG_STATE_HOME"); state != "" {
		return filepath.Join(state, "lumen")
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local/state/lumen")
}

func dataHome() string {
	if dh := os.Getenv("XDG_DATA_HOME"); dh != "" {
		return dh
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return ""
	}
	return filepath.Join(home, ".local/share")
}

func dedupe(in []string) []string {
	seen := make(map[string]bool, len(in))
	out := in[:0]
	for _, d := range in {
		if !seen[d] {
			seen[d] = true
			out = append(out, d)
		}
	}
	return out
}
