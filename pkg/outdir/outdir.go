// Package outdir derives output directories for extracted frames.
package outdir

import (
	"os"
	"path/filepath"
	"strings"
)

// Suffix is appended to the video stem to name the output directory.
const Suffix = "_frames"

// DefaultRoot returns the user's Desktop folder when it exists, the home
// directory otherwise.
func DefaultRoot() (string, error) {
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return RootIn(home), nil
}

// RootIn applies the Desktop-or-home rule to home.
func RootIn(home string) string {
	desktop := filepath.Join(home, "Desktop")
	if info, err := os.Stat(desktop); err == nil && info.IsDir() {
		return desktop
	}
	return home
}

// Derive returns <root>/<video stem>_frames.
func Derive(root, videoPath string) string {
	return filepath.Join(root, Stem(videoPath)+Suffix)
}

// Stem returns the base name of path without its extension.
func Stem(path string) string {
	base := filepath.Base(path)
	return strings.TrimSuffix(base, filepath.Ext(base))
}
