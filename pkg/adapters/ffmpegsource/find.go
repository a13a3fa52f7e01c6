package ffmpegsource

import (
	"fmt"
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"strings"
)

// FindFFmpeg locates the ffmpeg executable.
// Priority: 1) custom, 2) FFMPEG_PATH env, 3) PATH, 4) common locations.
func FindFFmpeg(custom string) (string, error) {
	return findExecutable("ffmpeg", custom, "FFMPEG_PATH", ErrFFmpegNotFound)
}

// FindFFprobe locates the ffprobe executable with the same priority as FindFFmpeg,
// using FFPROBE_PATH. As a last resort it looks next to ffmpegPath.
func FindFFprobe(custom, ffmpegPath string) (string, error) {
	path, err := findExecutable("ffprobe", custom, "FFPROBE_PATH", ErrFFprobeNotFound)
	if err == nil || custom != "" || ffmpegPath == "" {
		return path, err
	}

	sibling := siblingOf(ffmpegPath, "ffprobe")
	if _, serr := os.Stat(sibling); serr == nil {
		return sibling, nil
	}
	return "", err
}

// IsAvailable reports whether both ffmpeg and ffprobe can be found.
func IsAvailable() bool {
	ffmpeg, err := FindFFmpeg("")
	if err != nil {
		return false
	}
	_, err = FindFFprobe("", ffmpeg)
	return err == nil
}

func findExecutable(name, custom, envVar string, notFound error) (string, error) {
	if custom != "" {
		if _, err := os.Stat(custom); err == nil {
			return custom, nil
		}
		return "", fmt.Errorf("%w: custom path %s not found", notFound, custom)
	}

	if envPath := os.Getenv(envVar); envPath != "" {
		if _, err := os.Stat(envPath); err == nil {
			return envPath, nil
		}
		return "", fmt.Errorf("%w: %s %s not found", notFound, envVar, envPath)
	}

	execName := name
	if runtime.GOOS == "windows" {
		execName = name + ".exe"
	}
	if path, err := exec.LookPath(execName); err == nil {
		return path, nil
	}

	for _, p := range commonPaths(execName) {
		if _, err := os.Stat(p); err == nil {
			return p, nil
		}
	}

	return "", notFound
}

func commonPaths(execName string) []string {
	switch runtime.GOOS {
	case "windows":
		return []string{
			`C:\ffmpeg\bin\` + execName,
			`C:\Program Files\ffmpeg\bin\` + execName,
			`C:\Program Files (x86)\ffmpeg\bin\` + execName,
		}
	case "darwin":
		return []string{
			"/opt/homebrew/bin/" + execName,
			"/usr/local/bin/" + execName,
			"/usr/bin/" + execName,
		}
	default:
		return []string{
			"/usr/bin/" + execName,
			"/usr/local/bin/" + execName,
			"/opt/homebrew/bin/" + execName,
			"/snap/bin/" + execName,
		}
	}
}

// siblingOf returns the path of tool in the directory of exe, keeping a
// Windows .exe suffix when exe has one.
func siblingOf(exe, tool string) string {
	if runtime.GOOS == "windows" || strings.EqualFold(filepath.Ext(exe), ".exe") {
		tool += ".exe"
	}
	return filepath.Join(filepath.Dir(exe), tool)
}
