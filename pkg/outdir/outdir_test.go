package outdir

import (
	"os"
	"path/filepath"
	"testing"
)

func TestStem(t *testing.T) {
	tests := []struct {
		path string
		want string
	}{
		{"/videos/holiday.mp4", "holiday"},
		{"clip.tar.mkv", "clip.tar"},
		{"noext", "noext"},
		{"/a/b/çekim 01.mov", "çekim 01"},
	}

	for _, tt := range tests {
		if got := Stem(tt.path); got != tt.want {
			t.Errorf("Stem(%q) = %q, want %q", tt.path, got, tt.want)
		}
	}
}

func TestDerive(t *testing.T) {
	got := Derive(filepath.Join("root", "out"), "/videos/holiday.mp4")
	want := filepath.Join("root", "out", "holiday_frames")
	if got != want {
		t.Errorf("Derive() = %q, want %q", got, want)
	}
}

func TestRootIn(t *testing.T) {
	home := t.TempDir()

	if got := RootIn(home); got != home {
		t.Errorf("RootIn() without Desktop = %q, want %q", got, home)
	}

	desktop := filepath.Join(home, "Desktop")
	if err := os.Mkdir(desktop, 0755); err != nil {
		t.Fatalf("failed to create Desktop: %v", err)
	}
	if got := RootIn(home); got != desktop {
		t.Errorf("RootIn() with Desktop = %q, want %q", got, desktop)
	}
}

func TestRootIn_DesktopIsFile(t *testing.T) {
	home := t.TempDir()
	if err := os.WriteFile(filepath.Join(home, "Desktop"), []byte("x"), 0644); err != nil {
		t.Fatalf("failed to write file: %v", err)
	}
	if got := RootIn(home); got != home {
		t.Errorf("RootIn() = %q, want %q", got, home)
	}
}
