package summarizer

import (
	"fmt"
	"path/filepath"

	"github.com/user/framecut/pkg/ports"
)

// Formatter renders a Summary as document text.
type Formatter interface {
	Format(summary *Summary) string
}

// FormatFunc lets a plain function serve as a Formatter.
type FormatFunc func(summary *Summary) string

func (f FormatFunc) Format(summary *Summary) string {
	return f(summary)
}

// Writer renders summaries and stores them through a ports.FileSystem.
type Writer struct {
	formatter Formatter
	fs        ports.FileSystem
}

func NewWriter(formatter Formatter, fs ports.FileSystem) *Writer {
	return &Writer{formatter: formatter, fs: fs}
}

// Write renders summary to path. A missing parent directory is created.
func (w *Writer) Write(path string, summary *Summary) error {
	if dir := filepath.Dir(path); dir != "" && dir != "." {
		ok, err := w.fs.Exists(dir)
		if err != nil {
			return fmt.Errorf("summary directory %s: %w", dir, err)
		}
		if !ok {
			if err := w.fs.MkdirAll(dir); err != nil {
				return fmt.Errorf("summary directory %s: %w", dir, err)
			}
		}
	}

	if err := w.fs.WriteFile(path, []byte(w.formatter.Format(summary))); err != nil {
		return fmt.Errorf("write summary %s: %w", path, err)
	}
	return nil
}
