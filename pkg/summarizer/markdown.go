package summarizer

import (
	"fmt"
	"path/filepath"
	"sort"
	"strings"
	"time"

	"github.com/user/framecut/pkg/timecode"
)

// MarkdownFormatter renders a Summary as a Markdown document with tables.
type MarkdownFormatter struct {
	translate func(string) string
	version   string
}

// MarkdownOption configures a MarkdownFormatter.
type MarkdownOption func(*MarkdownFormatter)

// WithTranslator sets the function used to translate labels.
func WithTranslator(fn func(string) string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.translate = fn
	}
}

// WithVersion adds the tool version to the footer.
func WithVersion(version string) MarkdownOption {
	return func(f *MarkdownFormatter) {
		f.version = version
	}
}

// NewMarkdownFormatter creates a MarkdownFormatter.
func NewMarkdownFormatter(opts ...MarkdownOption) *MarkdownFormatter {
	f := &MarkdownFormatter{
		translate: func(s string) string { return s },
	}
	for _, opt := range opts {
		opt(f)
	}
	return f
}

// Format implements Formatter.
func (f *MarkdownFormatter) Format(s *Summary) string {
	t := f.translate
	var b strings.Builder

	fmt.Fprintf(&b, "# %s\n\n", t("Extraction Summary"))

	b.WriteString("## " + t("Video") + "\n\n")
	f.header(&b)
	f.row(&b, t("File"), filepath.Base(s.Video.Path))
	if s.Video.Width > 0 {
		f.row(&b, t("Resolution"), fmt.Sprintf("%d × %d px", s.Video.Width, s.Video.Height))
	}
	if s.Video.DurationSec > 0 {
		f.row(&b, t("Duration"), timecode.FormatDuration(s.Video.DurationSec))
	}
	if s.Video.FPS > 0 {
		f.row(&b, t("Frame Rate"), fmt.Sprintf("%.2f fps", s.Video.FPS))
	}
	if s.Video.TotalFrames > 0 {
		f.row(&b, t("Frames"), fmt.Sprintf("%d", s.Video.TotalFrames))
	} else {
		f.row(&b, t("Frames"), t("Unknown"))
	}
	if s.Video.Codec != "" {
		f.row(&b, t("Codec"), s.Video.Codec)
	}
	if s.Video.FileSize > 0 {
		f.row(&b, t("File Size"), timecode.FormatSize(s.Video.FileSize))
	}
	b.WriteString("\n")

	b.WriteString("## " + t("Strategy") + "\n\n")
	f.header(&b)
	f.row(&b, t("Mode"), s.Strategy.Mode)
	if s.Strategy.Name != "" {
		f.row(&b, t("Name"), s.Strategy.Name)
	}
	keys := make([]string, 0, len(s.Strategy.Params))
	for k := range s.Strategy.Params {
		keys = append(keys, k)
	}
	sort.Strings(keys)
	for _, k := range keys {
		if v := s.Strategy.Params[k]; v != "" {
			f.row(&b, "`"+k+"`", v)
		}
	}
	b.WriteString("\n")

	b.WriteString("## " + t("Settings") + "\n\n")
	f.header(&b)
	f.row(&b, t("Output Directory"), s.Settings.OutputDir)
	f.row(&b, t("JPEG Quality"), fmt.Sprintf("%d", s.Settings.JPEGQuality))
	b.WriteString("\n")

	b.WriteString("## " + t("Result") + "\n\n")
	f.header(&b)
	f.row(&b, t("Outcome"), t(s.Result.Outcome))
	f.row(&b, t("Frames Processed"), fmt.Sprintf("%d", s.Result.Processed))
	f.row(&b, t("Frames Saved"), fmt.Sprintf("%d", s.Result.Saved))
	if s.Result.Dropped > 0 {
		f.row(&b, t("Frames Dropped"), fmt.Sprintf("%d", s.Result.Dropped))
	}
	if s.Result.Elapsed > 0 {
		f.row(&b, t("Elapsed"), s.Result.Elapsed.Round(time.Millisecond).String())
	}
	if s.Result.Error != "" {
		f.row(&b, t("Error"), s.Result.Error)
	}
	b.WriteString("\n")

	footer := fmt.Sprintf("%s %s", t("Generated at"), s.GeneratedAt.Format(time.RFC3339))
	if f.version != "" {
		footer += fmt.Sprintf(" (framecut %s)", f.version)
	}
	b.WriteString("---\n\n" + footer + "\n")

	return b.String()
}

func (f *MarkdownFormatter) header(b *strings.Builder) {
	fmt.Fprintf(b, "| %s | %s |\n|---|---|\n", f.translate("Item"), f.translate("Value"))
}

func (f *MarkdownFormatter) row(b *strings.Builder, label, value string) {
	value = strings.ReplaceAll(value, "|", "\\|")
	fmt.Fprintf(b, "| %s | %s |\n", label, value)
}
