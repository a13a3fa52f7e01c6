package main

import (
	"fmt"
	"io"
	"os"
	"path/filepath"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framecut/pkg/adapters/smartprobe"
	"github.com/user/framecut/pkg/engine"
	"github.com/user/framecut/pkg/ports"
	"github.com/user/framecut/pkg/timecode"
)

func infoCommand() *cli.Command {
	return &cli.Command{
		Name:      "info",
		Usage:     l10n.T("Show video properties"),
		ArgsUsage: "<video>",
		Flags:     toolFlags(),
		Action:    runInfo,
	}
}

func runInfo(c *cli.Context) error {
	video := c.Args().First()
	if video == "" {
		return cli.Exit(l10n.T("No video file given"), 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	log := newLogger(cfg)
	t, err := findTools(cfg, log)
	if err != nil {
		return err
	}

	props, backend, err := t.prober.ProbeWithBackend(c.Context, video)
	if err != nil {
		return &engine.OpenError{Path: video, Err: err}
	}

	var size int64
	if st, err := os.Stat(video); err == nil {
		size = st.Size()
	}
	printInfo(c.App.Writer, video, props, size, backend)
	return nil
}

// printInfo writes the property table shown by the info command.
func printInfo(w io.Writer, video string, props ports.StreamProperties, size int64, backend smartprobe.Backend) {
	fps := engine.EffectiveFPS(props.FPS)

	duration := props.Duration
	if duration <= 0 && props.TotalFrames > 0 {
		duration = float64(props.TotalFrames) / fps
	}

	frames := l10n.T("Unknown")
	if props.TotalFrames > 0 {
		frames = fmt.Sprintf("%d", props.TotalFrames)
	}

	rows := [][2]string{
		{l10n.T("File"), filepath.Base(video)},
		{l10n.T("Resolution"), fmt.Sprintf("%d × %d px", props.Width, props.Height)},
		{l10n.T("Duration"), timecode.FormatDuration(duration)},
		{l10n.T("Frame Rate"), fmt.Sprintf("%.2f fps", fps)},
		{l10n.T("Frames"), frames},
		{l10n.T("Codec"), props.Codec},
		{l10n.T("File Size"), timecode.FormatSize(size)},
		{l10n.T("Probed by"), string(backend)},
	}
	for _, r := range rows {
		fmt.Fprintf(w, "%-12s %s\n", r[0]+":", r[1])
	}
}
