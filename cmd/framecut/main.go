// Package main provides the CLI entry point for framecut.
package main

import (
	"errors"
	"fmt"
	"os"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"
)

var version = "dev"

// Flag categories
const (
	categoryOutput   = "Output"
	categoryStrategy = "Strategy"
	categoryTools    = "Tools"
	categoryLogging  = "Logging"
)

func main() {
	if err := newApp().Run(os.Args); err != nil {
		if msg := err.Error(); msg != "" {
			fmt.Fprintln(os.Stderr, msg)
		}
		code := 1
		var coder cli.ExitCoder
		if errors.As(err, &coder) {
			code = coder.ExitCode()
		}
		os.Exit(code)
	}
}

func newApp() *cli.App {
	return &cli.App{
		Name:    "framecut",
		Usage:   l10n.T("Extract still frames from video files"),
		Version: version,
		Description: l10n.T("framecut decodes a video and saves selected frames as numbered JPEG files. " +
			"Frames can be selected all at once, by time range, or at scene changes."),
		Commands: []*cli.Command{
			extractCommand(),
			infoCommand(),
			versionCommand(),
		},
		// main prints errors and picks the exit code.
		ExitErrHandler: func(*cli.Context, error) {},
	}
}

func toolFlags() []cli.Flag {
	return []cli.Flag{
		&cli.StringFlag{
			Name:     "config",
			Aliases:  []string{"c"},
			Usage:    l10n.T("YAML configuration file"),
			Category: l10n.T(categoryTools),
		},
		&cli.StringFlag{
			Name:     "ffmpeg",
			Usage:    l10n.T("Path to the ffmpeg executable"),
			Category: l10n.T(categoryTools),
		},
		&cli.StringFlag{
			Name:     "ffprobe",
			Usage:    l10n.T("Path to the ffprobe executable"),
			Category: l10n.T(categoryTools),
		},
		&cli.StringFlag{
			Name:     "log-level",
			Aliases:  []string{"l"},
			Usage:    l10n.T("Log level (debug, info, warn, error, quiet)"),
			Category: l10n.T(categoryLogging),
		},
	}
}

func versionCommand() *cli.Command {
	return &cli.Command{
		Name:  "version",
		Usage: l10n.T("Show version information"),
		Action: func(c *cli.Context) error {
			fmt.Fprintln(c.App.Writer, l10n.F("framecut version %s", version))
			return nil
		},
	}
}
