package main

import (
	"context"
	"errors"
	"fmt"
	"os"
	"os/signal"
	"strings"
	"syscall"
	"time"

	"github.com/ideamans/go-l10n"
	"github.com/urfave/cli/v2"

	"github.com/user/framecut/pkg/adapters/barsink"
	"github.com/user/framecut/pkg/adapters/imagecodec"
	"github.com/user/framecut/pkg/adapters/logsink"
	"github.com/user/framecut/pkg/adapters/nullsink"
	"github.com/user/framecut/pkg/adapters/osfilesystem"
	"github.com/user/framecut/pkg/config"
	"github.com/user/framecut/pkg/engine"
	"github.com/user/framecut/pkg/ports"
	"github.com/user/framecut/pkg/strategy"
	"github.com/user/framecut/pkg/summarizer"
)

// cancelGrace is how long an interrupted run may take to stop.
const cancelGrace = 2 * time.Second

// exitInterrupted is the conventional exit code after SIGINT.
const exitInterrupted = 130

func extractCommand() *cli.Command {
	flags := []cli.Flag{
		&cli.StringFlag{
			Name:     "output",
			Aliases:  []string{"o"},
			Usage:    l10n.T("Output directory (default: <Desktop or home>/<video>_frames)"),
			Category: l10n.T(categoryOutput),
		},
		&cli.IntFlag{
			Name:     "quality",
			Aliases:  []string{"q"},
			Usage:    l10n.T("JPEG quality (1-100)"),
			Category: l10n.T(categoryOutput),
		},
		&cli.StringFlag{
			Name:     "summary",
			Usage:    l10n.T("Write a Markdown summary of the run to this file"),
			Category: l10n.T(categoryOutput),
		},
		&cli.BoolFlag{
			Name:     "no-progress",
			Usage:    l10n.T("Disable progress output"),
			Category: l10n.T(categoryOutput),
		},
		&cli.StringFlag{
			Name:     "mode",
			Aliases:  []string{"m"},
			Usage:    l10n.F("Frame selection mode (%s)", strings.Join(strategy.Modes(), ", ")),
			Category: l10n.T(categoryStrategy),
		},
		&cli.StringFlag{
			Name:     "start",
			Usage:    l10n.T("Range start as HH:MM:SS"),
			Category: l10n.T(categoryStrategy),
		},
		&cli.StringFlag{
			Name:     "end",
			Usage:    l10n.T("Range end as HH:MM:SS"),
			Category: l10n.T(categoryStrategy),
		},
		&cli.Float64Flag{
			Name:     "threshold",
			Usage:    l10n.T("Scene change similarity threshold in (0, 1]"),
			Category: l10n.T(categoryStrategy),
		},
		&cli.IntFlag{
			Name:     "analysis-width",
			Usage:    l10n.T("Downscale width for scene analysis (0 = full size)"),
			Category: l10n.T(categoryStrategy),
		},
	}

	return &cli.Command{
		Name:      "extract",
		Usage:     l10n.T("Extract frames from a video"),
		ArgsUsage: "<video>",
		Flags:     append(flags, toolFlags()...),
		Action:    runExtract,
	}
}

// applyExtractFlags overrides cfg with the flags given on the command line.
func applyExtractFlags(c *cli.Context, cfg *config.Config) {
	if c.IsSet("output") {
		cfg.OutputDir = c.String("output")
	}
	if c.IsSet("quality") {
		cfg.JPEGQuality = c.Int("quality")
	}
	if c.IsSet("summary") {
		cfg.SummaryPath = c.String("summary")
	}
	if c.IsSet("mode") {
		cfg.Mode = c.String("mode")
	}
	if c.IsSet("start") {
		cfg.StartTime = c.String("start")
	}
	if c.IsSet("end") {
		cfg.EndTime = c.String("end")
	}
	if c.IsSet("threshold") {
		cfg.Threshold = c.Float64("threshold")
	}
	if c.IsSet("analysis-width") {
		cfg.AnalysisWidth = c.Int("analysis-width")
	}
}

func runExtract(c *cli.Context) error {
	video := c.Args().First()
	if video == "" {
		return cli.Exit(l10n.T("No video file given"), 2)
	}

	cfg, err := loadConfig(c)
	if err != nil {
		return err
	}
	applyExtractFlags(c, &cfg)

	params := cfg.ToParams(video)
	if err := engine.Validate(params); err != nil {
		return cli.Exit(err.Error(), 2)
	}

	log := newLogger(cfg)
	t, err := findTools(cfg, log)
	if err != nil {
		return err
	}

	sink, finish := progressSink(c.Bool("no-progress"), log)
	eng, err := engine.New(params, engine.Deps{
		Source:     t.source(log),
		Encoder:    imagecodec.New(),
		FS:         osfilesystem.New(),
		Sink:       sink,
		Logger:     log,
		OutputRoot: cfg.OutputRootFunc(),
	})
	if err != nil {
		return cli.Exit(err.Error(), 2)
	}

	started := time.Now()
	job := engine.Start(context.Background(), eng)

	sigCh := make(chan os.Signal, 1)
	signal.Notify(sigCh, syscall.SIGINT, syscall.SIGTERM)
	defer signal.Stop(sigCh)

	select {
	case <-sigCh:
		log.Warn("Interrupted, stopping extraction...")
		if err := job.Cancel(cancelGrace); errors.Is(err, engine.ErrAbandoned) {
			finish()
			return cli.Exit(l10n.T("Extraction did not stop in time, exiting"), exitInterrupted)
		}
	case <-job.Done():
	}

	result, runErr := job.Wait()
	finish()

	if cfg.SummaryPath != "" {
		if err := writeSummary(c.Context, cfg, t, params, result, runErr, time.Since(started)); err != nil {
			log.Warn("Failed to write summary: %s", err)
		}
	}

	switch {
	case runErr != nil:
		return runErr
	case result.Outcome == engine.OutcomeCancelled:
		return cli.Exit(completionMessage(result), exitInterrupted)
	}
	fmt.Fprintln(c.App.Writer, completionMessage(result))
	if result.Dropped > 0 {
		fmt.Fprintln(c.App.Writer, l10n.F("%d frames could not be written.", result.Dropped))
	}
	return nil
}

// progressSink picks a bar on a terminal and log lines elsewhere.
// finish must be called once the run is over.
func progressSink(disabled bool, log ports.Logger) (ports.ProgressSink, func()) {
	if disabled {
		return nullsink.New(), func() {}
	}
	if barsink.IsTerminal(os.Stderr) {
		bar := barsink.New(os.Stderr)
		return bar, bar.Finish
	}
	return logsink.New(log, logsink.DefaultStep), func() {}
}

// completionMessage localizes engine.Result.Message.
func completionMessage(r engine.Result) string {
	switch r.Outcome {
	case engine.OutcomeCompleted:
		return l10n.F("Extraction complete! %d frames saved to '%s'.", r.Saved, r.OutputDir)
	case engine.OutcomeCancelled:
		return l10n.T("Extraction cancelled by user.")
	default:
		return l10n.T("Extraction failed.")
	}
}

func writeSummary(ctx context.Context, cfg config.Config, t *tools, params engine.Params,
	result engine.Result, runErr error, elapsed time.Duration) error {
	if ctx == nil {
		ctx = context.Background()
	}

	info := summarizer.VideoInfo{Path: params.VideoPath}
	if props, err := t.prober.Probe(ctx, params.VideoPath); err == nil {
		info.Width, info.Height = props.Width, props.Height
		info.FPS = engine.EffectiveFPS(props.FPS)
		info.TotalFrames = props.TotalFrames
		info.DurationSec = props.Duration
		info.Codec = props.Codec
	}
	if st, err := os.Stat(params.VideoPath); err == nil {
		info.FileSize = st.Size()
	}

	res := summarizer.ResultInfo{
		Outcome:   result.Outcome.String(),
		Processed: result.Processed,
		Saved:     result.Saved,
		Dropped:   result.Dropped,
		Elapsed:   elapsed,
	}
	if runErr != nil {
		res.Error = runErr.Error()
	}

	summary := summarizer.NewBuilder().
		WithVideo(info).
		WithStrategy(params.Mode, result.Strategy, params.Options).
		WithSettings(summarizer.Settings{OutputDir: result.OutputDir, JPEGQuality: params.Quality()}).
		WithResult(res).
		Build()

	formatter := summarizer.NewMarkdownFormatter(
		summarizer.WithTranslator(l10n.T),
		summarizer.WithVersion(version),
	)
	return summarizer.NewWriter(formatter, osfilesystem.New()).Write(cfg.SummaryPath, summary)
}
