package app

import (
	"context"
	"io"
	"log/slog"
	"os"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/google/uuid"

	"github.com/five82/apodwall/internal/apod"
	"github.com/five82/apodwall/internal/config"
	"github.com/five82/apodwall/internal/faults"
	"github.com/five82/apodwall/internal/imagefetch"
	"github.com/five82/apodwall/internal/logging"
	"github.com/five82/apodwall/internal/metadata"
	"github.com/five82/apodwall/internal/state"
	"github.com/five82/apodwall/internal/wallpaper"
)

// Options configure a single fetch-and-set run. Nil collaborators are built
// from their production defaults.
type Options struct {
	ConfigPath  string
	DataDir     string // empty uses ~/.local/share/apodwall
	APIEndpoint string // empty uses the public APOD endpoint
	PreferHD    bool

	Fetcher    apod.Fetcher
	Downloader imagefetch.Downloader
	Setter     wallpaper.Setter

	Logger *slog.Logger
	Stdout io.Writer
	// Colorize forces styled metadata output; nil detects a terminal.
	Colorize *bool
	Now      func() time.Time
}

// Result summarizes how a run ended.
type Result struct {
	RunID       string
	State       State
	Outcome     state.Outcome
	Record      *apod.Record
	ImagePath   string
	AppliedPath string
	Style       wallpaper.Style
	Setter      string
	// Cause is the error that sent the run to the default wallpaper.
	Cause error
}

type runner struct {
	opts    Options
	cfg     config.Config
	dataDir string
	logger  *slog.Logger
	stdout  io.Writer
	result  Result
}

// Run executes one fetch-and-set cycle. A nil error means a wallpaper was set,
// either today's picture or the configured default. Config errors are returned
// unchanged; every other failure is wrapped in faults.ErrAborted.
func Run(ctx context.Context, opts Options) (Result, error) {
	if opts.Logger == nil {
		opts.Logger = logging.Discard()
	}
	if opts.Stdout == nil {
		opts.Stdout = os.Stdout
	}
	if opts.Now == nil {
		opts.Now = time.Now
	}

	r := &runner{
		opts:   opts,
		stdout: opts.Stdout,
		result: Result{RunID: uuid.NewString(), State: StateInit},
	}
	r.logger = opts.Logger.With("component", "run", "run_id", r.result.RunID)
	started := opts.Now()

	cfg, err := config.LoadOrInit(opts.ConfigPath)
	if err != nil {
		if !faults.IsConfig(err) {
			err = faults.Wrap(faults.ErrConfigInvalid, "config", "load", "", err)
		}
		r.result.State = StateAborted
		r.result.Outcome = state.OutcomeAborted
		return r.result, err
	}
	r.cfg = cfg
	r.result.Style = cfg.Style
	r.transition(StateConfigLoaded)

	setter := opts.Setter
	if setter == nil {
		setter = wallpaper.ForHost(wallpaper.Host{})
	}
	r.result.Setter = setter.Name()

	runErr := r.apply(ctx, setter)
	if runErr != nil {
		r.result.State = StateAborted
		r.result.Outcome = state.OutcomeAborted
		r.logger.Error("run aborted", "error", runErr)
	}
	r.journal(started, runErr)
	return r.result, runErr
}

func (r *runner) apply(ctx context.Context, setter wallpaper.Setter) error {
	imagePath, err := r.primary(ctx)
	if err == nil {
		if err = setter.Set(ctx, imagePath, r.cfg.Style); err == nil {
			r.result.AppliedPath = imagePath
			r.result.Outcome = state.OutcomeSuccess
			r.transition(StateWallpaperSet)
			r.logger.Info("wallpaper set", "path", imagePath, "style", string(r.cfg.Style), "setter", setter.Name())
			r.prune(imagePath)
			return nil
		}
	}

	r.result.Cause = err
	r.logger.Warn("falling back to default wallpaper",
		"cause", faults.Kind(err),
		"error", err,
		"default", r.cfg.DefaultWallpaper,
	)
	if err := setter.Set(ctx, r.cfg.DefaultWallpaper, r.cfg.Style); err != nil {
		return faults.Wrap(faults.ErrAborted, "wallpaper", "fallback", r.cfg.DefaultWallpaper, err)
	}
	r.result.AppliedPath = r.cfg.DefaultWallpaper
	r.result.Outcome = state.OutcomeFallback
	r.transition(StateWallpaperSet)
	r.logger.Info("default wallpaper set", "path", r.cfg.DefaultWallpaper, "style", string(r.cfg.Style), "setter", setter.Name())
	return nil
}

// primary fetches today's record and downloads its image. Any error it returns
// sends the run to the default wallpaper.
func (r *runner) primary(ctx context.Context) (string, error) {
	dataDir, err := config.ResolveDataDir(r.opts.DataDir)
	if err != nil {
		return "", faults.Wrap(faults.ErrIO, "app", "data dir", r.opts.DataDir, err)
	}
	if err := os.MkdirAll(dataDir, 0o755); err != nil {
		return "", faults.Wrap(faults.ErrIO, "app", "data dir", dataDir, err)
	}
	r.dataDir = dataDir

	fetcher := r.opts.Fetcher
	if fetcher == nil {
		client, err := apod.NewClient(r.opts.APIEndpoint)
		if err != nil {
			return "", faults.Wrap(faults.ErrNetwork, "apod", "endpoint", "", err)
		}
		r.logger.Debug("apod client ready", "endpoint", client.Endpoint())
		fetcher = client
	}

	record, err := fetcher.FetchToday(ctx, r.cfg.APIKey)
	if err != nil {
		return "", err
	}
	r.result.Record = &record
	r.transition(StateMetadataFetched)
	r.logger.Info("apod record fetched", "date", record.Date, "title", record.Title, "media_type", record.MediaType)
	r.publish(record)

	if !record.IsImage() {
		return "", faults.Wrap(faults.ErrNotImage, "apod", "media type", record.MediaType, nil)
	}

	downloader := r.opts.Downloader
	if downloader == nil {
		downloader = imagefetch.New()
	}
	imageURL := record.ImageURL(r.opts.PreferHD)
	res, err := downloader.Download(ctx, imageURL, imagefetch.DestinationFor(dataDir, record.Date, imageURL))
	if err != nil {
		return "", err
	}
	r.result.ImagePath = res.Path
	r.transition(StateImageReady)
	r.logger.Info("image downloaded",
		"path", res.Path,
		"size", humanize.Bytes(uint64(max(res.Bytes, 0))),
		"format", res.Format,
		slog.Group("image", "width", res.Width, "height", res.Height),
	)
	return res.Path, nil
}

// prune drops earlier downloads once the new one is on the desktop.
func (r *runner) prune(keep string) {
	removed, err := imagefetch.Prune(filepath.Dir(keep), keep)
	if err != nil {
		r.logger.Warn("prune old images failed", "error", err)
		return
	}
	if removed > 0 {
		r.logger.Debug("old images pruned", "count", removed)
	}
}

// publish prints the record and stores the metadata artifact. Neither failure
// affects the run.
func (r *runner) publish(record apod.Record) {
	colorize := metadata.ShouldColorize(r.stdout)
	if r.opts.Colorize != nil {
		colorize = *r.opts.Colorize
	}
	if err := metadata.Print(r.stdout, metadata.FromRecord(record), metadata.PrintOptions{Colorize: colorize}); err != nil {
		r.logger.Warn("print metadata failed", "error", err)
	}
	dest := filepath.Join(r.dataDir, metadata.FileName)
	if err := metadata.Write(record, dest); err != nil {
		r.logger.Warn("write metadata failed", "path", dest, "error", err)
		return
	}
	r.logger.Debug("metadata written", "path", dest)
}

func (r *runner) journal(started time.Time, runErr error) {
	if r.dataDir == "" {
		dir, err := config.ResolveDataDir(r.opts.DataDir)
		if err != nil {
			r.logger.Warn("journal skipped", "error", err)
			return
		}
		r.dataDir = dir
	}

	entry := state.Entry{
		RunID:       r.result.RunID,
		StartedAt:   started.UTC(),
		FinishedAt:  r.opts.Now().UTC(),
		Outcome:     r.result.Outcome,
		ImagePath:   r.result.ImagePath,
		AppliedPath: r.result.AppliedPath,
		Style:       string(r.result.Style),
		Setter:      r.result.Setter,
		Cause:       faults.Kind(r.result.Cause),
	}
	if rec := r.result.Record; rec != nil {
		entry.Date = rec.Date
		entry.Title = rec.Title
		entry.MediaType = rec.MediaType
	}
	switch {
	case runErr != nil:
		entry.Error = runErr.Error()
	case r.result.Cause != nil:
		entry.Error = r.result.Cause.Error()
	}

	path := filepath.Join(r.dataDir, state.FileName)
	if err := state.Save(path, entry); err != nil {
		r.logger.Warn("write journal failed", "path", path, "error", err)
	}
}

func (r *runner) transition(next State) {
	r.logger.Debug("state", "from", r.result.State.String(), "to", next.String())
	r.result.State = next
}
