package main

import (
	"errors"
	"fmt"
	"io"
	"path/filepath"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/mattn/go-isatty"
	"github.com/spf13/cobra"

	"github.com/five82/apodwall/internal/config"
	"github.com/five82/apodwall/internal/metadata"
	"github.com/five82/apodwall/internal/prefs"
	"github.com/five82/apodwall/internal/state"
	"github.com/five82/apodwall/internal/ui"
)

// showRequest is what the viewer needs from disk.
type showRequest struct {
	Artifact *metadata.Artifact
	Entry    *state.Entry
	Prefs    prefs.Prefs
}

func newShowCommand(ctx *commandContext) *cobra.Command {
	var plain bool

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Show the metadata of the last fetched picture",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			dataDir, err := config.ResolveDataDir(ctx.dataDir)
			if err != nil {
				return fmt.Errorf("resolve data dir: %w", err)
			}
			req, err := loadShowRequest(ctx, dataDir)
			if err != nil {
				return err
			}

			out := cmd.OutOrStdout()
			if plain || !isTerminal(out) {
				return printPlain(out, req)
			}
			return ui.Run(ui.Options{
				Artifact:  req.Artifact,
				Entry:     req.Entry,
				ThemeName: req.Prefs.Theme,
				Wrap:      req.Prefs.Wrap,
			})
		},
	}

	cmd.Flags().BoolVar(&plain, "plain", false, "Print to stdout instead of opening the viewer")
	return cmd
}

func loadShowRequest(ctx *commandContext, dataDir string) (showRequest, error) {
	var req showRequest

	artifact, err := metadata.Read(filepath.Join(dataDir, metadata.FileName))
	switch {
	case err == nil:
		req.Artifact = &artifact
	case errors.Is(err, metadata.ErrNoArtifact):
		ctx.log().Debug("no metadata artifact", "dir", dataDir)
	default:
		return req, err
	}

	entry, err := state.Load(filepath.Join(dataDir, state.FileName))
	switch {
	case err == nil:
		req.Entry = &entry
	case errors.Is(err, state.ErrNoHistory):
	default:
		ctx.log().Warn("run journal unreadable", "error", err)
	}

	req.Prefs, _ = prefs.Load("")
	return req, nil
}

func printPlain(w io.Writer, req showRequest) error {
	if req.Artifact == nil {
		_, err := fmt.Fprintln(w, "No picture fetched yet. Run `apodwall run` first.")
		return err
	}
	if err := metadata.Print(w, *req.Artifact, metadata.PrintOptions{
		Width:    req.Prefs.Wrap,
		Colorize: metadata.ShouldColorize(w),
	}); err != nil {
		return err
	}
	if e := req.Entry; e != nil {
		line := fmt.Sprintf("\nlast run: %s", e.Outcome)
		if !e.FinishedAt.IsZero() {
			line += " " + humanize.Time(e.FinishedAt)
		}
		if d := e.Duration().Round(time.Millisecond); d > 0 {
			line += " in " + d.String()
		}
		if e.AppliedPath != "" {
			line += " -> " + e.AppliedPath
		}
		if e.Cause != "" {
			line += " (" + e.Cause + ")"
		}
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

func isTerminal(w io.Writer) bool {
	f, ok := w.(interface{ Fd() uintptr })
	if !ok {
		return false
	}
	return isatty.IsTerminal(f.Fd()) || isatty.IsCygwinTerminal(f.Fd())
}
