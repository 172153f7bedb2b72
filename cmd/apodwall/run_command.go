package main

import (
	"fmt"
	"io"

	"github.com/spf13/cobra"

	"github.com/five82/apodwall/internal/app"
	"github.com/five82/apodwall/internal/state"
)

func newRunCommand(ctx *commandContext) *cobra.Command {
	var preferHD bool
	var apiURL string

	cmd := &cobra.Command{
		Use:   "run",
		Short: "Fetch today's picture and set it as the wallpaper",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			res, err := app.Run(cmd.Context(), app.Options{
				ConfigPath:  ctx.configPath(),
				DataDir:     ctx.dataDir,
				APIEndpoint: apiURL,
				PreferHD:    preferHD,
				Fetcher:     ctx.fetcher,
				Setter:      ctx.setter,
				Logger:      ctx.log(),
				Stdout:      cmd.OutOrStdout(),
			})
			if err != nil {
				return err
			}
			return reportOutcome(cmd.OutOrStdout(), ctx, res)
		},
	}

	cmd.Flags().BoolVar(&preferHD, "hd", false, "Download the high resolution image when available")
	cmd.Flags().StringVar(&apiURL, "api-url", "", "Override the APOD API endpoint")
	_ = cmd.Flags().MarkHidden("api-url")
	return cmd
}

// reportOutcome prints a one-line confirmation after the metadata block.
func reportOutcome(w io.Writer, ctx *commandContext, res app.Result) error {
	if res.Outcome == state.OutcomeFallback {
		ctx.log().Warn("today's picture was not applied", "cause", res.Cause)
		_, err := fmt.Fprintf(w, "Default wallpaper set: %s\n", res.AppliedPath)
		return err
	}
	_, err := fmt.Fprintf(w, "Wallpaper set: %s\n", res.AppliedPath)
	return err
}
