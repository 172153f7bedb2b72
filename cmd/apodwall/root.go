package main

import (
	"github.com/spf13/cobra"

	"github.com/five82/apodwall/internal/config"
)

func newRootCommand(ctx *commandContext) *cobra.Command {
	runCmd := newRunCommand(ctx)

	rootCmd := &cobra.Command{
		Use:           "apodwall",
		Short:         "Set NASA's Astronomy Picture of the Day as the desktop wallpaper",
		SilenceUsage:  true,
		SilenceErrors: true,
		PersistentPreRunE: func(cmd *cobra.Command, args []string) error {
			return ctx.initLogger(cmd.ErrOrStderr())
		},
		RunE: runCmd.RunE,
	}

	flags := rootCmd.PersistentFlags()
	flags.StringVarP(&ctx.configFlag, "config", "c", "", "Configuration file path (default ~/.config/apodwall/config.json, env "+configEnv+")")
	flags.StringVar(&ctx.dataDir, "data-dir", "", "Directory for the image, metadata and run journal (default "+config.DefaultDataDir()+")")
	flags.StringVar(&ctx.logLevel, "log-level", "info", "Log level: debug, info, warn, error")
	flags.StringVar(&ctx.logFormat, "log-format", "console", "Log format: console or json")

	// the bare command behaves like `run`, so it takes the same flags
	rootCmd.Flags().AddFlagSet(runCmd.Flags())

	rootCmd.AddCommand(runCmd)
	rootCmd.AddCommand(newShowCommand(ctx))
	rootCmd.AddCommand(newConfigCommand(ctx))
	rootCmd.AddCommand(newStylesCommand())

	return rootCmd
}
