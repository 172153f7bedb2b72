package main

import (
	"fmt"

	"github.com/jedib0t/go-pretty/v6/table"
	"github.com/spf13/cobra"

	"github.com/five82/apodwall/internal/wallpaper"
)

func newStylesCommand() *cobra.Command {
	return &cobra.Command{
		Use:   "styles",
		Short: "List wallpaper styles and their native values",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			_, err := fmt.Fprintln(cmd.OutOrStdout(), renderStyles(wallpaper.Mappings()))
			return err
		},
	}
}

func renderStyles(rows []wallpaper.Mapping) string {
	tw := table.NewWriter()
	tw.SetStyle(table.StyleRounded)
	tw.AppendHeader(table.Row{"Style", "Windows", "GNOME", "feh"})
	for _, row := range rows {
		tw.AppendRow(table.Row{string(row.Style), row.Windows, row.GNOME, row.Feh})
	}
	return tw.Render()
}
