package main

import (
	"time"

	"github.com/spf13/cobra"

	"github.com/five82/segue/internal/app"
)

func newRootCmd() *cobra.Command {
	var (
		opts   app.Options
		fadeMS int64
		sizeMS int64
	)

	cmd := &cobra.Command{
		Use:   "segue",
		Short: "Segue animates text changes in the terminal",
		Long: `Segue is an interactive demo of a text transition controller: changing
the shown text fades the old text out, resizes the box to fit the new text,
and fades the new text in.`,
		Args:          cobra.NoArgs,
		SilenceUsage:  true,
		SilenceErrors: true,
		RunE: func(cmd *cobra.Command, args []string) error {
			if cmd.Flags().Changed("fade") {
				d := time.Duration(fadeMS) * time.Millisecond
				opts.Fade = &d
			}
			if cmd.Flags().Changed("size") {
				d := time.Duration(sizeMS) * time.Millisecond
				opts.Size = &d
			}
			return app.Run(cmd.Context(), opts)
		},
	}

	flags := cmd.Flags()
	flags.StringVar(&opts.ConfigPath, "config", "", "override config path (default ~/.config/segue/config.toml)")
	flags.StringVar(&opts.PrefsPath, "prefs", "", "override prefs path (default ~/.config/segue/prefs.toml)")
	flags.Int64Var(&fadeMS, "fade", 0, "fade duration in milliseconds")
	flags.Int64Var(&sizeMS, "size", 0, "size duration in milliseconds")
	flags.StringVar(&opts.Timing, "timing", "", "CSS timing function, e.g. ease-in-out or cubic-bezier(0.4, 0, 0.2, 1)")
	flags.StringVar(&opts.LogFile, "log-file", "", "log file path")
	flags.StringVar(&opts.LogLevel, "log-level", "", "log level: none, normal or debug")

	return cmd
}
