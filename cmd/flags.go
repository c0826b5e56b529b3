package cmd

import (
	"github.com/gnames/playetl/pkg/config"
	"github.com/spf13/cobra"
)

func addLoadFlags(cmd *cobra.Command) {
	cmd.Flags().StringP(
		"song-dir", "s", "",
		"root directory of song catalog files",
	)
	cmd.Flags().StringP(
		"log-dir", "l", "",
		"root directory of activity log files",
	)
	cmd.Flags().StringP(
		"time-zone", "z", "",
		"IANA time zone for the time table (e.g. UTC)",
	)
	cmd.Flags().BoolP(
		"progress-bar", "p", false,
		"show a progress bar instead of progress lines",
	)
}

// loadFlagOptions converts explicitly set flags of the load command
// to config options. Flags that were not given keep values from
// config.yaml and environment.
func loadFlagOptions(cmd *cobra.Command) []config.Option {
	var res []config.Option
	flags := cmd.Flags()

	if flags.Changed("song-dir") {
		s, _ := flags.GetString("song-dir")
		res = append(res, config.OptDataSongDir(s))
	}
	if flags.Changed("log-dir") {
		s, _ := flags.GetString("log-dir")
		res = append(res, config.OptDataLogDir(s))
	}
	if flags.Changed("time-zone") {
		s, _ := flags.GetString("time-zone")
		res = append(res, config.OptDataTimeZone(s))
	}
	if flags.Changed("progress-bar") {
		b, _ := flags.GetBool("progress-bar")
		res = append(res, config.OptLoadProgressBar(b))
	}
	return res
}
