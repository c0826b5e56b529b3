/*
Copyright © 2025 Dmitry Mozzherin <dmozzherin@gmail.com>

Permission is hereby granted, free of charge, to any person obtaining a copy
of this software and associated documentation files (the "Software"), to deal
in the Software without restriction, including without limitation the rights
to use, copy, modify, merge, publish, distribute, sublicense, and/or sell
copies of the Software, and to permit persons to whom the Software is
furnished to do so, subject to the following conditions:

The above copyright notice and this permission notice shall be included in
all copies or substantial portions of the Software.

THE SOFTWARE IS PROVIDED "AS IS", WITHOUT WARRANTY OF ANY KIND, EXPRESS OR
IMPLIED, INCLUDING BUT NOT LIMITED TO THE WARRANTIES OF MERCHANTABILITY,
FITNESS FOR A PARTICULAR PURPOSE AND NONINFRINGEMENT. IN NO EVENT SHALL THE
AUTHORS OR COPYRIGHT HOLDERS BE LIABLE FOR ANY CLAIM, DAMAGES OR OTHER
LIABILITY, WHETHER IN AN ACTION OF CONTRACT, TORT OR OTHERWISE, ARISING FROM,
OUT OF OR IN CONNECTION WITH THE SOFTWARE OR THE USE OR OTHER DEALINGS IN
THE SOFTWARE.
*/
package cmd

import (
	"context"
	"os"
	"os/signal"
	"syscall"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/playetl/internal/iodb"
	"github.com/gnames/playetl/internal/ioload"
	"github.com/spf13/cobra"
)

// getLoadCmd returns the load command.
// Extracted as a function to facilitate testing and dynamic
// command registration.
func getLoadCmd() *cobra.Command {
	loadCmd := &cobra.Command{
		Use:   "load",
		Short: "Load song and log files into the database",
		Long: `Load song catalog and activity log files into the star schema.

This command:
  1. Connects to PostgreSQL using configuration settings
  2. Checks that the schema exists
  3. Loads every *.json file under the song directory
     into songs and artists
  4. Loads every *.json file under the log directory: for
     NextSong events into time, users and songplays

Each file is loaded in its own transaction. The first failing
file stops the load, files loaded before it stay in the database.

Directories default to data/song_data and data/log_data and can
be set in ~/.config/playetl/config.yaml.

Examples:
  playetl load
  playetl load -s /data/song_data -l /data/log_data
  playetl load --time-zone America/New_York --progress-bar`,
		RunE: func(cmd *cobra.Command, args []string) error {
			err := runLoad(cmd, args)
			if err != nil {
				gn.PrintErrorMessage(err)
			}
			return err
		},
	}

	addLoadFlags(loadCmd)

	return loadCmd
}

func runLoad(cmd *cobra.Command, _ []string) error {
	ctx, stop := signal.NotifyContext(
		context.Background(), os.Interrupt, syscall.SIGTERM,
	)
	defer stop()

	if opts := loadFlagOptions(cmd); len(opts) > 0 {
		cfg.Update(opts)
	}

	op := iodb.NewPgxOperator()
	if err := op.Connect(ctx, &cfg.Database); err != nil {
		return err
	}
	defer op.Close()

	gn.Info("Connected to database: <em>%s@%s:%d/%s</em>",
		cfg.Database.User, cfg.Database.Host,
		cfg.Database.Port, cfg.Database.Database)

	ldr := ioload.New(cfg, op)
	stats, err := ldr.Load(ctx)
	if err != nil {
		return err
	}

	gn.Info(`Load complete
Files: %d song, %d log.
Rows: %s songs, %s artists, %s users, %s time, %s songplays.
Song plays matched to the catalog: %s.
Elapsed time: <em>%s</em>
`,
		stats.SongFiles,
		stats.LogFiles,
		humanize.Comma(int64(stats.Songs)),
		humanize.Comma(int64(stats.Artists)),
		humanize.Comma(int64(stats.Users)),
		humanize.Comma(int64(stats.Times)),
		humanize.Comma(int64(stats.SongPlays)),
		humanize.Comma(int64(stats.Matched)),
		gnfmt.TimeString(stats.Duration.Seconds()),
	)

	return nil
}
