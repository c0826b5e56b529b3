// Package ioload implements the Loader interface: it moves song catalog
// and activity log JSON files into the PostgreSQL star schema.
// This is an impure I/O package that reads files and runs one database
// transaction per file.
package ioload

import (
	"context"
	"errors"
	"log/slog"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/gnames/gn"
	"github.com/gnames/gnfmt"
	"github.com/gnames/playetl/internal/iodb"
	"github.com/gnames/playetl/internal/iofs"
	"github.com/gnames/playetl/pkg/config"
	"github.com/gnames/playetl/pkg/db"
	"github.com/gnames/playetl/pkg/lifecycle"
	"github.com/gnames/playetl/pkg/schema"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5"
)

// extractFunc loads one file through the given transaction.
type extractFunc func(
	ctx context.Context,
	q db.Querier,
	path string,
) (lifecycle.Stats, error)

// loader implements the lifecycle.Loader interface.
type loader struct {
	cfg      *config.Config
	operator db.Operator

	// loc is the time zone of the time dimension.
	loc   *time.Location
	runID string
	log   *slog.Logger

	newReporter func(total int, prefix string) reporter
}

// New creates a new Loader.
func New(cfg *config.Config, op db.Operator) lifecycle.Loader {
	res := &loader{
		cfg:      cfg,
		operator: op,
		loc:      time.UTC,
		log:      slog.Default(),
	}
	res.newReporter = func(total int, prefix string) reporter {
		if res.cfg.Load.ProgressBar {
			return newBarReporter(total, prefix)
		}
		return textReporter{}
	}
	return res
}

// Load processes the song directory and then the log directory.
func (l *loader) Load(ctx context.Context) (*lifecycle.Stats, error) {
	startTime := time.Now()

	l.runID = uuid.NewString()
	l.log = slog.Default().With("run_id", l.runID)

	loc, err := time.LoadLocation(l.cfg.Data.TimeZone)
	if err != nil {
		return nil, TimeZoneError(l.cfg.Data.TimeZone, err)
	}
	l.loc = loc

	pool := l.operator.Pool()
	if pool == nil {
		return nil, NotConnectedError()
	}

	if err = l.checkTables(ctx); err != nil {
		return nil, err
	}

	l.log.Info("Starting load",
		"song_dir", l.cfg.Data.SongDir,
		"log_dir", l.cfg.Data.LogDir,
		"time_zone", l.loc.String(),
	)

	res := &lifecycle.Stats{}

	songStats, err := l.processData(
		ctx, pool, l.cfg.Data.SongDir, "Song files: ", l.processSongFile,
	)
	res.Add(songStats)
	if err != nil {
		res.Duration = time.Since(startTime)
		return res, err
	}
	gn.Message(
		"<em>Loaded %s songs and %s artists from %s files</em>",
		humanize.Comma(int64(songStats.Songs)),
		humanize.Comma(int64(songStats.Artists)),
		humanize.Comma(int64(songStats.SongFiles)),
	)

	err = l.analyzeTables(ctx, pool,
		schema.Song{}.TableName(), schema.Artist{}.TableName(),
	)
	if err != nil {
		l.log.Warn("Cannot refresh catalog statistics", "error", err)
	}

	logStats, err := l.processData(
		ctx, pool, l.cfg.Data.LogDir, "Log files: ", l.processLogFile,
	)
	res.Add(logStats)
	res.Duration = time.Since(startTime)
	if err != nil {
		return res, err
	}
	gn.Message(
		"<em>Loaded %s song plays (%s matched) from %s events in %s files</em>",
		humanize.Comma(int64(logStats.SongPlays)),
		humanize.Comma(int64(logStats.Matched)),
		humanize.Comma(int64(logStats.Events)),
		humanize.Comma(int64(logStats.LogFiles)),
	)

	l.log.Info("Load complete",
		"song_files", res.SongFiles,
		"log_files", res.LogFiles,
		"songs", res.Songs,
		"artists", res.Artists,
		"users", res.Users,
		"time", res.Times,
		"songplays", res.SongPlays,
		"matched", res.Matched,
		"duration", gnfmt.TimeString(res.Duration.Seconds()),
	)

	return res, nil
}

// checkTables makes sure the star schema is in place before any
// file is touched.
func (l *loader) checkTables(ctx context.Context) error {
	hasTables, err := l.operator.HasTables(ctx)
	if err != nil {
		return err
	}
	if !hasTables {
		return iodb.EmptyDatabaseError(
			l.cfg.Database.Host, l.cfg.Database.Database,
		)
	}

	missing, err := l.operator.MissingTables(ctx, schema.TableNames()...)
	if err != nil {
		return err
	}
	if len(missing) > 0 {
		return MissingTableError(missing[0])
	}
	return nil
}

// processData loads every JSON file under root, in sorted order, each
// one in its own transaction. The first failing file is rolled back and
// stops the run, files committed before it stay committed.
func (l *loader) processData(
	ctx context.Context,
	txs db.TxStarter,
	root string,
	prefix string,
	extract extractFunc,
) (lifecycle.Stats, error) {
	var res lifecycle.Stats

	files, err := iofs.FindJSONFiles(root)
	if err != nil {
		return res, err
	}

	total := len(files)
	gn.Info("%d files found in %s", total, root)
	l.log.Info("Files found", "root", root, "count", total)

	rep := l.newReporter(total, prefix)
	defer rep.Finish()

	for i, path := range files {
		if err = ctx.Err(); err != nil {
			return res, CancelledError(err)
		}

		stats, err := l.processFile(ctx, txs, path, extract)
		if err != nil {
			l.log.Error("File failed, stopping",
				"path", path,
				"index", i+1,
				"total", total,
				"error", err,
			)
			return res, err
		}
		res.Add(stats)
		l.log.Debug("File committed", "path", path)
		rep.Progress(i+1, total)
	}

	return res, nil
}

// processFile runs the extractor inside a transaction and commits it.
func (l *loader) processFile(
	ctx context.Context,
	txs db.TxStarter,
	path string,
	extract extractFunc,
) (lifecycle.Stats, error) {
	tx, err := txs.Begin(ctx)
	if err != nil {
		return lifecycle.Stats{}, BeginTxError(path, err)
	}

	stats, err := extract(ctx, tx, path)
	if err != nil {
		l.rollback(ctx, tx, path)
		return lifecycle.Stats{}, err
	}

	if err = tx.Commit(ctx); err != nil {
		l.rollback(ctx, tx, path)
		return lifecycle.Stats{}, CommitError(path, err)
	}

	return stats, nil
}

// rollback discards the file transaction. A transaction closed by
// a failed commit is already rolled back.
func (l *loader) rollback(ctx context.Context, tx pgx.Tx, path string) {
	err := tx.Rollback(ctx)
	if err != nil && !errors.Is(err, pgx.ErrTxClosed) {
		l.log.Warn("Rollback failed", "path", path, "error", err)
	}
}
