package ioload

import (
	"context"
	"time"

	"github.com/gnames/playetl/pkg/db"
	"github.com/jackc/pgx/v5"
)

// analyzeTables refreshes planner statistics of the given tables.
// It runs between the song and the log directories, so the song
// lookup of every play works with up to date statistics of songs
// and artists.
// It goes through the pool, outside of file transactions.
func (l *loader) analyzeTables(
	ctx context.Context,
	q db.Querier,
	tables ...string,
) error {
	timeStart := time.Now()

	for _, table := range tables {
		sql := "ANALYZE " + pgx.Identifier{table}.Sanitize()
		if _, err := q.Exec(ctx, sql); err != nil {
			return err
		}
	}

	l.log.Info("ANALYZE completed",
		"tables", tables,
		"duration", time.Since(timeStart).String(),
	)
	return nil
}
