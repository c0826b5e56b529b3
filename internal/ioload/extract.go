package ioload

import (
	"context"
	"database/sql"
	"errors"

	"github.com/gnames/playetl/internal/iofs"
	"github.com/gnames/playetl/pkg/db"
	"github.com/gnames/playetl/pkg/lifecycle"
	"github.com/gnames/playetl/pkg/records"
	"github.com/jackc/pgx/v5"
)

// processSongFile inserts the song and the artist of every catalog
// record in the file. Values are taken as they are.
func (l *loader) processSongFile(
	ctx context.Context,
	q db.Querier,
	path string,
) (lifecycle.Stats, error) {
	res := lifecycle.Stats{SongFiles: 1}

	songs, err := iofs.ReadJSONLines[records.Song](path)
	if err != nil {
		return res, SongFileError(path, err)
	}

	for _, s := range songs {
		song := records.SongRow(s)
		_, err = q.Exec(ctx, songInsert,
			song.SongID, song.Title, song.ArtistID, song.Year, song.Duration,
		)
		if err != nil {
			return res, InsertError(song.TableName(), path, err)
		}
		res.Songs++

		artist := records.ArtistRow(s)
		_, err = q.Exec(ctx, artistInsert,
			artist.ArtistID, artist.Name, artist.Location,
			artist.Latitude, artist.Longitude,
		)
		if err != nil {
			return res, InsertError(artist.TableName(), path, err)
		}
		res.Artists++
	}

	return res, nil
}

// processLogFile loads the song plays of an activity log file: the time
// and user dimensions first, then a fact row per play with song and
// artist resolved from the catalog when possible.
func (l *loader) processLogFile(
	ctx context.Context,
	q db.Querier,
	path string,
) (lifecycle.Stats, error) {
	res := lifecycle.Stats{LogFiles: 1}

	events, err := iofs.ReadJSONLines[records.Event](path)
	if err != nil {
		return res, LogFileError(path, err)
	}
	res.Events = len(events)

	plays := records.FilterPlays(events)
	res.Plays = len(plays)

	for _, e := range plays {
		t := records.TimeRow(e, l.loc)
		_, err = q.Exec(ctx, timeInsert,
			t.StartTime, t.Hour, t.Day, t.Week, t.Month, t.Year, t.Weekday,
		)
		if err != nil {
			return res, InsertError(t.TableName(), path, err)
		}
		res.Times++
	}

	for _, e := range plays {
		u := records.UserRow(e)
		_, err = q.Exec(ctx, userInsert,
			u.UserID, u.FirstName, u.LastName, u.Gender, u.Level,
		)
		if err != nil {
			return res, InsertError(u.TableName(), path, err)
		}
		res.Users++
	}

	for _, e := range plays {
		songID, artistID, err := lookupSong(ctx, q, e)
		if err != nil {
			return res, LookupError(path, err)
		}
		if songID.Valid {
			res.Matched++
		}

		sp := records.SongPlayRow(e, songID, artistID)
		_, err = q.Exec(ctx, songPlayInsert,
			sp.StartTime, sp.UserID, sp.Level, sp.SongID, sp.ArtistID,
			sp.SessionID, sp.Location, sp.UserAgent,
		)
		if err != nil {
			return res, InsertError(sp.TableName(), path, err)
		}
		res.SongPlays++
	}

	return res, nil
}

// lookupSong finds song and artist IDs of a play by exact title,
// artist name and length. No match gives NULL IDs.
func lookupSong(
	ctx context.Context,
	q db.Querier,
	e records.Event,
) (sql.NullString, sql.NullString, error) {
	var songID, artistID string
	err := q.QueryRow(ctx, songSelect, e.Song, e.Artist, e.Length).
		Scan(&songID, &artistID)
	if errors.Is(err, pgx.ErrNoRows) {
		return sql.NullString{}, sql.NullString{}, nil
	}
	if err != nil {
		return sql.NullString{}, sql.NullString{}, err
	}
	return sql.NullString{String: songID, Valid: true},
		sql.NullString{String: artistID, Valid: true}, nil
}
