package ioload

import (
	"fmt"

	"github.com/gnames/gn"
	"github.com/gnames/playetl/pkg/errcode"
)

// NotConnectedError is returned when Load runs before the database
// operator is connected.
func NotConnectedError() error {
	return &gn.Error{
		Code: errcode.LoadNotConnectedError,
		Msg:  "Load attempted without database connection",
		Err:  fmt.Errorf("not connected to database"),
	}
}

// TimeZoneError is returned when the configured time zone is unknown.
func TimeZoneError(tz string, err error) error {
	msg := `Unknown time zone <em>%s</em>

<em>How to fix:</em>
  Use an IANA name like <em>UTC</em> or <em>America/New_York</em>`
	return &gn.Error{
		Code: errcode.LoadTimeZoneError,
		Msg:  msg,
		Vars: []any{tz},
		Err:  fmt.Errorf("cannot load time zone %s: %w", tz, err),
	}
}

// MissingTableError is returned when one of the star schema tables
// does not exist.
func MissingTableError(table string) error {
	msg := `Table <em>%s</em> does not exist

<em>How to fix:</em>
  Run <em>playetl migrate</em> or <em>playetl create</em>`
	return &gn.Error{
		Code: errcode.LoadMissingTableError,
		Msg:  msg,
		Vars: []any{table},
		Err:  fmt.Errorf("table %s does not exist", table),
	}
}

// BeginTxError is returned when a file transaction cannot start.
func BeginTxError(path string, err error) error {
	return &gn.Error{
		Code: errcode.LoadBeginTxError,
		Msg:  "Cannot start transaction for <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot begin transaction for %s: %w", path, err),
	}
}

// CommitError is returned when a file transaction cannot be committed.
// Nothing from the file is in the database then.
func CommitError(path string, err error) error {
	return &gn.Error{
		Code: errcode.LoadCommitError,
		Msg:  "Cannot commit data from <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("cannot commit %s: %w", path, err),
	}
}

// SongFileError is returned when a song catalog file cannot be read
// or parsed.
func SongFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.LoadSongFileError,
		Msg:  "Cannot read song file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("song file %s: %w", path, err),
	}
}

// LogFileError is returned when an activity log file cannot be read
// or parsed.
func LogFileError(path string, err error) error {
	return &gn.Error{
		Code: errcode.LoadLogFileError,
		Msg:  "Cannot read log file <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("log file %s: %w", path, err),
	}
}

// InsertError is returned when a row cannot be inserted.
func InsertError(table, path string, err error) error {
	msg := `Cannot insert into <em>%s</em> from <em>%s</em>

<em>Possible causes:</em>
  - Schema is out of date, run <em>playetl migrate</em>
  - A value does not fit its column`
	return &gn.Error{
		Code: errcode.LoadInsertError,
		Msg:  msg,
		Vars: []any{table, path},
		Err:  fmt.Errorf("insert into %s from %s: %w", table, path, err),
	}
}

// LookupError is returned when the song lookup query fails.
// A lookup without a match is not an error.
func LookupError(path string, err error) error {
	return &gn.Error{
		Code: errcode.LoadLookupError,
		Msg:  "Cannot look up songs for <em>%s</em>",
		Vars: []any{path},
		Err:  fmt.Errorf("song lookup for %s: %w", path, err),
	}
}

// CancelledError is returned when the load is interrupted between files.
func CancelledError(err error) error {
	return &gn.Error{
		Code: errcode.LoadCancelledError,
		Msg:  "Load was cancelled",
		Err:  fmt.Errorf("load cancelled: %w", err),
	}
}
