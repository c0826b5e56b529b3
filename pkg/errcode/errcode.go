package errcode

import (
	"github.com/gnames/gn"
)

const (
	UnknownError gn.ErrorCode = iota

	// File System errors
	CreateDirError
	CopyFileError
	ReadFileError
	DirNotFoundError
	FindFilesError
	ParseJSONError

	// Logging errors
	CreateLogFileError

	// Database errors
	DBConnectionError
	DBTableCheckError
	DBEmptyDatabaseError
	DBNotConnectedError
	DBTableExistsCheckError
	DBQueryTablesError
	DBDropTableError

	// Schema errors
	SchemaGORMConnectionError
	SchemaCreateError
	SchemaMigrateError

	// Load errors
	LoadTimeZoneError
	LoadBeginTxError
	LoadCommitError
	LoadSongFileError
	LoadLogFileError
	LoadInsertError
	LoadLookupError
	LoadMissingTableError
	LoadCancelledError
	LoadNotConnectedError
)
