// Package schema provides database schema models for PlayETL.
// The layout is a star schema: four dimension tables (songs, artists,
// users, time) around the songplays fact table.
package schema

import (
	"database/sql"
)

// DDLGenerator defines how Go models generate PostgreSQL DDL.
type DDLGenerator interface {
	// TableDDL returns the CREATE TABLE statement for this model.
	TableDDL() string

	// IndexDDL returns CREATE INDEX statements for this model.
	// Returns empty slice if no indexes needed.
	IndexDDL() []string

	// TableName returns the PostgreSQL table name for this model.
	TableName() string
}

// Song is a song from the catalog.
type Song struct {
	// SongID is the catalog identifier of the song.
	SongID string `db:"song_id" ddl:"VARCHAR(50) PRIMARY KEY" gorm:"column:song_id;type:varchar(50);primaryKey"`

	// Title of the song. Used in the song play lookup.
	Title string `db:"title" ddl:"TEXT NOT NULL" gorm:"column:title;type:text;not null;index"`

	// ArtistID refers to the artist performing the song.
	ArtistID string `db:"artist_id" ddl:"VARCHAR(50) NOT NULL" gorm:"column:artist_id;type:varchar(50);not null;index"`

	// Year of release, 0 when unknown.
	Year int `db:"year" ddl:"INT" gorm:"column:year;type:int"`

	// Duration of the song in seconds.
	Duration float64 `db:"duration" ddl:"DOUBLE PRECISION" gorm:"column:duration;type:double precision"`
}

// Artist is a performer from the catalog.
type Artist struct {
	// ArtistID is the catalog identifier of the artist.
	ArtistID string `db:"artist_id" ddl:"VARCHAR(50) PRIMARY KEY" gorm:"column:artist_id;type:varchar(50);primaryKey"`

	// Name of the artist. Used in the song play lookup.
	Name string `db:"name" ddl:"TEXT NOT NULL" gorm:"column:name;type:text;not null;index"`

	// Location is a free-form place, often empty.
	Location sql.NullString `db:"location" ddl:"TEXT" gorm:"column:location;type:text"`

	Latitude  sql.NullFloat64 `db:"latitude" ddl:"DOUBLE PRECISION" gorm:"column:latitude;type:double precision"`
	Longitude sql.NullFloat64 `db:"longitude" ddl:"DOUBLE PRECISION" gorm:"column:longitude;type:double precision"`
}

// User is a listener seen in the activity logs.
type User struct {
	// UserID is the identifier from the logs.
	UserID string `db:"user_id" ddl:"VARCHAR(50) PRIMARY KEY" gorm:"column:user_id;type:varchar(50);primaryKey"`

	FirstName string `db:"first_name" ddl:"VARCHAR(255)" gorm:"column:first_name;type:varchar(255)"`
	LastName  string `db:"last_name" ddl:"VARCHAR(255)" gorm:"column:last_name;type:varchar(255)"`

	// Gender as given by the logs ("F", "M").
	Gender string `db:"gender" ddl:"VARCHAR(10)" gorm:"column:gender;type:varchar(10)"`

	// Level is the subscription level ("free", "paid"). It is the only
	// column updated when a user is seen again.
	Level string `db:"level" ddl:"VARCHAR(10) NOT NULL" gorm:"column:level;type:varchar(10);not null"`
}

// Time is a timestamp broken into calendar units.
type Time struct {
	// StartTime is the event time in seconds since the Unix epoch.
	StartTime float64 `db:"start_time" ddl:"DOUBLE PRECISION PRIMARY KEY" gorm:"column:start_time;type:double precision;primaryKey;autoIncrement:false"`

	// Hour of the day, 0-23.
	Hour int `db:"hour" ddl:"SMALLINT" gorm:"column:hour;type:smallint"`

	// Day of the month, 1-31.
	Day int `db:"day" ddl:"SMALLINT" gorm:"column:day;type:smallint"`

	// Week of the year, 0-53. Weeks start on Monday, days before the
	// first Monday of the year belong to week 0.
	Week int `db:"week" ddl:"SMALLINT" gorm:"column:week;type:smallint"`

	// Month of the year, 1-12.
	Month int `db:"month" ddl:"SMALLINT" gorm:"column:month;type:smallint"`

	Year int `db:"year" ddl:"SMALLINT" gorm:"column:year;type:smallint"`

	// Weekday is the full English name of the day ("Monday").
	Weekday string `db:"weekday" ddl:"VARCHAR(10)" gorm:"column:weekday;type:varchar(10)"`
}

// SongPlay is a fact row: one play of a song by a user.
type SongPlay struct {
	SongplayID int64 `db:"songplay_id" ddl:"BIGSERIAL PRIMARY KEY" gorm:"column:songplay_id;primaryKey;autoIncrement"`

	// StartTime is the event time in milliseconds since the Unix epoch,
	// as it comes from the logs.
	StartTime int64 `db:"start_time" ddl:"BIGINT NOT NULL" gorm:"column:start_time;type:bigint;not null;index"`

	UserID string `db:"user_id" ddl:"VARCHAR(50) NOT NULL" gorm:"column:user_id;type:varchar(50);not null;index"`

	// Level is the subscription level at the time of the play.
	Level string `db:"level" ddl:"VARCHAR(10)" gorm:"column:level;type:varchar(10)"`

	// SongID is NULL when no catalog song matched the play.
	SongID sql.NullString `db:"song_id" ddl:"VARCHAR(50)" gorm:"column:song_id;type:varchar(50)"`

	// ArtistID is NULL when no catalog song matched the play.
	ArtistID sql.NullString `db:"artist_id" ddl:"VARCHAR(50)" gorm:"column:artist_id;type:varchar(50)"`

	SessionID int64  `db:"session_id" ddl:"BIGINT" gorm:"column:session_id;type:bigint"`
	Location  string `db:"location" ddl:"TEXT" gorm:"column:location;type:text"`
	UserAgent string `db:"user_agent" ddl:"TEXT" gorm:"column:user_agent;type:text"`
}
