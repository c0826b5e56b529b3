package records

import (
	"database/sql"
	"time"

	"github.com/gnames/playetl/pkg/schema"
)

// SongRow projects the song part of a catalog record.
func SongRow(s Song) schema.Song {
	return schema.Song{
		SongID:   s.SongID,
		Title:    s.Title,
		ArtistID: s.ArtistID,
		Year:     s.Year,
		Duration: s.Duration,
	}
}

// ArtistRow projects the artist part of a catalog record.
func ArtistRow(s Song) schema.Artist {
	return schema.Artist{
		ArtistID:  s.ArtistID,
		Name:      s.ArtistName,
		Location:  nullString(s.ArtistLocation),
		Latitude:  nullFloat(s.ArtistLatitude),
		Longitude: nullFloat(s.ArtistLongitude),
	}
}

// EventTime converts the millisecond timestamp of an event to a time in
// the given location.
func EventTime(ts int64, loc *time.Location) time.Time {
	return time.UnixMilli(ts).In(loc)
}

// TimeRow breaks the event timestamp into calendar units of the given
// location.
func TimeRow(e Event, loc *time.Location) schema.Time {
	t := EventTime(e.Ts, loc)
	return schema.Time{
		StartTime: float64(e.Ts) / 1000,
		Hour:      t.Hour(),
		Day:       t.Day(),
		Week:      WeekOfYear(t),
		Month:     int(t.Month()),
		Year:      t.Year(),
		Weekday:   t.Weekday().String(),
	}
}

// WeekOfYear returns the week number of the year where weeks start on
// Monday. Days before the first Monday of the year are in week 0, so
// the result is in the 0-53 range (strftime %W).
func WeekOfYear(t time.Time) int {
	yday := t.YearDay() - 1
	// Monday is 0
	wday := (int(t.Weekday()) + 6) % 7
	return (yday + 7 - wday) / 7
}

// UserRow projects the user part of an event.
func UserRow(e Event) schema.User {
	return schema.User{
		UserID:    string(e.UserID),
		FirstName: e.FirstName,
		LastName:  e.LastName,
		Gender:    e.Gender,
		Level:     e.Level,
	}
}

// SongPlayRow creates the fact row of a play event. The song and artist
// IDs come from the catalog lookup and stay NULL when it found nothing.
func SongPlayRow(e Event, songID, artistID sql.NullString) schema.SongPlay {
	return schema.SongPlay{
		StartTime: e.Ts,
		UserID:    string(e.UserID),
		Level:     e.Level,
		SongID:    songID,
		ArtistID:  artistID,
		SessionID: e.SessionID,
		Location:  e.Location,
		UserAgent: e.UserAgent,
	}
}

func nullString(s *string) sql.NullString {
	if s == nil {
		return sql.NullString{}
	}
	return sql.NullString{String: *s, Valid: true}
}

func nullFloat(f *float64) sql.NullFloat64 {
	if f == nil {
		return sql.NullFloat64{}
	}
	return sql.NullFloat64{Float64: *f, Valid: true}
}
