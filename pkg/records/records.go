// Package records describes the JSON records read from song catalog and
// activity log files and shapes them into rows of the star schema.
//
// Everything here is pure: no file or database access.
package records

import (
	"bytes"
	"encoding/json"
	"strconv"
)

// PlayPage is the value of the page field of events that represent
// a song play.
const PlayPage = "NextSong"

// Song is one record of a song catalog file.
type Song struct {
	NumSongs        int      `json:"num_songs"`
	ArtistID        string   `json:"artist_id"`
	ArtistLatitude  *float64 `json:"artist_latitude"`
	ArtistLongitude *float64 `json:"artist_longitude"`
	ArtistLocation  *string  `json:"artist_location"`
	ArtistName      string   `json:"artist_name"`
	SongID          string   `json:"song_id"`
	Title           string   `json:"title"`
	Duration        float64  `json:"duration"`
	Year            int      `json:"year"`
}

// Event is one line of an activity log file.
type Event struct {
	Artist        *string  `json:"artist"`
	Auth          string   `json:"auth"`
	FirstName     string   `json:"firstName"`
	Gender        string   `json:"gender"`
	ItemInSession int      `json:"itemInSession"`
	LastName      string   `json:"lastName"`
	Length        *float64 `json:"length"`
	Level         string   `json:"level"`
	Location      string   `json:"location"`
	Method        string   `json:"method"`
	Page          string   `json:"page"`
	Registration  *float64 `json:"registration"`
	SessionID     int64    `json:"sessionId"`
	Song          *string  `json:"song"`
	Status        int      `json:"status"`

	// Ts is the event time in milliseconds since the Unix epoch.
	Ts        int64  `json:"ts"`
	UserAgent string `json:"userAgent"`
	UserID    ID     `json:"userId"`
}

// IsPlay tells if the event is a song play.
func (e Event) IsPlay() bool {
	return e.Page == PlayPage
}

// FilterPlays keeps song play events, preserving their order.
func FilterPlays(events []Event) []Event {
	res := make([]Event, 0, len(events))
	for _, e := range events {
		if e.IsPlay() {
			res = append(res, e)
		}
	}
	return res
}

// ID is an identifier that logs write either as a JSON string or
// as a JSON number.
type ID string

// UnmarshalJSON accepts strings, numbers and null.
func (id *ID) UnmarshalJSON(data []byte) error {
	data = bytes.TrimSpace(data)
	if bytes.Equal(data, []byte("null")) {
		*id = ""
		return nil
	}
	if len(data) > 0 && data[0] == '"' {
		var s string
		if err := json.Unmarshal(data, &s); err != nil {
			return err
		}
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(data, &n); err != nil {
		return err
	}
	if i, err := n.Int64(); err == nil {
		*id = ID(strconv.FormatInt(i, 10))
		return nil
	}
	*id = ID(n.String())
	return nil
}
