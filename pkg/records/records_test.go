package records_test

import (
	"database/sql"
	"encoding/json"
	"testing"
	"time"

	"github.com/gnames/playetl/pkg/records"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const songJSON = `{"num_songs": 1, "artist_id": "ARD7TVE1187B99BFB1",
"artist_latitude": null, "artist_longitude": null, "artist_location":
"California - LA", "artist_name": "Casual", "song_id": "SOMZWCG12A8C13C480",
"title": "I Didn't Mean To", "duration": 218.93179, "year": 0}`

const playJSON = `{"artist":"Pavement","auth":"Logged In","firstName":"Sylvie",
"gender":"F","itemInSession":0,"lastName":"Cruz","length":99.16036,
"level":"free","location":"Washington-Arlington-Alexandria, DC-VA-MD-WV",
"method":"PUT","page":"NextSong","registration":1540266185796.0,
"sessionId":345,"song":"Mercy:The Laundromat","status":200,
"ts":1541990258796,"userAgent":"Mozilla\/5.0","userId":"10"}`

const homeJSON = `{"artist":null,"auth":"Logged In","firstName":"Walter",
"gender":"M","itemInSession":0,"lastName":"Frye","length":null,
"level":"free","location":"San Francisco","method":"GET","page":"Home",
"registration":1540919166796.0,"sessionId":38,"song":null,"status":200,
"ts":1541105830796,"userAgent":"Mozilla","userId":"39"}`

func TestSongRows(t *testing.T) {
	var s records.Song
	err := json.Unmarshal([]byte(songJSON), &s)
	require.NoError(t, err)

	song := records.SongRow(s)
	assert.Equal(t, "SOMZWCG12A8C13C480", song.SongID)
	assert.Equal(t, "I Didn't Mean To", song.Title)
	assert.Equal(t, "ARD7TVE1187B99BFB1", song.ArtistID)
	assert.Equal(t, 0, song.Year)
	assert.Equal(t, 218.93179, song.Duration)

	artist := records.ArtistRow(s)
	assert.Equal(t, "ARD7TVE1187B99BFB1", artist.ArtistID)
	assert.Equal(t, "Casual", artist.Name)
	assert.Equal(t,
		sql.NullString{String: "California - LA", Valid: true},
		artist.Location)
	assert.False(t, artist.Latitude.Valid, "null latitude stays NULL")
	assert.False(t, artist.Longitude.Valid, "null longitude stays NULL")
}

func TestArtistRowCoordinates(t *testing.T) {
	lat, lng := 35.14968, -90.04892
	s := records.Song{
		ArtistID:        "AR1",
		ArtistName:      "Artist A",
		ArtistLatitude:  &lat,
		ArtistLongitude: &lng,
	}
	artist := records.ArtistRow(s)
	assert.Equal(t, sql.NullFloat64{Float64: lat, Valid: true}, artist.Latitude)
	assert.Equal(t, sql.NullFloat64{Float64: lng, Valid: true}, artist.Longitude)
	assert.False(t, artist.Location.Valid)
}

func TestFilterPlays(t *testing.T) {
	var play, home records.Event
	require.NoError(t, json.Unmarshal([]byte(playJSON), &play))
	require.NoError(t, json.Unmarshal([]byte(homeJSON), &home))

	assert.True(t, play.IsPlay())
	assert.False(t, home.IsPlay())

	tests := []struct {
		msg    string
		events []records.Event
		plays  int
	}{
		{"no events", nil, 0},
		{"no plays", []records.Event{home, home}, 0},
		{"mixed", []records.Event{home, play, home, play, play}, 3},
		{"plays only", []records.Event{play, play}, 2},
	}

	for _, v := range tests {
		res := records.FilterPlays(v.events)
		assert.Len(t, res, v.plays, v.msg)
		for _, e := range res {
			assert.Equal(t, records.PlayPage, e.Page, v.msg)
		}
	}
}

func TestTimeRow(t *testing.T) {
	ny, err := time.LoadLocation("America/New_York")
	require.NoError(t, err)

	e := records.Event{Ts: 1541121934796}

	tests := []struct {
		msg     string
		loc     *time.Location
		hour    int
		day     int
		week    int
		month   int
		year    int
		weekday string
	}{
		{"utc", time.UTC, 1, 2, 44, 11, 2018, "Friday"},
		{"new york", ny, 21, 1, 44, 11, 2018, "Thursday"},
	}

	for _, v := range tests {
		res := records.TimeRow(e, v.loc)
		assert.InDelta(t, 1541121934.796, res.StartTime, 1e-6, v.msg)
		assert.Equal(t, v.hour, res.Hour, v.msg)
		assert.Equal(t, v.day, res.Day, v.msg)
		assert.Equal(t, v.week, res.Week, v.msg)
		assert.Equal(t, v.month, res.Month, v.msg)
		assert.Equal(t, v.year, res.Year, v.msg)
		assert.Equal(t, v.weekday, res.Weekday, v.msg)
	}
}

func TestWeekOfYear(t *testing.T) {
	tests := []struct {
		msg  string
		date time.Time
		week int
	}{
		{"year starts on Monday",
			time.Date(2018, 1, 1, 0, 0, 0, 0, time.UTC), 1},
		{"year starts on Sunday",
			time.Date(2017, 1, 1, 0, 0, 0, 0, time.UTC), 0},
		{"first Monday of 2017",
			time.Date(2017, 1, 2, 0, 0, 0, 0, time.UTC), 1},
		{"last day of 2018",
			time.Date(2018, 12, 31, 0, 0, 0, 0, time.UTC), 53},
		{"middle of November",
			time.Date(2018, 11, 15, 12, 0, 0, 0, time.UTC), 46},
	}

	for _, v := range tests {
		assert.Equal(t, v.week, records.WeekOfYear(v.date), v.msg)
	}
}

func TestUserAndSongPlayRows(t *testing.T) {
	var e records.Event
	require.NoError(t, json.Unmarshal([]byte(playJSON), &e))

	user := records.UserRow(e)
	assert.Equal(t, "10", user.UserID)
	assert.Equal(t, "Sylvie", user.FirstName)
	assert.Equal(t, "Cruz", user.LastName)
	assert.Equal(t, "F", user.Gender)
	assert.Equal(t, "free", user.Level)

	sp := records.SongPlayRow(e, sql.NullString{}, sql.NullString{})
	assert.Equal(t, int64(1541990258796), sp.StartTime)
	assert.Equal(t, "10", sp.UserID)
	assert.Equal(t, "free", sp.Level)
	assert.False(t, sp.SongID.Valid)
	assert.False(t, sp.ArtistID.Valid)
	assert.Equal(t, int64(345), sp.SessionID)
	assert.Equal(t, "Washington-Arlington-Alexandria, DC-VA-MD-WV", sp.Location)
	assert.Equal(t, "Mozilla/5.0", sp.UserAgent)

	songID := sql.NullString{String: "SO1", Valid: true}
	artistID := sql.NullString{String: "AR1", Valid: true}
	sp = records.SongPlayRow(e, songID, artistID)
	assert.Equal(t, songID, sp.SongID)
	assert.Equal(t, artistID, sp.ArtistID)
}

func TestIDUnmarshal(t *testing.T) {
	tests := []struct {
		msg   string
		input string
		res   records.ID
	}{
		{"string", `{"userId":"39"}`, "39"},
		{"number", `{"userId":39}`, "39"},
		{"empty string", `{"userId":""}`, ""},
		{"null", `{"userId":null}`, ""},
	}

	for _, v := range tests {
		var e records.Event
		err := json.Unmarshal([]byte(v.input), &e)
		require.NoError(t, err, v.msg)
		assert.Equal(t, v.res, e.UserID, v.msg)
	}

	var e records.Event
	err := json.Unmarshal([]byte(`{"userId":true}`), &e)
	assert.Error(t, err)
}
