// Package lifecycle defines the contracts of the database lifecycle
// stages: schema management and data loading.
package lifecycle

import (
	"context"
	"time"
)

// Loader moves the song catalog and the activity logs from JSON files
// into the star schema.
type Loader interface {
	// Load processes the song directory first and the log directory
	// second. Every file is loaded in its own transaction. The first
	// failing file stops the run, files committed before it stay in
	// the database.
	Load(ctx context.Context) (*Stats, error)
}

// Stats counts what a load run did. Row counts are statements executed,
// rows skipped by ON CONFLICT DO NOTHING are counted as well.
type Stats struct {
	// SongFiles and LogFiles are the numbers of committed files.
	SongFiles int
	LogFiles  int

	Songs   int
	Artists int

	// Events is the number of log lines, Plays are the ones with
	// the NextSong page.
	Events int
	Plays  int

	Users     int
	Times     int
	SongPlays int

	// Matched is the number of song plays with song and artist
	// found in the catalog.
	Matched int

	Duration time.Duration
}

// Add accumulates counts of another Stats. Duration is not added.
func (s *Stats) Add(o Stats) {
	s.SongFiles += o.SongFiles
	s.LogFiles += o.LogFiles
	s.Songs += o.Songs
	s.Artists += o.Artists
	s.Events += o.Events
	s.Plays += o.Plays
	s.Users += o.Users
	s.Times += o.Times
	s.SongPlays += o.SongPlays
	s.Matched += o.Matched
}
