package lifecycle_test

import (
	"testing"
	"time"

	"github.com/gnames/playetl/pkg/lifecycle"
	"github.com/stretchr/testify/assert"
)

func TestStatsAdd(t *testing.T) {
	s := lifecycle.Stats{SongFiles: 2, Songs: 2, Artists: 2, Duration: time.Second}
	s.Add(lifecycle.Stats{LogFiles: 1, Events: 10, Plays: 4, Users: 4,
		Times: 4, SongPlays: 4, Matched: 1, Duration: time.Minute})

	assert.Equal(t, 2, s.SongFiles)
	assert.Equal(t, 1, s.LogFiles)
	assert.Equal(t, 2, s.Songs)
	assert.Equal(t, 10, s.Events)
	assert.Equal(t, 4, s.Plays)
	assert.Equal(t, 4, s.SongPlays)
	assert.Equal(t, 1, s.Matched)
	assert.Equal(t, time.Second, s.Duration, "duration is not accumulated")
}
