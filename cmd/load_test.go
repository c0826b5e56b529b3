package cmd

import (
	"testing"

	"github.com/gnames/playetl/pkg/config"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetLoadCmd_Exists verifies getLoadCmd returns
// a valid command.
func TestGetLoadCmd_Exists(t *testing.T) {
	cmd := getLoadCmd()
	require.NotNil(t, cmd, "Load command should exist")
	assert.Equal(t, "load", cmd.Use)
	assert.Contains(t, cmd.Long, "transaction")
	assert.NotNil(t, cmd.RunE)
}

// TestGetLoadCmd_Flags verifies flags and their shorthands.
func TestGetLoadCmd_Flags(t *testing.T) {
	cmd := getLoadCmd()

	tests := []struct {
		name, short, def string
	}{
		{"song-dir", "s", ""},
		{"log-dir", "l", ""},
		{"time-zone", "z", ""},
		{"progress-bar", "p", "false"},
	}
	for _, v := range tests {
		f := cmd.Flags().Lookup(v.name)
		require.NotNil(t, f, v.name)
		assert.Equal(t, v.short, f.Shorthand, v.name)
		assert.Equal(t, v.def, f.DefValue, v.name)
	}
}

func TestLoadFlagOptions(t *testing.T) {
	t.Run("no flags", func(t *testing.T) {
		cmd := getLoadCmd()
		require.NoError(t, cmd.ParseFlags(nil))
		assert.Empty(t, loadFlagOptions(cmd))
	})

	t.Run("all flags", func(t *testing.T) {
		cmd := getLoadCmd()
		err := cmd.ParseFlags([]string{
			"-s", "/data/songs", "--log-dir", "/data/logs",
			"-z", "America/New_York", "-p",
		})
		require.NoError(t, err)

		opts := loadFlagOptions(cmd)
		assert.Len(t, opts, 4)

		c := config.New()
		c.Update(opts)
		assert.Equal(t, "/data/songs", c.Data.SongDir)
		assert.Equal(t, "/data/logs", c.Data.LogDir)
		assert.Equal(t, "America/New_York", c.Data.TimeZone)
		assert.True(t, c.Load.ProgressBar)
	})

	t.Run("invalid time zone is ignored", func(t *testing.T) {
		cmd := getLoadCmd()
		require.NoError(t, cmd.ParseFlags([]string{"-z", "Nowhere/City"}))

		c := config.New()
		c.Update(loadFlagOptions(cmd))
		assert.Equal(t, "UTC", c.Data.TimeZone)
	})
}
