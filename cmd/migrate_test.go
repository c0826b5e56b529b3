package cmd

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestGetMigrateCmd_Exists verifies getMigrateCmd returns
// a valid command.
func TestGetMigrateCmd_Exists(t *testing.T) {
	cmd := getMigrateCmd()
	require.NotNil(t, cmd, "Migrate command should exist")
	assert.Equal(t, "migrate", cmd.Use,
		"Command name should be migrate")
	assert.Contains(t, cmd.Short, "schema")
	assert.Contains(t, cmd.Long, "songplays")
	assert.Contains(t, cmd.Long, "never dropped")
	assert.NotNil(t, cmd.RunE)
}
