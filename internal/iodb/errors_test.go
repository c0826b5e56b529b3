package iodb

import (
	"errors"
	"testing"

	"github.com/gnames/gn"
	"github.com/gnames/playetl/pkg/errcode"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestConnectionError_Structure verifies error structure.
func TestConnectionError_Structure(t *testing.T) {
	originalErr := errors.New("connection refused")

	err := ConnectionError("localhost", 5432, "test", "student",
		originalErr)

	require.NotNil(t, err)

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBConnectionError, gnErr.Code)
	assert.NotEmpty(t, gnErr.Msg)
	assert.Len(t, gnErr.Vars, 4,
		"Should have 4 vars: host, port, host, user")
	assert.ErrorIs(t, gnErr.Err, originalErr)
	assert.Contains(t, gnErr.Err.Error(), "localhost:5432/test")
}

// TestErrors_Codes verifies each constructor sets its code and
// keeps the cause.
func TestErrors_Codes(t *testing.T) {
	cause := errors.New("boom")

	tests := []struct {
		msg  string
		err  error
		code gn.ErrorCode
	}{
		{"table check", TableCheckError(cause), errcode.DBTableCheckError},
		{"table exists", TableExistsCheckError("songs", cause),
			errcode.DBTableExistsCheckError},
		{"query tables", QueryTablesError(cause), errcode.DBQueryTablesError},
		{"drop table", DropTableError("songs", cause), errcode.DBDropTableError},
	}

	for _, v := range tests {
		gnErr, ok := v.err.(*gn.Error)
		require.True(t, ok, v.msg)
		assert.Equal(t, v.code, gnErr.Code, v.msg)
		assert.ErrorIs(t, gnErr.Err, cause, v.msg)
	}
}

// TestNotConnectedError verifies error structure.
func TestNotConnectedError(t *testing.T) {
	gnErr, ok := NotConnectedError().(*gn.Error)
	require.True(t, ok)
	assert.Equal(t, errcode.DBNotConnectedError, gnErr.Code)
	assert.Contains(t, gnErr.Err.Error(), "not connected")
}

// TestEmptyDatabaseError_Structure verifies error structure.
func TestEmptyDatabaseError_Structure(t *testing.T) {
	err := EmptyDatabaseError("localhost", "sparkifydb")

	gnErr, ok := err.(*gn.Error)
	require.True(t, ok, "Error should be of type *gn.Error")

	assert.Equal(t, errcode.DBEmptyDatabaseError, gnErr.Code)
	assert.Equal(t, []any{"sparkifydb", "localhost"}, gnErr.Vars)
	assert.Contains(t, gnErr.Msg, "playetl create")
}
