package mcp

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestFloatArg(t *testing.T) {
	args := map[string]any{
		"number": 3.5,
		"string": "1e-8",
		"empty":  "",
		"junk":   "three",
		"bool":   true,
	}

	v, ok, err := floatArg(args, "number")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 3.5, v)

	v, ok, err = floatArg(args, "string")
	require.NoError(t, err)
	assert.True(t, ok)
	assert.Equal(t, 1e-8, v)

	_, ok, err = floatArg(args, "empty")
	require.NoError(t, err)
	assert.False(t, ok)

	_, ok, err = floatArg(args, "absent")
	require.NoError(t, err)
	assert.False(t, ok)

	_, _, err = floatArg(args, "junk")
	assert.Error(t, err)

	_, _, err = floatArg(args, "bool")
	assert.Error(t, err)
}

func TestNewServerRegistersTools(t *testing.T) {
	s := NewServer()
	require.NotNil(t, s)
	assert.NotNil(t, s.mcpServer)
	assert.NotNil(t, s.solve)
}
