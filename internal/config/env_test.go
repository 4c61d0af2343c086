package config

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestGetEnv(t *testing.T) {
	t.Setenv("PONG_TEST_HOST", "example.org")
	assert.Equal(t, "example.org", GetEnv("PONG_TEST_HOST", "fallback"))
	assert.Equal(t, "fallback", GetEnv("PONG_TEST_UNSET", "fallback"))
}

func TestGetEnvInt(t *testing.T) {
	t.Setenv("PONG_TEST_INT", " 42 ")
	n, err := GetEnvInt("PONG_TEST_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, 42, n)

	n, err = GetEnvInt("PONG_TEST_INT_UNSET", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	t.Setenv("PONG_TEST_INT", "")
	n, err = GetEnvInt("PONG_TEST_INT", 7)
	require.NoError(t, err)
	assert.Equal(t, 7, n)

	t.Setenv("PONG_TEST_INT", "many")
	n, err = GetEnvInt("PONG_TEST_INT", 7)
	require.Error(t, err)
	assert.Contains(t, err.Error(), "PONG_TEST_INT")
	assert.Equal(t, 7, n)
}

func TestGetEnvUint64(t *testing.T) {
	t.Setenv("PONG_TEST_SEED", "18446744073709551615")
	n, err := GetEnvUint64("PONG_TEST_SEED", 1)
	require.NoError(t, err)
	assert.Equal(t, uint64(18446744073709551615), n)

	t.Setenv("PONG_TEST_SEED", "-3")
	_, err = GetEnvUint64("PONG_TEST_SEED", 1)
	assert.Error(t, err)
}

func TestGetEnvFloat(t *testing.T) {
	t.Setenv("PONG_TEST_FLOAT", "12.5")
	f, err := GetEnvFloat("PONG_TEST_FLOAT", 1)
	require.NoError(t, err)
	assert.InDelta(t, 12.5, f, 1e-9)

	f, err = GetEnvFloat("PONG_TEST_FLOAT_UNSET", 20)
	require.NoError(t, err)
	assert.InDelta(t, 20.0, f, 1e-9)

	t.Setenv("PONG_TEST_FLOAT", "round")
	_, err = GetEnvFloat("PONG_TEST_FLOAT", 1)
	assert.ErrorContains(t, err, "PONG_TEST_FLOAT")
}
