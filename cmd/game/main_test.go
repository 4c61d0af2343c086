package main

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseFrontend(t *testing.T) {
	tests := []struct {
		in   string
		want frontend
	}{
		{"", frontendTcell},
		{"tcell", frontendTcell},
		{" ANSI ", frontendANSI},
		{"ansi", frontendANSI},
	}
	for _, tt := range tests {
		got, err := parseFrontend(tt.in)
		require.NoError(t, err, tt.in)
		assert.Equal(t, tt.want, got, tt.in)
	}

	_, err := parseFrontend("sdl")
	assert.ErrorContains(t, err, "sdl")
}
