package models

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestParseStatusFilter(t *testing.T) {
	for _, f := range StatusFilters {
		got, err := ParseStatusFilter(string(f))
		require.NoError(t, err)
		assert.Equal(t, f, got)
	}

	got, err := ParseStatusFilter("")
	require.NoError(t, err)
	assert.Equal(t, FilterAll, got)

	_, err = ParseStatusFilter("archived")
	assert.Error(t, err)
}
