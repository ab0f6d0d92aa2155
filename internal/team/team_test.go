package team

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestByNameResolvesAllForms(t *testing.T) {
	for _, name := range []string{"Oklahoma City Thunder", "Thunder", "OKC", "okc", "  thunder "} {
		got, ok := ByName(name)
		require.True(t, ok, "name %q", name)
		assert.Equal(t, "OKC", got.Abbreviation)
		assert.Equal(t, 1610612760, got.ID)
	}

	_, ok := ByName("Seattle SuperSonics")
	assert.False(t, ok)
}

func TestAbbrevFallsBackToRawName(t *testing.T) {
	assert.Equal(t, "BOS", Abbrev("Boston Celtics"))
	assert.Equal(t, "Seattle SuperSonics", Abbrev("Seattle SuperSonics"))
}

func TestAllCoversTheLeague(t *testing.T) {
	teams := All()
	require.Len(t, teams, 30)

	seen := map[string]bool{}
	for _, tm := range teams {
		assert.False(t, seen[tm.Abbreviation], "duplicate %s", tm.Abbreviation)
		seen[tm.Abbreviation] = true
	}
}
