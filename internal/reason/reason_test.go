package reason

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestTaxonomy(t *testing.T) {
	reasons := All()
	require.Len(t, reasons, 11)

	seen := map[string]bool{}
	for _, r := range reasons {
		assert.False(t, seen[r.ID], "duplicate %s", r.ID)
		seen[r.ID] = true
		assert.NotEmpty(t, r.LongName)
		assert.NotEmpty(t, r.Group)
	}
}

func TestByID(t *testing.T) {
	r, ok := ByID("Forme")
	require.True(t, ok)
	assert.Equal(t, GroupContext, r.Group)

	assert.True(t, Valid("IA+"))
	assert.False(t, Valid("forme")) // IDs are case-sensitive
	assert.False(t, Valid(""))
}
