package isg

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// TestRoundTripGolden checks both halves of the round-trip contract on
// every golden file: the emitted text is byte-identical to the source,
// and reparsing it yields a semantically equal document.
func TestRoundTripGolden(t *testing.T) {
	names, err := filepath.Glob(filepath.Join("testdata", "*.isg"))
	require.NoError(t, err)
	require.NotEmpty(t, names)

	for _, name := range names {
		t.Run(filepath.Base(name), func(t *testing.T) {
			b, err := os.ReadFile(name)
			require.NoError(t, err)
			src := string(b)

			doc, err := Parse(src)
			require.NoError(t, err)
			assert.Equal(t, src, Emit(doc))

			again, err := Parse(Emit(doc))
			require.NoError(t, err)
			assert.True(t, again.Equal(doc))
		})
	}
}

// TestRoundTripProgrammatic checks that a hand-built document survives
// emit and reparse unchanged.
func TestRoundTripProgrammatic(t *testing.T) {
	doc := sampleGridDoc()
	require.NoError(t, doc.Validate())

	again, err := Parse(Emit(doc))
	require.NoError(t, err)
	assert.True(t, again.Equal(doc))
}
