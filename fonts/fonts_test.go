package fonts

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLoadDefaults(t *testing.T) {
	require.NoError(t, LoadDefaults())

	for _, name := range []FontName{Regular, Title, Mono} {
		face := name.Get()
		require.NotNil(t, face, name)
		assert.Positive(t, face.Metrics().Height.Ceil(), name)
	}
}

func TestLoadFontRejectsGarbage(t *testing.T) {
	err := LoadFont("broken", []byte("not a font"))
	assert.Error(t, err)
}

func TestGetUnknownFontPanics(t *testing.T) {
	assert.Panics(t, func() { FontName("missing").Get() })
}
