package output

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestSave_MatchingFormatWritesVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.mp3")
	audio := []byte("fake mp3 payload")

	require.NoError(t, Save(path, audio, "mp3"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

func TestSave_NoExtensionWritesVerbatim(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out")
	audio := []byte("payload")

	require.NoError(t, Save(path, audio, "mp3"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	assert.Equal(t, audio, got)
}

func TestSave_PCMToWAVAddsHeader(t *testing.T) {
	path := filepath.Join(t.TempDir(), "out.wav")
	pcm := []byte{0x00, 0x01, 0x02, 0x03}

	require.NoError(t, Save(path, pcm, "pcm"))

	got, err := os.ReadFile(path)
	require.NoError(t, err)
	require.Len(t, got, len(pcm)+44)
	assert.Equal(t, "RIFF", string(got[0:4]))
	assert.Equal(t, pcm, got[44:])
}
