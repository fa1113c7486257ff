package voicebank

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func writeFiles(t *testing.T, dir string, files map[string][]byte) {
	t.Helper()
	for name, data := range files {
		require.NoError(t, os.WriteFile(filepath.Join(dir, name), data, 0o644))
	}
}

func TestNew_EmptyDirectory(t *testing.T) {
	bank, err := New(t.TempDir(), "frf")
	require.NoError(t, err)

	assert.Empty(t, bank.Inventory)
	assert.Nil(t, bank.Bundle.VoiceData)
	assert.Nil(t, bank.Bundle.Dictionary)
	assert.Nil(t, bank.Bundle.Linguistic)
	assert.Empty(t, bank.Bundle.Configuration)
	assert.True(t, bank.NoVoiceData())
}

func TestNew_NonexistentDirectory(t *testing.T) {
	// A directory that is not there yet is a normal case: empty bank,
	// not a failure.
	bank, err := New(filepath.Join(t.TempDir(), "nope"), "frf")
	require.NoError(t, err)

	assert.Empty(t, bank.Inventory)
	assert.True(t, bank.NoVoiceData())
	assert.Nil(t, bank.Bundle.Dictionary)
	assert.Empty(t, bank.Bundle.Configuration)
}

func TestNew_UnreadableDirectory(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}

	parent := t.TempDir()
	dir := filepath.Join(parent, "voices")
	require.NoError(t, os.Mkdir(dir, 0o755))
	require.NoError(t, os.Chmod(parent, 0o000))
	t.Cleanup(func() { os.Chmod(parent, 0o755) })

	_, err := New(dir, "frf")
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
}

func TestNew_PathIsFile(t *testing.T) {
	dir := t.TempDir()
	path := filepath.Join(dir, "voices")
	require.NoError(t, os.WriteFile(path, []byte("x"), 0o644))

	_, err := New(path, "frf")
	assert.ErrorIs(t, err, ErrDirectoryUnavailable)
}

func TestNew_FullVoiceSet(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		"frf.bnx":       []byte("voice data sample"),
		"frf.dca":       []byte("dictionary"),
		"frf.ldi":       []byte("linguistic"),
		"frf.oso":       []byte("orthographic"),
		"frf.trz":       []byte("transcription"),
		"user.userdico": []byte("test=test"),
	})

	bank, err := New(dir, "frf")
	require.NoError(t, err)

	assert.Len(t, bank.Inventory, 6)
	assert.Equal(t, []byte("voice data sample"), bank.Bundle.VoiceData)
	assert.Equal(t, []byte("dictionary"), bank.Bundle.Dictionary)
	assert.Equal(t, []byte("linguistic"), bank.Bundle.Linguistic)
	assert.Equal(t, "test=test", bank.Bundle.Configuration[UserDictionaryKey])
	assert.Equal(t, []byte("orthographic"), bank.Bundle.Configuration["frf.oso"])
	assert.Equal(t, []byte("transcription"), bank.Bundle.Configuration["frf.trz"])
}

func TestNew_VoiceDataResolution(t *testing.T) {
	tests := []struct {
		name     string
		files    map[string][]byte
		wantLen  int
		wantData string
	}{
		{
			name: "hd bnx wins by size",
			files: map[string][]byte{
				"frf.bnx":    []byte("BVCU voice data sample"),      // 22 bytes
				"frf_hd.bnx": []byte("High definition voice data"), // 26 bytes
			},
			wantLen:  26,
			wantData: "High definition voice data",
		},
		{
			name: "size decides across file families",
			files: map[string][]byte{
				"frf.bvcu": []byte("Small BVCU"),                 // 10 bytes
				"frf.bnx":  []byte("Larger BNX voice data file!"), // 27 bytes
			},
			wantLen:  27,
			wantData: "Larger BNX voice data file!",
		},
		{
			name: "hd bvcu wins over standard bvcu",
			files: map[string][]byte{
				"frf.bvcu":    []byte("Standard BVCU"),
				"frf_hd.bvcu": []byte("High definition BVCU voice data"),
			},
			wantLen:  31,
			wantData: "High definition BVCU voice data",
		},
		{
			name: "size tie keeps the earlier-declared candidate",
			files: map[string][]byte{
				"frf.bnx":  []byte("aaaa"),
				"frf.bvcu": []byte("bbbb"),
			},
			wantLen:  4,
			wantData: "aaaa",
		},
		{
			name: "single bvcu archive",
			files: map[string][]byte{
				"frf.bvcu": []byte("BVCU voice data in .bvcu format"),
			},
			wantLen:  31,
			wantData: "BVCU voice data in .bvcu format",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			dir := t.TempDir()
			writeFiles(t, dir, tt.files)

			bank, err := New(dir, "frf")
			require.NoError(t, err)

			require.NotNil(t, bank.Bundle.VoiceData)
			assert.Len(t, bank.Bundle.VoiceData, tt.wantLen)
			assert.Equal(t, tt.wantData, string(bank.Bundle.VoiceData))
		})
	}
}

func TestNew_DictionaryConcatenation(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		"frf.dca":                    []byte("Dict1"),
		"frf_accent_restoration.dca": []byte("Dict2"),
	})

	bank, err := New(dir, "frf")
	require.NoError(t, err)

	// Declared order, no separator, no dedup
	assert.Equal(t, []byte("Dict1Dict2"), bank.Bundle.Dictionary)
	assert.Len(t, bank.Bundle.Dictionary, 10)
}

func TestNew_EmptyDictionaryFileIsPresentNotAbsent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		"frf.dca": {},
	})

	bank, err := New(dir, "frf")
	require.NoError(t, err)

	// Zero-length but present: not the same as "no dictionary file"
	assert.NotNil(t, bank.Bundle.Dictionary)
	assert.Empty(t, bank.Bundle.Dictionary)
}

func TestNew_UserDictionaryOnly(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		"user.userdico": []byte("test=test"),
	})

	bank, err := New(dir, "frf")
	require.NoError(t, err)

	assert.Equal(t, "test=test", bank.Bundle.Configuration[UserDictionaryKey])
	assert.Nil(t, bank.Bundle.VoiceData)
	assert.Nil(t, bank.Bundle.Dictionary)
	assert.Nil(t, bank.Bundle.Linguistic)
	assert.Len(t, bank.Bundle.Configuration, 1)
}

func TestNew_UnrecognizedFilesAreIgnored(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		"frf.bnx":    []byte("voice"),
		"readme.txt": []byte("not a voice file"),
		"enu.bnx":    []byte("wrong stem"),
	})

	bank, err := New(dir, "frf")
	require.NoError(t, err)

	assert.Equal(t, []string{"frf.bnx"}, bank.Inventory.Names())
	assert.Equal(t, []byte("voice"), bank.Bundle.VoiceData)
}

func TestNew_Idempotent(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		"frf.bvcu":      []byte("Standard BVCU"),
		"frf_hd.bvcu":   []byte("High definition BVCU voice data"),
		"frf.dca":       []byte("Dict1"),
		"frf.ldi":       []byte("linguistic"),
		"user.userdico": []byte("a=b"),
	})

	first, err := New(dir, "frf")
	require.NoError(t, err)

	for i := 0; i < 300; i++ {
		bank, err := New(dir, "frf")
		require.NoError(t, err)

		require.Equal(t, first.Inventory, bank.Inventory, "iteration %d", i)
		require.Equal(t, first.Bundle, bank.Bundle, "iteration %d", i)
	}
}

func TestNew_UnreadableCandidateIsSkippedWithWarning(t *testing.T) {
	if os.Geteuid() == 0 {
		t.Skip("permission bits are ignored when running as root")
	}

	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		"frf.bnx": []byte("readable voice"),
		"frf.dca": []byte("dict"),
	})
	require.NoError(t, os.Chmod(filepath.Join(dir, "frf.dca"), 0o000))

	bank, err := New(dir, "frf")
	require.NoError(t, err)

	// The unreadable dictionary is treated as absent, not fatal
	assert.Equal(t, []byte("readable voice"), bank.Bundle.VoiceData)
	assert.Nil(t, bank.Bundle.Dictionary)
	assert.NotEmpty(t, bank.Warnings)
}

func TestMissing(t *testing.T) {
	dir := t.TempDir()
	writeFiles(t, dir, map[string][]byte{
		"frf.bnx":       []byte("voice"),
		"user.userdico": []byte("a=b"),
	})

	bank, err := New(dir, "frf")
	require.NoError(t, err)

	missing := Missing("frf", bank.Inventory)
	assert.Len(t, missing, len(Candidates("frf"))-2)
	assert.NotContains(t, missing, "frf.bnx")
	assert.NotContains(t, missing, "user.userdico")
	assert.Contains(t, missing, "frf_hd.bnx")
}
