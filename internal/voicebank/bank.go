package voicebank

import (
	"fmt"
	"os"
	"path/filepath"

	"github.com/dooshek/vocalize/internal/logger"
)

// Bundle is the merged, role-classified view of the recognized files in a
// voices directory. It is built once and never mutated; nil byte fields
// mean "no such file existed", while a zero-length non-nil field means an
// empty file was found.
type Bundle struct {
	// VoiceData is the content of the largest existing voice-data
	// candidate (declaration order breaks size ties).
	VoiceData []byte
	// Dictionary is every existing dictionary candidate concatenated in
	// declaration order, with no separator.
	Dictionary []byte
	// Linguistic is the content of the single linguistic candidate.
	Linguistic []byte
	// Configuration holds the remaining recognized files: opaque config
	// bytes keyed by file name, and the user dictionary decoded as text
	// under UserDictionaryKey.
	Configuration map[string]any
}

// Bank is one completed resolution pass over a voices directory: the scan
// inventory, the merged bundle, and any non-fatal read warnings. All of it
// is inspectable without touching the filesystem again.
type Bank struct {
	Dir       string
	Stem      string
	Inventory Inventory
	Bundle    Bundle
	Warnings  []string
}

// New scans dir for the candidate set of stem and resolves the bundle
// eagerly. The only fatal condition is an invalid or unreadable directory
// (ErrDirectoryUnavailable); a nonexistent directory resolves to an empty
// bank, and a candidate that vanishes or cannot be read between stat and
// read is skipped with a warning.
func New(dir, stem string) (*Bank, error) {
	if stem == "" {
		stem = DefaultStem
	}

	inv, err := scan(dir, stem)
	if err != nil {
		return nil, err
	}

	b := &Bank{
		Dir:       dir,
		Stem:      stem,
		Inventory: inv,
		Bundle:    Bundle{Configuration: map[string]any{}},
	}
	b.resolve()
	return b, nil
}

// NoVoiceData reports whether no voice-data candidate could be loaded.
// Synthesis can still proceed on the engine's default voice in that case.
func (b *Bank) NoVoiceData() bool {
	return b.Bundle.VoiceData == nil
}

func (b *Bank) resolve() {
	var voiceData []byte
	haveDict := false

	for _, e := range b.Inventory {
		data, err := os.ReadFile(filepath.Join(b.Dir, e.Name))
		if err != nil {
			b.warnf("skipping %s: %v", e.Name, err)
			continue
		}

		switch e.Role {
		case RoleVoiceData:
			// Largest payload wins. Strictly-greater keeps the
			// earliest-declared candidate on a size tie.
			if voiceData == nil || len(data) > len(voiceData) {
				voiceData = data
			}
		case RoleDictionary:
			if !haveDict {
				b.Bundle.Dictionary = []byte{}
				haveDict = true
			}
			b.Bundle.Dictionary = append(b.Bundle.Dictionary, data...)
		case RoleLinguistic:
			b.Bundle.Linguistic = data
		case RoleUserDictionary:
			b.Bundle.Configuration[UserDictionaryKey] = string(data)
		case RoleOpaqueConfig:
			b.Bundle.Configuration[e.Name] = data
		}
	}

	b.Bundle.VoiceData = voiceData
}

func (b *Bank) warnf(format string, v ...any) {
	msg := fmt.Sprintf(format, v...)
	b.Warnings = append(b.Warnings, msg)
	logger.Warn(msg)
}
