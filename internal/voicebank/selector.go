package voicebank

import "strings"

// VoiceDescriptor is one entry of the synthesis engine's voice catalog.
type VoiceDescriptor struct {
	ID   string
	Name string
}

// DefaultLanguage is used when no language code is configured.
const DefaultLanguage = "fr"

// SelectVoice picks the best voice for a language code from an engine
// catalog. An identifier whose final path segment equals the code
// (case-insensitive) always beats a regional variant: requesting "fr"
// against a catalog holding both "roa/fr" and "roa/fr-be" must yield
// "roa/fr". Without an exact match, any identifier whose language segment
// contains the code (or its base language before the region separator)
// is accepted. No match at all returns ok=false and the caller leaves the
// engine's default voice untouched; that is not an error.
func SelectVoice(language string, voices []VoiceDescriptor) (VoiceDescriptor, bool) {
	if language == "" {
		language = DefaultLanguage
	}
	code := strings.ToLower(language)

	for _, v := range voices {
		if languageSegment(v.ID) == code {
			return v, true
		}
	}

	// Regional fallback: "fr" accepts "roa/fr-be"; "fr-be" falls back to
	// anything carrying "fr". Matching is confined to the language prefix
	// of the segment, never the display-name tail of a neural ID.
	normCode := strings.ReplaceAll(code, "_", "-")
	base := code
	if i := strings.IndexAny(base, "-_"); i >= 0 {
		base = base[:i]
	}
	for _, v := range voices {
		prefix := languagePrefix(languageSegment(v.ID))
		if strings.Contains(prefix, normCode) || strings.HasPrefix(prefix, base) {
			return v, true
		}
	}

	return VoiceDescriptor{}, false
}

// languageSegment extracts the language part of a voice identifier: the
// final "/"-separated segment, lowercased. Identifiers without a path
// shape (e.g. neural voice names) are their own segment.
func languageSegment(id string) string {
	seg := id
	if i := strings.LastIndex(seg, "/"); i >= 0 {
		seg = seg[i+1:]
	}
	return strings.ToLower(seg)
}

// languagePrefix keeps the leading language and region tokens of a
// segment and drops anything after them, so the person-name part of an
// identifier like "fr-FR-DeniseNeural" can never match a language code.
// Language and region tokens are at most three characters.
func languagePrefix(seg string) string {
	tokens := strings.FieldsFunc(seg, func(r rune) bool { return r == '-' || r == '_' })
	n := 0
	for _, tok := range tokens {
		if len(tok) > 3 {
			break
		}
		n++
	}
	return strings.Join(tokens[:n], "-")
}
