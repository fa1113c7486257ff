package voicebank

// Role is the semantic category a recognized resource file name maps to.
type Role int

const (
	RoleVoiceData Role = iota
	RoleDictionary
	RoleLinguistic
	RoleUserDictionary
	RoleOpaqueConfig
	RoleUnrecognized
)

func (r Role) String() string {
	switch r {
	case RoleVoiceData:
		return "voice-data"
	case RoleDictionary:
		return "dictionary"
	case RoleLinguistic:
		return "linguistic"
	case RoleUserDictionary:
		return "user-dictionary"
	case RoleOpaqueConfig:
		return "opaque-config"
	default:
		return "unrecognized"
	}
}

// UserDictionaryKey is the configuration key the decoded user dictionary
// is stored under in the resolved bundle.
const UserDictionaryKey = "user_dictionary"

// DefaultStem is the historical file-name prefix of the French voice set.
const DefaultStem = "frf"

// Candidate is one row of the resource-name table: an exact file name and
// the role its bytes play. Rows never overlap; a name belongs to exactly
// one row.
type Candidate struct {
	Name string
	Role Role
}

// Candidates returns the candidate table for a stem, in declaration order.
// Declaration order is load-bearing: it is the tie-break between equally
// sized voice-data files and the concatenation order of dictionaries, so
// it must stay stable.
//
// Voice-data rows come first because the largest of them wins selection;
// size standing in for fidelity (the "_hd" variants ship more data) is a
// heuristic carried over from the original voice sets, not a property of
// the formats themselves.
func Candidates(stem string) []Candidate {
	if stem == "" {
		stem = DefaultStem
	}
	return []Candidate{
		{Name: stem + ".bnx", Role: RoleVoiceData},
		{Name: stem + "_hd.bnx", Role: RoleVoiceData},
		{Name: stem + ".bvcu", Role: RoleVoiceData},
		{Name: stem + "_hd.bvcu", Role: RoleVoiceData},
		{Name: stem + ".dca", Role: RoleDictionary},
		{Name: stem + "_accent_restoration.dca", Role: RoleDictionary},
		{Name: stem + ".ldi", Role: RoleLinguistic},
		{Name: stem + ".oso", Role: RoleOpaqueConfig},
		{Name: stem + ".trz", Role: RoleOpaqueConfig},
		{Name: stem + "_iv.trz.gra", Role: RoleOpaqueConfig},
		{Name: stem + "_oov.trz.gra", Role: RoleOpaqueConfig},
		{Name: "user.userdico", Role: RoleUserDictionary},
	}
}

// Classify maps a file name to its role for a given stem. Names outside
// the candidate table are RoleUnrecognized and excluded from resolution.
func Classify(stem, name string) Role {
	for _, c := range Candidates(stem) {
		if c.Name == name {
			return c.Role
		}
	}
	return RoleUnrecognized
}
