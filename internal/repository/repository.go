package repository

import "encoding/json"

// Serialized jsonb fields (skills, sections, suggestions) are display data
// reconstructible from a re-analysis. Decode failures therefore degrade to
// empty values instead of failing the read; this is the one deliberate
// swallow-and-default path in the repositories.

func decodeStringList(raw []byte) []string {
	if len(raw) == 0 {
		return []string{}
	}
	var out []string
	if err := json.Unmarshal(raw, &out); err != nil {
		return []string{}
	}
	if out == nil {
		return []string{}
	}
	return out
}

func decodeBoolMap(raw []byte) map[string]bool {
	if len(raw) == 0 {
		return map[string]bool{}
	}
	var out map[string]bool
	if err := json.Unmarshal(raw, &out); err != nil {
		return map[string]bool{}
	}
	if out == nil {
		return map[string]bool{}
	}
	return out
}

func encodeJSON(v any) []byte {
	b, err := json.Marshal(v)
	if err != nil {
		return []byte("null")
	}
	return b
}
