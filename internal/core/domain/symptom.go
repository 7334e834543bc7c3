package domain

// SymptomTable maps a canonical symptom label to the synonym substrings
// that indicate the symptom when found anywhere in a record's text.
// The table is static: loaded at process start, never mutated at runtime.
type SymptomTable struct {
	patterns map[string][]string
}

// NewSymptomTable returns the built-in symptom pattern table.
func NewSymptomTable() *SymptomTable {
	return &SymptomTable{
		patterns: map[string][]string{
			"头晕":  {"头晕", "眩晕", "晕厥"},
			"过敏":  {"过敏", "海鲜过敏", "食物过敏"},
			"白细胞": {"白细胞", "WBC"},
		},
	}
}

// Expand returns the synonym substrings for a canonical label. An unknown
// label expands to itself, so a raw keyword is still usable as a pattern.
// Pure lookup; no error cases.
func (t *SymptomTable) Expand(label string) []string {
	patterns, ok := t.patterns[label]
	if !ok {
		return []string{label}
	}
	out := make([]string, len(patterns))
	copy(out, patterns)
	return out
}
