package catalog

import "regexp"

// datedVariant matches identifiers carrying a pinned snapshot suffix,
// e.g. "qwen-plus-2025-01-25". Group 1 is the base name, group 2 the date.
var datedVariant = regexp.MustCompile(`^(.+)-(\d{4}-\d{2}-\d{2})$`)

// DedupeDatedVariants collapses dated snapshot variants of the same base
// model down to the single most recent snapshot. Undated identifiers pass
// through in their original relative order; ISO dates compare correctly as
// plain strings, so the lexicographically greatest suffix wins. Callers must
// not rely on the position of the surviving dated entries.
func DedupeDatedVariants(defs []ModelDefinition) []ModelDefinition {
	undated := make([]ModelDefinition, 0, len(defs))
	latest := make(map[string]ModelDefinition)
	var bases []string

	for _, def := range defs {
		m := datedVariant.FindStringSubmatch(def.RawID)
		if m == nil {
			undated = append(undated, def)
			continue
		}
		base, date := m[1], m[2]
		best, seen := latest[base]
		if !seen {
			bases = append(bases, base)
			latest[base] = def
			continue
		}
		if bm := datedVariant.FindStringSubmatch(best.RawID); bm != nil && date > bm[2] {
			latest[base] = def
		}
	}

	out := undated
	for _, base := range bases {
		out = append(out, latest[base])
	}
	return out
}
