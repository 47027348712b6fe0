package model

import "dto2zod/internal/common"

// DedupFields drops fields whose emission key was already seen. The first
// occurrence wins and order is kept.
func DedupFields(fields []Field) []Field {
	if common.IsEmpty(fields) {
		return fields
	}

	seen := make(map[string]struct{}, len(fields))
	out := make([]Field, 0, len(fields))

	for _, f := range fields {
		key := f.Key()
		if _, dup := seen[key]; dup {
			continue
		}

		seen[key] = struct{}{}
		out = append(out, f)
	}

	return out
}

// Coalesce merges classes that share a name into the first occurrence.
// Fields are merged by emission key with first-seen winning.
func Coalesce(classes []Class) []Class {
	index := make(map[string]int, len(classes))
	out := make([]Class, 0, len(classes))

	for _, c := range classes {
		i, ok := index[c.Name]
		if !ok {
			index[c.Name] = len(out)
			out = append(out, Class{Name: c.Name, Fields: DedupFields(c.Fields)})

			continue
		}

		merged := append(append([]Field(nil), out[i].Fields...), c.Fields...)
		out[i].Fields = DedupFields(merged)
	}

	return out
}
