package dotted

import "strings"

// Flatten flattens a nested map[string]any into a single-level map using
// separator-joined keys.
//
//	Flatten(map[string]any{"a": map[string]any{"b": 1}})
//	// → map[string]any{"a.b": 1}
//
// Only map[string]any values are descended into; everything else is kept
// as a leaf. With WithPrefix the prefix is prepended to every key; the
// default empty prefix omits the leading separator.
func Flatten(m map[string]any, opts ...Option) map[string]any {
	o := newOptions(opts)
	out := make(map[string]any)
	flattenInto(o.prefix, m, o.separator, out)
	return out
}

func flattenInto(prefix string, m map[string]any, sep string, out map[string]any) {
	for k, v := range m {
		key := k
		if prefix != "" {
			key = prefix + sep + k
		}
		if nested, ok := v.(map[string]any); ok {
			flattenInto(key, nested, sep, out)
		} else {
			out[key] = v
		}
	}
}

// Unflatten expands a flat separator-keyed map into a nested map.
//
//	Unflatten(map[string]any{"a.b": 1, "a.c": 2})
//	// → map[string]any{"a": map[string]any{"b": 1, "c": 2}}
//
// Entries are processed in the input map's iteration order. When two keys
// expand to the same nested path the last write wins, and an intermediate
// segment already bound to a non-map value is replaced with a fresh map.
// WithPrefix has no effect here.
func Unflatten(flat map[string]any, opts ...Option) map[string]any {
	o := newOptions(opts)
	out := make(map[string]any)
	for key, val := range flat {
		segs := strings.Split(key, o.separator)
		curr := out
		for _, seg := range segs[:len(segs)-1] {
			next, ok := curr[seg].(map[string]any)
			if !ok {
				next = make(map[string]any)
				curr[seg] = next
			}
			curr = next
		}
		curr[segs[len(segs)-1]] = val
	}
	return out
}
