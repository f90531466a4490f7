package deep

// Clone returns a deep copy of a map[string]any / []any tree. Nested
// mappings, sequences, and string sets are copied; every other value,
// including struct pointers, is shared with the original. Handy for
// testing a mutation against a throwaway copy of the input.
func Clone(root any) any {
	switch v := root.(type) {
	case map[string]any:
		out := make(map[string]any, len(v))
		for k, val := range v {
			out[k] = Clone(val)
		}
		return out
	case []any:
		out := make([]any, len(v))
		for i, val := range v {
			out[i] = Clone(val)
		}
		return out
	case map[string]struct{}:
		out := make(map[string]struct{}, len(v))
		for k := range v {
			out[k] = struct{}{}
		}
		return out
	default:
		return v
	}
}
