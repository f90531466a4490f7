// Package deep implements path-based access to heterogeneous nested
// structures: mappings, sequences, sets, tuples, and plain structs.
//
// A path is a variadic sequence of string segments. Each segment is
// resolved against the kind of node it lands on:
//
//   - map[string]any — looked up by key
//   - []any (or *[]any at the root) — the segment is parsed as a
//     non-negative integer index; sequences can grow when the operation
//     creates missing entries
//   - map[string]struct{} — a set; elements are materialized in sorted
//     order and addressed by position, read-only
//   - other arrays and slices — tuples, addressed by position, read-only
//   - anything else — an object; structs and pointers to structs expose
//     their exported fields as attributes
//
//	root := map[string]any{
//	    "users": []any{
//	        map[string]any{"name": "Alice"},
//	    },
//	}
//	deep.Get(root, "users", "0", "name")        // "Alice", nil
//	deep.Set(root, "Bob", "users", "1", "name") // grows the sequence
//	deep.Delete(root, "users", "0", "name")
//
// # Creation and partial mutation
//
// Set, SetDefault, and SetDefaultPad create intermediate containers on
// the way to the final segment: absent mapping keys are bound to fresh
// empty mappings, and short sequences are grown with empty mappings up
// to the requested index. Creation happens eagerly during the walk and
// is never rolled back — if an operation fails partway, containers
// already created stay in place.
//
// Writing into a struct requires a pointer to it; a value struct would
// only ever receive the write on a copy, so it is rejected with
// ErrUnsupported. Deleting a struct field clears it to its zero value,
// since Go has no attribute removal.
//
// # Errors
//
// All failures are *PathError values carrying the operation, the
// offending segment, and the container kind, and unwrap to the package
// sentinels (ErrKeyNotFound, ErrIndexOutOfRange, ErrInvalidIndex,
// ErrUnsupported, ErrUnassignable) for errors.Is checks.
package deep
