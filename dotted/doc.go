// Package dotted converts between nested map[string]any structures and
// single-level maps whose keys are separator-joined paths.
//
// # Flatten and Unflatten
//
// Flatten walks a nested map depth-first and emits one entry per leaf,
// joining the key path with the separator (default "."):
//
//	m := map[string]any{
//	    "a": map[string]any{
//	        "b": 1,
//	        "c": map[string]any{"d": 2},
//	    },
//	}
//	dotted.Flatten(m) // → map[string]any{"a.b": 1, "a.c.d": 2}
//
// Only map[string]any values are descended into; slices, sets, structs,
// and scalars are leaves. Unflatten is the inverse: it splits each key on
// the separator and rebuilds the nesting. The two functions round-trip as
// long as no original key contains the separator:
//
//	dotted.Unflatten(dotted.Flatten(m)) // equal to m
//
// Use WithSeparator to change the join string and WithPrefix to prepend a
// parent key to every flattened entry.
//
// # Documents
//
// FlattenYAML and FlattenJSON parse a raw document and flatten the result
// in one step, which is convenient for turning configuration files into
// lookup tables:
//
//	flat, err := dotted.FlattenYAML(data)
//	flat["database.pool.size"]
//
// # Caveats
//
// Go maps have no iteration order, so neither does the flattened result.
// An empty nested map produces no entries and therefore does not survive
// a Flatten/Unflatten round trip. When two flat keys expand to the same
// nested path, the last one processed wins.
//
// Empty keys collapse: an empty accumulated prefix is treated as "top
// level", so a nesting level reached through an empty key is lost
// ({"": {"x": 1}} flattens to {"x": 1}). Such a key can also collide
// with a sibling leaf ({"": {"x": 1}, "x": 2} yields "x" twice, one
// entry overwriting the other), breaking the one-entry-per-leaf
// property. The round-trip law therefore also requires non-empty keys.
package dotted
