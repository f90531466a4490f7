package dotted_test

import (
	"reflect"
	"strings"
	"testing"

	"github.com/hasbyte1/go-nested-utils/dotted"
)

// FuzzRoundTrip exercises the round-trip law: for any nested map whose
// keys are non-empty and contain no separator, Unflatten(Flatten(m))
// must equal m.
//
// Run with: go test -fuzz=FuzzRoundTrip ./dotted/
func FuzzRoundTrip(f *testing.F) {
	f.Add("a", "b", "c", 1)
	f.Add("user", "address", "city", 42)
	f.Add("k", "k", "k", -7)

	f.Fuzz(func(t *testing.T, k1, k2, k3 string, v int) {
		for _, k := range []string{k1, k2, k3} {
			if k == "" || strings.Contains(k, ".") {
				t.Skip("empty keys and separators inside keys break the round-trip law by design")
			}
		}
		m := map[string]any{
			k1: map[string]any{
				k2: map[string]any{k3: v},
			},
		}
		got := dotted.Unflatten(dotted.Flatten(m))
		if !reflect.DeepEqual(got, m) {
			t.Fatalf("round trip mismatch: got %#v, want %#v", got, m)
		}
	})
}
