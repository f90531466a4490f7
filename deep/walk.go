package deep

import (
	"reflect"
	"sort"
	"strconv"
)

// Kind identifies the container category a path segment is resolved
// against. It is carried by [PathError] so callers can tell what kind of
// node a failed step encountered.
type Kind int

const (
	// KindObject covers everything that is not one of the containers
	// below. Structs and pointers to structs expose their exported fields
	// as attributes; any other value has no attributes at all.
	KindObject Kind = iota

	// KindMapping is a map[string]any, addressed by key.
	KindMapping

	// KindSequence is a []any (or *[]any at the root), addressed by a
	// non-negative integer index and growable when the operation allows.
	KindSequence

	// KindSet is a map[string]struct{}. Its elements are materialized in
	// sorted order and addressed by position; sets never grow.
	KindSet

	// KindTuple is any other array or slice type, addressed by position
	// but read-only.
	KindTuple
)

func (k Kind) String() string {
	switch k {
	case KindMapping:
		return "mapping"
	case KindSequence:
		return "sequence"
	case KindSet:
		return "set"
	case KindTuple:
		return "tuple"
	default:
		return "object"
	}
}

// kindOf resolves the container category of node once per traversal step.
func kindOf(node any) Kind {
	switch node.(type) {
	case map[string]any:
		return KindMapping
	case []any, *[]any:
		return KindSequence
	case map[string]struct{}:
		return KindSet
	}
	switch reflect.ValueOf(node).Kind() {
	case reflect.Array, reflect.Slice:
		return KindTuple
	}
	return KindObject
}

// slot addresses the location a node was read from, so a sequence grown
// during the walk can have its new header written back over the old one.
// A zero slot (root node) cannot store.
type slot struct {
	parent any // map[string]any or []any; nil for the root
	key    string
	index  int
}

func (s slot) store(v any) bool {
	switch p := s.parent.(type) {
	case map[string]any:
		p[s.key] = v
		return true
	case []any:
		p[s.index] = v
		return true
	}
	return false
}

// sequenceOf unwraps a sequence node into its slice and, for a *[]any
// root, the pointer to write a grown header back through.
func sequenceOf(node any) ([]any, *[]any) {
	if p, ok := node.(*[]any); ok {
		if p == nil {
			return nil, nil
		}
		return *p, p
	}
	return node.([]any), nil
}

// storeSequence writes a new slice header back to where the sequence
// lives: through the root pointer if there is one, otherwise into the
// parent slot. A bare []any root has neither and cannot grow or shrink.
func storeSequence(s []any, ptr *[]any, at slot) bool {
	if ptr != nil {
		*ptr = s
		return true
	}
	return at.store(s)
}

// grow extends s with fill values up to and including index upto.
func grow(s []any, upto int, fill func() any) []any {
	for len(s) <= upto {
		s = append(s, fill())
	}
	return s
}

func emptyMap() any { return map[string]any{} }
func nilValue() any { return nil }

// parseIndex converts a path segment into a sequence index. Non-integer
// segments report ErrInvalidIndex; negative indices are out of range.
func parseIndex(seg string) (int, error) {
	idx, err := strconv.Atoi(seg)
	if err != nil {
		return 0, ErrInvalidIndex
	}
	if idx < 0 {
		return 0, ErrIndexOutOfRange
	}
	return idx, nil
}

// setElems materializes a set's elements in sorted order so positional
// access is deterministic.
func setElems(set map[string]struct{}) []string {
	elems := make([]string, 0, len(set))
	for e := range set {
		elems = append(elems, e)
	}
	sort.Strings(elems)
	return elems
}

// walk steps through segs starting at root and returns the final node
// together with the slot it was read from. With createMissing, absent
// mapping keys are bound to fresh empty mappings and short sequences are
// grown with empty mappings up to the requested index; anything created
// this way stays in place even if a later step fails.
func walk(op string, root any, segs []string, createMissing bool) (any, slot, error) {
	curr := root
	at := slot{}
	for _, seg := range segs {
		next, nextAt, err := step(op, curr, at, seg, createMissing)
		if err != nil {
			return nil, slot{}, err
		}
		curr, at = next, nextAt
	}
	return curr, at, nil
}

// step resolves one path segment against the current node.
func step(op string, node any, at slot, seg string, createMissing bool) (any, slot, error) {
	switch kindOf(node) {
	case KindMapping:
		m := node.(map[string]any)
		v, ok := m[seg]
		if !ok {
			if !createMissing {
				return nil, slot{}, newPathError(op, seg, KindMapping, ErrKeyNotFound)
			}
			child := map[string]any{}
			m[seg] = child
			v = child
		}
		return v, slot{parent: m, key: seg}, nil

	case KindSequence:
		s, ptr := sequenceOf(node)
		idx, perr := parseIndex(seg)
		if perr != nil {
			return nil, slot{}, newPathError(op, seg, KindSequence, perr)
		}
		if idx >= len(s) {
			if !createMissing {
				return nil, slot{}, newPathError(op, seg, KindSequence, ErrIndexOutOfRange)
			}
			grown := grow(s, idx, emptyMap)
			if !storeSequence(grown, ptr, at) {
				return nil, slot{}, newPathError(op, seg, KindSequence, ErrUnsupported)
			}
			s = grown
		}
		return s[idx], slot{parent: s, index: idx}, nil

	case KindSet:
		set := node.(map[string]struct{})
		idx, perr := parseIndex(seg)
		if perr != nil {
			return nil, slot{}, newPathError(op, seg, KindSet, perr)
		}
		elems := setElems(set)
		if idx >= len(elems) {
			return nil, slot{}, newPathError(op, seg, KindSet, ErrIndexOutOfRange)
		}
		return elems[idx], slot{}, nil

	case KindTuple:
		rv := reflect.ValueOf(node)
		idx, perr := parseIndex(seg)
		if perr != nil {
			return nil, slot{}, newPathError(op, seg, KindTuple, perr)
		}
		if idx >= rv.Len() {
			return nil, slot{}, newPathError(op, seg, KindTuple, ErrIndexOutOfRange)
		}
		return rv.Index(idx).Interface(), slot{}, nil

	default: // KindObject
		rv := reflect.ValueOf(node)
		for rv.Kind() == reflect.Pointer {
			if rv.IsNil() {
				return nil, slot{}, newPathError(op, seg, KindObject, ErrKeyNotFound)
			}
			rv = rv.Elem()
		}
		if rv.Kind() != reflect.Struct {
			return nil, slot{}, newPathError(op, seg, KindObject, ErrKeyNotFound)
		}
		sf, ok := rv.Type().FieldByName(seg)
		if !ok || !sf.IsExported() {
			return nil, slot{}, newPathError(op, seg, KindObject, ErrKeyNotFound)
		}
		return rv.FieldByIndex(sf.Index).Interface(), slot{}, nil
	}
}
