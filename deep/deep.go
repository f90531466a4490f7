package deep

import "reflect"

// Get retrieves the value at path, failing with a [*PathError] wrapping
// [ErrKeyNotFound] (or [ErrIndexOutOfRange] / [ErrInvalidIndex] for
// positional segments) if any segment is absent. An empty path returns
// root itself.
//
//	deep.Get(m, "users", "1", "name")
func Get(root any, path ...string) (any, error) {
	if len(path) == 0 {
		return root, nil
	}
	node, _, err := walk("get", root, path, false)
	return node, err
}

// Set writes value at path, creating intermediate containers as needed:
// absent mapping keys become empty mappings and short sequences are grown
// with empty mappings. At the final segment a mapping key is inserted or
// overwritten, a sequence is padded with nils up to the index and
// written, and a struct field is assigned (the struct must be reachable
// through a pointer).
func Set(root any, value any, path ...string) error {
	const op = "set"
	if len(path) == 0 {
		return ErrEmptyPath
	}
	last := path[len(path)-1]
	node, at, err := walk(op, root, path[:len(path)-1], true)
	if err != nil {
		return err
	}

	switch kindOf(node) {
	case KindMapping:
		node.(map[string]any)[last] = value
		return nil

	case KindSequence:
		s, ptr := sequenceOf(node)
		idx, perr := parseIndex(last)
		if perr != nil {
			return newPathError(op, last, KindSequence, perr)
		}
		if idx >= len(s) {
			grown := grow(s, idx, nilValue)
			if !storeSequence(grown, ptr, at) {
				return newPathError(op, last, KindSequence, ErrUnsupported)
			}
			s = grown
		}
		s[idx] = value
		return nil

	case KindSet:
		return newPathError(op, last, KindSet, ErrUnsupported)

	case KindTuple:
		return newPathError(op, last, KindTuple, ErrUnsupported)

	default:
		f, err := settableField(node, op, last)
		if err != nil {
			return err
		}
		return assign(f, op, last, value)
	}
}

// Delete removes the value at path. The final segment must exist: a
// mapping key is deleted, a sequence element is removed by index with the
// tail shifted down, and a struct field is cleared to its zero value (Go
// has no attribute removal). Ancestors are never created.
func Delete(root any, path ...string) error {
	const op = "delete"
	if len(path) == 0 {
		return ErrEmptyPath
	}
	last := path[len(path)-1]
	node, at, err := walk(op, root, path[:len(path)-1], false)
	if err != nil {
		return err
	}

	switch kindOf(node) {
	case KindMapping:
		m := node.(map[string]any)
		if _, ok := m[last]; !ok {
			return newPathError(op, last, KindMapping, ErrKeyNotFound)
		}
		delete(m, last)
		return nil

	case KindSequence:
		s, ptr := sequenceOf(node)
		idx, perr := parseIndex(last)
		if perr != nil {
			return newPathError(op, last, KindSequence, perr)
		}
		if idx >= len(s) {
			return newPathError(op, last, KindSequence, ErrIndexOutOfRange)
		}
		shrunk := make([]any, 0, len(s)-1)
		shrunk = append(shrunk, s[:idx]...)
		shrunk = append(shrunk, s[idx+1:]...)
		if !storeSequence(shrunk, ptr, at) {
			return newPathError(op, last, KindSequence, ErrUnsupported)
		}
		return nil

	case KindSet:
		return newPathError(op, last, KindSet, ErrUnsupported)

	case KindTuple:
		return newPathError(op, last, KindTuple, ErrUnsupported)

	default:
		f, err := settableField(node, op, last)
		if err != nil {
			return err
		}
		f.Set(reflect.Zero(f.Type()))
		return nil
	}
}

// SetDefault writes value at path only when the final segment is
// structurally absent: a mapping key that is not present, a sequence
// index beyond the current length, or a struct field holding its zero
// value. Presence is never decided by inspecting the stored value, so a
// key or in-range index bound to nil counts as present and is left
// alone. A sequence index beyond the length fails wrapping
// [ErrIndexOutOfRange]; use [SetDefaultPad] to pad instead. Sets reject
// the operation with [ErrUnsupported]. Intermediate containers are
// created like [Set].
func SetDefault(root any, value any, path ...string) error {
	return setDefault(root, value, path, false)
}

// SetDefaultPad is [SetDefault] for sequences that may need to grow: a
// final index beyond the current length extends the sequence with nil
// placeholders before writing.
func SetDefaultPad(root any, value any, path ...string) error {
	return setDefault(root, value, path, true)
}

func setDefault(root any, value any, path []string, pad bool) error {
	const op = "set-default"
	if len(path) == 0 {
		return ErrEmptyPath
	}
	last := path[len(path)-1]
	node, at, err := walk(op, root, path[:len(path)-1], true)
	if err != nil {
		return err
	}

	switch kindOf(node) {
	case KindMapping:
		m := node.(map[string]any)
		if _, ok := m[last]; !ok {
			m[last] = value
		}
		return nil

	case KindSequence:
		s, ptr := sequenceOf(node)
		idx, perr := parseIndex(last)
		if perr != nil {
			return newPathError(op, last, KindSequence, perr)
		}
		if idx < len(s) {
			// In-range slot, including one holding nil: present.
			return nil
		}
		if !pad {
			return newPathError(op, last, KindSequence, ErrIndexOutOfRange)
		}
		grown := grow(s, idx, nilValue)
		grown[idx] = value
		if !storeSequence(grown, ptr, at) {
			return newPathError(op, last, KindSequence, ErrUnsupported)
		}
		return nil

	case KindSet:
		return newPathError(op, last, KindSet, ErrUnsupported)

	case KindTuple:
		return newPathError(op, last, KindTuple, ErrUnsupported)

	default:
		f, err := settableField(node, op, last)
		if err != nil {
			return err
		}
		if !f.IsZero() {
			return nil
		}
		return assign(f, op, last, value)
	}
}

// settableField resolves a named exported field on a pointer-to-struct
// node for writing. Value structs are rejected: without a pointer the
// write would land on a copy.
func settableField(node any, op, seg string) (reflect.Value, error) {
	rv := reflect.ValueOf(node)
	if rv.Kind() != reflect.Pointer || rv.IsNil() || rv.Elem().Kind() != reflect.Struct {
		return reflect.Value{}, newPathError(op, seg, KindObject, ErrUnsupported)
	}
	elem := rv.Elem()
	sf, ok := elem.Type().FieldByName(seg)
	if !ok || !sf.IsExported() {
		return reflect.Value{}, newPathError(op, seg, KindObject, ErrKeyNotFound)
	}
	return elem.FieldByIndex(sf.Index), nil
}

// assign stores value into field f, clearing it when value is nil.
func assign(f reflect.Value, op, seg string, value any) error {
	if value == nil {
		switch f.Kind() {
		case reflect.Pointer, reflect.Map, reflect.Slice, reflect.Interface, reflect.Chan, reflect.Func:
			f.Set(reflect.Zero(f.Type()))
			return nil
		default:
			return newPathError(op, seg, KindObject, ErrUnassignable)
		}
	}
	v := reflect.ValueOf(value)
	if !v.Type().AssignableTo(f.Type()) {
		return newPathError(op, seg, KindObject, ErrUnassignable)
	}
	f.Set(v)
	return nil
}
