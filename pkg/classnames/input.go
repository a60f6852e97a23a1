package classnames

import (
	"fmt"
	"reflect"
	"strings"
)

// MaxDepth bounds how deeply nested lists are flattened. Anything nested
// deeper contributes no classes.
const MaxDepth = 32

// Input is one argument to Cn. It is a closed union: Text, List and Omitted
// are its only variants.
type Input interface {
	appendTokens(dst []string, w *walk) []string
}

type text string

type list []Input

type omitted struct{}

// Omitted contributes no classes.
var Omitted Input = omitted{}

// Text wraps a string of whitespace separated class names.
func Text(classes string) Input {
	return text(classes)
}

// List groups inputs so they can be passed around as one value.
func List(inputs ...Input) Input {
	return list(inputs)
}

// When returns Text(value) if condition holds and Omitted otherwise.
func When(condition bool, value string) Input {
	if !condition {
		return Omitted
	}
	return text(value)
}

// walk tracks the slices and pointers being expanded on the current path.
// A value that contains itself is skipped the second time it is reached.
type walk struct {
	depth  int
	active map[walkKey]struct{}
}

type walkKey struct {
	ptr uintptr
	len int
}

func (w *walk) enter(rv reflect.Value) (walkKey, bool) {
	if w.depth >= MaxDepth {
		return walkKey{}, false
	}
	var key walkKey
	switch rv.Kind() {
	case reflect.Slice:
		key = walkKey{ptr: rv.Pointer(), len: rv.Len()}
	case reflect.Pointer:
		key = walkKey{ptr: rv.Pointer(), len: -1}
	}
	if key.ptr != 0 {
		if _, seen := w.active[key]; seen {
			return walkKey{}, false
		}
		if w.active == nil {
			w.active = make(map[walkKey]struct{})
		}
		w.active[key] = struct{}{}
	}
	w.depth++
	return key, true
}

func (w *walk) leave(key walkKey) {
	w.depth--
	if key.ptr != 0 {
		delete(w.active, key)
	}
}

func (t text) appendTokens(dst []string, _ *walk) []string {
	return append(dst, strings.Fields(string(t))...)
}

func (l list) appendTokens(dst []string, w *walk) []string {
	key, ok := w.enter(reflect.ValueOf(l))
	if !ok {
		return dst
	}
	defer w.leave(key)

	for _, in := range l {
		if in == nil {
			continue
		}
		dst = in.appendTokens(dst, w)
	}
	return dst
}

func (omitted) appendTokens(dst []string, _ *walk) []string {
	return dst
}

// scalar holds the string form of a value that is neither text nor a list.
// It is appended whole rather than split on whitespace.
type scalar string

func (s scalar) appendTokens(dst []string, _ *walk) []string {
	if strings.TrimSpace(string(s)) == "" {
		return dst
	}
	return append(dst, string(s))
}

// From converts a dynamically typed value into an Input. Strings and byte
// slices become Text, nil and booleans become Omitted, slices and arrays
// become Lists in element order, and anything else is converted with its
// string form. A slice reached again through its own elements is omitted.
func From(v any) Input {
	return from(v, &walk{})
}

func from(v any, w *walk) Input {
	switch val := v.(type) {
	case nil:
		return Omitted
	case Input:
		return val
	case string:
		return text(val)
	case bool:
		return Omitted
	case []byte:
		return text(val)
	case []string:
		out := make(list, len(val))
		for i, s := range val {
			out[i] = text(s)
		}
		return out
	case []Input:
		return list(val)
	case fmt.Stringer:
		if isNilPointer(reflect.ValueOf(val)) {
			return Omitted
		}
		return scalar(val.String())
	}

	rv := reflect.ValueOf(v)
	switch rv.Kind() {
	case reflect.Pointer:
		if rv.IsNil() {
			return Omitted
		}
		key, ok := w.enter(rv)
		if !ok {
			return Omitted
		}
		defer w.leave(key)
		return from(rv.Elem().Interface(), w)
	case reflect.Slice, reflect.Array:
		if rv.Kind() == reflect.Slice && rv.IsNil() {
			return Omitted
		}
		if rv.Kind() == reflect.Slice && rv.Type().Elem().Kind() == reflect.Uint8 {
			return text(rv.Bytes())
		}
		key, ok := w.enter(rv)
		if !ok {
			return Omitted
		}
		defer w.leave(key)

		out := make(list, rv.Len())
		for i := range out {
			out[i] = from(rv.Index(i).Interface(), w)
		}
		return out
	case reflect.String:
		return text(rv.String())
	case reflect.Bool:
		return Omitted
	}

	return scalar(fmt.Sprint(v))
}

func isNilPointer(rv reflect.Value) bool {
	return rv.Kind() == reflect.Pointer && rv.IsNil()
}
