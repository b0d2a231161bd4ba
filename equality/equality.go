package equality

import "reflect"

// Func reports whether a and b should be treated as the same value.
type Func func(a, b any) bool

// Identical is reference equality that is safe on every Go value, including
// ones that would make == panic. Maps, channels and pointers compare by
// pointer, slices by data pointer and length, everything else comparable by
// ==. Values of mismatched or uncomparable types are never identical.
func Identical(a, b any) bool {
	if a == nil || b == nil {
		return a == nil && b == nil
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Map, reflect.Chan, reflect.Ptr, reflect.UnsafePointer:
		return av.Pointer() == bv.Pointer()
	case reflect.Slice:
		return av.Pointer() == bv.Pointer() && av.Len() == bv.Len()
	case reflect.Func:
		// Two closures made from the same literal share a code pointer, so
		// this can report true for distinct closures. There is no stronger
		// identity signal for functions without reaching for unsafe.
		return av.Pointer() == bv.Pointer()
	}
	if !av.Type().Comparable() {
		return false
	}
	return a == b
}

// Shallow compares one structural level with Identical leaves: maps must hold
// identical values under the same keys, slices and arrays identical elements,
// structs identical exported fields. Anything deeper only counts as equal
// when it is the same reference.
func Shallow(a, b any) bool {
	if Identical(a, b) {
		return true
	}
	if a == nil || b == nil {
		return false
	}
	av := reflect.ValueOf(a)
	bv := reflect.ValueOf(b)
	if av.Type() != bv.Type() {
		return false
	}
	switch av.Kind() {
	case reflect.Map:
		if av.Len() != bv.Len() {
			return false
		}
		iter := av.MapRange()
		for iter.Next() {
			other := bv.MapIndex(iter.Key())
			if !other.IsValid() {
				return false
			}
			if !Identical(iter.Value().Interface(), other.Interface()) {
				return false
			}
		}
		return true
	case reflect.Slice, reflect.Array:
		if av.Len() != bv.Len() {
			return false
		}
		for i := 0; i < av.Len(); i++ {
			if !Identical(av.Index(i).Interface(), bv.Index(i).Interface()) {
				return false
			}
		}
		return true
	case reflect.Ptr:
		if av.IsNil() || bv.IsNil() {
			return false
		}
		if av.Elem().Kind() != reflect.Struct {
			return false
		}
		return shallowStruct(av.Elem(), bv.Elem())
	case reflect.Struct:
		return shallowStruct(av, bv)
	}
	return false
}

func shallowStruct(av, bv reflect.Value) bool {
	t := av.Type()
	for i := 0; i < t.NumField(); i++ {
		if !t.Field(i).IsExported() {
			continue
		}
		if !Identical(av.Field(i).Interface(), bv.Field(i).Interface()) {
			return false
		}
	}
	return true
}

// Deep is reflect.DeepEqual, structural comparison all the way down.
func Deep(a, b any) bool {
	return reflect.DeepEqual(a, b)
}
