package connect

import (
	"fmt"
	"reflect"

	"github.com/delaneyj/storeparty/diag"
)

// Flagged pairs a mapper with an explicit own props dependency flag. The flag
// always wins over arity inference, which cannot tell a mapper that ignores
// its second parameter from one that needs it.
type Flagged struct {
	Fn                any
	DependsOnOwnProps bool
}

// adapter wraps one user supplied mapping function. It starts unresolved: the
// first invocation may discover that the function is a factory returning the
// real mapper, in which case the adapter swaps the resolved mapper in and
// re-invokes it. That transition happens at most once, afterwards every call
// goes straight through.
type adapter[I any] struct {
	invoke   func(I, Props) any
	depends  bool
	resolved bool
	constant bool
	method   string
	name     string
	reporter *diag.Reporter
}

// newAdapter normalizes raw into a callable mapper. nil raw means a constant
// empty props mapper. method names the mapper in diagnostics, say
// "state mapping".
func newAdapter[I any](raw any, method, name string, reporter *diag.Reporter) (*adapter[I], error) {
	a := &adapter[I]{
		method:   method,
		name:     name,
		reporter: reporter,
	}
	if raw == nil {
		a.invoke = func(I, Props) any { return Props{} }
		a.resolved = true
		a.constant = true
		return a, nil
	}
	invoke, depends, err := normalize[I](raw)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", method, err)
	}
	a.invoke = invoke
	a.depends = depends
	return a, nil
}

// props runs the mapper. On the very first call a function result resolves
// the factory: the adapter re-normalizes around the returned mapper and
// invokes it for the actual props, so the caller sees two underlying calls on
// that first invocation and one on every later invocation.
func (a *adapter[I]) props(in I, own Props) (Props, error) {
	result := a.invoke(in, own)
	if !a.resolved {
		if isFunc(result) {
			invoke, depends, err := normalize[I](result)
			if err != nil {
				return nil, fmt.Errorf("%s factory result: %w", a.method, err)
			}
			a.invoke = invoke
			a.depends = depends
			a.resolved = true
			result = a.invoke(in, own)
		} else {
			a.resolved = true
		}
	}
	return a.coerce(result), nil
}

// coerce turns a mapper result into Props. String keyed maps convert, for
// anything else the shape warning fires and the consumer continues with empty
// props, since a typed Go pipeline has nowhere to carry a malformed value.
func (a *adapter[I]) coerce(result any) Props {
	switch v := result.(type) {
	case nil:
		a.warnShape(result)
		return Props{}
	case Props:
		if v == nil {
			return Props{}
		}
		return v
	case map[string]any:
		if v == nil {
			return Props{}
		}
		return Props(v)
	}
	rv := reflect.ValueOf(result)
	if rv.Kind() == reflect.Map && rv.Type().Key().Kind() == reflect.String {
		props := make(Props, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			props[iter.Key().String()] = iter.Value().Interface()
		}
		return props
	}
	a.warnShape(result)
	return Props{}
}

func (a *adapter[I]) warnShape(result any) {
	if !a.reporter.Enabled() {
		return
	}
	msg := a.method + " must return a plain key-value map"
	if a.name != "" {
		msg = a.name + ": " + msg
	}
	a.reporter.Warn(msg, "got", fmt.Sprintf("%T", result))
}

func isFunc(v any) bool {
	return v != nil && reflect.TypeOf(v).Kind() == reflect.Func
}

// normalize turns the accepted mapper shapes into one calling convention and
// reports whether the mapper depends on own props. Typed shapes are matched
// first, anything else goes through reflection.
func normalize[I any](raw any) (func(I, Props) any, bool, error) {
	// a typed nil function would pass every shape check below and explode
	// at call time instead of construction time
	if raw == nil {
		return nil, false, ErrUnusableMapper
	}
	if v := reflect.ValueOf(raw); v.Kind() == reflect.Func && v.IsNil() {
		return nil, false, ErrUnusableMapper
	}
	switch fn := raw.(type) {
	case Flagged:
		invoke, _, err := normalize[I](fn.Fn)
		if err != nil {
			return nil, false, err
		}
		return invoke, fn.DependsOnOwnProps, nil
	case func(I) Props:
		return func(in I, _ Props) any { return fn(in) }, false, nil
	case func(I, Props) Props:
		return func(in I, own Props) any { return fn(in, own) }, true, nil
	case func(I) any:
		return func(in I, _ Props) any { return fn(in) }, false, nil
	case func(I, Props) any:
		return func(in I, own Props) any { return fn(in, own) }, true, nil
	}
	return normalizeReflect[I](raw)
}

// normalizeReflect accepts any function whose first parameter can take the
// mapping input. Exactly one declared parameter means the mapper cannot see
// own props, anything else, variadic included, is treated as depending on
// them.
func normalizeReflect[I any](raw any) (func(I, Props) any, bool, error) {
	v := reflect.ValueOf(raw)
	t := v.Type()
	if t.Kind() != reflect.Func || t.NumOut() != 1 || t.NumIn() == 0 || t.NumIn() > 2 {
		return nil, false, ErrUnusableMapper
	}

	inType := reflect.TypeOf((*I)(nil)).Elem()
	first := t.In(0)
	if t.IsVariadic() && t.NumIn() == 1 {
		first = first.Elem()
	}
	if !inType.AssignableTo(first) {
		return nil, false, ErrUnusableMapper
	}

	takesProps := false
	if t.NumIn() == 2 && !t.IsVariadic() {
		if !reflect.TypeOf(Props(nil)).AssignableTo(t.In(1)) {
			return nil, false, ErrUnusableMapper
		}
		takesProps = true
	}

	invoke := func(in I, own Props) any {
		inVal := reflect.ValueOf(in)
		if !inVal.IsValid() {
			inVal = reflect.Zero(first)
		}
		args := []reflect.Value{inVal}
		if takesProps {
			args = append(args, reflect.ValueOf(own))
		}
		return v.Call(args)[0].Interface()
	}
	depends := t.NumIn() != 1 || t.IsVariadic()
	return invoke, depends, nil
}
