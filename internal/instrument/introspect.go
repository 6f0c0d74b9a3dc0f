package instrument

import (
	"reflect"
)

// Introspectable lets a value report its own structural counts instead of
// being examined through reflection.
type Introspectable interface {
	FieldCount() int
	MethodCount() int
}

// Introspect derives the structural metrics for v: declared field and
// method counts for structs, element count for maps, slices and arrays,
// nothing for scalars. Pointers are followed one level so *T reports like
// T. A value implementing Introspectable reports through it and skips
// reflection entirely.
func Introspect(v any) (properties, methods, count *float64) {
	if v == nil {
		return nil, nil, nil
	}

	if in, ok := v.(Introspectable); ok {
		return Float(float64(in.FieldCount())), Float(float64(in.MethodCount())), nil
	}

	elem := reflect.TypeOf(v)
	if elem.Kind() == reflect.Ptr {
		elem = elem.Elem()
	}

	switch elem.Kind() {
	case reflect.Struct:
		// Pointer-receiver methods only show up on the pointer type.
		return Float(float64(elem.NumField())),
			Float(float64(reflect.PtrTo(elem).NumMethod())),
			nil

	case reflect.Map, reflect.Slice, reflect.Array:
		val := reflect.ValueOf(v)
		if val.Kind() == reflect.Ptr {
			if val.IsNil() {
				return nil, nil, nil
			}
			val = val.Elem()
		}
		return nil, nil, Float(float64(val.Len()))

	default:
		return nil, nil, nil
	}
}
