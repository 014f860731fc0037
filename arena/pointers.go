// File: arena/pointers.go
// Author: momentics <momentics@gmail.com>
// License: Apache-2.0

package arena

import "reflect"

// HasPointers reports whether values of t embed Go pointers the collector
// must trace. Such values may only live in traceable storage; in a raw
// block the collector never sees them and their referents can be
// reclaimed while still referenced.
func HasPointers(t reflect.Type) bool {
	switch t.Kind() {
	case reflect.Bool,
		reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64,
		reflect.Uintptr, reflect.Float32, reflect.Float64,
		reflect.Complex64, reflect.Complex128:
		return false
	case reflect.Array:
		return t.Len() > 0 && HasPointers(t.Elem())
	case reflect.Struct:
		for i := 0; i < t.NumField(); i++ {
			if HasPointers(t.Field(i).Type) {
				return true
			}
		}
		return false
	default:
		// Chan, Func, Interface, Map, Pointer, Slice, String, UnsafePointer.
		return true
	}
}
