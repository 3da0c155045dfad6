package utils

import "reflect"

// IsNilOrEmpty reports whether v is nil, a nil pointer, or a zero-length
// string, slice, map, array or channel.
func IsNilOrEmpty(v interface{}) bool {

	if v == nil {
		return true
	}
	value := reflect.ValueOf(v)
	switch value.Kind() {
	case reflect.String, reflect.Slice, reflect.Map, reflect.Array, reflect.Chan:
		return value.Len() == 0
	case reflect.Ptr, reflect.Interface:
		return value.IsNil()
	}
	return false
}
