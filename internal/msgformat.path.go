package internal

import (
	"reflect"
	"strconv"
	"strings"
)

// TagJSON is the struct tag consulted when resolving struct fields
const TagJSON = "json"

// Resolve walks keys left to right starting at record. A missing key, a nil
// or otherwise empty intermediate value, or a value that cannot be indexed
// short-circuits the rest of the walk to Undefined. If the final value is
// Undefined, def is returned; any present value (nil, 0, false, "") is
// returned unchanged.
func Resolve(record any, keys []any, def any) any {
	obj := record
	for _, key := range keys {
		if !isTruthy(obj) {
			obj = Undefined
			continue
		}
		obj = lookup(obj, key)
	}
	if IsUndefined(obj) {
		return def
	}
	return obj
}

// lookup indexes a single container value by key
func lookup(obj any, key any) any {
	name := Stringify(key)

	switch container := obj.(type) {
	case map[string]any:
		if v, ok := container[name]; ok {
			return v
		}
		return Undefined
	case map[string]string:
		if v, ok := container[name]; ok {
			return v
		}
		return Undefined
	case []any:
		if idx, ok := parseIndex(name, len(container)); ok {
			return container[idx]
		}
		return Undefined
	}

	return lookupReflect(reflect.ValueOf(obj), name)
}

// lookupReflect handles typed maps, slices, arrays and structs
func lookupReflect(rv reflect.Value, name string) any {
	for rv.Kind() == reflect.Pointer || rv.Kind() == reflect.Interface {
		if rv.IsNil() {
			return Undefined
		}
		rv = rv.Elem()
	}

	switch rv.Kind() {
	case reflect.Map:
		if rv.Type().Key().Kind() != reflect.String {
			return Undefined
		}
		v := rv.MapIndex(reflect.ValueOf(name).Convert(rv.Type().Key()))
		if !v.IsValid() {
			return Undefined
		}
		return v.Interface()

	case reflect.Slice, reflect.Array:
		if idx, ok := parseIndex(name, rv.Len()); ok {
			return rv.Index(idx).Interface()
		}
		return Undefined

	case reflect.Struct:
		if field, ok := structField(rv, name); ok {
			return field.Interface()
		}
		return Undefined
	}

	return Undefined
}

// structField finds an exported field by name or by json tag
func structField(rv reflect.Value, name string) (reflect.Value, bool) {
	rt := rv.Type()
	for i := 0; i < rt.NumField(); i++ {
		sf := rt.Field(i)
		if !sf.IsExported() {
			continue
		}
		tagName, _, _ := strings.Cut(sf.Tag.Get(TagJSON), StringValueComma)
		if sf.Name == name || (tagName != StringValueEmpty && tagName == name) {
			return rv.Field(i), true
		}
	}
	return reflect.Value{}, false
}

// parseIndex parses a canonical non-negative integer index within bounds
func parseIndex(name string, length int) (int, bool) {
	if !isAllDigits(name) || (len(name) > 1 && name[0] == CharZero) {
		return 0, false
	}
	idx, err := strconv.Atoi(name)
	if err != nil || idx >= length {
		return 0, false
	}
	return idx, true
}
