package jsonschema

import (
	"reflect"
	"strings"
	"sync"
)

// FieldCache stores parsed field information for a struct type so repeated
// validation of the same struct type skips re-parsing its json tags.
type FieldCache struct {
	Fields []FieldInfo
}

// FieldInfo describes one exported struct field in terms of its JSON name.
type FieldInfo struct {
	Index     int
	JSONName  string
	Omitempty bool
}

var fieldCacheMap sync.Map

// getFieldCache retrieves or builds the cached field layout for a struct type.
func getFieldCache(structType reflect.Type) *FieldCache {
	if cached, ok := fieldCacheMap.Load(structType); ok {
		return cached.(*FieldCache)
	}

	cache := parseStructType(structType)
	fieldCacheMap.Store(structType, cache)
	return cache
}

func parseStructType(structType reflect.Type) *FieldCache {
	cache := &FieldCache{}

	for i := 0; i < structType.NumField(); i++ {
		field := structType.Field(i)
		if !field.IsExported() {
			continue
		}

		jsonName, omitempty := parseJSONTag(field.Tag.Get("json"), field.Name)
		if jsonName == "-" {
			continue
		}

		cache.Fields = append(cache.Fields, FieldInfo{Index: i, JSONName: jsonName, Omitempty: omitempty})
	}

	return cache
}

// parseJSONTag parses a struct field's json tag, returning its effective
// field name and whether "omitempty" was requested.
func parseJSONTag(tag, defaultName string) (string, bool) {
	if tag == "" {
		return defaultName, false
	}

	if commaIdx := strings.IndexByte(tag, ','); commaIdx >= 0 {
		name := tag[:commaIdx]
		if name == "" {
			name = defaultName
		}
		return name, strings.Contains(tag[commaIdx:], "omitempty")
	}

	return tag, false
}

// isEmptyValue reports whether rv holds its type's zero value, for
// omitempty handling during struct-to-instance conversion.
func isEmptyValue(rv reflect.Value) bool {
	switch rv.Kind() {
	case reflect.Array, reflect.Map, reflect.Slice, reflect.String:
		return rv.Len() == 0
	case reflect.Bool:
		return !rv.Bool()
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return rv.Int() == 0
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64, reflect.Uintptr:
		return rv.Uint() == 0
	case reflect.Float32, reflect.Float64:
		return rv.Float() == 0
	case reflect.Interface, reflect.Ptr:
		return rv.IsNil()
	}
	return false
}

// normalizeInstance converts an arbitrary Go value into the
// map[string]interface{} / []interface{} / primitive shape the evaluator
// understands, walking structs via their json tags. Values already in that
// shape pass through untouched.
func normalizeInstance(instance interface{}) interface{} {
	if instance == nil {
		return nil
	}

	rv := reflect.ValueOf(instance)
	return flattenReflectValue(rv)
}

func flattenReflectValue(rv reflect.Value) interface{} {
	switch rv.Kind() {
	case reflect.Ptr, reflect.Interface:
		if rv.IsNil() {
			return nil
		}
		return flattenReflectValue(rv.Elem())
	case reflect.Struct:
		return structToMap(rv)
	case reflect.Map:
		if rv.IsNil() {
			return nil
		}
		out := make(map[string]interface{}, rv.Len())
		iter := rv.MapRange()
		for iter.Next() {
			out[toMapKey(iter.Key())] = flattenReflectValue(iter.Value())
		}
		return out
	case reflect.Slice:
		if rv.IsNil() {
			return nil
		}
		return flattenReflectSlice(rv)
	case reflect.Array:
		return flattenReflectSlice(rv)
	default:
		return rv.Interface()
	}
}

func flattenReflectSlice(rv reflect.Value) []interface{} {
	out := make([]interface{}, rv.Len())
	for i := 0; i < rv.Len(); i++ {
		out[i] = flattenReflectValue(rv.Index(i))
	}
	return out
}

func toMapKey(rv reflect.Value) string {
	if rv.Kind() == reflect.String {
		return rv.String()
	}
	return reflect.ValueOf(rv.Interface()).String()
}

// structToMap flattens a struct into a map[string]interface{} keyed by its
// effective json field names, dropping omitempty fields that hold their
// zero value and fields tagged "json:\"-\"".
func structToMap(rv reflect.Value) map[string]interface{} {
	cache := getFieldCache(rv.Type())
	out := make(map[string]interface{}, len(cache.Fields))

	for _, field := range cache.Fields {
		fv := rv.Field(field.Index)
		if field.Omitempty && isEmptyValue(fv) {
			continue
		}
		if fv.Kind() == reflect.Ptr && fv.IsNil() {
			continue
		}
		out[field.JSONName] = flattenReflectValue(fv)
	}

	return out
}
