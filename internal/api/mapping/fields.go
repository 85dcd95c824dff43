package mapping

import (
	"reflect"
	"time"
)

var timeType = reflect.TypeOf(time.Time{})

// tagName is the struct tag consulted for mapper directives. A field tagged
// `mapper:"-"` is never emitted by the normalizer and never written by the
// resolver.
const tagName = "mapper"

func indirectType(t reflect.Type) reflect.Type {
	for t != nil && t.Kind() == reflect.Ptr {
		t = t.Elem()
	}
	return t
}

// exportedFields lists the exported fields of a struct type, flattening
// embedded structs so that fields declared on an embedded base behave like
// inherited properties.
func exportedFields(t reflect.Type) []reflect.StructField {
	fields := make([]reflect.StructField, 0, t.NumField())
	for i := 0; i < t.NumField(); i++ {
		f := t.Field(i)
		if f.Anonymous && f.Type.Kind() == reflect.Struct && f.Type != timeType {
			for _, sub := range exportedFields(f.Type) {
				sub.Index = append([]int{i}, sub.Index...)
				fields = append(fields, sub)
			}
			continue
		}
		if f.PkgPath != "" {
			continue
		}
		fields = append(fields, f)
	}
	return fields
}

func typeSeen(chain []reflect.Type, t reflect.Type) bool {
	for _, c := range chain {
		if c == t {
			return true
		}
	}
	return false
}

// extendChain copies the visited chain before appending so sibling branches
// of the traversal never share backing storage.
func extendChain(chain []reflect.Type, t reflect.Type) []reflect.Type {
	next := make([]reflect.Type, len(chain)+1)
	copy(next, chain)
	next[len(chain)] = t
	return next
}

// entityID reads the uint primary key of an entity struct value. Zero means
// the entity was never persisted.
func entityID(entity reflect.Value) uint {
	f := entity.FieldByName("ID")
	if !f.IsValid() {
		return 0
	}
	switch f.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return uint(f.Uint())
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return uint(f.Int())
	}
	return 0
}

// resourceID reads the optional id carried by a resource struct value. The
// second return is false when the resource represents a creation request.
func resourceID(resource reflect.Value) (uint, bool) {
	f := resource.FieldByName("ID")
	if !f.IsValid() {
		return 0, false
	}
	if f.Kind() == reflect.Ptr {
		if f.IsNil() {
			return 0, false
		}
		f = f.Elem()
	}
	switch f.Kind() {
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		id := uint(f.Uint())
		return id, id != 0
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		id := uint(f.Int())
		return id, id != 0
	}
	return 0, false
}
