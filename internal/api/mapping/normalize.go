package mapping

import (
	"fmt"
	"reflect"
	"time"
)

// EntityNormalizer converts a live entity graph into resource DTOs. It walks
// the entity's exported fields, recursively turning related entities and
// collections into resource instances, and keeps a chain of already-visited
// resource types so cyclic relation graphs terminate.
type EntityNormalizer struct {
	classes *ClassMapper
}

func NewEntityNormalizer(classes *ClassMapper) *EntityNormalizer {
	return &EntityNormalizer{classes: classes}
}

// Normalize produces the plain structure for one entity: a map keyed by the
// entity's field names, holding scalars as-is, times as RFC 3339 strings and
// relations as already-built resource instances. Unset values (nil pointers,
// nil slices, zero times) are omitted entirely.
func (n *EntityNormalizer) Normalize(entity any) (map[string]any, error) {
	return n.normalize(entity, nil)
}

// NormalizeToResource normalizes the entity and materializes the result into
// an instance of its registered resource type.
func (n *EntityNormalizer) NormalizeToResource(entity any) (any, error) {
	if entity == nil {
		return nil, fmt.Errorf("%w: nil entity", ErrUninitializedEntity)
	}
	resType, err := n.classes.ByEntity(reflect.TypeOf(entity))
	if err != nil {
		return nil, err
	}
	data, err := n.Normalize(entity)
	if err != nil {
		return nil, err
	}
	return materializeResource(resType, data)
}

func (n *EntityNormalizer) normalize(entity any, visited []reflect.Type) (map[string]any, error) {
	v := reflect.ValueOf(entity)
	if !v.IsValid() || (v.Kind() == reflect.Ptr && v.IsNil()) {
		return nil, fmt.Errorf("%w: nil entity", ErrUninitializedEntity)
	}
	v = reflect.Indirect(v)
	if v.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot normalize %T: not an entity struct", entity)
	}

	resType, err := n.classes.ByEntity(v.Type())
	if err != nil {
		return nil, err
	}
	// The entity's own resource type joins the chain exactly once, before
	// any descent, so a relation cycling back to this type is caught.
	visited = extendChain(visited, resType)

	out := make(map[string]any)
	for _, f := range exportedFields(v.Type()) {
		if f.Tag.Get(tagName) == "-" {
			continue
		}
		fv := v.FieldByIndex(f.Index)
		switch fv.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			if fv.IsNil() {
				continue
			}
		}
		fv = reflect.Indirect(fv)

		if fv.Type() == timeType {
			t := fv.Interface().(time.Time)
			if t.IsZero() {
				continue
			}
			out[f.Name] = t.Format(time.RFC3339)
			continue
		}

		if fv.Kind() == reflect.Slice {
			elemType := indirectType(fv.Type().Elem())
			if elemRes, err := n.classes.ByEntity(elemType); err == nil && elemType.Kind() == reflect.Struct {
				if typeSeen(visited, elemRes) {
					continue
				}
				items, err := n.normalizeCollection(fv, elemRes, visited)
				if err != nil {
					return nil, err
				}
				out[f.Name] = items
				continue
			}
		}

		if fv.Kind() == reflect.Struct {
			if fRes, err := n.classes.ByEntity(fv.Type()); err == nil {
				if typeSeen(visited, fRes) {
					continue
				}
				child, err := n.normalize(fv.Interface(), visited)
				if err != nil {
					return nil, err
				}
				res, err := materializeResource(fRes, child)
				if err != nil {
					return nil, err
				}
				out[f.Name] = res
				continue
			}
		}

		out[f.Name] = fv.Interface()
	}
	return out, nil
}

func (n *EntityNormalizer) normalizeCollection(slice reflect.Value, elemRes reflect.Type, visited []reflect.Type) ([]any, error) {
	items := make([]any, 0, slice.Len())
	for i := 0; i < slice.Len(); i++ {
		ev := slice.Index(i)
		if ev.Kind() == reflect.Ptr && ev.IsNil() {
			continue
		}
		child, err := n.normalize(ev.Interface(), visited)
		if err != nil {
			return nil, err
		}
		res, err := materializeResource(elemRes, child)
		if err != nil {
			return nil, err
		}
		items = append(items, res)
	}
	return items, nil
}
