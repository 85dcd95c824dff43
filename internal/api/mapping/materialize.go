package mapping

import (
	"fmt"
	"reflect"
	"time"
)

// materializeResource builds a resource struct instance from a normalized
// map, matching map keys to field names. Values are wrapped into pointer
// fields and RFC 3339 strings are parsed back into time fields, so resource
// types need no per-type factory code.
func materializeResource(resType reflect.Type, data map[string]any) (any, error) {
	resType = indirectType(resType)
	inst := reflect.New(resType).Elem()
	for _, f := range exportedFields(resType) {
		raw, ok := data[f.Name]
		if !ok || raw == nil {
			continue
		}
		src := reflect.ValueOf(raw)
		if !src.IsValid() {
			continue
		}
		if err := assignResourceField(inst.FieldByIndex(f.Index), src); err != nil {
			return nil, fmt.Errorf("materialize %s.%s: %w", resType.Name(), f.Name, err)
		}
	}
	return inst.Interface(), nil
}

func assignResourceField(dst, src reflect.Value) error {
	for src.Kind() == reflect.Interface || src.Kind() == reflect.Ptr {
		if src.IsNil() {
			return nil
		}
		src = src.Elem()
	}

	if dst.Kind() == reflect.Ptr {
		p := reflect.New(dst.Type().Elem())
		if err := assignResourceField(p.Elem(), src); err != nil {
			return err
		}
		dst.Set(p)
		return nil
	}

	if dst.Type() == timeType {
		switch {
		case src.Type() == timeType:
			dst.Set(src)
		case src.Kind() == reflect.String:
			t, err := time.Parse(time.RFC3339, src.String())
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(t))
		default:
			return fmt.Errorf("cannot read time from %s", src.Type())
		}
		return nil
	}

	// Relation collections arrive as []any of resource instances.
	if dst.Kind() == reflect.Slice && src.Kind() == reflect.Slice && src.Type().Elem().Kind() == reflect.Interface {
		out := reflect.MakeSlice(dst.Type(), 0, src.Len())
		for i := 0; i < src.Len(); i++ {
			elem := reflect.New(dst.Type().Elem()).Elem()
			if err := assignResourceField(elem, src.Index(i)); err != nil {
				return err
			}
			out = reflect.Append(out, elem)
		}
		dst.Set(out)
		return nil
	}

	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	case src.Type().ConvertibleTo(dst.Type()) && (src.Kind() == reflect.String) == (dst.Kind() == reflect.String):
		dst.Set(src.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}
	return nil
}
