package mapping

import (
	"context"
	"fmt"
	"reflect"
	"time"
)

// Context carries the per-call mapping options. Condition disambiguates the
// target entity type when a resource type has several registrations.
type Context struct {
	Condition string
}

// ResourceToEntityMapper populates entities from resource DTOs: new entities
// for creation requests, in-place mutation for updates. Related entities
// referenced by id are loaded through the EntityFinder; id-less relation
// values are mapped recursively into fresh entities.
type ResourceToEntityMapper struct {
	classes *ClassMapper
	finder  EntityFinder
}

func NewResourceToEntityMapper(classes *ClassMapper, finder EntityFinder) *ResourceToEntityMapper {
	return &ResourceToEntityMapper{classes: classes, finder: finder}
}

// Map resolves the entity type for the resource and applies every resource
// field onto the target. When existing is nil a bare entity is instantiated;
// otherwise existing is mutated in place and returned. The returned value is
// always a pointer to the entity.
func (m *ResourceToEntityMapper) Map(ctx context.Context, res any, mctx Context, existing any) (any, error) {
	rv := reflect.ValueOf(res)
	if !rv.IsValid() || (rv.Kind() == reflect.Ptr && rv.IsNil()) {
		return nil, fmt.Errorf("cannot map nil resource")
	}
	rv = reflect.Indirect(rv)
	if rv.Kind() != reflect.Struct {
		return nil, fmt.Errorf("cannot map %T: not a resource struct", res)
	}

	entityType, err := m.classes.ByResource(rv.Type(), mctx.Condition)
	if err != nil {
		return nil, err
	}

	target := reflect.New(entityType)
	updating := false
	if existing != nil {
		ev := reflect.ValueOf(existing)
		if ev.Kind() != reflect.Ptr || ev.IsNil() || ev.Type().Elem() != entityType {
			return nil, fmt.Errorf("%w: have %T, want *%s", ErrWrongEntityType, existing, entityType.Name())
		}
		target = ev
		updating = true
	}

	if err := m.apply(ctx, rv, target, mctx, updating, []reflect.Type{rv.Type()}); err != nil {
		return nil, err
	}
	return target.Interface(), nil
}

// apply walks the resource's fields onto the target entity. seen is the
// chain of resource types already being mapped on this call path; relations
// cycling back to a type on the chain are skipped, so hand-built cyclic
// resource graphs terminate.
func (m *ResourceToEntityMapper) apply(ctx context.Context, res reflect.Value, target reflect.Value, mctx Context, updating bool, seen []reflect.Type) error {
	entity := target.Elem()
	for _, f := range exportedFields(res.Type()) {
		if f.Tag.Get(tagName) == "-" {
			continue
		}
		ef, ok := entity.Type().FieldByName(f.Name)
		if !ok {
			// Resources may carry fields the entity does not.
			continue
		}
		dst := entity.FieldByIndex(ef.Index)
		in := res.FieldByIndex(f.Index)

		// Dirty check: an unchanged value never reaches a mutator.
		if updating && m.valuesEqual(dst, in, mctx.Condition) {
			continue
		}
		inVal := settle(in)

		// Collection of related resources.
		if f.Type.Kind() == reflect.Slice && dst.Kind() == reflect.Slice {
			elemRes := indirectType(f.Type.Elem())
			if elemRes.Kind() == reflect.Struct && elemRes != timeType {
				if elemEntity, err := m.classes.ByResource(elemRes, mctx.Condition); err == nil {
					if typeSeen(seen, elemRes) {
						continue
					}
					if err := m.replaceCollection(ctx, target, ef, inVal, elemEntity, mctx, seen); err != nil {
						return fmt.Errorf("map %s.%s: %w", res.Type().Name(), f.Name, err)
					}
					continue
				}
			}
		}

		// Single relation.
		if relRes := indirectType(f.Type); relRes.Kind() == reflect.Struct && relRes != timeType {
			if relEntity, err := m.classes.ByResource(relRes, mctx.Condition); err == nil {
				if typeSeen(seen, relRes) {
					continue
				}
				if !inVal.IsValid() {
					if updating {
						dst.Set(reflect.Zero(dst.Type()))
					}
					continue
				}
				rel, err := m.resolveRelated(ctx, inVal, relEntity, mctx, seen)
				if err != nil {
					return fmt.Errorf("map %s.%s: %w", res.Type().Name(), f.Name, err)
				}
				setRelated(dst, rel)
				continue
			}
		}

		// Plain property. Creating never writes an explicit null over a
		// field's default.
		if !inVal.IsValid() {
			if updating {
				dst.Set(reflect.Zero(dst.Type()))
			}
			continue
		}
		if err := assignEntityField(dst, inVal); err != nil {
			return fmt.Errorf("map %s.%s: %w", res.Type().Name(), f.Name, err)
		}
	}
	return nil
}

// replaceCollection implements full-replace semantics: every element
// currently held is removed through the entity's remove accessor, then each
// incoming element is resolved and attached through the add accessor.
// Entities declaring no accessor pair fall back to direct slice writes.
func (m *ResourceToEntityMapper) replaceCollection(ctx context.Context, target reflect.Value, field reflect.StructField, incoming reflect.Value, elemEntity reflect.Type, mctx Context, seen []reflect.Type) error {
	dst := target.Elem().FieldByIndex(field.Index)

	if remove, ok := collectionAccessor(target, "Remove", field.Name); ok {
		// Snapshot first: the accessor mutates the slice being walked.
		current := make([]reflect.Value, 0, dst.Len())
		for i := 0; i < dst.Len(); i++ {
			current = append(current, reflect.ValueOf(dst.Index(i).Interface()))
		}
		for _, el := range current {
			callAccessor(remove, el)
		}
	} else if dst.Len() > 0 {
		dst.Set(reflect.MakeSlice(dst.Type(), 0, 0))
	}

	if !incoming.IsValid() || incoming.Len() == 0 {
		return nil
	}

	add, hasAdd := collectionAccessor(target, "Add", field.Name)
	for i := 0; i < incoming.Len(); i++ {
		el := settle(incoming.Index(i))
		if !el.IsValid() {
			continue
		}
		rel, err := m.resolveRelated(ctx, el, elemEntity, mctx, seen)
		if err != nil {
			return err
		}
		if hasAdd {
			callAccessor(add, rel)
			continue
		}
		ev := rel
		if dst.Type().Elem().Kind() != reflect.Ptr {
			ev = rel.Elem()
		}
		dst.Set(reflect.Append(dst, ev))
	}
	return nil
}

// resolveRelated turns one relation resource value into an entity pointer:
// fetched by id when the resource carries one, recursively mapped into a
// fresh entity otherwise.
func (m *ResourceToEntityMapper) resolveRelated(ctx context.Context, res reflect.Value, entityType reflect.Type, mctx Context, seen []reflect.Type) (reflect.Value, error) {
	if id, ok := resourceID(res); ok {
		found, err := m.finder.FindByID(ctx, entityType, id)
		if err != nil {
			return reflect.Value{}, fmt.Errorf("find %s id=%d: %w", entityType.Name(), id, err)
		}
		if found == nil {
			return reflect.Value{}, fmt.Errorf("%w: %s id=%d", ErrRelatedEntityNotFound, entityType.Name(), id)
		}
		fv := reflect.ValueOf(found)
		if fv.Kind() != reflect.Ptr {
			p := reflect.New(fv.Type())
			p.Elem().Set(fv)
			fv = p
		}
		return fv, nil
	}

	target := reflect.New(entityType)
	if err := m.apply(ctx, res, target, mctx, false, extendChain(seen, res.Type())); err != nil {
		return reflect.Value{}, err
	}
	return target, nil
}

func setRelated(dst, rel reflect.Value) {
	if dst.Kind() == reflect.Ptr {
		if rel.Type() == dst.Type() {
			dst.Set(rel)
		}
		return
	}
	if rel.Kind() == reflect.Ptr && rel.Type().Elem() == dst.Type() {
		dst.Set(rel.Elem())
	}
}

// assignEntityField writes a plain property, converting times to the
// entity's canonical UTC representation.
func assignEntityField(dst, src reflect.Value) error {
	if dst.Kind() == reflect.Ptr {
		p := reflect.New(dst.Type().Elem())
		if err := assignEntityField(p.Elem(), src); err != nil {
			return err
		}
		dst.Set(p)
		return nil
	}

	if dst.Type() == timeType {
		switch {
		case src.Type() == timeType:
			dst.Set(reflect.ValueOf(src.Interface().(time.Time).UTC()))
		case src.Kind() == reflect.String:
			t, err := time.Parse(time.RFC3339, src.String())
			if err != nil {
				return err
			}
			dst.Set(reflect.ValueOf(t.UTC()))
		default:
			return fmt.Errorf("cannot read time from %s", src.Type())
		}
		return nil
	}

	switch {
	case src.Type().AssignableTo(dst.Type()):
		dst.Set(src)
	// The string guard blocks reflect's rune-style int-to-string conversion.
	case src.Type().ConvertibleTo(dst.Type()) && (src.Kind() == reflect.String) == (dst.Kind() == reflect.String):
		dst.Set(src.Convert(dst.Type()))
	default:
		return fmt.Errorf("cannot assign %s to %s", src.Type(), dst.Type())
	}
	return nil
}
