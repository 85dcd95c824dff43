package mapping

import (
	"reflect"
	"time"
)

// valuesEqual is the dirty-check comparison: it decides whether an incoming
// resource value already matches the entity's current value, in which case
// the write is skipped and the persistence layer never sees the field as
// dirty.
//
// Rules: scalars compare by deep equality, times by epoch second, an absent
// incoming value equals an unset current one, a single related entity equals
// a relation resource iff the mapped entity type and the identifiers both
// match, and an entity collection equals a resource collection iff they have
// the same length and the per-position relation rule holds throughout. The
// positional comparison means a pure reordering is reported as a change;
// that behavior is kept deliberately.
func (m *ResourceToEntityMapper) valuesEqual(current, incoming reflect.Value, condition string) bool {
	current = settle(current)
	incoming = settle(incoming)

	if !incoming.IsValid() {
		if !current.IsValid() {
			return true
		}
		if current.Kind() == reflect.Slice {
			return current.Len() == 0
		}
		return current.IsZero()
	}
	if !current.IsValid() {
		return false
	}

	if current.Type() == timeType && incoming.Type() == timeType {
		return current.Interface().(time.Time).Unix() == incoming.Interface().(time.Time).Unix()
	}

	if current.Kind() == reflect.Slice && incoming.Kind() == reflect.Slice {
		if elemRes := indirectType(incoming.Type().Elem()); elemRes.Kind() == reflect.Struct {
			if _, err := m.classes.ByResource(elemRes, condition); err == nil {
				return m.collectionsEqual(current, incoming, condition)
			}
		}
	}

	if incoming.Kind() == reflect.Struct && incoming.Type() != timeType {
		if mapped, err := m.classes.ByResource(incoming.Type(), condition); err == nil {
			return relationsEqual(current, incoming, mapped)
		}
	}

	if incoming.Type() == current.Type() {
		return reflect.DeepEqual(current.Interface(), incoming.Interface())
	}
	if incoming.Type().ConvertibleTo(current.Type()) {
		return reflect.DeepEqual(current.Interface(), incoming.Convert(current.Type()).Interface())
	}
	return false
}

func (m *ResourceToEntityMapper) collectionsEqual(current, incoming reflect.Value, condition string) bool {
	if current.Len() != incoming.Len() {
		return false
	}
	for i := 0; i < current.Len(); i++ {
		ce := settle(current.Index(i))
		re := settle(incoming.Index(i))
		if !ce.IsValid() || !re.IsValid() {
			return false
		}
		mapped, err := m.classes.ByResource(re.Type(), condition)
		if err != nil || !relationsEqual(ce, re, mapped) {
			return false
		}
	}
	return true
}

// relationsEqual compares one held entity against one relation resource:
// equal iff the resource maps to the entity's type and both carry the same
// identifier. An id-less resource never matches and is mapped afresh.
func relationsEqual(current, incoming reflect.Value, mapped reflect.Type) bool {
	if current.Type() != mapped {
		return false
	}
	id, ok := resourceID(incoming)
	return ok && entityID(current) == id
}

// settle strips interface and pointer wrappers; a nil wrapper settles to an
// invalid value, which the comparison treats as "absent".
func settle(v reflect.Value) reflect.Value {
	for v.IsValid() && (v.Kind() == reflect.Interface || v.Kind() == reflect.Ptr) {
		if v.IsNil() {
			return reflect.Value{}
		}
		v = v.Elem()
	}
	return v
}
