package mapping

import (
	"reflect"

	"github.com/jinzhu/inflection"
)

// collectionAccessor finds the entity method manipulating one element of the
// named collection field. The singular form of the field name is tried
// first ("Addresses" -> AddAddress), falling back to the raw field name for
// collections with no distinct singular.
func collectionAccessor(entity reflect.Value, prefix, field string) (reflect.Value, bool) {
	if singular := inflection.Singular(field); singular != field {
		if m := entity.MethodByName(prefix + singular); m.IsValid() {
			return m, true
		}
	}
	if m := entity.MethodByName(prefix + field); m.IsValid() {
		return m, true
	}
	return reflect.Value{}, false
}

// callAccessor invokes an add/remove accessor, adapting the element between
// pointer and value form to match the method's parameter.
func callAccessor(method reflect.Value, arg reflect.Value) {
	if method.Type().NumIn() != 1 {
		return
	}
	want := method.Type().In(0)
	switch {
	case arg.Type() == want:
	case arg.Kind() == reflect.Ptr && arg.Type().Elem() == want:
		arg = arg.Elem()
	case want.Kind() == reflect.Ptr && want.Elem() == arg.Type():
		p := reflect.New(arg.Type())
		p.Elem().Set(arg)
		arg = p
	default:
		return
	}
	method.Call([]reflect.Value{arg})
}
