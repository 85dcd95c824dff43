package mapping

import (
	"reflect"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
)

func TestValuesEqual_Scalars(t *testing.T) {
	m := newTestMapper(newFakeFinder())

	assert.True(t, m.valuesEqual(reflect.ValueOf("a"), reflect.ValueOf(ptr("a")), ""))
	assert.False(t, m.valuesEqual(reflect.ValueOf("a"), reflect.ValueOf(ptr("b")), ""))
	assert.True(t, m.valuesEqual(reflect.ValueOf(uint(3)), reflect.ValueOf(ptr(uint(3))), ""))
}

func TestValuesEqual_AbsentEqualsZero(t *testing.T) {
	m := newTestMapper(newFakeFinder())
	var nilStr *string

	assert.True(t, m.valuesEqual(reflect.ValueOf(""), reflect.ValueOf(nilStr), ""))
	assert.False(t, m.valuesEqual(reflect.ValueOf("set"), reflect.ValueOf(nilStr), ""))
	assert.True(t, m.valuesEqual(reflect.ValueOf([]bookEntity{}), reflect.ValueOf(nilStr), ""))
}

func TestValuesEqual_TimesCompareBySecond(t *testing.T) {
	m := newTestMapper(newFakeFinder())

	base := time.Date(2024, 3, 1, 10, 30, 0, 0, time.UTC)
	sameSecond := base.Add(500 * time.Millisecond)
	otherZone := base.In(time.FixedZone("CET", 3600))

	assert.True(t, m.valuesEqual(reflect.ValueOf(base), reflect.ValueOf(sameSecond), ""))
	assert.True(t, m.valuesEqual(reflect.ValueOf(base), reflect.ValueOf(otherZone), ""))
	assert.False(t, m.valuesEqual(reflect.ValueOf(base), reflect.ValueOf(base.Add(time.Second)), ""))
}

func TestValuesEqual_SingleRelation(t *testing.T) {
	m := newTestMapper(newFakeFinder())

	current := &authorEntity{ID: 1, Name: "Calvino"}

	same := &authorResource{ID: ptr(uint(1))}
	assert.True(t, m.valuesEqual(reflect.ValueOf(current), reflect.ValueOf(same), ""))

	other := &authorResource{ID: ptr(uint(2))}
	assert.False(t, m.valuesEqual(reflect.ValueOf(current), reflect.ValueOf(other), ""))

	// An id-less relation resource never matches: it maps to a fresh entity.
	unsaved := &authorResource{Name: ptr("Calvino")}
	assert.False(t, m.valuesEqual(reflect.ValueOf(current), reflect.ValueOf(unsaved), ""))
}

func TestValuesEqual_Collections(t *testing.T) {
	m := newTestMapper(newFakeFinder())

	current := []bookEntity{{ID: 1}, {ID: 2}}

	same := []bookResource{{ID: ptr(uint(1))}, {ID: ptr(uint(2))}}
	assert.True(t, m.valuesEqual(reflect.ValueOf(current), reflect.ValueOf(same), ""))

	shorter := []bookResource{{ID: ptr(uint(1))}}
	assert.False(t, m.valuesEqual(reflect.ValueOf(current), reflect.ValueOf(shorter), ""))

	// The comparison is positional: a reordering reads as a change.
	reordered := []bookResource{{ID: ptr(uint(2))}, {ID: ptr(uint(1))}}
	assert.False(t, m.valuesEqual(reflect.ValueOf(current), reflect.ValueOf(reordered), ""))

	// An element without an id can never match a persisted one.
	unsaved := []bookResource{{ID: ptr(uint(1))}, {Title: ptr("new")}}
	assert.False(t, m.valuesEqual(reflect.ValueOf(current), reflect.ValueOf(unsaved), ""))
}
