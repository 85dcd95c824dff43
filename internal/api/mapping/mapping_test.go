package mapping

import (
	"context"
	"reflect"
	"time"
)

// Test fixtures: a small author/book graph with a back-reference, plus a
// payment pair sharing one resource type for the conditional registration
// tests.

type authorEntity struct {
	ID        uint
	Name      string
	Secret    string `mapper:"-"`
	Books     []bookEntity
	CreatedAt time.Time
	removals  int
}

func (a *authorEntity) AddBook(b bookEntity) {
	b.AuthorID = a.ID
	a.Books = append(a.Books, b)
}

func (a *authorEntity) RemoveBook(b bookEntity) {
	a.removals++
	kept := make([]bookEntity, 0, len(a.Books))
	for _, cur := range a.Books {
		if cur.ID != b.ID {
			kept = append(kept, cur)
		}
	}
	a.Books = kept
}

type bookEntity struct {
	ID          uint
	AuthorID    uint
	Author      *authorEntity
	Title       string
	PublishedAt *time.Time
}

type authorResource struct {
	ID        *uint
	Name      *string
	Books     []bookResource
	CreatedAt *time.Time
}

type bookResource struct {
	ID          *uint
	AuthorID    *uint
	Author      *authorResource
	Title       *string
	PublishedAt *time.Time
}

type cardPaymentEntity struct {
	ID          uint
	AmountCents int64
}

type bankPaymentEntity struct {
	ID          uint
	AmountCents int64
}

type paymentResource struct {
	ID          *uint
	AmountCents *int64
}

func newTestClasses() *ClassMapper {
	classes := NewClassMapper()
	classes.Register(authorResource{}, authorEntity{})
	classes.Register(bookResource{}, bookEntity{})
	classes.Register(paymentResource{}, cardPaymentEntity{})
	classes.RegisterConditional(paymentResource{}, bankPaymentEntity{}, "bank")
	return classes
}

// fakeFinder serves related-entity lookups from an in-memory map, counting
// calls so tests can assert which lookups actually happened.
type fakeFinder struct {
	entities map[reflect.Type]map[uint]any
	calls    int
}

func newFakeFinder() *fakeFinder {
	return &fakeFinder{entities: make(map[reflect.Type]map[uint]any)}
}

func (f *fakeFinder) add(entity any, id uint) {
	t := indirectType(reflect.TypeOf(entity))
	if f.entities[t] == nil {
		f.entities[t] = make(map[uint]any)
	}
	f.entities[t][id] = entity
}

func (f *fakeFinder) FindByID(_ context.Context, entityType reflect.Type, id uint) (any, error) {
	f.calls++
	byID, ok := f.entities[indirectType(entityType)]
	if !ok {
		return nil, nil
	}
	entity, ok := byID[id]
	if !ok {
		return nil, nil
	}
	return entity, nil
}

func ptr[T any](v T) *T {
	return &v
}
