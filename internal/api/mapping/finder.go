package mapping

import (
	"context"
	"reflect"
)

// EntityFinder loads persisted entities during resource-to-entity mapping.
// Implementations return a pointer to the entity, or (nil, nil) when no row
// with that id exists; the resolver turns the latter into
// ErrRelatedEntityNotFound.
type EntityFinder interface {
	FindByID(ctx context.Context, entityType reflect.Type, id uint) (any, error)
}
