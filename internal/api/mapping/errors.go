package mapping

import "errors"

var (
	// ErrUnmappedType is returned when a type was never registered on the
	// ClassMapper. This is a configuration error and is never retried.
	ErrUnmappedType = errors.New("no mapping registered for type")

	// ErrRelatedEntityNotFound is returned when a resource references a
	// related entity by id and no row with that id exists.
	ErrRelatedEntityNotFound = errors.New("related entity not found")

	// ErrUninitializedEntity is returned when a nil entity is handed to the
	// normalizer. Partial normalization is never attempted.
	ErrUninitializedEntity = errors.New("entity is not initialized")

	// ErrWrongEntityType is returned when the entity passed for an in-place
	// update is not an instance of the resolved target type.
	ErrWrongEntityType = errors.New("entity has wrong type")
)
