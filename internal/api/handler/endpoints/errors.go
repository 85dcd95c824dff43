package endpoints

import (
	"errors"
	"net/http"

	"resmap/internal/api/mapping"
	"resmap/internal/api/service"
)

// statusForError translates service and mapping failures to HTTP codes. A
// related entity that cannot be resolved is a client error in the payload,
// an unmapped type is a server-side registration gap.
func statusForError(err error) int {
	switch {
	case errors.Is(err, mapping.ErrRelatedEntityNotFound):
		return http.StatusUnprocessableEntity
	case errors.Is(err, mapping.ErrUnmappedType),
		errors.Is(err, mapping.ErrWrongEntityType),
		errors.Is(err, mapping.ErrUninitializedEntity):
		return http.StatusInternalServerError
	case errors.Is(err, service.ErrNotFound):
		return http.StatusNotFound
	default:
		return http.StatusInternalServerError
	}
}
