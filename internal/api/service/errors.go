package service

import "errors"

// ErrNotFound reports that the requested aggregate does not exist. Services
// wrap it with the aggregate name; the HTTP layer matches it with errors.Is.
var ErrNotFound = errors.New("not found")
