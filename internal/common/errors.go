// Package common defines sentinel errors shared by the member store, the
// persistence layer and the console client. Callers should use errors.Is to
// match these values.
package common

import "errors"

var (
	// Lookup errors.
	ErrorNotFound = errors.New("not found")

	// Input and record validation errors. Concrete causes wrap this value.
	ErrorValidation = errors.New("validation error")

	// Persistence errors (a stored line could not be decoded).
	ErrorMalformedRecord = errors.New("malformed record")
)
