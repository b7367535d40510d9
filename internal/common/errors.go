// Package common defines sentinel errors shared by the codec, history and
// storage layers of qrkeeper. Callers should use errors.Is to match these
// values; typed errors elsewhere in the module report themselves as one of
// them.
package common

import "errors"

var (
	// ErrorNotFound marks a history position that does not exist.
	ErrorNotFound = errors.New("not found")

	// ErrValidation marks user-input faults: a missing field, a wrong digit
	// count, a malformed date or a non-numeric quantity/bin.
	ErrValidation = errors.New("validation error")

	// ErrUnrecognizedFormat marks scanned or stored data that does not match
	// the grammar of the payload it was decoded as.
	ErrUnrecognizedFormat = errors.New("unrecognized format")

	// ErrPersistence marks a failed write to the history blob. It is never
	// fatal: the in-memory history stays authoritative for the session.
	ErrPersistence = errors.New("history not persisted")

	// ErrUnknownSource is returned for a source tag outside gtext/gsmart/icbin.
	ErrUnknownSource = errors.New("unknown payload source")
)
