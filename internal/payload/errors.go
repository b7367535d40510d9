package payload

import (
	"errors"

	"github.com/dmitrijs2005/qrkeeper/internal/common"
)

// ValidationError describes a field the user has to fix before encoding.
type ValidationError struct {
	Field   string
	Message string
}

func (e *ValidationError) Error() string {
	return e.Message
}

// Is lets errors.Is(err, common.ErrValidation) match.
func (e *ValidationError) Is(target error) bool {
	return target == common.ErrValidation
}

func invalid(field, msg string) error {
	return &ValidationError{Field: field, Message: msg}
}

// ParseError describes why a string could not be decoded.
type ParseError struct {
	Reason string
}

func (e *ParseError) Error() string {
	return "unrecognized format: " + e.Reason
}

// Is lets errors.Is(err, common.ErrUnrecognizedFormat) match.
func (e *ParseError) Is(target error) bool {
	return target == common.ErrUnrecognizedFormat
}

func unrecognized(reason string) error {
	return &ParseError{Reason: reason}
}

// FieldOf returns the field named by a ValidationError in err's chain, or "".
func FieldOf(err error) string {
	var ve *ValidationError
	if errors.As(err, &ve) {
		return ve.Field
	}
	return ""
}
