package pipeline

import (
	"github.com/pkg/errors"
)

var (
	// ErrDuplicateIdentifier is returned when an object or parameter is
	// added with an id already present in its namespace.
	ErrDuplicateIdentifier = errors.New("duplicate identifier")
	// ErrUnresolvedReference is reported by Validate when a reference
	// field points at an id that is not registered.
	ErrUnresolvedReference = errors.New("unresolved reference")
	// ErrInvalidAttributeType is returned when an attribute value is not
	// a scalar, a reference, or a sequence of either.
	ErrInvalidAttributeType = errors.New("invalid attribute type")
	// ErrMissingRequiredField is reported by Validate when an object has
	// an empty id or name.
	ErrMissingRequiredField = errors.New("missing required field")
	// ErrReservedFieldKey is returned when an attribute is assigned under
	// one of the reserved keys "type", "id" or "name".
	ErrReservedFieldKey = errors.New("reserved field key")
)

var (
	// ErrObjectMustBeSet is returned when a nil object is added.
	ErrObjectMustBeSet = errors.New("object must be set")
	// ErrParameterMustBeSet is returned when a nil parameter is added.
	ErrParameterMustBeSet = errors.New("parameter must be set")
)
