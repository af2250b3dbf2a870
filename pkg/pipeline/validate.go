package pipeline

import (
	"strings"

	"github.com/pkg/errors"
)

// Violation is one structural problem found in a definition.
type Violation struct {
	// ObjectID identifies the object (or parameter) at fault. Empty when
	// the fault is a missing id.
	ObjectID string
	// Key is the attribute the violation concerns, when relevant.
	Key string
	// Ref is the dangling target id for unresolved references.
	Ref string
	// Err wraps the violation kind (ErrMissingRequiredField,
	// ErrUnresolvedReference, ErrInvalidAttributeType or
	// ErrDuplicateIdentifier) with detail.
	Err error
}

// ValidationResult is the outcome of Validate: ok, or the ordered list of
// every violation found in one pass.
type ValidationResult struct {
	Violations []Violation
}

// OK reports whether the definition passed validation.
func (r *ValidationResult) OK() bool {
	return len(r.Violations) == 0
}

// Err returns nil when the result is ok, otherwise a single error listing
// every violation.
func (r *ValidationResult) Err() error {
	if r.OK() {
		return nil
	}

	msgs := make([]string, 0, len(r.Violations))
	for _, violation := range r.Violations {
		msgs = append(msgs, violation.Err.Error())
	}

	return errors.Errorf("invalid definition: %s", strings.Join(msgs, "; "))
}

// Validate performs the structural pre-submission checks: required ids and
// names, reference resolution against both registries, projection failures
// and per-namespace duplicates. Violations are collected, not returned one
// at a time, so a caller can fix everything in a single edit cycle.
//
// Validate does not judge attribute values themselves (whether a period
// string is a well-formed duration is the remote service's call) and never
// mutates the pipeline.
func (p *Pipeline) Validate() *ValidationResult {
	result := &ValidationResult{}
	seen := make(map[string]struct{}, p.objects.Len())

	for _, obj := range p.objects.Values() {
		if obj.id == "" {
			result.Violations = append(result.Violations, Violation{
				Err: errors.Wrapf(ErrMissingRequiredField, "object %q has an empty id", obj.name),
			})
		} else if _, dup := seen[obj.id]; dup {
			result.Violations = append(result.Violations, Violation{
				ObjectID: obj.id,
				Err:      errors.Wrapf(ErrDuplicateIdentifier, "object %q", obj.id),
			})
		}

		seen[obj.id] = struct{}{}

		if obj.name == "" {
			result.Violations = append(result.Violations, Violation{
				ObjectID: obj.id,
				Err:      errors.Wrapf(ErrMissingRequiredField, "object %q has an empty name", obj.id),
			})
		}

		fields, err := obj.Fields()
		if err != nil {
			result.Violations = append(result.Violations, Violation{
				ObjectID: obj.id,
				Err:      err,
			})

			continue
		}

		for _, field := range fields {
			if !field.IsRef() {
				continue
			}

			target := field.Value()
			if p.objects.Has(target) || p.parameters.Has(target) {
				continue
			}

			result.Violations = append(result.Violations, Violation{
				ObjectID: obj.id,
				Key:      field.Key,
				Ref:      target,
				Err: errors.Wrapf(ErrUnresolvedReference,
					"object %q attribute %q references unknown id %q", obj.id, field.Key, target),
			})
		}
	}

	seenParams := make(map[string]struct{}, p.parameters.Len())

	for _, param := range p.parameters.Values() {
		if param.id == "" {
			result.Violations = append(result.Violations, Violation{
				Err: errors.Wrap(ErrMissingRequiredField, "parameter has an empty id"),
			})

			continue
		}

		if _, dup := seenParams[param.id]; dup {
			result.Violations = append(result.Violations, Violation{
				ObjectID: param.id,
				Err:      errors.Wrapf(ErrDuplicateIdentifier, "parameter %q", param.id),
			})
		}

		seenParams[param.id] = struct{}{}
	}

	return result
}
