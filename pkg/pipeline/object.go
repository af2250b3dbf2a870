package pipeline

import (
	"fmt"

	"github.com/pkg/errors"

	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

// Referencer is implemented by values that render as reference fields
// instead of literals. Objects and parameters both satisfy it.
type Referencer interface {
	// RefID returns the identifier substituted in place of the value.
	RefID() string
}

// Object is one node of the pipeline graph: a typed bag of ordered
// attributes. Its id, name and type tag are fixed at construction;
// attributes may be set any number of times before the pipeline is rendered.
//
// An Object is not safe for concurrent mutation. All writes belong to the
// single goroutine building the pipeline.
type Object struct {
	id      string
	name    string
	typeTag string
	keys    []string
	attrs   map[string]any
}

// NewObject creates an object with an explicit type tag. The variant
// constructors (NewSchedule, NewShellCommandActivity, ...) are usually more
// convenient; NewObject is the escape hatch for types without one.
func NewObject(typeTag, name, id string, opts ...ObjectOption) *Object {
	obj := &Object{
		id:      id,
		name:    name,
		typeTag: typeTag,
		attrs:   make(map[string]any),
	}

	for _, opt := range opts {
		opt(obj)
	}

	return obj
}

// NewDefault creates the distinguished Default object whose attributes act
// as fallback values for every other object in the definition. The Default
// object is untyped: it renders without a type field.
func NewDefault() *Object {
	return NewObject("", "Default", "Default")
}

// ID returns the object's identifier.
func (o *Object) ID() string { return o.id }

// Name returns the object's human-readable label.
func (o *Object) Name() string { return o.name }

// TypeTag returns the value of the synthetic type field.
func (o *Object) TypeTag() string { return o.typeTag }

// RefID returns the identifier other objects use to reference this one.
func (o *Object) RefID() string { return o.id }

// Set assigns an attribute. Accepted values are scalars (strings, booleans,
// integer and float kinds, time.Time), references (anything implementing
// Referencer) and slices of either; slices render as repeated fields sharing
// the attribute key.
//
// Setting a key that is already present overwrites its value in place: the
// field keeps its original position in the rendered output. The reserved
// keys "type", "id" and "name" are rejected.
func (o *Object) Set(key string, value any) error {
	if key == "" {
		return errors.Wrap(ErrReservedFieldKey, "attribute key must not be empty")
	}

	if key == model.FieldKeyType || key == "id" || key == "name" {
		return errors.Wrapf(ErrReservedFieldKey, "%q", key)
	}

	o.set(key, value)

	return nil
}

// set assigns without the reserved-key check. Used by the variant
// constructors to seed default attributes.
func (o *Object) set(key string, value any) {
	if _, ok := o.attrs[key]; !ok {
		o.keys = append(o.keys, key)
	}

	o.attrs[key] = value
}

// Get returns the current value of an attribute.
func (o *Object) Get(key string) (any, bool) {
	value, ok := o.attrs[key]

	return value, ok
}

// AttributeKeys returns the attribute keys in assignment order.
func (o *Object) AttributeKeys() []string {
	keys := make([]string, len(o.keys))
	copy(keys, o.keys)

	return keys
}

// Fields projects the object's current state into its ordered field list:
// the synthetic type field first, then one or more fields per attribute in
// assignment order. The projection is pure; calling it twice on an
// unmodified object yields identical output.
func (o *Object) Fields() ([]model.Field, error) {
	fields := make([]model.Field, 0, len(o.keys)+1)
	if o.typeTag != "" {
		fields = append(fields, model.StringField(model.FieldKeyType, o.typeTag))
	}

	for _, key := range o.keys {
		resolved, err := resolveAttribute(key, o.attrs[key])
		if err != nil {
			return nil, errors.Wrapf(err, "object %q", o.id)
		}

		fields = append(fields, resolved...)
	}

	return fields, nil
}

// Render produces the object's complete payload entry.
func (o *Object) Render() (model.PipelineObject, error) {
	fields, err := o.Fields()
	if err != nil {
		return model.PipelineObject{}, err
	}

	return model.PipelineObject{
		ID:     o.id,
		Name:   o.name,
		Fields: fields,
	}, nil
}

func (o *Object) String() string {
	return fmt.Sprintf("<%s name: %q, id: %q>", o.typeTag, o.name, o.id)
}

var _ Referencer = (*Object)(nil)
