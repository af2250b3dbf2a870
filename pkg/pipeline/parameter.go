package pipeline

import (
	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

// ParameterType is the kind of value a parameter carries.
type ParameterType string

const (
	ParameterTypeString      ParameterType = "String"
	ParameterTypeInteger     ParameterType = "Integer"
	ParameterTypeDouble      ParameterType = "Double"
	ParameterTypeS3ObjectKey ParameterType = "AWS::S3::ObjectKey"
)

// Parameter is a named, typed value supplied at activation time. Parameters
// are immutable after construction and are referenced from object attributes
// by identifier.
type Parameter struct {
	id          string
	typeTag     ParameterType
	value       string
	description string
	watermark   string
	hasValue    bool
}

// ParameterOption configures a parameter at construction.
type ParameterOption func(p *Parameter)

// WithValue sets the parameter's default value.
func WithValue(value string) ParameterOption {
	return func(p *Parameter) {
		p.value = value
		p.hasValue = true
	}
}

// WithParameterDescription sets the human-readable description.
func WithParameterDescription(description string) ParameterOption {
	return func(p *Parameter) {
		p.description = description
	}
}

// WithWatermark sets the watermark hint shown by the console.
func WithWatermark(watermark string) ParameterOption {
	return func(p *Parameter) {
		p.watermark = watermark
	}
}

// NewParameter creates a parameter of the given type.
func NewParameter(id string, typeTag ParameterType, opts ...ParameterOption) *Parameter {
	param := &Parameter{
		id:      id,
		typeTag: typeTag,
	}

	for _, opt := range opts {
		opt(param)
	}

	return param
}

// NewStringParameter creates a string-valued parameter.
func NewStringParameter(id string, opts ...ParameterOption) *Parameter {
	return NewParameter(id, ParameterTypeString, opts...)
}

// NewIntegerParameter creates an integer-valued parameter.
func NewIntegerParameter(id string, opts ...ParameterOption) *Parameter {
	return NewParameter(id, ParameterTypeInteger, opts...)
}

// NewDoubleParameter creates a floating point parameter.
func NewDoubleParameter(id string, opts ...ParameterOption) *Parameter {
	return NewParameter(id, ParameterTypeDouble, opts...)
}

// ID returns the parameter's identifier.
func (p *Parameter) ID() string { return p.id }

// Type returns the parameter's kind.
func (p *Parameter) Type() ParameterType { return p.typeTag }

// RefID returns the identifier objects use to reference this parameter.
func (p *Parameter) RefID() string { return p.id }

// Value returns the default value and whether one was set.
func (p *Parameter) Value() (string, bool) {
	return p.value, p.hasValue
}

// Expr returns the #{id} expression form of the parameter, for substitution
// inside literal attribute values such as shell commands.
func (p *Parameter) Expr() string {
	return "#{" + p.id + "}"
}

// Fields projects the parameter into its ordered field list: the synthetic
// type field first, then value, description and watermark for whichever are
// set. Unset optional fields are omitted entirely.
func (p *Parameter) Fields() []model.Field {
	fields := []model.Field{model.StringField(model.FieldKeyType, string(p.typeTag))}

	if p.hasValue {
		fields = append(fields, model.StringField("value", p.value))
	}

	if p.description != "" {
		fields = append(fields, model.StringField("description", p.description))
	}

	if p.watermark != "" {
		fields = append(fields, model.StringField("watermark", p.watermark))
	}

	return fields
}

// Render produces the parameter's payload entry.
func (p *Parameter) Render() model.ParameterObject {
	return model.ParameterObject{
		ID:     p.id,
		Fields: p.Fields(),
	}
}

var _ Referencer = (*Parameter)(nil)
