package model

// FieldKeyType is the reserved key of the synthetic type field injected at
// the head of every typed object's field list.
const FieldKeyType = "type"

// Field is a single rendered key/value entry of a pipeline object or
// parameter. Exactly one of StringValue and RefValue is set: StringValue
// carries a literal, RefValue carries the identifier of another pipeline
// object or parameter.
type Field struct {
	Key         string  `json:"key"`
	StringValue *string `json:"stringValue,omitempty"`
	RefValue    *string `json:"refValue,omitempty"`
}

// StringField creates a literal field.
func StringField(key, value string) Field {
	return Field{Key: key, StringValue: &value}
}

// RefField creates a reference field pointing at target.
func RefField(key, target string) Field {
	return Field{Key: key, RefValue: &target}
}

// IsRef reports whether the field carries a reference marker.
func (f Field) IsRef() bool {
	return f.RefValue != nil
}

// Value returns whichever side of the field is set.
func (f Field) Value() string {
	if f.RefValue != nil {
		return *f.RefValue
	}

	if f.StringValue != nil {
		return *f.StringValue
	}

	return ""
}

// PipelineObject is the rendered form of one object in a definition.
type PipelineObject struct {
	ID     string  `json:"id"`
	Name   string  `json:"name"`
	Fields []Field `json:"fields"`
}

// ParameterObject is the rendered form of one parameter. Parameters carry no
// name, only an identifier and a field list.
type ParameterObject struct {
	ID     string  `json:"id"`
	Fields []Field `json:"fields"`
}

// ParameterValue is the default value of a parameter, supplied alongside the
// definition when the pipeline is submitted or activated.
type ParameterValue struct {
	ID          string `json:"id"`
	StringValue string `json:"stringValue"`
}

// Payload is the complete, submission-ready definition. Both lists preserve
// registry insertion order.
type Payload struct {
	PipelineObjects  []PipelineObject  `json:"pipelineObjects"`
	ParameterObjects []ParameterObject `json:"parameterObjects"`
}
