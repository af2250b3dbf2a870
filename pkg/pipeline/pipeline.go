package pipeline

import (
	"github.com/pkg/errors"

	"github.com/askiada/go-datapipeline/internal/store"
	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

// Pipeline is the aggregate root: pipeline-level metadata plus the ordered
// registries of objects and parameters that make up a definition.
//
// A Pipeline is built by a single goroutine. Render, ParameterValues, Graph
// and Validate are read-only and may run concurrently with each other, but
// never with Add, AddParameters or attribute assignment on a contained
// object.
type Pipeline struct {
	name        string
	uniqueID    string
	description string
	region      string
	pipelineID  string
	objects     *store.Ordered[string, *Object]
	parameters  *store.Ordered[string, *Parameter]
}

// New creates an empty pipeline. The region defaults to us-east-1.
func New(name, uniqueID string, opts ...Option) *Pipeline {
	pipe := &Pipeline{
		name:       name,
		uniqueID:   uniqueID,
		region:     "us-east-1",
		objects:    store.NewOrdered[string, *Object](),
		parameters: store.NewOrdered[string, *Parameter](),
	}

	for _, opt := range opts {
		opt(pipe)
	}

	return pipe
}

// Name returns the pipeline's human-readable name.
func (p *Pipeline) Name() string { return p.name }

// UniqueID returns the idempotency token used when creating the pipeline.
func (p *Pipeline) UniqueID() string { return p.uniqueID }

// Description returns the pipeline description.
func (p *Pipeline) Description() string { return p.description }

// Region returns the region the pipeline deploys to.
func (p *Pipeline) Region() string { return p.region }

// ID returns the remote pipeline id, empty until the pipeline is created.
func (p *Pipeline) ID() string { return p.pipelineID }

// SetID records the remote pipeline id after creation.
func (p *Pipeline) SetID(pipelineID string) { p.pipelineID = pipelineID }

// Add inserts objects into the registry, preserving insertion order. An id
// collision with an already registered object, or within the batch itself,
// fails with ErrDuplicateIdentifier before anything is inserted.
//
// Objects and parameters occupy separate identifier namespaces: an object
// and a parameter may share an id value. This is a deliberate design
// choice, matching the remote service's own namespaces.
func (p *Pipeline) Add(objects ...*Object) error {
	seen := make(map[string]struct{}, len(objects))

	for _, obj := range objects {
		if obj == nil {
			return ErrObjectMustBeSet
		}

		if _, dup := seen[obj.id]; dup || p.objects.Has(obj.id) {
			return errors.Wrapf(ErrDuplicateIdentifier, "object %q", obj.id)
		}

		seen[obj.id] = struct{}{}
	}

	for _, obj := range objects {
		if err := p.objects.Add(obj.id, obj); err != nil {
			return errors.Wrapf(ErrDuplicateIdentifier, "object %q", obj.id)
		}
	}

	return nil
}

// AddParameters inserts parameters into the registry, with the same
// uniqueness and ordering rules as Add applied to the parameter namespace.
func (p *Pipeline) AddParameters(parameters ...*Parameter) error {
	seen := make(map[string]struct{}, len(parameters))

	for _, param := range parameters {
		if param == nil {
			return ErrParameterMustBeSet
		}

		if _, dup := seen[param.id]; dup || p.parameters.Has(param.id) {
			return errors.Wrapf(ErrDuplicateIdentifier, "parameter %q", param.id)
		}

		seen[param.id] = struct{}{}
	}

	for _, param := range parameters {
		if err := p.parameters.Add(param.id, param); err != nil {
			return errors.Wrapf(ErrDuplicateIdentifier, "parameter %q", param.id)
		}
	}

	return nil
}

// Get returns the registered object with the given id.
func (p *Pipeline) Get(id string) (*Object, bool) {
	return p.objects.Get(id)
}

// GetParameter returns the registered parameter with the given id.
func (p *Pipeline) GetParameter(id string) (*Parameter, bool) {
	return p.parameters.Get(id)
}

// Objects returns the registered objects in insertion order.
func (p *Pipeline) Objects() []*Object {
	return p.objects.Values()
}

// Parameters returns the registered parameters in insertion order.
func (p *Pipeline) Parameters() []*Parameter {
	return p.parameters.Values()
}

// Render assembles the complete definition payload from the current registry
// state. It is a pure function of that state: rendering twice without a
// mutation in between yields identical payloads.
func (p *Pipeline) Render() (*model.Payload, error) {
	payload := &model.Payload{
		PipelineObjects:  make([]model.PipelineObject, 0, p.objects.Len()),
		ParameterObjects: make([]model.ParameterObject, 0, p.parameters.Len()),
	}

	for _, obj := range p.objects.Values() {
		rendered, err := obj.Render()
		if err != nil {
			return nil, errors.Wrap(err, "unable to render pipeline object")
		}

		payload.PipelineObjects = append(payload.PipelineObjects, rendered)
	}

	for _, param := range p.parameters.Values() {
		payload.ParameterObjects = append(payload.ParameterObjects, param.Render())
	}

	return payload, nil
}

// ParameterValues returns the {id, stringValue} records for every parameter
// that carries a default value, in insertion order. They accompany the
// payload on submission and activation.
func (p *Pipeline) ParameterValues() []model.ParameterValue {
	values := make([]model.ParameterValue, 0, p.parameters.Len())

	for _, param := range p.parameters.Values() {
		if value, ok := param.Value(); ok {
			values = append(values, model.ParameterValue{ID: param.ID(), StringValue: value})
		}
	}

	return values
}

// definition collects the attribute values of the Default object.
type definition struct {
	scheduleType        ScheduleType
	failureAndRerunMode FailureAndRerunMode
	role                string
	resourceRole        string
	logURI              string
}

// DefinitionOption configures the Default object built by Definition.
type DefinitionOption func(d *definition)

// WithScheduleType overrides the default cron schedule type.
func WithScheduleType(scheduleType ScheduleType) DefinitionOption {
	return func(d *definition) {
		d.scheduleType = scheduleType
	}
}

// WithFailureAndRerunMode overrides the default CASCADE mode.
func WithFailureAndRerunMode(mode FailureAndRerunMode) DefinitionOption {
	return func(d *definition) {
		d.failureAndRerunMode = mode
	}
}

// WithRole overrides the pipeline IAM role.
func WithRole(role string) DefinitionOption {
	return func(d *definition) {
		d.role = role
	}
}

// WithResourceRole overrides the resource IAM role.
func WithResourceRole(resourceRole string) DefinitionOption {
	return func(d *definition) {
		d.resourceRole = resourceRole
	}
}

// WithLogURI sets the pipelineLogUri attribute.
func WithLogURI(logURI string) DefinitionOption {
	return func(d *definition) {
		d.logURI = logURI
	}
}

// Definition builds the Default object wired to the given schedule. The
// object is returned for further attribute assignment and must be added to
// the pipeline like any other object.
func (p *Pipeline) Definition(schedule *Object, opts ...DefinitionOption) *Object {
	def := definition{
		scheduleType:        ScheduleTypeCron,
		failureAndRerunMode: FailureAndRerunModeCascade,
		role:                DefaultRole,
		resourceRole:        DefaultResourceRole,
	}

	for _, opt := range opts {
		opt(&def)
	}

	obj := NewDefault()
	obj.set("scheduleType", def.scheduleType)
	obj.set("failureAndRerunMode", def.failureAndRerunMode)

	if def.logURI != "" {
		obj.set("pipelineLogUri", def.logURI)
	}

	obj.set("role", def.role)
	obj.set("resourceRole", def.resourceRole)
	obj.set("schedule", schedule)

	return obj
}
