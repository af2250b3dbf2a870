package pipeline

// Option configures a pipeline at construction.
type Option func(p *Pipeline)

// WithDescription sets the pipeline description.
func WithDescription(description string) Option {
	return func(p *Pipeline) {
		p.description = description
	}
}

// WithRegion sets the region the pipeline deploys to.
func WithRegion(region string) Option {
	return func(p *Pipeline) {
		p.region = region
	}
}

// ObjectOption configures an object at construction.
type ObjectOption func(o *Object)

// WithTypeTag overrides the type tag a variant constructor would otherwise
// assign.
func WithTypeTag(typeTag string) ObjectOption {
	return func(o *Object) {
		o.typeTag = typeTag
	}
}
