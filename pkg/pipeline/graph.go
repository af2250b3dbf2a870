package pipeline

import (
	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"

	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

// Graph builds the directed dependency graph of the definition: one vertex
// per registered object and parameter, one edge per reference field, the
// edge labelled with the referencing attribute key. References to ids that
// are not registered are skipped here; reporting them is Validate's job.
func (p *Pipeline) Graph() (graph.Graph[string, string], error) {
	gra := graph.New(graph.StringHash, graph.Directed())

	for _, obj := range p.objects.Values() {
		err := gra.AddVertex(obj.id, graph.VertexAttribute(model.FieldKeyType, obj.typeTag))
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, errors.Wrapf(err, "unable to add vertex %q", obj.id)
		}
	}

	for _, param := range p.parameters.Values() {
		err := gra.AddVertex(param.id,
			graph.VertexAttribute(model.FieldKeyType, string(param.typeTag)),
			graph.VertexAttribute("kind", "parameter"),
		)
		if err != nil && !errors.Is(err, graph.ErrVertexAlreadyExists) {
			return nil, errors.Wrapf(err, "unable to add vertex %q", param.id)
		}
	}

	for _, obj := range p.objects.Values() {
		fields, err := obj.Fields()
		if err != nil {
			return nil, errors.Wrap(err, "unable to project object fields")
		}

		for _, field := range fields {
			if !field.IsRef() {
				continue
			}

			err := gra.AddEdge(obj.id, field.Value(), graph.EdgeAttribute("label", field.Key))
			if errors.Is(err, graph.ErrEdgeAlreadyExists) || errors.Is(err, graph.ErrVertexNotFound) {
				continue
			}

			if err != nil {
				return nil, errors.Wrapf(err, "unable to add edge from %s to %s", obj.id, field.Value())
			}
		}
	}

	return gra, nil
}
