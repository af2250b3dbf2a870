package drawer

import (
	"fmt"
	"io"
	"os"
	"strings"
	"text/template"

	"github.com/dominikbraun/graph"
	"github.com/pkg/errors"
	"gopkg.in/go-playground/colors.v1" //nolint

	"github.com/askiada/go-datapipeline/pkg/pipeline"
)

// DOTDrawer renders a pipeline definition's dependency graph as a Graphviz
// DOT file. Vertices are filled with a colour per object category (activity,
// resource, data node, schedule, action, parameter) and edges are labelled
// with the referencing attribute key.
type DOTDrawer struct {
	dotFileName string
}

// NewDOTDrawer creates a new DOT drawer writing to the given file.
func NewDOTDrawer(dotFileName string) *DOTDrawer {
	return &DOTDrawer{dotFileName: dotFileName}
}

// Draw creates a DOT file with the definition graph.
func (d *DOTDrawer) Draw(p *pipeline.Pipeline) error {
	file, err := os.Create(d.dotFileName)
	if err != nil {
		return errors.Wrapf(err, "unable to create file %s", d.dotFileName)
	}
	defer file.Close()

	err = WriteDOT(p, file)
	if err != nil {
		return errors.Wrapf(err, "unable to write dot file %s", d.dotFileName)
	}

	return nil
}

// WriteDOT renders the definition graph of p as DOT.
func WriteDOT(p *pipeline.Pipeline, wrt io.Writer) error {
	gra, err := p.Graph()
	if err != nil {
		return errors.Wrap(err, "unable to build definition graph")
	}

	err = colourVertices(gra)
	if err != nil {
		return errors.Wrap(err, "unable to colour vertices")
	}

	err = dot(gra, wrt)
	if err != nil {
		return errors.Wrap(err, "unable to render dot")
	}

	return nil
}

// colourVertices fills every vertex with its category colour. Vertex
// properties share their attribute maps with the graph, so mutating them
// here is enough.
func colourVertices(gra graph.Graph[string, string]) error {
	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex := range adjacencyMap {
		_, properties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return errors.Wrap(err, "unable to get vertex properties")
		}

		hex, err := categoryColour(properties.Attributes)
		if err != nil {
			return err
		}

		properties.Attributes["tooltip"] = properties.Attributes["type"]
		delete(properties.Attributes, "type")
		delete(properties.Attributes, "kind")
		properties.Attributes["style"] = "filled"
		properties.Attributes["fillcolor"] = hex
	}

	return nil
}

// categoryColour maps an object category to a fill colour.
func categoryColour(attributes map[string]string) (string, error) {
	typeTag := attributes["type"]

	var red, green, blue uint8

	switch {
	case attributes["kind"] == "parameter":
		red, green, blue = 216, 191, 216
	case strings.Contains(typeTag, "Activity"):
		red, green, blue = 255, 179, 102
	case strings.Contains(typeTag, "DataNode"):
		red, green, blue = 135, 206, 235
	case typeTag == "Ec2Resource" || typeTag == "EmrCluster":
		red, green, blue = 144, 238, 144
	case typeTag == "Schedule":
		red, green, blue = 255, 255, 153
	case typeTag == "SnsAlarm" || typeTag == "Terminate":
		red, green, blue = 255, 153, 153
	default:
		red, green, blue = 211, 211, 211
	}

	colour, err := colors.RGB(red, green, blue) //nolint
	if err != nil {
		return "", errors.Wrap(err, "unable to get colour")
	}

	return colour.ToHEX().String(), nil
}

//nolint:lll //this is a template
const dotTemplate = `strict {{.GraphType}} {
	{{range $k, $v := .Attributes}}
		{{$k}}="{{$v}}";
	{{end}}
	{{range $s := .Statements}}
		"{{.Source}}" {{if .Target}}{{$.EdgeOperator}} "{{.Target}}" [ {{range $k, $v := .EdgeAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.EdgeWeight}} ]{{else}}[ {{range $k, $v := .SourceAttributes}}{{$k}}="{{$v}}", {{end}} weight={{.SourceWeight}} ]{{end}};
	{{end}}
	}
	`

type description struct {
	GraphType    string
	Attributes   map[string]string
	EdgeOperator string
	Statements   []statement
}

type statement struct {
	Source           interface{}
	Target           interface{}
	SourceAttributes map[string]string
	EdgeAttributes   map[string]string
	SourceWeight     int
	EdgeWeight       int
}

func dot[K comparable, T any](g graph.Graph[K, T], wrt io.Writer, options ...func(*description)) error {
	desc, err := generateDOT(g, options...)
	if err != nil {
		return fmt.Errorf("failed to generate DOT description: %w", err)
	}

	return renderDOT(wrt, desc)
}

// GraphAttribute is a functional option for the [WriteDOT] method.
func GraphAttribute(key, value string) func(*description) {
	return func(d *description) {
		d.Attributes[key] = value
	}
}

func generateDOT[K comparable, T any](gra graph.Graph[K, T], options ...func(*description)) (description, error) {
	desc := description{
		GraphType:    "graph",
		Attributes:   make(map[string]string),
		EdgeOperator: "--",
		Statements:   make([]statement, 0),
	}

	for _, option := range options {
		option(&desc)
	}

	if gra.Traits().IsDirected {
		desc.GraphType = "digraph"
		desc.EdgeOperator = "->"
	}

	adjacencyMap, err := gra.AdjacencyMap()
	if err != nil {
		return desc, errors.Wrap(err, "unable to get adjacency map")
	}

	for vertex, adjacencies := range adjacencyMap {
		_, sourceProperties, err := gra.VertexWithProperties(vertex)
		if err != nil {
			return desc, errors.Wrap(err, "unable to get vertex properties")
		}

		stmt := statement{
			Source:           vertex,
			SourceWeight:     sourceProperties.Weight,
			SourceAttributes: sourceProperties.Attributes,
		}
		desc.Statements = append(desc.Statements, stmt)

		for adjacency, edge := range adjacencies {
			stmt := statement{
				Source:         vertex,
				Target:         adjacency,
				EdgeWeight:     edge.Properties.Weight,
				EdgeAttributes: edge.Properties.Attributes,
			}
			desc.Statements = append(desc.Statements, stmt)
		}
	}

	return desc, nil
}

func renderDOT(wrt io.Writer, desc description) error {
	tpl, err := template.New("dotTemplate").Parse(dotTemplate)
	if err != nil {
		return fmt.Errorf("failed to parse template: %w", err)
	}

	err = tpl.Execute(wrt, desc)
	if err != nil {
		return errors.Wrap(err, "unable to execute template")
	}

	return nil
}

var _ Drawer = (*DOTDrawer)(nil)
