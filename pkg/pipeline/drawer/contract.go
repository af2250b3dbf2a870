package drawer

import (
	"github.com/askiada/go-datapipeline/pkg/pipeline"
)

// Drawer is an interface that defines the methods for drawing a pipeline
// definition.
type Drawer interface {
	// Draw creates a file with the definition's dependency graph.
	Draw(p *pipeline.Pipeline) error
}
