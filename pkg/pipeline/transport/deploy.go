package transport

import (
	"context"

	"golang.org/x/sync/errgroup"

	"github.com/askiada/go-datapipeline/pkg/pipeline"
)

// DeployAll creates every pipeline (and submits its definition) concurrently
// and waits for all of them. Each pipeline is touched by exactly one
// goroutine, so the single-writer rule for Pipeline instances holds.
func (c *Client) DeployAll(ctx context.Context, pipes ...*pipeline.Pipeline) error {
	errGrp, dCtx := errgroup.WithContext(ctx)

	for _, pipe := range pipes {
		localPipe := pipe
		errGrp.Go(func() error {
			_, err := c.Create(dCtx, localPipe)

			return err
		})
	}

	return errGrp.Wait()
}
