package transport

import (
	"context"

	"github.com/aws/aws-sdk-go-v2/service/datapipeline"
)

// dataPipelineAPI is the slice of the SDK client the transport uses.
type dataPipelineAPI interface {
	CreatePipeline(ctx context.Context, params *datapipeline.CreatePipelineInput,
		optFns ...func(*datapipeline.Options)) (*datapipeline.CreatePipelineOutput, error)
	PutPipelineDefinition(ctx context.Context, params *datapipeline.PutPipelineDefinitionInput,
		optFns ...func(*datapipeline.Options)) (*datapipeline.PutPipelineDefinitionOutput, error)
	ActivatePipeline(ctx context.Context, params *datapipeline.ActivatePipelineInput,
		optFns ...func(*datapipeline.Options)) (*datapipeline.ActivatePipelineOutput, error)
	ValidatePipelineDefinition(ctx context.Context, params *datapipeline.ValidatePipelineDefinitionInput,
		optFns ...func(*datapipeline.Options)) (*datapipeline.ValidatePipelineDefinitionOutput, error)
}

var _ dataPipelineAPI = (*datapipeline.Client)(nil)
