package transport

import (
	"context"
	"strings"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/config"
	"github.com/aws/aws-sdk-go-v2/credentials"
	"github.com/aws/aws-sdk-go-v2/service/datapipeline"
	"github.com/aws/aws-sdk-go-v2/service/datapipeline/types"
	"github.com/pkg/errors"

	"github.com/askiada/go-datapipeline/pkg/pipeline"
)

var (
	ErrPipelineMustBeSet  = errors.New("pipeline must be set")
	ErrPipelineNotCreated = errors.New("pipeline has no remote id, create it first")
	// ErrRemoteValidation is returned when the remote service rejects a
	// submitted definition.
	ErrRemoteValidation = errors.New("remote validation failed")
)

// Config holds the settings needed to reach the remote service. AccessKey
// and SecretKey are optional; when empty the SDK's default credential chain
// applies. Endpoint overrides the service endpoint, for local stacks.
type Config struct {
	Region    string
	AccessKey string
	SecretKey string
	Endpoint  string
}

// Client submits pipeline definitions to the remote orchestration API.
type Client struct {
	api dataPipelineAPI
}

// New creates a client for the given configuration.
func New(ctx context.Context, cfg Config) (*Client, error) {
	var optFns []func(*config.LoadOptions) error

	if cfg.Region != "" {
		optFns = append(optFns, config.WithRegion(cfg.Region))
	}

	if cfg.AccessKey != "" && cfg.SecretKey != "" {
		optFns = append(optFns, config.WithCredentialsProvider(
			credentials.NewStaticCredentialsProvider(cfg.AccessKey, cfg.SecretKey, ""),
		))
	}

	awsCfg, err := config.LoadDefaultConfig(ctx, optFns...)
	if err != nil {
		return nil, errors.Wrap(err, "unable to load aws config")
	}

	var apiOptFns []func(*datapipeline.Options)

	if cfg.Endpoint != "" {
		apiOptFns = append(apiOptFns, func(o *datapipeline.Options) {
			o.BaseEndpoint = aws.String(cfg.Endpoint)
		})
	}

	return &Client{api: datapipeline.NewFromConfig(awsCfg, apiOptFns...)}, nil
}

// Create registers the pipeline with the remote service, records the
// assigned pipeline id on pipe, and, when the pipeline already holds objects
// or parameters, submits its definition. It returns the remote id.
func (c *Client) Create(ctx context.Context, pipe *pipeline.Pipeline) (string, error) {
	if pipe == nil {
		return "", ErrPipelineMustBeSet
	}

	in := &datapipeline.CreatePipelineInput{
		Name:     aws.String(pipe.Name()),
		UniqueId: aws.String(pipe.UniqueID()),
	}
	if pipe.Description() != "" {
		in.Description = aws.String(pipe.Description())
	}

	out, err := c.api.CreatePipeline(ctx, in)
	if err != nil {
		return "", errors.Wrapf(err, "unable to create pipeline %q", pipe.Name())
	}

	pipe.SetID(aws.ToString(out.PipelineId))

	if len(pipe.Objects()) > 0 || len(pipe.Parameters()) > 0 {
		err = c.Update(ctx, pipe)
		if err != nil {
			return pipe.ID(), err
		}
	}

	return pipe.ID(), nil
}

// Update submits the pipeline's current definition. The definition is
// validated locally before anything goes over the wire.
func (c *Client) Update(ctx context.Context, pipe *pipeline.Pipeline) error {
	in, err := c.definitionInput(pipe)
	if err != nil {
		return err
	}

	out, err := c.api.PutPipelineDefinition(ctx, &datapipeline.PutPipelineDefinitionInput{
		PipelineId:       in.PipelineId,
		PipelineObjects:  in.PipelineObjects,
		ParameterObjects: in.ParameterObjects,
		ParameterValues:  in.ParameterValues,
	})
	if err != nil {
		return errors.Wrapf(err, "unable to put definition for pipeline %q", pipe.ID())
	}

	if out.Errored {
		return remoteValidationError(out.ValidationErrors)
	}

	return nil
}

// Validate asks the remote service to validate the pipeline's definition
// without storing it.
func (c *Client) Validate(ctx context.Context, pipe *pipeline.Pipeline) error {
	in, err := c.definitionInput(pipe)
	if err != nil {
		return err
	}

	out, err := c.api.ValidatePipelineDefinition(ctx, in)
	if err != nil {
		return errors.Wrapf(err, "unable to validate definition for pipeline %q", pipe.ID())
	}

	if out.Errored {
		return remoteValidationError(out.ValidationErrors)
	}

	return nil
}

// Activate starts the pipeline, passing along the default values of its
// parameters.
func (c *Client) Activate(ctx context.Context, pipe *pipeline.Pipeline) error {
	if pipe == nil {
		return ErrPipelineMustBeSet
	}

	if pipe.ID() == "" {
		return errors.Wrapf(ErrPipelineNotCreated, "pipeline %q", pipe.Name())
	}

	_, err := c.api.ActivatePipeline(ctx, &datapipeline.ActivatePipelineInput{
		PipelineId:      aws.String(pipe.ID()),
		ParameterValues: toParameterValues(pipe.ParameterValues()),
	})
	if err != nil {
		return errors.Wrapf(err, "unable to activate pipeline %q", pipe.ID())
	}

	return nil
}

// definitionInput validates, renders and converts the pipeline definition.
func (c *Client) definitionInput(pipe *pipeline.Pipeline) (*datapipeline.ValidatePipelineDefinitionInput, error) {
	if pipe == nil {
		return nil, ErrPipelineMustBeSet
	}

	if pipe.ID() == "" {
		return nil, errors.Wrapf(ErrPipelineNotCreated, "pipeline %q", pipe.Name())
	}

	result := pipe.Validate()
	if err := result.Err(); err != nil {
		return nil, err
	}

	payload, err := pipe.Render()
	if err != nil {
		return nil, errors.Wrap(err, "unable to render pipeline")
	}

	return &datapipeline.ValidatePipelineDefinitionInput{
		PipelineId:       aws.String(pipe.ID()),
		PipelineObjects:  toPipelineObjects(payload.PipelineObjects),
		ParameterObjects: toParameterObjects(payload.ParameterObjects),
		ParameterValues:  toParameterValues(pipe.ParameterValues()),
	}, nil
}

func remoteValidationError(validationErrors []types.ValidationError) error {
	msgs := make([]string, 0, len(validationErrors))
	for _, ve := range validationErrors {
		msgs = append(msgs, aws.ToString(ve.Id)+": "+strings.Join(ve.Errors, ", "))
	}

	return errors.Wrap(ErrRemoteValidation, strings.Join(msgs, "; "))
}
