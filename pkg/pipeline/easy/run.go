package easy

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"os"
	"strings"

	"github.com/google/uuid"
	"github.com/pkg/errors"

	"github.com/askiada/go-datapipeline/pkg/pipeline"
	"github.com/askiada/go-datapipeline/pkg/pipeline/transport"
)

// DefaultEnvPrefix is the environment variable prefix for option lookups.
const DefaultEnvPrefix = "PIPELINE"

var (
	ErrNameMustBeSet = errors.New("-name must be set")
	// ErrMalformedOption is returned for -option values that are not in
	// KEY=VALUE format.
	ErrMalformedOption = errors.New("malformed option, use KEY=VALUE format")
)

// stringList collects repeatable flag values.
type stringList []string

func (s *stringList) String() string {
	return strings.Join(*s, ",")
}

func (s *stringList) Set(value string) error {
	*s = append(*s, value)

	return nil
}

// Run parses the command line, builds the pipeline, calls setup to fill it
// in, and either prints the definition (-dry-run) or creates it remotely
// (and activates it with -activate).
func Run(setup func(p *Pipeline) error) error {
	return RunArgs(context.Background(), os.Args[1:], os.Stdout, setup)
}

// RunArgs is Run with explicit arguments, context and output.
func RunArgs(ctx context.Context, args []string, out io.Writer, setup func(p *Pipeline) error) error {
	flags := flag.NewFlagSet("pipeline", flag.ContinueOnError)
	name := flags.String("name", "", "human readable name for the pipeline")
	uniqueID := flags.String("unique-id", "", "unique id for the pipeline")
	description := flags.String("description", "", "description of the pipeline")
	region := flags.String("aws-region", "us-west-2", "aws region to deploy in")
	activate := flags.Bool("activate", false, "activate the pipeline after creating it")
	dryRun := flags.Bool("dry-run", false, "print the definition payload without creating it")

	var optionFlags, configFiles stringList

	flags.Var(&optionFlags, "option", "an option value in KEY=VALUE format, repeatable")
	flags.Var(&configFiles, "config", "a YAML config file with default option values, repeatable")

	err := flags.Parse(args)
	if err != nil {
		return errors.Wrap(err, "unable to parse arguments")
	}

	if *name == "" {
		return ErrNameMustBeSet
	}

	if *uniqueID == "" {
		*uniqueID = *name + "-" + uuid.NewString()
	}

	values := make(map[string]string, len(optionFlags))

	for _, opt := range optionFlags {
		key, value, ok := strings.Cut(opt, "=")
		if !ok {
			return errors.Wrapf(ErrMalformedOption, "%q", opt)
		}

		values[key] = value
	}

	defaults := make(map[string]string)

	for _, cfgFile := range configFiles {
		cfg, err := LoadConfigFile(cfgFile)
		if err != nil {
			return err
		}

		for key, value := range cfg {
			defaults[key] = value
		}
	}

	options := NewOptions(values, defaults, DefaultEnvPrefix)

	pipe, err := New(*name, *uniqueID, options,
		pipeline.WithDescription(*description),
		pipeline.WithRegion(*region),
	)
	if err != nil {
		return err
	}

	err = setup(pipe)
	if err != nil {
		return errors.Wrap(err, "unable to set up pipeline")
	}

	if *dryRun {
		return printPayload(pipe, out)
	}

	client, err := transport.New(ctx, transport.Config{Region: *region})
	if err != nil {
		return err
	}

	pipelineID, err := client.Create(ctx, pipe.Pipeline)
	if err != nil {
		return err
	}

	fmt.Fprintf(out, "pipelineId: %s\n", pipelineID)

	if *activate {
		err = client.Activate(ctx, pipe.Pipeline)
		if err != nil {
			return err
		}
	}

	return nil
}

func printPayload(pipe *Pipeline, out io.Writer) error {
	if err := pipe.Validate().Err(); err != nil {
		return err
	}

	payload, err := pipe.Render()
	if err != nil {
		return errors.Wrap(err, "unable to render pipeline")
	}

	encoded, err := json.MarshalIndent(payload, "", "  ")
	if err != nil {
		return errors.Wrap(err, "unable to encode payload")
	}

	fmt.Fprintln(out, string(encoded))

	return nil
}
