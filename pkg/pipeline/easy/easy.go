package easy

import (
	"fmt"
	"strings"

	"github.com/pkg/errors"

	"github.com/askiada/go-datapipeline/pkg/pipeline"
)

// Option keys a pipeline build cannot run without.
const (
	OptionLogURI         = "LOG_URI"
	OptionLogURITemplate = "LOG_URI_TEMPLATE"
	OptionRole           = "PIPELINE_ROLE"
	OptionResourceRole   = "PIPELINE_RESOURCE_ROLE"
	OptionEC2AMI         = "EC2_AMI"
	OptionEC2KeyPair     = "EC2_KEYPAIR"
	OptionEC2Subnet      = "EC2_SUBNET"
	OptionEC2Security    = "EC2_SECURITY_GROUP"
)

// RequiredOptions lists the option keys that must be resolvable before a
// pipeline can be built.
var RequiredOptions = []string{
	OptionLogURI,
	OptionRole,
	OptionResourceRole,
	OptionEC2AMI,
	OptionEC2KeyPair,
	OptionEC2Subnet,
	OptionEC2Security,
}

// ErrMissingOptions is returned when required options are not set.
var ErrMissingOptions = errors.New("required options are not set")

// DefaultScheduleID is the id used for the schedule when none is given.
const DefaultScheduleID = "DefaultSchedule"

// Pipeline wraps a pipeline.Pipeline with option resolution and get-or-create
// helpers for the common object shapes.
type Pipeline struct {
	*pipeline.Pipeline

	options *Options
}

// New creates an easy pipeline. LOG_URI is expanded from LOG_URI_TEMPLATE
// when absent, required options are checked, and the Default object is
// created up front so every later object inherits its settings.
func New(name, uniqueID string, options *Options, opts ...pipeline.Option) (*Pipeline, error) {
	pipe := &Pipeline{
		Pipeline: pipeline.New(name, uniqueID, opts...),
		options:  options,
	}

	if !options.Has(OptionLogURI) {
		if tpl, ok := options.Get(OptionLogURITemplate); ok {
			uri := strings.ReplaceAll(tpl, "{region}", pipe.Region())
			uri = strings.ReplaceAll(uri, "{pipeline_name}", name)
			options.Set(OptionLogURI, uri)
		}
	}

	if missing := options.Missing(RequiredOptions...); len(missing) > 0 {
		return nil, errors.Wrap(ErrMissingOptions, strings.Join(missing, ", "))
	}

	_, err := pipe.Default()
	if err != nil {
		return nil, err
	}

	return pipe, nil
}

// Options returns the option set backing this pipeline.
func (p *Pipeline) Options() *Options {
	return p.options
}

func (p *Pipeline) option(key string) string {
	value, _ := p.options.Get(key)

	return value
}

// ensure returns the object with the given id, building and registering it
// on first use.
func (p *Pipeline) ensure(id string, build func() (*pipeline.Object, error)) (*pipeline.Object, error) {
	if obj, ok := p.Get(id); ok {
		return obj, nil
	}

	obj, err := build()
	if err != nil {
		return nil, err
	}

	err = p.Add(obj)
	if err != nil {
		return nil, err
	}

	return obj, nil
}

func setAttributes(obj *pipeline.Object, attrs []attribute) (*pipeline.Object, error) {
	for _, attr := range attrs {
		err := obj.Set(attr.key, attr.value)
		if err != nil {
			return nil, errors.Wrapf(err, "unable to set attribute on %q", obj.ID())
		}
	}

	return obj, nil
}

type attribute struct {
	key   string
	value any
}

// Default returns the Default object, creating it on first use. Its
// attributes act as fallbacks inherited by every other object.
func (p *Pipeline) Default() (*pipeline.Object, error) {
	return p.ensure("Default", func() (*pipeline.Object, error) {
		return setAttributes(pipeline.NewDefault(), []attribute{
			{"scheduleType", pipeline.ScheduleTypeOnDemand},
			{"failureAndRerunMode", pipeline.FailureAndRerunModeCascade},
			{"pipelineLogUri", p.option(OptionLogURI)},
			{"role", p.option(OptionRole)},
			{"resourceRole", p.option(OptionResourceRole)},
		})
	})
}

// ShellCommandActivity returns the ShellCommandActivity with the given id,
// creating it on first use. Callers set the command attribute, and runsOn or
// workerGroup to pick where it runs.
func (p *Pipeline) ShellCommandActivity(id string) (*pipeline.Object, error) {
	return p.ensure(id, func() (*pipeline.Object, error) {
		return setAttributes(pipeline.NewShellCommandActivity(id, id), []attribute{
			{"maximumRetries", 0},
		})
	})
}

// Schedule returns the schedule with the given id, creating it on first use.
// Creating it also switches the Default object to cron scheduling and wires
// the schedule in as the default. Callers should set the period and
// startDateTime attributes.
func (p *Pipeline) Schedule(id string) (*pipeline.Object, error) {
	schedule, err := p.ensure(id, func() (*pipeline.Object, error) {
		return pipeline.NewSchedule(id, id), nil
	})
	if err != nil {
		return nil, err
	}

	def, err := p.Default()
	if err != nil {
		return nil, err
	}

	_, err = setAttributes(def, []attribute{
		{"scheduleType", pipeline.ScheduleTypeCron},
		{"schedule", schedule},
	})
	if err != nil {
		return nil, err
	}

	return schedule, nil
}

// Ec2Resource returns the Ec2Resource with the given id, creating it on
// first use from the EC2_* options. No further attributes are needed.
func (p *Pipeline) Ec2Resource(id string) (*pipeline.Object, error) {
	return p.ensure(id, func() (*pipeline.Object, error) {
		return setAttributes(pipeline.NewEc2Resource(id, id), []attribute{
			{"actionOnTaskFailure", pipeline.ActionOnTaskFailureTerminate},
			{"actionOnResourceFailure", pipeline.ActionOnResourceFailureRetryAll},
			{"maximumRetries", 1},
			{"terminateAfter", "1 hours"},
			{"imageId", p.option(OptionEC2AMI)},
			{"keyPair", p.option(OptionEC2KeyPair)},
			{"subnetId", p.option(OptionEC2Subnet)},
			{"securityGroupIds", p.option(OptionEC2Security)},
		})
	})
}

// SnsAlarm returns the SnsAlarm with the given id, creating it on first use.
// Callers set the subject, message and topicArn attributes.
func (p *Pipeline) SnsAlarm(id string) (*pipeline.Object, error) {
	return p.ensure(id, func() (*pipeline.Object, error) {
		return setAttributes(pipeline.NewSnsAlarm(id, id), []attribute{
			{"role", p.option(OptionRole)},
		})
	})
}

// SnsFailureHandler returns an SnsAlarm preconfigured as an onFail handler:
// the subject and message show the pipeline name, execution status, schedule
// date, and a link to the console dashboard. Callers only set topicArn.
func (p *Pipeline) SnsFailureHandler(id string) (*pipeline.Object, error) {
	const dateFmt = "#{format(node.@scheduledStartTime,'YYYY-MM-dd')}"

	message := fmt.Sprintf(`Pipeline: %s
Status: #{node.@status}
Scheduled Time: #{node.@scheduledStartTime}

Pipeline dashboard:
https://console.aws.amazon.com/datapipeline/home?region=%s#ExecutionDetailsPlace:pipelineId=#{@pipelineId}&show=latest
`, p.Name(), p.Region())

	return p.ensure(id, func() (*pipeline.Object, error) {
		return setAttributes(pipeline.NewSnsAlarm(id, id), []attribute{
			{"role", p.option(OptionRole)},
			{"subject", fmt.Sprintf("%s FAILED on %s", p.Name(), dateFmt)},
			{"message", message},
		})
	})
}
