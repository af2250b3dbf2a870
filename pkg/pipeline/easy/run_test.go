package easy_test

import (
	"bytes"
	"context"
	"encoding/json"
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-datapipeline/pkg/pipeline/easy"
	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

func requiredOptionArgs() []string {
	return []string{
		"-option", "LOG_URI=s3://bucket/logs",
		"-option", "PIPELINE_ROLE=MyRole",
		"-option", "PIPELINE_RESOURCE_ROLE=MyResourceRole",
		"-option", "EC2_AMI=ami-123456",
		"-option", "EC2_KEYPAIR=my-keypair",
		"-option", "EC2_SUBNET=subnet-123456",
		"-option", "EC2_SECURITY_GROUP=sg-123456",
	}
}

func TestRunArgsDryRun(t *testing.T) {
	t.Parallel()

	args := append([]string{
		"-name", "MyPipeline",
		"-unique-id", "MyPipeline1",
		"-dry-run",
	}, requiredOptionArgs()...)

	var out bytes.Buffer

	err := easy.RunArgs(context.Background(), args, &out, func(p *easy.Pipeline) error {
		activity, err := p.ShellCommandActivity("MyActivity1")
		if err != nil {
			return err
		}

		return activity.Set("command", "echo hello")
	})
	require.NoError(t, err)

	var payload model.Payload

	require.NoError(t, json.Unmarshal(out.Bytes(), &payload))
	require.Len(t, payload.PipelineObjects, 2)
	assert.Equal(t, "Default", payload.PipelineObjects[0].ID)
	assert.Equal(t, "MyActivity1", payload.PipelineObjects[1].ID)
}

func TestRunArgsRequiresName(t *testing.T) {
	t.Parallel()

	err := easy.RunArgs(context.Background(), []string{"-dry-run"}, &bytes.Buffer{},
		func(p *easy.Pipeline) error { return nil })
	assert.ErrorIs(t, err, easy.ErrNameMustBeSet)
}

func TestRunArgsMalformedOption(t *testing.T) {
	t.Parallel()

	args := []string{"-name", "MyPipeline", "-option", "NO_EQUALS_SIGN", "-dry-run"}

	err := easy.RunArgs(context.Background(), args, &bytes.Buffer{},
		func(p *easy.Pipeline) error { return nil })
	assert.ErrorIs(t, err, easy.ErrMalformedOption)
}

func TestRunArgsConfigFileDefaults(t *testing.T) {
	t.Parallel()

	cfg := writeConfigFile(t)

	args := []string{
		"-name", "MyPipeline",
		"-unique-id", "MyPipeline1",
		"-config", cfg,
		"-option", "PIPELINE_ROLE=OverriddenRole",
		"-dry-run",
	}

	var out bytes.Buffer

	err := easy.RunArgs(context.Background(), args, &out, func(p *easy.Pipeline) error {
		role, _ := p.Options().Get(easy.OptionRole)
		assert.Equal(t, "OverriddenRole", role)

		return nil
	})
	require.NoError(t, err)
}

func writeConfigFile(t *testing.T) string {
	t.Helper()

	content := `LOG_URI: s3://bucket/logs
PIPELINE_ROLE: MyRole
PIPELINE_RESOURCE_ROLE: MyResourceRole
EC2_AMI: ami-123456
EC2_KEYPAIR: my-keypair
EC2_SUBNET: subnet-123456
EC2_SECURITY_GROUP: sg-123456
`

	path := filepath.Join(t.TempDir(), "options.yaml")
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	return path
}
