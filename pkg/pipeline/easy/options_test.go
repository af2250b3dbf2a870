package easy_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-datapipeline/pkg/pipeline/easy"
)

func TestOptionsPrecedence(t *testing.T) {
	t.Setenv("TESTPREFIX_FROM_ENV", "env value")
	t.Setenv("TESTPREFIX_SHADOWED", "env wins over default")

	options := easy.NewOptions(
		map[string]string{"EXPLICIT": "explicit value", "SHADOWED2": "explicit wins"},
		map[string]string{"FROM_ENV": "default", "SHADOWED": "default", "ONLY_DEFAULT": "default value"},
		"TESTPREFIX",
	)
	t.Setenv("TESTPREFIX_SHADOWED2", "too late, folded at construction")

	got, ok := options.Get("EXPLICIT")
	require.True(t, ok)
	assert.Equal(t, "explicit value", got)

	got, ok = options.Get("FROM_ENV")
	require.True(t, ok)
	assert.Equal(t, "env value", got)

	got, ok = options.Get("SHADOWED")
	require.True(t, ok)
	assert.Equal(t, "env wins over default", got)

	got, ok = options.Get("SHADOWED2")
	require.True(t, ok)
	assert.Equal(t, "explicit wins", got)

	got, ok = options.Get("ONLY_DEFAULT")
	require.True(t, ok)
	assert.Equal(t, "default value", got)
}

func TestOptionsLiveEnvLookup(t *testing.T) {
	options := easy.NewOptions(nil, nil, "TESTPREFIX")

	_, ok := options.Get("UNDECLARED")
	require.False(t, ok)

	t.Setenv("TESTPREFIX_UNDECLARED", "set after construction")

	got, ok := options.Get("UNDECLARED")
	require.True(t, ok)
	assert.Equal(t, "set after construction", got)
}

func TestOptionsSet(t *testing.T) {
	t.Parallel()

	options := easy.NewOptions(nil, nil, "")
	assert.False(t, options.Has("KEY"))

	options.Set("KEY", "value")

	got, ok := options.Get("KEY")
	require.True(t, ok)
	assert.Equal(t, "value", got)
}

func TestOptionsMissing(t *testing.T) {
	t.Parallel()

	options := easy.NewOptions(map[string]string{"A": "1", "C": "3"}, nil, "")

	assert.Equal(t, []string{"B", "D"}, options.Missing("A", "B", "C", "D"))
	assert.Empty(t, options.Missing("A", "C"))
}

func TestLoadConfigFile(t *testing.T) {
	t.Parallel()

	path := filepath.Join(t.TempDir(), "options.yaml")
	content := "LOG_URI: s3://bucket/logs\nPIPELINE_ROLE: MyRole\n"
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))

	values, err := easy.LoadConfigFile(path)
	require.NoError(t, err)

	expected := map[string]string{
		"LOG_URI":       "s3://bucket/logs",
		"PIPELINE_ROLE": "MyRole",
	}
	assert.Equal(t, expected, values)
}

func TestLoadConfigFileMissing(t *testing.T) {
	t.Parallel()

	_, err := easy.LoadConfigFile(filepath.Join(t.TempDir(), "nope.yaml"))
	assert.Error(t, err)
}
