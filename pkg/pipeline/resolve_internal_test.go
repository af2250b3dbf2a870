package pipeline

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

func TestScalarString(t *testing.T) {
	t.Parallel()

	tcs := map[string]struct {
		value      any
		expected   string
		expectedOK bool
	}{
		"string":          {value: "plain", expected: "plain", expectedOK: true},
		"named string":    {value: ScheduleTypeCron, expected: "cron", expectedOK: true},
		"bool":            {value: true, expected: "true", expectedOK: true},
		"int":             {value: -3, expected: "-3", expectedOK: true},
		"int8":            {value: int8(8), expected: "8", expectedOK: true},
		"uint32":          {value: uint32(9), expected: "9", expectedOK: true},
		"float32":         {value: float32(0.1), expected: "0.1", expectedOK: true},
		"float64":         {value: 2.25, expected: "2.25", expectedOK: true},
		"timestamp":       {value: time.Date(2024, 3, 1, 12, 30, 0, 0, time.UTC), expected: "2024-03-01T12:30:00", expectedOK: true},
		"timestamp in tz": {value: time.Date(2024, 3, 1, 13, 30, 0, 0, time.FixedZone("CET", 3600)), expected: "2024-03-01T12:30:00", expectedOK: true},
		"map":             {value: map[string]string{}, expectedOK: false},
		"nil":             {value: nil, expectedOK: false},
		"struct":          {value: struct{}{}, expectedOK: false},
	}

	for name, tc := range tcs {
		tc := tc

		t.Run(name, func(t *testing.T) {
			t.Parallel()

			got, ok := scalarString(tc.value)
			require.Equal(t, tc.expectedOK, ok)
			assert.Equal(t, tc.expected, got)
		})
	}
}

func TestResolveAttributeSequence(t *testing.T) {
	t.Parallel()

	fields, err := resolveAttribute("scriptArgument", []any{"one", 2, true})
	require.NoError(t, err)

	expected := []model.Field{
		model.StringField("scriptArgument", "one"),
		model.StringField("scriptArgument", "2"),
		model.StringField("scriptArgument", "true"),
	}
	assert.Equal(t, expected, fields)
}

func TestResolveAttributeRejectsNestedSequence(t *testing.T) {
	t.Parallel()

	_, err := resolveAttribute("attr", [][]string{{"a"}})
	assert.ErrorIs(t, err, ErrInvalidAttributeType)
}

func TestResolveAttributeEmptySequence(t *testing.T) {
	t.Parallel()

	fields, err := resolveAttribute("attr", []string{})
	require.NoError(t, err)
	assert.Empty(t, fields)
}

func TestResolveSingleNilReference(t *testing.T) {
	t.Parallel()

	_, _, err := resolveSingle("runsOn", (*Object)(nil))
	assert.ErrorIs(t, err, ErrInvalidAttributeType)
}

func TestResolveSingleParameterReference(t *testing.T) {
	t.Parallel()

	field, ok, err := resolveSingle("command", NewStringParameter("myShellCmd"))
	require.NoError(t, err)
	require.True(t, ok)
	assert.Equal(t, model.RefField("command", "myShellCmd"), field)
}
