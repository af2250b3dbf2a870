package pipeline_test

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/askiada/go-datapipeline/pkg/pipeline"
	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

func TestParameterFields(t *testing.T) {
	t.Parallel()

	param := pipeline.NewStringParameter("MyParam1",
		pipeline.WithValue("Here is the value I am using"),
		pipeline.WithParameterDescription("This value is extremely important"),
		pipeline.WithWatermark("Choose a value between 0 and 99."),
	)

	expected := []model.Field{
		model.StringField("type", "String"),
		model.StringField("value", "Here is the value I am using"),
		model.StringField("description", "This value is extremely important"),
		model.StringField("watermark", "Choose a value between 0 and 99."),
	}
	assert.Equal(t, expected, param.Fields())
}

func TestParameterFieldsOmitsUnset(t *testing.T) {
	t.Parallel()

	param := pipeline.NewIntegerParameter("myOccurrences")

	expected := []model.Field{
		model.StringField("type", "Integer"),
	}
	assert.Equal(t, expected, param.Fields())
}

func TestParameterEmptyValueIsKept(t *testing.T) {
	t.Parallel()

	param := pipeline.NewStringParameter("myFlag", pipeline.WithValue(""))

	value, ok := param.Value()
	require.True(t, ok)
	assert.Empty(t, value)

	expected := []model.Field{
		model.StringField("type", "String"),
		model.StringField("value", ""),
	}
	assert.Equal(t, expected, param.Fields())
}

func TestParameterExpr(t *testing.T) {
	t.Parallel()

	param := pipeline.NewStringParameter("myShellCmd")
	assert.Equal(t, "#{myShellCmd}", param.Expr())
}

func TestParameterRender(t *testing.T) {
	t.Parallel()

	param := pipeline.NewDoubleParameter("myRatio", pipeline.WithValue("0.5"))

	rendered := param.Render()
	assert.Equal(t, "myRatio", rendered.ID)
	assert.Equal(t, model.StringField("type", "Double"), rendered.Fields[0])
}
