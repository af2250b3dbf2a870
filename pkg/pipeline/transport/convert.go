package transport

import (
	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/datapipeline/types"

	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

// toPipelineObjects maps rendered objects to their SDK shape.
func toPipelineObjects(objects []model.PipelineObject) []types.PipelineObject {
	out := make([]types.PipelineObject, 0, len(objects))

	for _, obj := range objects {
		out = append(out, types.PipelineObject{
			Id:     aws.String(obj.ID),
			Name:   aws.String(obj.Name),
			Fields: toFields(obj.Fields),
		})
	}

	return out
}

func toFields(fields []model.Field) []types.Field {
	out := make([]types.Field, 0, len(fields))

	for _, field := range fields {
		out = append(out, types.Field{
			Key:         aws.String(field.Key),
			StringValue: field.StringValue,
			RefValue:    field.RefValue,
		})
	}

	return out
}

// toParameterObjects maps rendered parameters to their SDK shape. Parameter
// fields are always literals, so only the string side carries over.
func toParameterObjects(parameters []model.ParameterObject) []types.ParameterObject {
	out := make([]types.ParameterObject, 0, len(parameters))

	for _, param := range parameters {
		attributes := make([]types.ParameterAttribute, 0, len(param.Fields))
		for _, field := range param.Fields {
			attributes = append(attributes, types.ParameterAttribute{
				Key:         aws.String(field.Key),
				StringValue: field.StringValue,
			})
		}

		out = append(out, types.ParameterObject{
			Id:         aws.String(param.ID),
			Attributes: attributes,
		})
	}

	return out
}

func toParameterValues(values []model.ParameterValue) []types.ParameterValue {
	out := make([]types.ParameterValue, 0, len(values))

	for _, value := range values {
		out = append(out, types.ParameterValue{
			Id:          aws.String(value.ID),
			StringValue: aws.String(value.StringValue),
		})
	}

	return out
}
