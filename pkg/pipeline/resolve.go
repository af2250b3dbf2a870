package pipeline

import (
	"reflect"
	"strconv"
	"time"

	"github.com/pkg/errors"

	"github.com/askiada/go-datapipeline/pkg/pipeline/model"
)

// dateTimeLayout is the timestamp format the remote service expects.
const dateTimeLayout = "2006-01-02T15:04:05"

// resolveAttribute turns one attribute value into its rendered fields. A
// scalar becomes a single literal field, a Referencer becomes a single
// reference field carrying the target's id, and a slice expands to one field
// per element in element order. The target of a reference does not need to
// be registered anywhere yet; dangling references are caught by Validate.
func resolveAttribute(key string, value any) ([]model.Field, error) {
	if field, ok, err := resolveSingle(key, value); err != nil {
		return nil, err
	} else if ok {
		return []model.Field{field}, nil
	}

	rv := reflect.ValueOf(value)
	if !rv.IsValid() || (rv.Kind() != reflect.Slice && rv.Kind() != reflect.Array) {
		return nil, errors.Wrapf(ErrInvalidAttributeType, "attribute %q has unsupported type %T", key, value)
	}

	fields := make([]model.Field, 0, rv.Len())

	for i := 0; i < rv.Len(); i++ {
		element := rv.Index(i).Interface()

		field, ok, err := resolveSingle(key, element)
		if err != nil {
			return nil, err
		}

		if !ok {
			return nil, errors.Wrapf(ErrInvalidAttributeType,
				"attribute %q element %d has unsupported type %T", key, i, element)
		}

		fields = append(fields, field)
	}

	return fields, nil
}

// resolveSingle resolves one scalar or reference. It returns ok=false for
// values that are neither, so the caller can try sequence expansion.
func resolveSingle(key string, value any) (model.Field, bool, error) {
	if ref, ok := value.(Referencer); ok {
		if reflect.ValueOf(ref).Kind() == reflect.Ptr && reflect.ValueOf(ref).IsNil() {
			return model.Field{}, false, errors.Wrapf(ErrInvalidAttributeType, "attribute %q is a nil reference", key)
		}

		return model.RefField(key, ref.RefID()), true, nil
	}

	literal, ok := scalarString(value)
	if !ok {
		return model.Field{}, false, nil
	}

	return model.StringField(key, literal), true, nil
}

// scalarString renders a scalar as its wire string form. Booleans are
// lowercased and timestamps use the remote service's layout. Named string,
// bool and numeric kinds (such as the keyword types) are accepted through
// reflection.
func scalarString(value any) (string, bool) {
	if ts, ok := value.(time.Time); ok {
		return ts.UTC().Format(dateTimeLayout), true
	}

	rv := reflect.ValueOf(value)

	switch rv.Kind() {
	case reflect.String:
		return rv.String(), true
	case reflect.Bool:
		return strconv.FormatBool(rv.Bool()), true
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return strconv.FormatInt(rv.Int(), 10), true
	case reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		return strconv.FormatUint(rv.Uint(), 10), true
	case reflect.Float32:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 32), true
	case reflect.Float64:
		return strconv.FormatFloat(rv.Float(), 'f', -1, 64), true
	default:
		return "", false
	}
}
