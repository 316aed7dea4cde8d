package loader

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/jonathan/skills-matrix/internal/types"
	"github.com/mitchellh/mapstructure"
)

var (
	validate = newValidator()

	levelValueType = reflect.TypeOf(types.LevelValue{})
	levelTupleType = reflect.TypeOf(types.LevelTuple{})
)

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field paths with the YAML key names.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("mapstructure"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// levelHook turns YAML level sequences and scalars into LevelTuple/LevelValue.
func levelHook(_ reflect.Type, to reflect.Type, data any) (any, error) {
	switch to {
	case levelTupleType:
		return types.ParseLevelTuple(data)
	case levelValueType:
		return types.ParseLevelValue(data)
	}
	return data, nil
}

// decode maps generic YAML data onto a model struct. Weak typing lets
// textual map keys such as "1" land in map[int]string.
func decode(input, out any) error {
	dec, err := mapstructure.NewDecoder(&mapstructure.DecoderConfig{
		DecodeHook:       levelHook,
		WeaklyTypedInput: true,
		Result:           out,
	})
	if err != nil {
		return err
	}
	return dec.Decode(input)
}

// checkFields runs the shape rules in the validate tags of v and describes
// the first failure relative to prefix. Key presence is checked on the raw
// document with requireKeys.
func checkFields(v any, prefix string) error {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) || len(verrs) == 0 {
		return err
	}
	fe := verrs[0]
	field := joinPath(prefix, trimRoot(fe.Namespace()))
	rule := fe.Tag()
	if fe.Param() != "" {
		rule += "=" + fe.Param()
	}
	return fmt.Errorf("invalid field %s: failed %s check", field, rule)
}

// trimRoot drops the struct type name validator puts in front of a namespace.
func trimRoot(namespace string) string {
	if i := strings.IndexByte(namespace, '.'); i >= 0 {
		return namespace[i+1:]
	}
	return namespace
}

func joinPath(prefix, field string) string {
	switch {
	case prefix == "":
		return field
	case field == "":
		return prefix
	default:
		return prefix + "." + field
	}
}

// requireKeys reports the first key absent from m.
func requireKeys(m map[string]any, prefix string, keys ...string) error {
	for _, k := range keys {
		if _, ok := m[k]; !ok {
			return fmt.Errorf("missing required field: %s", joinPath(prefix, k))
		}
	}
	return nil
}

// requireEach applies requireKeys to every mapping in a list. Values of any
// other shape are left to decode.
func requireEach(v any, prefix string, keys ...string) error {
	items, ok := v.([]any)
	if !ok {
		return nil
	}
	for i, item := range items {
		fields, ok := item.(map[string]any)
		if !ok {
			continue
		}
		if err := requireKeys(fields, fmt.Sprintf("%s[%d]", prefix, i), keys...); err != nil {
			return err
		}
	}
	return nil
}
