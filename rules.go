package objcase

import (
	"strconv"
	"strings"

	"github.com/asaskevich/govalidator"
	"github.com/getkin/kin-openapi/openapi3"
	validation "github.com/go-ozzo/ozzo-validation/v4"

	"github.com/Gobd/objcase/transform"
)

type (
	// Rule is a check over a value tree that can also document itself on an
	// OpenAPI schema. Every Rule is a [validation.Rule].
	Rule interface {
		Validate(value any) error
		Describe(name string, schema *openapi3.Schema, ref *openapi3.SchemaRef) error
	}

	// ValidationErrors maps the dotted path of each offending key (e.g.
	// "items.0.fooBar") to its error. It is an alias for
	// [validation.Errors] from ozzo-validation.
	ValidationErrors = validation.Errors
)

var (
	ErrKeyNotSnakeCase = validation.NewError("validation_key_snake_case", "key must be snake_case")
	ErrKeyNotCamelCase = validation.NewError("validation_key_camel_case", "key must be camelCase")
	ErrUndefined       = validation.NewError("validation_undefined", "must not be undefined")
)

var (
	// SnakeCaseKeys requires every object key in the tree to be lower case.
	SnakeCaseKeys Rule = &keyRule{
		desc: "Object keys are snake_case.",
		check: func(key string, _ Value) error {
			if !govalidator.IsLowerCase(key) {
				return ErrKeyNotSnakeCase
			}
			return nil
		},
	}

	// CamelCaseKeys requires every object key in the tree to contain no
	// separator followed by a letter.
	CamelCaseKeys Rule = &keyRule{
		desc: "Object keys are camelCase.",
		check: func(key string, _ Value) error {
			if transform.SnakeToCamel(key) != key {
				return ErrKeyNotCamelCase
			}
			return nil
		},
	}

	// NoUndefined requires that no object key in the tree holds undefined.
	// [RemoveUndefined] makes any tree pass it.
	NoUndefined Rule = &keyRule{
		desc: "Undefined members are not allowed.",
		check: func(_ string, v Value) error {
			if v.IsUndefined() {
				return ErrUndefined
			}
			return nil
		},
	}
)

// Validate applies rules to value in order and returns the first failure.
// value may be a [Value], an [*Object], or any Go data accepted by [Of].
func Validate(value any, rules ...Rule) error {
	return validation.Validate(value, convertRules(rules...)...)
}

func convertRules(rules ...Rule) []validation.Rule {
	vRules := make([]validation.Rule, len(rules))
	for i := range rules {
		vRules[i] = validation.Rule(rules[i])
	}
	return vRules
}

// keyRule visits every object member of a tree and reports the members
// check rejects, keyed by path.
type keyRule struct {
	desc  string
	check func(key string, v Value) error
}

func (r *keyRule) Describe(_ string, _ *openapi3.Schema, ref *openapi3.SchemaRef) error {
	if ref.Value.Description != "" && !strings.HasSuffix(ref.Value.Description, " ") {
		ref.Value.Description += " "
	}
	ref.Value.Description += r.desc
	return nil
}

func (r *keyRule) Validate(value any) error {
	v, err := Of(value)
	if err != nil {
		return err
	}
	errs := ValidationErrors{}
	r.walk(v, "", errs)
	if len(errs) > 0 {
		return errs
	}
	return nil
}

func (r *keyRule) walk(v Value, path string, errs ValidationErrors) {
	switch v.kind {
	case KindObject:
		for _, key := range v.obj.keys {
			elem := v.obj.vals[key]
			p := joinPath(path, key)
			if err := r.check(key, elem); err != nil {
				errs[p] = err
			}
			r.walk(elem, p, errs)
		}
	case KindArray:
		for i, elem := range v.arr {
			r.walk(elem, joinPath(path, strconv.Itoa(i)), errs)
		}
	}
}

func joinPath(path, key string) string {
	if path == "" {
		return key
	}
	return path + "." + key
}
