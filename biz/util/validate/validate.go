package validate

import (
	"reflect"
	"strings"

	"github.com/cloudwego/hertz/pkg/protocol"
	"github.com/go-playground/validator/v10"
)

// StructValidator plugs go-playground/validator into hertz binding, using
// the `validate` tag and reporting fields by their json name.
type StructValidator struct {
	validate *validator.Validate
}

func New() *StructValidator {
	v := validator.New()
	v.RegisterTagNameFunc(func(f reflect.StructField) string {
		name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &StructValidator{validate: v}
}

// ValidateStruct also accepts the reflect.Value hertz binding passes in.
func (v *StructValidator) ValidateStruct(obj interface{}) error {
	if rv, ok := obj.(reflect.Value); ok {
		if !rv.IsValid() || !rv.CanInterface() {
			return nil
		}
		obj = rv.Interface()
	}
	return v.validate.Struct(obj)
}

// Validate matches the hertz validator func, see server.WithCustomValidatorFunc.
func (v *StructValidator) Validate(_ *protocol.Request, obj interface{}) error {
	return v.ValidateStruct(obj)
}

func (v *StructValidator) Engine() interface{} {
	return v.validate
}

func (v *StructValidator) ValidateTag() string {
	return "validate"
}
