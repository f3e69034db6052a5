package validators

import (
	"errors"
	"reflect"
	"regexp"
	"strings"

	"github.com/go-playground/validator/v10"
	nonstandard "github.com/go-playground/validator/v10/non-standard/validators"

	apperrors "todo-service.com/todo-service/internal/errors"
)

// uniMailDomain is a coarse gate only; the assignee registry applies the
// full address policy.
var uniMailDomain = regexp.MustCompile(`^[^@\s]+@(?:[a-z0-9-]+\.)*uni-stuttgart\.de$`)

var reasons = map[string]string{
	"required": "is required",
	"notblank": "must not be blank",
	"unimail":  "must be a uni-stuttgart.de address",
}

// RequestValidator plugs go-playground/validator into echo's Context.Validate.
type RequestValidator struct {
	validate *validator.Validate
}

func New() *RequestValidator {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(jsonName)
	_ = v.RegisterValidation("notblank", nonstandard.NotBlank)
	_ = v.RegisterValidation("unimail", UniMail)

	return &RequestValidator{validate: v}
}

// Validate returns the first violated rule as a ValidationError.
func (rv *RequestValidator) Validate(i any) error {
	err := rv.validate.Struct(i)
	if err == nil {
		return nil
	}

	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) || len(fieldErrs) == 0 {
		return err
	}

	fe := fieldErrs[0]
	reason, ok := reasons[fe.Tag()]
	if !ok {
		reason = "failed " + fe.Tag() + " check"
	}
	return apperrors.Invalid(fe.Field(), reason)
}

func UniMail(fl validator.FieldLevel) bool {
	email := strings.ToLower(strings.TrimSpace(fl.Field().String()))
	return uniMailDomain.MatchString(email)
}

func jsonName(f reflect.StructField) string {
	name := strings.SplitN(f.Tag.Get("json"), ",", 2)[0]
	if name == "-" || name == "" {
		return f.Name
	}
	return name
}
