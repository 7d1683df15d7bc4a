package validation

import (
	"reflect"
	"strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// Violation is a single failed constraint on a named field.
type Violation struct {
	Field   string
	Message string
}

// Validator wraps go-playground struct validation and renders violations
// with translated, human-readable messages.
type Validator struct {
	validate *validator.Validate
	trans    ut.Translator
}

// New creates a validator with English message translations. Field names in
// violations follow the json tag rather than the Go field name.
func New() *Validator {
	english := en.New()
	uni := ut.New(english, english)
	trans, _ := uni.GetTranslator("en")

	validate := validator.New()
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	en_translations.RegisterDefaultTranslations(validate, trans)

	return &Validator{
		validate: validate,
		trans:    trans,
	}
}

// Validate runs all constraints on the given struct and returns one
// violation per failed field. An empty slice means the value is valid.
func (v *Validator) Validate(obj any) []Violation {
	err := v.validate.Struct(obj)
	if err == nil {
		return nil
	}

	var violations []Violation
	validationErrors, ok := err.(validator.ValidationErrors)
	if !ok {
		return []Violation{{Field: "", Message: err.Error()}}
	}
	for _, fieldErr := range validationErrors {
		violations = append(violations, Violation{
			Field:   fieldErr.Field(),
			Message: fieldErr.Translate(v.trans),
		})
	}
	return violations
}

// Detail joins violations into a single human-readable string, comma
// separated. Translated messages already name the field path, so the
// message alone is the full fragment.
func Detail(violations []Violation) string {
	fragments := make([]string, len(violations))
	for i, violation := range violations {
		fragments[i] = strings.TrimSpace(violation.Message)
	}
	return strings.Join(fragments, ", ")
}
