// Package validation turns validator struct tags into the inline field
// messages shown next to form inputs.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"sort"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Errors maps a form field name to the message shown beside it.
type Errors map[string]string

// Empty reports whether no field failed.
func (e Errors) Empty() bool { return len(e) == 0 }

// Has reports whether field failed.
func (e Errors) Has(field string) bool {
	_, ok := e[field]
	return ok
}

// Get returns the message for field, or "".
func (e Errors) Get(field string) string { return e[field] }

// Fields returns the failing field names in sorted order.
func (e Errors) Fields() []string {
	out := make([]string, 0, len(e))
	for f := range e {
		out = append(out, f)
	}
	sort.Strings(out)
	return out
}

// Error implements error so Errors can travel through error returns.
func (e Errors) Error() string {
	parts := make([]string, 0, len(e))
	for _, f := range e.Fields() {
		parts = append(parts, f+": "+e[f])
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

var messages = map[string]string{
	"name":     "Name must be at least 2 characters",
	"email":    "Please enter a valid email address",
	"services": "Please select at least one service",
	"message":  "Message must be at least 10 characters",
	"password": "Please enter your password",
}

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})
	return v
}

// Struct validates v and returns one message per failing field. A nil
// result means v is valid.
func Struct(v any) Errors {
	err := validate.Struct(v)
	if err == nil {
		return nil
	}
	var fieldErrs validator.ValidationErrors
	if !errors.As(err, &fieldErrs) {
		return Errors{"_": err.Error()}
	}

	out := make(Errors, len(fieldErrs))
	for _, fe := range fieldErrs {
		field := fe.Field()
		if i := strings.IndexByte(field, '['); i >= 0 {
			field = field[:i]
		}
		if out.Has(field) {
			continue
		}
		out[field] = message(field, fe)
	}
	return out
}

func message(field string, fe validator.FieldError) string {
	switch fe.Tag() {
	case "max":
		return fmt.Sprintf("Please keep this under %s characters", fe.Param())
	case "oneof":
		if field == "services" {
			return "Please select a valid service"
		}
		return "Please choose a valid option"
	}
	if msg, ok := messages[field]; ok {
		return msg
	}
	return "This field is invalid"
}
