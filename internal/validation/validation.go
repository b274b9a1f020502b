package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"tasklist/internal/models"

	"github.com/go-playground/validator/v10"
)

// Issue describes one failed rule.
type Issue struct {
	Path    string `json:"path"`
	Message string `json:"message"`
}

// Error is returned by the validation guard and rendered as HTTP 400.
type Error struct {
	Issues []Issue
}

func (e *Error) Error() string {
	parts := make([]string, 0, len(e.Issues))
	for _, issue := range e.Issues {
		parts = append(parts, issue.Path+": "+issue.Message)
	}
	return "validation failed: " + strings.Join(parts, "; ")
}

// NewError builds an Error with a single issue.
func NewError(path, message string) *Error {
	return &Error{Issues: []Issue{{Path: path, Message: message}}}
}

type emptiable interface {
	Empty() bool
}

// New returns a validator that reports fields by their json, params or query
// names and knows the partial-update rules of the API.
func New() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	v.RegisterTagNameFunc(fieldName)

	atLeastOne := func(sl validator.StructLevel) {
		if p, ok := sl.Current().Interface().(emptiable); ok && p.Empty() {
			sl.ReportError(nil, "", "", "atleastone", "")
		}
	}
	v.RegisterStructValidation(atLeastOne, models.TaskUpdate{}, models.ListPatch{}, models.UserPatch{})

	// rules on a Nullable[string] apply to the string it carries
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if n, ok := field.Interface().(models.Nullable[string]); ok && n.Value != nil {
			return *n.Value
		}
		return ""
	}, models.Nullable[string]{})

	return v
}

func fieldName(f reflect.StructField) string {
	for _, tag := range []string{"json", "params", "query"} {
		name := strings.SplitN(f.Tag.Get(tag), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name != "" {
			return name
		}
	}
	return f.Name
}

// FromValidator converts validator errors into an *Error. Other errors are
// returned unchanged.
func FromValidator(err error) error {
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	issues := make([]Issue, 0, len(verrs))
	for _, fe := range verrs {
		issues = append(issues, Issue{Path: path(fe), Message: message(fe)})
	}
	return &Error{Issues: issues}
}

// path strips the root struct name from the namespace.
func path(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		return ns[i+1:]
	}
	return ""
}

func message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return "is required"
	case "email":
		return "must be a valid email address"
	case "url":
		return "must be a valid URL"
	case "hexcolor":
		return "must be a hex color such as #1a2b3c"
	case "oneof":
		return "must be one of: " + strings.Join(strings.Fields(fe.Param()), ", ")
	case "min":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at least %s characters", fe.Param())
		}
		return "must be at least " + fe.Param()
	case "max":
		if fe.Kind() == reflect.String {
			return fmt.Sprintf("must be at most %s characters", fe.Param())
		}
		return "must be at most " + fe.Param()
	case "gt":
		return "must be greater than " + fe.Param()
	case "atleastone":
		return "at least one field besides id must be provided"
	default:
		return fmt.Sprintf("failed on the '%s' rule", fe.Tag())
	}
}
