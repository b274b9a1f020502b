package middleware

import (
	"encoding/json"
	"errors"

	"tasklist/internal/validation"

	"github.com/go-playground/validator/v10"
	"github.com/gofiber/fiber/v2"
)

type localsKey string

const (
	bodyKey   localsKey = "validated_body"
	paramsKey localsKey = "validated_params"
	queryKey  localsKey = "validated_query"
)

// ValidateBody parses the JSON body into T and validates it. The coerced
// value is available to later handlers through Body[T]. An empty body is
// validated as the zero value.
func ValidateBody[T any](v *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if len(c.Body()) > 0 {
			if err := c.BodyParser(&in); err != nil {
				return bodyError(err)
			}
		}
		if err := v.Struct(in); err != nil {
			return validation.FromValidator(err)
		}
		c.Locals(bodyKey, in)
		return c.Next()
	}
}

// ValidateParams binds route parameters into T using `params` tags.
func ValidateParams[T any](v *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if err := c.ParamsParser(&in); err != nil {
			return validation.NewError("params", "invalid path parameter")
		}
		if err := v.Struct(in); err != nil {
			return validation.FromValidator(err)
		}
		c.Locals(paramsKey, in)
		return c.Next()
	}
}

// ValidateQuery binds the query string into T using `query` tags.
func ValidateQuery[T any](v *validator.Validate) fiber.Handler {
	return func(c *fiber.Ctx) error {
		var in T
		if err := c.QueryParser(&in); err != nil {
			return validation.NewError("query", "invalid query parameter")
		}
		if err := v.Struct(in); err != nil {
			return validation.FromValidator(err)
		}
		c.Locals(queryKey, in)
		return c.Next()
	}
}

func Body[T any](c *fiber.Ctx) T {
	in, _ := c.Locals(bodyKey).(T)
	return in
}

func Params[T any](c *fiber.Ctx) T {
	in, _ := c.Locals(paramsKey).(T)
	return in
}

func Query[T any](c *fiber.Ctx) T {
	in, _ := c.Locals(queryKey).(T)
	return in
}

func bodyError(err error) error {
	var typeErr *json.UnmarshalTypeError
	if errors.As(err, &typeErr) && typeErr.Field != "" {
		return validation.NewError(typeErr.Field, "must be of type "+typeErr.Type.String())
	}
	var syntaxErr *json.SyntaxError
	if errors.As(err, &syntaxErr) {
		return validation.NewError("", "malformed JSON body")
	}
	return validation.NewError("", "invalid request body")
}
