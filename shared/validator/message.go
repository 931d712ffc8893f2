package validator

import (
	"errors"
	"fmt"

	val "github.com/go-playground/validator/v10"
)

type describe func(field, param string) string

func bound(relation string) describe {
	return func(field, param string) string {
		return fmt.Sprintf("%s must be %s %s", field, relation, param)
	}
}

func fixed(text string) describe {
	return func(field, _ string) string {
		return field + " " + text
	}
}

var messages = map[string]describe{
	"required": fixed("is required"),
	"email":    fixed("must be a valid email address"),
	"uuid":     fixed("must be a valid UUID"),
	"url":      fixed("must be a valid URL"),
	"unique":   fixed("must not contain duplicates"),

	"gt":  bound("greater than"),
	"gte": bound("greater than or equal to"),
	"min": bound("greater than or equal to"),
	"lte": bound("less than or equal to"),
	"max": bound("less than or equal to"),

	"oneof":     bound("one of"),
	"mimetypes": bound("one of"),
	"datetime": func(field, param string) string {
		return fmt.Sprintf("%s must match the format %s", field, param)
	},
	"maxfilesize": func(field, param string) string {
		return fmt.Sprintf("%s must not exceed %s MB", field, param)
	},
}

// message describes the first field error that has a known tag.
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	for _, fieldErr := range fieldErrors {
		if fn, ok := messages[fieldErr.Tag()]; ok {
			return fn(fieldErr.Field(), fieldErr.Param())
		}
	}

	return fieldErrors.Error()
}
