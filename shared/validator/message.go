package validator

import (
	"errors"
	"fmt"
	"strings"

	val "github.com/go-playground/validator/v10"
)

type describe func(param string) string

var rules = map[string]describe{
	"required": fixed("is required"),
	"slot":     fixed("must be a time of day formatted as HH:MM"),
	"attendee": fixed("must be a valid attendee address"),
	"email":    fixed("must be a valid email address"),
	"uuid":     fixed("must be a valid identifier"),
	"url":      fixed("must be a valid URL"),
	"oneof":    func(param string) string { return "must be one of " + strings.Join(strings.Fields(param), ", ") },
	"max":      bound("at most"),
	"lte":      bound("at most"),
	"min":      bound("at least"),
	"gte":      bound("at least"),
	"datetime": func(param string) string { return "must be a date formatted as " + param },
}

func fixed(text string) describe {
	return func(string) string { return text }
}

func bound(word string) describe {
	return func(param string) string { return fmt.Sprintf("must be %s %s", word, param) }
}

// message renders every failed field as "<json name> <rule>", joined by "; ".
func message(err error) string {
	var fieldErrors val.ValidationErrors
	if !errors.As(err, &fieldErrors) {
		return err.Error()
	}

	parts := make([]string, 0, len(fieldErrors))

	for _, fieldErr := range fieldErrors {
		field := fieldErr.Field()
		if field == "" {
			field = "value"
		}

		rule, ok := rules[fieldErr.Tag()]
		if !ok {
			parts = append(parts, fmt.Sprintf("%s failed %s", field, fieldErr.Tag()))

			continue
		}

		parts = append(parts, field+" "+rule(fieldErr.Param()))
	}

	return strings.Join(parts, "; ")
}
