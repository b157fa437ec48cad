package validator

import (
	"encoding/json"
	"fmt"
	"io"
	"net/mail"
	"reflect"
	"strings"
	"time"

	"careerday/shared/constant"
	"careerday/shared/failure"

	val "github.com/go-playground/validator/v10"
)

var validate *val.Validate

func registerSlotValidation(field val.FieldLevel) bool {
	slot, ok := field.Field().Interface().(string)
	if !ok || len(slot) != len(constant.SlotTimeFormat) {
		return false
	}

	_, err := time.Parse(constant.SlotTimeFormat, slot)

	return err == nil
}

// registerAttendeeValidation accepts a bare address or a display form like "Name <addr>".
func registerAttendeeValidation(field val.FieldLevel) bool {
	attendee, ok := field.Field().Interface().(string)
	if !ok {
		return false
	}

	_, err := mail.ParseAddress(attendee)

	return err == nil
}

// jsonName reports fields by the name clients send.
func jsonName(field reflect.StructField) string {
	name, _, _ := strings.Cut(field.Tag.Get("json"), ",")

	switch name {
	case "-":
		return ""
	case "":
		return field.Name
	default:
		return name
	}
}

func init() {
	validate = val.New(val.WithRequiredStructEnabled())
	validate.RegisterTagNameFunc(jsonName)

	err := validate.RegisterValidation("empty", func(fl val.FieldLevel) bool {
		empty := fl.Field().IsZero()

		return empty
	})

	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("slot", registerSlotValidation)
	if err != nil {
		panic(err)
	}

	err = validate.RegisterValidation("attendee", registerAttendeeValidation)
	if err != nil {
		panic(err)
	}
}

// Validate reads from the given io.Reader into the given struct, and then performs validation
// on the struct using the validator package. If the struct is invalid according to the
// validation rules, an error is returned. Otherwise, nil is returned.
// https://github.com/go-playground/validator
func Validate[T any](r io.Reader, data *T) error {
	decoder := json.NewDecoder(r)
	err := decoder.Decode(data)

	if err != nil {
		return failure.BadRequest(fmt.Errorf("failed to decode request body: %w", err)) //nolint:wrapcheck
	}

	return ValidateStruct(data)
}

func ValidateStruct[T any](data *T) error {
	err := validate.Struct(data)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}

func ValidateVar(field any, tag string) error {
	err := validate.Var(field, tag)

	if err != nil {
		msg := message(err)

		return failure.BadRequestFromString(msg) //nolint:wrapcheck
	}

	return nil
}
