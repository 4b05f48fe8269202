package validator

import (
	"errors"
	"fmt"
	"strings"

	"github.com/go-playground/validator/v10"

	eventserrors "evently/internal/events/errors"
	"evently/pkg/logger"
	"evently/pkg/model"
	"evently/pkg/sanitizer"
)

type ValidationError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

func (v ValidationError) Error() string {
	return fmt.Sprintf("%s: %s", v.Field, v.Message)
}

type ValidationErrors []ValidationError

func (v ValidationErrors) Error() string {
	if len(v) == 0 {
		return ""
	}
	var messages []string
	for _, err := range v {
		messages = append(messages, err.Error())
	}
	return fmt.Sprintf("validation failed: %d error(s): [%s]", len(v), strings.Join(messages, "; "))
}

type EventValidator struct {
	validate *validator.Validate
	logger   *logger.Logger
}

func NewEventValidator(log *logger.Logger) *EventValidator {
	v := validator.New()

	if err := v.RegisterValidation("notblank", validateNotBlank); err != nil {
		log.Fatal("Failed to register 'notblank' validator", "error", err)
	}

	return &EventValidator{
		validate: v,
		logger:   log,
	}
}

func validateNotBlank(fl validator.FieldLevel) bool {
	return sanitizer.IsNonEmpty(fl.Field().String())
}

func (v *EventValidator) Validate(event *model.Event) error {
	if err := v.validate.Struct(event); err != nil {
		var validationErrs validator.ValidationErrors
		if errors.As(err, &validationErrs) {
			return v.translateValidationErrors(validationErrs)
		}
		return err
	}

	// Redundant safeguard over the struct tags, mirroring the shape the
	// store-level validators enforce.
	if !sanitizer.IsNonEmptyStringSlice(event.Agenda) {
		return eventserrors.ErrInvalidAgenda
	}
	if !sanitizer.IsNonEmptyStringSlice(event.Tags) {
		return eventserrors.ErrInvalidTags
	}

	return nil
}

func (v *EventValidator) translateValidationErrors(errs validator.ValidationErrors) ValidationErrors {
	var validationErrors ValidationErrors

	for _, err := range errs {
		message := err.Error()

		switch err.Tag() {
		case "required", "notblank":
			message = fmt.Sprintf("%s is required", err.Field())
		case "min":
			message = fmt.Sprintf("%s must have at least %s element(s)", err.Field(), err.Param())
		case "mongodb":
			message = fmt.Sprintf("%s must be a valid MongoDB ObjectID", err.Field())
		}

		validationErrors = append(validationErrors, ValidationError{
			Field:   err.Field(),
			Message: message,
		})
	}

	return validationErrors
}
