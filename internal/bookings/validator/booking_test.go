package validator

import (
	"errors"
	"strings"
	"testing"

	"evently/pkg/logger"
	"evently/pkg/model"
)

func newTestValidator() *BookingValidator {
	log := logger.New(logger.Config{
		Level:     "error",
		Format:    logger.JSON,
		AddSource: false,
		Service:   "test",
	})
	return NewBookingValidator(log)
}

func TestValidate_ValidBooking(t *testing.T) {
	v := newTestValidator()

	booking := &model.Booking{
		EventID: "665f1c2e9b3e4a0001a1b2c3",
		Email:   "jane@example.com",
	}

	if err := v.Validate(booking); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmailShapes(t *testing.T) {
	tests := []struct {
		email string
		valid bool
	}{
		{"jane@example.com", true},
		{"first.last+tag@sub.example.co", true},
		{"UPPER@EXAMPLE.COM", true},
		{"", false},
		{"no-at-sign.example.com", false},
		{"two@@example.com", false},
		{"spaces in@example.com", false},
		{"jane@example", false},
		{"jane@example.c", false},
		{"jane@.com", false},
	}

	v := newTestValidator()
	for _, tt := range tests {
		t.Run(tt.email, func(t *testing.T) {
			booking := &model.Booking{
				EventID: "665f1c2e9b3e4a0001a1b2c3",
				Email:   tt.email,
			}

			err := v.Validate(booking)
			if tt.valid && err != nil {
				t.Errorf("expected %q to be valid, got %v", tt.email, err)
			}
			if !tt.valid && err == nil {
				t.Errorf("expected %q to be rejected", tt.email)
			}
		})
	}
}

func TestValidate_RequiredEventID(t *testing.T) {
	v := newTestValidator()

	booking := &model.Booking{Email: "jane@example.com"}

	err := v.Validate(booking)
	if err == nil {
		t.Fatal("expected validation error")
	}

	var validationErrs ValidationErrors
	if !errors.As(err, &validationErrs) {
		t.Fatalf("expected ValidationErrors, got %T", err)
	}
	if !strings.Contains(err.Error(), "EventID is required") {
		t.Errorf("expected EventID requirement in error, got %q", err.Error())
	}
}

func TestValidate_MalformedEventID(t *testing.T) {
	v := newTestValidator()

	booking := &model.Booking{
		EventID: "not-an-object-id",
		Email:   "jane@example.com",
	}

	err := v.Validate(booking)
	if err == nil {
		t.Fatal("expected validation error for malformed event ID")
	}
	if !strings.Contains(err.Error(), "ObjectID") {
		t.Errorf("expected ObjectID message, got %q", err.Error())
	}
}
