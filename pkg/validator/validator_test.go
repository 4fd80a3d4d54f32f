package validator

import (
	"errors"
	"testing"

	"github.com/go-playground/validator/v10"
)

type loginForm struct {
	Credential string `validate:"required"`
	Password   string `validate:"required,min=8"`
}

func TestFieldErrorsFromValidation(t *testing.T) {
	v := validator.New()
	err := v.Struct(loginForm{Password: "short"})
	if err == nil {
		t.Fatal("expected validation errors")
	}

	fields := FieldErrors(err)
	if fields["credential"] == "" {
		t.Errorf("missing credential error: %v", fields)
	}
	if fields["password"] == "" {
		t.Errorf("missing password error: %v", fields)
	}
}

func TestFieldErrorsDatetime(t *testing.T) {
	type attendanceForm struct {
		Date string `validate:"required,datetime=2006-01-02"`
	}

	v := validator.New()
	err := v.Struct(attendanceForm{Date: "2026-1-5"})
	if err == nil {
		t.Fatal("expected a validation error for a non-ISO date")
	}

	fields := FieldErrors(err)
	if fields["date"] != "Date must be a date in YYYY-MM-DD format" {
		t.Errorf("unexpected date message: %v", fields)
	}
}

func TestFieldErrorsGeneralFallback(t *testing.T) {
	fields := FieldErrors(errors.New("unexpected EOF"))
	if fields["general"] != "unexpected EOF" {
		t.Errorf("expected general fallback, got %v", fields)
	}
}
