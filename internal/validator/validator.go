package validator

import (
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/metinatakli/cinema-tickets/internal/domain"
)

const (
	ErrRequired       = "is required"
	ErrMaxItems       = "must contain at most %s items"
	ErrUnknownTicket  = "must be one of ADULT, CHILD or INFANT"
	ErrInvalidDefault = "is invalid"
)

func NewValidator() *validator.Validate {
	validator := validator.New(validator.WithRequiredStructEnabled())

	validator.RegisterTagNameFunc(jsonFieldName)
	validator.RegisterValidation("ticket_type", validateTicketType)

	return validator
}

func jsonFieldName(field reflect.StructField) string {
	name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
	if name == "-" {
		return ""
	}

	return name
}

func validateTicketType(fl validator.FieldLevel) bool {
	_, err := domain.ParseTicketType(fl.Field().String())
	return err == nil
}

// ValidationMessage converts validator errors into readable messages
func ValidationMessage(err validator.FieldError) string {
	switch err.Tag() {
	case "required":
		return ErrRequired
	case "max":
		return fmt.Sprintf(ErrMaxItems, err.Param())
	case "ticket_type":
		return ErrUnknownTicket
	default:
		return ErrInvalidDefault
	}
}
