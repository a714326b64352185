package validator

import (
	"errors"
	"fmt"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/DhavalSuthar-24/crease/internal/models"
)

var (
	once     sync.Once
	validate *validator.Validate
)

// Get returns the shared validator with the ball-level rules registered.
func Get() *validator.Validate {
	once.Do(func() {
		validate = validator.New(validator.WithRequiredStructEnabled())
		validate.RegisterStructValidation(ballStructLevel, models.BallEvent{})
	})
	return validate
}

// Struct validates v with the shared validator.
func Struct(v interface{}) error {
	return Get().Struct(v)
}

// ballStructLevel ties the wicket flag to its kind.
func ballStructLevel(sl validator.StructLevel) {
	b := sl.Current().Interface().(models.BallEvent)
	if b.IsWicket && b.WicketKind == "" {
		sl.ReportError(b.WicketKind, "WicketKind", "wicket_kind", "required_with_wicket", "")
	}
	if !b.IsWicket && b.WicketKind != "" {
		sl.ReportError(b.WicketKind, "WicketKind", "wicket_kind", "excluded_without_wicket", "")
	}
	if !b.IsWicket && b.DismissedPlayerID != nil {
		sl.ReportError(b.DismissedPlayerID, "DismissedPlayerID", "dismissed_player_id", "excluded_without_wicket", "")
	}
}

// Message renders a field error for API clients.
func Message(fe validator.FieldError) string {
	switch fe.Tag() {
	case "required":
		return fmt.Sprintf("The %s field is required.", fe.Field())
	case "min", "gte":
		return fmt.Sprintf("The %s field must be at least %s.", fe.Field(), fe.Param())
	case "max", "lte":
		return fmt.Sprintf("The %s field must not exceed %s.", fe.Field(), fe.Param())
	case "oneof":
		return fmt.Sprintf("The %s field must be one of the following: %s.", fe.Field(), strings.ReplaceAll(fe.Param(), " ", ", "))
	case "nefield":
		return fmt.Sprintf("The %s field must differ from %s.", fe.Field(), fe.Param())
	default:
		return fmt.Sprintf("Field validation for '%s' failed on the '%s' tag.", fe.Field(), fe.Tag())
	}
}

// ParseError flattens err into field -> message. Errors that did not come
// from the validator land under "error".
func ParseError(err error) map[string]string {
	errs := make(map[string]string)
	var ve validator.ValidationErrors
	if errors.As(err, &ve) {
		for _, fe := range ve {
			errs[fe.Field()] = Message(fe)
		}
	} else if err != nil { // Non-validator errors
		errs["error"] = err.Error()
	}
	return errs
}
