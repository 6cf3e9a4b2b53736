// Package validation holds the pure, synchronous draft validator run on
// every submission attempt. It collects all failing fields instead of
// stopping at the first, so the caller can surface them together.
package validation

import (
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()
	// Report field names from json tags so messages match the wire contract.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return v
}

// Validate checks the draft against its structural rules. It returns nil on
// success and a *domain.ValidationError naming every violated field
// otherwise. An out-of-enum severity is a programming error — the transport
// layer rejects it before the draft ever reaches the core — and panics
// rather than being coerced.
func Validate(draft domain.IncidentReportDraft) error {
	if !draft.Severity.Valid() {
		panic(fmt.Sprintf("validation: severity %q outside enum", draft.Severity))
	}

	err := validate.Struct(draft)
	if err == nil {
		return nil
	}

	var ve validator.ValidationErrors
	if !errors.As(err, &ve) {
		// Struct-level failures other than field rules cannot occur for a
		// plain draft; treat anything else as a single opaque violation.
		return &domain.ValidationError{Fields: []domain.FieldError{{Field: "draft", Message: err.Error()}}}
	}

	fields := make([]domain.FieldError, 0, len(ve))
	for _, fe := range ve {
		fields = append(fields, domain.FieldError{Field: fe.Field(), Message: fieldMessage(fe)})
	}
	return &domain.ValidationError{Fields: fields}
}

// fieldMessage converts a single violation into the user-facing message the
// presentation layer shows next to the field.
func fieldMessage(fe validator.FieldError) string {
	switch fe.Field() {
	case "incident_type":
		return "Incident type must be at least 2 characters."
	case "location":
		return "Location must be at least 2 characters."
	case "description":
		return "Description must be at least 10 characters."
	default:
		return fmt.Sprintf("%s failed validation (%s)", fe.Field(), fe.Tag())
	}
}
