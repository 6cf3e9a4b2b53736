package validation

import (
	"errors"
	"strings"
	"testing"

	"github.com/communitysafe/safety-gateway/internal/core/domain"
)

func validDraft() domain.IncidentReportDraft {
	return domain.IncidentReportDraft{
		IncidentType: "Vandalism",
		Location:     "Central Park, north entrance",
		Description:  "A bench was broken overnight.",
		Severity:     domain.SeverityLow,
	}
}

func TestValidate_ValidDraft(t *testing.T) {
	if err := Validate(validDraft()); err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
}

func TestValidate_EmptyDraftCollectsAllFields(t *testing.T) {
	err := Validate(domain.DefaultDraft())
	if err == nil {
		t.Fatal("expected a validation error")
	}

	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if len(ve.Fields) != 3 {
		t.Fatalf("expected 3 failing fields, got %d: %+v", len(ve.Fields), ve.Fields)
	}

	msg := err.Error()
	for _, want := range []string{
		"Incident type must be at least 2 characters.",
		"Location must be at least 2 characters.",
		"Description must be at least 10 characters.",
	} {
		if !strings.Contains(msg, want) {
			t.Fatalf("message %q missing %q", msg, want)
		}
	}
}

func TestValidate_SingleFieldFailure(t *testing.T) {
	draft := validDraft()
	draft.Description = "too short"

	err := Validate(draft)
	var ve *domain.ValidationError
	if !errors.As(err, &ve) {
		t.Fatalf("expected *domain.ValidationError, got %T", err)
	}
	if len(ve.Fields) != 1 || ve.Fields[0].Field != "description" {
		t.Fatalf("unexpected fields: %+v", ve.Fields)
	}
	if ve.Fields[0].Message != "Description must be at least 10 characters." {
		t.Fatalf("unexpected message: %q", ve.Fields[0].Message)
	}
}

func TestValidate_BoundaryLengths(t *testing.T) {
	draft := domain.IncidentReportDraft{
		IncidentType: "ab",
		Location:     "cd",
		Description:  "0123456789",
		Severity:     domain.SeverityCritical,
	}
	if err := Validate(draft); err != nil {
		t.Fatalf("minimum lengths must pass, got %v", err)
	}
}

func TestValidate_InvalidSeverityPanics(t *testing.T) {
	defer func() {
		if recover() == nil {
			t.Fatal("expected panic on out-of-enum severity")
		}
	}()
	draft := validDraft()
	draft.Severity = "urgent"
	_ = Validate(draft)
}
