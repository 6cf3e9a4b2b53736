package domain

import (
	"errors"
	"fmt"
	"strings"
)

// Local refusals: the workflow rejects the trigger without touching the
// network and its state is left unchanged.
var (
	ErrLocationRequired  = errors.New("location required")
	ErrNoActiveAlert     = errors.New("no active alert")
	ErrWorkflowBusy      = errors.New("operation already in flight")
	ErrDraftFrozen       = errors.New("draft is frozen during submission")
	ErrInvalidTransition = errors.New("invalid workflow transition")
)

// GeolocationFailureKind classifies why a location fix could not be acquired.
type GeolocationFailureKind string

const (
	GeoUnsupported GeolocationFailureKind = "unsupported"
	GeoDenied      GeolocationFailureKind = "denied"
	GeoUnavailable GeolocationFailureKind = "unavailable"
)

// GeolocationFailure is returned by the geolocation provider when no fix
// could be produced. Message carries the platform's diagnostic text.
type GeolocationFailure struct {
	Kind    GeolocationFailureKind
	Message string
}

func (f *GeolocationFailure) Error() string {
	if f.Message == "" {
		return fmt.Sprintf("geolocation %s", f.Kind)
	}
	return fmt.Sprintf("geolocation %s: %s", f.Kind, f.Message)
}

// ServiceFailure is any failed round trip to the alerting service. Network
// failures and application-level {success:false} responses collapse into the
// same variant; both settle the workflow into Failed.
type ServiceFailure struct {
	Reason string
}

func (f *ServiceFailure) Error() string {
	if f.Reason == "" {
		return "unknown error"
	}
	return f.Reason
}

// FieldError names one draft field that failed a structural rule.
type FieldError struct {
	Field   string `json:"field"`
	Message string `json:"message"`
}

// ValidationError aggregates every failing field of a draft so the caller
// can report them together.
type ValidationError struct {
	Fields []FieldError
}

func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, fe := range e.Fields {
		msgs = append(msgs, fe.Message)
	}
	return strings.Join(msgs, "; ")
}
