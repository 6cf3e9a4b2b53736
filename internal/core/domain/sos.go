package domain

// Fixed contents of every SOS alert sent to the alerting service.
const (
	SOSMessage  = "Urgent help needed"
	SOSPriority = "high"
)

// SOSAlert is a created alert as acknowledged by the alerting service. Its
// ID is opaque, assigned by the service, and required for resolution.
type SOSAlert struct {
	ID         string     `json:"id"`
	Coordinate Coordinate `json:"coordinate"`
	Message    string     `json:"message"`
	Priority   string     `json:"priority"`
}

// SOSPhase is the tagged lifecycle state of the SOS workflow. Only Active and
// Resolving carry a non-empty alert id.
type SOSPhase string

const (
	SOSIdle      SOSPhase = "idle"
	SOSAcquiring SOSPhase = "acquiring"
	SOSActive    SOSPhase = "active"
	SOSResolving SOSPhase = "resolving"
	SOSResolved  SOSPhase = "resolved"
	SOSFailed    SOSPhase = "failed"
)

// sosTransitions defines the allowed SOS state machine transitions.
var sosTransitions = map[SOSPhase][]SOSPhase{
	SOSIdle:      {SOSAcquiring},
	SOSAcquiring: {SOSActive, SOSFailed},
	SOSActive:    {SOSResolving},
	SOSResolving: {SOSResolved, SOSActive},
	SOSResolved:  {SOSIdle},
	SOSFailed:    {SOSAcquiring},
}

// CanTransitionTo reports whether a transition from p to next is valid.
func (p SOSPhase) CanTransitionTo(next SOSPhase) bool {
	for _, allowed := range sosTransitions[p] {
		if allowed == next {
			return true
		}
	}
	return false
}

// Transient reports whether an asynchronous operation is in flight in this
// phase. The workflow refuses new triggers while transient.
func (p SOSPhase) Transient() bool {
	return p == SOSAcquiring || p == SOSResolving
}

// CarriesAlertID reports whether the phase may hold a non-empty alert id.
// Idle, Resolved and Failed never do; illegal combinations are rejected at
// transition time.
func (p SOSPhase) CarriesAlertID() bool {
	return p == SOSActive || p == SOSResolving
}
