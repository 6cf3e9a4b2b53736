package service

import (
	"testing"
	"time"

	"github.com/rs/zerolog"
)

func newTestRegistry(ttl time.Duration) *Registry {
	return NewRegistry(&stubGeo{}, &stubAlerts{}, nil, nil, ttl, zerolog.Nop())
}

func TestRegistry_Ensure_AllocatesIDWhenEmpty(t *testing.T) {
	r := newTestRegistry(0)

	s := r.Ensure("")
	if s.ID == "" {
		t.Fatal("expected a generated session id")
	}
	if s.Report == nil || s.SOS == nil {
		t.Fatal("session must carry both workflows")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Len())
	}
}

func TestRegistry_Ensure_ReturnsSameSession(t *testing.T) {
	r := newTestRegistry(0)

	a := r.Ensure("sess-1")
	b := r.Ensure("sess-1")
	if a != b {
		t.Fatal("same id must resolve to the same session")
	}
	if r.Len() != 1 {
		t.Fatalf("expected 1 session, got %d", r.Len())
	}
}

func TestRegistry_Ensure_IsolatesSessions(t *testing.T) {
	r := newTestRegistry(0)

	a := r.Ensure("sess-1")
	b := r.Ensure("sess-2")
	if a.Report == b.Report || a.SOS == b.SOS {
		t.Fatal("sessions must not share workflow instances")
	}
}

func TestRegistry_Sweep_EvictsIdleSessions(t *testing.T) {
	r := newTestRegistry(10 * time.Minute)

	stale := r.Ensure("stale")
	fresh := r.Ensure("fresh")
	stale.lastSeen = time.Now().Add(-time.Hour)

	r.sweep(time.Now())

	if r.Len() != 1 {
		t.Fatalf("expected 1 surviving session, got %d", r.Len())
	}
	if got := r.Ensure("fresh"); got != fresh {
		t.Fatal("fresh session must survive the sweep")
	}
	if got := r.Ensure("stale"); got == stale {
		t.Fatal("evicted session must be rebuilt from scratch")
	}
}
