package service

import (
	"context"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"

	"github.com/communitysafe/safety-gateway/internal/core/ports"
)

const (
	defaultSessionTTL    = 30 * time.Minute
	defaultSweepInterval = time.Minute
)

// Session bundles the two independent workflows of one user session. They
// share no mutable state with each other.
type Session struct {
	ID     string
	Report ports.ReportService
	SOS    ports.SOSService

	lastSeen time.Time
}

// Registry owns the per-session workflow instances. Sessions are created
// lazily on first use and evicted after a period of inactivity; eviction is
// how a session "ends", discarding any draft or active alert it held.
type Registry struct {
	geo     ports.GeolocationProvider
	alerts  ports.AlertClient
	journal ports.JournalRepository
	dedup   DedupChecker
	ttl     time.Duration
	log     zerolog.Logger

	mu       sync.Mutex
	sessions map[string]*Session
}

// NewRegistry creates a Registry. If ttl <= 0, defaultSessionTTL is used.
func NewRegistry(
	geo ports.GeolocationProvider,
	alerts ports.AlertClient,
	journal ports.JournalRepository,
	dedup DedupChecker,
	ttl time.Duration,
	log zerolog.Logger,
) *Registry {
	if ttl <= 0 {
		ttl = defaultSessionTTL
	}
	return &Registry{
		geo:      geo,
		alerts:   alerts,
		journal:  journal,
		dedup:    dedup,
		ttl:      ttl,
		log:      log,
		sessions: make(map[string]*Session),
	}
}

// Ensure returns the session for id, creating it when absent. An empty id
// allocates a fresh session with a generated identifier. Access refreshes
// the session's eviction deadline.
func (r *Registry) Ensure(id string) *Session {
	r.mu.Lock()
	defer r.mu.Unlock()

	if id == "" {
		id = uuid.NewString()
	}

	s, ok := r.sessions[id]
	if !ok {
		s = &Session{
			ID:     id,
			Report: NewReportWorkflow(id, r.geo, r.alerts, r.journal, r.dedup, r.log),
			SOS:    NewSOSWorkflow(id, r.geo, r.alerts, r.journal, r.log),
		}
		r.sessions[id] = s
		r.log.Debug().Str("session", id).Msg("session created")
	}
	s.lastSeen = time.Now()
	return s
}

// Len returns the number of live sessions.
func (r *Registry) Len() int {
	r.mu.Lock()
	defer r.mu.Unlock()
	return len(r.sessions)
}

// StartSweeper launches the eviction loop. It stops when ctx is cancelled.
func (r *Registry) StartSweeper(ctx context.Context) {
	go func() {
		ticker := time.NewTicker(defaultSweepInterval)
		defer ticker.Stop()
		for {
			select {
			case <-ctx.Done():
				return
			case <-ticker.C:
				r.sweep(time.Now())
			}
		}
	}()
}

// sweep evicts every session idle longer than the TTL.
func (r *Registry) sweep(now time.Time) {
	r.mu.Lock()
	defer r.mu.Unlock()
	for id, s := range r.sessions {
		if now.Sub(s.lastSeen) > r.ttl {
			delete(r.sessions, id)
			r.log.Debug().Str("session", id).Msg("session expired")
		}
	}
}
