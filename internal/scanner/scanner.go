// Package scanner implements the venue check-in state machine. The camera
// and frame decoding live on the operator's device; this side receives the
// decoded frame text, applies the entry-payload contract, and drives the
// check-in transition exactly once per scan event.
package scanner

import (
	"context"
	"database/sql"
	"errors"
	"sync"
	"time"

	"github.com/google/uuid"

	"github.com/gceelixir/symposium/internal/pass"
	"github.com/gceelixir/symposium/internal/registration"
)

// Cooldown is how long a session ignores further frames after accepting a
// payload, so one pass held up to the camera does not fire repeatedly.
const Cooldown = 3 * time.Second

const recentLimit = 5

type Phase string

const (
	PhaseIdle     Phase = "idle"
	PhaseScanning Phase = "scanning"
	PhaseMatched  Phase = "matched"
)

var ErrClosed = errors.New("scanner: session closed")

// Registry is the registration lookup/transition surface the scanner
// needs. Lookups are case-insensitive on id.
type Registry interface {
	FindByID(ctx context.Context, id string) (*registration.Registration, error)
	CheckIn(ctx context.Context, id string) (*registration.Registration, error)
}

// Result describes one accepted scan. Beep and Vibrate are feedback cues
// for the operator's device; they fire on acceptance whether or not the id
// matched a record.
type Result struct {
	ScannedID        string                     `json:"scannedId"`
	Matched          bool                       `json:"matched"`
	Participant      *registration.Registration `json:"participant,omitempty"`
	AlreadyCheckedIn bool                       `json:"alreadyCheckedIn"`
	Beep             bool                       `json:"beep"`
	Vibrate          bool                       `json:"vibrate"`
}

// Session is one scanning run: Idle until Start, then Scanning with a
// cooldown window after each accepted payload. Safe for a reader goroutine
// plus teardown.
type Session struct {
	ID       uuid.UUID
	registry Registry
	now      func() time.Time

	mu            sync.Mutex
	phase         Phase
	cooldownUntil time.Time
	recent        []registration.Registration
	closed        bool
}

func NewSession(registry Registry) *Session {
	return &Session{ID: uuid.New(), registry: registry, now: time.Now, phase: PhaseIdle}
}

// Start moves the session into Scanning. The caller reports camera
// acquisition failures separately; a session that never starts still must
// be closed.
func (s *Session) Start() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closed {
		return ErrClosed
	}
	s.phase = PhaseScanning
	return nil
}

func (s *Session) Phase() Phase {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.phase == PhaseMatched && !s.now().Before(s.cooldownUntil) {
		s.phase = PhaseScanning
	}
	return s.phase
}

// HandleFrame processes one decoded frame. A frame that is not a valid
// entry payload, or that arrives during cooldown, yields (nil, nil):
// scanning simply continues. A non-nil Result means the payload was
// accepted; Matched reports whether it resolved to a record. Only registry
// failures surface as errors.
func (s *Session) HandleFrame(ctx context.Context, frame string) (*Result, error) {
	s.mu.Lock()
	if s.closed {
		s.mu.Unlock()
		return nil, ErrClosed
	}
	if s.phase == PhaseIdle {
		s.mu.Unlock()
		return nil, nil
	}
	now := s.now()
	if s.phase == PhaseMatched {
		if now.Before(s.cooldownUntil) {
			s.mu.Unlock()
			return nil, nil
		}
		s.phase = PhaseScanning
	}

	p, err := pass.Parse(frame)
	if err != nil {
		// Bad frame: ignore and keep scanning.
		s.mu.Unlock()
		return nil, nil
	}

	// Accepted: arm the cooldown before releasing the lock so a racing
	// frame cannot double-accept.
	s.phase = PhaseMatched
	s.cooldownUntil = now.Add(Cooldown)
	s.mu.Unlock()

	res := &Result{ScannedID: p.ID, Beep: true, Vibrate: true}

	reg, err := s.registry.FindByID(ctx, p.ID)
	if errors.Is(err, sql.ErrNoRows) {
		return res, nil
	}
	if err != nil {
		return nil, err
	}

	if reg.Status == registration.StatusCheckedIn {
		res.AlreadyCheckedIn = true
	} else {
		reg, err = s.registry.CheckIn(ctx, reg.ID)
		if err != nil {
			return nil, err
		}
	}
	res.Matched = true
	res.Participant = reg

	s.mu.Lock()
	s.pushRecent(*reg)
	s.mu.Unlock()
	return res, nil
}

// pushRecent keeps the last few distinct check-ins, newest first.
// Callers hold s.mu.
func (s *Session) pushRecent(reg registration.Registration) {
	kept := make([]registration.Registration, 0, recentLimit)
	kept = append(kept, reg)
	for _, r := range s.recent {
		if r.ID != reg.ID && len(kept) < recentLimit {
			kept = append(kept, r)
		}
	}
	s.recent = kept
}

// Recent returns the recent check-in list, newest first.
func (s *Session) Recent() []registration.Registration {
	s.mu.Lock()
	defer s.mu.Unlock()
	out := make([]registration.Registration, len(s.recent))
	copy(out, s.recent)
	return out
}

// Close releases the session. It is idempotent and must run on every exit
// path of the owning view, including error paths.
func (s *Session) Close() {
	s.mu.Lock()
	defer s.mu.Unlock()
	s.closed = true
	s.phase = PhaseIdle
}
