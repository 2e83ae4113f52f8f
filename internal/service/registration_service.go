package service

import (
	"context"
	"database/sql"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/gceelixir/symposium/internal/event"
	"github.com/gceelixir/symposium/internal/notify"
	"github.com/gceelixir/symposium/internal/registration"
	"github.com/gceelixir/symposium/internal/store"
)

var ErrNotFound = errors.New("service: registration not found")

type RegistrationService struct {
	store *store.RegistrationStore
	hub   *notify.Hub
}

func NewRegistrationService(store *store.RegistrationStore, hub *notify.Hub) *RegistrationService {
	return &RegistrationService{store: store, hub: hub}
}

// Submit persists a finalized registration and announces it to live
// subscribers.
func (s *RegistrationService) Submit(ctx context.Context, reg registration.Registration) error {
	if err := s.store.Create(ctx, &reg); err != nil {
		return fmt.Errorf("creating registration: %w", err)
	}
	s.hub.Publish(notify.Change{Op: notify.OpInsert, Registration: reg})
	return nil
}

type WalkInInput struct {
	Name        string   `json:"name" validate:"required"`
	College     string   `json:"college" validate:"required"`
	Department  string   `json:"department"`
	Email       string   `json:"email" validate:"required,email"`
	Phone       string   `json:"phone" validate:"required,len=10"`
	TeamMembers []string `json:"teamMembers"`
	EventIDs    []string `json:"eventIds" validate:"required,min=1"`
}

// CreateWalkIn registers an on-spot participant from the admin console.
// Walk-ins are Confirmed immediately, pay cash at the desk, and carry a
// zero online fee.
func (s *RegistrationService) CreateWalkIn(ctx context.Context, in WalkInInput) (*registration.Registration, error) {
	reg := registration.Registration{
		ID:            registration.NewWalkInID(),
		Name:          in.Name,
		College:       in.College,
		Department:    in.Department,
		Email:         strings.ToLower(strings.TrimSpace(in.Email)),
		Phone:         in.Phone,
		TeamMembers:   event.NamedMembers(in.TeamMembers),
		Events:        event.Titles(in.EventIDs),
		TotalFee:      0,
		TransactionID: registration.WalkInTransactionID,
		Status:        registration.StatusConfirmed,
		Timestamp:     time.Now().UTC(),
	}
	if err := s.store.Create(ctx, &reg); err != nil {
		return nil, fmt.Errorf("creating walk-in registration: %w", err)
	}
	s.hub.Publish(notify.Change{Op: notify.OpInsert, Registration: reg})
	return &reg, nil
}

// Transition sets the status and announces the updated record. The write
// is unconditional; when two admins act on the same record the later
// action stands.
func (s *RegistrationService) Transition(ctx context.Context, id string, status registration.Status) (*registration.Registration, error) {
	if !status.Valid() {
		return nil, fmt.Errorf("invalid status %q", status)
	}
	if _, err := s.FindByID(ctx, id); err != nil {
		return nil, err
	}
	if err := s.store.UpdateStatus(ctx, id, status); err != nil {
		return nil, fmt.Errorf("updating status: %w", err)
	}
	reg, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	s.hub.Publish(notify.Change{Op: notify.OpUpdate, Registration: *reg})
	return reg, nil
}

func (s *RegistrationService) FindByID(ctx context.Context, id string) (*registration.Registration, error) {
	return s.store.GetByID(ctx, id)
}

// CheckIn marks the participant present. The scanner calls this exactly
// once per accepted scan; repeat scans are answered from the already
// checked-in state without another write.
func (s *RegistrationService) CheckIn(ctx context.Context, id string) (*registration.Registration, error) {
	return s.Transition(ctx, id, registration.StatusCheckedIn)
}

// FindByEmail returns the registrant's most recent record, or ErrNotFound.
func (s *RegistrationService) FindByEmail(ctx context.Context, email string) (*registration.Registration, error) {
	reg, err := s.store.GetByEmail(ctx, email)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, ErrNotFound
	}
	if err != nil {
		return nil, err
	}
	return reg, nil
}

func (s *RegistrationService) ListByEmail(ctx context.Context, email string) ([]registration.Registration, error) {
	return s.store.ListByEmail(ctx, email)
}

// List returns registrations newest first, optionally narrowed by a
// status and a free-text query over name, email and id.
func (s *RegistrationService) List(ctx context.Context, query string, status registration.Status) ([]registration.Registration, error) {
	regs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	if query == "" && status == "" {
		return regs, nil
	}
	q := strings.ToLower(strings.TrimSpace(query))
	filtered := make([]registration.Registration, 0, len(regs))
	for _, r := range regs {
		if status != "" && r.Status != status {
			continue
		}
		if q != "" &&
			!strings.Contains(strings.ToLower(r.Name), q) &&
			!strings.Contains(strings.ToLower(r.Email), q) &&
			!strings.Contains(strings.ToLower(r.ID), q) {
			continue
		}
		filtered = append(filtered, r)
	}
	return filtered, nil
}

type Stats struct {
	Total     int `json:"total"`
	Confirmed int `json:"confirmed"`
	Pending   int `json:"pending"`
	Present   int `json:"present"`
}

// ComputeStats summarizes the register for the admin dashboard. Confirmed
// counts everyone past verification, including those already checked in.
func (s *RegistrationService) ComputeStats(ctx context.Context) (Stats, error) {
	regs, err := s.store.ListAll(ctx)
	if err != nil {
		return Stats{}, err
	}
	var st Stats
	st.Total = len(regs)
	for _, r := range regs {
		switch r.Status {
		case registration.StatusConfirmed:
			st.Confirmed++
		case registration.StatusCheckedIn:
			st.Confirmed++
			st.Present++
		case registration.StatusPending:
			st.Pending++
		}
	}
	return st, nil
}

// ExportCSV renders the full register for download. Free-text columns are
// always quoted so names and event lists with commas survive any consumer.
func (s *RegistrationService) ExportCSV(ctx context.Context) ([]byte, error) {
	regs, err := s.store.ListAll(ctx)
	if err != nil {
		return nil, err
	}
	var b strings.Builder
	b.WriteString("ID,Name,College,Department,Email,Phone,Events,Total Fee,Transaction ID,Status,Timestamp\n")
	for _, r := range regs {
		txn := r.TransactionID
		if txn == "" {
			txn = "N/A"
		}
		fmt.Fprintf(&b, "%s,%s,%s,%s,%s,%s,%s,%d,%s,%s,%s\n",
			r.ID,
			csvQuote(r.Name),
			csvQuote(r.College),
			csvQuote(r.Department),
			r.Email,
			r.Phone,
			csvQuote(strings.Join(r.Events, ", ")),
			r.TotalFee,
			txn,
			r.Status,
			r.Timestamp.Format("2006-01-02 15:04:05"),
		)
	}
	return []byte(b.String()), nil
}

func csvQuote(s string) string {
	return `"` + strings.ReplaceAll(s, `"`, `""`) + `"`
}
