package store

import (
	"context"

	"github.com/jmoiron/sqlx"

	"github.com/gceelixir/symposium/internal/registration"
)

type RegistrationStore struct {
	db *sqlx.DB
}

func NewRegistrationStore(db *sqlx.DB) *RegistrationStore {
	return &RegistrationStore{db: db}
}

func (s *RegistrationStore) Create(ctx context.Context, reg *registration.Registration) error {
	_, err := s.db.NamedExecContext(ctx, `INSERT INTO registrations (id, name, college, department, email, phone, team_members, events, total_fee, transaction_id, status, timestamp)
        VALUES (:id, :name, :college, :department, :email, :phone, :team_members, :events, :total_fee, :transaction_id, :status, :timestamp)`, reg)
	return err
}

// UpdateStatus overwrites the status unconditionally; the most recent
// admin action wins.
func (s *RegistrationStore) UpdateStatus(ctx context.Context, id string, status registration.Status) error {
	_, err := s.db.ExecContext(ctx, "UPDATE registrations SET status = ? WHERE id = ? COLLATE NOCASE", status, id)
	return err
}

// GetByID matches the id case-insensitively; scanned ids may arrive in
// either case.
func (s *RegistrationStore) GetByID(ctx context.Context, id string) (*registration.Registration, error) {
	var reg registration.Registration
	err := s.db.GetContext(ctx, &reg, "SELECT * FROM registrations WHERE id = ? COLLATE NOCASE", id)
	return &reg, err
}

// GetByEmail returns the registrant's most recent record. Emails are
// stored lowercased but looked up case-insensitively.
func (s *RegistrationStore) GetByEmail(ctx context.Context, email string) (*registration.Registration, error) {
	var reg registration.Registration
	err := s.db.GetContext(ctx, &reg, "SELECT * FROM registrations WHERE email = LOWER(?) ORDER BY timestamp DESC LIMIT 1", email)
	return &reg, err
}

func (s *RegistrationStore) ListByEmail(ctx context.Context, email string) ([]registration.Registration, error) {
	var regs []registration.Registration
	err := s.db.SelectContext(ctx, &regs, "SELECT * FROM registrations WHERE email = LOWER(?) ORDER BY timestamp DESC", email)
	return regs, err
}

func (s *RegistrationStore) ListAll(ctx context.Context) ([]registration.Registration, error) {
	var regs []registration.Registration
	err := s.db.SelectContext(ctx, &regs, "SELECT * FROM registrations ORDER BY timestamp DESC")
	return regs, err
}
