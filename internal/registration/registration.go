package registration

import (
	"crypto/rand"
	"database/sql/driver"
	"encoding/json"
	"fmt"
	"time"
)

// Transaction id recorded for desk entries created by an admin.
const WalkInTransactionID = "ON-SPOT"

type Status string

// Canonical lifecycle values as stored. The strings double as the
// user-visible labels, so they must not change.
const (
	StatusPending   Status = "Payment Pending Verification"
	StatusConfirmed Status = "Confirmed"
	StatusRejected  Status = "Rejected"
	StatusCheckedIn Status = "Checked In"
)

func (s Status) Valid() bool {
	switch s {
	case StatusPending, StatusConfirmed, StatusRejected, StatusCheckedIn:
		return true
	}
	return false
}

// Display returns the short badge label used in list views.
func (s Status) Display() string {
	if s == StatusPending {
		return "PENDING"
	}
	return string(s)
}

// StringList stores a []string as a JSON TEXT column.
type StringList []string

func (l StringList) Value() (driver.Value, error) {
	if l == nil {
		l = StringList{}
	}
	b, err := json.Marshal(l)
	if err != nil {
		return nil, err
	}
	return string(b), nil
}

func (l *StringList) Scan(src any) error {
	switch v := src.(type) {
	case nil:
		*l = StringList{}
		return nil
	case []byte:
		return json.Unmarshal(v, l)
	case string:
		return json.Unmarshal([]byte(v), l)
	}
	return fmt.Errorf("cannot scan %T into StringList", src)
}

type Registration struct {
	ID            string     `db:"id" json:"id"`
	Name          string     `db:"name" json:"name"`
	College       string     `db:"college" json:"college"`
	Department    string     `db:"department" json:"department"`
	Email         string     `db:"email" json:"email"`
	Phone         string     `db:"phone" json:"phone"`
	TeamMembers   StringList `db:"team_members" json:"teamMembers"`
	Events        StringList `db:"events" json:"events"`
	TotalFee      int        `db:"total_fee" json:"totalFee"`
	TransactionID string     `db:"transaction_id" json:"transactionId"`
	Status        Status     `db:"status" json:"status"`
	Timestamp     time.Time  `db:"timestamp" json:"timestamp"`
}

// PassEligible reports whether an entry pass may be issued.
func (r Registration) PassEligible() bool {
	return r.Status == StatusConfirmed || r.Status == StatusCheckedIn
}

func (r Registration) IsWalkIn() bool {
	return r.TransactionID == WalkInTransactionID
}

const idAlphabet = "0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZ"

func randomToken(n int) string {
	b := make([]byte, n)
	if _, err := rand.Read(b); err != nil {
		panic(err) // crypto/rand never fails on supported platforms
	}
	for i := range b {
		b[i] = idAlphabet[int(b[i])%len(idAlphabet)]
	}
	return string(b)
}

// NewID generates a 9-character participant registration id.
func NewID() string {
	return randomToken(9)
}

// NewWalkInID generates an admin-prefixed id for desk entries.
func NewWalkInID() string {
	return "MAN-" + randomToken(6)
}

// Upsert merges a change into a list keyed by id: replace in place when the
// id is already present, otherwise prepend. Duplicate deliveries of the same
// change are therefore harmless.
func Upsert(list []Registration, reg Registration) []Registration {
	for i := range list {
		if list[i].ID == reg.ID {
			list[i] = reg
			return list
		}
	}
	return append([]Registration{reg}, list...)
}
