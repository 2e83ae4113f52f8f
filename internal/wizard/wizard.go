// Package wizard drives the four-step registration flow. The state is a
// plain serializable struct so it can live in the visitor's session between
// requests; every transition validates its guard, so a later step is only
// reachable through its predecessor.
package wizard

import (
	"errors"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"

	"github.com/gceelixir/symposium/internal/event"
	"github.com/gceelixir/symposium/internal/registration"
)

type Step int

const (
	StepSelectEvents Step = iota + 1
	StepEnterDetails
	StepPayment
	StepDone
)

var (
	ErrNoEvents       = errors.New("wizard: select at least one event")
	ErrUnknownEvent   = errors.New("wizard: unknown event id")
	ErrDetailsInvalid = errors.New("wizard: participant details incomplete or invalid")
	ErrNotAtPayment   = errors.New("wizard: not at the payment step")
	ErrBadTransaction = errors.New("wizard: transaction id must be 12 digits")
	ErrFinished       = errors.New("wizard: registration already completed")
)

var validate = validator.New()

// Details is the leader's profile, entered at step 2.
type Details struct {
	Name       string `json:"name" validate:"required"`
	College    string `json:"college" validate:"required"`
	Department string `json:"department" validate:"required"`
	Email      string `json:"email" validate:"required,email"`
	Phone      string `json:"phone" validate:"required,len=10"`
}

type Wizard struct {
	Step           Step                       `json:"step"`
	SelectedEvents []string                   `json:"selectedEvents"`
	TeamMembers    []string                   `json:"teamMembers"`
	Details        Details                    `json:"details"`
	TransactionID  string                     `json:"transactionId"`
	SubmitError    string                     `json:"submitError,omitempty"`
	Result         *registration.Registration `json:"result,omitempty"`
}

func New() *Wizard {
	return &Wizard{Step: StepSelectEvents, SelectedEvents: []string{}, TeamMembers: []string{}}
}

// digits strips non-digit characters and caps the length, mirroring the
// input filtering on the phone and transaction-id fields.
func digits(s string, max int) string {
	var b strings.Builder
	for _, r := range s {
		if r >= '0' && r <= '9' {
			b.WriteRune(r)
		}
		if b.Len() == max {
			break
		}
	}
	return b.String()
}

func (w *Wizard) selected(id string) bool {
	for _, s := range w.SelectedEvents {
		if s == id {
			return true
		}
	}
	return false
}

func (w *Wizard) resizeTeam() {
	w.TeamMembers = event.ResizeTeam(w.TeamMembers, event.MaxTeamSize(w.SelectedEvents))
}

// ToggleEvent adds or removes an event from the selection and resizes the
// team-member slots, preserving earlier entries by position.
func (w *Wizard) ToggleEvent(id string) error {
	if w.Step == StepDone {
		return ErrFinished
	}
	if _, ok := event.ByID(id); !ok {
		return ErrUnknownEvent
	}
	if w.selected(id) {
		kept := w.SelectedEvents[:0]
		for _, s := range w.SelectedEvents {
			if s != id {
				kept = append(kept, s)
			}
		}
		w.SelectedEvents = kept
	} else {
		w.SelectedEvents = append(w.SelectedEvents, id)
	}
	w.resizeTeam()
	return nil
}

// Preselect honors a deep-link event parameter: a known id replaces the
// current selection outright, an unknown id is ignored.
func (w *Wizard) Preselect(id string) {
	if w.Step == StepDone {
		return
	}
	if _, ok := event.ByID(id); !ok {
		return
	}
	if w.selected(id) {
		return
	}
	w.SelectedEvents = []string{id}
	w.resizeTeam()
}

// SetDetails records the leader profile. The phone value is digit-filtered
// as typed, so non-digits never reach the stored state.
func (w *Wizard) SetDetails(d Details) {
	d.Phone = digits(d.Phone, 10)
	w.Details = d
}

func (w *Wizard) SetTeamMember(index int, name string) error {
	if index < 0 || index >= len(w.TeamMembers) {
		return errors.New("wizard: team member slot out of range")
	}
	w.TeamMembers[index] = name
	return nil
}

// SetTransactionID records the UPI reference, digit-filtered as typed.
func (w *Wizard) SetTransactionID(s string) {
	w.TransactionID = digits(s, 12)
}

// Next advances one step if the current step's guard passes.
func (w *Wizard) Next() error {
	switch w.Step {
	case StepSelectEvents:
		if len(w.SelectedEvents) == 0 {
			return ErrNoEvents
		}
		w.Step = StepEnterDetails
	case StepEnterDetails:
		if err := validate.Struct(w.Details); err != nil {
			return ErrDetailsInvalid
		}
		w.Step = StepPayment
	default:
		return ErrNotAtPayment
	}
	return nil
}

// Back steps to the previous screen and clears any pending submit error so
// a retry starts clean. Entered data is retained.
func (w *Wizard) Back() {
	w.SubmitError = ""
	if w.Step == StepEnterDetails || w.Step == StepPayment {
		w.Step--
	}
}

func (w *Wizard) CanSubmit() bool {
	return w.Step == StepPayment && len(w.TransactionID) == 12
}

// Finalize freezes the wizard into a registration record ready for the
// store: fresh id, denormalized event titles, trimmed roster, lowercased
// email, computed fee, Pending status. The wizard itself does not persist;
// the caller reports the outcome via Complete or Fail.
func (w *Wizard) Finalize(now time.Time) (registration.Registration, error) {
	if w.Step != StepPayment {
		return registration.Registration{}, ErrNotAtPayment
	}
	if len(w.TransactionID) != 12 {
		return registration.Registration{}, ErrBadTransaction
	}
	return registration.Registration{
		ID:            registration.NewID(),
		Name:          w.Details.Name,
		College:       w.Details.College,
		Department:    w.Details.Department,
		Email:         strings.ToLower(w.Details.Email),
		Phone:         w.Details.Phone,
		TeamMembers:   event.NamedMembers(w.TeamMembers),
		Events:        event.Titles(w.SelectedEvents),
		TotalFee:      w.TotalFee(),
		TransactionID: w.TransactionID,
		Status:        registration.StatusPending,
		Timestamp:     now,
	}, nil
}

// Complete moves to the final step, retaining the stored record for pass
// display.
func (w *Wizard) Complete(reg registration.Registration) {
	w.SubmitError = ""
	w.Result = &reg
	w.Step = StepDone
}

// Fail keeps the wizard on the payment step with the store's message; the
// transaction id is retained so the visitor can retry without re-entry.
func (w *Wizard) Fail(msg string) {
	w.SubmitError = msg
}

func (w *Wizard) MaxTeamSize() int { return event.MaxTeamSize(w.SelectedEvents) }

func (w *Wizard) ActiveCount() int { return event.ActiveMembers(w.TeamMembers) }

func (w *Wizard) TotalFee() int { return event.TotalFee(w.TeamMembers) }

// FieldErrors reports the inline validation messages for the current
// input values. Empty fields are not flagged here; emptiness only gates
// forward navigation.
func (w *Wizard) FieldErrors() map[string]string {
	errs := make(map[string]string)
	if w.Details.Email != "" {
		if err := validate.Var(w.Details.Email, "email"); err != nil {
			errs["email"] = "Invalid email address format"
		}
	}
	if w.Details.Phone != "" && len(w.Details.Phone) != 10 {
		errs["phone"] = "Phone number must be 10 digits"
	}
	if n := len(w.TransactionID); n > 0 && n < 12 {
		errs["transactionId"] = "Transaction ID must be 12 digits"
	}
	return errs
}
