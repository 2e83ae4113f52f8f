package wizard

import (
	"encoding/json"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/gceelixir/symposium/internal/registration"
)

func validDetails() Details {
	return Details{
		Name:       "Asha R",
		College:    "GCE",
		Department: "ECE",
		Email:      "Asha@Example.COM",
		Phone:      "9876543210",
	}
}

func TestNextRequiresSelection(t *testing.T) {
	w := New()
	assert.ErrorIs(t, w.Next(), ErrNoEvents)
	assert.Equal(t, StepSelectEvents, w.Step)

	require.NoError(t, w.ToggleEvent("tech-hunt"))
	require.NoError(t, w.Next())
	assert.Equal(t, StepEnterDetails, w.Step)
}

func TestNextValidatesDetails(t *testing.T) {
	w := New()
	require.NoError(t, w.ToggleEvent("tech-hunt"))
	require.NoError(t, w.Next())

	d := validDetails()
	d.Email = "not-an-email"
	w.SetDetails(d)
	assert.ErrorIs(t, w.Next(), ErrDetailsInvalid)

	w.SetDetails(validDetails())
	require.NoError(t, w.Next())
	assert.Equal(t, StepPayment, w.Step)
}

func TestToggleEventResizesTeam(t *testing.T) {
	w := New()
	require.NoError(t, w.ToggleEvent("short-film"))
	assert.Len(t, w.TeamMembers, 4)

	require.NoError(t, w.SetTeamMember(0, "Vikram"))
	require.NoError(t, w.SetTeamMember(1, "Ravi"))

	// Dropping the large event shrinks the roster but keeps the prefix.
	require.NoError(t, w.ToggleEvent("tech-hunt"))
	require.NoError(t, w.ToggleEvent("short-film"))
	assert.Equal(t, []string{"Vikram"}, w.TeamMembers)

	assert.ErrorIs(t, w.ToggleEvent("bogus"), ErrUnknownEvent)
}

func TestPreselectReplacesSelection(t *testing.T) {
	w := New()
	require.NoError(t, w.ToggleEvent("tech-hunt"))
	require.NoError(t, w.ToggleEvent("quicktalk"))

	w.Preselect("short-film")
	assert.Equal(t, []string{"short-film"}, w.SelectedEvents)
	assert.Len(t, w.TeamMembers, 4)

	// Unknown ids and already selected ids leave the state alone.
	w.Preselect("bogus")
	assert.Equal(t, []string{"short-film"}, w.SelectedEvents)
	w.Preselect("short-film")
	assert.Equal(t, []string{"short-film"}, w.SelectedEvents)
}

func TestDigitFiltering(t *testing.T) {
	w := New()

	d := validDetails()
	d.Phone = "(98) 765-43210 ext 99"
	w.SetDetails(d)
	assert.Equal(t, "9876543210", w.Details.Phone)

	w.SetTransactionID("TXN 1234-5678-9012 345")
	assert.Equal(t, "123456789012", w.TransactionID)
}

func TestFinalize(t *testing.T) {
	w := New()
	require.NoError(t, w.ToggleEvent("tech-hunt"))
	require.NoError(t, w.Next())
	w.SetDetails(validDetails())
	require.NoError(t, w.Next())
	require.NoError(t, w.SetTeamMember(0, " Vikram "))

	_, err := w.Finalize(time.Now())
	assert.ErrorIs(t, err, ErrBadTransaction)

	w.SetTransactionID("123456789012")
	assert.True(t, w.CanSubmit())

	now := time.Now().UTC()
	reg, err := w.Finalize(now)
	require.NoError(t, err)

	assert.Len(t, reg.ID, 9)
	assert.Equal(t, "asha@example.com", reg.Email)
	assert.Equal(t, registration.StringList{"Vikram"}, reg.TeamMembers)
	assert.Equal(t, registration.StringList{"TECH HUNT"}, reg.Events)
	assert.Equal(t, 500, reg.TotalFee)
	assert.Equal(t, registration.StatusPending, reg.Status)
	assert.Equal(t, now, reg.Timestamp)

	w.Complete(reg)
	assert.Equal(t, StepDone, w.Step)
	assert.ErrorIs(t, w.ToggleEvent("tech-hunt"), ErrFinished)
}

func TestFinalizeRequiresPaymentStep(t *testing.T) {
	w := New()
	_, err := w.Finalize(time.Now())
	assert.ErrorIs(t, err, ErrNotAtPayment)
}

func TestFailRetainsStateAndBackClearsError(t *testing.T) {
	w := New()
	require.NoError(t, w.ToggleEvent("tech-hunt"))
	require.NoError(t, w.Next())
	w.SetDetails(validDetails())
	require.NoError(t, w.Next())
	w.SetTransactionID("123456789012")

	w.Fail("Submission failed. Please try again.")
	assert.Equal(t, StepPayment, w.Step)
	assert.Equal(t, "123456789012", w.TransactionID)
	assert.NotEmpty(t, w.SubmitError)

	w.Back()
	assert.Equal(t, StepEnterDetails, w.Step)
	assert.Empty(t, w.SubmitError)
	assert.Equal(t, "Asha R", w.Details.Name)
}

func TestFieldErrors(t *testing.T) {
	w := New()
	assert.Empty(t, w.FieldErrors())

	w.Details.Email = "broken"
	w.Details.Phone = "12345"
	w.TransactionID = "1234"

	errs := w.FieldErrors()
	assert.Equal(t, "Invalid email address format", errs["email"])
	assert.Equal(t, "Phone number must be 10 digits", errs["phone"])
	assert.Equal(t, "Transaction ID must be 12 digits", errs["transactionId"])
}

func TestWizardSurvivesSessionRoundTrip(t *testing.T) {
	w := New()
	require.NoError(t, w.ToggleEvent("tech-hunt"))
	require.NoError(t, w.Next())
	w.SetDetails(validDetails())

	b, err := json.Marshal(w)
	require.NoError(t, err)

	var restored Wizard
	require.NoError(t, json.Unmarshal(b, &restored))
	assert.Equal(t, w.Step, restored.Step)
	assert.Equal(t, w.SelectedEvents, restored.SelectedEvents)
	assert.Equal(t, w.Details, restored.Details)
}
