package registration

// Presentation is the copy shown on the status verification page for each
// lifecycle state.
type Presentation struct {
	Title   string `json:"title"`
	Message string `json:"message"`
	Tone    string `json:"tone"`
}

func Present(s Status) Presentation {
	switch s {
	case StatusCheckedIn:
		return Presentation{
			Title:   "Check-in Confirmed",
			Message: "Welcome to ELIXIR'26! Your physical entry has been verified at the venue gate.",
			Tone:    "info",
		}
	case StatusConfirmed:
		return Presentation{
			Title:   "Payment Verified",
			Message: "Your payment has been successfully verified! Your entry pass is now active in the dashboard.",
			Tone:    "success",
		}
	case StatusRejected:
		return Presentation{
			Title:   "Issue Detected",
			Message: "There was an issue verifying your transaction. Please visit the help desk or contact us.",
			Tone:    "danger",
		}
	default:
		return Presentation{
			Title:   "Awaiting Verification",
			Message: "We've received your registration. Our team is currently verifying your transaction ID.",
			Tone:    "warning",
		}
	}
}
