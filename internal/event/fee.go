package event

import "strings"

// FeePerHead is the flat rate per participant in rupees. Fees are charged
// per person, not per event, so the per-event Fee field never enters the
// total.
const FeePerHead = 250

// MaxTeamSize returns the largest team-size ceiling among the selected
// events, or 1 when nothing is selected. Unknown ids are ignored.
func MaxTeamSize(selectedIDs []string) int {
	max := 0
	for _, id := range selectedIDs {
		if e, ok := ByID(id); ok && e.MaxMembers > max {
			max = e.MaxMembers
		}
	}
	if max == 0 {
		return 1
	}
	return max
}

// ResizeTeam adjusts an additional-members list to exactly maxTeamSize-1
// slots, preserving existing entries by position. New slots are padded with
// empty strings; surplus slots are truncated.
func ResizeTeam(members []string, maxTeamSize int) []string {
	size := maxTeamSize - 1
	if size < 0 {
		size = 0
	}
	resized := make([]string, size)
	copy(resized, members)
	return resized
}

// ActiveMembers counts entries whose trimmed value is non-empty. Blank
// slots never count toward the fee or the team presented at check-in.
func ActiveMembers(members []string) int {
	n := 0
	for _, m := range members {
		if strings.TrimSpace(m) != "" {
			n++
		}
	}
	return n
}

// TotalFee is (leader + active members) x flat rate, independent of the
// event selection.
func TotalFee(members []string) int {
	return (1 + ActiveMembers(members)) * FeePerHead
}

// NamedMembers returns the non-blank entries in order, trimmed. This is
// the roster frozen into a registration at submission.
func NamedMembers(members []string) []string {
	named := make([]string, 0, len(members))
	for _, m := range members {
		if t := strings.TrimSpace(m); t != "" {
			named = append(named, t)
		}
	}
	return named
}
