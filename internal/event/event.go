package event

type Category string

const (
	Technical    Category = "Technical"
	NonTechnical Category = "Non-Technical"
)

type Coordinator struct {
	Name  string `json:"name"`
	Phone string `json:"phone,omitempty"`
}

type Round struct {
	Name    string `json:"name"`
	Details string `json:"details"`
}

// Event is static reference data. MaxMembers is the team-size ceiling
// including the leader. Fee is informational only; the flat per-head rate
// in fee.go is what registration totals are computed from.
type Event struct {
	ID           string        `json:"id"`
	Title        string        `json:"title"`
	Category     Category      `json:"category"`
	MaxMembers   int           `json:"maxMembers"`
	Fee          int           `json:"fee"`
	Prize        string        `json:"prize"`
	Timing       string        `json:"timing"`
	Rounds       []Round       `json:"rounds,omitempty"`
	Rules        []string      `json:"rules"`
	Coordinators []Coordinator `json:"coordinators,omitempty"`
}

func ByID(id string) (Event, bool) {
	for _, e := range Catalog {
		if e.ID == id {
			return e, true
		}
	}
	return Event{}, false
}

// Titles maps event ids to their titles, skipping unknown ids.
// Registrations denormalize titles at submission time.
func Titles(ids []string) []string {
	titles := make([]string, 0, len(ids))
	for _, id := range ids {
		if e, ok := ByID(id); ok {
			titles = append(titles, e.Title)
		}
	}
	return titles
}
