package resolver

import "fmt"

// Status classifies a resolution outcome.
type Status int

const (
	// NotFound means no strategy matched or the user declined a guess.
	NotFound Status = iota
	// Resolved means Zone holds the answer.
	Resolved
	// NeedsConfirmation means Zone is a low-confidence guess that the user
	// must accept before it is used. Spoken holds its speakable form.
	NeedsConfirmation
)

func (s Status) String() string {
	switch s {
	case Resolved:
		return "resolved"
	case NeedsConfirmation:
		return "needs_confirmation"
	case NotFound:
		return "not_found"
	default:
		return fmt.Sprintf("Status(%d)", int(s))
	}
}

// Outcome is the result of resolving one query.
type Outcome struct {
	Zone     string  `json:"timezone,omitempty"`
	Spoken   string  `json:"spoken,omitempty"`
	Strategy string  `json:"strategy,omitempty"`
	Score    float64 `json:"score,omitempty"`
	Status   Status  `json:"-"`
}

// Found reports whether the outcome carries a committed zone.
func (o Outcome) Found() bool {
	return o.Status == Resolved && o.Zone != ""
}

func resolved(strategy, zone string) Outcome {
	return Outcome{Status: Resolved, Zone: zone, Strategy: strategy, Score: 1}
}

// Candidate is the best fuzzy match seen for a query.
type Candidate struct {
	Zone  string
	Score float64
}
