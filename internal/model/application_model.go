package model

import (
	"encoding/json"
	"fmt"
	"strings"
	"time"
)

type Status string

const (
	StatusApplied   Status = "Applied"
	StatusInterview Status = "Interview"
	StatusOffer     Status = "Offer"
	StatusRejected  Status = "Rejected"
)

// Stages is the fixed display order of the application lifecycle.
var Stages = []Status{StatusApplied, StatusInterview, StatusOffer, StatusRejected}

// Progress returns how many stages count as reached for display: the stage
// index plus one. Unknown statuses report 0. It says nothing about which
// stages the real process went through.
func Progress(s Status) int {
	for i, st := range Stages {
		if st == s {
			return i + 1
		}
	}
	return 0
}

// ReachedStages flags each entry of Stages as reached or not for s.
func ReachedStages(s Status) []bool {
	n := Progress(s)
	reached := make([]bool, len(Stages))
	for i := range reached {
		reached[i] = i < n
	}
	return reached
}

// Intent is the user's answer to the "did you apply?" prompt.
type Intent int

const (
	IntentDeclined Intent = iota
	IntentConfirmed
	IntentConfirmedPrior
)

func (i Intent) String() string {
	switch i {
	case IntentConfirmed:
		return "confirmed"
	case IntentConfirmedPrior:
		return "confirmed_prior"
	default:
		return "declined"
	}
}

// ParseIntent maps the labels the client sends to an Intent.
func ParseIntent(label string) (Intent, error) {
	switch strings.ToLower(strings.TrimSpace(label)) {
	case "applied", "yes", "confirmed":
		return IntentConfirmed, nil
	case "earlier", "applied earlier", "confirmed_prior":
		return IntentConfirmedPrior, nil
	case "no", "browsing", "just browsing", "declined":
		return IntentDeclined, nil
	}
	return IntentDeclined, fmt.Errorf("%w: %q", ErrUnknownIntent, label)
}

// Status resolves the status an intent creates. ok is false when the intent
// must not create a record.
func (i Intent) Status() (status Status, ok bool) {
	switch i {
	case IntentConfirmed, IntentConfirmedPrior:
		return StatusApplied, true
	}
	return "", false
}

// JobRef is the denormalized job reference stored on an Application.
type JobRef struct {
	JobID    string
	JobTitle string
	Company  string
}

// Application is a write-once record of a decision to pursue a posting.
// Extra holds whatever additional fields the client sent at creation.
type Application struct {
	ID        string
	JobID     string
	JobTitle  string
	Company   string
	Status    Status
	Timestamp time.Time
	Extra     map[string]json.RawMessage
}

// ReservedFields are owned by the server and never taken from client extras.
var ReservedFields = map[string]struct{}{
	"id":        {},
	"jobId":     {},
	"jobTitle":  {},
	"company":   {},
	"status":    {},
	"timestamp": {},
	"progress":  {},
	"reached":   {},
}

// ToMap flattens the application with its extras for encoding.
func (a Application) ToMap() map[string]any {
	out := make(map[string]any, len(a.Extra)+6)
	for k, v := range a.Extra {
		if _, reserved := ReservedFields[k]; reserved {
			continue
		}
		out[k] = v
	}
	if a.ID != "" {
		out["id"] = a.ID
	}
	out["jobId"] = a.JobID
	out["jobTitle"] = a.JobTitle
	out["company"] = a.Company
	out["status"] = a.Status
	out["timestamp"] = a.Timestamp
	return out
}

func (a Application) MarshalJSON() ([]byte, error) {
	return json.Marshal(a.ToMap())
}

func (a *Application) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}
	*a = Application{}
	for k, v := range raw {
		var err error
		switch k {
		case "id":
			err = json.Unmarshal(v, &a.ID)
		case "jobId":
			a.JobID = rawScalar(v)
		case "jobTitle":
			err = json.Unmarshal(v, &a.JobTitle)
		case "company":
			err = json.Unmarshal(v, &a.Company)
		case "status":
			err = json.Unmarshal(v, &a.Status)
		case "timestamp":
			err = json.Unmarshal(v, &a.Timestamp)
		case "progress", "reached":
		default:
			if a.Extra == nil {
				a.Extra = make(map[string]json.RawMessage)
			}
			a.Extra[k] = v
		}
		if err != nil {
			return fmt.Errorf("decode application field %s: %w", k, err)
		}
	}
	return nil
}

// rawScalar renders a JSON string or number as plain text. Job ids arrive
// as either depending on the feed.
func rawScalar(v json.RawMessage) string {
	var s string
	if err := json.Unmarshal(v, &s); err == nil {
		return s
	}
	return strings.TrimSpace(string(v))
}
