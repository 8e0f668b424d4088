package api

import "fmt"

// SafetyPlan is the five-field plan owned by the backend. Every field is a
// plain string; values coming off the wire are coerced, never left unset.
type SafetyPlan struct {
	WarningSigns         string `json:"warningSigns"`
	CopingStrategies     string `json:"copingStrategies"`
	People               string `json:"people"`
	Places               string `json:"places"`
	ProfessionalContacts string `json:"professionalContacts"`
}

// CrisisResource is read-only from the client's perspective. Every field may
// be absent; rendering must tolerate an entirely empty value.
type CrisisResource struct {
	Name        string `json:"name,omitempty"`
	Description string `json:"description,omitempty"`
	PhoneNumber string `json:"phone_number,omitempty"`
	TextNumber  string `json:"text_number,omitempty"`
	URL         string `json:"url,omitempty"`
}

// MoodItem is one logged mood as returned by the recent listing.
type MoodItem struct {
	ID   string   `json:"id,omitempty"`
	Mood int      `json:"mood"`
	Note string   `json:"note,omitempty"`
	Tags []string `json:"tags,omitempty"`
	TS   string   `json:"ts,omitempty"`
}

// ThoughtRecord is the structured record posted by the wizard. Emotions are
// already tokenized by the time they reach the wire.
type ThoughtRecord struct {
	Situation          string   `json:"situation"`
	Thoughts           string   `json:"thoughts"`
	Emotions           []string `json:"emotions"`
	Intensity          int      `json:"intensity"`
	EvidenceFor        string   `json:"evidence_for"`
	EvidenceAgainst    string   `json:"evidence_against"`
	AlternativeThought string   `json:"alternative_thought"`
}

// PlanFromPayload coerces a loose JSON object into a SafetyPlan. Absent or
// malformed values become strings via best-effort stringification so the
// plan is always fully populated.
func PlanFromPayload(payload interface{}) SafetyPlan {
	m, _ := payload.(map[string]interface{})
	return SafetyPlan{
		WarningSigns:         coerceString(m["warningSigns"]),
		CopingStrategies:     coerceString(m["copingStrategies"]),
		People:               coerceString(m["people"]),
		Places:               coerceString(m["places"]),
		ProfessionalContacts: coerceString(m["professionalContacts"]),
	}
}

func coerceString(v interface{}) string {
	switch s := v.(type) {
	case nil:
		return ""
	case string:
		return s
	default:
		return fmt.Sprintf("%v", s)
	}
}
