package catalog

import "strings"

type QuestionType string

const (
	TypeText     QuestionType = "text"
	TypeRadio    QuestionType = "radio"
	TypeCheckbox QuestionType = "checkbox"
)

// Question is the server-side representation, answer key included.
// It must never be serialized toward a quiz taker; use Client() instead.
type Question struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"question"`
	Choices []string     `json:"choices,omitempty"`

	// Answer key, exactly one of these is meaningful per type.
	CorrectText    string `json:"correctText,omitempty"`
	CorrectIndex   int    `json:"correctIndex,omitempty"`
	CorrectIndexes []int  `json:"correctIndexes,omitempty"`
}

// ClientQuestion is a Question with the answer key stripped. The key fields
// are absent from the struct entirely, so there is nothing to forget to null.
type ClientQuestion struct {
	ID      string       `json:"id"`
	Type    QuestionType `json:"type"`
	Prompt  string       `json:"question"`
	Choices []string     `json:"choices,omitempty"`
}

// Client returns the taker-safe view of q. Choices are copied so callers can
// reorder them without touching the catalog.
func (q Question) Client() ClientQuestion {
	c := ClientQuestion{ID: q.ID, Type: q.Type, Prompt: q.Prompt}
	if len(q.Choices) > 0 {
		c.Choices = append([]string(nil), q.Choices...)
	}
	return c
}

// HasChoices reports whether the question type carries an ordered choice list.
func (q Question) HasChoices() bool {
	return q.Type == TypeRadio || q.Type == TypeCheckbox
}

// CanonicalID normalizes a question ID for comparison. Submitted IDs may
// arrive as JSON numbers or strings; both sides of every lookup go through
// this, never through ad-hoc conversion.
func CanonicalID(id string) string {
	return strings.TrimSpace(id)
}
