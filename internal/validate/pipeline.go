package validate

import (
	"fmt"
	"strings"
	"time"

	"github.com/aeroquiz/aeroquiz/internal/catalog"
	"github.com/aeroquiz/aeroquiz/internal/grading"
	"github.com/aeroquiz/aeroquiz/internal/shuffle"
)

// Submission limits. An index bound of 10 leaves headroom over the largest
// catalog choice list; the structural stage only bounds magnitude, the
// translation and grading stages do the exact matching.
const (
	MaxTextLength    = 500
	MaxChoiceIndex   = 10
	MaxSelections    = 10
	MaxAnswers       = 20
	DefaultTimeLimit = 5 * time.Minute
)

// Pipeline runs the five validation stages in order and fails on the first
// stage that rejects: structure (with in-stage sanitization), time limit,
// shuffle translation, type conformance. Later stages never see input an
// earlier stage rejected.
type Pipeline struct {
	Catalog   catalog.Store
	TimeLimit time.Duration

	// Now is the authoritative clock for elapsed-time checks. Defaults to
	// time.Now; never replaced by anything client-supplied.
	Now func() time.Time
}

func NewPipeline(cat catalog.Store, limit time.Duration) *Pipeline {
	if limit <= 0 {
		limit = DefaultTimeLimit
	}
	return &Pipeline{Catalog: cat, TimeLimit: limit, Now: time.Now}
}

// Run validates sub and returns its answers in canonical index space, ready
// for grading. The returned error is always one of the types in errors.go.
func (p *Pipeline) Run(sub Submission) ([]grading.Answer, error) {
	answers, err := p.checkStructure(sub)
	if err != nil {
		return nil, err
	}
	if err := p.checkElapsed(sub.StartedAt); err != nil {
		return nil, err
	}
	answers, err = p.translate(answers, sub.ShuffleMapping)
	if err != nil {
		return nil, err
	}
	if err := p.checkTypes(answers); err != nil {
		return nil, err
	}
	return answers, nil
}

// checkStructure enforces counts, the valid-ID set and value bounds, and
// sanitizes text values in the same pass. All violations are collected
// before failing so the caller sees every problem at once.
func (p *Pipeline) checkStructure(sub Submission) ([]grading.Answer, error) {
	var details []string

	if len(sub.Answers) == 0 {
		details = append(details, "At least one answer required")
	}
	if len(sub.Answers) > MaxAnswers {
		details = append(details, "Too many answers")
	}
	if sub.StartedAt <= 0 {
		details = append(details, "Start time must be positive")
	}

	out := make([]grading.Answer, 0, len(sub.Answers))
	for i, a := range sub.Answers {
		id := catalog.CanonicalID(string(a.ID))
		if !p.Catalog.Has(id) {
			details = append(details, fmt.Sprintf("answers[%d]: Invalid question ID", i))
		}

		v := a.Value
		switch {
		case v.invalid != "":
			details = append(details, fmt.Sprintf("answers[%d]: %s", i, v.invalid))
		case v.Kind == grading.KindText:
			if len(v.Text) > MaxTextLength {
				details = append(details, fmt.Sprintf("answers[%d]: Text answer too long", i))
			}
			v.Text = sanitizeText(v.Text)
		case v.Kind == grading.KindChoice:
			if v.Choice < 0 {
				details = append(details, fmt.Sprintf("answers[%d]: Answer cannot be negative", i))
			} else if v.Choice > MaxChoiceIndex {
				details = append(details, fmt.Sprintf("answers[%d]: Answer index out of bounds", i))
			}
		case v.Kind == grading.KindMulti:
			if len(v.Multi) > MaxSelections {
				details = append(details, fmt.Sprintf("answers[%d]: Too many selections", i))
			}
			for _, idx := range v.Multi {
				if idx < 0 || idx > MaxChoiceIndex {
					details = append(details, fmt.Sprintf("answers[%d]: Answer index out of bounds", i))
					break
				}
			}
		}

		out = append(out, grading.Answer{ID: id, Value: grading.Value{
			Kind:   v.Kind,
			Text:   v.Text,
			Choice: v.Choice,
			Multi:  v.Multi,
		}})
	}

	if len(details) > 0 {
		return nil, &StructuralError{Details: details}
	}
	return out, nil
}

// sanitizeText strips angle brackets so nothing submitted can carry markup,
// then trims surrounding whitespace. The sanitized value is what grading
// compares; the raw value is gone after this stage.
func sanitizeText(s string) string {
	s = strings.ReplaceAll(s, "<", "")
	s = strings.ReplaceAll(s, ">", "")
	s = strings.TrimSpace(s)
	if len(s) > MaxTextLength {
		s = s[:MaxTextLength]
	}
	return s
}

// checkElapsed enforces the quiz time budget against this process's clock.
// Exactly at the budget passes; one millisecond over does not.
func (p *Pipeline) checkElapsed(startedAt int64) error {
	now := time.Now
	if p.Now != nil {
		now = p.Now
	}
	elapsed := now().UnixMilli() - startedAt
	limit := p.TimeLimit.Milliseconds()
	if elapsed > limit {
		return &TimeLimitError{LimitMillis: limit, ElapsedMillis: elapsed}
	}
	return nil
}

// translate maps choice indexes from shuffled space back to canonical space.
// A nil mapping means the submission was never shuffled and indexes are
// already canonical. Questions without a choice mapping (text questions) pass
// through unchanged. An index the mapping does not cover fails closed rather
// than passing a guessed value to grading.
func (p *Pipeline) translate(answers []grading.Answer, mapping *shuffle.Mapping) ([]grading.Answer, error) {
	if mapping == nil {
		return answers, nil
	}
	out := make([]grading.Answer, 0, len(answers))
	for _, a := range answers {
		cm, ok := mapping.ChoiceMap(a.ID)
		if !ok {
			out = append(out, a)
			continue
		}
		switch a.Value.Kind {
		case grading.KindChoice:
			orig, ok := cm.ShuffledToOriginal[a.Value.Choice]
			if !ok {
				return nil, &StructuralError{Details: []string{
					fmt.Sprintf("question %s: choice index %d is not in the shuffle mapping", a.ID, a.Value.Choice),
				}}
			}
			a.Value.Choice = orig
		case grading.KindMulti:
			translated := make([]int, 0, len(a.Value.Multi))
			for _, idx := range a.Value.Multi {
				orig, ok := cm.ShuffledToOriginal[idx]
				if !ok {
					return nil, &StructuralError{Details: []string{
						fmt.Sprintf("question %s: choice index %d is not in the shuffle mapping", a.ID, idx),
					}}
				}
				translated = append(translated, orig)
			}
			a.Value.Multi = translated
		}
		out = append(out, a)
	}
	return out, nil
}

// checkTypes verifies, after translation, that every answer's value shape
// matches its question's type.
func (p *Pipeline) checkTypes(answers []grading.Answer) error {
	for _, a := range answers {
		q, ok := p.Catalog.Get(a.ID)
		if !ok {
			return &NotFoundError{QuestionID: a.ID}
		}
		switch q.Type {
		case catalog.TypeText:
			if a.Value.Kind != grading.KindText {
				return &TypeMismatchError{QuestionID: a.ID, Expected: "text"}
			}
		case catalog.TypeRadio:
			if a.Value.Kind != grading.KindChoice {
				return &TypeMismatchError{QuestionID: a.ID, Expected: "number"}
			}
		case catalog.TypeCheckbox:
			if a.Value.Kind != grading.KindMulti {
				return &TypeMismatchError{QuestionID: a.ID, Expected: "array"}
			}
		}
	}
	return nil
}
