package catalog

import "fmt"

// Store is a read-only source of canonical questions. Implementations load
// once at process start and stay immutable afterwards.
type Store interface {
	// Questions returns the catalog in canonical order.
	Questions() []Question
	// Get resolves a canonicalized ID to its question.
	Get(id string) (Question, bool)
	// Has reports whether id belongs to the fixed valid-ID set.
	Has(id string) bool
	// Size is the number of questions in the catalog.
	Size() int
}

type staticStore struct {
	questions []Question
	byID      map[string]Question
}

// NewStaticStore builds an in-memory store and checks the catalog invariants:
// unique IDs, choice lists present for choice types, answer indexes in range.
func NewStaticStore(questions []Question) (Store, error) {
	s := &staticStore{
		questions: append([]Question(nil), questions...),
		byID:      make(map[string]Question, len(questions)),
	}
	for _, q := range s.questions {
		id := CanonicalID(q.ID)
		if id == "" {
			return nil, fmt.Errorf("catalog: question with empty id")
		}
		if _, dup := s.byID[id]; dup {
			return nil, fmt.Errorf("catalog: duplicate question id %q", id)
		}
		if err := checkAnswerKey(q); err != nil {
			return nil, err
		}
		s.byID[id] = q
	}
	return s, nil
}

func checkAnswerKey(q Question) error {
	switch q.Type {
	case TypeText:
		if q.CorrectText == "" {
			return fmt.Errorf("catalog: question %q has no answer text", q.ID)
		}
	case TypeRadio:
		if len(q.Choices) == 0 {
			return fmt.Errorf("catalog: question %q has no choices", q.ID)
		}
		if q.CorrectIndex < 0 || q.CorrectIndex >= len(q.Choices) {
			return fmt.Errorf("catalog: question %q answer index %d out of range", q.ID, q.CorrectIndex)
		}
	case TypeCheckbox:
		if len(q.Choices) == 0 {
			return fmt.Errorf("catalog: question %q has no choices", q.ID)
		}
		if len(q.CorrectIndexes) == 0 {
			return fmt.Errorf("catalog: question %q has no answer indexes", q.ID)
		}
		for _, i := range q.CorrectIndexes {
			if i < 0 || i >= len(q.Choices) {
				return fmt.Errorf("catalog: question %q answer index %d out of range", q.ID, i)
			}
		}
	default:
		return fmt.Errorf("catalog: question %q has unknown type %q", q.ID, q.Type)
	}
	return nil
}

func (s *staticStore) Questions() []Question {
	return append([]Question(nil), s.questions...)
}

func (s *staticStore) Get(id string) (Question, bool) {
	q, ok := s.byID[CanonicalID(id)]
	return q, ok
}

func (s *staticStore) Has(id string) bool {
	_, ok := s.byID[CanonicalID(id)]
	return ok
}

func (s *staticStore) Size() int { return len(s.questions) }

// ClientQuestions strips the answer key from every catalog question.
func ClientQuestions(s Store) []ClientQuestion {
	qs := s.Questions()
	out := make([]ClientQuestion, 0, len(qs))
	for _, q := range qs {
		out = append(out, q.Client())
	}
	return out
}
