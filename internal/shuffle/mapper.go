package shuffle

import (
	"github.com/google/uuid"

	"github.com/aeroquiz/aeroquiz/internal/catalog"
)

// ChoiceMapping is the bidirectional index table for one choice-bearing
// question. Both maps are exact inverses over that question's choice range;
// text questions have no entry at all.
type ChoiceMapping struct {
	QuestionID         string      `json:"questionId"`
	OriginalToShuffled map[int]int `json:"originalToShuffled"`
	ShuffledToOriginal map[int]int `json:"shuffledToOriginal"`
}

// Mapping is the complete per-session shuffle state. It is handed to the
// client together with the shuffled questions and echoed back at submission;
// the server keeps no copy.
type Mapping struct {
	Seed           string          `json:"seed"`
	QuestionOrder  []string        `json:"questionOrder"`
	ChoiceMappings []ChoiceMapping `json:"choiceMappings"`
}

// ChoiceMap looks up the mapping for one question.
func (m Mapping) ChoiceMap(questionID string) (ChoiceMapping, bool) {
	id := catalog.CanonicalID(questionID)
	for _, cm := range m.ChoiceMappings {
		if catalog.CanonicalID(cm.QuestionID) == id {
			return cm, true
		}
	}
	return ChoiceMapping{}, false
}

// NewSeed generates a fresh session seed. Uniqueness is what matters;
// the seed is public once the session starts.
func NewSeed() string {
	return uuid.NewString()
}

// choiceSeed derives the per-question seed so choice order is independent
// across questions even under one session seed.
func choiceSeed(seed, questionID string) string {
	return seed + "-" + questionID
}

// Build shuffles question order under seed and each question's choices under
// its derived seed, and records the index tables needed to translate
// submissions back to canonical order.
func Build(questions []catalog.ClientQuestion, seed string) ([]catalog.ClientQuestion, Mapping) {
	shuffled := Slice(questions, seed)

	order := make([]string, 0, len(shuffled))
	for _, q := range shuffled {
		order = append(order, q.ID)
	}

	mapping := Mapping{Seed: seed, QuestionOrder: order}

	out := make([]catalog.ClientQuestion, 0, len(shuffled))
	for _, q := range shuffled {
		if q.Type == catalog.TypeText || len(q.Choices) == 0 {
			out = append(out, q)
			continue
		}

		original := q.Choices
		shuffledChoices := Slice(original, choiceSeed(seed, q.ID))

		// Forward table by value identity, inverse as its exact mirror.
		forward := make(map[int]int, len(original))
		inverse := make(map[int]int, len(original))
		for origIdx, label := range original {
			shufIdx := indexOf(shuffledChoices, label)
			forward[origIdx] = shufIdx
			inverse[shufIdx] = origIdx
		}

		mapping.ChoiceMappings = append(mapping.ChoiceMappings, ChoiceMapping{
			QuestionID:         q.ID,
			OriginalToShuffled: forward,
			ShuffledToOriginal: inverse,
		})

		q.Choices = shuffledChoices
		out = append(out, q)
	}

	return out, mapping
}

func indexOf(list []string, v string) int {
	for i, s := range list {
		if s == v {
			return i
		}
	}
	return -1
}
