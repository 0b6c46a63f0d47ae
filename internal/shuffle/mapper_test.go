package shuffle

import (
	"reflect"
	"testing"

	"github.com/aeroquiz/aeroquiz/internal/catalog"
)

func clientCatalog(t *testing.T) []catalog.ClientQuestion {
	t.Helper()
	return catalog.ClientQuestions(catalog.Default())
}

func TestBuildQuestionOrderMatchesShuffledList(t *testing.T) {
	shuffled, mapping := Build(clientCatalog(t), "fixed-seed")

	if len(mapping.QuestionOrder) != len(shuffled) {
		t.Fatalf("order length %d, questions %d", len(mapping.QuestionOrder), len(shuffled))
	}
	for i, q := range shuffled {
		if mapping.QuestionOrder[i] != q.ID {
			t.Fatalf("position %d: order says %q, question is %q", i, mapping.QuestionOrder[i], q.ID)
		}
	}
}

func TestBuildTextQuestionsGetNoChoiceMapping(t *testing.T) {
	_, mapping := Build(clientCatalog(t), "fixed-seed")

	for _, cm := range mapping.ChoiceMappings {
		if cm.QuestionID == "1" || cm.QuestionID == "2" || cm.QuestionID == "3" {
			t.Fatalf("text question %q has a choice mapping", cm.QuestionID)
		}
	}
	// seven choice-bearing questions in the default catalog
	if len(mapping.ChoiceMappings) != 7 {
		t.Fatalf("want 7 choice mappings, got %d", len(mapping.ChoiceMappings))
	}
}

func TestBuildMappingsAreMutualInverses(t *testing.T) {
	questions := clientCatalog(t)
	_, mapping := Build(questions, "invert-me")

	byID := map[string]catalog.ClientQuestion{}
	for _, q := range questions {
		byID[q.ID] = q
	}

	for _, cm := range mapping.ChoiceMappings {
		n := len(byID[cm.QuestionID].Choices)
		if len(cm.OriginalToShuffled) != n || len(cm.ShuffledToOriginal) != n {
			t.Fatalf("question %s: table sizes %d/%d, want %d", cm.QuestionID,
				len(cm.OriginalToShuffled), len(cm.ShuffledToOriginal), n)
		}
		for orig := 0; orig < n; orig++ {
			shuf, ok := cm.OriginalToShuffled[orig]
			if !ok {
				t.Fatalf("question %s: no forward entry for %d", cm.QuestionID, orig)
			}
			if shuf < 0 || shuf >= n {
				t.Fatalf("question %s: forward maps %d out of range to %d", cm.QuestionID, orig, shuf)
			}
			if back := cm.ShuffledToOriginal[shuf]; back != orig {
				t.Fatalf("question %s: %d -> %d -> %d is not identity", cm.QuestionID, orig, shuf, back)
			}
		}
	}
}

func TestBuildShuffledChoicesMatchMapping(t *testing.T) {
	questions := clientCatalog(t)
	shuffled, mapping := Build(questions, "check-values")

	orig := map[string]catalog.ClientQuestion{}
	for _, q := range questions {
		orig[q.ID] = q
	}

	for _, q := range shuffled {
		cm, ok := mapping.ChoiceMap(q.ID)
		if !ok {
			continue
		}
		for origIdx, shufIdx := range cm.OriginalToShuffled {
			if want, got := orig[q.ID].Choices[origIdx], q.Choices[shufIdx]; want != got {
				t.Fatalf("question %s: original %d (%q) mapped to %d (%q)", q.ID, origIdx, want, shufIdx, got)
			}
		}
	}
}

func TestBuildChoiceOrderIndependentAcrossQuestions(t *testing.T) {
	// Two radio questions with identical choice labels must not share a
	// permutation, since each one shuffles under its own derived seed.
	questions := []catalog.ClientQuestion{
		{ID: "a", Type: catalog.TypeRadio, Prompt: "a?", Choices: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
		{ID: "b", Type: catalog.TypeRadio, Prompt: "b?", Choices: []string{"1", "2", "3", "4", "5", "6", "7", "8"}},
	}

	shuffled, _ := Build(questions, "shared")
	if reflect.DeepEqual(shuffled[0].Choices, shuffled[1].Choices) {
		t.Fatalf("both questions shuffled identically: %v", shuffled[0].Choices)
	}
}

func TestBuildDeterministicPerSeed(t *testing.T) {
	a1, m1 := Build(clientCatalog(t), "same")
	a2, m2 := Build(clientCatalog(t), "same")

	if !reflect.DeepEqual(a1, a2) {
		t.Fatal("same seed produced different question lists")
	}
	if !reflect.DeepEqual(m1, m2) {
		t.Fatal("same seed produced different mappings")
	}
}

func TestNewSeedUnique(t *testing.T) {
	seen := map[string]bool{}
	for i := 0; i < 1000; i++ {
		s := NewSeed()
		if s == "" {
			t.Fatal("empty seed")
		}
		if seen[s] {
			t.Fatalf("seed %q repeated", s)
		}
		seen[s] = true
	}
}
