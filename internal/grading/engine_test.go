package grading

import (
	"reflect"
	"testing"

	"github.com/aeroquiz/aeroquiz/internal/catalog"
)

func testQuestions() []catalog.Question {
	return []catalog.Question{
		{ID: "1", Type: catalog.TypeText, Prompt: "capital of France?", CorrectText: "Paris"},
		{ID: "2", Type: catalog.TypeRadio, Prompt: "pick one", Choices: []string{"a", "b", "c", "d"}, CorrectIndex: 1},
		{ID: "3", Type: catalog.TypeCheckbox, Prompt: "pick some", Choices: []string{"a", "b", "c", "d", "e"}, CorrectIndexes: []int{1, 3, 4}},
	}
}

func text(s string) Value   { return Value{Kind: KindText, Text: s} }
func choice(i int) Value    { return Value{Kind: KindChoice, Choice: i} }
func multi(is ...int) Value { return Value{Kind: KindMulti, Multi: is} }

func correctness(r Response) map[string]bool {
	out := map[string]bool{}
	for _, qr := range r.Results {
		out[qr.ID] = qr.Correct
	}
	return out
}

func TestGradeTextTrimsAndFoldsCase(t *testing.T) {
	resp := Grade(testQuestions(), []Answer{{ID: "1", Value: text("  paris  ")}})

	if !correctness(resp)["1"] {
		t.Fatal(`"  paris  " should match "Paris"`)
	}
	if resp.Score != 1 || resp.Total != 3 {
		t.Fatalf("score %d/%d, want 1/3", resp.Score, resp.Total)
	}
}

func TestGradeTextWrongAnswer(t *testing.T) {
	resp := Grade(testQuestions(), []Answer{{ID: "1", Value: text("London")}})
	if correctness(resp)["1"] {
		t.Fatal("wrong text marked correct")
	}
}

func TestGradeRadioExactIndex(t *testing.T) {
	resp := Grade(testQuestions(), []Answer{{ID: "2", Value: choice(1)}})
	if !correctness(resp)["2"] {
		t.Fatal("correct index marked wrong")
	}

	resp = Grade(testQuestions(), []Answer{{ID: "2", Value: choice(2)}})
	if correctness(resp)["2"] {
		t.Fatal("wrong index marked correct")
	}
}

func TestGradeCheckboxOrderIrrelevant(t *testing.T) {
	resp := Grade(testQuestions(), []Answer{{ID: "3", Value: multi(4, 1, 3)}})
	if !correctness(resp)["3"] {
		t.Fatal("same set in different order marked wrong")
	}
}

func TestGradeCheckboxExtraSelectionFails(t *testing.T) {
	resp := Grade(testQuestions(), []Answer{{ID: "3", Value: multi(1, 3, 4, 0)}})
	if correctness(resp)["3"] {
		t.Fatal("superset marked correct")
	}
}

func TestGradeCheckboxDuplicateInflatesLength(t *testing.T) {
	// duplicates are not collapsed: {1,3,4} submitted as [1,3,4,4] fails
	resp := Grade(testQuestions(), []Answer{{ID: "3", Value: multi(1, 3, 4, 4)}})
	if correctness(resp)["3"] {
		t.Fatal("duplicated index marked correct")
	}
}

func TestGradeMissingAnswerIsMissNotError(t *testing.T) {
	resp := Grade(testQuestions(), nil)

	if resp.Score != 0 || resp.Total != 3 {
		t.Fatalf("score %d/%d, want 0/3", resp.Score, resp.Total)
	}
	if len(resp.Results) != 3 {
		t.Fatalf("want 3 results, got %d", len(resp.Results))
	}
	for _, r := range resp.Results {
		if r.Correct {
			t.Fatalf("question %s correct with no answer", r.ID)
		}
	}
}

func TestGradeResultsInCatalogOrder(t *testing.T) {
	// answers submitted in reverse; results must come back in catalog order
	resp := Grade(testQuestions(), []Answer{
		{ID: "3", Value: multi(1, 3, 4)},
		{ID: "2", Value: choice(1)},
		{ID: "1", Value: text("paris")},
	})

	var ids []string
	for _, r := range resp.Results {
		ids = append(ids, r.ID)
	}
	if !reflect.DeepEqual(ids, []string{"1", "2", "3"}) {
		t.Fatalf("results in order %v", ids)
	}
	if resp.Score != 3 {
		t.Fatalf("score %d, want 3", resp.Score)
	}
}

func TestGradeIsPureAndIdempotent(t *testing.T) {
	questions := testQuestions()
	answers := []Answer{
		{ID: "1", Value: text(" PARIS ")},
		{ID: "3", Value: multi(4, 3, 1)},
	}

	first := Grade(questions, answers)
	second := Grade(questions, answers)
	if !reflect.DeepEqual(first, second) {
		t.Fatalf("grading not idempotent: %+v vs %+v", first, second)
	}
	if answers[1].Value.Multi[0] != 4 {
		t.Fatal("grading mutated submitted answer")
	}
}

func TestGradeTypeMismatchNeverPanics(t *testing.T) {
	// validation keeps these out in practice, but the engine must stay total
	resp := Grade(testQuestions(), []Answer{
		{ID: "1", Value: choice(0)},
		{ID: "2", Value: text("b")},
		{ID: "3", Value: choice(1)},
	})
	for id, ok := range correctness(resp) {
		if ok {
			t.Fatalf("mismatched value graded correct for %s", id)
		}
	}
}
