package grading

import (
	"sort"
	"strings"

	"github.com/aeroquiz/aeroquiz/internal/catalog"
)

// ValueKind discriminates the three answer value shapes.
type ValueKind int

const (
	KindText ValueKind = iota
	KindChoice
	KindMulti
)

// Value is a submitted answer value in canonical index space. Exactly one of
// Text, Choice, Multi is meaningful, selected by Kind.
type Value struct {
	Kind   ValueKind
	Text   string
	Choice int
	Multi  []int
}

// Answer pairs a canonicalized question ID with its submitted value.
type Answer struct {
	ID    string
	Value Value
}

type QuestionResult struct {
	ID      string `json:"id"`
	Correct bool   `json:"correct"`
}

// Response is the full grading outcome. Results are in catalog order, one
// entry per catalog question regardless of what was submitted.
type Response struct {
	Score   int              `json:"score"`
	Total   int              `json:"total"`
	Results []QuestionResult `json:"results"`
}

// strategy grades one question type.
type strategy interface {
	grade(q catalog.Question, v Value) bool
}

var strategies = map[catalog.QuestionType]strategy{
	catalog.TypeText:     textStrategy{},
	catalog.TypeRadio:    radioStrategy{},
	catalog.TypeCheckbox: checkboxStrategy{},
}

// Grade scores validated, canonical-space answers against the catalog. It is
// a pure function: same catalog and answers always produce the same response,
// and neither input is mutated. A question without a matching answer is a
// miss, never an error.
func Grade(questions []catalog.Question, answers []Answer) Response {
	byID := make(map[string]Value, len(answers))
	for _, a := range answers {
		id := catalog.CanonicalID(a.ID)
		if _, seen := byID[id]; seen {
			continue // first submission for a question wins
		}
		byID[id] = a.Value
	}

	resp := Response{Total: len(questions)}
	for _, q := range questions {
		result := QuestionResult{ID: q.ID}
		if v, ok := byID[catalog.CanonicalID(q.ID)]; ok {
			if s, ok := strategies[q.Type]; ok {
				result.Correct = s.grade(q, v)
			}
		}
		if result.Correct {
			resp.Score++
		}
		resp.Results = append(resp.Results, result)
	}
	return resp
}

type textStrategy struct{}

func (textStrategy) grade(q catalog.Question, v Value) bool {
	if v.Kind != KindText {
		return false
	}
	got := strings.ToLower(strings.TrimSpace(v.Text))
	want := strings.ToLower(strings.TrimSpace(q.CorrectText))
	return got == want
}

type radioStrategy struct{}

func (radioStrategy) grade(q catalog.Question, v Value) bool {
	return v.Kind == KindChoice && v.Choice == q.CorrectIndex
}

type checkboxStrategy struct{}

// Length-sensitive set comparison: duplicates are not collapsed, so a correct
// set submitted with a repeated index fails on size.
func (checkboxStrategy) grade(q catalog.Question, v Value) bool {
	if v.Kind != KindMulti {
		return false
	}
	if len(v.Multi) != len(q.CorrectIndexes) {
		return false
	}
	got := append([]int(nil), v.Multi...)
	want := append([]int(nil), q.CorrectIndexes...)
	sort.Ints(got)
	sort.Ints(want)
	for i := range got {
		if got[i] != want[i] {
			return false
		}
	}
	return true
}
