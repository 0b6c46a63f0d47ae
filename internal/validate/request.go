package validate

import (
	"bytes"
	"encoding/json"
	"errors"
	"math"

	"github.com/aeroquiz/aeroquiz/internal/grading"
	"github.com/aeroquiz/aeroquiz/internal/shuffle"
)

// Submission is the raw grade request body. StartedAt is the client's quiz
// start time in unix milliseconds; ShuffleMapping is optional for
// compatibility with unshuffled submissions. SessionToken, when present,
// carries a server-signed copy of the session state.
type Submission struct {
	Answers        []Answer         `json:"answers"`
	StartedAt      int64            `json:"startedAt"`
	ShuffleMapping *shuffle.Mapping `json:"shuffleMapping,omitempty"`
	SessionToken   string           `json:"sessionToken,omitempty"`
}

// Answer is one submitted answer before validation. The ID and Value types
// absorb the loose wire shapes so the pipeline can report violations instead
// of aborting mid-decode.
type Answer struct {
	ID    ID    `json:"id"`
	Value Value `json:"value"`
}

// ID accepts a JSON string or number and holds its canonical string form.
// Every comparison downstream uses that form; nothing compares raw JSON
// representations.
type ID string

func (id *ID) UnmarshalJSON(b []byte) error {
	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*id = ID(s)
		return nil
	}
	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		*id = ID(n.String())
		return nil
	}
	return errors.New("question id must be a string or a number")
}

// Value is a submitted answer value: a string, an integer, or a list of
// integers. Unrecognized shapes do not abort decoding; they are recorded and
// surfaced as structural violations so one request can report every problem
// at once.
type Value struct {
	Kind    grading.ValueKind
	Text    string
	Choice  int
	Multi   []int
	invalid string // non-empty when the wire shape was not acceptable
}

const (
	reasonNotInteger = "answer must be an integer"
	reasonBadList    = "answer list must contain only integers"
	reasonBadShape   = "answer value must be a string, integer, or integer list"
)

func (v *Value) UnmarshalJSON(b []byte) error {
	// json.Unmarshal treats null as a no-op for strings, which would read as
	// an empty text answer; reject it outright.
	if string(bytes.TrimSpace(b)) == "null" {
		*v = Value{invalid: reasonBadShape}
		return nil
	}

	var s string
	if err := json.Unmarshal(b, &s); err == nil {
		*v = Value{Kind: grading.KindText, Text: s}
		return nil
	}

	var n json.Number
	if err := json.Unmarshal(b, &n); err == nil {
		i, ok := integral(n)
		if !ok {
			*v = Value{invalid: reasonNotInteger}
			return nil
		}
		*v = Value{Kind: grading.KindChoice, Choice: i}
		return nil
	}

	var list []json.Number
	if err := json.Unmarshal(b, &list); err == nil {
		multi := make([]int, 0, len(list))
		for _, n := range list {
			i, ok := integral(n)
			if !ok {
				*v = Value{invalid: reasonBadList}
				return nil
			}
			multi = append(multi, i)
		}
		*v = Value{Kind: grading.KindMulti, Multi: multi}
		return nil
	}

	*v = Value{invalid: reasonBadShape}
	return nil
}

// integral converts a JSON number to int, accepting integral floats such as
// 3.0 but rejecting 3.5.
func integral(n json.Number) (int, bool) {
	if i, err := n.Int64(); err == nil {
		return int(i), true
	}
	f, err := n.Float64()
	if err != nil || f != math.Trunc(f) || f > math.MaxInt32 || f < math.MinInt32 {
		return 0, false
	}
	return int(f), true
}
