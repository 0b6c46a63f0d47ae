package validate

import "fmt"

// StructuralError reports every shape or bounds violation found in one pass
// over the request. It covers malformed values, out-of-range indexes, bad
// counts, unknown IDs, and untranslatable choice indexes.
type StructuralError struct {
	Details []string
}

func (e *StructuralError) Error() string { return "invalid request" }

// TimeLimitError is returned when server-measured elapsed time exceeds the
// quiz budget. Both figures are in milliseconds.
type TimeLimitError struct {
	LimitMillis   int64
	ElapsedMillis int64
}

func (e *TimeLimitError) Error() string {
	return fmt.Sprintf("time limit exceeded: %dms elapsed, %dms allowed", e.ElapsedMillis, e.LimitMillis)
}

// TypeMismatchError names a question whose submitted value shape disagrees
// with the question type after translation.
type TypeMismatchError struct {
	QuestionID string
	Expected   string // "text", "number" or "array"
}

func (e *TypeMismatchError) Error() string {
	return fmt.Sprintf("Question %s expects %s answer", e.QuestionID, e.Expected)
}

// NotFoundError reports an answer whose ID resolves to no catalog question.
type NotFoundError struct {
	QuestionID string
}

func (e *NotFoundError) Error() string {
	return fmt.Sprintf("Question %s not found", e.QuestionID)
}
