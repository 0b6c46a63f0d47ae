package http

import (
	"encoding/json"
	"errors"
	"log"
	"net/http"

	"github.com/aeroquiz/aeroquiz/internal/quiz"
	"github.com/aeroquiz/aeroquiz/internal/validate"
)

// maxBodyBytes bounds the grade request body well above any legal
// submission; anything bigger is rejected before decoding.
const maxBodyBytes = 64 << 10

// QuizHandler serves a freshly shuffled quiz. The response never contains an
// answer key field, present or nulled.
func QuizHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		resp, err := svc.Start()
		if err != nil {
			log.Printf("quiz start failed: %v", err)
			writeError(w, http.StatusInternalServerError, "Failed to start quiz")
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

// GradeHandler accepts a submission, runs the validation pipeline and
// returns the grade. Validation failures are 400s with the first failing
// stage's error; anything unexpected is logged and answered with an opaque
// 500 so no internal detail or answer key ever leaks.
func GradeHandler(svc *quiz.Service) http.HandlerFunc {
	return func(w http.ResponseWriter, r *http.Request) {
		r.Body = http.MaxBytesReader(w, r.Body, maxBodyBytes)

		var sub validate.Submission
		if err := json.NewDecoder(r.Body).Decode(&sub); err != nil {
			writeError(w, http.StatusBadRequest, "Invalid request", err.Error())
			return
		}

		resp, err := svc.Submit(sub)
		if err != nil {
			writeValidationError(w, err)
			return
		}
		writeJSON(w, http.StatusOK, resp)
	}
}

type timeLimitBody struct {
	Error     string `json:"error"`
	TimeLimit int64  `json:"timeLimit"`
	Elapsed   int64  `json:"elapsed"`
}

func writeValidationError(w http.ResponseWriter, err error) {
	var structural *validate.StructuralError
	if errors.As(err, &structural) {
		writeError(w, http.StatusBadRequest, "Invalid request", structural.Details...)
		return
	}
	var timeLimit *validate.TimeLimitError
	if errors.As(err, &timeLimit) {
		writeJSON(w, http.StatusBadRequest, timeLimitBody{
			Error:     "Time limit exceeded",
			TimeLimit: timeLimit.LimitMillis,
			Elapsed:   timeLimit.ElapsedMillis,
		})
		return
	}
	var mismatch *validate.TypeMismatchError
	if errors.As(err, &mismatch) {
		writeError(w, http.StatusBadRequest, mismatch.Error())
		return
	}
	var notFound *validate.NotFoundError
	if errors.As(err, &notFound) {
		writeError(w, http.StatusBadRequest, notFound.Error())
		return
	}

	log.Printf("grading error: %v", err)
	writeError(w, http.StatusInternalServerError, "Failed to grade quiz")
}
