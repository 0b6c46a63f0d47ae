package quiz

import (
	"time"

	"github.com/aeroquiz/aeroquiz/internal/catalog"
	"github.com/aeroquiz/aeroquiz/internal/grading"
	"github.com/aeroquiz/aeroquiz/internal/session"
	"github.com/aeroquiz/aeroquiz/internal/shuffle"
	"github.com/aeroquiz/aeroquiz/internal/validate"
)

// Service orchestrates one quiz session: start shuffles the catalog and
// hands everything the client must echo back; submit runs the validation
// pipeline and grades. The server keeps no per-session state between the
// two calls.
type Service struct {
	catalog  catalog.Store
	pipeline *validate.Pipeline
	signer   *session.Signer // nil disables session tokens
	now      func() time.Time
}

func NewService(cat catalog.Store, signer *session.Signer, timeLimit time.Duration) *Service {
	return &Service{
		catalog:  cat,
		pipeline: validate.NewPipeline(cat, timeLimit),
		signer:   signer,
		now:      time.Now,
	}
}

// StartResponse is everything a client needs for one session. Questions are
// already shuffled and answer-key free; the mapping and startedAt come back
// with the submission.
type StartResponse struct {
	Questions      []catalog.ClientQuestion `json:"questions"`
	ShuffleMapping shuffle.Mapping          `json:"shuffleMapping"`
	StartedAt      int64                    `json:"startedAt"`
	SessionToken   string                   `json:"sessionToken,omitempty"`
}

// Start generates a fresh seed, shuffles the catalog's client view and, when
// a signer is configured, pins seed and start time in a signed token.
func (s *Service) Start() (StartResponse, error) {
	seed := shuffle.NewSeed()
	startedAt := s.now()

	questions, mapping := shuffle.Build(catalog.ClientQuestions(s.catalog), seed)

	resp := StartResponse{
		Questions:      questions,
		ShuffleMapping: mapping,
		StartedAt:      startedAt.UnixMilli(),
	}
	if s.signer != nil {
		token, err := s.signer.Issue(seed, startedAt)
		if err != nil {
			return StartResponse{}, err
		}
		resp.SessionToken = token
	}
	return resp, nil
}

// Submit validates, translates and grades one submission. When the request
// carries a session token it must verify, and its pinned start time replaces
// the client-supplied one before the elapsed-time check runs.
func (s *Service) Submit(sub validate.Submission) (grading.Response, error) {
	if sub.SessionToken != "" && s.signer != nil {
		claims, err := s.signer.Parse(sub.SessionToken)
		if err != nil {
			return grading.Response{}, &validate.StructuralError{Details: []string{"Invalid session token"}}
		}
		sub.StartedAt = claims.StartedAt
	}

	answers, err := s.pipeline.Run(sub)
	if err != nil {
		return grading.Response{}, err
	}
	return grading.Grade(s.catalog.Questions(), answers), nil
}
