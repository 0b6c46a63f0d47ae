package session

import (
	"errors"
	"time"

	"github.com/golang-jwt/jwt/v5"
)

// Signer issues and verifies the session token handed out when a quiz
// starts. The token pins the session seed and start time under an HMAC so a
// submitter cannot quietly move their own clock back; submissions without a
// token fall back to the echoed plain fields.
type Signer struct{ hmac []byte }

func NewSigner(secret string) *Signer { return &Signer{hmac: []byte(secret)} }

type Claims struct {
	Seed      string `json:"seed"`
	StartedAt int64  `json:"startedAt"` // unix milliseconds
	jwt.RegisteredClaims
}

// Issue signs a token for one quiz session. The expiry is generous; the
// validation pipeline enforces the real time budget.
func (s *Signer) Issue(seed string, startedAt time.Time) (string, error) {
	claims := &Claims{
		Seed:      seed,
		StartedAt: startedAt.UnixMilli(),
		RegisteredClaims: jwt.RegisteredClaims{
			Issuer:    "aeroquiz",
			IssuedAt:  jwt.NewNumericDate(startedAt),
			ExpiresAt: jwt.NewNumericDate(startedAt.Add(1 * time.Hour)),
		},
	}
	t := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	return t.SignedString(s.hmac)
}

// Parse verifies the signature and returns the pinned session state.
func (s *Signer) Parse(tokenStr string) (*Claims, error) {
	token, err := jwt.ParseWithClaims(tokenStr, &Claims{}, func(t *jwt.Token) (interface{}, error) {
		return s.hmac, nil
	})
	if err != nil {
		return nil, err
	}
	if !token.Valid {
		return nil, errors.New("invalid session token")
	}
	c, ok := token.Claims.(*Claims)
	if !ok {
		return nil, errors.New("invalid session token")
	}
	return c, nil
}
