package shuffle

import (
	"encoding/binary"
	"math/rand"

	"golang.org/x/crypto/blake2b"
)

// source returns a PRNG whose state is a pure function of the seed string.
// Reproducibility is the requirement here, not unpredictability: the seed is
// disclosed to the client and replayed at submission.
func source(seed string) *rand.Rand {
	sum := blake2b.Sum256([]byte(seed))
	state := int64(binary.BigEndian.Uint64(sum[:8]))
	return rand.New(rand.NewSource(state))
}

// Slice returns a seeded Fisher-Yates permutation of in. The same seed and
// the same input always produce the same ordering. The input is never
// mutated.
func Slice[T any](in []T, seed string) []T {
	out := make([]T, len(in))
	copy(out, in)
	r := source(seed)
	for i := len(out) - 1; i > 0; i-- {
		j := r.Intn(i + 1)
		out[i], out[j] = out[j], out[i]
	}
	return out
}
