// Package game holds the deterministic selection and scoring logic of the
// vocabulary game. Everything here is pure: the same seed string always
// produces the same derived sequence, which is what makes daily content
// reproducible across processes.
package game

import (
	"errors"
	"fmt"
	"time"
)

// ErrNoContent is returned when a selection is requested from an empty
// candidate list.
var ErrNoContent = errors.New("no content available")

// DailySeed produces the stable key for a (date, language) pair,
// of form "YYYY-MM-DD:lang".
func DailySeed(date time.Time, lang string) string {
	return fmt.Sprintf("%s:%s", date.Format("2006-01-02"), lang)
}

// PracticeSeed produces a unique seed for a practice round. The wall-clock
// timestamp and id keep practice rounds distinct from cached daily content.
func PracticeSeed(date time.Time, lang, id string) string {
	return fmt.Sprintf("%s:%s:practice:%d:%s", date.Format("2006-01-02"), lang, date.UnixMilli(), id)
}

// SeedHash derives an integer from a seed string with a simple rolling
// hash over its code points. Not collision-resistant and not meant to be:
// only reproducibility matters here. Do not reuse for anything that needs
// real hashing.
func SeedHash(seed string) uint64 {
	var h uint64
	for _, r := range seed {
		h = h*31 + uint64(r)
	}
	return h
}

// Sequence is a deterministic pseudo-random sequence seeded from a seed
// string via SeedHash. It drives shuffles and index picks; it is not
// cryptographically secure.
type Sequence struct {
	state uint64
}

// NewSequence creates a Sequence for the given seed string
func NewSequence(seed string) *Sequence {
	h := SeedHash(seed)
	if h == 0 {
		h = 1
	}
	return &Sequence{state: h}
}

// linear-congruential recurrence (Knuth MMIX constants)
func (s *Sequence) next() uint64 {
	s.state = s.state*6364136223846793005 + 1442695040888963407
	return s.state
}

// Intn returns a deterministic value in [0, n). Panics if n <= 0.
func (s *Sequence) Intn(n int) int {
	if n <= 0 {
		panic("game: Intn called with non-positive n")
	}
	return int((s.next() >> 33) % uint64(n))
}

// SeededOrder returns a permutation of [0, n) produced by a Fisher-Yates
// shuffle whose swap targets come from the seed's Sequence. Identical seed
// and n always yield the identical permutation.
func SeededOrder(n int, seed string) []int {
	order := make([]int, n)
	for i := range order {
		order[i] = i
	}
	seq := NewSequence(seed)
	for i := n - 1; i > 0; i-- {
		j := seq.Intn(i + 1)
		order[i], order[j] = order[j], order[i]
	}
	return order
}

// PickIndex selects a deterministic index into a list of length n via the
// seed hash modulo n. An empty list is an explicit error, never a
// modulo-by-zero.
func PickIndex(n int, seed string) (int, error) {
	if n <= 0 {
		return 0, ErrNoContent
	}
	return int(SeedHash(seed) % uint64(n)), nil
}
