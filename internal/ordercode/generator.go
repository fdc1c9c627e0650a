// Package ordercode generates human-readable order codes: two uppercase
// letters followed by four digits, e.g. "KD0381". The candidate space holds
// 26*26*10000 = 6,760,000 combinations.
package ordercode

import (
	"fmt"
	"math/rand/v2"
	"regexp"
)

const letters = "ABCDEFGHIJKLMNOPQRSTUVWXYZ"

var codePattern = regexp.MustCompile(`^[A-Z]{2}[0-9]{4}$`)

// Valid reports whether s is a well-formed order code.
func Valid(s string) bool {
	return codePattern.MatchString(s)
}

// Generator produces random order codes.
type Generator struct {
	// intN is swappable so tests can force collisions.
	intN func(n int) int
}

// New creates a generator backed by the shared random source.
func New() *Generator {
	return &Generator{intN: rand.IntN}
}

// Generate returns one uniformly random candidate code.
func (g *Generator) Generate() string {
	l1 := letters[g.intN(26)]
	l2 := letters[g.intN(26)]
	return fmt.Sprintf("%c%c%04d", l1, l2, g.intN(10000))
}

// Unique returns a candidate not present in taken, regenerating on collision.
// The loop has no upper bound; it terminates immediately in practice given
// the size of the candidate space relative to expected order volume.
func (g *Generator) Unique(taken map[string]struct{}) string {
	code := g.Generate()
	for {
		if _, exists := taken[code]; !exists {
			return code
		}
		code = g.Generate()
	}
}
