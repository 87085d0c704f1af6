package codes

import (
	"errors"
	"math/rand/v2"
)

const (
	DefaultAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"
	DefaultLength   = 5
)

// ErrSpaceExhausted is returned by Batch together with the codes collected so
// far when sampling stalls before the requested count is reached. Only
// reachable when the request approaches the size of the code space.
var ErrSpaceExhausted = errors.New("unique code generation stalled before reaching requested count")

type Generator struct {
	Alphabet string
	Length   int
}

func NewGenerator(length int) *Generator {
	if length <= 0 {
		length = DefaultLength
	}
	return &Generator{Alphabet: DefaultAlphabet, Length: length}
}

// Batch returns up to n distinct codes in no particular order. Sampling is
// unguided with duplicate rejection; total attempts are capped so a request
// near the size of the alphabet space terminates with a partial result
// instead of looping forever.
func (g *Generator) Batch(n int) ([]string, error) {
	seen := make(map[string]struct{}, n)
	out := make([]string, 0, n)

	maxAttempts := n*10 + 100
	for attempts := 0; len(out) < n; attempts++ {
		if attempts >= maxAttempts {
			return out, ErrSpaceExhausted
		}

		code := g.sample()
		if _, dup := seen[code]; dup {
			continue
		}
		seen[code] = struct{}{}
		out = append(out, code)
	}

	return out, nil
}

func (g *Generator) sample() string {
	b := make([]byte, g.Length)
	for i := range b {
		b[i] = g.Alphabet[rand.IntN(len(g.Alphabet))]
	}
	return string(b)
}
