// Package verification generates and checks the single-use handoff codes
// printed on pickup and delivery slips.
package verification

import (
	"strings"

	"github.com/jaevor/go-nanoid"
)

// Alphabet drops 0, 1 and O, which misread on paper and small screens.
const Alphabet = "23456789ABCDEFGHIJKLMNPQRSTUVWXYZ"

const CodeLength = 6

// NewGenerator returns a crypto/rand-backed code generator. Successive
// calls are statistically independent, so the pickup and delivery codes
// of one order leak nothing about each other.
func NewGenerator() (func() string, error) {
	return nanoid.CustomASCII(Alphabet, CodeLength)
}

// Match compares a presented code against the stored one. Comparison is
// case-insensitive but otherwise exact; empty stored codes never match.
func Match(stored, presented string) bool {
	if stored == "" {
		return false
	}
	return strings.EqualFold(stored, presented)
}
