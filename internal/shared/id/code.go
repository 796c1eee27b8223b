// Package id generates short human-facing identifiers.
package id

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

const digits = "0123456789"

// PublicCodeLength is the length of order public ids shown to staff.
const PublicCodeLength = 5

// NumericCode returns a random code of length decimal digits. Leading zeros
// are kept, so the result is always exactly length characters long.
func NumericCode(length int) (string, error) {
	if length <= 0 {
		length = PublicCodeLength
	}

	result := make([]byte, length)
	base := big.NewInt(int64(len(digits)))
	for i := range result {
		n, err := rand.Int(rand.Reader, base)
		if err != nil {
			return "", fmt.Errorf("failed to generate random digit: %w", err)
		}
		result[i] = digits[n.Int64()]
	}
	return string(result), nil
}

// NumericCodeGenerator produces fixed-length numeric public ids.
type NumericCodeGenerator struct {
	Length int
}

func NewNumericCodeGenerator(length int) *NumericCodeGenerator {
	return &NumericCodeGenerator{Length: length}
}

func (g *NumericCodeGenerator) Generate() (string, error) {
	return NumericCode(g.Length)
}
