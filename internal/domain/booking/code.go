package booking

import (
	"crypto/rand"
	"errors"
	"math/big"
	"regexp"
)

var ErrCodeGeneration = errors.New("failed to generate reservation code")

const (
	codePrefix = "R"
	codeLength = 8
	// No 0/O or 1/I/L.
	codeAlphabet = "23456789ABCDEFGHJKMNPQRSTUVWXYZ"
)

var codeRegex = regexp.MustCompile(`^R[2-9A-HJKMNP-Z]{8}$`)

// CodeGenerator is replaceable so tests can force collisions.
type CodeGenerator interface {
	Generate() (string, error)
}

type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() CodeGenerator {
	return RandomCodeGenerator{}
}

func (RandomCodeGenerator) Generate() (string, error) {
	buf := make([]byte, codeLength)
	limit := big.NewInt(int64(len(codeAlphabet)))
	for i := range buf {
		n, err := rand.Int(rand.Reader, limit)
		if err != nil {
			return "", ErrCodeGeneration
		}
		buf[i] = codeAlphabet[n.Int64()]
	}
	return codePrefix + string(buf), nil
}

func IsValidCode(code string) bool {
	return codeRegex.MatchString(code)
}
