package lane

import (
	"fmt"
	"math/big"
	"strings"

	"github.com/google/uuid"
)

const (
	CodeDigits = 4
	codeSpace  = 10000
)

type Code struct {
	value string
}

// NewCode reduces n into the 4-digit space and zero pads it.
func NewCode(n uint64) Code {
	return Code{value: fmt.Sprintf("%0*d", CodeDigits, n%codeSpace)}
}

// ParseCode accepts user input; it only trims, matching is exact.
func ParseCode(raw string) (Code, error) {
	v := strings.TrimSpace(raw)
	if v == "" {
		return Code{}, ErrCodeRequired
	}
	return Code{value: v}, nil
}

func (c Code) String() string { return c.value }

func (c Code) Equal(other Code) bool { return c.value == other.value }

type CodeGenerator interface {
	Generate() Code
}

// RandomCodeGenerator takes the 128-bit integer value of a v4 UUID modulo 10000.
type RandomCodeGenerator struct{}

func NewRandomCodeGenerator() CodeGenerator {
	return RandomCodeGenerator{}
}

func (RandomCodeGenerator) Generate() Code {
	u := uuid.New()
	n := new(big.Int).SetBytes(u[:])
	n.Mod(n, big.NewInt(codeSpace))
	return NewCode(n.Uint64())
}
