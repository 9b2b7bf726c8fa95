package ids

import (
	"encoding/hex"
	"fmt"
	"sync"

	"github.com/google/uuid"
)

const (
	OrderPrefix          = "ord_"
	PaymentSessionPrefix = "pay_"
	CardPrefix           = "card_"
)

// Generator hands out short prefixed identifiers. Tests swap in a sequence.
type Generator interface {
	OrderID() string
	PaymentSessionID() string
	CardID() string
}

type RandomGenerator struct{}

func NewRandomGenerator() Generator {
	return RandomGenerator{}
}

func (RandomGenerator) OrderID() string          { return OrderPrefix + shortHex() }
func (RandomGenerator) PaymentSessionID() string { return PaymentSessionPrefix + shortHex() }
func (RandomGenerator) CardID() string           { return CardPrefix + shortHex() }

// first 8 hex chars of a v4 UUID
func shortHex() string {
	u := uuid.New()
	return hex.EncodeToString(u[:4])
}

// SequenceGenerator yields ord_0001, pay_0001, card_0001 and so on, one counter per prefix.
type SequenceGenerator struct {
	mu       sync.Mutex
	counters map[string]int
}

func NewSequenceGenerator() *SequenceGenerator {
	return &SequenceGenerator{counters: make(map[string]int)}
}

func (g *SequenceGenerator) OrderID() string          { return g.next(OrderPrefix) }
func (g *SequenceGenerator) PaymentSessionID() string { return g.next(PaymentSessionPrefix) }
func (g *SequenceGenerator) CardID() string           { return g.next(CardPrefix) }

func (g *SequenceGenerator) next(prefix string) string {
	g.mu.Lock()
	defer g.mu.Unlock()
	g.counters[prefix]++
	return fmt.Sprintf("%s%04d", prefix, g.counters[prefix])
}
