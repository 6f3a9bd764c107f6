// Package idgen mints the IBANs and card numbers handed out by the ledger.
// Generation is seeded so that identical batches produce identical
// identifiers; crypto-grade randomness is deliberately not a goal here.
package idgen

import (
	"math/rand"
	"strings"
)

const (
	countryCode = "RO"
	bankCode    = "BNKS"

	checkDigits      = 2
	ibanDigits       = 16
	cardNumberDigits = 16
)

// Generator produces unique account and card identifiers from a fixed seed.
// It is not safe for concurrent use; the ledger applies commands sequentially.
type Generator struct {
	seed   int64
	rng    *rand.Rand
	issued map[string]struct{}
}

// New creates a generator for the given seed.
func New(seed int64) *Generator {
	return &Generator{
		seed:   seed,
		rng:    rand.New(rand.NewSource(seed)),
		issued: make(map[string]struct{}),
	}
}

// GenerateIBAN returns a fresh IBAN, unique across the current run.
func (g *Generator) GenerateIBAN() string {
	for {
		var b strings.Builder
		b.WriteString(countryCode)
		g.writeDigits(&b, checkDigits)
		b.WriteString(bankCode)
		g.writeDigits(&b, ibanDigits)
		if iban := b.String(); g.claim(iban) {
			return iban
		}
	}
}

// GenerateCardNumber returns a fresh 16-digit card number, unique across the
// current run.
func (g *Generator) GenerateCardNumber() string {
	for {
		var b strings.Builder
		g.writeDigits(&b, cardNumberDigits)
		if number := b.String(); g.claim(number) {
			return number
		}
	}
}

// Reset rewinds the generator to its seed and forgets issued identifiers, so
// the next batch sees the same identifier sequence as the previous one.
func (g *Generator) Reset() {
	g.rng = rand.New(rand.NewSource(g.seed))
	g.issued = make(map[string]struct{})
}

func (g *Generator) writeDigits(b *strings.Builder, n int) {
	for i := 0; i < n; i++ {
		b.WriteByte(byte('0' + g.rng.Intn(10)))
	}
}

func (g *Generator) claim(id string) bool {
	if _, taken := g.issued[id]; taken {
		return false
	}
	g.issued[id] = struct{}{}
	return true
}
