package otp

import (
	"crypto/rand"
	"encoding/binary"
	mrand "math/rand"
	"sync"

	"github.com/google/uuid"
	"github.com/quarmyne/otpauth/internal/pkg/models"
)

const prefixAlphabet = "ABCDEFGHIJKLMNOPQRSTUVWXYZ0123456789"

const (
	prefixLength = 4
	codeMin      = 100000
	codeSpan     = 900000 // codes fall in [100000, 999999]
)

// Generator produces OTP codes. It is injected into the auth flow so tests
// can substitute a deterministic source.
type Generator interface {
	Generate() models.OtpCode
}

// CodeGenerator is the default Generator backed by a seeded PRNG.
// Safe for concurrent use.
type CodeGenerator struct {
	mu  sync.Mutex
	rng *mrand.Rand
}

// NewCodeGenerator creates a generator seeded from the OS entropy source
func NewCodeGenerator() *CodeGenerator {
	var seed [8]byte
	if _, err := rand.Read(seed[:]); err != nil {
		panic("otp: failed to read random seed: " + err.Error())
	}

	return &CodeGenerator{
		rng: mrand.New(mrand.NewSource(int64(binary.LittleEndian.Uint64(seed[:])))),
	}
}

// Generate produces a fresh OtpCode with a 4-character uppercase
// alphanumeric prefix, a 6-digit code and a unique request id.
func (g *CodeGenerator) Generate() models.OtpCode {
	g.mu.Lock()
	defer g.mu.Unlock()

	prefix := make([]byte, prefixLength)
	for i := range prefix {
		prefix[i] = prefixAlphabet[g.rng.Intn(len(prefixAlphabet))]
	}

	return models.OtpCode{
		Prefix:    string(prefix),
		Code:      codeMin + g.rng.Intn(codeSpan),
		RequestID: uuid.New().String(),
	}
}
