package logger

import (
	"context"
	crand "crypto/rand"
	"encoding/binary"
	"math/rand/v2"
)

// IDGenerator mints the per-request log IDs carried in context.
type IDGenerator interface {
	NewLogID(ctx context.Context) LogID
}

type chachaIDGenerator struct {
	src *rand.ChaCha8
}

var _ IDGenerator = &chachaIDGenerator{}

// NewLogID draws from the sequence until a non-zero ID comes up.
func (gen *chachaIDGenerator) NewLogID(context.Context) LogID {
	var id LogID
	for {
		_, _ = gen.src.Read(id[:])
		if id.IsValid() {
			return id
		}
	}
}

func defaultIDGenerator() IDGenerator {
	var seed [32]byte
	_ = binary.Read(crand.Reader, binary.LittleEndian, &seed)
	return &chachaIDGenerator{src: rand.NewChaCha8(seed)}
}
