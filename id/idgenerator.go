// Package id generates identifiers for tasks and recordings.
package id

import (
	"strconv"
	"sync/atomic"

	"github.com/rs/xid"
)

// IDGenerator can generate IDs.
type IDGenerator interface {
	Generate() string
}

// NewSequentialIDGenerator returns a generator that produces deterministic,
// monotonically increasing IDs.
func NewSequentialIDGenerator() IDGenerator {
	return &sequentialIDGenerator{}
}

// NewXIDGenerator returns a generator that produces globally unique IDs.
// The IDs are not deterministic across runs.
func NewXIDGenerator() IDGenerator {
	return xidGenerator{}
}

type sequentialIDGenerator struct {
	nextID uint64
}

func (g *sequentialIDGenerator) Generate() string {
	idNumber := atomic.AddUint64(&g.nextID, 1)

	return strconv.FormatUint(idNumber, 10)
}

type xidGenerator struct{}

func (g xidGenerator) Generate() string {
	return xid.New().String()
}
