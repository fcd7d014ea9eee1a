package core

import (
	"math/rand/v2"
	"strconv"
	"sync"
	"sync/atomic"
)

// IDGenerator hands out element ids for components that need one.
type IDGenerator interface {
	NextID(prefix string) string
}

// Counter yields prefix1, prefix2, ... It is meant to live for one render.
type Counter struct {
	n atomic.Uint64
}

func NewCounter() *Counter {
	return &Counter{}
}

func (c *Counter) NextID(prefix string) string {
	return prefix + strconv.FormatUint(c.n.Add(1), 10)
}

// DefaultIDs is used when a component is rendered without a generator.
// Ids it returns are unique for the life of the process.
var DefaultIDs IDGenerator = &Counter{}

const idAlphabet = "0123456789abcdefghijklmnopqrstuvwxyz"

const randomIDLength = 9

// RandomIDs produces short base-36 tokens from a seeded source.
type RandomIDs struct {
	mu  sync.Mutex
	rng *rand.Rand
}

func NewRandomIDs(seed uint64) *RandomIDs {
	return &RandomIDs{rng: rand.New(rand.NewPCG(seed, seed^0x9e3779b97f4a7c15))}
}

func (r *RandomIDs) NextID(prefix string) string {
	r.mu.Lock()
	defer r.mu.Unlock()

	buf := make([]byte, randomIDLength)
	for i := range buf {
		buf[i] = idAlphabet[r.rng.IntN(len(idAlphabet))]
	}
	return prefix + string(buf)
}
