package drawer

import (
	"fmt"
	"hash/fnv"
	"math/rand/v2"
	"sync"
)

// Sampler draws items from boxes uniformly at random without replacement.
// It is safe for concurrent use.
type Sampler struct {
	mu  sync.Mutex
	rng *rand.Rand
}

// NewSampler returns a sampler seeded with seed. A zero seed picks a
// random one, so every run differs.
func NewSampler(seed int64) *Sampler {
	if seed == 0 {
		seed = rand.Int64()
	}
	return &Sampler{rng: seededRNG(seed)}
}

func seededRNG(seed int64) *rand.Rand {
	// Non-cryptographic PRNG is fine for drawing lots.
	// #nosec G404
	return rand.New(rand.NewPCG(seedWord(seed, "draw"), seedWord(seed, "pick")))
}

func seedWord(seed int64, salt string) uint64 {
	h := fnv.New64a()
	_, _ = h.Write([]byte(fmt.Sprintf("%d:%s", seed, salt)))
	return h.Sum64()
}

// Draw samples every box once. Boxes without items or with a
// non-positive count get an empty list; nothing here fails.
func (s *Sampler) Draw(boxes []Box) Result {
	res := make(Result, 0, len(boxes))
	for _, b := range boxes {
		res = res.set(b.Title, s.Sample(b.ItemList(), b.Count))
	}
	return res
}

// Sample picks min(n, len(items)) distinct positions of items.
func (s *Sampler) Sample(items []string, n int) []string {
	if n > len(items) {
		n = len(items)
	}
	if n <= 0 {
		return []string{}
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	// partial Fisher-Yates over a copy; callers keep their slice order.
	pool := append([]string(nil), items...)
	for i := 0; i < n; i++ {
		j := i + s.rng.IntN(len(pool)-i)
		pool[i], pool[j] = pool[j], pool[i]
	}
	return pool[:n:n]
}
