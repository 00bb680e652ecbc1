package estimator

import (
	"fmt"
	"sync"
	"time"

	lru "github.com/hashicorp/golang-lru/v2"
)

// DefaultGuardSize is used when Options.GuardSize is not set.
const DefaultGuardSize = 10000

type guardEntry struct {
	generation uint64
	seen       time.Time
}

// generationGuard remembers the newest generation per session. It is bounded
// by an LRU and entries idle for longer than ttl count as absent, so a
// forgotten session simply stops discarding answers.
type generationGuard struct {
	mu     sync.Mutex
	latest *lru.Cache[string, guardEntry]
	ttl    time.Duration
	now    func() time.Time
}

func newGenerationGuard(size int, ttl time.Duration) (*generationGuard, error) {
	if size <= 0 {
		size = DefaultGuardSize
	}

	latest, err := lru.New[string, guardEntry](size)
	if err != nil {
		return nil, fmt.Errorf("could not create generation guard: %w", err)
	}

	return &generationGuard{latest: latest, ttl: ttl, now: time.Now}, nil
}

func (g *generationGuard) lookup(key string, now time.Time) (guardEntry, bool) {
	entry, ok := g.latest.Get(key)
	if !ok {
		return guardEntry{}, false
	}
	if g.ttl > 0 && now.Sub(entry.seen) > g.ttl {
		g.latest.Remove(key)

		return guardEntry{}, false
	}

	return entry, true
}

// observe raises the latest generation seen for key. Generation 0 is untracked.
func (g *generationGuard) observe(key string, generation uint64) {
	if generation == 0 {
		return
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	now := g.now()
	entry, _ := g.lookup(key, now)
	if generation > entry.generation {
		entry.generation = generation
	}
	entry.seen = now
	g.latest.Add(key, entry)
}

func (g *generationGuard) stale(key string, generation uint64) bool {
	if generation == 0 {
		return false
	}

	g.mu.Lock()
	defer g.mu.Unlock()

	entry, ok := g.lookup(key, g.now())

	return ok && entry.generation > generation
}

func (g *generationGuard) len() int {
	g.mu.Lock()
	defer g.mu.Unlock()

	return g.latest.Len()
}
