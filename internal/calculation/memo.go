package calculation

import (
	"sync"

	"github.com/golang/groupcache/lru"
	"github.com/rpgo/investment-calculator/internal/domain"
)

// DefaultMemoSize is used when NewMemo is given a non-positive size.
const DefaultMemoSize = 128

// Memo is a bounded LRU cache of projection results keyed on the full input
// tuple. Cached results are shared; callers must not modify them.
type Memo struct {
	mu    sync.Mutex
	cache *lru.Cache
}

// NewMemo creates a memo holding at most size results.
func NewMemo(size int) *Memo {
	if size <= 0 {
		size = DefaultMemoSize
	}
	return &Memo{cache: lru.New(size)}
}

// Get returns the cached result for in.
func (m *Memo) Get(in domain.ProjectionInputs) (*domain.ProjectionResult, bool) {
	m.mu.Lock()
	defer m.mu.Unlock()
	v, ok := m.cache.Get(in)
	if !ok {
		return nil, false
	}
	return v.(*domain.ProjectionResult), true
}

// Add stores r for in, evicting the least recently used entry when full.
func (m *Memo) Add(in domain.ProjectionInputs, r *domain.ProjectionResult) {
	m.mu.Lock()
	defer m.mu.Unlock()
	m.cache.Add(in, r)
}

// Project returns the cached result for in or computes and stores it.
func (m *Memo) Project(in domain.ProjectionInputs) *domain.ProjectionResult {
	if r, ok := m.Get(in); ok {
		return r
	}
	r := Project(in)
	m.Add(in, r)
	return r
}

// Len reports the number of cached results.
func (m *Memo) Len() int {
	m.mu.Lock()
	defer m.mu.Unlock()
	return m.cache.Len()
}
