package roots

import (
	"fmt"
	"math/big"
	"sort"
	"sync"
)

// DefaultBackend is the name of the math/big backend, always registered.
const DefaultBackend = "big"

// Backend performs the modular arithmetic of a derivation. Every backend must
// produce the same values; they differ only in the integer library used.
type Backend interface {
	// Name returns the registry name of the backend.
	Name() string
	// RepeatedSquare returns g^(2^k) mod p by squaring and reducing k times.
	RepeatedSquare(g, p *big.Int, k uint) *big.Int
	// Powers returns [1, g, g^2, ..., g^(n-1)] mod p.
	Powers(g, p *big.Int, n int) []*big.Int
}

var registry = struct {
	mu       sync.RWMutex
	creators map[string]func() Backend
}{creators: make(map[string]func() Backend)}

// RegisterBackend adds a backend constructor under name, replacing any
// previous registration.
func RegisterBackend(name string, creator func() Backend) {
	registry.mu.Lock()
	defer registry.mu.Unlock()
	registry.creators[name] = creator
}

// NewBackend returns a fresh instance of the named backend.
func NewBackend(name string) (Backend, error) {
	registry.mu.RLock()
	creator, ok := registry.creators[name]
	registry.mu.RUnlock()
	if !ok {
		return nil, fmt.Errorf("unknown arithmetic backend: %s", name)
	}
	return creator(), nil
}

// Backends returns the registered backend names, sorted.
func Backends() []string {
	registry.mu.RLock()
	defer registry.mu.RUnlock()
	names := make([]string, 0, len(registry.creators))
	for name := range registry.creators {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}
