package roots

import (
	"math/big"

	apperrors "github.com/agbru/nttparams/internal/errors"
)

// Derivation is the result of a successful derivation. It is built once and
// never mutated afterwards.
type Derivation struct {
	// Params are the inputs the derivation was computed from.
	Params Params
	// Generator generates the subgroup of order 2^TargetOrder.
	Generator *big.Int
	// InverseGenerator is Generator^-1 mod p, equal to Roots[len(Roots)-1].
	InverseGenerator *big.Int
	// Roots holds Generator^i mod p for i in [0, 2^TargetOrder).
	Roots []*big.Int
	// InverseRoots holds InverseGenerator^i mod p. It equals Roots with the
	// non-identity entries reversed and is kept only for verification.
	InverseRoots []*big.Int
}

// Size returns the number of roots, 2^TargetOrder.
func (d *Derivation) Size() int { return len(d.Roots) }

// InverseRoot returns the i-th inverse root read from the forward table:
// index 0 is the identity and index i > 0 maps to Roots[n-i].
func (d *Derivation) InverseRoot(i int) *big.Int {
	if i == 0 {
		return d.Roots[0]
	}
	return d.Roots[len(d.Roots)-i]
}

// Engine derives roots of unity using a pluggable arithmetic backend.
type Engine struct {
	backend Backend
}

// NewEngine returns an Engine that computes with backend.
func NewEngine(backend Backend) *Engine {
	return &Engine{backend: backend}
}

// NewEngineByName returns an Engine using the registered backend called name.
func NewEngineByName(name string) (*Engine, error) {
	b, err := NewBackend(name)
	if err != nil {
		return nil, apperrors.NewConfigError("%v (available: %v)", err, Backends())
	}
	return NewEngine(b), nil
}

// Backend returns the name of the engine's arithmetic backend.
func (e *Engine) Backend() string { return e.backend.Name() }

// Derive computes the generator of the subgroup of order 2^TargetOrder from
// the generator of order 2^SourceOrder, enumerates its powers and the powers
// of its inverse, and verifies every subgroup invariant.
//
// Returns a ValidationError for inputs outside the contract and an
// InvariantError when the inputs do not form a valid subgroup chain.
func (e *Engine) Derive(p Params) (*Derivation, error) {
	if err := p.Validate(); err != nil {
		return nil, err
	}
	g := e.backend.RepeatedSquare(p.Generator, p.Modulus, p.ReductionExponent())
	d, err := e.Enumerate(p.Modulus, g, p.TargetOrder)
	if err != nil {
		return nil, err
	}
	d.Params = p
	return d, nil
}

// Enumerate builds the forward and inverse root sequences of a generator g
// expected to have order exactly 2^order modulo p, checking the invariants
// in this order: closure, non-degeneracy of the inverse sequence, inverse
// closure, shared identity, reversed symmetry.
func (e *Engine) Enumerate(p, g *big.Int, order uint) (*Derivation, error) {
	if err := validateField(p, g, "generator"); err != nil {
		return nil, err
	}
	if err := validateOrder(order); err != nil {
		return nil, err
	}

	n := 1 << order
	roots := e.backend.Powers(g, p, n)
	if err := checkClosure(apperrors.CheckClosure, roots, g, p); err != nil {
		return nil, err
	}

	inv := new(big.Int).Set(roots[n-1])
	invRoots := e.backend.Powers(inv, p, n)
	d := &Derivation{
		Params:           Params{Modulus: p, Generator: g, SourceOrder: order, TargetOrder: order},
		Generator:        g,
		InverseGenerator: inv,
		Roots:            roots,
		InverseRoots:     invRoots,
	}
	if err := checkNonDegenerate(invRoots); err != nil {
		return nil, err
	}
	if err := checkClosure(apperrors.CheckInverseClosure, invRoots, inv, p); err != nil {
		return nil, err
	}
	if err := checkIdentity(roots, invRoots); err != nil {
		return nil, err
	}
	if err := checkReverseSymmetry(roots, invRoots); err != nil {
		return nil, err
	}
	return d, nil
}
