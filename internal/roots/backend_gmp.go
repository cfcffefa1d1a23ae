//go:build gmp

// This file provides a GMP-based arithmetic backend, conditionally compiled
// with the "gmp" build tag. Builds without the tag use math/big only and do
// not need libgmp installed:
//
//	go run -tags=gmp ./cmd/gen-params -backend gmp
//
// System Requirements for GMP:
//   - Linux: sudo apt-get install libgmp-dev (Debian/Ubuntu)
//   - macOS: brew install gmp

package roots

import (
	"math/big"

	"github.com/ncw/gmp"
)

// GMPBackendName is the registry name of the GMP backend.
const GMPBackendName = "gmp"

func init() {
	RegisterBackend(GMPBackendName, func() Backend { return GMPBackend{} })
}

// GMPBackend implements Backend with github.com/ncw/gmp. Intermediate values
// stay in GMP integers; only the results are converted back to math/big.
type GMPBackend struct{}

// Name returns the registry name of the backend.
func (GMPBackend) Name() string { return GMPBackendName }

// RepeatedSquare returns g^(2^k) mod p.
func (GMPBackend) RepeatedSquare(g, p *big.Int, k uint) *big.Int {
	r := toGMP(g)
	m := toGMP(p)
	for i := uint(0); i < k; i++ {
		r.Mul(r, r)
		r.Mod(r, m)
	}
	return fromGMP(r)
}

// Powers returns the first n powers of g modulo p, starting at 1.
func (GMPBackend) Powers(g, p *big.Int, n int) []*big.Int {
	out := make([]*big.Int, n)
	if n == 0 {
		return out
	}
	gg := toGMP(g)
	m := toGMP(p)
	acc := gmp.NewInt(1)
	out[0] = big.NewInt(1)
	for i := 1; i < n; i++ {
		acc.Mul(acc, gg)
		acc.Mod(acc, m)
		out[i] = fromGMP(acc)
	}
	return out
}

// toGMP converts a non-negative math/big integer to a GMP integer.
func toGMP(x *big.Int) *gmp.Int {
	return new(gmp.Int).SetBytes(x.Bytes())
}

// fromGMP converts a non-negative GMP integer to math/big.
func fromGMP(x *gmp.Int) *big.Int {
	return new(big.Int).SetBytes(x.Bytes())
}
