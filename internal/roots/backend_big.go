package roots

import "math/big"

func init() {
	RegisterBackend(DefaultBackend, func() Backend { return BigBackend{} })
}

// BigBackend implements Backend with math/big.
type BigBackend struct{}

// Name returns the registry name of the backend.
func (BigBackend) Name() string { return DefaultBackend }

// RepeatedSquare returns g^(2^k) mod p. The exponent is a power of two, so k
// squarings replace a general modular exponentiation.
func (BigBackend) RepeatedSquare(g, p *big.Int, k uint) *big.Int {
	r := new(big.Int).Set(g)
	for i := uint(0); i < k; i++ {
		r.Mul(r, r)
		r.Mod(r, p)
	}
	return r
}

// Powers returns the first n powers of g modulo p, starting at g^0 = 1.
func (BigBackend) Powers(g, p *big.Int, n int) []*big.Int {
	out := make([]*big.Int, n)
	if n == 0 {
		return out
	}
	out[0] = big.NewInt(1)
	for i := 1; i < n; i++ {
		out[i] = new(big.Int).Mul(out[i-1], g)
		out[i].Mod(out[i], p)
	}
	return out
}
