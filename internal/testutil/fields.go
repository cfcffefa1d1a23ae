package testutil

import "math/big"

// ToyField is a prime field small enough for exhaustive tests, together with
// an element of multiplicative order exactly 2^Order.
type ToyField struct {
	Modulus *big.Int
	Root    *big.Int
	Order   uint
}

// ToyFields lists NTT-friendly primes p with the generator of the largest
// power-of-two subgroup of Z*_p, computed as h^((p-1)/2^Order) for a
// primitive root h.
var ToyFields = []ToyField{
	{big.NewInt(17), big.NewInt(3), 4},
	{big.NewInt(97), big.NewInt(28), 5},
	{big.NewInt(257), big.NewInt(3), 8},
	{big.NewInt(7681), big.NewInt(7146), 9},
	{big.NewInt(12289), big.NewInt(1331), 12},
	{big.NewInt(40961), big.NewInt(243), 13},
	{big.NewInt(65537), big.NewInt(3), 16},
	{big.NewInt(786433), big.NewInt(1000), 18},
	{big.NewInt(998244353), big.NewInt(15311432), 23},
	{hexInt("ffffffff00000001"), hexInt("185629dcda58878c"), 32},
}

// Uint64Fields returns the toy fields whose modulus fits in a machine word.
func Uint64Fields() []ToyField {
	var out []ToyField
	for _, f := range ToyFields {
		if f.Modulus.IsUint64() {
			out = append(out, f)
		}
	}
	return out
}

func hexInt(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("testutil: bad hex literal " + s)
	}
	return v
}
