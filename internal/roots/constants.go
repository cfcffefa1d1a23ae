package roots

import "math/big"

// Compiled-in field. p has a multiplicative subgroup of order 2^19 and
// Generator19Hex generates it.
const (
	// ModulusHex is the prime modulus p.
	ModulusHex = "8000000000000000080001"
	// Generator19Hex generates the subgroup of order 2^19 in Z*_p.
	Generator19Hex = "2597c14f48d5b65ed8dcca"
	// DefaultSourceOrder is log2 of the order of the subgroup generated by Generator19Hex.
	DefaultSourceOrder = 19
	// DefaultTargetOrder is log2 of the order of the roots table that is emitted.
	DefaultTargetOrder = 12
)

// MaxTargetOrder bounds the table size at 2^20 entries.
const MaxTargetOrder = 20

// DefaultParams returns the parameters of the compiled-in field.
func DefaultParams() Params {
	return Params{
		Modulus:     mustParseHex(ModulusHex),
		Generator:   mustParseHex(Generator19Hex),
		SourceOrder: DefaultSourceOrder,
		TargetOrder: DefaultTargetOrder,
	}
}

func mustParseHex(s string) *big.Int {
	v, ok := new(big.Int).SetString(s, 16)
	if !ok {
		panic("roots: invalid hex constant " + s)
	}
	return v
}
