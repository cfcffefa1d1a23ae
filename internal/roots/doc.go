// Package roots derives the power-of-two roots of unity used by a
// Number-Theoretic Transform over a prime field.
//
// Starting from a generator of the subgroup of order 2^SourceOrder in Z*_p,
// the engine squares it down to a generator of the subgroup of order
// 2^TargetOrder, enumerates every power of that generator, enumerates the
// powers of its inverse, and checks that the two sequences are reverses of
// each other once the identity is dropped. Only the forward sequence needs to
// be stored: the inverse roots are read from it backwards.
//
// The modulus is trusted to be prime and the source generator is trusted to
// have the stated order; the closure and distinctness checks catch inputs
// that do not form a subgroup chain of the expected size.
package roots
