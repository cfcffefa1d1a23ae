package roots

import (
	"math/big"

	apperrors "github.com/agbru/nttparams/internal/errors"
)

var one = big.NewInt(1)

// Verify re-checks every invariant of a finished derivation. The pipeline
// calls it before serializing so that a Derivation assembled by hand, or one
// altered after Derive returned, can never reach the table.
func Verify(d *Derivation) error {
	if d == nil {
		return apperrors.NewInvariantError(apperrors.CheckLength, -1, "no derivation")
	}
	p := d.Params.Modulus
	if err := validateField(p, d.Generator, "generator"); err != nil {
		return err
	}
	if d.InverseGenerator == nil {
		return apperrors.NewInvariantError(apperrors.CheckInverseClosure, -1, "no inverse generator")
	}
	if err := validateOrder(d.Params.TargetOrder); err != nil {
		return err
	}
	want := 1 << d.Params.TargetOrder
	if len(d.Roots) != want || len(d.InverseRoots) != want {
		return apperrors.NewInvariantError(apperrors.CheckLength, -1,
			"want %d roots, have %d forward and %d inverse", want, len(d.Roots), len(d.InverseRoots))
	}
	if err := checkClosure(apperrors.CheckClosure, d.Roots, d.Generator, p); err != nil {
		return err
	}
	if d.InverseGenerator.Cmp(d.Roots[want-1]) != 0 {
		return apperrors.NewInvariantError(apperrors.CheckInverseClosure, want-1,
			"inverse generator %x differs from last root %x", d.InverseGenerator, d.Roots[want-1])
	}
	if err := checkNonDegenerate(d.InverseRoots); err != nil {
		return err
	}
	if err := checkClosure(apperrors.CheckInverseClosure, d.InverseRoots, d.InverseGenerator, p); err != nil {
		return err
	}
	if err := checkIdentity(d.Roots, d.InverseRoots); err != nil {
		return err
	}
	return checkReverseSymmetry(d.Roots, d.InverseRoots)
}

// checkClosure asserts seq[n-1] * g == 1 mod p, i.e. the sequence returns to
// the identity after exactly n steps.
func checkClosure(check string, seq []*big.Int, g, p *big.Int) error {
	last := len(seq) - 1
	v := new(big.Int).Mul(seq[last], g)
	v.Mod(v, p)
	if v.Cmp(one) != 0 {
		return apperrors.NewInvariantError(check, last, "%x * %x mod p = %x, want 1", seq[last], g, v)
	}
	return nil
}

// checkNonDegenerate asserts no entry after the first equals 1, so the cycle
// is not shorter than the sequence.
func checkNonDegenerate(inv []*big.Int) error {
	for i := 1; i < len(inv); i++ {
		if inv[i].Cmp(one) == 0 {
			return apperrors.NewInvariantError(apperrors.CheckNonDegenerate, i,
				"inverse root reached the identity early")
		}
	}
	return nil
}

func checkIdentity(roots, inv []*big.Int) error {
	if roots[0].Cmp(one) != 0 || inv[0].Cmp(one) != 0 {
		return apperrors.NewInvariantError(apperrors.CheckIdentity, 0,
			"roots[0]=%x inverse[0]=%x, want 1", roots[0], inv[0])
	}
	return nil
}

// checkReverseSymmetry asserts roots[1:] reversed equals inv[1:], which is
// what allows a single table to serve both directions.
func checkReverseSymmetry(roots, inv []*big.Int) error {
	n := len(roots)
	if len(inv) != n {
		return apperrors.NewInvariantError(apperrors.CheckReverseSymmetry, -1,
			"length mismatch %d != %d", n, len(inv))
	}
	for i := 1; i < n; i++ {
		if roots[i].Cmp(inv[n-i]) != 0 {
			return apperrors.NewInvariantError(apperrors.CheckReverseSymmetry, i,
				"roots[%d]=%x inverse[%d]=%x", i, roots[i], n-i, inv[n-i])
		}
	}
	return nil
}
