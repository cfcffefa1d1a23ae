package roots

import (
	"fmt"
	"math/big"

	apperrors "github.com/agbru/nttparams/internal/errors"
)

// Params are the inputs of a derivation.
type Params struct {
	// Modulus is the field modulus p. It must be odd and greater than 1.
	Modulus *big.Int
	// Generator generates the subgroup of order 2^SourceOrder. It must lie in [0, p).
	Generator *big.Int
	// SourceOrder is log2 of the order of Generator's subgroup.
	SourceOrder uint
	// TargetOrder is log2 of the order of the derived subgroup.
	TargetOrder uint
}

// Validate checks the input constraints of a derivation. It does not check
// that the modulus is prime or that the generator has the stated order.
func (p Params) Validate() error {
	if err := validateField(p.Modulus, p.Generator, "generator"); err != nil {
		return err
	}
	if p.TargetOrder >= p.SourceOrder {
		return apperrors.NewValidationError("target_order",
			fmt.Sprintf("must be strictly less than the source order %d", p.SourceOrder), p.TargetOrder)
	}
	return validateOrder(p.TargetOrder)
}

// Size returns the number of roots in the derived subgroup, 2^TargetOrder.
func (p Params) Size() int { return 1 << p.TargetOrder }

// ReductionExponent returns k such that squaring the source generator k
// times yields the target generator.
func (p Params) ReductionExponent() uint { return p.SourceOrder - p.TargetOrder }

func validateField(modulus, generator *big.Int, generatorField string) error {
	if modulus == nil {
		return apperrors.NewValidationError("modulus", "is required", nil)
	}
	if modulus.Cmp(big.NewInt(1)) <= 0 {
		return apperrors.NewValidationError("modulus", "must be greater than 1", modulus.Text(16))
	}
	if modulus.Bit(0) == 0 {
		return apperrors.NewValidationError("modulus", "must be odd", modulus.Text(16))
	}
	if generator == nil {
		return apperrors.NewValidationError(generatorField, "is required", nil)
	}
	if generator.Sign() < 0 || generator.Cmp(modulus) >= 0 {
		return apperrors.NewValidationError(generatorField, "must lie in [0, p)", generator.Text(16))
	}
	return nil
}

func validateOrder(order uint) error {
	if order > MaxTargetOrder {
		return apperrors.NewValidationError("target_order",
			fmt.Sprintf("must not exceed %d", MaxTargetOrder), order)
	}
	return nil
}
