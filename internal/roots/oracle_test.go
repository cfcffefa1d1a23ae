package roots

import (
	"fmt"
	"testing"

	"github.com/tuneinsight/lattigo/v4/ring"

	"github.com/agbru/nttparams/internal/testutil"
)

// TestGeneratorMatchesLattigo compares the derived generator with lattigo's
// word-sized modular exponentiation, an implementation that shares no code
// with the backends.
func TestGeneratorMatchesLattigo(t *testing.T) {
	t.Parallel()
	for _, f := range testutil.Uint64Fields() {
		f := f
		// lattigo's reductions assume moduli below 2^61.
		if f.Modulus.BitLen() > 61 {
			continue
		}
		p := f.Modulus.Uint64()
		for tgt := uint(0); tgt < f.Order && tgt <= 12; tgt++ {
			tgt := tgt
			t.Run(fmt.Sprintf("p=%d/order=%d", p, tgt), func(t *testing.T) {
				t.Parallel()
				d, err := bigEngine().Derive(Params{
					Modulus:     f.Modulus,
					Generator:   f.Root,
					SourceOrder: f.Order,
					TargetOrder: tgt,
				})
				if err != nil {
					t.Fatalf("Derive failed: %v", err)
				}
				want := ring.ModExp(f.Root.Uint64(), uint64(1)<<(f.Order-tgt), p)
				if got := d.Generator.Uint64(); got != want {
					t.Errorf("generator = %d, lattigo = %d", got, want)
				}
				last := ring.ModExp(want, uint64(d.Size()-1), p)
				if got := d.InverseGenerator.Uint64(); got != last {
					t.Errorf("inverse generator = %d, lattigo = %d", got, last)
				}
			})
		}
	}
}
