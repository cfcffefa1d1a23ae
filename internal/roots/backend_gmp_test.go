//go:build gmp

package roots

import (
	"testing"

	"github.com/agbru/nttparams/internal/testutil"
)

func TestGMPBackendMatchesBig(t *testing.T) {
	t.Parallel()
	for _, f := range testutil.ToyFields {
		k := f.Order / 2
		want := (BigBackend{}).RepeatedSquare(f.Root, f.Modulus, k)
		got := (GMPBackend{}).RepeatedSquare(f.Root, f.Modulus, k)
		if got.Cmp(want) != 0 {
			t.Errorf("p=%v: RepeatedSquare = %v, want %v", f.Modulus, got, want)
		}
		wantPow := (BigBackend{}).Powers(want, f.Modulus, 64)
		gotPow := (GMPBackend{}).Powers(want, f.Modulus, 64)
		if !equalSeq(gotPow, wantPow) {
			t.Errorf("p=%v: Powers differ", f.Modulus)
		}
	}
}
