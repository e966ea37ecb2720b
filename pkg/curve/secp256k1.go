package curve

import (
	"math/big"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
)

// Secp256k1 returns the standard secp256k1 curve (y^2 = x^3 + 7), with
// its parameters taken from the reference implementation so they stay
// in sync with what the rest of the ecosystem signs against.
func Secp256k1() *Curve {
	params := secp256k1.S256().Params()
	return &Curve{
		Name: params.Name,
		P:    params.P,
		A:    big.NewInt(0),
		B:    params.B,
		G:    NewPoint(params.Gx, params.Gy),
		N:    params.N,
	}
}
