package curve

import (
	"math/big"
	"testing"

	"github.com/decred/dcrd/dcrec/secp256k1/v4"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// The generic affine arithmetic must agree with the reference
// secp256k1 implementation on its own curve.
func TestSecp256k1MatchesReference(t *testing.T) {
	c := Secp256k1()
	ref := secp256k1.S256()

	require.True(t, c.IsOnCurve(c.G))

	ks := []*big.Int{
		big.NewInt(1),
		big.NewInt(2),
		big.NewInt(3),
		big.NewInt(0xdeadbeef),
		new(big.Int).Sub(c.N, big.NewInt(1)),
	}
	for _, k := range ks {
		got := c.ScalarBaseMult(k)
		wantX, wantY := ref.ScalarBaseMult(k.Bytes())
		assert.Equal(t, wantX, got.X, "k=%v", k)
		assert.Equal(t, wantY, got.Y, "k=%v", k)
	}
}

func TestSecp256k1AddMatchesReference(t *testing.T) {
	c := Secp256k1()
	ref := secp256k1.S256()

	p := c.ScalarBaseMult(big.NewInt(2))
	q := c.ScalarBaseMult(big.NewInt(3))
	got := c.Add(p, q)
	wantX, wantY := ref.Add(p.X, p.Y, q.X, q.Y)

	assert.Equal(t, wantX, got.X)
	assert.Equal(t, wantY, got.Y)
	assert.True(t, c.IsOnCurve(got))
}

func TestSecp256k1Params(t *testing.T) {
	c := Secp256k1()
	params := secp256k1.S256().Params()

	assert.Equal(t, params.P, c.P)
	assert.Equal(t, params.N, c.N)
	assert.Equal(t, params.B, c.B)
	assert.Equal(t, int64(0), c.A.Int64())
}
