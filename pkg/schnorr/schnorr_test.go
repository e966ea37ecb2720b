package schnorr

import (
	"math/big"
	"testing"

	"github.com/cryptool/go-dlog/pkg/curve"
	"github.com/cryptool/go-dlog/pkg/group"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestProveVerifyZpMult(t *testing.T) {
	g := group.NewZpMult(big.NewInt(809))
	base := group.NewScalarFromInt64(3)
	x := big.NewInt(309)
	public := group.Exp(g, base, x)

	proof, err := Prove(g, base, public, x)
	require.NoError(t, err)
	assert.True(t, proof.Verify(g, base, public))
}

func TestProveVerifyCurve(t *testing.T) {
	c := curve.Secp256k1()
	x := big.NewInt(0x1337)
	public := c.ScalarBaseMult(x)

	proof, err := Prove(c, c.G, public, x)
	require.NoError(t, err)
	assert.True(t, proof.Verify(c, c.G, public))
}

func TestVerifyRejectsTampering(t *testing.T) {
	c := curve.Secp256k1()
	x := big.NewInt(42)
	public := c.ScalarBaseMult(x)

	proof, err := Prove(c, c.G, public, x)
	require.NoError(t, err)
	require.True(t, proof.Verify(c, c.G, public))

	bumped := new(big.Int).Add(proof.S, big.NewInt(1))
	bumped.Mod(bumped, c.Order())
	assert.False(t, (&Proof{R: proof.R, S: bumped}).Verify(c, c.G, public))

	wrongPublic := c.ScalarBaseMult(big.NewInt(43))
	assert.False(t, proof.Verify(c, c.G, wrongPublic))

	assert.False(t, (&Proof{R: proof.R, S: c.Order()}).Verify(c, c.G, public), "s out of range")
}

func TestProveNeedsOrder(t *testing.T) {
	g := &orderless{group.NewZpMult(big.NewInt(809))}
	base := group.NewScalarFromInt64(3)
	_, err := Prove(g, base, base, big.NewInt(1))
	assert.ErrorIs(t, err, group.ErrUnknownOrder)
}

type orderless struct {
	group.Group
}

func (g *orderless) Order() *big.Int { return nil }
