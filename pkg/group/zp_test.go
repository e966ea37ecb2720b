package group

import (
	"errors"
	"math/big"
	"testing"

	"github.com/cryptool/go-dlog/internal/arith"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestZpAdd(t *testing.T) {
	g := NewZpAdd(big.NewInt(13))

	assert.Equal(t, big.NewInt(13), g.Order())
	assert.True(t, g.Identity().Equal(NewScalarFromInt64(0)))

	sum := g.Op(NewScalarFromInt64(7), NewScalarFromInt64(9))
	assert.True(t, sum.Equal(NewScalarFromInt64(3)), "7+9 mod 13")

	a := NewScalarFromInt64(5)
	assert.True(t, g.Op(a, g.Inv(a)).Equal(g.Identity()), "a + (-a) = 0")
}

func TestZpMult(t *testing.T) {
	g := NewZpMult(big.NewInt(13))

	assert.Equal(t, big.NewInt(12), g.Order())
	assert.True(t, g.Identity().Equal(NewScalarFromInt64(1)))

	prod := g.Op(NewScalarFromInt64(7), NewScalarFromInt64(9))
	assert.True(t, prod.Equal(NewScalarFromInt64(11)), "7*9 mod 13 = 63 mod 13")

	a := NewScalarFromInt64(5)
	inv, err := g.Inv(a)
	require.NoError(t, err)
	assert.True(t, g.Op(a, inv).Equal(g.Identity()), "a * a^-1 = 1")
}

func TestZpMultInvZero(t *testing.T) {
	g := NewZpMult(big.NewInt(13))
	_, err := g.Inv(NewScalarFromInt64(0))
	assert.True(t, errors.Is(err, arith.ErrNotInvertible))
}

func TestScalarCopies(t *testing.T) {
	v := big.NewInt(42)
	s := NewScalar(v)
	v.SetInt64(0)
	assert.Equal(t, big.NewInt(42), s.BigInt(), "NewScalar must copy its input")
}
