package group

import (
	"math/big"

	"github.com/cryptool/go-dlog/internal/arith"
)

// Scalar wraps a residue mod p as a group Element. The value is copied
// on construction, so callers may keep mutating their big.Int.
type Scalar struct {
	v *big.Int
}

// NewScalar returns the Element for the given integer value.
func NewScalar(v *big.Int) *Scalar {
	return &Scalar{v: new(big.Int).Set(v)}
}

// NewScalarFromInt64 is a convenience wrapper around NewScalar.
func NewScalarFromInt64(v int64) *Scalar {
	return &Scalar{v: big.NewInt(v)}
}

// BigInt returns a copy of the scalar's value.
func (s *Scalar) BigInt() *big.Int { return new(big.Int).Set(s.v) }

func (s *Scalar) Equal(o Element) bool {
	t, ok := o.(*Scalar)
	return ok && s.v.Cmp(t.v) == 0
}

func (s *Scalar) Bytes() []byte { return s.v.Bytes() }

func (s *Scalar) String() string { return s.v.String() }

func mustScalar(e Element) *Scalar {
	s, ok := e.(*Scalar)
	if !ok {
		panic("group: element is not a Zp scalar")
	}
	return s
}

// ZpAdd is the additive group of integers mod p: identity 0, order p.
type ZpAdd struct {
	p *big.Int
}

// NewZpAdd returns the additive group mod p.
func NewZpAdd(p *big.Int) *ZpAdd {
	return &ZpAdd{p: new(big.Int).Set(p)}
}

func (g *ZpAdd) Op(a, b Element) Element {
	v := new(big.Int).Add(mustScalar(a).v, mustScalar(b).v)
	return &Scalar{v: v.Mod(v, g.p)}
}

func (g *ZpAdd) Identity() Element { return &Scalar{v: new(big.Int)} }

func (g *ZpAdd) Order() *big.Int { return new(big.Int).Set(g.p) }

// Inv returns (-a) mod p.
func (g *ZpAdd) Inv(a *Scalar) *Scalar {
	v := new(big.Int).Neg(a.v)
	return &Scalar{v: v.Mod(v, g.p)}
}

// Modulus returns p.
func (g *ZpAdd) Modulus() *big.Int { return new(big.Int).Set(g.p) }

// ZpMult is the multiplicative group of units mod a prime p: identity
// 1, order p-1. The modulus must be prime; with a composite modulus
// non-units slip in and the operation is no longer a group, so that
// case is unsupported rather than detected.
type ZpMult struct {
	p *big.Int
}

// NewZpMult returns the multiplicative group mod the prime p.
func NewZpMult(p *big.Int) *ZpMult {
	return &ZpMult{p: new(big.Int).Set(p)}
}

func (g *ZpMult) Op(a, b Element) Element {
	v := new(big.Int).Mul(mustScalar(a).v, mustScalar(b).v)
	return &Scalar{v: v.Mod(v, g.p)}
}

func (g *ZpMult) Identity() Element { return &Scalar{v: big.NewInt(1)} }

func (g *ZpMult) Order() *big.Int { return new(big.Int).Sub(g.p, one) }

// Inv returns a^-1 mod p via the extended Euclidean algorithm. It
// fails only when a is not a unit, which for a prime modulus means
// a == 0 mod p.
func (g *ZpMult) Inv(a *Scalar) (*Scalar, error) {
	v, err := arith.Inverse(a.v, g.p)
	if err != nil {
		return nil, err
	}
	return &Scalar{v: v}, nil
}

// Modulus returns p.
func (g *ZpMult) Modulus() *big.Int { return new(big.Int).Set(g.p) }
