// Package group defines an abstract algebraic group with a single
// required operation and derives fast exponentiation and a family of
// discrete-logarithm solvers (naive search, baby-step giant-step,
// Pohlig-Hellman) from that one contract.
package group

import (
	"errors"
	"math/big"
)

var (
	// ErrNotFound is returned when a discrete-logarithm search exhausts
	// its space without a match. Distinct from a result of zero.
	ErrNotFound = errors.New("group: discrete logarithm not found")

	// ErrUnknownOrder is returned when an algorithm needs the group
	// order and the group was built without one.
	ErrUnknownOrder = errors.New("group: group order is unknown")
)

var one = big.NewInt(1)

// Element is an element of a Group. Bytes must be a canonical encoding
// that never collides between distinct elements of the same group; it
// is used to key the baby-step tables.
type Element interface {
	Equal(Element) bool
	Bytes() []byte
}

// Group is the contract every concrete group implements: one binary
// operation, its identity, and the group order. Op must be associative
// with identity Identity(); Order may return nil when the order is
// unknown. The order is trusted as-is: supplying a wrong order makes
// exponentiation shortcuts and the discrete-log solvers silently
// produce wrong results.
//
// Groups are immutable after construction and safe for concurrent use.
type Group interface {
	Op(a, b Element) Element
	Identity() Element
	Order() *big.Int
}

// Exp computes x^k (k*x in additive notation) by square-and-multiply,
// scanning the bits of k from most to least significant.
//
// k == 0 yields the identity. k == -1 is shorthand for the order minus
// one and requires a known order. Any other negative exponent is
// unsupported and panics.
func Exp(g Group, x Element, k *big.Int) Element {
	if k.Sign() < 0 {
		if k.Cmp(big.NewInt(-1)) != 0 {
			panic("group: negative exponents other than -1 are not supported")
		}
		n := g.Order()
		if n == nil {
			panic("group: exponent -1 requires a known group order")
		}
		return Exp(g, x, new(big.Int).Sub(n, one))
	}

	h := g.Identity()
	for i := k.BitLen() - 1; i >= 0; i-- {
		h = g.Op(h, h)
		if k.Bit(i) == 1 {
			h = g.Op(h, x)
		}
	}
	return h
}

// Subgroup presents an existing group with an explicit order, leaving
// the operation and identity untouched. Pohlig-Hellman uses it to view
// the order-p^e subgroups of a composite-order group; callers can use
// it to solve logs inside any cyclic subgroup without rebuilding the
// ambient group.
type Subgroup struct {
	base  Group
	order *big.Int
}

// WithOrder wraps g with an explicit order n, which must divide the
// order of the subgroup's generator for the solvers to be meaningful.
func WithOrder(g Group, n *big.Int) *Subgroup {
	return &Subgroup{base: g, order: new(big.Int).Set(n)}
}

func (s *Subgroup) Op(a, b Element) Element { return s.base.Op(a, b) }

func (s *Subgroup) Identity() Element { return s.base.Identity() }

func (s *Subgroup) Order() *big.Int { return new(big.Int).Set(s.order) }
