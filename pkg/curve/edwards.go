package curve

import (
	"math/big"

	"filippo.io/edwards25519"

	"github.com/cryptool/go-dlog/pkg/group"
)

// edwards25519Order is l = 2^252 + 27742317777372353535851937790883648493,
// the prime order of the edwards25519 base-point subgroup.
const edwards25519Order = "7237005577332262213973186563042994240857116359379907606001950938285454250989"

// Edwards25519 exposes the prime-order subgroup of the edwards25519
// curve as a group.Group. It exists to show the group contract is not
// tied to Weierstrass arithmetic: the generic exponentiation drives
// filippo.io/edwards25519 point addition unchanged.
type Edwards25519 struct {
	n *big.Int
}

// NewEdwards25519 returns the edwards25519 base-point subgroup.
func NewEdwards25519() *Edwards25519 {
	n, ok := new(big.Int).SetString(edwards25519Order, 10)
	if !ok {
		panic("curve: bad edwards25519 order constant")
	}
	return &Edwards25519{n: n}
}

// EdPoint wraps an edwards25519 point as a group.Element.
type EdPoint struct {
	p *edwards25519.Point
}

func (e *EdPoint) Equal(o group.Element) bool {
	t, ok := o.(*EdPoint)
	return ok && e.p.Equal(t.p) == 1
}

// Bytes returns the canonical 32-byte compressed encoding.
func (e *EdPoint) Bytes() []byte { return e.p.Bytes() }

func mustEdPoint(e group.Element) *EdPoint {
	p, ok := e.(*EdPoint)
	if !ok {
		panic("curve: element is not an edwards25519 point")
	}
	return p
}

// Op implements group.Group by point addition.
func (g *Edwards25519) Op(a, b group.Element) group.Element {
	x, y := mustEdPoint(a), mustEdPoint(b)
	return &EdPoint{p: edwards25519.NewIdentityPoint().Add(x.p, y.p)}
}

// Identity implements group.Group.
func (g *Edwards25519) Identity() group.Element {
	return &EdPoint{p: edwards25519.NewIdentityPoint()}
}

// Order implements group.Group.
func (g *Edwards25519) Order() *big.Int { return new(big.Int).Set(g.n) }

// Generator returns the edwards25519 base point.
func (g *Edwards25519) Generator() group.Element {
	return &EdPoint{p: edwards25519.NewGeneratorPoint()}
}
