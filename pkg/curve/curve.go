// Package curve implements short Weierstrass elliptic-curve groups
// over prime fields, in affine coordinates, together with ECDSA. A
// Curve satisfies the group.Group contract, so the generic
// exponentiation and discrete-log solvers apply to curve points
// exactly as they do to scalars.
package curve

import (
	"math/big"

	"github.com/cryptool/go-dlog/internal/arith"
	"github.com/cryptool/go-dlog/pkg/group"
)

// Point is an affine curve point. The zero value (nil coordinates) is
// the point at infinity, the group identity; it is distinct from every
// valid (x, y) pair.
type Point struct {
	X, Y *big.Int
}

// Infinity returns the point at infinity.
func Infinity() *Point { return &Point{} }

// NewPoint returns the point (x, y). The coordinates are copied.
func NewPoint(x, y *big.Int) *Point {
	return &Point{X: new(big.Int).Set(x), Y: new(big.Int).Set(y)}
}

// IsInfinity reports whether p is the point at infinity. A nil point
// counts as infinity.
func (p *Point) IsInfinity() bool { return p == nil || p.X == nil }

func (p *Point) Equal(o group.Element) bool {
	q, ok := o.(*Point)
	if !ok {
		return false
	}
	if p.IsInfinity() || q.IsInfinity() {
		return p.IsInfinity() && q.IsInfinity()
	}
	return p.X.Cmp(q.X) == 0 && p.Y.Cmp(q.Y) == 0
}

// Bytes returns a canonical encoding: 0x00 for infinity, otherwise
// 0x04 followed by a length-prefixed x and then y, so distinct points
// never collide as table keys.
func (p *Point) Bytes() []byte {
	if p.IsInfinity() {
		return []byte{0}
	}
	xb, yb := p.X.Bytes(), p.Y.Bytes()
	out := make([]byte, 0, 3+len(xb)+len(yb))
	out = append(out, 4, byte(len(xb)>>8), byte(len(xb)))
	out = append(out, xb...)
	return append(out, yb...)
}

func (p *Point) String() string {
	if p.IsInfinity() {
		return "(inf)"
	}
	return "(" + p.X.String() + "," + p.Y.String() + ")"
}

func mustPoint(e group.Element) *Point {
	p, ok := e.(*Point)
	if !ok {
		panic("curve: element is not a curve point")
	}
	return p
}

// Curve is the group of points on y^2 = x^3 + A*x + B over the prime
// field F_P, with generator G of order N. Immutable after construction
// and safe for concurrent use.
//
// Except for IsOnCurve, the arithmetic does not re-verify that its
// inputs satisfy the curve equation; callers own that invariant.
type Curve struct {
	Name string
	P    *big.Int // field modulus
	A, B *big.Int // curve coefficients
	G    *Point   // generator
	N    *big.Int // order of G
}

// Op implements group.Group. Both elements must be *Point.
func (c *Curve) Op(a, b group.Element) group.Element {
	return c.Add(mustPoint(a), mustPoint(b))
}

// Identity implements group.Group.
func (c *Curve) Identity() group.Element { return Infinity() }

// Order implements group.Group, returning the order of the generator.
func (c *Curve) Order() *big.Int { return new(big.Int).Set(c.N) }

// Add returns p + q by the chord-and-tangent rule: infinity is the
// identity, a point plus its negation is infinity, doubling uses the
// tangent slope (3x^2+A)/(2y), distinct points use the chord slope
// (y2-y1)/(x2-x1).
func (c *Curve) Add(p, q *Point) *Point {
	if p.IsInfinity() {
		return q
	}
	if q.IsInfinity() {
		return p
	}

	if p.X.Cmp(q.X) == 0 {
		negY := new(big.Int).Neg(p.Y)
		negY.Mod(negY, c.P)
		if q.Y.Cmp(negY) == 0 {
			// q == -p; covers doubling a point with y == 0 as well.
			return Infinity()
		}
		return c.double(p)
	}

	dy := new(big.Int).Sub(q.Y, p.Y)
	dx := new(big.Int).Sub(q.X, p.X)
	dx.Mod(dx, c.P)
	return c.chord(p, q, dy, dx)
}

// Double returns 2*p.
func (c *Curve) Double(p *Point) *Point {
	if p.IsInfinity() || p.Y.Sign() == 0 {
		return Infinity()
	}
	return c.double(p)
}

// double assumes p is a finite point with y != 0.
func (c *Curve) double(p *Point) *Point {
	// tangent slope (3x^2 + A) / (2y)
	num := new(big.Int).Mul(p.X, p.X)
	num.Mul(num, big.NewInt(3))
	num.Add(num, c.A)
	den := new(big.Int).Lsh(p.Y, 1)
	den.Mod(den, c.P)
	return c.chord(p, p, num, den)
}

// chord finishes an addition given the slope numerator and denominator:
// x3 = l^2 - x1 - x2, y3 = l*(x1 - x3) - y1.
func (c *Curve) chord(p, q *Point, num, den *big.Int) *Point {
	inv, err := arith.Inverse(den, c.P)
	if err != nil {
		// Impossible over a prime field for valid, non-opposite inputs.
		panic("curve: non-invertible slope denominator; point not on curve?")
	}
	l := new(big.Int).Mul(num, inv)
	l.Mod(l, c.P)

	x3 := new(big.Int).Mul(l, l)
	x3.Sub(x3, p.X)
	x3.Sub(x3, q.X)
	x3.Mod(x3, c.P)

	y3 := new(big.Int).Sub(p.X, x3)
	y3.Mul(y3, l)
	y3.Sub(y3, p.Y)
	y3.Mod(y3, c.P)

	return &Point{X: x3, Y: y3}
}

// Neg returns -p, the point (x, -y).
func (c *Curve) Neg(p *Point) *Point {
	if p.IsInfinity() {
		return Infinity()
	}
	y := new(big.Int).Neg(p.Y)
	return &Point{X: new(big.Int).Set(p.X), Y: y.Mod(y, c.P)}
}

// ScalarMult returns k*p by double-and-add.
func (c *Curve) ScalarMult(p *Point, k *big.Int) *Point {
	return mustPoint(group.Exp(c, p, k))
}

// ScalarBaseMult returns k*G.
func (c *Curve) ScalarBaseMult(k *big.Int) *Point {
	return c.ScalarMult(c.G, k)
}

// polynomial evaluates x^3 + A*x + B mod P.
func (c *Curve) polynomial(x *big.Int) *big.Int {
	y2 := new(big.Int).Mul(x, x)
	y2.Mul(y2, x)
	y2.Add(y2, new(big.Int).Mul(c.A, x))
	y2.Add(y2, c.B)
	return y2.Mod(y2, c.P)
}

// IsOnCurve reports whether p is the point at infinity or satisfies
// y^2 = x^3 + A*x + B mod P with reduced coordinates.
func (c *Curve) IsOnCurve(p *Point) bool {
	if p.IsInfinity() {
		return true
	}
	if p.X.Sign() < 0 || p.X.Cmp(c.P) >= 0 || p.Y.Sign() < 0 || p.Y.Cmp(c.P) >= 0 {
		return false
	}
	y2 := new(big.Int).Mul(p.Y, p.Y)
	y2.Mod(y2, c.P)
	return y2.Cmp(c.polynomial(p.X)) == 0
}
