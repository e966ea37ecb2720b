// Package arith implements the exact integer arithmetic the group and
// curve layers are built on: the Euclidean algorithm, modular inverses
// and the Chinese Remainder Theorem.
package arith

import (
	"errors"
	"fmt"
	"math/big"
)

var (
	// ErrNotInvertible is returned when a modular inverse is requested
	// for an element that is not a unit, i.e. gcd(x, n) != 1.
	ErrNotInvertible = errors.New("arith: element has no modular inverse")

	// ErrCRTLength is returned when the remainder and modulus lists
	// passed to CRT have different lengths.
	ErrCRTLength = errors.New("arith: remainders and moduli must have the same length")

	// ErrCRTModuli is returned when the CRT moduli are not pairwise coprime.
	ErrCRTModuli = errors.New("arith: moduli must be pairwise coprime")
)

var one = big.NewInt(1)

// GCD returns the greatest common divisor of a and b.
func GCD(a, b *big.Int) *big.Int {
	x := new(big.Int).Abs(a)
	y := new(big.Int).Abs(b)
	for y.Sign() != 0 {
		x, y = y, x.Mod(x, y)
	}
	return x
}

// Bezout runs the extended Euclidean algorithm and returns (g, u, v)
// such that a*u + b*v = g = gcd(a, b), with g normalized non-negative.
func Bezout(a, b *big.Int) (g, u, v *big.Int) {
	g = new(big.Int).Set(a)
	r := new(big.Int).Set(b)
	u, u1 := big.NewInt(1), big.NewInt(0)
	v, v1 := big.NewInt(0), big.NewInt(1)

	q, t := new(big.Int), new(big.Int)
	for r.Sign() != 0 {
		q.QuoRem(g, r, t)
		g, r = r, t
		t = new(big.Int)
		u, u1 = u1, new(big.Int).Sub(u, new(big.Int).Mul(q, u1))
		v, v1 = v1, new(big.Int).Sub(v, new(big.Int).Mul(q, v1))
		q = new(big.Int)
	}

	if g.Sign() < 0 {
		g.Neg(g)
		u.Neg(u)
		v.Neg(v)
	}
	return g, u, v
}

// Inverse returns x^-1 mod n. It fails with ErrNotInvertible when
// gcd(x, n) != 1; the caller decides whether that is recoverable.
func Inverse(x, n *big.Int) (*big.Int, error) {
	g, u, _ := Bezout(x, n)
	if g.Cmp(one) != 0 {
		return nil, fmt.Errorf("%w: %v mod %v", ErrNotInvertible, x, n)
	}
	return u.Mod(u, n), nil
}

// PairwiseCoprime reports whether every pair of the given moduli has
// gcd 1.
func PairwiseCoprime(moduli []*big.Int) bool {
	for i := 0; i < len(moduli); i++ {
		for j := i + 1; j < len(moduli); j++ {
			if GCD(moduli[i], moduli[j]).Cmp(one) != 0 {
				return false
			}
		}
	}
	return true
}

// CRT solves the system x = remainders[i] (mod moduli[i]) and returns
// the unique solution modulo the product of the moduli. The moduli
// must be pairwise coprime and match the remainders in length.
func CRT(remainders, moduli []*big.Int) (*big.Int, error) {
	if len(remainders) != len(moduli) {
		return nil, ErrCRTLength
	}
	if !PairwiseCoprime(moduli) {
		return nil, ErrCRTModuli
	}

	n := big.NewInt(1)
	for _, m := range moduli {
		n.Mul(n, m)
	}

	x := new(big.Int)
	for i, m := range moduli {
		ni := new(big.Int).Quo(n, m)
		bi, err := Inverse(ni, m)
		if err != nil {
			// Unreachable once the moduli are pairwise coprime.
			return nil, err
		}
		term := new(big.Int).Mul(remainders[i], ni)
		term.Mul(term, bi)
		x.Add(x, term)
	}
	return x.Mod(x, n), nil
}
