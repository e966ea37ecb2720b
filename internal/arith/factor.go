package arith

import "math/big"

// PrimePower is one component p^e of an integer factorization.
type PrimePower struct {
	P *big.Int
	E int
}

// Value returns p^e.
func (pp PrimePower) Value() *big.Int {
	return new(big.Int).Exp(pp.P, big.NewInt(int64(pp.E)), nil)
}

// Factor returns the prime-power factorization of n by trial division,
// primes in ascending order. It is meant for group orders whose prime
// factors are small; a composite with a large prime factor makes the
// loop proportional to sqrt(n).
func Factor(n *big.Int) []PrimePower {
	var factors []PrimePower

	rest := new(big.Int).Set(n)
	two := big.NewInt(2)
	if e := divideOut(rest, two); e > 0 {
		factors = append(factors, PrimePower{P: big.NewInt(2), E: e})
	}

	d := big.NewInt(3)
	sq := new(big.Int)
	for sq.Mul(d, d).Cmp(rest) <= 0 {
		if e := divideOut(rest, d); e > 0 {
			factors = append(factors, PrimePower{P: new(big.Int).Set(d), E: e})
		}
		d.Add(d, two)
	}
	if rest.Cmp(one) > 0 {
		factors = append(factors, PrimePower{P: rest, E: 1})
	}
	return factors
}

// divideOut divides n by d as many times as possible, in place, and
// returns the multiplicity.
func divideOut(n, d *big.Int) int {
	e := 0
	q, r := new(big.Int), new(big.Int)
	for {
		q.QuoRem(n, d, r)
		if r.Sign() != 0 {
			return e
		}
		n.Set(q)
		e++
	}
}
