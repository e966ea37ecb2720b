package group

import (
	"fmt"
	"math/big"

	"github.com/cryptool/go-dlog/internal/arith"
)

// PohligHellman solves base^x == target when the group order factors
// into small prime powers. The log is projected into each order-p^e
// subgroup, solved there by recursive base-p digit peeling, and the
// partial results are recombined with the Chinese Remainder Theorem.
// The moduli handed to the CRT are distinct prime powers, so they are
// pairwise coprime by construction.
//
// The order is not verified to be the true order of base; a wrong
// order yields a wrong answer without detection.
func PohligHellman(g Group, base, target Element) (*big.Int, error) {
	n := g.Order()
	if n == nil {
		return nil, ErrUnknownOrder
	}

	factors := arith.Factor(n)
	remainders := make([]*big.Int, 0, len(factors))
	moduli := make([]*big.Int, 0, len(factors))
	for _, pp := range factors {
		q := pp.Value()
		cofactor := new(big.Int).Quo(n, q)

		// base and target projected into the order-q subgroup.
		gj := Exp(g, base, cofactor)
		hj := Exp(g, target, cofactor)

		x, err := primePowerLog(g, gj, hj, pp)
		if err != nil {
			return nil, fmt.Errorf("subgroup of order %v^%d: %w", pp.P, pp.E, err)
		}
		remainders = append(remainders, x)
		moduli = append(moduli, q)
	}
	return arith.CRT(remainders, moduli)
}

// primePowerLog solves base^x == target where base has order p^e,
// recovering x one base-p digit at a time. At step j the digits found
// so far are stripped from the target and the rest is raised to
// p^(e-1-j), which isolates digit j inside the order-p subgroup
// generated by base^(p^(e-1)). Each digit is a discrete log of order
// exactly p, solved with the table-based baby-step giant-step.
func primePowerLog(g Group, base, target Element, pp arith.PrimePower) (*big.Int, error) {
	m := pp.Value()
	pe1 := new(big.Int).Quo(m, pp.P) // p^(e-1)

	gamma := Exp(g, base, pe1)
	sub := WithOrder(g, pp.P)

	x := new(big.Int)
	pj := big.NewInt(1) // p^j
	for j := 0; j < pp.E; j++ {
		// target * base^(-x), using m-x in place of an inverse.
		negx := new(big.Int).Mod(x, m)
		negx.Sub(m, negx)
		negx.Mod(negx, m)
		t := g.Op(target, Exp(g, base, negx))
		t = Exp(g, t, new(big.Int).Quo(pe1, pj))

		d, err := BabyStepGiantStep(sub, gamma, t)
		if err != nil {
			return nil, err
		}
		x.Add(x, new(big.Int).Mul(d, pj))
		pj.Mul(pj, pp.P)
	}
	return x, nil
}
