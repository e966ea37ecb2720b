package group

import "math/big"

// NaiveThreshold is the group order below which SolveDL prefers the
// linear scan over building a baby-step table.
const NaiveThreshold = 1000

// DLNaive finds the smallest non-negative k with base^k == target by
// repeated application of the group operation. O(N) group operations;
// only sensible for small orders. Fails with ErrUnknownOrder when the
// group cannot state its order, and with ErrNotFound once a full cycle
// of the group has been walked without a match; the order bound is
// what keeps a target outside the subgroup from looping forever.
func DLNaive(g Group, base, target Element) (*big.Int, error) {
	n := g.Order()
	if n == nil {
		return nil, ErrUnknownOrder
	}
	x := g.Identity()
	k := new(big.Int)
	for !x.Equal(target) {
		x = g.Op(x, base)
		k.Add(k, one)
		if k.Cmp(n) >= 0 {
			return nil, ErrNotFound
		}
	}
	return k, nil
}

// BabyStepGiantStep solves base^k == target in O(sqrt(N)) group
// operations and O(sqrt(N)) memory. It tabulates base^(i*w) for
// w = ceil(sqrt(N)) and i in [0, w], then steps the target backwards by
// one generator power at a time until it lands in the table, giving
// k = w*i + j. Fails with ErrNotFound after w giant steps, which only
// happens when target is outside the cyclic group generated by base or
// the supplied order is wrong.
func BabyStepGiantStep(g Group, base, target Element) (*big.Int, error) {
	n := g.Order()
	if n == nil {
		return nil, ErrUnknownOrder
	}
	w := ceilSqrt(n)

	giant := Exp(g, base, w)
	table := make(map[string]*big.Int)
	cur := g.Identity()
	for i := new(big.Int); i.Cmp(w) <= 0; i.Add(i, one) {
		key := string(cur.Bytes())
		if _, seen := table[key]; !seen {
			table[key] = new(big.Int).Set(i)
		}
		cur = g.Op(cur, giant)
	}

	// base^(N-1) steps the running value from target*base^(-j) to
	// target*base^(-j-1) without needing a group inverse.
	back := Exp(g, base, new(big.Int).Sub(n, one))
	y := target
	for j := new(big.Int); j.Cmp(w) <= 0; j.Add(j, one) {
		if i, ok := table[string(y.Bytes())]; ok {
			k := new(big.Int).Mul(w, i)
			k.Add(k, j)
			return k.Mod(k, n), nil
		}
		y = g.Op(y, back)
	}
	return nil, ErrNotFound
}

// SolveDL dispatches between DLNaive and BabyStepGiantStep using
// NaiveThreshold. Callers that need the O(sqrt(N)) guarantee regardless
// of the order should call BabyStepGiantStep directly.
func SolveDL(g Group, base, target Element) (*big.Int, error) {
	return SolveDLThreshold(g, base, target, big.NewInt(NaiveThreshold))
}

// SolveDLThreshold is SolveDL with an explicit crossover point: orders
// below threshold take the linear scan, everything else pays the
// baby-step table setup.
func SolveDLThreshold(g Group, base, target Element, threshold *big.Int) (*big.Int, error) {
	n := g.Order()
	if n == nil {
		return nil, ErrUnknownOrder
	}
	if n.Cmp(threshold) < 0 {
		return DLNaive(g, base, target)
	}
	return BabyStepGiantStep(g, base, target)
}

// ceilSqrt returns the smallest w with w*w >= n.
func ceilSqrt(n *big.Int) *big.Int {
	w := new(big.Int).Sqrt(n)
	if new(big.Int).Mul(w, w).Cmp(n) < 0 {
		w.Add(w, one)
	}
	return w
}
