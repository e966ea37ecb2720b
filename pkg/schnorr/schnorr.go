// Package schnorr implements a non-interactive Schnorr proof of
// knowledge of a discrete logarithm over any group with known order:
// the prover convinces a verifier it knows x with X = g^x without
// revealing x. The challenge is derived by Fiat-Shamir over the
// element encodings.
package schnorr

import (
	"crypto/rand"
	"crypto/sha256"
	"errors"
	"math/big"

	"github.com/cryptool/go-dlog/pkg/group"
)

// Proof is a Schnorr proof (R, s): commitment R = g^k and response
// s = k + e*x mod N for the challenge e = H(base, X, R).
type Proof struct {
	R group.Element
	S *big.Int
}

// Prove generates a proof of knowledge of x, where public = base^x.
// The group order must be known; the nonce is drawn from crypto/rand
// and must never repeat across proofs of the same secret.
func Prove(g group.Group, base, public group.Element, x *big.Int) (*Proof, error) {
	n := g.Order()
	if n == nil {
		return nil, group.ErrUnknownOrder
	}
	if x == nil || public == nil {
		return nil, errors.New("schnorr: inputs cannot be nil")
	}

	k, err := rand.Int(rand.Reader, n)
	if err != nil {
		return nil, err
	}
	r := group.Exp(g, base, k)

	e := challenge(n, base, public, r)
	s := new(big.Int).Mul(e, x)
	s.Add(s, k)
	s.Mod(s, n)

	return &Proof{R: r, S: s}, nil
}

// Verify checks the proof against public = base^x: it recomputes the
// challenge and accepts iff base^s == R * public^e.
func (p *Proof) Verify(g group.Group, base, public group.Element) bool {
	if p == nil || p.R == nil || p.S == nil {
		return false
	}
	n := g.Order()
	if n == nil {
		return false
	}
	if p.S.Sign() < 0 || p.S.Cmp(n) >= 0 {
		return false
	}

	e := challenge(n, base, public, p.R)
	lhs := group.Exp(g, base, p.S)
	rhs := g.Op(p.R, group.Exp(g, public, e))
	return lhs.Equal(rhs)
}

// challenge computes H(base, public, commitment) mod n.
func challenge(n *big.Int, base, public, commitment group.Element) *big.Int {
	h := sha256.New()
	for _, el := range []group.Element{base, public, commitment} {
		b := el.Bytes()
		h.Write([]byte{byte(len(b) >> 8), byte(len(b))})
		h.Write(b)
	}
	e := new(big.Int).SetBytes(h.Sum(nil))
	return e.Mod(e, n)
}
