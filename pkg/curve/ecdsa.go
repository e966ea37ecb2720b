package curve

import (
	"crypto/rand"
	"errors"
	"fmt"
	"io"
	"math/big"

	"github.com/cryptool/go-dlog/internal/arith"
)

// ErrEphemeralKey is returned by Sign when the ephemeral scalar
// produces a degenerate signature component (t == 0 or s == 0). The
// signer must resample a fresh scalar and retry; Sign never retries
// internally.
var ErrEphemeralKey = errors.New("curve: degenerate ephemeral key, retry with a fresh scalar")

// Signature is an ECDSA signature (t, s), both in [1, N-1]. t is the
// x-coordinate mod N of the ephemeral point, s binds the message hash
// and the private key to t and the ephemeral scalar.
type Signature struct {
	T, S *big.Int
}

// RandomScalar draws a uniform scalar from [1, N-1]. Pass a
// cryptographically secure source such as crypto/rand.Reader; signing
// security collapses entirely if an ephemeral scalar repeats.
func (c *Curve) RandomScalar(random io.Reader) (*big.Int, error) {
	k, err := rand.Int(random, new(big.Int).Sub(c.N, big.NewInt(1)))
	if err != nil {
		return nil, err
	}
	return k.Add(k, big.NewInt(1)), nil
}

// GenerateKey returns a private scalar and the matching public point.
func (c *Curve) GenerateKey(random io.Reader) (*big.Int, *Point, error) {
	d, err := c.RandomScalar(random)
	if err != nil {
		return nil, nil, err
	}
	return d, c.ScalarBaseMult(d), nil
}

// Sign produces an ECDSA signature over the message hash m with the
// private scalar priv: a fresh ephemeral k is drawn from [1, N-1],
// t = (k*G).x mod N and s = (m + priv*t) * k^-1 mod N. Degenerate
// draws surface as ErrEphemeralKey for the caller to retry.
func (c *Curve) Sign(random io.Reader, m, priv *big.Int) (*Signature, error) {
	k, err := c.RandomScalar(random)
	if err != nil {
		return nil, err
	}

	t := new(big.Int).Mod(c.ScalarBaseMult(k).X, c.N)
	if t.Sign() == 0 {
		return nil, ErrEphemeralKey
	}

	kinv, err := arith.Inverse(k, c.N)
	if err != nil {
		return nil, fmt.Errorf("curve: ephemeral scalar not invertible: %w", err)
	}
	s := new(big.Int).Mul(priv, t)
	s.Add(s, new(big.Int).Mod(m, c.N))
	s.Mul(s, kinv)
	s.Mod(s, c.N)
	if s.Sign() == 0 {
		return nil, ErrEphemeralKey
	}

	return &Signature{T: t, S: s}, nil
}

// Verify checks sig over the message hash m against the public point
// pub. Signatures with t or s outside [1, N-1] are rejected outright;
// otherwise it accepts iff R = (m*s^-1)*G + (t*s^-1)*pub is finite
// with R.x mod N == t.
func (c *Curve) Verify(pub *Point, m *big.Int, sig *Signature) bool {
	if pub == nil || sig == nil || sig.T == nil || sig.S == nil {
		return false
	}
	if sig.T.Sign() <= 0 || sig.T.Cmp(c.N) >= 0 {
		return false
	}
	if sig.S.Sign() <= 0 || sig.S.Cmp(c.N) >= 0 {
		return false
	}

	w, err := arith.Inverse(sig.S, c.N)
	if err != nil {
		return false
	}
	u1 := new(big.Int).Mod(m, c.N)
	u1.Mul(u1, w)
	u1.Mod(u1, c.N)
	u2 := new(big.Int).Mul(sig.T, w)
	u2.Mod(u2, c.N)

	r := c.Add(c.ScalarBaseMult(u1), c.ScalarMult(pub, u2))
	if r.IsInfinity() {
		return false
	}
	return new(big.Int).Mod(r.X, c.N).Cmp(sig.T) == 0
}

// HashToInt truncates a message digest to the bit length of the curve
// order, the conventional ECDSA reduction of a hash to a scalar.
func HashToInt(hash []byte, c *Curve) *big.Int {
	orderBits := c.N.BitLen()
	orderBytes := (orderBits + 7) / 8
	if len(hash) > orderBytes {
		hash = hash[:orderBytes]
	}
	m := new(big.Int).SetBytes(hash)
	if excess := len(hash)*8 - orderBits; excess > 0 {
		m.Rsh(m, uint(excess))
	}
	return m
}
