package benchmark

import (
	"crypto/rand"
	"crypto/sha256"
	"math/big"
	"testing"

	"github.com/cryptool/go-dlog/pkg/curve"
	"github.com/cryptool/go-dlog/pkg/group"
)

// The 1009 instance: order 1008 = 2^4 * 3^2 * 7, solvable by all three
// strategies.
func setupZp() (group.Group, group.Element, group.Element) {
	g := group.NewZpMult(big.NewInt(1009))
	base := group.NewScalarFromInt64(11)
	target := group.Exp(g, base, big.NewInt(777))
	return g, base, target
}

func BenchmarkDLNaive(b *testing.B) {
	g, base, target := setupZp()
	for i := 0; i < b.N; i++ {
		if _, err := group.DLNaive(g, base, target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkBabyStepGiantStep(b *testing.B) {
	g, base, target := setupZp()
	for i := 0; i < b.N; i++ {
		if _, err := group.BabyStepGiantStep(g, base, target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkPohligHellman(b *testing.B) {
	g, base, target := setupZp()
	for i := 0; i < b.N; i++ {
		if _, err := group.PohligHellman(g, base, target); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkScalarBaseMult(b *testing.B) {
	c := curve.Secp256k1()
	k, err := c.RandomScalar(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		c.ScalarBaseMult(k)
	}
}

func BenchmarkECDSASign(b *testing.B) {
	c := curve.Secp256k1()
	priv, _, err := c.GenerateKey(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	digest := sha256.Sum256([]byte("benchmark message"))
	m := curve.HashToInt(digest[:], c)
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if _, err := c.Sign(rand.Reader, m, priv); err != nil {
			b.Fatal(err)
		}
	}
}

func BenchmarkECDSAVerify(b *testing.B) {
	c := curve.Secp256k1()
	priv, pub, err := c.GenerateKey(rand.Reader)
	if err != nil {
		b.Fatal(err)
	}
	digest := sha256.Sum256([]byte("benchmark message"))
	m := curve.HashToInt(digest[:], c)
	sig, err := c.Sign(rand.Reader, m, priv)
	if err != nil {
		b.Fatal(err)
	}
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		if !c.Verify(pub, m, sig) {
			b.Fatal("verification failed")
		}
	}
}
