// Command dlog solves g^x = h in the multiplicative group mod a prime.
//
// Usage:
//
//	dlog -p 809 -g 3 -h 525 [-method auto|naive|bsgs|pohlig] [-threshold 1000]
package main

import (
	"flag"
	"fmt"
	"log"
	"math/big"

	"github.com/cryptool/go-dlog/pkg/group"
)

func main() {
	var (
		pStr      = flag.String("p", "", "prime modulus")
		gStr      = flag.String("g", "", "generator")
		hStr      = flag.String("h", "", "target element")
		method    = flag.String("method", "auto", "auto, naive, bsgs or pohlig")
		threshold = flag.Int64("threshold", group.NaiveThreshold, "order below which auto prefers the naive scan")
	)
	flag.Parse()

	p, ok := new(big.Int).SetString(*pStr, 10)
	if !ok {
		log.Fatalf("invalid -p %q", *pStr)
	}
	gv, ok := new(big.Int).SetString(*gStr, 10)
	if !ok {
		log.Fatalf("invalid -g %q", *gStr)
	}
	hv, ok := new(big.Int).SetString(*hStr, 10)
	if !ok {
		log.Fatalf("invalid -h %q", *hStr)
	}

	grp := group.NewZpMult(p)
	base := group.NewScalar(gv)
	target := group.NewScalar(hv)

	var (
		x   *big.Int
		err error
	)
	switch *method {
	case "auto":
		x, err = group.SolveDLThreshold(grp, base, target, big.NewInt(*threshold))
	case "naive":
		x, err = group.DLNaive(grp, base, target)
	case "bsgs":
		x, err = group.BabyStepGiantStep(grp, base, target)
	case "pohlig":
		x, err = group.PohligHellman(grp, base, target)
	default:
		log.Fatalf("unknown method %q", *method)
	}
	if err != nil {
		log.Fatalf("no solution: %v", err)
	}

	fmt.Printf("%v^%v = %v (mod %v)\n", gv, x, hv, p)
}
