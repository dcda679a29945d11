// Package randsrc draws uniform random indices from the operating system's
// CSPRNG. There is no seeding and no fallback to math/rand: key material must
// not be predictable from a leaked seed or the clock.
package randsrc

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// Pick returns a uniformly distributed int in [0, n). rand.Int performs
// rejection sampling internally, so the result carries no modulo bias.
func Pick(n int) (int, error) {
	if n <= 0 {
		return 0, fmt.Errorf("randsrc: n must be positive, got %d", n)
	}
	v, err := rand.Int(rand.Reader, big.NewInt(int64(n)))
	if err != nil {
		return 0, fmt.Errorf("randsrc: %w", err)
	}
	return int(v.Int64()), nil
}
