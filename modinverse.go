package optid

import "math/big"

// ModInverse returns the unique x in [0, modulus) such that
// (a*x) mod modulus == 1. Returns ErrNoInverse when
// gcd(a, modulus) != 1.
//
// The computation is exact integer arithmetic over the full uint64
// range and is deterministic for a given input pair.
func ModInverse(a, modulus uint64) (uint64, error) {
	if modulus == 0 {
		return 0, ErrNoInverse
	}
	inv := new(big.Int).ModInverse(
		new(big.Int).SetUint64(a),
		new(big.Int).SetUint64(modulus),
	)
	if inv == nil {
		return 0, ErrNoInverse
	}
	return inv.Uint64(), nil
}
