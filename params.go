package optid

import (
	"crypto/rand"
	"fmt"
	"math/big"
)

// millerRabinRounds makes ProbablyPrime's false-positive odds
// negligible for 31-bit candidates.
const millerRabinRounds = 20

// GenerateParams picks a random valid parameter triple: a 31-bit
// probable prime, its inverse mod 2^31, and a random mask. Record all
// three — the same triple must be supplied to decode, including after
// restarts.
func GenerateParams() (prime, modInverse, random uint64, err error) {
	for {
		prime, err = randBelow(MaxID + 1)
		if err != nil {
			return 0, 0, 0, err
		}
		prime |= 1 // even numbers have no inverse mod 2^31
		if big.NewInt(int64(prime)).ProbablyPrime(millerRabinRounds) {
			break
		}
	}
	modInverse, err = ModInverse(prime, MaxID+1)
	if err != nil {
		return 0, 0, 0, err
	}
	random, err = randBelow(MaxID + 1)
	if err != nil {
		return 0, 0, 0, err
	}
	return prime, modInverse, random, nil
}

// NewRandom returns a Transform built from GenerateParams. Read the
// parameters back via Prime, ModInverse and Random and store them, or
// the encoded IDs cannot be decoded by a later process.
func NewRandom() (Transform, error) {
	prime, modInverse, random, err := GenerateParams()
	if err != nil {
		return Transform{}, err
	}
	return New(prime, modInverse, random)
}

func randBelow(n uint64) (uint64, error) {
	v, err := rand.Int(rand.Reader, new(big.Int).SetUint64(n))
	if err != nil {
		return 0, fmt.Errorf("optid: read random source: %w", err)
	}
	return v.Uint64(), nil
}
