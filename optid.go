// Package optid reversibly obfuscates non-negative integer IDs so that
// sequential database keys look random when exposed in URLs or tokens.
// The transform is a bijection over [0, MaxID] built from modular
// multiplication by a prime and an XOR mask; no lookup table is needed.
//
// This is obfuscation, not encryption: anyone holding the parameters
// (or willing to recover them) can invert it.
package optid

// MaxID is the largest value the transform accepts. The modulus is
// MaxID+1 = 2^31, so every encoded value also fits in 31 bits.
const MaxID uint64 = 2147483647

// modMask reduces mod 2^31; identical to % (MaxID+1) since the modulus
// is a power of two.
const modMask = MaxID

// Transform encodes and decodes integer IDs using Knuth's
// multiplicative hashing. It is an immutable value; a single Transform
// may be shared freely across goroutines.
type Transform struct {
	prime      uint64
	modInverse uint64
	random     uint64
}

// New returns a Transform built from an odd prime, its multiplicative
// inverse mod 2^31, and an XOR mask. Keep a record of all three so
// encoded IDs can be decoded later, including after restarts — the
// library never stores them.
//
// New verifies the inverse relationship (prime*modInverse ≡ 1 mod 2^31)
// but does not verify that prime is actually prime; supplying a
// composite that happens to satisfy the congruence silently breaks
// bijectivity. That check is the caller's responsibility.
//
// CAUTION: do not divulge prime, modInverse or random.
func New(prime, modInverse, random uint64) (Transform, error) {
	if prime > MaxID {
		return Transform{}, &OutOfRangeError{Param: "prime", Value: prime}
	}
	if modInverse > MaxID {
		return Transform{}, &OutOfRangeError{Param: "modInverse", Value: modInverse}
	}
	if random > MaxID {
		return Transform{}, &OutOfRangeError{Param: "random", Value: random}
	}
	if (prime*modInverse)&modMask != 1 {
		return Transform{}, ErrInvalidModInverse
	}
	return Transform{prime: prime, modInverse: modInverse, random: random}, nil
}

// NewCalculated is New with the inverse derived from prime. It returns
// ErrNoInverse if prime is even (no inverse exists mod 2^31).
func NewCalculated(prime, random uint64) (Transform, error) {
	if prime > MaxID {
		return Transform{}, &OutOfRangeError{Param: "prime", Value: prime}
	}
	if random > MaxID {
		return Transform{}, &OutOfRangeError{Param: "random", Value: random}
	}
	inv, err := ModInverse(prime, MaxID+1)
	if err != nil {
		return Transform{}, err
	}
	return New(prime, inv, random)
}

// Prime returns the multiplier parameter.
func (t Transform) Prime() uint64 { return t.prime }

// ModInverse returns the decoding multiplier parameter.
func (t Transform) ModInverse() uint64 { return t.modInverse }

// Random returns the XOR mask parameter.
func (t Transform) Random() uint64 { return t.random }

// Encode obfuscates id. The result is always in [0, MaxID]. Returns an
// OutOfRangeError if id > MaxID.
func (t Transform) Encode(id uint64) (uint64, error) {
	if id > MaxID {
		return 0, &OutOfRangeError{Param: "id", Value: id}
	}
	// Both operands fit in 31 bits, so the product fits in 62 and
	// cannot overflow uint64 before the reduction.
	return ((id * t.prime) & modMask) ^ t.random, nil
}

// Decode reverses Encode. It only recovers the original value when the
// Transform parameters match the ones used to encode.
func (t Transform) Decode(id uint64) (uint64, error) {
	if id > MaxID {
		return 0, &OutOfRangeError{Param: "id", Value: id}
	}
	return ((id ^ t.random) * t.modInverse) & modMask, nil
}

// Must panics if err is not nil.
func Must(v uint64, err error) uint64 {
	if err != nil {
		panic(err)
	}
	return v
}
