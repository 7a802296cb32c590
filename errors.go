package optid

import (
	"errors"
	"fmt"
)

// ErrInvalidModInverse is returned by New when the supplied prime and
// modInverse do not satisfy prime*modInverse ≡ 1 (mod 2^31).
var ErrInvalidModInverse = errors.New("optid: prime and modInverse are not a modular inverse pair mod 2^31")

// ErrNoInverse is returned when no modular inverse exists. Mod 2^31
// that means the value was even; only odd numbers are invertible
// modulo a power of two.
var ErrNoInverse = errors.New("optid: no modular inverse exists")

// OutOfRangeError reports a parameter or input above MaxID.
type OutOfRangeError struct {
	Param string
	Value uint64
}

func (e *OutOfRangeError) Error() string {
	return fmt.Sprintf("optid: %s %d out of range [0, %d]", e.Param, e.Value, MaxID)
}
