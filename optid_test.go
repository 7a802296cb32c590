package optid

import (
	"errors"
	"math/rand"
	"sync"
	"testing"
)

// Known-good parameter triples (prime, modInverse, random).
var validTriples = [][3]uint64{
	{309779747, 49560203, 57733611},
	{684934207, 1505143743, 846034763},
	{743534599, 1356791223, 1336232185},
	{54661037, 1342843941, 576322863},
	{198194831, 229517423, 459462336},
	{1580030173, 59260789, 1163945558},
}

func mustTransform(t *testing.T, prime, modInverse, random uint64) Transform {
	t.Helper()
	tr, err := New(prime, modInverse, random)
	if err != nil {
		t.Fatalf("New(%d, %d, %d) failed: %v", prime, modInverse, random, err)
	}
	return tr
}

// sampleIDs returns the boundary values 0..c and MaxID-c..MaxID plus h
// random values in between.
func sampleIDs(c, h uint64) []uint64 {
	ids := make([]uint64, 0, 2*c+h+2)
	for v := uint64(0); v <= c; v++ {
		ids = append(ids, v)
	}
	for i := uint64(0); i < h; i++ {
		ids = append(ids, c+1+rand.Uint64()%(MaxID-2*c-1))
	}
	for v := MaxID - c; v <= MaxID; v++ {
		ids = append(ids, v)
	}
	return ids
}

func TestKnownVector(t *testing.T) {
	tr := mustTransform(t, 1580030173, 59260789, 1163945558)

	encoded, err := tr.Encode(15)
	if err != nil {
		t.Fatal(err)
	}
	if encoded != 1103647397 {
		t.Errorf("Encode(15) = %d, want 1103647397", encoded)
	}

	decoded, err := tr.Decode(1103647397)
	if err != nil {
		t.Fatal(err)
	}
	if decoded != 15 {
		t.Errorf("Decode(1103647397) = %d, want 15", decoded)
	}
}

func TestRoundTrip(t *testing.T) {
	transforms := make([]Transform, 0, len(validTriples)+1)
	for _, p := range validTriples {
		transforms = append(transforms, mustTransform(t, p[0], p[1], p[2]))
	}
	calc, err := NewCalculated(198194831, 459462336)
	if err != nil {
		t.Fatalf("NewCalculated failed: %v", err)
	}
	transforms = append(transforms, calc)

	ids := sampleIDs(10, 100)
	for _, tr := range transforms {
		for _, id := range ids {
			encoded, err := tr.Encode(id)
			if err != nil {
				t.Fatalf("Encode(%d) failed: %v", id, err)
			}
			if encoded > MaxID {
				t.Fatalf("Encode(%d) = %d, above MaxID", id, encoded)
			}
			decoded, err := tr.Decode(encoded)
			if err != nil {
				t.Fatalf("Decode(%d) failed: %v", encoded, err)
			}
			if decoded != id {
				t.Errorf("prime=%d: %d -> %d -> %d, want original back",
					tr.Prime(), id, encoded, decoded)
			}
		}
	}
}

func TestRoundTripBothDirections(t *testing.T) {
	// encode(decode(id)) must also return id: the map is a bijection,
	// not merely a left inverse.
	tr := mustTransform(t, 309779747, 49560203, 57733611)
	for _, id := range sampleIDs(5, 50) {
		decoded := Must(tr.Decode(id))
		encoded := Must(tr.Encode(decoded))
		if encoded != id {
			t.Errorf("Encode(Decode(%d)) = %d, want %d", id, encoded, id)
		}
	}
}

func TestRepeatedRoundTripStable(t *testing.T) {
	tr := mustTransform(t, 743534599, 1356791223, 1336232185)
	for _, id := range []uint64{0, 1, 15, 424242, MaxID} {
		v := id
		for i := 0; i < 3; i++ {
			v = Must(tr.Decode(Must(tr.Encode(v))))
			if v != id {
				t.Fatalf("round trip %d drifted: got %d, want %d", i+1, v, id)
			}
		}
	}
}

func TestBijectionSample(t *testing.T) {
	tr := mustTransform(t, 684934207, 1505143743, 846034763)
	seen := make(map[uint64]uint64, 5000)
	for _, id := range sampleIDs(100, 5000) {
		encoded := Must(tr.Encode(id))
		if prev, ok := seen[encoded]; ok && prev != id {
			t.Fatalf("collision: Encode(%d) == Encode(%d) == %d", id, prev, encoded)
		}
		seen[encoded] = id
	}
}

func TestNewRejectsInvalidInverse(t *testing.T) {
	_, err := New(309779747, 49560204, 57733611)
	if !errors.Is(err, ErrInvalidModInverse) {
		t.Errorf("New with bad inverse: got %v, want ErrInvalidModInverse", err)
	}
}

func TestNewRejectsOutOfRange(t *testing.T) {
	cases := []struct {
		name                 string
		prime, inverse, mask uint64
	}{
		{"prime", MaxID + 1, 49560203, 57733611},
		{"modInverse", 309779747, MaxID + 1, 57733611},
		{"random", 309779747, 49560203, MaxID + 1},
	}
	for _, tt := range cases {
		t.Run(tt.name, func(t *testing.T) {
			_, err := New(tt.prime, tt.inverse, tt.mask)
			var oor *OutOfRangeError
			if !errors.As(err, &oor) {
				t.Fatalf("got %v, want OutOfRangeError", err)
			}
			if oor.Param != tt.name {
				t.Errorf("Param = %q, want %q", oor.Param, tt.name)
			}
		})
	}
}

func TestNewCalculated(t *testing.T) {
	t.Run("DerivedInverse", func(t *testing.T) {
		tr, err := NewCalculated(309779747, 57733611)
		if err != nil {
			t.Fatal(err)
		}
		if got := tr.ModInverse(); got != 49560203 {
			t.Errorf("ModInverse() = %d, want 49560203", got)
		}
		if (tr.Prime()*tr.ModInverse())&MaxID != 1 {
			t.Error("derived inverse does not satisfy prime*inverse ≡ 1 mod 2^31")
		}
	})
	t.Run("EvenPrime", func(t *testing.T) {
		_, err := NewCalculated(309779746, 57733611)
		if !errors.Is(err, ErrNoInverse) {
			t.Errorf("got %v, want ErrNoInverse", err)
		}
	})
	t.Run("OutOfRange", func(t *testing.T) {
		_, err := NewCalculated(MaxID+1, 57733611)
		var oor *OutOfRangeError
		if !errors.As(err, &oor) {
			t.Errorf("got %v, want OutOfRangeError", err)
		}
	})
}

func TestEncodeDecodeRejectOutOfRange(t *testing.T) {
	tr := mustTransform(t, 309779747, 49560203, 57733611)

	_, err := tr.Encode(MaxID + 1)
	var oor *OutOfRangeError
	if !errors.As(err, &oor) {
		t.Errorf("Encode(MaxID+1): got %v, want OutOfRangeError", err)
	}

	_, err = tr.Decode(MaxID + 1)
	if !errors.As(err, &oor) {
		t.Errorf("Decode(MaxID+1): got %v, want OutOfRangeError", err)
	}
}

func TestConcurrentUse(t *testing.T) {
	tr := mustTransform(t, 54661037, 1342843941, 576322863)

	var wg sync.WaitGroup
	for g := 0; g < 8; g++ {
		wg.Add(1)
		go func(seed uint64) {
			defer wg.Done()
			for i := uint64(0); i < 1000; i++ {
				id := (seed*1000 + i) % (MaxID + 1)
				decoded, err := tr.Decode(Must(tr.Encode(id)))
				if err != nil {
					t.Errorf("round trip %d failed: %v", id, err)
					return
				}
				if decoded != id {
					t.Errorf("round trip %d: got %d", id, decoded)
					return
				}
			}
		}(uint64(g))
	}
	wg.Wait()
}

func TestMust(t *testing.T) {
	tr := mustTransform(t, 309779747, 49560203, 57733611)
	want, err := tr.Encode(15)
	if err != nil {
		t.Fatal(err)
	}
	if got := Must(tr.Encode(15)); got != want {
		t.Errorf("Must(Encode(15)) = %d, want %d", got, want)
	}

	defer func() {
		if recover() == nil {
			t.Error("Must did not panic on error")
		}
	}()
	Must(tr.Encode(MaxID + 1))
}
