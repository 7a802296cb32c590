package optid

import (
	"encoding/json"
	"testing"
)

func TestNullIDValue(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		n := NullID{ID: testID, Valid: true}
		v, err := n.Value()
		if err != nil {
			t.Fatal(err)
		}
		if got, ok := v.(int64); !ok || got != testID.Int64() {
			t.Errorf("Value() = %v, want %d", v, testID.Int64())
		}
	})
	t.Run("Invalid", func(t *testing.T) {
		var n NullID
		v, err := n.Value()
		if err != nil {
			t.Fatal(err)
		}
		if v != nil {
			t.Errorf("Value() = %v, want nil", v)
		}
	})
}

func TestNullIDScan(t *testing.T) {
	t.Run("Nil", func(t *testing.T) {
		n := NullID{ID: testID, Valid: true}
		if err := n.Scan(nil); err != nil {
			t.Fatal(err)
		}
		if n.Valid || n.ID != 0 {
			t.Errorf("Scan(nil): got %+v, want invalid zero", n)
		}
	})
	t.Run("Int64", func(t *testing.T) {
		var n NullID
		if err := n.Scan(testID.Int64()); err != nil {
			t.Fatal(err)
		}
		if !n.Valid || n.ID != testID {
			t.Errorf("Scan(int64): got %+v, want valid %v", n, testID)
		}
	})
	t.Run("OutOfRange", func(t *testing.T) {
		var n NullID
		if err := n.Scan(int64(MaxID) + 1); err == nil {
			t.Error("Scan(MaxID+1): want err != nil")
		}
		if n.Valid {
			t.Error("Scan(MaxID+1): Valid = true, want false")
		}
	})
}

func TestNullIDJSON(t *testing.T) {
	t.Run("Valid", func(t *testing.T) {
		n := NullID{ID: testID, Valid: true}
		data, err := json.Marshal(n)
		if err != nil {
			t.Fatal(err)
		}
		var got NullID
		if err := json.Unmarshal(data, &got); err != nil {
			t.Fatal(err)
		}
		if got != n {
			t.Errorf("JSON roundtrip: got %+v, want %+v", got, n)
		}
	})
	t.Run("Null", func(t *testing.T) {
		n := NullID{ID: testID, Valid: false}
		data, err := json.Marshal(n)
		if err != nil {
			t.Fatal(err)
		}
		if string(data) != "null" {
			t.Errorf("Marshal invalid NullID = %s, want null", data)
		}
		got := NullID{ID: testID, Valid: true}
		if err := json.Unmarshal([]byte("null"), &got); err != nil {
			t.Fatal(err)
		}
		if got.Valid || got.ID != 0 {
			t.Errorf("Unmarshal null: got %+v, want invalid zero", got)
		}
	})
}

func TestNullIDText(t *testing.T) {
	n := NullID{ID: testID, Valid: true}
	b, err := n.MarshalText()
	if err != nil {
		t.Fatal(err)
	}
	var got NullID
	if err := got.UnmarshalText(b); err != nil {
		t.Fatal(err)
	}
	if got != n {
		t.Errorf("text roundtrip: got %+v, want %+v", got, n)
	}

	var empty NullID
	if err := empty.UnmarshalText(nil); err != nil {
		t.Fatal(err)
	}
	if empty.Valid {
		t.Error("UnmarshalText(empty): Valid = true, want false")
	}
}
