package optid

import (
	"database/sql"
	"database/sql/driver"
	"encoding"
	"encoding/gob"
	"encoding/json"
	"errors"
	"fmt"
	"strconv"

	"github.com/paraglidehq/optid/base58"
	"github.com/paraglidehq/optid/crockford"
)

// Compile-time interface checks for ID
var (
	_ fmt.Stringer               = ID(0)
	_ driver.Valuer              = ID(0)
	_ sql.Scanner                = (*ID)(nil)
	_ encoding.TextMarshaler     = ID(0)
	_ encoding.TextUnmarshaler   = (*ID)(nil)
	_ encoding.BinaryMarshaler   = ID(0)
	_ encoding.BinaryUnmarshaler = (*ID)(nil)
	_ json.Marshaler             = ID(0)
	_ json.Unmarshaler           = (*ID)(nil)
	_ gob.GobEncoder             = ID(0)
	_ gob.GobDecoder             = (*ID)(nil)
)

// ID is an encoded (already obfuscated) identifier in [0, MaxID].
// Zero is a valid encoded value, not a sentinel.
type ID int64

func (id ID) Int64() int64 {
	return int64(id)
}

func (id ID) Uint64() uint64 {
	return uint64(id)
}

// Bytes returns the ID as a 4-byte big-endian slice. Encoded values
// occupy 31 bits, so 4 bytes always suffice.
func (id ID) Bytes() []byte {
	b := make([]byte, 4)
	b[0] = byte(id >> 24)
	b[1] = byte(id >> 16)
	b[2] = byte(id >> 8)
	b[3] = byte(id)
	return b
}

func (id ID) String() string {
	return id.Format(DefaultFormat)
}

func (id ID) Format(f Format) string {
	switch f {
	case FormatDecimal:
		return strconv.FormatInt(int64(id), 10)
	case FormatCrockford:
		return crockford.Encode(uint32(id))
	case FormatHex:
		return strconv.FormatUint(uint64(id), 16)
	default:
		return base58.Encode(uint32(id))
	}
}

// MarshalText implements encoding.TextMarshaler
func (id ID) MarshalText() ([]byte, error) {
	return []byte(id.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler
func (id *ID) UnmarshalText(b []byte) error {
	parsed, err := Parse(string(b))
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// MarshalJSON implements json.Marshaler
func (id ID) MarshalJSON() ([]byte, error) {
	return []byte(`"` + id.String() + `"`), nil
}

// UnmarshalJSON implements json.Unmarshaler
func (id *ID) UnmarshalJSON(b []byte) error {
	// Handle null
	if string(b) == "null" {
		*id = 0
		return nil
	}
	// Handle numeric value
	if len(b) > 0 && b[0] != '"' {
		n, err := strconv.ParseInt(string(b), 10, 64)
		if err != nil {
			return errors.New("optid: invalid JSON value")
		}
		parsed, err := FromInt64(n)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	}
	// Handle quoted string
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return errors.New("optid: invalid JSON string")
	}
	return id.UnmarshalText(b[1 : len(b)-1])
}

// Value implements driver.Valuer for database storage
func (id ID) Value() (driver.Value, error) {
	return int64(id), nil
}

// Scan implements sql.Scanner for database retrieval
func (id *ID) Scan(src interface{}) error {
	if src == nil {
		*id = 0
		return nil
	}
	switch v := src.(type) {
	case ID:
		*id = v
		return nil
	case int64:
		parsed, err := FromInt64(v)
		if err != nil {
			return err
		}
		*id = parsed
		return nil
	case []byte:
		return id.UnmarshalText(v)
	case string:
		return id.UnmarshalText([]byte(v))
	default:
		return fmt.Errorf("optid: cannot scan %T", src)
	}
}

// Parse parses a string into an ID using DefaultFormat.
func Parse(s string) (ID, error) {
	switch DefaultFormat {
	case FormatDecimal:
		return ParseDecimal(s)
	case FormatCrockford:
		return ParseCrockford(s)
	case FormatHex:
		return ParseHex(s)
	default:
		return ParseBase58(s)
	}
}

// ParseBase58 parses a base58-encoded string into an ID.
func ParseBase58(s string) (ID, error) {
	if len(s) == 0 {
		return 0, errors.New("optid: empty string")
	}
	n, err := base58.Decode(s)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

// ParseCrockford parses a Crockford Base32-encoded string into an ID.
func ParseCrockford(s string) (ID, error) {
	if len(s) == 0 {
		return 0, errors.New("optid: empty string")
	}
	n, err := crockford.Decode(s)
	if err != nil {
		return 0, err
	}
	return ID(n), nil
}

// ParseHex parses a hex-encoded string into an ID.
func ParseHex(s string) (ID, error) {
	if len(s) == 0 {
		return 0, errors.New("optid: empty string")
	}
	n, err := strconv.ParseUint(s, 16, 64)
	if err != nil {
		return 0, errors.New("optid: invalid hex string")
	}
	if n > MaxID {
		return 0, &OutOfRangeError{Param: "id", Value: n}
	}
	return ID(n), nil
}

// ParseDecimal parses a decimal string into an ID.
func ParseDecimal(s string) (ID, error) {
	if len(s) == 0 {
		return 0, errors.New("optid: empty string")
	}
	n, err := strconv.ParseInt(s, 10, 64)
	if err != nil {
		return 0, fmt.Errorf("optid: invalid decimal: %w", err)
	}
	return FromInt64(n)
}

// Parse parses a string into the ID receiver.
func (id *ID) Parse(s string) error {
	parsed, err := Parse(s)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// FromString returns an ID parsed from the input string.
// Alias for Parse.
func FromString(s string) (ID, error) {
	return Parse(s)
}

// FromBytes returns an ID from a 4-byte big-endian slice.
func FromBytes(b []byte) (ID, error) {
	if len(b) != 4 {
		return 0, fmt.Errorf("optid: ID must be exactly 4 bytes, got %d", len(b))
	}
	n := uint64(b[0])<<24 | uint64(b[1])<<16 | uint64(b[2])<<8 | uint64(b[3])
	if n > MaxID {
		return 0, &OutOfRangeError{Param: "id", Value: n}
	}
	return ID(n), nil
}

// FromInt64 returns an ID from an int64, rejecting values outside
// [0, MaxID].
func FromInt64(n int64) (ID, error) {
	if n < 0 || uint64(n) > MaxID {
		return 0, &OutOfRangeError{Param: "id", Value: uint64(n)}
	}
	return ID(n), nil
}

// MarshalBinary implements encoding.BinaryMarshaler.
func (id ID) MarshalBinary() ([]byte, error) {
	return id.Bytes(), nil
}

// UnmarshalBinary implements encoding.BinaryUnmarshaler.
func (id *ID) UnmarshalBinary(data []byte) error {
	parsed, err := FromBytes(data)
	if err != nil {
		return err
	}
	*id = parsed
	return nil
}

// GobEncode implements gob.GobEncoder.
func (id ID) GobEncode() ([]byte, error) {
	return id.MarshalBinary()
}

// GobDecode implements gob.GobDecoder.
func (id *ID) GobDecode(data []byte) error {
	return id.UnmarshalBinary(data)
}
