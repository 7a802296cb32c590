package optid

// Codec binds a Transform to a Format: raw keys in, opaque strings out.
// Like Transform it is an immutable value and safe for concurrent use.
type Codec struct {
	t      Transform
	format Format
}

// NewCodec returns a Codec that obfuscates with t and renders encoded
// IDs in format f.
func NewCodec(t Transform, f Format) Codec {
	return Codec{t: t, format: f}
}

// EncodeID obfuscates n and returns the encoded ID.
func (c Codec) EncodeID(n uint64) (ID, error) {
	encoded, err := c.t.Encode(n)
	if err != nil {
		return 0, err
	}
	return ID(encoded), nil
}

// DecodeID recovers the raw value behind an encoded ID.
func (c Codec) DecodeID(id ID) (uint64, error) {
	if id < 0 {
		return 0, &OutOfRangeError{Param: "id", Value: uint64(id)}
	}
	return c.t.Decode(uint64(id))
}

// EncodeToString obfuscates n and renders it in the Codec's format.
func (c Codec) EncodeToString(n uint64) (string, error) {
	id, err := c.EncodeID(n)
	if err != nil {
		return "", err
	}
	return id.Format(c.format), nil
}

// DecodeString parses s in the Codec's format and recovers the raw
// value. Only a Codec holding the same Transform parameters as the
// encoder will recover the original.
func (c Codec) DecodeString(s string) (uint64, error) {
	var id ID
	var err error
	switch c.format {
	case FormatDecimal:
		id, err = ParseDecimal(s)
	case FormatCrockford:
		id, err = ParseCrockford(s)
	case FormatHex:
		id, err = ParseHex(s)
	default:
		id, err = ParseBase58(s)
	}
	if err != nil {
		return 0, err
	}
	return c.t.Decode(uint64(id))
}
