package optid

// Format selects the textual representation of an encoded ID.
type Format string

const (
	FormatBase58    Format = "base58"
	FormatCrockford Format = "crockford"
	FormatHex       Format = "hex"
	FormatDecimal   Format = "decimal"
)

// DefaultFormat is used by ID.String and Parse. Set once at startup if
// base58 is not wanted.
var DefaultFormat Format = FormatBase58
