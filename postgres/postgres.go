// Package postgres installs the optid transform as in-database SQL
// functions so queries can obfuscate and deobfuscate IDs without a
// round trip through the application.
//
// The installed functions are stateless: transform parameters are
// arguments on every call, never stored in the database. Callers own
// their parameters, in the database exactly as in Go.
package postgres

import (
	"context"
	"database/sql"
	"fmt"

	"github.com/paraglidehq/optid"
)

// Migrate installs the optid SQL functions. It is idempotent and safe
// to run at every startup.
func Migrate(ctx context.Context, db *sql.DB) error {
	_, err := db.ExecContext(ctx, functionsSQL())
	if err != nil {
		return fmt.Errorf("optid: install functions: %w", err)
	}
	return nil
}

// Encode calls optid_encode in the database with t's parameters.
// For a given id it returns exactly what t.Encode returns in Go.
func Encode(ctx context.Context, db *sql.DB, t optid.Transform, id int64) (int64, error) {
	var encoded int64
	err := db.QueryRowContext(ctx, "SELECT optid_encode($1, $2, $3)",
		id, int64(t.Prime()), int64(t.Random())).Scan(&encoded)
	return encoded, err
}

// Decode calls optid_decode in the database with t's parameters.
func Decode(ctx context.Context, db *sql.DB, t optid.Transform, id int64) (int64, error) {
	var decoded int64
	err := db.QueryRowContext(ctx, "SELECT optid_decode($1, $2, $3)",
		id, int64(t.ModInverse()), int64(t.Random())).Scan(&decoded)
	return decoded, err
}

func functionsSQL() string {
	return fmt.Sprintf(`
-- Obfuscate an id: ((id * prime) mod 2^31) xor mask.
-- bigint holds the 62-bit product, so the multiplication cannot overflow.
CREATE OR REPLACE FUNCTION optid_encode(id bigint, prime bigint, mask bigint)
  RETURNS bigint
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT
  AS $$
BEGIN
  IF id < 0 OR id > %d THEN
    RAISE EXCEPTION 'optid: id %% out of range [0, %d]', id;
  END IF;
  RETURN ((id * prime) %% %d) # mask;
END;
$$;

-- Reverse optid_encode: ((id xor mask) * inverse) mod 2^31.
CREATE OR REPLACE FUNCTION optid_decode(id bigint, inverse bigint, mask bigint)
  RETURNS bigint
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT
  AS $$
BEGIN
  IF id < 0 OR id > %d THEN
    RAISE EXCEPTION 'optid: id %% out of range [0, %d]', id;
  END IF;
  RETURN ((id # mask) * inverse) %% %d;
END;
$$;

-- Base58 encoding/decoding for encoded ids
CREATE OR REPLACE FUNCTION b58_to_optid(encoded_id varchar(6))
  RETURNS bigint
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT LEAKPROOF
  AS $$
DECLARE
  alphabet char(58) := '123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz';
  c char(1);
  p int;
  result bigint := 0;
BEGIN
  FOR i IN 1..char_length(encoded_id) LOOP
    c := substring(encoded_id FROM i FOR 1);
    p := position(c IN alphabet);
    IF p = 0 THEN
      RAISE EXCEPTION 'Invalid base58 character: %%', c;
    END IF;
    result := (result * 58) + (p - 1);
  END LOOP;
  IF result > %d THEN
    RAISE EXCEPTION 'optid: base58 value %% overflows 31 bits', result;
  END IF;
  RETURN result;
END;
$$;

CREATE OR REPLACE FUNCTION optid_to_b58(id bigint)
  RETURNS varchar(6)
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT LEAKPROOF
  AS $$
DECLARE
  alphabet char(58) := '123456789ABCDEFGHJKLMNPQRSTUVWXYZabcdefghijkmnopqrstuvwxyz';
  result varchar(6) := '';
  remainder int;
BEGIN
  IF id = 0 THEN
    RETURN '1';
  END IF;
  WHILE id > 0 LOOP
    remainder := (id %% 58)::int;
    result := substring(alphabet FROM remainder + 1 FOR 1) || result;
    id := id / 58;
  END LOOP;
  RETURN result;
END;
$$;

-- Hex encoding/decoding for encoded ids
CREATE OR REPLACE FUNCTION hex_to_optid(encoded_id text)
  RETURNS bigint
  LANGUAGE plpgsql
  IMMUTABLE PARALLEL SAFE STRICT LEAKPROOF
  AS $$
DECLARE
  result bigint;
BEGIN
  result := ('x' || lpad(encoded_id, 16, '0'))::bit(64)::bigint;
  IF result < 0 OR result > %d THEN
    RAISE EXCEPTION 'optid: hex value %% overflows 31 bits', result;
  END IF;
  RETURN result;
END;
$$;

CREATE OR REPLACE FUNCTION optid_to_hex(id bigint)
  RETURNS text
  LANGUAGE sql
  IMMUTABLE PARALLEL SAFE STRICT LEAKPROOF
  AS $$
  SELECT to_hex(id);
$$;
`,
		optid.MaxID,   // encode range check
		optid.MaxID,   // encode error message
		optid.MaxID+1, // encode modulus
		optid.MaxID,   // decode range check
		optid.MaxID,   // decode error message
		optid.MaxID+1, // decode modulus
		optid.MaxID,   // base58 overflow check
		optid.MaxID,   // hex overflow check
	)
}
