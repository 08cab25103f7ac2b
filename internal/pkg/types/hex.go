package types

import (
	"encoding/json"
	"errors"
	"fmt"
	"math/big"
	"strconv"
	"strings"

	"github.com/shopspring/decimal"
)

// ErrInvalidHex is returned when a string is not a 0x-prefixed hexadecimal number.
var ErrInvalidHex = errors.New("invalid hex quantity")

// Hex is a 0x-prefixed hexadecimal quantity as used by JSON-RPC nodes
// (block numbers, timestamps, gas).
type Hex string

// HexFromString validates s and returns it as a Hex.
func HexFromString(s string) (Hex, error) {
	if err := validateHex(s); err != nil {
		return "", err
	}
	return Hex(s), nil
}

// HexFromUint64 encodes n as a lowercase 0x-prefixed quantity.
func HexFromUint64(n uint64) Hex {
	return Hex("0x" + strconv.FormatUint(n, 16))
}

func validateHex(s string) error {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		return fmt.Errorf("%w: %q must start with 0x", ErrInvalidHex, s)
	}

	if _, err := strconv.ParseUint(s[2:], 16, 64); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	return nil
}

// MarshalJSON encodes the Hex as a JSON string.
func (h Hex) MarshalJSON() ([]byte, error) {
	return json.Marshal(string(h))
}

// UnmarshalJSON parses and validates a JSON-encoded hexadecimal string.
func (h *Hex) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return fmt.Errorf("%w: %w", ErrInvalidHex, err)
	}

	if err := validateHex(s); err != nil {
		return err
	}

	*h = Hex(s)
	return nil
}

// Uint64 returns the decoded value, or zero when h is not valid.
func (h Hex) Uint64() uint64 {
	if len(h) < 3 {
		return 0
	}

	v, _ := strconv.ParseUint(string(h)[2:], 16, 64)
	return v
}

// HexToDecimalString converts an arbitrarily large 0x-prefixed quantity to
// its base-10 representation. Empty input and "0x" decode to "0".
func HexToDecimalString(s string) (string, error) {
	if !strings.HasPrefix(s, "0x") && !strings.HasPrefix(s, "0X") {
		if s == "" {
			return "0", nil
		}
		return "", fmt.Errorf("%w: %q must start with 0x", ErrInvalidHex, s)
	}

	digits := s[2:]
	if digits == "" {
		return "0", nil
	}

	v, ok := new(big.Int).SetString(digits, 16)
	if !ok {
		return "", fmt.Errorf("%w: %q", ErrInvalidHex, s)
	}

	return decimal.NewFromBigInt(v, 0).String(), nil
}
