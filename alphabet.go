package orderkey

import (
	"fmt"
	"strings"
)

// Alphabet lists every symbol a key may contain, in digit order.
// 65 symbols so that [0, 64] bisects at 32, [0, 32] at 16, and so on.
const Alphabet = "+-/0123456789ABCDEFGHIJKLMNOPQRSTUVWXYZabcdefghijklmnopqrstuvwxyz"

const (
	// MaxDigit is the largest digit value, the symbol 'z'.
	MaxDigit = 64
	// MidDigit is the alphabet midpoint, the symbol 'T'.
	MidDigit = MaxDigit / 2

	base = MaxDigit + 1
)

// digitOf maps a byte to its digit, or -1 when the byte is not a symbol.
var digitOf = func() (t [256]int8) {
	for i := range t {
		t[i] = -1
	}
	for i := 0; i < len(Alphabet); i++ {
		t[Alphabet[i]] = int8(i)
	}
	return t
}()

func encode(s string) ([]uint8, error) {
	digits := make([]uint8, 0, len(s))
	for i, r := range s {
		if r >= 0x80 || digitOf[r] < 0 {
			return nil, &InvalidSymbolError{Symbol: r, Offset: i}
		}
		digits = append(digits, uint8(digitOf[r]))
	}
	return digits, nil
}

func decode(digits []uint8) string {
	var sb strings.Builder
	sb.Grow(len(digits))
	for _, d := range digits {
		sb.WriteByte(Alphabet[d])
	}
	return sb.String()
}

// InvalidSymbolError reports a character outside the Alphabet.
type InvalidSymbolError struct {
	Symbol rune
	Offset int
}

func (e *InvalidSymbolError) Error() string {
	return fmt.Sprintf("%s: %q at offset %d", ErrInvalidSymbol, e.Symbol, e.Offset)
}

func (e *InvalidSymbolError) Unwrap() error { return ErrInvalidSymbol }
