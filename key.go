package orderkey

import "fmt"

// Key is an immutable position that sorts among other keys of its Variant.
// The zero Key is the empty Balanced key.
type Key struct {
	v      *Variant
	digits []uint8
}

// Variant returns the policy the key compares under.
func (k Key) Variant() *Variant {
	if k.v == nil {
		return Balanced
	}
	return k.v
}

// String renders the key as text.
func (k Key) String() string {
	return decode(k.digits)
}

// Len returns the number of digits.
func (k Key) Len() int { return len(k.digits) }

// IsEmpty reports whether the key has no digits.
func (k Key) IsEmpty() bool { return len(k.digits) == 0 }

// Digits returns a copy of the key's digits.
func (k Key) Digits() []int {
	out := make([]int, len(k.digits))
	for i, d := range k.digits {
		out[i] = int(d)
	}
	return out
}

// Compare returns -1, 0 or +1 depending on whether k sorts before, equal to
// or after other, padding the shorter key per k's variant. Both keys are read
// under k's variant, so comparing keys of different variants is not
// symmetric; Bisect and KeyBetween reject such pairs with ErrVariantMismatch.
func (k Key) Compare(other Key) int {
	return k.Variant().compare(k.digits, other.digits)
}

// Equal reports whether k and other compare equal.
func (k Key) Equal(other Key) bool { return k.Compare(other) == 0 }

// Less reports whether k sorts before other.
func (k Key) Less(other Key) bool { return k.Compare(other) < 0 }

// Normalize drops trailing midpoint digits from a Balanced key. The result
// is equal to k. Lexicon keys are returned unchanged.
func (k Key) Normalize() Key {
	v := k.Variant()
	if v.pad < 0 {
		return k
	}
	n := len(k.digits)
	for n > 0 && int(k.digits[n-1]) == v.pad {
		n--
	}
	return Key{v: v, digits: k.digits[:n:n]}
}

// MarshalText implements encoding.TextMarshaler.
func (k Key) MarshalText() ([]byte, error) {
	return []byte(k.String()), nil
}

// UnmarshalText implements encoding.TextUnmarshaler. The key keeps its
// variant if it already has one, otherwise it becomes Balanced.
func (k *Key) UnmarshalText(text []byte) error {
	parsed, err := k.Variant().Parse(string(text))
	if err != nil {
		return err
	}
	*k = parsed
	return nil
}

// GoString makes %#v output readable in test failures.
func (k Key) GoString() string {
	return fmt.Sprintf("orderkey.%s.MustParse(%q)", capitalize(k.Variant().name), k.String())
}

func capitalize(s string) string {
	if s == "" {
		return s
	}
	return string(s[0]-'a'+'A') + s[1:]
}

func (k Key) sameVariant(other Key) error {
	if k.Variant() != other.Variant() {
		return fmt.Errorf("%w: %s key %q and %s key %q",
			ErrVariantMismatch, k.Variant(), k, other.Variant(), other)
	}
	return nil
}
