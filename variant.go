package orderkey

// Variant holds the fill and equality policy shared by every key it parses.
//
// Balanced pads missing digits with MidDigit, so trailing 'T's carry no
// meaning and "a" equals "aT". Lexicon pads with a value below every digit,
// so keys sort exactly like their text and "a" sorts before "aT".
type Variant struct {
	name string

	// pad is the digit assumed past the end of a key when comparing.
	pad int

	// Spacers appended when a bisection runs out of digits: low sits above
	// the lower key, high below the upper one.
	lowSpacer  uint8
	highSpacer uint8
}

var (
	// Balanced treats missing digits as MidDigit.
	Balanced = &Variant{name: "balanced", pad: MidDigit, lowSpacer: MidDigit + 16, highSpacer: MidDigit - 16}

	// Lexicon treats missing digits as lower than any digit.
	Lexicon = &Variant{name: "lexicon", pad: -1, lowSpacer: 4, highSpacer: MaxDigit - 4}
)

// VariantByName returns Balanced or Lexicon by name.
func VariantByName(name string) (*Variant, bool) {
	switch name {
	case Balanced.name:
		return Balanced, true
	case Lexicon.name:
		return Lexicon, true
	}
	return nil, false
}

func (v *Variant) String() string { return v.name }

// fill is the digit a missing position reads as while bisecting. Below the
// alphabet there is nothing to average with, so Lexicon bisects as if keys
// were padded with the minimum digit.
func (v *Variant) fill() int {
	return max(v.pad, 0)
}

// trims reports whether trailing minimum digits are dropped from results.
// A Lexicon key ending in '+' leaves no room directly below it.
func (v *Variant) trims() bool {
	return v.pad < 0
}

// roomBelow reports whether a key of minimum digits still has keys below it.
func (v *Variant) roomBelow() bool {
	return v.pad > 0
}

func (v *Variant) padded(digits []uint8, i int) int {
	if i < len(digits) {
		return int(digits[i])
	}
	return v.pad
}

func (v *Variant) compare(a, b []uint8) int {
	for i := 0; i < max(len(a), len(b)); i++ {
		x, y := v.padded(a, i), v.padded(b, i)
		if x < y {
			return -1
		}
		if x > y {
			return 1
		}
	}
	return 0
}

// Parse builds a key of this variant from text.
func (v *Variant) Parse(s string) (Key, error) {
	digits, err := encode(s)
	if err != nil {
		return Key{}, err
	}
	return Key{v: v, digits: digits}, nil
}

// MustParse is like Parse but panics on invalid input.
func (v *Variant) MustParse(s string) Key {
	k, err := v.Parse(s)
	if err != nil {
		panic(err)
	}
	return k
}

// Initial returns the key handed out for an empty collection.
func (v *Variant) Initial() Key {
	return Key{v: v, digits: []uint8{MidDigit}}
}
