package orderkey

import "fmt"

// change records how the first differing digits of a bisection relate:
// the other key's digit is one above (increased) or one below (decreased)
// self's, so no digit fits between them at that depth.
type change int8

const (
	unchanged change = iota
	increased
	decreased
)

func (c change) String() string {
	switch c {
	case increased:
		return "increased"
	case decreased:
		return "decreased"
	}
	return "unchanged"
}

// picker chooses a digit strictly inside an open interval. Without a Jitter
// it returns the centre.
type picker struct {
	j     Jitter
	width int
}

// pick returns a value in (lo, hi); hi-lo must be at least 2. up rounds an
// odd-sized interval's centre towards hi.
func (p picker) pick(lo, hi int, up bool) int {
	center := (lo + hi) / 2
	if up {
		center = (lo + hi + 1) / 2
	}
	if p.j == nil {
		return center
	}
	l := max(lo+1, center-p.j.IntnRange(0, p.width))
	h := min(hi-1, center+p.j.IntnRange(0, p.width))
	if h > l {
		return p.j.IntnRange(l, h)
	}
	return l
}

// Bisect returns a key strictly between k and other, in either order.
func (k Key) Bisect(other Key) (Key, error) {
	return k.bisect(other, picker{})
}

func (k Key) bisect(other Key, p picker) (Key, error) {
	if err := k.sameVariant(other); err != nil {
		return Key{}, err
	}
	v := k.Variant()
	digits, err := v.bisect(k.digits, other.digits, p)
	if err != nil {
		return Key{}, fmt.Errorf("bisect %q and %q: %w", k, other, err)
	}
	return Key{v: v, digits: digits}, nil
}

// BisectAfter returns a key strictly greater than k.
func (k Key) BisectAfter() (Key, error) {
	v := k.Variant()
	digits, err := v.checked(v.after(k.digits))
	if err != nil {
		return Key{}, fmt.Errorf("bisect after %q: %w", k, err)
	}
	return Key{v: v, digits: digits}, nil
}

// BisectBefore returns a key strictly smaller than k. Lexicon keys made only
// of '+' digits, and the empty Lexicon key, have nothing below them.
func (k Key) BisectBefore() (Key, error) {
	v := k.Variant()
	digits, err := v.before(k.digits)
	if err == nil {
		digits, err = v.checked(digits)
	}
	if err != nil {
		return Key{}, fmt.Errorf("bisect before %q: %w", k, err)
	}
	return Key{v: v, digits: digits}, nil
}

func (v *Variant) bisect(self, other []uint8, p picker) ([]uint8, error) {
	fill := v.fill()
	at := func(digits []uint8, i int) int {
		if i < len(digits) {
			return int(digits[i])
		}
		return fill
	}

	n := max(len(self), len(other))
	mid := make([]uint8, 0, n+1)
	dir := unchanged

	for i := 0; i < n; i++ {
		cur, edge := at(self, i), at(other, i)

		if dir == unchanged {
			switch delta := edge - cur; {
			case delta == 0:
				mid = append(mid, uint8(cur))
			case delta == 1:
				dir = increased
				mid = append(mid, uint8(cur))
			case delta == -1:
				dir = decreased
				mid = append(mid, uint8(cur))
			default:
				mid = append(mid, uint8(p.pick(min(cur, edge), max(cur, edge), false)))
				return v.finish(mid)
			}
			continue
		}

		// Past the divergence the result keeps self's digit there, and the
		// room left is the open interval (lo, base+hi) measured in digits
		// of the lower key's prefix.
		lo, hi := cur, edge
		if dir == decreased {
			lo, hi = edge, cur
		}
		reach := MaxDigit - lo
		if hi == reach && reach == 0 {
			// lo is 'z' and hi is '+': adjacent again, look one digit deeper.
			if dir == increased {
				mid = append(mid, MaxDigit)
			} else {
				mid = append(mid, 0)
			}
			continue
		}

		m := p.pick(lo, base+hi, dir == decreased)
		var err error
		switch {
		case dir == increased && m <= MaxDigit:
			mid = append(mid, uint8(m))
		case dir == increased:
			mid = append(mid, uint8(m-base))
			err = promote(mid, i, increased)
		case m >= base:
			mid = append(mid, uint8(m-base))
		default:
			mid = append(mid, uint8(m))
			err = promote(mid, i, decreased)
		}
		if err != nil {
			return nil, err
		}
		return v.finish(mid)
	}

	switch dir {
	case increased:
		mid = append(mid, v.lowSpacer)
	case decreased:
		mid = append(mid, v.highSpacer)
		if int(v.highSpacer) >= fill {
			// The spacer cannot go below the upper key under its own
			// prefix, so extend the lower key instead.
			if err := promote(mid, len(mid)-1, decreased); err != nil {
				return nil, err
			}
		}
	default:
		return nil, ErrNoRoomBetweenEqualKeys
	}
	return v.finish(mid)
}

// promote carries a wrapped digit at origin into the digits before it,
// walking left while they overflow.
func promote(digits []uint8, origin int, dir change) error {
	for pos := origin - 1; pos >= 0; pos-- {
		switch {
		case dir == increased && digits[pos] == MaxDigit:
			digits[pos] = 0
		case dir == increased:
			digits[pos]++
			return nil
		case digits[pos] == 0:
			digits[pos] = MaxDigit
		default:
			digits[pos]--
			return nil
		}
	}
	return fmt.Errorf("%w: %s carry from digit %d of %q", ErrCarryExhausted, dir, origin, decode(digits[:origin]))
}

func (v *Variant) after(digits []uint8) []uint8 {
	out := make([]uint8, 0, len(digits)+1)
	for _, d := range digits {
		if d == MaxDigit {
			out = append(out, d)
			continue
		}
		// step by two to leave a gap for a later insert
		return append(out, uint8(min(int(d)+2, MaxDigit)))
	}
	return append(out, MidDigit+2)
}

func (v *Variant) before(digits []uint8) ([]uint8, error) {
	out := make([]uint8, 0, len(digits)+1)
	for _, d := range digits {
		if d == 0 {
			out = append(out, d)
			continue
		}
		t := uint8(max(int(d)-2, 0))
		out = append(out, t)
		if t == 0 && v.trims() {
			out = append(out, v.highSpacer)
		}
		return out, nil
	}
	if !v.roomBelow() {
		return nil, ErrCannotDecreaseFurther
	}
	return append(out, MidDigit-2), nil
}

func (v *Variant) finish(digits []uint8) ([]uint8, error) {
	if v.trims() {
		n := len(digits)
		for n > 0 && digits[n-1] == 0 {
			n--
		}
		digits = digits[:n]
	}
	return v.checked(digits)
}

func (v *Variant) checked(digits []uint8) ([]uint8, error) {
	for i, d := range digits {
		if int(d) > MaxDigit {
			return nil, fmt.Errorf("%w: %d at position %d", ErrDigitOutOfRange, d, i)
		}
	}
	return digits, nil
}
