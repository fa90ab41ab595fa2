package orderkey

// Float64Approx converts a key to a float64 in [0, 1], reading its digits as
// a base-65 fraction. Balanced keys include their implicit tail of midpoint
// digits, so the empty Balanced key is exactly 0.5.
//
// Because the range of keys is far larger than float64 can represent
// accurately, this is necessarily approximate. But for many use cases it
// should be, as they say, close enough for jazz.
func (k Key) Float64Approx() float64 {
	rv := float64(0)
	scale := float64(1)
	for _, d := range k.digits {
		scale /= base
		rv += float64(d) * scale
	}
	if pad := k.Variant().pad; pad > 0 {
		// pad/65 + pad/65^2 + ... = pad/64, one digit below the last.
		rv += scale * float64(pad) / MaxDigit
	}
	return rv
}
