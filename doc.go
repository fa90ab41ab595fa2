// Package orderkey generates order keys: strings over a fixed 65-symbol
// alphabet that sort totally and admit a new key strictly between any two
// keys, or before or after any one key, without renumbering the rest.
//
// Keys belong to a Variant. Balanced keys pad with the midpoint symbol 'T',
// so "a" and "aT" are the same position and Normalize can trim them.
// Lexicon keys sort exactly like their text, which suits stores that only
// compare strings byte by byte.
//
//	a := orderkey.Lexicon.MustParse("a")
//	b := orderkey.Lexicon.MustParse("b")
//	mid, err := a.Bisect(b) // "a1"
//
// Keys are immutable values and safe to share. Generating keys against the
// same neighbours from several goroutines needs outside coordination; see
// the list package for a collection that does it with a mutex.
package orderkey
