package orderkey

import (
	"fmt"
	"strconv"
	"strings"
)

// Bucket represents a logical grouping or namespace for lexoranks.
// It's implemented as a uint8, allowing for up to 256 different buckets.
// Buckets are useful for organizing related items or implementing
// multi-tenant systems where different tenants need separate ordering.
type Bucket uint8

// Lexorank represents a sortable rank within a bucket.
// It combines a bucket identifier with an order key so that new items can
// always be inserted between two existing items of the same bucket without
// reordering the rest of the collection.
type Lexorank struct {
	bucket Bucket
	key    Key
}

// NewLexorank creates a new Lexorank with the specified bucket and key.
func NewLexorank(bucket Bucket, key Key) Lexorank {
	return Lexorank{bucket: bucket, key: key}
}

// ParseLexorank parses the "bucket|key" form produced by String, reading the
// key with variant v.
func ParseLexorank(v *Variant, s string) (Lexorank, error) {
	head, tail, ok := strings.Cut(s, "|")
	if !ok {
		return Lexorank{}, fmt.Errorf("orderkey: invalid lexorank %q: missing separator", s)
	}
	b, err := strconv.ParseUint(head, 10, 8)
	if err != nil {
		return Lexorank{}, fmt.Errorf("orderkey: invalid lexorank bucket %q: %w", head, err)
	}
	key, err := v.Parse(tail)
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: Bucket(b), key: key}, nil
}

// String returns a string representation of the Lexorank in the format "bucket|key".
//
// Example: "1|a1" represents bucket 1 with key "a1"
func (rk Lexorank) String() string {
	return fmt.Sprintf("%d|%s", rk.bucket, rk.key)
}

// Bucket returns the bucket identifier for this lexorank.
func (rk Lexorank) Bucket() Bucket {
	return rk.bucket
}

// Key returns the order key for this lexorank.
func (rk Lexorank) Key() Key {
	return rk.key
}

// Compare orders lexoranks by bucket, then by key.
func (rk Lexorank) Compare(other Lexorank) int {
	switch {
	case rk.bucket < other.bucket:
		return -1
	case rk.bucket > other.bucket:
		return 1
	}
	return rk.key.Compare(other.key)
}

// Between returns a lexorank strictly between rk and other in their shared bucket.
func (rk Lexorank) Between(other Lexorank) (Lexorank, error) {
	if rk.bucket != other.bucket {
		return Lexorank{}, fmt.Errorf("%w: %s and %s", ErrBucketMismatch, rk, other)
	}
	key, err := rk.key.Bisect(other.key)
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: rk.bucket, key: key}, nil
}

// After returns a lexorank after rk in the same bucket.
func (rk Lexorank) After() (Lexorank, error) {
	key, err := rk.key.BisectAfter()
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: rk.bucket, key: key}, nil
}

// Before returns a lexorank before rk in the same bucket.
func (rk Lexorank) Before() (Lexorank, error) {
	key, err := rk.key.BisectBefore()
	if err != nil {
		return Lexorank{}, err
	}
	return Lexorank{bucket: rk.bucket, key: key}, nil
}
