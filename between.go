package orderkey

import "fmt"

// KeyBetween returns a key that sorts between a and b.
// Either a or b can be nil. If a is nil it indicates the smallest key,
// if b is nil it indicates the largest key.
// b must be nil or > a.
func (v *Variant) KeyBetween(a, b *Key) (Key, error) {
	return v.keyBetween(a, b, picker{})
}

// KeyBetweenJitter is KeyBetween with randomized digit choices.
func (v *Variant) KeyBetweenJitter(a, b *Key, j Jitter, jitterRange int) (Key, error) {
	return v.keyBetween(a, b, picker{j: j, width: max(jitterRange, 0)})
}

func (v *Variant) keyBetween(a, b *Key, p picker) (Key, error) {
	for _, k := range []*Key{a, b} {
		if k != nil && k.Variant() != v {
			return Key{}, fmt.Errorf("%w: %s key %q used with %s", ErrVariantMismatch, k.Variant(), *k, v)
		}
	}
	switch {
	case a == nil && b == nil:
		return v.Initial(), nil
	case b == nil:
		return a.BisectAfter()
	case a == nil:
		return b.BisectBefore()
	}
	if a.Compare(*b) >= 0 {
		return Key{}, fmt.Errorf("%w: %q >= %q", ErrOutOfOrder, *a, *b)
	}
	return a.bisect(*b, p)
}

// NKeysBetween returns n keys between a and b that sort in ascending order.
// Either a or b can be nil. If a is nil it indicates the smallest key,
// if b is nil it indicates the largest key.
// b must be nil or > a.
func (v *Variant) NKeysBetween(a, b *Key, n uint) ([]Key, error) {
	return v.nKeysBetween(a, b, n, picker{})
}

// NKeysBetweenJitter generates n keys between a and b with randomization.
func (v *Variant) NKeysBetweenJitter(a, b *Key, n uint, j Jitter, jitterRange int) ([]Key, error) {
	return v.nKeysBetween(a, b, n, picker{j: j, width: max(jitterRange, 0)})
}

func (v *Variant) nKeysBetween(a, b *Key, n uint, p picker) ([]Key, error) {
	if n == 0 {
		return []Key{}, nil
	}
	c, err := v.keyBetween(a, b, p)
	if err != nil {
		return nil, err
	}
	if n == 1 {
		return []Key{c}, nil
	}
	if b == nil {
		result := make([]Key, 0, n)
		result = append(result, c)
		for i := 0; i < int(n)-1; i++ {
			c, err = v.keyBetween(&c, nil, p)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		return result, nil
	}
	if a == nil {
		result := make([]Key, 0, n)
		result = append(result, c)
		for i := 0; i < int(n)-1; i++ {
			c, err = v.keyBetween(nil, &c, p)
			if err != nil {
				return nil, err
			}
			result = append(result, c)
		}
		reverse(result)
		return result, nil
	}
	mid := n / 2
	result := make([]Key, 0, n)
	left, err := v.nKeysBetween(a, &c, mid, p)
	if err != nil {
		return nil, err
	}
	result = append(result, left...)
	result = append(result, c)
	right, err := v.nKeysBetween(&c, b, n-mid-1, p)
	if err != nil {
		return nil, err
	}
	result = append(result, right...)
	return result, nil
}

func reverse(values []Key) {
	for i := 0; i < len(values)/2; i++ {
		j := len(values) - i - 1
		values[i], values[j] = values[j], values[i]
	}
}
