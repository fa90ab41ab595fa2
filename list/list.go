// Package list keeps values in a user-defined order, addressing each one by
// an order key so that inserts and moves never renumber other elements.
package list

import (
	"errors"
	"fmt"
	"sync"

	"github.com/google/btree"

	"github.com/ntauth/orderkey"
)

// ErrNotFound is returned when a key does not address an element of the list.
var ErrNotFound = errors.New("list: key not found")

const defaultDegree = 16

type entry[T any] struct {
	key   orderkey.Key
	value T
}

func lessEntry[T any](a, b entry[T]) bool {
	return a.key.Less(b.key)
}

// List is an ordered collection safe for concurrent use. The zero value is
// not usable; call New.
type List[T any] struct {
	mu      sync.RWMutex
	variant *orderkey.Variant
	jitter  orderkey.Jitter
	width   int
	tree    *btree.BTreeG[entry[T]]
}

// Option configures a List.
type Option func(*config)

type config struct {
	variant *orderkey.Variant
	jitter  orderkey.Jitter
	width   int
	degree  int
}

// WithVariant selects the key variant. Lexicon is the default since its keys
// sort like plain strings in any store.
func WithVariant(v *orderkey.Variant) Option {
	return func(c *config) { c.variant = v }
}

// WithJitter randomizes generated keys by up to width digit steps.
func WithJitter(j orderkey.Jitter, width int) Option {
	return func(c *config) {
		c.jitter = j
		c.width = width
	}
}

// WithDegree sets the degree of the underlying B-tree.
func WithDegree(degree int) Option {
	return func(c *config) { c.degree = degree }
}

// New returns an empty list.
func New[T any](opts ...Option) *List[T] {
	c := config{variant: orderkey.Lexicon, degree: defaultDegree}
	for _, opt := range opts {
		opt(&c)
	}
	if c.variant == nil {
		c.variant = orderkey.Lexicon
	}
	if c.degree < 2 {
		c.degree = defaultDegree
	}
	return &List[T]{
		variant: c.variant,
		jitter:  c.jitter,
		width:   c.width,
		tree:    btree.NewG[entry[T]](c.degree, lessEntry[T]),
	}
}

// Variant returns the variant of the keys the list hands out.
func (l *List[T]) Variant() *orderkey.Variant { return l.variant }

// Len returns the number of elements.
func (l *List[T]) Len() int {
	l.mu.RLock()
	defer l.mu.RUnlock()
	return l.tree.Len()
}

// PushFront inserts v before every element and returns its key.
func (l *List[T]) PushFront(v T) (orderkey.Key, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var hi *orderkey.Key
	if first, ok := l.tree.Min(); ok {
		hi = &first.key
	}
	return l.insert(nil, hi, v)
}

// PushBack inserts v after every element and returns its key.
func (l *List[T]) PushBack(v T) (orderkey.Key, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lo *orderkey.Key
	if last, ok := l.tree.Max(); ok {
		lo = &last.key
	}
	return l.insert(lo, nil, v)
}

// Append pushes vs to the back in order and returns their keys.
func (l *List[T]) Append(vs ...T) ([]orderkey.Key, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	var lo *orderkey.Key
	if last, ok := l.tree.Max(); ok {
		lo = &last.key
	}
	keys, err := l.variant.NKeysBetweenJitter(lo, nil, uint(len(vs)), l.jitter, l.width)
	if err != nil {
		return nil, err
	}
	for i, k := range keys {
		l.tree.ReplaceOrInsert(entry[T]{key: k, value: vs[i]})
	}
	return keys, nil
}

// InsertAfter inserts v right after the element at mark.
func (l *List[T]) InsertAfter(mark orderkey.Key, v T) (orderkey.Key, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lo, hi, err := l.neighbours(mark, true)
	if err != nil {
		return orderkey.Key{}, err
	}
	return l.insert(lo, hi, v)
}

// InsertBefore inserts v right before the element at mark.
func (l *List[T]) InsertBefore(mark orderkey.Key, v T) (orderkey.Key, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	lo, hi, err := l.neighbours(mark, false)
	if err != nil {
		return orderkey.Key{}, err
	}
	return l.insert(lo, hi, v)
}

// MoveAfter re-keys the element at key so it sits right after mark, and
// returns its new key. Moving an element relative to itself is a no-op.
func (l *List[T]) MoveAfter(key, mark orderkey.Key) (orderkey.Key, error) {
	return l.move(key, mark, true)
}

// MoveBefore re-keys the element at key so it sits right before mark, and
// returns its new key.
func (l *List[T]) MoveBefore(key, mark orderkey.Key) (orderkey.Key, error) {
	return l.move(key, mark, false)
}

func (l *List[T]) move(key, mark orderkey.Key, after bool) (orderkey.Key, error) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if err := l.owns(key); err != nil {
		return orderkey.Key{}, err
	}
	if err := l.owns(mark); err != nil {
		return orderkey.Key{}, err
	}
	e, ok := l.tree.Get(entry[T]{key: key})
	if !ok {
		return orderkey.Key{}, fmt.Errorf("%w: %q", ErrNotFound, key)
	}
	if !l.tree.Has(entry[T]{key: mark}) {
		return orderkey.Key{}, fmt.Errorf("%w: %q", ErrNotFound, mark)
	}
	if key.Equal(mark) {
		return e.key, nil
	}

	l.tree.Delete(e)
	lo, hi, err := l.neighbours(mark, after)
	if err == nil {
		var k orderkey.Key
		if k, err = l.insert(lo, hi, e.value); err == nil {
			return k, nil
		}
	}
	l.tree.ReplaceOrInsert(e)
	return orderkey.Key{}, err
}

// Get returns the value at key. Keys of another variant address nothing.
func (l *List[T]) Get(key orderkey.Key) (T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	if l.owns(key) != nil {
		var zero T
		return zero, false
	}
	e, ok := l.tree.Get(entry[T]{key: key})
	return e.value, ok
}

// Remove deletes the element at key and returns its value.
func (l *List[T]) Remove(key orderkey.Key) (T, bool) {
	l.mu.Lock()
	defer l.mu.Unlock()

	if l.owns(key) != nil {
		var zero T
		return zero, false
	}
	e, ok := l.tree.Delete(entry[T]{key: key})
	return e.value, ok
}

// Front returns the first element.
func (l *List[T]) Front() (orderkey.Key, T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.tree.Min()
	return e.key, e.value, ok
}

// Back returns the last element.
func (l *List[T]) Back() (orderkey.Key, T, bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	e, ok := l.tree.Max()
	return e.key, e.value, ok
}

// Ascend calls fn for each element in order until fn returns false. fn must
// not modify the list.
func (l *List[T]) Ascend(fn func(key orderkey.Key, value T) bool) {
	l.mu.RLock()
	defer l.mu.RUnlock()

	l.tree.Ascend(func(e entry[T]) bool {
		return fn(e.key, e.value)
	})
}

// Values returns the values in order.
func (l *List[T]) Values() []T {
	out := make([]T, 0, l.Len())
	l.Ascend(func(_ orderkey.Key, v T) bool {
		out = append(out, v)
		return true
	})
	return out
}

// Keys returns the keys in order.
func (l *List[T]) Keys() []orderkey.Key {
	out := make([]orderkey.Key, 0, l.Len())
	l.Ascend(func(k orderkey.Key, _ T) bool {
		out = append(out, k)
		return true
	})
	return out
}

// neighbours returns the keys bounding the gap after (or before) mark.
// A nil bound means the gap is open on that side. The caller holds l.mu.
func (l *List[T]) neighbours(mark orderkey.Key, after bool) (lo, hi *orderkey.Key, err error) {
	if err := l.owns(mark); err != nil {
		return nil, nil, err
	}
	m, ok := l.tree.Get(entry[T]{key: mark})
	if !ok {
		return nil, nil, fmt.Errorf("%w: %q", ErrNotFound, mark)
	}
	if after {
		lo = &m.key
		l.tree.AscendGreaterOrEqual(m, func(e entry[T]) bool {
			if m.key.Less(e.key) {
				hi = &e.key
				return false
			}
			return true
		})
		return lo, hi, nil
	}
	hi = &m.key
	l.tree.DescendLessOrEqual(m, func(e entry[T]) bool {
		if e.key.Less(m.key) {
			lo = &e.key
			return false
		}
		return true
	})
	return lo, hi, nil
}

// owns reports an error unless k was made by the list's variant. The tree
// compares under that variant, so a foreign key would be misplaced.
func (l *List[T]) owns(k orderkey.Key) error {
	if k.Variant() != l.variant {
		return fmt.Errorf("%w: %s key %q in a %s list", orderkey.ErrVariantMismatch, k.Variant(), k, l.variant)
	}
	return nil
}

// insert generates a key in (lo, hi) and stores v under it. The caller
// holds l.mu.
func (l *List[T]) insert(lo, hi *orderkey.Key, v T) (orderkey.Key, error) {
	k, err := l.variant.KeyBetweenJitter(lo, hi, l.jitter, l.width)
	if err != nil {
		return orderkey.Key{}, err
	}
	l.tree.ReplaceOrInsert(entry[T]{key: k, value: v})
	return k, nil
}
