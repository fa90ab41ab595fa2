package orderkey

import (
	"math/rand"
	"reflect"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestJitterInterfaces(t *testing.T) {
	// NoJitter always returns 0
	noJitter := NoJitter{}
	for _i := 0; _i < 100; _i++ {
		if noJitter.IntnRange(1, 10) != 0 {
			t.Errorf("NoJitter should always return 0, got %d", noJitter.IntnRange(1, 10))
		}
	}

	// RandJitter returns values in range
	r := rand.New(rand.NewSource(42))
	randJitter := RandJitter{R: r}

	ranges := [][]int{{1, 5}, {10, 20}, {0, 1}, {5, 5}, {7, 3}}
	for _, rng := range ranges {
		lo, hi := rng[0], max(rng[0], rng[1])
		for _i := 0; _i < 100; _i++ {
			val := randJitter.IntnRange(rng[0], rng[1])
			if val < lo || val > hi {
				t.Errorf("RandJitter.IntnRange(%d, %d) returned %d, outside range", rng[0], rng[1], val)
			}
		}
	}
}

func TestBisectJitterBasic(t *testing.T) {
	for _, v := range []*Variant{Balanced, Lexicon} {
		a, b := v.MustParse("a1"), v.MustParse("a3")

		for i := 0; i < 100; i++ {
			jitter := RandJitter{R: rand.New(rand.NewSource(int64(i)))}
			key, err := a.BisectJitter(b, jitter, 100)
			require.NoError(t, err)
			if !a.Less(key) || !key.Less(b) {
				t.Errorf("%s: generated key %s is not between %s and %s", v, key, a, b)
			}
		}
	}
}

func TestBisectJitterNoJitter(t *testing.T) {
	pairs := [][2]string{{"a", "b"}, {"b", "a"}, {"a1", "a5"}, {"azzz", "b+++1"}, {"B", "A"}}

	for _, v := range []*Variant{Balanced, Lexicon} {
		for _, pair := range pairs {
			a, b := v.MustParse(pair[0]), v.MustParse(pair[1])
			exp, err := a.Bisect(b)
			require.NoError(t, err)
			act, err := a.BisectJitter(b, NoJitter{}, 5)
			require.NoError(t, err)
			assert.Equal(t, exp.String(), act.String(), "%s %v", v, pair)
		}
	}
}

func TestBisectJitterInvariants(t *testing.T) {
	r := rand.New(rand.NewSource(99))
	jitter := RandJitter{R: r}

	for _, v := range []*Variant{Balanced, Lexicon} {
		lo, hi := v.MustParse("a"), v.MustParse("b")
		for i := 0; i < 500; i++ {
			mid, err := lo.BisectJitter(hi, jitter, 3)
			require.NoError(t, err)
			require.True(t, lo.Less(mid) && mid.Less(hi), "%s: %s not in (%s, %s)", v, mid, lo, hi)

			if v == Lexicon && strings.HasSuffix(mid.String(), "+") {
				t.Errorf("generated key %s has trailing '+', violating invariant", mid)
			}
			if i%2 == 0 {
				lo = mid
			} else {
				hi = mid
			}
		}
	}
}

func TestBisectJitterConsistency(t *testing.T) {
	a, b := Lexicon.MustParse("a1"), Lexicon.MustParse("a9")

	key1, err := a.BisectJitter(b, RandJitter{R: rand.New(rand.NewSource(42))}, 2)
	require.NoError(t, err)
	key2, err := a.BisectJitter(b, RandJitter{R: rand.New(rand.NewSource(42))}, 2)
	require.NoError(t, err)

	if key1.String() != key2.String() {
		t.Errorf("Keys with same seed should be identical: %s != %s", key1, key2)
	}
}

func TestJitterLimitations(t *testing.T) {
	results := func(a, b string) map[string]bool {
		lo, hi := Lexicon.MustParse(a), Lexicon.MustParse(b)
		out := make(map[string]bool)
		for i := 0; i < 50; i++ {
			jitter := RandJitter{R: rand.New(rand.NewSource(int64(i)))}
			key, err := lo.BisectJitter(hi, jitter, 2)
			require.NoError(t, err)
			require.True(t, lo.Less(key) && key.Less(hi))
			out[key.String()] = true
		}
		return out
	}

	t.Run("No room for jitter", func(t *testing.T) {
		// "a1" to "a3" only has one possible middle digit: "a2"
		res := results("a1", "a3")
		assert.Equal(t, map[string]bool{"a2": true}, res)
	})

	t.Run("Room for jitter", func(t *testing.T) {
		// "a1" to "a5" has three possible middle digits: "a2", "a3", "a4"
		res := results("a1", "a5")
		assert.Greater(t, len(res), 1)
		for k := range res {
			assert.Contains(t, []string{"a2", "a3", "a4"}, k)
		}
	})

	t.Run("Very wide range", func(t *testing.T) {
		// jitter 2 around the centre "a5" reaches "a3" .. "a7"
		res := results("a1", "a9")
		assert.Greater(t, len(res), 1)
		for k := range res {
			assert.Contains(t, []string{"a3", "a4", "a5", "a6", "a7"}, k)
		}
	})
}

func TestNKeysBetweenJitter(t *testing.T) {
	a, b := Lexicon.MustParse("a1"), Lexicon.MustParse("a5")
	n := uint(5)

	allKeys := make([][]string, 0, 10)
	for iteration := 0; iteration < 10; iteration++ {
		jitter := RandJitter{R: rand.New(rand.NewSource(int64(iteration)))}

		keys, err := Lexicon.NKeysBetweenJitter(&a, &b, n, jitter, 100)
		require.NoError(t, err, "iteration %d", iteration)
		require.Len(t, keys, int(n))

		texts := make([]string, len(keys))
		for i, key := range keys {
			if !a.Less(key) || !key.Less(b) {
				t.Errorf("Generated key %s is not between %s and %s on iteration %d", key, a, b, iteration)
			}
			if i > 0 && !keys[i-1].Less(key) {
				t.Errorf("Keys are not in order: %s >= %s on iteration %d", keys[i-1], key, iteration)
			}
			texts[i] = key.String()
		}
		allKeys = append(allKeys, texts)
	}

	hasVariation := false
	for i := 1; i < len(allKeys); i++ {
		if !reflect.DeepEqual(allKeys[0], allKeys[i]) {
			hasVariation = true
			break
		}
	}
	assert.True(t, hasVariation, "all iterations produced %v", allKeys[0])
}

func TestKeyBetweenJitterEdgeCases(t *testing.T) {
	jitter := RandJitter{R: rand.New(rand.NewSource(42))}

	key, err := Balanced.KeyBetweenJitter(nil, nil, jitter, 1)
	require.NoError(t, err)
	assert.Equal(t, "T", key.String())

	a1 := Balanced.MustParse("a1")
	key, err = Balanced.KeyBetweenJitter(&a1, nil, jitter, 1)
	require.NoError(t, err)
	assert.True(t, a1.Less(key))

	a3 := Balanced.MustParse("a3")
	key, err = Balanced.KeyBetweenJitter(nil, &a3, jitter, 1)
	require.NoError(t, err)
	assert.True(t, key.Less(a3))
}
