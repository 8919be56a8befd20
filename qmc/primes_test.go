package qmc

import (
	"flag"
	"math/rand"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

var update = flag.Bool("update", false, "rewrite golden files")

// exampleRows are the true rows of a four-variable function.
var exampleRows = [][]int{
	{0, 0, 0, 0},
	{0, 0, 1, 0},
	{0, 1, 0, 0},
	{0, 1, 0, 1},
	{0, 1, 1, 0},
	{1, 0, 1, 0},
	{0, 1, 1, 1},
	{1, 0, 1, 1},
}

// randomTerms returns n distinct random minterms of the given width.
func randomTerms(seed int64, width, n int) []Term {
	rng := rand.New(rand.NewSource(seed))
	if max := 1 << uint(width); n > max {
		n = max
	}
	ms := rng.Perm(1 << uint(width))[:n]
	us := make([]uint, n)
	for i, m := range ms {
		us[i] = uint(m)
	}
	ts, err := FromMinterms(width, us)
	if err != nil {
		panic(err)
	}
	return ts
}

// isImplicant reports whether every minterm t covers is in the on-set.
func isImplicant(t Term, on map[uint]bool) bool {
	for _, m := range Minterms(t) {
		if !on[m] {
			return false
		}
	}
	return true
}

// bruteForcePrimes enumerates all 3^width terms and returns the keys of
// those that are implicants and cannot be generalized in any position while
// remaining implicants.
func bruteForcePrimes(width int, ts []Term) map[string]bool {
	on := make(map[uint]bool)
	for _, t := range ts {
		for _, m := range Minterms(t) {
			on[m] = true
		}
	}
	n := 1
	for i := 0; i < width; i++ {
		n *= 3
	}
	primes := make(map[string]bool)
	for code := 0; code < n; code++ {
		bits := make([]Bit, width)
		c := code
		for i := range bits {
			bits[i] = Bit(c % 3)
			c /= 3
		}
		t := Term{Bits: bits}
		if !isImplicant(t, on) {
			continue
		}
		prime := true
		for i, b := range bits {
			if b == DontCare {
				continue
			}
			g := t.Clone()
			g.Bits[i] = DontCare
			if isImplicant(g, on) {
				prime = false
				break
			}
		}
		if prime {
			primes[t.Key()] = true
		}
	}
	return primes
}

func TestPrimeImplicantsGolden(t *testing.T) {
	ts, err := Parse(exampleRows)
	require.NoError(t, err)
	got := strings.Join(Strings(PrimeImplicants(ts)), "\n") + "\n"

	golden := filepath.Join("testdata", "primes.golden")
	if *update {
		require.NoError(t, os.WriteFile(golden, []byte(got), 0644))
	}
	want, err := os.ReadFile(golden)
	require.NoError(t, err)
	assert.Equal(t, string(want), got)
}

func TestPrimeImplicantsTrace(t *testing.T) {
	ts, err := Parse(exampleRows)
	require.NoError(t, err)
	var gens []Generation
	s := Solver{Trace: func(g Generation) { gens = append(gens, g) }}
	s.PrimeImplicants(ts)
	assert.Equal(t, []Generation{
		{Round: 1, Groups: 4, Inputs: 8, Merged: 9, Primes: 0},
		{Round: 2, Groups: 3, Inputs: 9, Merged: 2, Primes: 2},
		{Round: 3, Groups: 2, Inputs: 2, Merged: 0, Primes: 2},
	}, gens)
}

func TestPrimeImplicantsSmall(t *testing.T) {
	tests := []struct {
		name string
		in   []string
		want []string
	}{
		{"adjacent pair", []string{"00", "01"}, []string{"0-"}},
		{"isolated terms", []string{"00", "11"}, []string{"00", "11"}},
		{"tautology", []string{"00", "01", "10", "11"}, []string{"--"}},
		{"single", []string{"101"}, []string{"101"}},
		{"duplicate input", []string{"01", "01"}, []string{"01"}},
		{"width zero", []string{""}, []string{""}},
		{
			"mixed generations",
			[]string{"000", "001", "011", "111", "100"},
			[]string{"00-", "-00", "0-1", "-11"},
		},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			ts := make([]Term, len(tc.in))
			for i, s := range tc.in {
				ts[i] = MustParseTerm(s)
			}
			assert.ElementsMatch(t, tc.want, Strings(PrimeImplicants(ts)))
		})
	}
}

func TestPrimeImplicantsEmpty(t *testing.T) {
	called := false
	s := Solver{Trace: func(Generation) { called = true }}
	assert.Empty(t, s.PrimeImplicants(nil))
	assert.False(t, called)
}

func TestPrimeImplicantsLeavesInputAlone(t *testing.T) {
	ts, err := Parse(exampleRows)
	require.NoError(t, err)
	PrimeImplicants(ts)
	for _, tm := range ts {
		assert.False(t, tm.Consumed)
	}
}

func TestPrimeImplicantsIgnoresConsumedInput(t *testing.T) {
	a := []Term{MustParseTerm("000")}
	b := []Term{MustParseTerm("001")}
	CombineSets(a, b)
	require.True(t, b[0].Consumed)

	// 001 is isolated from 110 and must be harvested despite its marker.
	got := PrimeImplicants([]Term{b[0], MustParseTerm("110")})
	assert.Equal(t, []string{"001", "110"}, Strings(got))
	for _, p := range got {
		assert.False(t, p.Consumed)
	}
	assert.True(t, b[0].Consumed, "input is not modified")
}

func TestPrimeImplicantsMatchesBruteForce(t *testing.T) {
	for width := 1; width <= 5; width++ {
		for seed := int64(0); seed < 8; seed++ {
			n := 1 + int(seed)*(1<<uint(width))/8
			ts := randomTerms(seed, width, n)

			rounds := 0
			s := Solver{Trace: func(Generation) { rounds++ }}
			got := s.PrimeImplicants(ts)

			keys := make(map[string]bool, len(got))
			for _, p := range got {
				assert.False(t, keys[p.Key()], "duplicate prime %s", p)
				keys[p.Key()] = true
			}
			assert.Equal(t, bruteForcePrimes(width, ts), keys, "width %d seed %d", width, seed)
			assert.LessOrEqual(t, rounds, width+1)
			assert.Empty(t, NewChart(got, ts).Uncovered())
		}
	}
}

func TestPrimeImplicantsParallel(t *testing.T) {
	for seed := int64(0); seed < 5; seed++ {
		ts := randomTerms(seed, 7, 60)
		want := Strings(PrimeImplicants(ts))

		var gens []Generation
		s := Solver{Workers: 4, Trace: func(g Generation) { gens = append(gens, g) }}
		assert.Equal(t, want, Strings(s.PrimeImplicants(ts)), "seed %d", seed)
		assert.NotEmpty(t, gens)
	}
}
