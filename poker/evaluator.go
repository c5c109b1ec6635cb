package poker

import (
	"cmp"
	"errors"
	"fmt"
	"slices"
)

// ErrNoCategoryMatched means no detector accepted a hand. A constructed
// Hand always matches HighCard, so seeing this is a bug.
var ErrNoCategoryMatched = errors.New("no category matched")

// Analysis is the strongest category a hand satisfies.
type Analysis struct {
	Category  Category
	Cards     []Card // cards returned by the winning detector
	Signature []Rank
}

// Analyze evaluates every detector and keeps the strongest success.
func Analyze(h Hand) (Analysis, error) {
	best := Analysis{}
	found := false
	for _, d := range detectors {
		cards, ok := d.match(h)
		if !ok {
			continue
		}
		if !found || d.category > best.Category {
			best.Category = d.category
			best.Cards = cards
			found = true
		}
	}
	if !found {
		return Analysis{}, fmt.Errorf("%w: %s", ErrNoCategoryMatched, h)
	}

	best.Signature = Signature(h)
	return best, nil
}

// MustAnalyze is like Analyze but panics on the invariant violation.
func MustAnalyze(h Hand) Analysis {
	a, err := Analyze(h)
	if err != nil {
		panic(err)
	}
	return a
}

// Signature returns each distinct rank of the hand ordered by group size
// (largest first) and then by rank (highest first). Comparing signatures
// position by position resolves ties within a category: AAA KK gives
// [A K], 99 55 3 gives [9 5 3].
func Signature(h Hand) []Rank {
	groups := h.groupsOfSize(0)
	slices.SortFunc(groups, func(a, b []Card) int {
		if c := cmp.Compare(len(b), len(a)); c != 0 {
			return c
		}
		return cmp.Compare(b[0].rank, a[0].rank)
	})

	sig := make([]Rank, len(groups))
	for i, g := range groups {
		sig[i] = g[0].rank
	}
	return sig
}

// Compare returns 1 if a beats b, -1 if b beats a and 0 if they tie.
func Compare(a, b Hand) int {
	aa, ab := MustAnalyze(a), MustAnalyze(b)
	return compareAnalyses(a, aa, b, ab)
}

// Beats reports whether a ranks strictly above b.
func Beats(a, b Hand) bool {
	return Compare(a, b) > 0
}

func compareAnalyses(a Hand, aa Analysis, b Hand, ab Analysis) int {
	if c := cmp.Compare(aa.Category, ab.Category); c != 0 {
		return c
	}

	for i := 0; i < len(aa.Signature) && i < len(ab.Signature); i++ {
		if c := cmp.Compare(aa.Signature[i], ab.Signature[i]); c != 0 {
			return c
		}
	}

	// Signatures only match when both hands hold the same ranks, so this
	// pass settles on 0 for well formed hands. The highest differing card
	// decides otherwise.
	result := 0
	for i := range HandSize {
		if d := a.byValue[i].Difference(b.byValue[i]); d != 0 {
			result = cmp.Compare(d, 0)
		}
	}
	return result
}

// Result is a full comparison of two hands.
type Result struct {
	Winner int // 1, -1 or 0
	Hand1  Analysis
	Hand2  Analysis
}

// Evaluate analyzes both hands and compares them.
func Evaluate(a, b Hand) (Result, error) {
	aa, err := Analyze(a)
	if err != nil {
		return Result{}, fmt.Errorf("hand 1: %w", err)
	}
	ab, err := Analyze(b)
	if err != nil {
		return Result{}, fmt.Errorf("hand 2: %w", err)
	}
	return Result{
		Winner: compareAnalyses(a, aa, b, ab),
		Hand1:  aa,
		Hand2:  ab,
	}, nil
}
