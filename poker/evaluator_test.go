package poker

import (
	"testing"

	"github.com/lox/pokerhands/internal/randutil"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestEulerScenarios(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		hand1 string
		hand2 string
		beats bool
	}{
		{"pair of fives loses to pair of eights", "5H 5C 6S 7S KD", "2C 3S 8S 8D TD", false},
		{"ace high beats queen high", "5D 8C 9S JS AC", "2C 5C 7D 8S QH", true},
		{"three aces lose to a flush", "2D 9C AS AH AC", "3D 6D 7D TD QD", false},
		{"queens with nine kicker beat queens with seven", "4D 6S 9H QH QC", "3D 6D 7H QD QS", true},
		{"fours full beat threes full", "2H 2D 4C 4D 4S", "3C 3D 3S 9S 9D", true},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h1, h2 := hand(tc.hand1), hand(tc.hand2)
			assert.Equal(t, tc.beats, Beats(h1, h2))
			assert.Equal(t, tc.beats, h1.Beats(h2))
			assert.Equal(t, !tc.beats, Beats(h2, h1), "every scenario has a strict winner")
		})
	}
}

func TestAnalyzeCategories(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		want Category
	}{
		{"2C 5D 9H JS KD", HighCard},
		{"5H 5C 6S 7S KD", OnePair},
		{"9C 5D 9H 5S 3D", TwoPair},
		{"2D 9C AS AH AC", ThreeOfAKind},
		{"9D TH JC QS KD", Straight},
		{"3D 6D 7D TD QD", Flush},
		{"2H 2D 4C 4D 4S", FullHouse},
		{"7C 7D 7H 7S 2D", FourOfAKind},
		{"8H 5H 7H 4H 6H", StraightFlush},
		{"AS KS QS JS TS", RoyalFlush},
		{"AD 2D 3D 4D 5D", Flush},
	}

	for _, tc := range tests {
		t.Run(tc.hand, func(t *testing.T) {
			t.Parallel()
			h := hand(tc.hand)
			a, err := Analyze(h)
			require.NoError(t, err)
			assert.Equal(t, tc.want, a.Category)

			// The chosen category's detector agrees on its own.
			cards, ok := h.Match(a.Category)
			require.True(t, ok)
			assert.Equal(t, cards, a.Cards)
		})
	}
}

func TestSignature(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand string
		want []Rank
	}{
		{"AS AH KD AC KS", []Rank{Ace, King}},
		{"3C 9D 5H 9S 5D", []Rank{Nine, Five, Three}},
		{"4D 6S 9H QH QC", []Rank{Queen, Nine, Six, Four}},
		{"2H 2D 4C 4D 4S", []Rank{Four, Two}},
		{"7C 7D 7H 7S 2D", []Rank{Seven, Two}},
		{"5D 8C 9S JS AC", []Rank{Ace, Jack, Nine, Eight, Five}},
	}

	for _, tc := range tests {
		assert.Equal(t, tc.want, Signature(hand(tc.hand)), tc.hand)
	}
}

func TestCategoryDominatesCardValues(t *testing.T) {
	t.Parallel()
	quads := hand("2C 2D 2H 2S 3D")
	flush := hand("AH KH QH JH 9H")
	assert.Equal(t, 1, Compare(quads, flush))
	assert.Equal(t, -1, Compare(flush, quads))
}

func TestTieBreaks(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name  string
		hand1 string
		hand2 string
		want  int
	}{
		{"higher top pair in two pair", "KC KD 2H 2S 3D", "QC QD JH JS AD", 1},
		{"second pair decides two pair", "KC KD 5H 5S 2D", "KH KS 4H 4S AD", 1},
		{"kicker decides two pair", "KC KD 5H 5S 3D", "KH KS 5C 5D 2D", 1},
		{"higher straight", "5C 6D 7H 8S 9D", "TC 6H 7C 8D 9S", -1},
		{"flush compared card by card", "AH QH 9H 5H 3H", "AD QD 9D 5D 2D", 1},
		{"full house by triple before pair", "3C 3D 3S AS AD", "4C 4D 4S 2S 2D", -1},
		{"quads kicker", "9C 9D 9H 9S KD", "9C 9D 9H 9S QD", 1},
		{"identical ranks tie", "AH KD 9C 5S 3H", "AS KH 9D 5C 3D", 0},
		{"royal flushes tie", "AS KS QS JS TS", "AH KH QH JH TH", 0},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			t.Parallel()
			h1, h2 := hand(tc.hand1), hand(tc.hand2)
			assert.Equal(t, tc.want, Compare(h1, h2))
			assert.Equal(t, -tc.want, Compare(h2, h1))
		})
	}
}

func TestCompareIsTotalOrder(t *testing.T) {
	t.Parallel()
	rng := randutil.New(54)

	var hands []Hand
	for range 12 {
		d := NewDeck(rng)
		for {
			h, ok := d.DealHand()
			if !ok {
				break
			}
			hands = append(hands, h)
		}
	}

	for i, a := range hands {
		assert.Equal(t, 0, Compare(a, a), "reflexive: %s", a)
		for j := i + 1; j < len(hands); j++ {
			b := hands[j]
			assert.Equal(t, Compare(a, b), -Compare(b, a), "antisymmetric: %s vs %s", a, b)
		}
	}

	// Transitivity over a sample of triples.
	for i := 0; i+2 < len(hands); i += 3 {
		a, b, c := hands[i], hands[i+1], hands[i+2]
		if Compare(a, b) >= 0 && Compare(b, c) >= 0 {
			assert.GreaterOrEqual(t, Compare(a, c), 0, "%s >= %s >= %s", a, b, c)
		}
		if Compare(a, b) <= 0 && Compare(b, c) <= 0 {
			assert.LessOrEqual(t, Compare(a, c), 0, "%s <= %s <= %s", a, b, c)
		}
	}
}

func TestEvaluate(t *testing.T) {
	t.Parallel()
	res, err := Evaluate(hand("2H 2D 4C 4D 4S"), hand("3C 3D 3S 9S 9D"))
	require.NoError(t, err)

	assert.Equal(t, 1, res.Winner)
	assert.Equal(t, FullHouse, res.Hand1.Category)
	assert.Equal(t, FullHouse, res.Hand2.Category)
	assert.Equal(t, []Rank{Three, Nine}, res.Hand2.Signature)
}

func BenchmarkCompare(b *testing.B) {
	h1, h2 := hand("4D 6S 9H QH QC"), hand("3D 6D 7H QD QS")
	b.ResetTimer()
	for i := 0; i < b.N; i++ {
		_ = Compare(h1, h2)
	}
}
