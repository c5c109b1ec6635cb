package poker

import (
	"testing"

	"github.com/google/go-cmp/cmp"
	"github.com/stretchr/testify/assert"
)

func hand(s string) Hand {
	h, err := ParseHandString(s)
	if err != nil {
		panic(err)
	}
	return h
}

func TestGroupsOfSize(t *testing.T) {
	t.Parallel()
	h := hand("KD 3C KS 3D 3H")

	all := h.groupsOfSize(0)
	if diff := cmp.Diff([][]Card{
		{MustParseCard("KD"), MustParseCard("KS")},
		{MustParseCard("3C"), MustParseCard("3D"), MustParseCard("3H")},
	}, all, cmp.AllowUnexported(Card{})); diff != "" {
		t.Errorf("groupsOfSize(0) mismatch (-want +got):\n%s", diff)
	}

	assert.Len(t, h.groupsOfSize(2), 1)
	assert.Len(t, h.groupsOfSize(3), 1)
	assert.Empty(t, h.groupsOfSize(4))
}

func TestDetectors(t *testing.T) {
	t.Parallel()
	tests := []struct {
		hand    string
		matches []Category
		cards   map[Category]string
	}{
		{
			hand:    "2C 5D 9H JS KD",
			matches: []Category{HighCard},
			cards:   map[Category]string{HighCard: "KD"},
		},
		{
			hand:    "5H 5C 6S 7S KD",
			matches: []Category{HighCard, OnePair},
			cards:   map[Category]string{OnePair: "5H 5C"},
		},
		{
			hand:    "9C 5D 9H 5S 3D",
			matches: []Category{HighCard, TwoPair},
			cards:   map[Category]string{TwoPair: "9C 9H 5D 5S"},
		},
		{
			hand:    "2D 9C AS AH AC",
			matches: []Category{HighCard, ThreeOfAKind},
			cards:   map[Category]string{ThreeOfAKind: "AS AH AC"},
		},
		{
			hand:    "9D TH JC QS KD",
			matches: []Category{HighCard, Straight},
			cards:   map[Category]string{Straight: "9D TH JC QS KD"},
		},
		{
			hand:    "3D 6D 7D TD QD",
			matches: []Category{HighCard, Flush},
			cards:   map[Category]string{Flush: "3D 6D 7D TD QD"},
		},
		{
			hand:    "2H 2D 4C 4D 4S",
			matches: []Category{HighCard, OnePair, ThreeOfAKind, FullHouse},
			cards:   map[Category]string{FullHouse: "4C 4D 4S 2H 2D"},
		},
		{
			hand:    "7C 7D 7H 7S 2D",
			matches: []Category{HighCard, FourOfAKind},
			cards:   map[Category]string{FourOfAKind: "7C 7D 7H 7S"},
		},
		{
			hand:    "8H 5H 7H 4H 6H",
			matches: []Category{HighCard, Straight, Flush, StraightFlush},
			cards:   map[Category]string{StraightFlush: "4H 5H 6H 7H 8H"},
		},
		{
			hand:    "AS KS QS JS TS",
			matches: []Category{HighCard, Straight, Flush, StraightFlush, RoyalFlush},
			cards:   map[Category]string{RoyalFlush: "AS KS QS JS TS", Straight: "TS JS QS KS AS"},
		},
	}

	for _, tc := range tests {
		t.Run(tc.hand, func(t *testing.T) {
			t.Parallel()
			h := hand(tc.hand)

			var got []Category
			for _, c := range Categories {
				if _, ok := h.Match(c); ok {
					got = append(got, c)
				}
			}
			assert.Equal(t, tc.matches, got)

			for c, want := range tc.cards {
				cards, ok := h.Match(c)
				if assert.True(t, ok, c.String()) {
					assert.Equal(t, want, FormatCards(cards), c.String())
				}
			}
		})
	}
}

func TestStraightBoundaries(t *testing.T) {
	t.Parallel()

	_, ok := hand("TD JH QC KS AD").StraightOf()
	assert.True(t, ok, "ten to ace is a straight")

	_, ok = hand("AD 2H 3C 4S 5D").StraightOf()
	assert.False(t, ok, "aces never play low")

	_, ok = hand("QD KH AC 2S 3D").StraightOf()
	assert.False(t, ok, "no wraparound")

	_, ok = hand("2D 3H 4C 5S 7D").StraightOf()
	assert.False(t, ok, "gap")

	_, ok = hand("2D 3H 4C 4S 5D").StraightOf()
	assert.False(t, ok, "repeated rank")
}

func TestRoyalFlushRequiresAce(t *testing.T) {
	t.Parallel()
	_, ok := hand("9C TC JC QC KC").RoyalFlushOf()
	assert.False(t, ok)

	_, ok = hand("TC JC QC KC AD").RoyalFlushOf()
	assert.False(t, ok, "mixed suits")
}

func TestMatchUnknownCategory(t *testing.T) {
	t.Parallel()
	_, ok := hand("9C TC JC QC KC").Match(Category(42))
	assert.False(t, ok)
}
