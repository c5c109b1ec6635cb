package poker

// groupsOfSize partitions the hand by rank, keeping groups in order of
// first appearance. n == 0 returns every group unfiltered.
func (h Hand) groupsOfSize(n int) [][]Card {
	var groups [][]Card
	index := make(map[Rank]int, HandSize)
	for _, c := range h.cards {
		i, ok := index[c.rank]
		if !ok {
			i = len(groups)
			index[c.rank] = i
			groups = append(groups, nil)
		}
		groups[i] = append(groups[i], c)
	}

	if n == 0 {
		return groups
	}

	matched := groups[:0]
	for _, g := range groups {
		if len(g) == n {
			matched = append(matched, g)
		}
	}
	return matched
}

// HighCardOf returns the single highest ranked card.
func (h Hand) HighCardOf() ([]Card, bool) {
	return []Card{h.byValue[HandSize-1]}, true
}

// OnePairOf matches exactly one pair.
func (h Hand) OnePairOf() ([]Card, bool) {
	pairs := h.groupsOfSize(2)
	if len(pairs) != 1 {
		return nil, false
	}
	return pairs[0], true
}

// TwoPairOf matches exactly two pairs and returns all four cards.
func (h Hand) TwoPairOf() ([]Card, bool) {
	pairs := h.groupsOfSize(2)
	if len(pairs) != 2 {
		return nil, false
	}
	return append(append([]Card{}, pairs[0]...), pairs[1]...), true
}

// ThreeOfAKindOf matches exactly one set of three.
func (h Hand) ThreeOfAKindOf() ([]Card, bool) {
	trips := h.groupsOfSize(3)
	if len(trips) != 1 {
		return nil, false
	}
	return trips[0], true
}

// StraightOf matches five consecutive ranks. Aces only play high.
func (h Hand) StraightOf() ([]Card, bool) {
	for i := 1; i < HandSize; i++ {
		if h.byValue[i].Difference(h.byValue[i-1]) != 1 {
			return nil, false
		}
	}
	return h.CardsByValue(), true
}

// FlushOf matches five cards sharing the first card's suit.
func (h Hand) FlushOf() ([]Card, bool) {
	suit := h.cards[0].suit
	for _, c := range h.cards[1:] {
		if c.suit != suit {
			return nil, false
		}
	}
	return h.Cards(), true
}

// FullHouseOf matches a set of three plus a pair, returned in that order.
func (h Hand) FullHouseOf() ([]Card, bool) {
	three, ok := h.ThreeOfAKindOf()
	if !ok {
		return nil, false
	}
	pair, ok := h.OnePairOf()
	if !ok {
		return nil, false
	}
	return append(append([]Card{}, three...), pair...), true
}

// FourOfAKindOf matches exactly one set of four.
func (h Hand) FourOfAKindOf() ([]Card, bool) {
	quads := h.groupsOfSize(4)
	if len(quads) != 1 {
		return nil, false
	}
	return quads[0], true
}

// StraightFlushOf matches a straight whose cards also form a flush.
func (h Hand) StraightFlushOf() ([]Card, bool) {
	straight, ok := h.StraightOf()
	if !ok {
		return nil, false
	}
	if _, ok := h.FlushOf(); !ok {
		return nil, false
	}
	return straight, true
}

// RoyalFlushOf matches an ace high straight flush.
func (h Hand) RoyalFlushOf() ([]Card, bool) {
	if _, ok := h.StraightFlushOf(); !ok {
		return nil, false
	}
	if h.byValue[HandSize-1].rank != Ace {
		return nil, false
	}
	return h.Cards(), true
}

type detector struct {
	category Category
	match    func(Hand) ([]Card, bool)
}

// detectors is evaluated in full for every hand; Analyze picks the
// strongest success rather than the first.
var detectors = [...]detector{
	{HighCard, Hand.HighCardOf},
	{OnePair, Hand.OnePairOf},
	{TwoPair, Hand.TwoPairOf},
	{ThreeOfAKind, Hand.ThreeOfAKindOf},
	{Straight, Hand.StraightOf},
	{Flush, Hand.FlushOf},
	{FullHouse, Hand.FullHouseOf},
	{FourOfAKind, Hand.FourOfAKindOf},
	{StraightFlush, Hand.StraightFlushOf},
	{RoyalFlush, Hand.RoyalFlushOf},
}

// Match runs the detector for a single category.
func (h Hand) Match(c Category) ([]Card, bool) {
	for _, d := range detectors {
		if d.category == c {
			return d.match(h)
		}
	}
	return nil, false
}
