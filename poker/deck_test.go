package poker

import (
	"testing"

	"github.com/lox/pokerhands/internal/randutil"
)

func TestDeck(t *testing.T) {
	t.Parallel()
	deck := NewDeck(randutil.New(42))

	cards1 := deck.Deal(2)
	if len(cards1) != 2 {
		t.Errorf("Expected 2 cards, got %d", len(cards1))
	}

	cards2 := deck.Deal(3)
	if len(cards2) != 3 {
		t.Errorf("Expected 3 cards, got %d", len(cards2))
	}

	for _, c1 := range cards1 {
		for _, c2 := range cards2 {
			if c1 == c2 {
				t.Error("Dealt same card twice")
			}
		}
	}

	remaining := deck.Deal(47)
	if len(remaining) != 47 {
		t.Errorf("Expected 47 remaining cards, got %d", len(remaining))
	}

	if extra := deck.Deal(1); extra != nil {
		t.Error("Should not be able to deal from empty deck")
	}
	if _, ok := deck.DealHand(); ok {
		t.Error("Should not be able to deal a hand from empty deck")
	}

	deck.Shuffle()
	if deck.CardsRemaining() != DeckSize {
		t.Errorf("Expected full deck after shuffle, got %d", deck.CardsRemaining())
	}
}

func TestDeckIsDeterministic(t *testing.T) {
	t.Parallel()
	a := NewDeck(randutil.New(7)).Deal(DeckSize)
	b := NewDeck(randutil.New(7)).Deal(DeckSize)

	seen := make(map[Card]bool)
	for i := range a {
		if a[i] != b[i] {
			t.Fatalf("Card %d differs: %s vs %s", i, a[i], b[i])
		}
		seen[a[i]] = true
	}
	if len(seen) != DeckSize {
		t.Errorf("Expected %d distinct cards, got %d", DeckSize, len(seen))
	}
}
