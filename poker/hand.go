package poker

import (
	"errors"
	"fmt"
	"slices"
	"strings"
)

// HandSize is the only hand size the evaluator supports.
const HandSize = 5

var (
	// ErrInvalidHandSize is returned when a hand is built from anything but five items.
	ErrInvalidHandSize = errors.New("invalid hand size")

	// ErrInvalidCardType is returned for hand items that are neither a card nor notation.
	ErrInvalidCardType = errors.New("invalid card type")
)

// HandItem is one input to NewHand: either an already parsed card or
// card notation. The only implementations are Parsed and Notation.
type HandItem interface {
	resolve() (Card, error)
}

// Parsed wraps a card that needs no further parsing.
type Parsed Card

func (p Parsed) resolve() (Card, error) {
	return Card(p), nil
}

// Notation is raw card notation resolved with ParseCard.
type Notation string

func (n Notation) resolve() (Card, error) {
	return ParseCard(string(n))
}

// Hand is an immutable five card hand. The zero value is not a valid hand.
type Hand struct {
	cards   [HandSize]Card
	byValue [HandSize]Card
}

// NewHand builds a hand from exactly five items. Duplicate cards are
// accepted; no deck legality check is made.
func NewHand(items ...HandItem) (Hand, error) {
	if len(items) != HandSize {
		return Hand{}, fmt.Errorf("%w: must be a %d card hand, got %d", ErrInvalidHandSize, HandSize, len(items))
	}

	var h Hand
	for i, item := range items {
		if item == nil {
			return Hand{}, fmt.Errorf("card %d: %w: nil item", i+1, ErrInvalidCardType)
		}
		switch item.(type) {
		case Parsed, Notation:
		default:
			return Hand{}, fmt.Errorf("card %d: %w: %T", i+1, ErrInvalidCardType, item)
		}

		card, err := item.resolve()
		if err != nil {
			return Hand{}, fmt.Errorf("card %d: %w", i+1, err)
		}
		h.cards[i] = card
	}

	h.byValue = h.cards
	slices.SortStableFunc(h.byValue[:], Card.Compare)
	return h, nil
}

// HandOf builds a hand from parsed cards.
func HandOf(cards ...Card) (Hand, error) {
	items := make([]HandItem, len(cards))
	for i, c := range cards {
		items[i] = Parsed(c)
	}
	return NewHand(items...)
}

// ParseHand builds a hand from card notation tokens.
func ParseHand(tokens ...string) (Hand, error) {
	items := make([]HandItem, len(tokens))
	for i, tok := range tokens {
		items[i] = Notation(tok)
	}
	return NewHand(items...)
}

// ParseHandString splits s on whitespace and parses the resulting tokens.
func ParseHandString(s string) (Hand, error) {
	return ParseHand(strings.Fields(s)...)
}

// MustParseHand is like ParseHand but panics on error. Intended for fixtures.
func MustParseHand(tokens ...string) Hand {
	h, err := ParseHand(tokens...)
	if err != nil {
		panic(err)
	}
	return h
}

// Cards returns the cards in the order they were supplied.
func (h Hand) Cards() []Card {
	return slices.Clone(h.cards[:])
}

// CardsByValue returns the cards sorted ascending by rank. Cards of equal
// rank keep their supplied order.
func (h Hand) CardsByValue() []Card {
	return slices.Clone(h.byValue[:])
}

// Compare orders h against other; see Compare.
func (h Hand) Compare(other Hand) int {
	return Compare(h, other)
}

// Beats reports whether h ranks strictly above other.
func (h Hand) Beats(other Hand) bool {
	return Compare(h, other) > 0
}

// String returns the cards in supplied order.
func (h Hand) String() string {
	return FormatCards(h.cards[:])
}
