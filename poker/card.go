package poker

import (
	"errors"
	"fmt"
	"strings"
)

// ErrInvalidCardFormat is returned when card notation cannot be parsed.
var ErrInvalidCardFormat = errors.New("invalid card format")

// Rank is the face value of a card. Aces are always high.
type Rank uint8

const (
	Two Rank = iota + 2
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
	Ace
)

// String returns the single character notation for the rank
func (r Rank) String() string {
	switch {
	case r >= Two && r <= Nine:
		return string(rune('0' + r))
	case r == Ten:
		return "T"
	case r == Jack:
		return "J"
	case r == Queen:
		return "Q"
	case r == King:
		return "K"
	case r == Ace:
		return "A"
	default:
		return "?"
	}
}

// Valid reports whether r lies in [Two, Ace].
func (r Rank) Valid() bool {
	return r >= Two && r <= Ace
}

// Suit is one of the four standard suits.
type Suit uint8

const (
	Clubs Suit = iota
	Diamonds
	Hearts
	Spades
)

// String returns the single character notation for the suit
func (s Suit) String() string {
	switch s {
	case Clubs:
		return "C"
	case Diamonds:
		return "D"
	case Hearts:
		return "H"
	case Spades:
		return "S"
	default:
		return "?"
	}
}

// Symbol returns the unicode glyph for the suit
func (s Suit) Symbol() string {
	switch s {
	case Clubs:
		return "♣"
	case Diamonds:
		return "♦"
	case Hearts:
		return "♥"
	case Spades:
		return "♠"
	default:
		return "?"
	}
}

// IsRed returns true for hearts and diamonds
func (s Suit) IsRed() bool {
	return s == Hearts || s == Diamonds
}

// Card is an immutable playing card.
type Card struct {
	rank Rank
	suit Suit
}

// NewCard creates a card from an explicit rank and suit.
func NewCard(rank Rank, suit Suit) Card {
	return Card{rank: rank, suit: suit}
}

// ParseCard parses notation such as "AS", "td" or "10H". Everything but
// the last character is the rank token, the last character is the suit.
func ParseCard(s string) (Card, error) {
	if len(s) != 2 && len(s) != 3 {
		return Card{}, fmt.Errorf("%w: %q must be 2 or 3 characters", ErrInvalidCardFormat, s)
	}

	rank, ok := rankFromToken(s[:len(s)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown rank %q in %q", ErrInvalidCardFormat, s[:len(s)-1], s)
	}

	suit, ok := suitFromByte(s[len(s)-1])
	if !ok {
		return Card{}, fmt.Errorf("%w: unknown suit %q in %q", ErrInvalidCardFormat, s[len(s)-1:], s)
	}

	return Card{rank: rank, suit: suit}, nil
}

// MustParseCard is like ParseCard but panics on error. Intended for fixtures.
func MustParseCard(s string) Card {
	c, err := ParseCard(s)
	if err != nil {
		panic(err)
	}
	return c
}

func rankFromToken(tok string) (Rank, bool) {
	switch strings.ToUpper(tok) {
	case "2", "3", "4", "5", "6", "7", "8", "9":
		return Rank(tok[0] - '0'), true
	case "T", "10":
		return Ten, true
	case "J":
		return Jack, true
	case "Q":
		return Queen, true
	case "K":
		return King, true
	case "A":
		return Ace, true
	}
	return 0, false
}

func suitFromByte(b byte) (Suit, bool) {
	switch b {
	case 'C', 'c':
		return Clubs, true
	case 'D', 'd':
		return Diamonds, true
	case 'H', 'h':
		return Hearts, true
	case 'S', 's':
		return Spades, true
	}
	return 0, false
}

// Rank returns the card's rank
func (c Card) Rank() Rank {
	return c.rank
}

// Suit returns the card's suit
func (c Card) Suit() Suit {
	return c.suit
}

// Compare orders cards by rank only. Suits never break ties.
func (c Card) Compare(other Card) int {
	switch {
	case c.rank > other.rank:
		return 1
	case c.rank < other.rank:
		return -1
	default:
		return 0
	}
}

// Difference returns the signed rank difference c - other.
func (c Card) Difference(other Card) int {
	return int(c.rank) - int(other.rank)
}

// String returns canonical notation, e.g. "TD"
func (c Card) String() string {
	return c.rank.String() + c.suit.String()
}

// FormatCards joins cards with single spaces.
func FormatCards(cards []Card) string {
	parts := make([]string, len(cards))
	for i, c := range cards {
		parts[i] = c.String()
	}
	return strings.Join(parts, " ")
}
