package poker

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

type bogusItem struct{ HandItem }

func TestNewHandMixedItems(t *testing.T) {
	t.Parallel()
	h, err := NewHand(
		Parsed(NewCard(Ace, Spades)),
		Notation("KD"),
		Notation("2c"),
		Parsed(NewCard(Ten, Hearts)),
		Notation("10S"),
	)
	require.NoError(t, err)

	assert.Equal(t, "AS KD 2C TH TS", h.String())
	assert.Equal(t, "2C TH TS KD AS", FormatCards(h.CardsByValue()))
}

func TestNewHandErrors(t *testing.T) {
	t.Parallel()

	t.Run("too few cards", func(t *testing.T) {
		_, err := ParseHand("AS", "KD", "2C", "TH")
		assert.ErrorIs(t, err, ErrInvalidHandSize)
	})

	t.Run("too many cards", func(t *testing.T) {
		_, err := ParseHand("AS", "KD", "2C", "TH", "9S", "8S")
		assert.ErrorIs(t, err, ErrInvalidHandSize)
	})

	t.Run("malformed notation", func(t *testing.T) {
		_, err := ParseHand("AS", "KD", "ZC", "TH", "9S")
		assert.ErrorIs(t, err, ErrInvalidCardFormat)
		assert.Contains(t, err.Error(), "card 3")
	})

	t.Run("nil item", func(t *testing.T) {
		_, err := NewHand(Notation("AS"), nil, Notation("2C"), Notation("TH"), Notation("9S"))
		assert.ErrorIs(t, err, ErrInvalidCardType)
	})

	t.Run("foreign item type", func(t *testing.T) {
		_, err := NewHand(Notation("AS"), bogusItem{}, Notation("2C"), Notation("TH"), Notation("9S"))
		assert.ErrorIs(t, err, ErrInvalidCardType)
	})
}

func TestHandAcceptsDuplicates(t *testing.T) {
	t.Parallel()
	h, err := ParseHand("AS", "AS", "AS", "AS", "AS")
	require.NoError(t, err)

	a := MustAnalyze(h)
	assert.Equal(t, Flush, a.Category, "five identical cards share a suit but form no size-4 group")
}

func TestCardsByValueIsStable(t *testing.T) {
	t.Parallel()
	h := MustParseHand("9H", "3C", "9S", "3D", "9C")
	assert.Equal(t, "3C 3D 9H 9S 9C", FormatCards(h.CardsByValue()))
}

func TestHandAccessorsReturnCopies(t *testing.T) {
	t.Parallel()
	h := MustParseHand("9H", "3C", "9S", "3D", "9C")

	cards := h.Cards()
	cards[0] = NewCard(Ace, Spades)
	byValue := h.CardsByValue()
	byValue[0] = NewCard(Ace, Spades)

	assert.Equal(t, "9H 3C 9S 3D 9C", h.String())
	assert.Equal(t, "3C 3D 9H 9S 9C", FormatCards(h.CardsByValue()))
}

func TestParseHandString(t *testing.T) {
	t.Parallel()
	h, err := ParseHandString("  5H 5C\t6S 7S KD ")
	require.NoError(t, err)
	assert.Equal(t, "5H 5C 6S 7S KD", h.String())
}
