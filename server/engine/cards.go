package engine

import (
	"fmt"
	"strings"

	poker "github.com/paulhankin/poker"
)

// Card is one card of a French deck, held as the poker library's card.
type Card struct {
	pc poker.Card
}

// Rank folds the card into its blackjack rank. The library counts the ace
// as 1 and J, Q, K as 11..13.
func (c Card) Rank() Rank {
	switch r := c.pc.Rank(); {
	case r == 1:
		return Ace
	case r >= 10:
		return Ten
	default:
		return Rank('0' + int(r))
	}
}

// String writes the card face first with a lower-case suit, as in "Ks".
func (c Card) String() string {
	if !c.pc.Valid() {
		return "??"
	}
	return c.pc.Rank().String() + strings.ToLower(c.pc.Suit().String())
}

// NewDeck returns one unshuffled 52-card deck, clubs to spades and ace to
// king within each suit.
func NewDeck() []Card {
	deck := make([]Card, 0, 52)
	for s := poker.Club; s <= poker.Spade; s++ {
		for r := poker.Rank(1); r <= 13; r++ {
			pc, err := poker.MakeCard(s, r)
			if err != nil {
				panic(err)
			}
			deck = append(deck, Card{pc: pc})
		}
	}
	return deck
}

// ParseCard reads cards written like "As", "Td" or "10h".
func ParseCard(s string) (Card, error) {
	s = strings.TrimSpace(s)
	if len(s) < 2 {
		return Card{}, fmt.Errorf("%w %q", ErrBadCard, s)
	}
	face, suit := strings.ToUpper(s[:len(s)-1]), strings.ToUpper(s[len(s)-1:])
	if face == "10" {
		face = "T"
	}
	// The library names cards suit first: "SA", "HT".
	pc, ok := poker.NameToCard[suit+face]
	if !ok {
		return Card{}, fmt.Errorf("%w %q", ErrBadCard, s)
	}
	return Card{pc: pc}, nil
}

func ParseCards(s string) ([]Card, error) {
	var out []Card
	for _, f := range strings.FieldsFunc(s, func(r rune) bool { return r == ',' || r == ' ' }) {
		c, err := ParseCard(f)
		if err != nil {
			return nil, err
		}
		out = append(out, c)
	}
	return out, nil
}

var weights = deckWeights()

// deckWeights counts each rank's share of a full deck: 1/13 apiece, 4/13
// for the tens.
func deckWeights() map[Rank]float64 {
	deck := NewDeck()
	n := make(map[Rank]int, len(Ranks))
	for _, c := range deck {
		n[c.Rank()]++
	}
	w := make(map[Rank]float64, len(n))
	for r, k := range n {
		w[r] = float64(k) / float64(len(deck))
	}
	return w
}

// Weight is the probability of drawing r from an infinite shoe.
func Weight(r Rank) float64 {
	w, ok := weights[r]
	if !ok {
		panic(badRank(string(r)))
	}
	return w
}
