package engine

import (
	"errors"
	"fmt"
	"strconv"
)

var (
	ErrBadRank = errors.New("bad rank")
	ErrBadCard = errors.New("bad card")
)

// Rank is a blackjack rank. Ten stands for every ten-valued face (T,J,Q,K).
type Rank byte

const (
	Ace   Rank = 'A'
	Two   Rank = '2'
	Three Rank = '3'
	Four  Rank = '4'
	Five  Rank = '5'
	Six   Rank = '6'
	Seven Rank = '7'
	Eight Rank = '8'
	Nine  Rank = '9'
	Ten   Rank = 'T'
)

// Ranks lists the distinct ranks in dealing order.
var Ranks = []Rank{Ace, Two, Three, Four, Five, Six, Seven, Eight, Nine, Ten}

func (r Rank) Valid() bool {
	return r == Ace || r == Ten || (r >= Two && r <= Nine)
}

// Points is the rank's face value with the ace counted high.
func (r Rank) Points() int {
	switch {
	case r == Ace:
		return 11
	case r == Ten:
		return 10
	case r >= Two && r <= Nine:
		return int(r - '0')
	}
	panic(badRank(string(r)))
}

func (r Rank) String() string { return string(r) }

func ParseRank(s string) (Rank, error) {
	if len(s) != 1 || !Rank(s[0]).Valid() {
		return 0, badRank(s)
	}
	return Rank(s[0]), nil
}

type Owner uint8

const (
	Player Owner = iota
	Dealer
)

func (o Owner) String() string {
	if o == Dealer {
		return "dealer"
	}
	return "player"
}

type Kind uint8

const (
	Hard Kind = iota + 1
	Soft
	Pair
	Natural
	Bust
)

// Category is the strategically relevant summary of a hand. Soft(12) and
// Pair(Ace) both print "AA" but are different keys.
type Category struct {
	Kind  Kind
	Total int
	Rank  Rank
}

var (
	Blackjack = Category{Kind: Natural, Total: 21}
	Busted    = Category{Kind: Bust}
	Twentyone = HardTotal(21)
)

func HardTotal(n int) Category { return Category{Kind: Hard, Total: n} }
func SoftTotal(n int) Category { return Category{Kind: Soft, Total: n} }
func PairOf(r Rank) Category {
	return Category{Kind: Pair, Total: Points{}.Draw(r).Draw(r).Total, Rank: r}
}

func (c Category) String() string {
	switch c.Kind {
	case Hard:
		return strconv.Itoa(c.Total)
	case Soft:
		if c.Total == 12 {
			return "AA"
		}
		return "A" + strconv.Itoa(c.Total-11)
	case Pair:
		return string([]byte{byte(c.Rank), byte(c.Rank)})
	case Natural:
		return "BJ"
	case Bust:
		return "0"
	}
	return "?"
}

// Points returns the running count the category stands for. A pair counts
// as its two cards.
func (c Category) Points() Points {
	switch c.Kind {
	case Soft:
		return Points{Total: c.Total, Soft: true}
	case Pair:
		return Points{}.Draw(c.Rank).Draw(c.Rank)
	case Natural:
		return Points{Total: 21, Soft: true}
	case Bust:
		return Points{Total: 22}
	}
	return Points{Total: c.Total}
}

// Action is a player decision as written in the strategy chart.
type Action string

const (
	Stand     Action = "S"
	Hit       Action = "H"
	Double    Action = "D"
	Split     Action = "P"
	Surrender Action = "R"
)

func badRank(s string) error { return fmt.Errorf("%w %q", ErrBadRank, s) }
