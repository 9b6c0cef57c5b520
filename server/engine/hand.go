package engine

// Points is a running blackjack count. Soft means one ace is still counted
// as eleven; at most one ace can be.
type Points struct {
	Total int
	Soft  bool
}

// Draw adds one card. An ace goes in high when that does not bust; a soft
// count that busts drops its high ace back to one.
func (p Points) Draw(r Rank) Points {
	switch {
	case r == Ace && p.Total+11 <= 21:
		return Points{Total: p.Total + 11, Soft: true}
	case r == Ace:
		p.Total++
	default:
		p.Total += r.Points()
	}
	if p.Total > 21 && p.Soft {
		p.Total -= 10
		p.Soft = false
	}
	return p
}

// Hard is the count with every ace taken as one. It grows with every draw.
func (p Points) Hard() int {
	if p.Soft {
		return p.Total - 10
	}
	return p.Total
}

func (p Points) Busted() bool { return p.Total > 21 }

// Category classifies a count reached by drawing; pairs and naturals need the
// actual cards and are handled by Hand. The dealer's soft 18+ is a made hand
// and classifies hard.
func (p Points) Category(o Owner) Category {
	switch {
	case p.Total > 21:
		return Busted
	case p.Total == 21:
		return Twentyone
	case p.Soft && (o == Player || p.Total < 18):
		return SoftTotal(p.Total)
	}
	return HardTotal(p.Total)
}

type Hand struct {
	Owner Owner
	Cards []Rank
}

func NewHand(o Owner, cards ...Rank) Hand {
	return Hand{Owner: o, Cards: append([]Rank(nil), cards...)}
}

func (h Hand) Points() Points {
	var p Points
	for _, c := range h.Cards {
		p = p.Draw(c)
	}
	return p
}

// Probability of being dealt exactly these cards in this order.
func (h Hand) Probability() float64 {
	p := 1.0
	for _, c := range h.Cards {
		p *= Weight(c)
	}
	return p
}

func (h Hand) Category() Category {
	if len(h.Cards) == 2 {
		if h.Owner == Player && h.Cards[0] == h.Cards[1] {
			return PairOf(h.Cards[0])
		}
		if h.Points().Total == 21 {
			return Blackjack
		}
	}
	return h.Points().Category(h.Owner)
}

func (h Hand) String() string {
	b := make([]byte, len(h.Cards))
	for i, c := range h.Cards {
		b[i] = byte(c)
	}
	return string(b)
}
