package solver

import (
	"errors"
	"fmt"

	"easybj/server/engine"
)

var ErrNotPlayable = errors.New("hand not playable")

// Advice is the recommended play for a concrete deal. Settled deals (a
// natural on either side, or a busted player) carry no action.
type Advice struct {
	Player  engine.Category
	Dealer  engine.Category
	Action  string
	EV      float64
	Settled bool
	Options map[engine.Action]float64
}

// Advise looks up a concrete player hand against the dealer's exposed
// two-card hand. A two-card player hand reads the strategy table; once the
// player has drawn only stand and hit remain.
func (r *Result) Advise(player, dealer engine.Hand) (Advice, error) {
	if len(dealer.Cards) != 2 || len(player.Cards) < 2 {
		return Advice{}, fmt.Errorf("%w: player %s, dealer %s", ErrNotPlayable, player, dealer)
	}
	player.Owner, dealer.Owner = engine.Player, engine.Dealer
	pc, dc := player.Category(), dealer.Category()
	a := Advice{Player: pc, Dealer: dc}

	switch {
	case pc == engine.Blackjack && dc == engine.Blackjack:
		a.Settled = true
		return a, nil
	case pc == engine.Blackjack:
		a.Settled, a.EV = true, NaturalPays
		return a, nil
	case dc == engine.Blackjack:
		a.Settled, a.EV = true, -1
		return a, nil
	case pc == engine.Busted:
		a.Settled, a.EV = true, -1
		return a, nil
	}

	if len(player.Cards) == 2 {
		action, err := r.Strategy.Get(pc, dc)
		if err != nil {
			return Advice{}, fmt.Errorf("%w: %w", ErrNotPlayable, err)
		}
		a.Action = action
		a.EV = r.Optimal.MustGet(pc, dc)
		a.Options = r.options(pc, dc)
		return a, nil
	}

	s, err := r.Stand.Get(pc, dc)
	if err != nil {
		return Advice{}, fmt.Errorf("%w: %w", ErrNotPlayable, err)
	}
	a.Options = map[engine.Action]float64{engine.Stand: s}
	a.Action, a.EV = string(engine.Stand), s
	if pc == engine.Twentyone {
		return a, nil
	}
	h := r.Hit.MustGet(pc, dc)
	a.Options[engine.Hit] = h
	if h > s {
		a.Action, a.EV = string(engine.Hit), h
	}
	return a, nil
}

func (r *Result) options(pc, dc engine.Category) map[engine.Action]float64 {
	b := base(pc)
	out := map[engine.Action]float64{
		engine.Stand:     r.Stand.MustGet(b, dc),
		engine.Hit:       r.Hit.MustGet(b, dc),
		engine.Double:    r.Double.MustGet(b, dc),
		engine.Surrender: SurrenderEV,
	}
	if pc.Kind == engine.Pair {
		out[engine.Split] = r.Split.MustGet(pc, dc)
	}
	return out
}
