package solver

import (
	"easybj/server/engine"
	"easybj/server/table"
)

type option struct {
	action engine.Action
	ev     float64
}

// choose returns the first option with the highest EV, so the order of
// opts is the tie-break order. Double and surrender are tagged with the
// better of stand ("s") and hit ("h").
func choose(opts []option, stand, hit float64) (string, float64) {
	best := opts[0]
	for _, o := range opts[1:] {
		if o.ev > best.ev {
			best = o
		}
	}
	tag := string(best.action)
	if best.action == engine.Double || best.action == engine.Surrender {
		if max(stand, hit) == stand {
			tag += "s"
		} else {
			tag += "h"
		}
	}
	return tag, best.ev
}

// base is the category a starting hand plays as when it is not split.
func base(pc engine.Category) engine.Category {
	if pc.Kind == engine.Pair {
		return pc.Points().Category(engine.Player)
	}
	return pc
}

func buildStrategy(res *Result) (*table.Table[float64], *table.Table[string]) {
	optimal := table.New[float64](engine.DealerCodes(), engine.PlayerCodes(), "")
	strategy := table.New[string](engine.DealerCodes(), engine.PlayerCodes(), "")
	for _, pc := range engine.PlayerCodes() {
		b := base(pc)
		for _, dc := range engine.DealerCodes() {
			s, h := res.Stand.MustGet(b, dc), res.Hit.MustGet(b, dc)
			opts := []option{
				{engine.Stand, s},
				{engine.Hit, h},
				{engine.Double, res.Double.MustGet(b, dc)},
			}
			if pc.Kind == engine.Pair {
				opts = append(opts, option{engine.Split, res.Split.MustGet(pc, dc)})
			}
			opts = append(opts, option{engine.Surrender, SurrenderEV})

			action, ev := choose(opts, s, h)
			optimal.MustSet(pc, dc, ev)
			strategy.MustSet(pc, dc, action)
		}
	}
	return optimal, strategy
}

// advantage weighs each initial deal by its payout under optimal play.
func advantage(initial, optimal *table.Table[float64]) float64 {
	total := 0.0
	for _, pc := range initial.Rows() {
		for _, dc := range initial.Cols() {
			p := initial.MustGet(pc, dc)
			switch {
			case pc == engine.Blackjack && dc == engine.Blackjack:
			case pc == engine.Blackjack:
				total += p * NaturalPays
			case dc == engine.Blackjack:
				total -= p
			default:
				total += p * optimal.MustGet(pc, dc)
			}
		}
	}
	return total
}
