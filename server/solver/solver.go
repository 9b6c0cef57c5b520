// Package solver computes the exact Easy Blackjack tables: the initial deal,
// the dealer's outcome distribution, the stand, hit, double and split EVs,
// and the optimal strategy with the player's overall advantage.
//
// Every table is filled once, in dependency order, and only read afterwards.
package solver

import (
	"errors"
	"fmt"
	"math"

	"easybj/server/engine"
	"easybj/server/table"
)

const (
	// MaxResplits is how many more times a split hand may split again. Two
	// re-splits means at most four hands.
	MaxResplits = 2

	SurrenderEV = -0.5
	NaturalPays = 1.5
)

var ErrInconsistent = errors.New("solver tables are inconsistent")

type Result struct {
	Initial  *table.Table[float64]
	Dealer   *table.Table[float64]
	Stand    *table.Table[float64]
	Hit      *table.Table[float64]
	Double   *table.Table[float64]
	Split    *table.Table[float64]
	Optimal  *table.Table[float64]
	Strategy *table.Table[string]

	// PostSplit is the EV of one post-split hand that may not split again.
	PostSplit *table.Table[float64]
	// Resplit[k] is the EV of splitting a pair with k re-splits still allowed.
	Resplit []*table.Table[float64]

	Advantage float64
}

// Calculate builds every table from the fixed rules. It takes no input and
// returns the same tables on every call.
func Calculate() (*Result, error) { return calculate(MaxResplits) }

func calculate(resplits int) (*Result, error) {
	initial, err := buildInitial()
	if err != nil {
		return nil, err
	}
	res := &Result{Initial: initial}

	outcomes := dealerOutcomes()
	res.Dealer = dealerTable(outcomes)
	res.Stand = buildStand(outcomes)
	res.Hit, res.Double = buildDraws(res.Stand)

	res.PostSplit = buildPostSplit(res.Stand, res.Hit, res.Double)
	res.Resplit = buildResplits(res.PostSplit, resplits)
	res.Split = buildSplit(res.Stand, res.Resplit[resplits])

	res.Optimal, res.Strategy = buildStrategy(res)
	res.Advantage = advantage(res.Initial, res.Optimal)
	if err := res.check(); err != nil {
		return nil, err
	}
	return res, nil
}

// check rejects a finished result whose dealer rows are not full
// distributions or whose chart has an empty cell.
func (r *Result) check() error {
	for _, dc := range r.Dealer.Rows() {
		d, err := r.DealerDistribution(dc)
		if err != nil {
			return fmt.Errorf("%w: %w", ErrInconsistent, err)
		}
		if s := d.Sum(); !isClose(s, 1) {
			return fmt.Errorf("%w: dealer %s sums to %.17g", ErrInconsistent, dc, s)
		}
	}
	if !r.Optimal.Complete() || !r.Strategy.Complete() {
		return fmt.Errorf("%w: strategy chart has empty cells", ErrInconsistent)
	}
	return nil
}

// Tables lists the tables by name in build order.
func (r *Result) Tables() []string {
	names := []string{"initial", "dealer", "stand", "hit", "double", "postsplit"}
	for k := range r.Resplit {
		names = append(names, fmt.Sprintf("resplit-%d", k))
	}
	return append(names, "split", "optimal", "strategy")
}

func (r *Result) Grid(name string) (table.Grid, bool) {
	switch name {
	case "initial":
		return r.Initial, true
	case "dealer":
		return r.Dealer, true
	case "stand":
		return r.Stand, true
	case "hit":
		return r.Hit, true
	case "double":
		return r.Double, true
	case "postsplit":
		return r.PostSplit, true
	case "split":
		return r.Split, true
	case "optimal":
		return r.Optimal, true
	case "strategy":
		return r.Strategy, true
	}
	for k, t := range r.Resplit {
		if name == fmt.Sprintf("resplit-%d", k) {
			return t, true
		}
	}
	return nil, false
}

func isClose(a, b float64) bool {
	return math.Abs(a-b) <= 1e-9*math.Max(math.Abs(a), math.Abs(b))
}

// after is the category a split hand of rank r reaches with its second card.
func after(r, c engine.Rank) engine.Category {
	return engine.Points{}.Draw(r).Draw(c).Category(engine.Player)
}
