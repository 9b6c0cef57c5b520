package solver

import (
	"fmt"

	"easybj/server/engine"
	"easybj/server/table"
)

// Distribution is the dealer's chance of finishing on 17, 18, 19, 20, 21 or
// busting, in engine.OutcomeCodes order.
type Distribution [6]float64

const bustOutcome = 5

func (d Distribution) Sum() float64 {
	s := 0.0
	for _, v := range d {
		s += v
	}
	return s
}

// Plan lists every live count by descending hard count. A draw always
// raises the hard count, so each state only needs states earlier in the plan.
func plan() []engine.Points {
	var out []engine.Points
	for h := 21; h >= 2; h-- {
		out = append(out, engine.Points{Total: h})
		if h+10 <= 21 {
			out = append(out, engine.Points{Total: h + 10, Soft: true})
		}
	}
	return out
}

// The dealer hits soft 17.
func dealerStands(p engine.Points) bool {
	return p.Total >= 18 || (p.Total == 17 && !p.Soft)
}

func dealerOutcomes() map[engine.Points]Distribution {
	out := make(map[engine.Points]Distribution)
	for _, p := range plan() {
		var d Distribution
		if dealerStands(p) {
			d[p.Total-17] = 1
			out[p] = d
			continue
		}
		for _, r := range engine.Ranks {
			w := engine.Weight(r)
			q := p.Draw(r)
			if q.Busted() {
				d[bustOutcome] += w
				continue
			}
			next, ok := out[q]
			if !ok {
				panic(fmt.Sprintf("solver: dealer count %+v needed before it was built", q))
			}
			for i := range d {
				d[i] += w * next[i]
			}
		}
		out[p] = d
	}
	return out
}

func dealerTable(outcomes map[engine.Points]Distribution) *table.Table[float64] {
	t := table.New[float64](engine.OutcomeCodes(), engine.DealerCodes(), "%")
	for _, dc := range engine.DealerCodes() {
		d := outcomes[dc.Points()]
		for i, o := range engine.OutcomeCodes() {
			t.MustSet(dc, o, d[i])
		}
	}
	return t
}

// DealerDistribution reads one dealer row back out of the dealer table.
func (r *Result) DealerDistribution(dealer engine.Category) (Distribution, error) {
	var d Distribution
	for i, o := range engine.OutcomeCodes() {
		v, err := r.Dealer.Get(dealer, o)
		if err != nil {
			return d, err
		}
		d[i] = v
	}
	return d, nil
}
