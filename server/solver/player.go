package solver

import (
	"sort"

	"easybj/server/engine"
	"easybj/server/table"
)

// standEV pays the dealer's bust chance and compares made totals. A total
// of 16 or less loses to any finished dealer hand.
func standEV(total int, d Distribution) float64 {
	ev := d[bustOutcome]
	for i, o := range engine.OutcomeCodes()[:bustOutcome] {
		switch {
		case total <= 16 || total < o.Total:
			ev -= d[i]
		case total > o.Total:
			ev += d[i]
		}
	}
	return ev
}

func buildStand(outcomes map[engine.Points]Distribution) *table.Table[float64] {
	t := table.New[float64](engine.DealerCodes(), engine.StandCodes(), "")
	for _, dc := range engine.DealerCodes() {
		d := outcomes[dc.Points()]
		for _, pc := range engine.StandCodes() {
			t.MustSet(pc, dc, standEV(pc.Points().Total, d))
		}
	}
	return t
}

// byHardDesc orders player categories so every hit result comes before the
// category it was drawn from.
func byHardDesc(cats []engine.Category) []engine.Category {
	sort.SliceStable(cats, func(i, j int) bool {
		return cats[i].Points().Hard() > cats[j].Points().Hard()
	})
	return cats
}

// buildDraws fills the hit and double tables together. Hitting continues
// with the better of standing and hitting again; doubling takes one card
// and stands. 21 is always a stand.
func buildDraws(stand *table.Table[float64]) (hit, double *table.Table[float64]) {
	hit = table.New[float64](engine.DealerCodes(), engine.NonSplitCodes(), "")
	double = table.New[float64](engine.DealerCodes(), engine.NonSplitCodes(), "")
	order := byHardDesc(engine.NonSplitCodes())

	for _, dc := range engine.DealerCodes() {
		best := map[engine.Category]float64{
			engine.Twentyone: stand.MustGet(engine.Twentyone, dc),
		}
		for _, pc := range order {
			h, d := 0.0, 0.0
			for _, r := range engine.Ranks {
				w := engine.Weight(r)
				q := pc.Points().Draw(r)
				if q.Busted() {
					h -= w
					d -= 2 * w
					continue
				}
				next := q.Category(engine.Player)
				v, ok := best[next]
				if !ok {
					panic("solver: hit result " + next.String() + " needed before it was built")
				}
				h += w * v
				d += 2 * w * stand.MustGet(next, dc)
			}
			hit.MustSet(pc, dc, h)
			double.MustSet(pc, dc, d)
			best[pc] = max(stand.MustGet(pc, dc), h)
		}
	}
	return hit, double
}
