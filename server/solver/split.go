package solver

import (
	"easybj/server/engine"
	"easybj/server/table"
)

// buildPostSplit is the value of one hand that can no longer split: the best
// of stand, hit and double, with 21 a forced stand.
func buildPostSplit(stand, hit, double *table.Table[float64]) *table.Table[float64] {
	t := table.New[float64](engine.DealerCodes(), engine.StandCodes(), "")
	for _, dc := range engine.DealerCodes() {
		for _, pc := range engine.StandCodes() {
			v := stand.MustGet(pc, dc)
			if pc != engine.Twentyone {
				v = max(v, hit.MustGet(pc, dc), double.MustGet(pc, dc))
			}
			t.MustSet(pc, dc, v)
		}
	}
	return t
}

// resplitRows are the pairs that may split again. Aces never do.
func resplitRows() []engine.Category {
	pairs := engine.PairCodes()
	return pairs[:len(pairs)-1]
}

// buildResplits returns one table per remaining re-split allowance, 0..limit.
// Level k only reads levels below k.
//
// With no allowance left both hands play out as post-split hands. With
// allowance k, each hand's second card either matches the pair rank, which
// forces another split, or settles the hand. When exactly one hand matches
// it splits again with one less allowance. When both match they divide what
// is left between them.
func buildResplits(post *table.Table[float64], limit int) []*table.Table[float64] {
	levels := make([]*table.Table[float64], 0, limit+1)
	for k := 0; k <= limit; k++ {
		t := table.New[float64](engine.DealerCodes(), resplitRows(), "")
		for _, pc := range resplitRows() {
			for _, dc := range engine.DealerCodes() {
				t.MustSet(pc, dc, resplitEV(pc.Rank, dc, k, post, levels))
			}
		}
		levels = append(levels, t)
	}
	return levels
}

func resplitEV(r engine.Rank, dc engine.Category, k int, post *table.Table[float64], levels []*table.Table[float64]) float64 {
	settled := func(c engine.Rank) float64 { return post.MustGet(after(r, c), dc) }
	pair := engine.PairOf(r)

	if k == 0 {
		s := 0.0
		for _, c := range engine.Ranks {
			s += engine.Weight(c) * settled(c)
		}
		return 2 * s
	}

	wr := engine.Weight(r)
	ev := 0.0
	prev := levels[k-1].MustGet(pair, dc)
	for _, b := range engine.Ranks {
		if b == r {
			continue
		}
		ev += 2 * wr * engine.Weight(b) * (prev + settled(b))
	}

	var both float64
	if k == 1 {
		both = levels[0].MustGet(pair, dc) + settled(r)
	} else {
		both = levels[(k-1)/2].MustGet(pair, dc) + levels[(k-2)/2].MustGet(pair, dc)
	}
	ev += wr * wr * both

	for _, a := range engine.Ranks {
		if a == r {
			continue
		}
		for _, b := range engine.Ranks {
			if b == r {
				continue
			}
			ev += engine.Weight(a) * engine.Weight(b) * (settled(a) + settled(b))
		}
	}
	return ev
}

// buildSplit takes the capped re-split level for every pair except aces.
// Split aces get one card each and stand.
func buildSplit(stand, capped *table.Table[float64]) *table.Table[float64] {
	t := table.New[float64](engine.DealerCodes(), engine.PairCodes(), "")
	for _, dc := range engine.DealerCodes() {
		for _, pc := range resplitRows() {
			t.MustSet(pc, dc, capped.MustGet(pc, dc))
		}
		s := 0.0
		for _, c := range engine.Ranks {
			s += engine.Weight(c) * stand.MustGet(after(engine.Ace, c), dc)
		}
		t.MustSet(engine.PairOf(engine.Ace), dc, 2*s)
	}
	return t
}
