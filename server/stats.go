package main

import (
	"easybj/server/engine"
	"easybj/server/solver"
)

// settledTag marks deals decided by a natural before anyone plays.
const settledTag = "BJ"

// ActionTally is the share of initial deals by recommended play.
type ActionTally struct {
	Stand     float64
	Hit       float64
	Double    float64
	Split     float64
	Surrender float64
	Settled   float64
}

func (t ActionTally) Total() float64 {
	return t.Stand + t.Hit + t.Double + t.Split + t.Surrender + t.Settled
}

// actionMix weighs every strategy tag by the probability of being dealt
// into its cell.
func actionMix(res *solver.Result) map[string]float64 {
	mix := map[string]float64{}
	for _, pc := range res.Initial.Rows() {
		for _, dc := range res.Initial.Cols() {
			p := res.Initial.MustGet(pc, dc)
			if pc == engine.Blackjack || dc == engine.Blackjack {
				mix[settledTag] += p
				continue
			}
			mix[res.Strategy.MustGet(pc, dc)] += p
		}
	}
	return mix
}

func tally(mix map[string]float64) ActionTally {
	var t ActionTally
	for tag, p := range mix {
		if tag == settledTag {
			t.Settled += p
			continue
		}
		switch engine.Action(tag[:1]) {
		case engine.Stand:
			t.Stand += p
		case engine.Hit:
			t.Hit += p
		case engine.Double:
			t.Double += p
		case engine.Split:
			t.Split += p
		case engine.Surrender:
			t.Surrender += p
		}
	}
	return t
}
