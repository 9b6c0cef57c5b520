package engine

// Label sets for the table axes. Each call returns a fresh slice.

func HardCodes() []Category { return hardRange(4, 20) }

// SoftCodes are AA..A9, soft 12 through soft 20.
func SoftCodes() []Category {
	out := make([]Category, 0, 9)
	for n := 12; n <= 20; n++ {
		out = append(out, SoftTotal(n))
	}
	return out
}

// PairCodes are the splittable starting hands, 22..TT then AA.
func PairCodes() []Category {
	out := make([]Category, 0, len(Ranks))
	for _, r := range Ranks[1:] {
		out = append(out, PairOf(r))
	}
	return append(out, PairOf(Ace))
}

func StandCodes() []Category {
	out := append(HardCodes(), Twentyone)
	return append(out, SoftCodes()...)
}

func NonSplitCodes() []Category { return append(HardCodes(), SoftCodes()...) }

// DealerCodes are the dealer's exposed two-card hands that still play on or
// have stood: hard 4..20 and soft AA..A6.
func DealerCodes() []Category { return append(HardCodes(), SoftCodes()[:6]...) }

func PlayerCodes() []Category {
	out := append(HardCodes(), PairCodes()...)
	return append(out, SoftCodes()[1:]...)
}

// InitialCodes are every category a two-card player hand can land in. Hard 4
// is always 22 and hard 20 always TT, so both only appear as pairs.
func InitialCodes() []Category {
	out := append(hardRange(5, 19), PairCodes()...)
	out = append(out, SoftCodes()[1:]...)
	return append(out, Blackjack)
}

// OutcomeCodes are the dealer's final results.
func OutcomeCodes() []Category { return append(hardRange(17, 21), Busted) }

func hardRange(lo, hi int) []Category {
	out := make([]Category, 0, hi-lo+1)
	for n := lo; n <= hi; n++ {
		out = append(out, HardTotal(n))
	}
	return out
}
