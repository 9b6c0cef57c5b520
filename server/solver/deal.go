package solver

import (
	"errors"
	"fmt"

	"easybj/server/engine"
	"easybj/server/table"
)

// InitialCols is the initial-deal column axis: the dealer's exposed hands
// plus a dealer natural.
func InitialCols() []engine.Category {
	return append(engine.DealerCodes(), engine.Blackjack)
}

// buildInitial enumerates every ordered two-card deal for both sides and
// folds the probabilities into their category cells.
func buildInitial() (*table.Table[float64], error) {
	t := table.New[float64](InitialCols(), engine.InitialCodes(), "%")
	for _, i := range engine.Ranks {
		for _, j := range engine.Ranks {
			dealer := engine.NewHand(engine.Dealer, i, j)
			for _, x := range engine.Ranks {
				for _, y := range engine.Ranks {
					player := engine.NewHand(engine.Player, x, y)
					p := dealer.Probability() * player.Probability()
					if err := accumulate(t, player.Category(), dealer.Category(), p); err != nil {
						return nil, fmt.Errorf("deal %s vs %s: %w", player, dealer, err)
					}
				}
			}
		}
	}
	if err := verify(t); err != nil {
		return nil, err
	}
	return t, nil
}

func accumulate(t *table.Table[float64], row, col engine.Category, p float64) error {
	v, err := t.Get(row, col)
	switch {
	case errors.Is(err, table.ErrUnset):
		v = 0
	case err != nil:
		return err
	}
	return t.Set(row, col, v+p)
}

func verify(t *table.Table[float64]) error {
	total := 0.0
	for _, row := range t.Rows() {
		for _, col := range t.Cols() {
			v, err := t.Get(row, col)
			if err != nil {
				return fmt.Errorf("%w: %w", ErrInconsistent, err)
			}
			total += v
		}
	}
	if !isClose(total, 1) {
		return fmt.Errorf("%w: total %.17g", ErrInconsistent, total)
	}
	return nil
}
