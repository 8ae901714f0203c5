package spider

import "errors"

var (
	// ErrUnknownCard means the card ID is not in any pile
	ErrUnknownCard = errors.New("card not on the tableau")

	// ErrBadPile means the target pile index is out of range
	ErrBadPile = errors.New("pile index out of range")

	// ErrIllegalMove means the move violates stacking rules: either the
	// card does not continue the target pile's run, or the cards stacked
	// on it do not form a movable run themselves
	ErrIllegalMove = errors.New("illegal move")
)

// CanMove reports whether card may be placed onto pile: an empty pile
// accepts anything, otherwise the card must match the top card's suit and
// sit exactly one rank below it. Only the initiating card and the pile top
// are inspected here; Move additionally checks the cards riding on top.
func CanMove(card Card, pile Pile) bool {
	top, ok := pile.Top()
	if !ok {
		return true
	}
	return card.Suit == top.Suit && card.Rank == top.Rank-1
}

// isDescendingRun reports whether cards form a same-suit run descending by
// exactly one rank, bottom to top
func isDescendingRun(cards []Card) bool {
	for i := 1; i < len(cards); i++ {
		if cards[i].Suit != cards[i-1].Suit || cards[i].Rank != cards[i-1].Rank-1 {
			return false
		}
	}
	return true
}

// Move relocates the card with the given ID, and every card stacked above
// it, onto the target pile. The run moves atomically in its original
// order. Structural problems (unknown card, bad target index) and rule
// violations are reported as distinct errors and leave the game unchanged.
// After a successful move the source pile's new top card, if any, is
// flipped face-up.
func (g *Game) Move(id CardID, target int) error {
	if target < 0 || target >= NumPiles {
		return ErrBadPile
	}
	src, idx, ok := g.find(id)
	if !ok {
		return ErrUnknownCard
	}

	run := g.Tableau[src][idx:]
	if !isDescendingRun(run) {
		return ErrIllegalMove
	}
	if src != target && !CanMove(run[0], g.Tableau[target]) {
		return ErrIllegalMove
	}
	if src == target {
		return nil
	}

	g.Tableau[target] = append(g.Tableau[target], run...)
	g.Tableau[src] = g.Tableau[src][:idx]
	if n := len(g.Tableau[src]); n > 0 {
		g.Tableau[src][n-1].FaceUp = true
	}
	return nil
}
