package spider

// RunLength is the size of a complete sequence, king down to ace
const RunLength = RanksPerSet

// Resolve scans every pile for a complete trailing sequence — thirteen
// same-suit cards running king down to ace, bottom to top — and removes
// each one it finds. Removed cards leave play permanently. Face-up state
// is not part of the check. Returns the number of sequences removed;
// callers invoke this after every move.
func (g *Game) Resolve() int {
	removed := 0
	for i := range g.Tableau {
		pile := g.Tableau[i]
		if len(pile) < RunLength {
			continue
		}
		tail := pile[len(pile)-RunLength:]
		if tail[0].Rank != King || !isDescendingRun(tail) {
			continue
		}
		g.Tableau[i] = pile[:len(pile)-RunLength]
		removed++
	}
	return removed
}
