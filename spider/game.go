package spider

import rand "math/rand/v2"

// Game is the aggregate the shells hold: one tableau and one stock. It is
// created fresh on new-game or reset and replaced wholesale on load. All
// methods assume exclusive access per call; embeddings delivering input
// from multiple goroutines must serialize calls themselves.
type Game struct {
	Tableau Tableau
	Stock   []Card
	Suit    Suit
}

// New deals a fresh game of the given suit from a newly shuffled deck
func New(suit Suit, rng *rand.Rand) *Game {
	return NewFromDeck(suit, NewDeck(suit, rng))
}

// NewFromDeck deals a game from an explicit deck order. Tests use this to
// pin down deterministic layouts.
func NewFromDeck(suit Suit, deck []Card) *Game {
	g := &Game{Suit: suit}
	g.Tableau, g.Stock = Deal(deck)
	return g
}

// Reset replaces the game state with a freshly dealt game of the same
// suit. Safe to call at any time, including mid-game or after a win.
func (g *Game) Reset(rng *rand.Rand) {
	*g = *New(g.Suit, rng)
}

// Won reports the terminal success state: every pile empty and the stock
// empty. The stock is populated at deal time and never dealt into the
// tableau in this variant, so with a standard deal the stock only empties
// through Resolve never touching it; the condition is still checked so a
// stockless deal can win.
func (g *Game) Won() bool {
	return g.Tableau.Empty() && len(g.Stock) == 0
}

// find locates a card by ID, returning its pile and position
func (g *Game) find(id CardID) (pile, idx int, ok bool) {
	for pi := range g.Tableau {
		for ci := range g.Tableau[pi] {
			if g.Tableau[pi][ci].ID == id {
				return pi, ci, true
			}
		}
	}
	return 0, 0, false
}
