package spider

const (
	// NumPiles is the fixed tableau width
	NumPiles = 10

	// Piles 0-3 are dealt one extra card each
	deepPiles     = 4
	deepPileSize  = 6
	shortPileSize = 5
)

// Pile is an ordered stack of cards, bottom to top; the last element is
// the exposed top. A pile may be empty.
type Pile []Card

// Top returns the exposed top card of the pile
func (p Pile) Top() (Card, bool) {
	if len(p) == 0 {
		return Card{}, false
	}
	return p[len(p)-1], true
}

// Tableau is the fixed set of ten piles
type Tableau [NumPiles]Pile

// Empty reports whether every pile has been cleared
func (t *Tableau) Empty() bool {
	for i := range t {
		if len(t[i]) > 0 {
			return false
		}
	}
	return true
}

// Deal partitions a shuffled deck into the tableau and the stock: piles
// 0-3 receive six cards, piles 4-9 five, consumed from the front of the
// deck in order. The top card of every dealt pile is flipped face-up.
// Whatever remains becomes the stock, face-down, in deck order.
func Deal(deck []Card) (Tableau, []Card) {
	var t Tableau
	next := 0
	for i := range t {
		size := shortPileSize
		if i < deepPiles {
			size = deepPileSize
		}
		if next+size > len(deck) {
			size = len(deck) - next
		}
		t[i] = append(Pile(nil), deck[next:next+size]...)
		next += size
		for j := range t[i] {
			t[i][j].FaceUp = false
		}
		if n := len(t[i]); n > 0 {
			t[i][n-1].FaceUp = true
		}
	}

	stock := append([]Card(nil), deck[next:]...)
	for i := range stock {
		stock[i].FaceUp = false
	}
	return t, stock
}
