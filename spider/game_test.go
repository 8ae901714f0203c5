package spider

import (
	"testing"

	"github.com/lox/spider/internal/randutil"
)

func TestWon(t *testing.T) {
	t.Parallel()

	t.Run("empty game is won", func(t *testing.T) {
		g := &Game{Suit: Spades}
		if !g.Won() {
			t.Error("empty tableau and stock should be a win")
		}
	})

	t.Run("card on tableau blocks win", func(t *testing.T) {
		g := testGame(Pile{faceUp(0, Ace)})
		if g.Won() {
			t.Error("a card on the tableau should block the win")
		}
	})

	t.Run("card in stock blocks win", func(t *testing.T) {
		g := &Game{Suit: Spades, Stock: []Card{NewCard(0, Spades, Ace)}}
		if g.Won() {
			t.Error("a card in the stock should block the win")
		}
	})

	t.Run("fresh deal is not won", func(t *testing.T) {
		if New(Spades, randutil.New(5)).Won() {
			t.Error("a fresh deal should not be a win")
		}
	})
}

func TestWinnableStocklessGame(t *testing.T) {
	t.Parallel()
	// One complete sequence on the tableau and no stock: a single resolve
	// wins the game.
	g := testGame(descending(0, King, Ace))

	if g.Won() {
		t.Fatal("game should not be won before resolving")
	}
	if n := g.Resolve(); n != 1 {
		t.Fatalf("Resolve removed %d sequences, want 1", n)
	}
	if !g.Won() {
		t.Error("game should be won after the only sequence resolves")
	}
}

func TestResetDealsFreshGame(t *testing.T) {
	t.Parallel()
	g := New(Hearts, randutil.New(21))
	if err := g.Move(mustTopID(t, g, 0), firstLegalTarget(g, 0)); err != nil && err != ErrIllegalMove {
		t.Fatalf("setup move: %v", err)
	}

	g.Reset(randutil.New(22))

	if g.Suit != Hearts {
		t.Errorf("reset changed suit to %v", g.Suit)
	}
	if len(g.Stock) != 50 {
		t.Errorf("reset stock has %d cards, want 50", len(g.Stock))
	}
	for i, pile := range g.Tableau {
		want := 5
		if i < 4 {
			want = 6
		}
		if len(pile) != want {
			t.Errorf("reset pile %d has %d cards, want %d", i, len(pile), want)
		}
	}
}

func mustTopID(t *testing.T, g *Game, pile int) CardID {
	t.Helper()
	top, ok := g.Tableau[pile].Top()
	if !ok {
		t.Fatalf("pile %d is empty", pile)
	}
	return top.ID
}

func firstLegalTarget(g *Game, src int) int {
	top, _ := g.Tableau[src].Top()
	for i := range g.Tableau {
		if i != src && CanMove(top, g.Tableau[i]) {
			return i
		}
	}
	return (src + 1) % NumPiles
}
