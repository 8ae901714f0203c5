package spider

import "testing"

// descending builds a run of cards from high down to low, same suit
func descending(start CardID, from, to Rank) Pile {
	var p Pile
	id := start
	for r := from; r >= to; r-- {
		p = append(p, Card{ID: id, Suit: Spades, Rank: r, FaceUp: true})
		id++
	}
	return p
}

func TestResolveRemovesCompleteSequence(t *testing.T) {
	t.Parallel()
	g := testGame(descending(0, King, Ace))

	if n := g.Resolve(); n != 1 {
		t.Fatalf("Resolve removed %d sequences, want 1", n)
	}
	if len(g.Tableau[0]) != 0 {
		t.Errorf("pile has %d cards after resolve, want 0", len(g.Tableau[0]))
	}
}

func TestResolveOnlyInspectsTrailingThirteen(t *testing.T) {
	t.Parallel()
	// A face-down card buried under a complete sequence stays behind.
	pile := append(Pile{NewCard(99, Spades, Four)}, descending(0, King, Ace)...)
	g := testGame(pile)

	if n := g.Resolve(); n != 1 {
		t.Fatalf("Resolve removed %d sequences, want 1", n)
	}
	if len(g.Tableau[0]) != 1 || g.Tableau[0][0].ID != 99 {
		t.Errorf("buried card should remain, pile = %v", g.Tableau[0])
	}
}

func TestResolveIgnoresIncompleteAndMisordered(t *testing.T) {
	t.Parallel()
	tests := []struct {
		name string
		pile Pile
	}{
		{"twelve cards", descending(0, Queen, Ace)},
		{"ascending order", func() Pile {
			var p Pile
			for r := Ace; r <= King; r++ {
				p = append(p, Card{ID: CardID(r), Suit: Spades, Rank: r})
			}
			return p
		}()},
		{"gap in the middle", func() Pile {
			p := descending(0, King, Two)
			p[6].Rank = Ten // duplicate, breaks the chain
			return append(p, NewCard(50, Spades, Ace))
		}()},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			g := testGame(tc.pile)
			before := len(g.Tableau[0])
			if n := g.Resolve(); n != 0 {
				t.Fatalf("Resolve removed %d sequences, want 0", n)
			}
			if len(g.Tableau[0]) != before {
				t.Errorf("pile length changed from %d to %d", before, len(g.Tableau[0]))
			}
		})
	}
}

func TestResolveFaceDownCardsStillCount(t *testing.T) {
	t.Parallel()
	pile := descending(0, King, Ace)
	for i := range pile {
		pile[i].FaceUp = false
	}
	g := testGame(pile)

	if n := g.Resolve(); n != 1 {
		t.Errorf("Resolve removed %d sequences, want 1", n)
	}
}

func TestResolveMultiplePilesInOneCall(t *testing.T) {
	t.Parallel()
	g := testGame(descending(0, King, Ace), descending(13, King, Ace))

	if n := g.Resolve(); n != 2 {
		t.Fatalf("Resolve removed %d sequences, want 2", n)
	}
	if !g.Tableau.Empty() {
		t.Error("both piles should be empty")
	}
}
