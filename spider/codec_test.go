package spider

import (
	"strings"
	"testing"

	"github.com/lox/spider/internal/randutil"
)

func assertGamesMatch(t *testing.T, want, got *Game) {
	t.Helper()
	for i := range want.Tableau {
		if len(got.Tableau[i]) != len(want.Tableau[i]) {
			t.Fatalf("pile %d has %d cards, want %d", i, len(got.Tableau[i]), len(want.Tableau[i]))
		}
		for j := range want.Tableau[i] {
			w, g := want.Tableau[i][j], got.Tableau[i][j]
			if !w.Equal(g) || w.FaceUp != g.FaceUp {
				t.Errorf("pile %d card %d = %v (up=%v), want %v (up=%v)", i, j, g, g.FaceUp, w, w.FaceUp)
			}
		}
	}
	if len(got.Stock) != len(want.Stock) {
		t.Fatalf("stock has %d cards, want %d", len(got.Stock), len(want.Stock))
	}
	for i := range want.Stock {
		w, g := want.Stock[i], got.Stock[i]
		if !w.Equal(g) || w.FaceUp != g.FaceUp {
			t.Errorf("stock card %d = %v, want %v", i, g, w)
		}
	}
}

func TestCodecRoundTrip(t *testing.T) {
	t.Parallel()

	games := map[string]*Game{
		"empty":      {Suit: Spades},
		"fresh deal": New(Spades, randutil.New(31)),
		"after resolved sequence": func() *Game {
			g := testGame(descending(0, King, Ace), descending(13, Five, Ace))
			g.Resolve()
			return g
		}(),
	}

	for name, game := range games {
		t.Run(name, func(t *testing.T) {
			tableau, stock, err := Encode(game)
			if err != nil {
				t.Fatalf("Encode: %v", err)
			}
			decoded, err := Decode(tableau, stock)
			if err != nil {
				t.Fatalf("Decode: %v", err)
			}
			assertGamesMatch(t, game, decoded)
		})
	}
}

func TestDecodeRejectsBadInput(t *testing.T) {
	t.Parallel()
	tableau, stock, err := Encode(New(Spades, randutil.New(2)))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}

	tests := []struct {
		name    string
		tableau []byte
		stock   []byte
	}{
		{"missing tableau", nil, stock},
		{"missing stock", tableau, nil},
		{"malformed tableau", []byte("{not json"), stock},
		{"malformed stock", tableau, []byte("[")},
		{"wrong pile count", []byte(`[[],[]]`), stock},
		{"unknown suit", []byte(strings.Replace(string(tableau), "spades", "stars", 1)), stock},
		{"rank out of range", []byte(`[[{"suit":"spades","rank":14,"isFaceUp":true}],[],[],[],[],[],[],[],[],[]]`), []byte(`[]`)},
	}
	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			if _, err := Decode(tc.tableau, tc.stock); err == nil {
				t.Error("Decode should fail")
			}
		})
	}
}

func TestDecodeAssignsStableIDs(t *testing.T) {
	t.Parallel()
	tableau, stock, err := Encode(New(Spades, randutil.New(9)))
	if err != nil {
		t.Fatalf("Encode: %v", err)
	}
	g, err := Decode(tableau, stock)
	if err != nil {
		t.Fatalf("Decode: %v", err)
	}

	seen := make(map[CardID]bool)
	total := 0
	for _, pile := range g.Tableau {
		for _, c := range pile {
			if seen[c.ID] {
				t.Fatalf("duplicate card ID %d after decode", c.ID)
			}
			seen[c.ID] = true
			total++
		}
	}
	for _, c := range g.Stock {
		if seen[c.ID] {
			t.Fatalf("duplicate card ID %d after decode", c.ID)
		}
		seen[c.ID] = true
		total++
	}
	if total != DeckSize {
		t.Errorf("decoded %d cards, want %d", total, DeckSize)
	}
}
