package spider

import (
	"encoding/json"
	"fmt"
)

// cardState is the persisted card record. Card IDs are intentionally not
// persisted; Decode re-numbers cards in tableau-then-stock order, which is
// stable for the lifetime of the loaded game.
type cardState struct {
	Suit     string `json:"suit"`
	Rank     int    `json:"rank"`
	IsFaceUp bool   `json:"isFaceUp"`
}

func toState(c Card) cardState {
	return cardState{Suit: c.Suit.Name(), Rank: int(c.Rank), IsFaceUp: c.FaceUp}
}

func fromState(cs cardState, id CardID) (Card, error) {
	suit, err := ParseSuit(cs.Suit)
	if err != nil {
		return Card{}, err
	}
	if cs.Rank < int(Ace) || cs.Rank > int(King) {
		return Card{}, fmt.Errorf("rank %d out of range", cs.Rank)
	}
	return Card{ID: id, Suit: suit, Rank: Rank(cs.Rank), FaceUp: cs.IsFaceUp}, nil
}

// Encode serializes the game into its two persisted values, the tableau
// and the stock. Consumers must store both; either one alone is not a
// valid saved game.
func Encode(g *Game) (tableau, stock []byte, err error) {
	ts := make([][]cardState, NumPiles)
	for i := range g.Tableau {
		ts[i] = make([]cardState, 0, len(g.Tableau[i]))
		for _, c := range g.Tableau[i] {
			ts[i] = append(ts[i], toState(c))
		}
	}
	ss := make([]cardState, 0, len(g.Stock))
	for _, c := range g.Stock {
		ss = append(ss, toState(c))
	}

	tableau, err = json.Marshal(ts)
	if err != nil {
		return nil, nil, fmt.Errorf("encode tableau: %w", err)
	}
	stock, err = json.Marshal(ss)
	if err != nil {
		return nil, nil, fmt.Errorf("encode stock: %w", err)
	}
	return tableau, stock, nil
}

// Decode rebuilds a game from the two persisted values. It is
// all-or-nothing: a missing blob, malformed JSON, a wrong pile count or an
// out-of-range card returns an error and no game, so callers can keep
// whatever state they already have.
func Decode(tableau, stock []byte) (*Game, error) {
	if len(tableau) == 0 || len(stock) == 0 {
		return nil, fmt.Errorf("incomplete saved state")
	}

	var ts [][]cardState
	if err := json.Unmarshal(tableau, &ts); err != nil {
		return nil, fmt.Errorf("decode tableau: %w", err)
	}
	if len(ts) != NumPiles {
		return nil, fmt.Errorf("decode tableau: %d piles, want %d", len(ts), NumPiles)
	}
	var ss []cardState
	if err := json.Unmarshal(stock, &ss); err != nil {
		return nil, fmt.Errorf("decode stock: %w", err)
	}

	g := &Game{}
	id := CardID(0)
	for i, pile := range ts {
		g.Tableau[i] = make(Pile, 0, len(pile))
		for _, cs := range pile {
			c, err := fromState(cs, id)
			if err != nil {
				return nil, fmt.Errorf("decode tableau: %w", err)
			}
			g.Tableau[i] = append(g.Tableau[i], c)
			g.Suit = c.Suit
			id++
		}
	}
	g.Stock = make([]Card, 0, len(ss))
	for _, cs := range ss {
		c, err := fromState(cs, id)
		if err != nil {
			return nil, fmt.Errorf("decode stock: %w", err)
		}
		g.Stock = append(g.Stock, c)
		g.Suit = c.Suit
		id++
	}
	return g, nil
}
