package spider

import rand "math/rand/v2"

const (
	// NumSets is how many times the single suit repeats in the deck
	NumSets = 8

	// RanksPerSet is the number of distinct ranks, ace through king
	RanksPerSet = 13

	// DeckSize is the full deck: 8 sets of 13 ranks
	DeckSize = NumSets * RanksPerSet
)

// NewDeck builds the 104-card deck for a new game: the given suit repeated
// across eight full rank sets, all face-down, uniformly shuffled with
// Fisher-Yates. Card IDs are assigned after the shuffle, so ID order is
// deal order. A nil rng falls back to the shared global source.
func NewDeck(suit Suit, rng *rand.Rand) []Card {
	cards := make([]Card, 0, DeckSize)
	for set := 0; set < NumSets; set++ {
		for rank := Ace; rank <= King; rank++ {
			cards = append(cards, Card{Suit: suit, Rank: rank})
		}
	}

	for i := len(cards) - 1; i > 0; i-- {
		var j int
		if rng != nil {
			j = rng.IntN(i + 1)
		} else {
			j = rand.IntN(i + 1)
		}
		cards[i], cards[j] = cards[j], cards[i]
	}

	for i := range cards {
		cards[i].ID = CardID(i)
	}
	return cards
}
