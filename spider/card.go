// Package spider implements the rules core for a single-suit Spider
// Solitaire variant: deck construction, dealing, move legality, completed
// sequence detection and the win condition. It renders nothing and stores
// nothing; UI and persistence shells live under internal/.
package spider

import "fmt"

// Suit represents a card suit
type Suit int

const (
	Spades Suit = iota
	Hearts
	Diamonds
	Clubs
)

// String returns the string representation of a suit
func (s Suit) String() string {
	switch s {
	case Spades:
		return "♠"
	case Hearts:
		return "♥"
	case Diamonds:
		return "♦"
	case Clubs:
		return "♣"
	default:
		return "?"
	}
}

// Name returns the lowercase name used in the persisted state format
func (s Suit) Name() string {
	switch s {
	case Spades:
		return "spades"
	case Hearts:
		return "hearts"
	case Diamonds:
		return "diamonds"
	case Clubs:
		return "clubs"
	default:
		return "unknown"
	}
}

// ParseSuit parses a suit name as written by the state codec
func ParseSuit(name string) (Suit, error) {
	switch name {
	case "spades":
		return Spades, nil
	case "hearts":
		return Hearts, nil
	case "diamonds":
		return Diamonds, nil
	case "clubs":
		return Clubs, nil
	default:
		return 0, fmt.Errorf("unknown suit %q", name)
	}
}

// Rank represents a card rank, ace low
type Rank int

const (
	Ace Rank = iota + 1
	Two
	Three
	Four
	Five
	Six
	Seven
	Eight
	Nine
	Ten
	Jack
	Queen
	King
)

// String returns the string representation of a rank
func (r Rank) String() string {
	switch r {
	case Ace:
		return "A"
	case Ten:
		return "T"
	case Jack:
		return "J"
	case Queen:
		return "Q"
	case King:
		return "K"
	default:
		if r >= Two && r <= Nine {
			return fmt.Sprintf("%d", int(r))
		}
		return "?"
	}
}

// CardID is a card's stable identity for the lifetime of a game: its
// position in the shuffled deck at build time. Up to eight cards share any
// given (suit, rank) pair in this variant, so moves address cards by ID
// rather than by value.
type CardID int

// Card represents a playing card. Suit and rank never change after the
// deck is built; FaceUp flips as the card is dealt and uncovered.
type Card struct {
	ID     CardID
	Suit   Suit
	Rank   Rank
	FaceUp bool
}

// NewCard creates a new face-down card
func NewCard(id CardID, suit Suit, rank Rank) Card {
	return Card{ID: id, Suit: suit, Rank: rank}
}

// Equal reports whether two cards have the same suit and rank. Identity
// and face-up state are ignored; this is the equality the game rules use.
func (c Card) Equal(o Card) bool {
	return c.Suit == o.Suit && c.Rank == o.Rank
}

// String returns the card as rank then suit (e.g., "K♠")
func (c Card) String() string {
	return fmt.Sprintf("%s%s", c.Rank, c.Suit)
}
