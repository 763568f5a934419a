package game

import (
	"errors"
	"fmt"
	"math/rand"
)

var ErrEmptyDeck = errors.New("deck is empty")

const DeckSize = 52

var Suits = []string{"Hearts", "Diamonds", "Spades", "Clubs"}

var Faces = []string{"2", "3", "4", "5", "6", "7", "8", "9", "10", "Jack", "Queen", "King", "Ace"}

var CardValues = map[string]int{
	"2": 2, "3": 3, "4": 4, "5": 5, "6": 6, "7": 7, "8": 8, "9": 9, "10": 10,
	"Jack": 10, "Queen": 10, "King": 10, "Ace": 11,
}

// Card is never modified once built.
type Card struct {
	Face  string
	Suit  string
	Value int
}

func NewCard(face, suit string) Card {
	return Card{Face: face, Suit: suit, Value: CardValues[face]}
}

func (c Card) String() string {
	return fmt.Sprintf("%s of %s", c.Face, c.Suit)
}

func (c Card) IsAce() bool {
	return c.Face == "Ace"
}

// Deck treats the end of its slice as the top.
type Deck struct {
	cards []Card
	rng   *rand.Rand
}

func NewDeck(rng *rand.Rand) *Deck {
	d := &Deck{rng: rng}
	d.Reset()
	return d
}

// Reset rebuilds all 52 cards and shuffles them. Cards left over from the
// previous round are discarded.
func (d *Deck) Reset() {
	d.cards = make([]Card, 0, DeckSize)

	for _, suit := range Suits {
		for _, face := range Faces {
			d.cards = append(d.cards, NewCard(face, suit))
		}
	}

	d.Shuffle()
}

func (d *Deck) Shuffle() {
	d.rng.Shuffle(len(d.cards), func(i, j int) {
		d.cards[i], d.cards[j] = d.cards[j], d.cards[i]
	})
}

func (d *Deck) Draw() (Card, error) {
	if len(d.cards) == 0 {
		return Card{}, ErrEmptyDeck
	}

	top := len(d.cards) - 1
	card := d.cards[top]
	d.cards = d.cards[:top]
	return card, nil
}

func (d *Deck) Len() int {
	return len(d.cards)
}

// Cards returns a copy, bottom first.
func (d *Deck) Cards() []Card {
	out := make([]Card, len(d.cards))
	copy(out, d.cards)
	return out
}
