package deck

import (
	"errors"
	"fmt"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

// MaxSize is the deck ceiling: a 3x3 image grid of Character cards.
const MaxSize = 9

var (
	ErrDeckFull      = errors.New("deck already holds 9 cards")
	ErrWrongCardType = errors.New("only Character cards can join a deck")
)

// Deck is the user's ordered, in-progress selection of up to MaxSize
// Character cards. Insertion order is preserved; the same card id may
// appear more than once. Every failed operation leaves the deck
// untouched.
type Deck struct {
	cards []*catalog.Card
}

func New() *Deck {
	return &Deck{}
}

// Add appends the card. It rejects a full deck and non-Character cards
// without mutating.
func (d *Deck) Add(card *catalog.Card) error {
	if len(d.cards) >= MaxSize {
		return ErrDeckFull
	}
	if card == nil || card.Type != catalog.TypeCharacter {
		return ErrWrongCardType
	}
	d.cards = append(d.cards, card)
	return nil
}

// RemoveAt removes the card at index, shifting later entries left. The
// relative order of the survivors is preserved.
func (d *Deck) RemoveAt(index int) (*catalog.Card, error) {
	if index < 0 || index >= len(d.cards) {
		return nil, fmt.Errorf("deck slot %d is out of range (deck has %d cards)", index, len(d.cards))
	}
	removed := d.cards[index]
	d.cards = append(d.cards[:index], d.cards[index+1:]...)
	return removed, nil
}

// Clear empties the deck unconditionally. Any confirmation step belongs
// to the caller.
func (d *Deck) Clear() {
	d.cards = d.cards[:0]
}

// Replace swaps the entire deck contents, truncating to MaxSize. Decode
// and restore use it to install a resolved card list wholesale.
func (d *Deck) Replace(cards []*catalog.Card) {
	if len(cards) > MaxSize {
		cards = cards[:MaxSize]
	}
	d.cards = append(d.cards[:0], cards...)
}

// TotalCost sums member costs, counting a missing cost as 0.
func (d *Deck) TotalCost() int {
	total := 0
	for _, card := range d.cards {
		if card.Cost != nil {
			total += *card.Cost
		}
	}
	return total
}

func (d *Deck) Size() int { return len(d.cards) }

func (d *Deck) IsFull() bool { return len(d.cards) == MaxSize }

// Cards returns a copy of the member list in deck order.
func (d *Deck) Cards() []*catalog.Card {
	out := make([]*catalog.Card, len(d.cards))
	copy(out, d.cards)
	return out
}

// IDs returns the member identity list in deck order. This is the
// persisted representation.
func (d *Deck) IDs() []int64 {
	out := make([]int64, len(d.cards))
	for i, card := range d.cards {
		out[i] = card.ID
	}
	return out
}

// Slot is one cell of the rendered 3x3 grid: the card's image reference
// when it has one, otherwise the name as a textual fallback. Empty
// slots have neither.
type Slot struct {
	Image string
	Name  string
}

func (s Slot) Empty() bool { return s.Image == "" && s.Name == "" }

// Slots lays the deck out over the fixed MaxSize grid positions in deck
// order, leaving trailing slots empty.
func (d *Deck) Slots() [MaxSize]Slot {
	var slots [MaxSize]Slot
	for i, card := range d.cards {
		slots[i] = Slot{Image: card.Image, Name: card.Name}
	}
	return slots
}

// FromIDs resolves a stored identity list against the catalog, applying
// the same rules as decoding a deck code: ids not found or not
// Character cards are dropped silently and the result is truncated to
// MaxSize.
func FromIDs(ids []int64, cat *catalog.Catalog) *Deck {
	kept := make([]*catalog.Card, 0, len(ids))
	for _, id := range ids {
		card, ok := cat.ByID(id)
		if !ok || card.Type != catalog.TypeCharacter {
			continue
		}
		kept = append(kept, card)
	}
	d := New()
	d.Replace(kept)
	return d
}
