package catalog

import "strings"

// CardType distinguishes the two catalog categories. Only Character
// cards are deck-eligible.
type CardType int

const (
	TypeCharacter CardType = 0
	TypeAbility   CardType = 1
)

func (t CardType) String() string {
	switch t {
	case TypeCharacter:
		return "Character"
	case TypeAbility:
		return "Ability"
	default:
		return "Unknown"
	}
}

// Ability is a keyword printed on a card. Some entries only carry a
// code; Display falls back to it when the label is empty.
type Ability struct {
	Code  string `json:"code"`
	Label string `json:"label"`
}

func (a Ability) Display() string {
	if a.Label != "" {
		return a.Label
	}
	return a.Code
}

// QA is an official ruling attached to a card.
type QA struct {
	Question string `json:"q"`
	Answer   string `json:"a"`
}

// Card is an immutable catalog record. Cost, Power and Rate are nil
// when the source document omits them; a nil bound never defaults to 0.
type Card struct {
	ID        int64     `json:"id"`
	Name      string    `json:"name"`
	Type      CardType  `json:"type"`
	Cost      *int      `json:"cost,omitempty"`
	Power     *int      `json:"power,omitempty"`
	Rate      *float64  `json:"rate,omitempty"`
	Tags      []string  `json:"tags,omitempty"`
	Text      string    `json:"text,omitempty"`
	Abilities []Ability `json:"abilities,omitempty"`
	Packs     []int     `json:"packs,omitempty"`
	Image     string    `json:"image,omitempty"`
	QA        []QA      `json:"qa,omitempty"`
}

// HasTag reports whether any tag contains sub, case-insensitively.
func (c *Card) HasTag(sub string) bool {
	sub = strings.ToLower(sub)
	for _, tag := range c.Tags {
		if strings.Contains(strings.ToLower(tag), sub) {
			return true
		}
	}
	return false
}

// InPack reports whether the card is listed in the pack at index idx.
func (c *Card) InPack(idx int) bool {
	for _, p := range c.Packs {
		if p == idx {
			return true
		}
	}
	return false
}

// HasAbility reports whether any ability entry displays exactly as
// selector. Matching is against the label, or the code when the label
// is empty.
func (c *Card) HasAbility(selector string) bool {
	for _, ab := range c.Abilities {
		if ab.Display() == selector {
			return true
		}
	}
	return false
}
