package catalog

import "strings"

// PowerCap is the "8+" selector value. A power bound equal to PowerCap
// is open-ended: it requires power >= 8 whether it was set as the
// minimum or the maximum. The max side reads unusual but matches the
// shipped widget behavior, which external deck codes already depend on.
const PowerCap = 8

// Criteria is the transient filter value object. Nil bounds are
// inactive; the zero value matches every Character card.
type Criteria struct {
	Query    string
	Pack     *int
	CostMin  *int
	CostMax  *int
	PowerMin *int
	PowerMax *int
	Ability  string
}

// IsZero reports whether no predicate is active.
func (c Criteria) IsZero() bool {
	return c.Query == "" &&
		c.Pack == nil &&
		c.CostMin == nil &&
		c.CostMax == nil &&
		c.PowerMin == nil &&
		c.PowerMax == nil &&
		c.Ability == ""
}

// Filter evaluates the criteria over the card list and returns the
// matching Character cards in their original order. All active
// predicates are AND-ed; a card is discarded at the first rejecting
// predicate. The input is never mutated and an empty result is not an
// error.
func Filter(cards []*Card, crit Criteria) []*Card {
	matched := make([]*Card, 0, len(cards))
	query := strings.ToLower(strings.TrimSpace(crit.Query))

	for _, card := range cards {
		if card.Type != TypeCharacter {
			continue
		}
		if query != "" && !matchesText(card, query) {
			continue
		}
		if crit.Pack != nil && !card.InPack(*crit.Pack) {
			continue
		}
		if crit.CostMin != nil && (card.Cost == nil || *card.Cost < *crit.CostMin) {
			continue
		}
		if crit.CostMax != nil && (card.Cost == nil || *card.Cost > *crit.CostMax) {
			continue
		}
		if crit.PowerMin != nil && !matchesPowerMin(card, *crit.PowerMin) {
			continue
		}
		if crit.PowerMax != nil && !matchesPowerMax(card, *crit.PowerMax) {
			continue
		}
		if crit.Ability != "" && !card.HasAbility(crit.Ability) {
			continue
		}
		matched = append(matched, card)
	}
	return matched
}

// matchesText checks the lowered query against name, any tag, and the
// card text. One hit is enough.
func matchesText(card *Card, query string) bool {
	if strings.Contains(strings.ToLower(card.Name), query) {
		return true
	}
	if card.HasTag(query) {
		return true
	}
	return strings.Contains(strings.ToLower(card.Text), query)
}

func matchesPowerMin(card *Card, bound int) bool {
	if card.Power == nil {
		return false
	}
	if bound >= PowerCap {
		return *card.Power >= PowerCap
	}
	return *card.Power >= bound
}

func matchesPowerMax(card *Card, bound int) bool {
	if card.Power == nil {
		return false
	}
	// The "8+" cap keeps the range open above instead of bounding it.
	if bound >= PowerCap {
		return *card.Power >= PowerCap
	}
	return *card.Power <= bound
}
