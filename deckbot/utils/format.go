package utils

import (
	"fmt"
	"strings"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

func Ptr[T any](v T) *T {
	return &v
}

// FormatCardName converts stored card names to display form.
func FormatCardName(name string) string {
	return strings.NewReplacer("_", " ", "-", " ").Replace(name)
}

// StatString renders an optional stat, "-" when absent.
func StatString(v *int) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%d", *v)
}

// RateString renders an optional rate, "-" when absent.
func RateString(v *float64) string {
	if v == nil {
		return "-"
	}
	return fmt.Sprintf("%g", *v)
}

// FormatCardLine renders one card for list output:
// [003] Marisa Kirisame | cost: 5 | power: 8
func FormatCardLine(card *catalog.Card) string {
	return fmt.Sprintf("[%03d] %s | cost: %s | power: %s",
		card.ID,
		FormatCardName(card.Name),
		StatString(card.Cost),
		StatString(card.Power),
	)
}

// FormatCardDetail renders the full card block shown by detail views.
// QA rulings are opt-in; they can run long.
func FormatCardDetail(card *catalog.Card, packs []string, showQA bool) string {
	var b strings.Builder
	fmt.Fprintf(&b, "[%03d] %s\n", card.ID, FormatCardName(card.Name))
	fmt.Fprintf(&b, "  type: %s | cost: %s | power: %s | rate: %s\n",
		card.Type, StatString(card.Cost), StatString(card.Power), RateString(card.Rate))

	if len(card.Tags) > 0 {
		fmt.Fprintf(&b, "  tags: %s\n", strings.Join(card.Tags, ", "))
	}

	packNames := make([]string, 0, len(card.Packs))
	for _, idx := range card.Packs {
		if idx >= 0 && idx < len(packs) {
			packNames = append(packNames, packs[idx])
		}
	}
	if len(packNames) > 0 {
		fmt.Fprintf(&b, "  packs: %s\n", strings.Join(packNames, ", "))
	}

	if len(card.Abilities) > 0 {
		labels := make([]string, len(card.Abilities))
		for i, ab := range card.Abilities {
			labels[i] = ab.Display()
		}
		fmt.Fprintf(&b, "  abilities: %s\n", strings.Join(labels, ", "))
	}

	if card.Text != "" {
		fmt.Fprintf(&b, "  text: %s\n", card.Text)
	}

	if showQA && len(card.QA) > 0 {
		b.WriteString("  q&a:\n")
		for _, entry := range card.QA {
			fmt.Fprintf(&b, "    Q: %s\n", entry.Question)
			fmt.Fprintf(&b, "    A: %s\n", entry.Answer)
		}
	}
	return b.String()
}
