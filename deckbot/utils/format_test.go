package utils

import (
	"strings"
	"testing"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

func TestFormatCardName(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{"underscores", "youmu_konpaku", "youmu konpaku"},
		{"hyphens", "ice-fairy", "ice fairy"},
		{"plain", "Reimu Hakurei", "Reimu Hakurei"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FormatCardName(tt.in); got != tt.want {
				t.Errorf("FormatCardName(%q) = %q, want %q", tt.in, got, tt.want)
			}
		})
	}
}

func TestFormatCardLine(t *testing.T) {
	card := &catalog.Card{ID: 3, Name: "Marisa_Kirisame", Type: catalog.TypeCharacter, Cost: Ptr(5), Power: Ptr(8)}
	if got, want := FormatCardLine(card), "[003] Marisa Kirisame | cost: 5 | power: 8"; got != want {
		t.Errorf("FormatCardLine() = %q, want %q", got, want)
	}

	// Absent stats render as "-" instead of zero.
	bare := &catalog.Card{ID: 40, Name: "Seal", Type: catalog.TypeAbility}
	if got, want := FormatCardLine(bare), "[040] Seal | cost: - | power: -"; got != want {
		t.Errorf("FormatCardLine() = %q, want %q", got, want)
	}
}

func TestFormatCardDetail(t *testing.T) {
	card := &catalog.Card{
		ID:    12,
		Name:  "Reimu_Hakurei",
		Type:  catalog.TypeCharacter,
		Cost:  Ptr(3),
		Power: Ptr(8),
		Rate:  Ptr(2.5),
		Tags:  []string{"shrine"},
		Text:  "Seal the border.",
		Abilities: []catalog.Ability{
			{Code: "barrier", Label: "Barrier"},
			{Code: "flight"},
		},
		Packs: []int{1},
		QA:    []catalog.QA{{Question: "Does it stack?", Answer: "No."}},
	}
	packs := []string{"Base Set", "Frontier"}

	got := FormatCardDetail(card, packs, false)
	for _, want := range []string{
		"[012] Reimu Hakurei",
		"type: Character | cost: 3 | power: 8 | rate: 2.5",
		"tags: shrine",
		"packs: Frontier",
		"abilities: Barrier, flight",
		"text: Seal the border.",
	} {
		if !strings.Contains(got, want) {
			t.Errorf("FormatCardDetail() missing %q in:\n%s", want, got)
		}
	}
	if strings.Contains(got, "Does it stack?") {
		t.Errorf("FormatCardDetail(showQA=false) leaked rulings:\n%s", got)
	}

	got = FormatCardDetail(card, packs, true)
	if !strings.Contains(got, "Q: Does it stack?") || !strings.Contains(got, "A: No.") {
		t.Errorf("FormatCardDetail(showQA=true) missing rulings:\n%s", got)
	}

	// Absent stats render as "-" across the board.
	bare := &catalog.Card{ID: 40, Name: "Seal", Type: catalog.TypeAbility}
	if got := FormatCardDetail(bare, nil, true); !strings.Contains(got, "cost: - | power: - | rate: -") {
		t.Errorf("FormatCardDetail(bare) stats line wrong:\n%s", got)
	}
}

func TestPowerLabel(t *testing.T) {
	if got := PowerLabel(5); got != "5" {
		t.Errorf("PowerLabel(5) = %q, want 5", got)
	}
	if got := PowerLabel(catalog.PowerCap); got != "8+" {
		t.Errorf("PowerLabel(cap) = %q, want 8+", got)
	}
}

func TestBuildFilterDescription(t *testing.T) {
	if got := BuildFilterDescription(catalog.Criteria{}, nil); got != "" {
		t.Errorf("BuildFilterDescription(zero) = %q, want empty", got)
	}

	crit := catalog.Criteria{
		Query:    "fairy",
		Pack:     Ptr(1),
		PowerMax: Ptr(catalog.PowerCap),
	}
	got := BuildFilterDescription(crit, []string{"Base Set", "Frontier"})

	for _, want := range []string{"fairy", "Frontier", "8+"} {
		if !strings.Contains(got, want) {
			t.Errorf("BuildFilterDescription() missing %q in %q", want, got)
		}
	}
	// An out-of-range pack index falls back to the raw index.
	crit.Pack = Ptr(9)
	if got := BuildFilterDescription(crit, []string{"Base Set"}); !strings.Contains(got, "#9") {
		t.Errorf("BuildFilterDescription() missing #9 fallback in %q", got)
	}
}
