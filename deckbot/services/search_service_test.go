package services

import (
	"testing"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

func suggestCards() []*catalog.Card {
	return []*catalog.Card{
		{ID: 1, Name: "Reimu Hakurei", Type: catalog.TypeCharacter},
		{ID: 2, Name: "Marisa Kirisame", Type: catalog.TypeCharacter},
		{ID: 3, Name: "Sakuya Izayoi", Type: catalog.TypeCharacter},
		{ID: 4, Name: "Youmu_Konpaku", Type: catalog.TypeCharacter},
	}
}

func TestSuggest(t *testing.T) {
	svc := NewSearchService()
	cards := suggestCards()

	got := svc.Suggest(cards, "marisa", 5)
	if len(got) == 0 || got[0].ID != 2 {
		t.Fatalf("Suggest(marisa) best match = %v, want card 2 first", got)
	}

	// Underscored names are matched through normalization.
	got = svc.Suggest(cards, "youmu konpaku", 5)
	if len(got) == 0 || got[0].ID != 4 {
		t.Fatalf("Suggest(youmu konpaku) best match = %v, want card 4 first", got)
	}

	if got := svc.Suggest(cards, "zzzzqqq", 5); len(got) != 0 {
		t.Errorf("Suggest(no match) = %v, want empty", got)
	}

	got = svc.Suggest(cards, "", 2)
	if len(got) != 2 || got[0].ID != 1 || got[1].ID != 2 {
		t.Errorf("Suggest(empty query) = %v, want first two cards", got)
	}

	if got := svc.Suggest(cards, "reimu", 0); got != nil {
		t.Errorf("Suggest(limit 0) = %v, want nil", got)
	}
}

func TestResolveCard(t *testing.T) {
	svc := NewSearchService()
	cards := suggestCards()

	if card := svc.ResolveCard(cards, "sakuya"); card == nil || card.ID != 3 {
		t.Errorf("ResolveCard(sakuya) = %v, want card 3", card)
	}
	if card := svc.ResolveCard(cards, "zzzzqqq"); card != nil {
		t.Errorf("ResolveCard(no match) = %v, want nil", card)
	}
}
