package migration

import (
	"bufio"
	"bytes"
	"reflect"
	"testing"

	"go.mongodb.org/mongo-driver/bson"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

func int32Ptr(v int32) *int32 { return &v }

func TestConvertCard(t *testing.T) {
	rate := 2.5
	legacy := &LegacyCard{
		ID:    12,
		Name:  "Reimu Hakurei",
		Type:  0,
		Cost:  int32Ptr(3),
		Power: int32Ptr(8),
		Rate:  &rate,
		Tags:  []string{"shrine"},
		Text:  "Seal the border.",
		Abilities: []LegacyAbility{
			{Code: "barrier", Label: "Barrier"},
			{Code: "flight"},
		},
		Packs: []int32{0, 2},
		Image: "sample0012.png",
		QA:    []LegacyQA{{Question: "Does it stack?", Answer: "No."}},
	}

	card, err := convertCard(legacy)
	if err != nil {
		t.Fatalf("convertCard() error = %v", err)
	}

	if card.ID != 12 || card.Name != "Reimu Hakurei" || card.Type != catalog.TypeCharacter {
		t.Errorf("convertCard() identity = %d %q %v", card.ID, card.Name, card.Type)
	}
	if card.Cost == nil || *card.Cost != 3 {
		t.Errorf("Cost = %v, want 3", card.Cost)
	}
	if card.Power == nil || *card.Power != 8 {
		t.Errorf("Power = %v, want 8", card.Power)
	}
	if card.Rate == nil || *card.Rate != 2.5 {
		t.Errorf("Rate = %v, want 2.5", card.Rate)
	}
	if got, want := card.Packs, []int{0, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("Packs = %v, want %v", got, want)
	}
	if len(card.Abilities) != 2 || card.Abilities[1].Display() != "flight" {
		t.Errorf("Abilities = %v, want label fallback to code", card.Abilities)
	}
	if len(card.QA) != 1 || card.QA[0].Answer != "No." {
		t.Errorf("QA = %v", card.QA)
	}
}

func TestConvertCardPreservesAbsentStats(t *testing.T) {
	card, err := convertCard(&LegacyCard{ID: 40, Name: "Seal", Type: 1})
	if err != nil {
		t.Fatalf("convertCard() error = %v", err)
	}
	if card.Cost != nil || card.Power != nil || card.Rate != nil {
		t.Errorf("absent stats converted to values: cost=%v power=%v rate=%v",
			card.Cost, card.Power, card.Rate)
	}
	if card.Type != catalog.TypeAbility {
		t.Errorf("Type = %v, want Ability", card.Type)
	}
}

func TestConvertCardRejectsUnusable(t *testing.T) {
	if _, err := convertCard(&LegacyCard{ID: 0, Name: "Nameless"}); err == nil {
		t.Error("convertCard() with id 0 did not fail")
	}
	if _, err := convertCard(&LegacyCard{ID: 5}); err == nil {
		t.Error("convertCard() without name did not fail")
	}
}

func TestReadBSONDocumentStream(t *testing.T) {
	first, err := bson.Marshal(LegacyCard{ID: 1, Name: "Reimu", Type: 0})
	if err != nil {
		t.Fatalf("bson.Marshal() error = %v", err)
	}
	second, err := bson.Marshal(LegacyCard{ID: 2, Name: "Marisa", Type: 0})
	if err != nil {
		t.Fatalf("bson.Marshal() error = %v", err)
	}

	reader := bufio.NewReader(bytes.NewReader(append(append([]byte{}, first...), second...)))

	var ids []int64
	for {
		docBytes, err := readBSONDocument(reader)
		if err != nil {
			break
		}
		var legacy LegacyCard
		if err := bson.Unmarshal(docBytes, &legacy); err != nil {
			t.Fatalf("bson.Unmarshal() error = %v", err)
		}
		ids = append(ids, legacy.ID)
	}

	if got, want := ids, []int64{1, 2}; !reflect.DeepEqual(got, want) {
		t.Errorf("streamed ids = %v, want %v", got, want)
	}
}
