package deck

import (
	"errors"
	"reflect"
	"testing"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

func intPtr(v int) *int { return &v }

func character(id int64, cost int) *catalog.Card {
	return &catalog.Card{ID: id, Name: "chara", Type: catalog.TypeCharacter, Cost: intPtr(cost)}
}

func TestAdd(t *testing.T) {
	d := New()
	ability := &catalog.Card{ID: 100, Type: catalog.TypeAbility}

	if err := d.Add(ability); !errors.Is(err, ErrWrongCardType) {
		t.Errorf("Add(ability) error = %v, want ErrWrongCardType", err)
	}
	if d.Size() != 0 {
		t.Errorf("Size() after rejected add = %d, want 0", d.Size())
	}

	for i := int64(1); i <= MaxSize; i++ {
		if err := d.Add(character(i, 1)); err != nil {
			t.Fatalf("Add(card %d) error = %v", i, err)
		}
	}
	if !d.IsFull() {
		t.Error("IsFull() = false after 9 adds")
	}

	if err := d.Add(character(10, 1)); !errors.Is(err, ErrDeckFull) {
		t.Errorf("Add() on full deck error = %v, want ErrDeckFull", err)
	}
	if d.Size() != MaxSize {
		t.Errorf("Size() = %d, want %d; add must never grow past the cap", d.Size(), MaxSize)
	}
}

func TestAddAllowsDuplicates(t *testing.T) {
	d := New()
	card := character(3, 2)

	if err := d.Add(card); err != nil {
		t.Fatalf("Add() error = %v", err)
	}
	if err := d.Add(card); err != nil {
		t.Fatalf("Add() of the same card error = %v", err)
	}
	if got, want := d.IDs(), []int64{3, 3}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() = %v, want %v", got, want)
	}
}

func TestRemoveAt(t *testing.T) {
	d := New()
	for i := int64(1); i <= 4; i++ {
		if err := d.Add(character(i, 1)); err != nil {
			t.Fatalf("Add() error = %v", err)
		}
	}

	removed, err := d.RemoveAt(1)
	if err != nil {
		t.Fatalf("RemoveAt(1) error = %v", err)
	}
	if removed.ID != 2 {
		t.Errorf("RemoveAt(1) removed id %d, want 2", removed.ID)
	}
	if got, want := d.IDs(), []int64{1, 3, 4}; !reflect.DeepEqual(got, want) {
		t.Errorf("IDs() after remove = %v, want %v (survivor order preserved)", got, want)
	}

	if _, err := d.RemoveAt(3); err == nil {
		t.Error("RemoveAt(3) on a 3-card deck should fail")
	}
	if _, err := d.RemoveAt(-1); err == nil {
		t.Error("RemoveAt(-1) should fail")
	}
	if d.Size() != 3 {
		t.Errorf("Size() after rejected removes = %d, want 3", d.Size())
	}
}

func TestClear(t *testing.T) {
	d := New()
	_ = d.Add(character(1, 1))
	_ = d.Add(character(2, 1))

	d.Clear()
	if d.Size() != 0 {
		t.Errorf("Size() after Clear = %d, want 0", d.Size())
	}
	d.Clear() // clearing an empty deck is fine
}

func TestTotalCost(t *testing.T) {
	d := New()
	_ = d.Add(character(1, 2))
	_ = d.Add(character(2, 5))
	_ = d.Add(&catalog.Card{ID: 3, Type: catalog.TypeCharacter}) // no cost counts as 0

	if got := d.TotalCost(); got != 7 {
		t.Errorf("TotalCost() = %d, want 7", got)
	}
}

func TestSlots(t *testing.T) {
	d := New()
	_ = d.Add(&catalog.Card{ID: 1, Name: "Reimu", Type: catalog.TypeCharacter, Image: "001.png"})
	_ = d.Add(&catalog.Card{ID: 2, Name: "Imageless", Type: catalog.TypeCharacter})

	slots := d.Slots()
	if slots[0].Image != "001.png" {
		t.Errorf("slots[0].Image = %q, want 001.png", slots[0].Image)
	}
	if slots[1].Image != "" || slots[1].Name != "Imageless" {
		t.Errorf("slots[1] = %+v, want name-only fallback", slots[1])
	}
	for i := 2; i < MaxSize; i++ {
		if !slots[i].Empty() {
			t.Errorf("slots[%d] should be empty", i)
		}
	}
}

func TestFromIDs(t *testing.T) {
	cat := testCatalog(t)

	d := FromIDs([]int64{1, 2, 99, 3, 1}, cat)
	// 2 is an Ability and 99 is unknown; duplicates survive.
	if got, want := d.IDs(), []int64{1, 3, 1}; !reflect.DeepEqual(got, want) {
		t.Errorf("FromIDs() = %v, want %v", got, want)
	}

	long := make([]int64, 0, 12)
	for i := 0; i < 12; i++ {
		long = append(long, 1)
	}
	if got := FromIDs(long, cat).Size(); got != MaxSize {
		t.Errorf("FromIDs() size = %d, want truncation to %d", got, MaxSize)
	}
}

func testCatalog(t *testing.T) *catalog.Catalog {
	t.Helper()
	cat, err := catalog.New(catalog.Document{Cards: []*catalog.Card{
		{ID: 1, Name: "Reimu", Type: catalog.TypeCharacter, Cost: intPtr(2), Power: intPtr(3)},
		{ID: 2, Name: "Seal", Type: catalog.TypeAbility},
		{ID: 3, Name: "Marisa", Type: catalog.TypeCharacter, Cost: intPtr(5), Power: intPtr(8)},
	}})
	if err != nil {
		t.Fatalf("catalog.New() error = %v", err)
	}
	return cat
}
