package catalog

import (
	"reflect"
	"testing"
)

func intPtr(v int) *int { return &v }

func testCards() []*Card {
	return []*Card{
		{ID: 1, Name: "Reimu Hakurei", Type: TypeCharacter, Cost: intPtr(2), Power: intPtr(3), Tags: []string{"shrine maiden"}, Packs: []int{0}},
		{ID: 2, Name: "Fantasy Seal", Type: TypeAbility, Text: "Deal 3 damage."},
		{ID: 3, Name: "Marisa Kirisame", Type: TypeCharacter, Cost: intPtr(5), Power: intPtr(8), Tags: []string{"magician"}, Packs: []int{0, 1},
			Abilities: []Ability{{Code: "SPARK", Label: "Spark"}}},
		{ID: 4, Name: "Sakuya Izayoi", Type: TypeCharacter, Cost: intPtr(4), Power: intPtr(5), Text: "Stops time.", Packs: []int{1},
			Abilities: []Ability{{Code: "HASTE"}}},
		{ID: 5, Name: "Flandre Scarlet", Type: TypeCharacter, Cost: intPtr(7), Power: intPtr(9), Packs: []int{1}},
		{ID: 6, Name: "Mystery Orb", Type: TypeCharacter, Packs: []int{0}},
	}
}

func ids(cards []*Card) []int64 {
	out := make([]int64, len(cards))
	for i, c := range cards {
		out[i] = c.ID
	}
	return out
}

func TestFilter(t *testing.T) {
	cards := testCards()

	tests := []struct {
		name string
		crit Criteria
		want []int64
	}{
		{
			name: "empty criteria returns all characters in catalog order",
			crit: Criteria{},
			want: []int64{1, 3, 4, 5, 6},
		},
		{
			name: "text matches name case-insensitively",
			crit: Criteria{Query: "marisa"},
			want: []int64{3},
		},
		{
			name: "text matches tags",
			crit: Criteria{Query: "shrine"},
			want: []int64{1},
		},
		{
			name: "text matches card text",
			crit: Criteria{Query: "stops time"},
			want: []int64{4},
		},
		{
			name: "pack selector",
			crit: Criteria{Pack: intPtr(0)},
			want: []int64{1, 3, 6},
		},
		{
			name: "cost minimum excludes missing cost",
			crit: Criteria{CostMin: intPtr(3)},
			want: []int64{3, 4, 5},
		},
		{
			name: "cost maximum excludes missing cost",
			crit: Criteria{CostMax: intPtr(4)},
			want: []int64{1, 4},
		},
		{
			name: "cost range",
			crit: Criteria{CostMin: intPtr(4), CostMax: intPtr(5)},
			want: []int64{3, 4},
		},
		{
			name: "power minimum",
			crit: Criteria{PowerMin: intPtr(5)},
			want: []int64{3, 4, 5},
		},
		{
			name: "power minimum at the 8+ cap",
			crit: Criteria{PowerMin: intPtr(PowerCap)},
			want: []int64{3, 5},
		},
		{
			name: "power maximum bounds normally below the cap",
			crit: Criteria{PowerMax: intPtr(5)},
			want: []int64{1, 4},
		},
		{
			name: "power maximum at the 8+ cap stays open above",
			crit: Criteria{PowerMax: intPtr(PowerCap)},
			want: []int64{3, 5},
		},
		{
			name: "ability label exact match",
			crit: Criteria{Ability: "Spark"},
			want: []int64{3},
		},
		{
			name: "ability falls back to code when label empty",
			crit: Criteria{Ability: "HASTE"},
			want: []int64{4},
		},
		{
			name: "ability requires exact match",
			crit: Criteria{Ability: "spark"},
			want: []int64{},
		},
		{
			name: "combined criteria are AND-ed",
			crit: Criteria{Pack: intPtr(1), CostMin: intPtr(5)},
			want: []int64{3, 5},
		},
		{
			name: "zero matches is empty, not an error",
			crit: Criteria{Query: "yukari"},
			want: []int64{},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := ids(Filter(cards, tt.crit))
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Filter() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestFilterScenarioCostMin(t *testing.T) {
	cards := []*Card{
		{ID: 1, Type: TypeCharacter, Cost: intPtr(2), Power: intPtr(3)},
		{ID: 2, Type: TypeAbility},
		{ID: 3, Type: TypeCharacter, Cost: intPtr(5), Power: intPtr(8)},
	}
	got := ids(Filter(cards, Criteria{CostMin: intPtr(3)}))
	want := []int64{3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(costMin=3) = %v, want %v", got, want)
	}
}

func TestFilterPowerCapKeepsEightAndAbove(t *testing.T) {
	cards := []*Card{
		{ID: 1, Type: TypeCharacter, Power: intPtr(5)},
		{ID: 2, Type: TypeCharacter, Power: intPtr(8)},
		{ID: 3, Type: TypeCharacter, Power: intPtr(9)},
	}
	got := ids(Filter(cards, Criteria{PowerMax: intPtr(PowerCap)}))
	want := []int64{2, 3}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("Filter(powerMax=8+) = %v, want %v", got, want)
	}
}

func TestFilterIsIdempotent(t *testing.T) {
	cards := testCards()
	crit := Criteria{Pack: intPtr(1), PowerMin: intPtr(5)}

	once := Filter(cards, crit)
	twice := Filter(once, crit)
	if !reflect.DeepEqual(ids(once), ids(twice)) {
		t.Errorf("Filter(Filter(cards)) = %v, want %v", ids(twice), ids(once))
	}
}

func TestFilterDoesNotMutateInput(t *testing.T) {
	cards := testCards()
	before := ids(cards)
	Filter(cards, Criteria{Query: "marisa"})
	if !reflect.DeepEqual(ids(cards), before) {
		t.Error("Filter() mutated its input")
	}
}

func TestCriteriaIsZero(t *testing.T) {
	if !(Criteria{}).IsZero() {
		t.Error("zero Criteria should report IsZero")
	}
	if (Criteria{Query: "x"}).IsZero() {
		t.Error("Criteria with a query should not report IsZero")
	}
	if (Criteria{PowerMax: intPtr(8)}).IsZero() {
		t.Error("Criteria with a power bound should not report IsZero")
	}
}
