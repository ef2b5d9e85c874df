package migration

// Legacy card documents as they sit in the old Mongo deployment. Field
// widths follow what the dump actually contains: numeric stats are
// int32/float64 and optional stats use pointers so absence survives the
// conversion.

type LegacyAbility struct {
	Code  string `bson:"code"`
	Label string `bson:"label,omitempty"`
}

type LegacyQA struct {
	Question string `bson:"q"`
	Answer   string `bson:"a"`
}

type LegacyCard struct {
	ID        int64           `bson:"id"`
	Name      string          `bson:"name"`
	Type      int32           `bson:"type"`
	Cost      *int32          `bson:"cost,omitempty"`
	Power     *int32          `bson:"power,omitempty"`
	Rate      *float64        `bson:"rate,omitempty"`
	Tags      []string        `bson:"tags,omitempty"`
	Text      string          `bson:"text,omitempty"`
	Abilities []LegacyAbility `bson:"abilities,omitempty"`
	Packs     []int32         `bson:"packs,omitempty"`
	Image     string          `bson:"image,omitempty"`
	QA        []LegacyQA      `bson:"qa,omitempty"`
}

type LegacyPackList struct {
	Names []string `bson:"names"`
}
