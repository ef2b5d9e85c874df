package models

import (
	"time"

	"github.com/uptrace/bun"
)

// DeckSlot is a user's persisted deck: the JSON-encoded array of card
// ids in deck order. One slot per user.
type DeckSlot struct {
	bun.BaseModel `bun:"table:deck_slots"`

	UserID    string    `bun:"user_id,pk"`
	CardIDs   string    `bun:"card_ids,type:jsonb,notnull,default:'[]'"`
	UpdatedAt time.Time `bun:"updated_at,notnull,default:current_timestamp"`
}
