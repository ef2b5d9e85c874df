package repositories

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/frontierdeck/frontierdeck/deckbot/database/models"
	"github.com/uptrace/bun"
)

// DeckRepository persists each user's deck slot: the JSON-encoded card
// id array under the user's key.
type DeckRepository interface {
	Save(ctx context.Context, userID string, cardIDs []int64) error
	Get(ctx context.Context, userID string) ([]int64, bool, error)
	Delete(ctx context.Context, userID string) error
}

type deckRepository struct {
	db *bun.DB
}

func NewDeckRepository(db *bun.DB) DeckRepository {
	return &deckRepository{db: db}
}

func (r *deckRepository) Save(ctx context.Context, userID string, cardIDs []int64) error {
	if cardIDs == nil {
		cardIDs = []int64{}
	}
	encoded, err := json.Marshal(cardIDs)
	if err != nil {
		return fmt.Errorf("failed to encode deck ids: %w", err)
	}

	slot := &models.DeckSlot{
		UserID:    userID,
		CardIDs:   string(encoded),
		UpdatedAt: time.Now(),
	}

	_, err = r.db.NewInsert().
		Model(slot).
		On("CONFLICT (user_id) DO UPDATE").
		Set("card_ids = EXCLUDED.card_ids").
		Set("updated_at = EXCLUDED.updated_at").
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to save deck slot: %w", err)
	}
	return nil
}

// Get returns the stored id list and whether a usable slot exists. An
// absent row or an unparseable payload both report found=false so the
// caller restores an empty deck instead of failing.
func (r *deckRepository) Get(ctx context.Context, userID string) ([]int64, bool, error) {
	slot := new(models.DeckSlot)
	err := r.db.NewSelect().
		Model(slot).
		Where("user_id = ?", userID).
		Scan(ctx)
	if errors.Is(err, sql.ErrNoRows) {
		return nil, false, nil
	}
	if err != nil {
		return nil, false, fmt.Errorf("failed to read deck slot: %w", err)
	}

	var ids []int64
	if err := json.Unmarshal([]byte(slot.CardIDs), &ids); err != nil {
		return nil, false, nil
	}
	return ids, true, nil
}

func (r *deckRepository) Delete(ctx context.Context, userID string) error {
	_, err := r.db.NewDelete().
		Model((*models.DeckSlot)(nil)).
		Where("user_id = ?", userID).
		Exec(ctx)
	if err != nil {
		return fmt.Errorf("failed to delete deck slot: %w", err)
	}
	return nil
}
