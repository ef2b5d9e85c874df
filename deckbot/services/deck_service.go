package services

import (
	"context"
	"log/slog"
	"sync"

	"github.com/disgoorg/snowflake/v2"
	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
	"github.com/frontierdeck/frontierdeck/deckbot/database/repositories"
	"github.com/frontierdeck/frontierdeck/deckbot/deck"
)

// DeckService owns the in-memory deck of every user and mirrors each
// successful mutation to the deck repository before returning. The
// mirror write is best-effort: a storage failure is logged and never
// surfaced, so deck building keeps working through database hiccups.
type DeckService struct {
	mu       sync.Mutex
	decks    map[snowflake.ID]*deck.Deck
	repo     repositories.DeckRepository
	catalogs *catalog.Store
}

func NewDeckService(repo repositories.DeckRepository, catalogs *catalog.Store) *DeckService {
	return &DeckService{
		decks:    make(map[snowflake.ID]*deck.Deck),
		repo:     repo,
		catalogs: catalogs,
	}
}

// Deck returns a snapshot of the user's deck, restoring it from storage
// on first access. Handlers run on separate goroutines, so the live deck
// never leaves this service; readers get a copy taken under the lock.
func (s *DeckService) Deck(ctx context.Context, userID snowflake.ID) (*deck.Deck, error) {
	d, err := s.live(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	return snapshot(d), nil
}

// live returns the in-memory deck shared by all of the user's
// interactions. Callers must take s.mu before reading or mutating it.
// Restoration waits for the catalog to finish loading so a stored deck
// is never resolved against a partial catalog; it cannot permanently
// fail just because it raced the load.
func (s *DeckService) live(ctx context.Context, userID snowflake.ID) (*deck.Deck, error) {
	s.mu.Lock()
	if d, ok := s.decks[userID]; ok {
		s.mu.Unlock()
		return d, nil
	}
	s.mu.Unlock()

	select {
	case <-s.catalogs.Ready():
	case <-ctx.Done():
		return nil, ctx.Err()
	}

	restored := s.restore(ctx, userID)

	s.mu.Lock()
	defer s.mu.Unlock()
	if d, ok := s.decks[userID]; ok {
		// Another interaction restored the deck while we read storage.
		return d, nil
	}
	s.decks[userID] = restored
	return restored, nil
}

func snapshot(d *deck.Deck) *deck.Deck {
	copied := deck.New()
	copied.Replace(d.Cards())
	return copied
}

// restore reads the persisted slot and resolves it with the same rules
// as decoding a deck code. Absent or unreadable state yields an empty
// deck.
func (s *DeckService) restore(ctx context.Context, userID snowflake.ID) *deck.Deck {
	ids, found, err := s.repo.Get(ctx, userID.String())
	if err != nil {
		slog.Warn("Failed to restore deck, starting empty",
			slog.String("type", "db"),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
		return deck.New()
	}
	if !found {
		return deck.New()
	}
	return deck.FromIDs(ids, s.catalogs.Current())
}

// Add appends the card to the user's deck and persists the new list.
func (s *DeckService) Add(ctx context.Context, userID snowflake.ID, card *catalog.Card) error {
	d, err := s.live(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	if err := d.Add(card); err != nil {
		return err
	}
	s.persist(ctx, userID, d)
	return nil
}

// RemoveAt removes the card at index from the user's deck and persists
// the new list.
func (s *DeckService) RemoveAt(ctx context.Context, userID snowflake.ID, index int) (*catalog.Card, error) {
	d, err := s.live(ctx, userID)
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	removed, err := d.RemoveAt(index)
	if err != nil {
		return nil, err
	}
	s.persist(ctx, userID, d)
	return removed, nil
}

// Clear empties the user's deck and drops the stored slot entirely; an
// absent row restores as an empty deck, so nothing stale is left behind.
func (s *DeckService) Clear(ctx context.Context, userID snowflake.ID) error {
	d, err := s.live(ctx, userID)
	if err != nil {
		return err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d.Clear()
	if err := s.repo.Delete(ctx, userID.String()); err != nil {
		slog.Warn("Failed to delete deck slot",
			slog.String("type", "db"),
			slog.String("user_id", userID.String()),
			slog.Any("error", err))
	}
	return nil
}

// Import decodes a deck code and replaces the user's deck with it. The
// returned deck is a snapshot of the imported state.
func (s *DeckService) Import(ctx context.Context, userID snowflake.ID, code string) (*deck.Deck, error) {
	d, err := s.live(ctx, userID)
	if err != nil {
		return nil, err
	}

	decoded, err := deck.Decode(code, s.catalogs.Current())
	if err != nil {
		return nil, err
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	d.Replace(decoded.Cards())
	s.persist(ctx, userID, d)
	return snapshot(d), nil
}

// persist mirrors the deck to storage. Callers hold s.mu.
func (s *DeckService) persist(ctx context.Context, userID snowflake.ID, d *deck.Deck) {
	if err := s.repo.Save(ctx, userID.String(), d.IDs()); err != nil {
		slog.Warn("Failed to persist deck",
			slog.String("type", "db"),
			slog.String("user_id", userID.String()),
			slog.Int("deck_size", d.Size()),
			slog.Any("error", err))
	}
}
