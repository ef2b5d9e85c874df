package catalog

import (
	"encoding/json"
	"fmt"
	"os"
	"sync"
)

// Document is the on-disk catalog format: an ordered pack name list and
// the card set. Both fields default to empty when absent.
type Document struct {
	Packs []string `json:"packs"`
	Cards []*Card  `json:"cards"`
}

// Catalog is the read-only card set and pack list for the session.
// Packs are identified positionally by their index in the name list.
type Catalog struct {
	packs []string
	cards []*Card
	byID  map[int64]*Card
}

// New validates a parsed document and builds the id index. Card order
// is preserved as the canonical display order.
func New(doc Document) (*Catalog, error) {
	byID := make(map[int64]*Card, len(doc.Cards))
	for _, card := range doc.Cards {
		if card.ID <= 0 {
			return nil, fmt.Errorf("card %q has invalid id %d", card.Name, card.ID)
		}
		if _, dup := byID[card.ID]; dup {
			return nil, fmt.Errorf("duplicate card id %d", card.ID)
		}
		if card.Cost != nil && *card.Cost < 0 {
			return nil, fmt.Errorf("card %d has negative cost", card.ID)
		}
		if card.Power != nil && *card.Power < 0 {
			return nil, fmt.Errorf("card %d has negative power", card.ID)
		}
		byID[card.ID] = card
	}
	return &Catalog{packs: doc.Packs, cards: doc.Cards, byID: byID}, nil
}

// Empty returns a catalog with no packs and no cards. It is the
// fallback state when loading fails; the process keeps running with it.
func Empty() *Catalog {
	return &Catalog{byID: map[int64]*Card{}}
}

// Load reads and validates the catalog document at path.
func Load(path string) (*Catalog, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open catalog: %w", err)
	}
	defer file.Close()

	var doc Document
	if err := json.NewDecoder(file).Decode(&doc); err != nil {
		return nil, fmt.Errorf("failed to parse catalog: %w", err)
	}
	return New(doc)
}

// Cards returns the full card list in catalog order. Callers must not
// mutate the returned slice.
func (c *Catalog) Cards() []*Card { return c.cards }

// Packs returns the ordered pack name list.
func (c *Catalog) Packs() []string { return c.packs }

// PackName resolves a pack index to its display name.
func (c *Catalog) PackName(idx int) (string, bool) {
	if idx < 0 || idx >= len(c.packs) {
		return "", false
	}
	return c.packs[idx], true
}

// ByID looks up a card by its identity key.
func (c *Catalog) ByID(id int64) (*Card, bool) {
	card, ok := c.byID[id]
	return card, ok
}

func (c *Catalog) Len() int { return len(c.cards) }

// Store holds the catalog installed for the process lifetime. It starts
// empty; Set installs the loaded catalog exactly once and closes the
// ready channel so that consumers racing the load (deck restoration)
// can await it instead of polling.
type Store struct {
	mu      sync.RWMutex
	catalog *Catalog
	ready   chan struct{}
	once    sync.Once
}

func NewStore() *Store {
	return &Store{
		catalog: Empty(),
		ready:   make(chan struct{}),
	}
}

// Set installs the catalog. Only the first non-nil catalog signals
// readiness; later calls are ignored since the catalog never changes
// after load.
func (s *Store) Set(c *Catalog) {
	if c == nil {
		return
	}
	s.once.Do(func() {
		s.mu.Lock()
		s.catalog = c
		s.mu.Unlock()
		close(s.ready)
	})
}

// Current returns the installed catalog, or the empty catalog before
// load completes.
func (s *Store) Current() *Catalog {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.catalog
}

// Ready is closed once a catalog has been installed.
func (s *Store) Ready() <-chan struct{} {
	return s.ready
}
