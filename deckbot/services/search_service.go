package services

import (
	"strings"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
	"github.com/sahilm/fuzzy"
)

// cardSource implements fuzzy.Source over normalized card names.
type cardSource []*catalog.Card

func (s cardSource) Len() int { return len(s) }

func (s cardSource) String(i int) string {
	return normalizeCardName(s[i].Name)
}

// SearchService resolves loosely typed card names. The filter engine
// stays strict substring matching; fuzzy matching only backs name
// autocomplete and "add by name" resolution where typos are expected.
type SearchService struct{}

func NewSearchService() *SearchService {
	return &SearchService{}
}

// Suggest returns up to limit cards whose names best match the query,
// most relevant first. An empty query returns the head of the list
// unchanged.
func (s *SearchService) Suggest(cards []*catalog.Card, query string, limit int) []*catalog.Card {
	if limit <= 0 {
		return nil
	}
	if strings.TrimSpace(query) == "" {
		if len(cards) > limit {
			cards = cards[:limit]
		}
		out := make([]*catalog.Card, len(cards))
		copy(out, cards)
		return out
	}

	source := cardSource(cards)
	matches := fuzzy.FindFrom(normalizeQuery(query), source)
	if len(matches) > limit {
		matches = matches[:limit]
	}

	results := make([]*catalog.Card, len(matches))
	for i, match := range matches {
		results[i] = cards[match.Index]
	}
	return results
}

// ResolveCard returns the single best name match, or nil when nothing
// matches at all.
func (s *SearchService) ResolveCard(cards []*catalog.Card, query string) *catalog.Card {
	results := s.Suggest(cards, query, 1)
	if len(results) == 0 {
		return nil
	}
	return results[0]
}

func normalizeCardName(name string) string {
	normalized := strings.ReplaceAll(name, "_", " ")
	normalized = strings.ReplaceAll(normalized, "-", " ")
	normalized = strings.ToLower(normalized)
	return strings.Join(strings.Fields(normalized), " ")
}

func normalizeQuery(query string) string {
	return strings.Join(strings.Fields(strings.ToLower(query)), " ")
}
