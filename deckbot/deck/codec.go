package deck

import (
	"errors"
	"strconv"
	"strings"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

// Deck codes are the portable exchange format: comma-separated decimal
// card ids in deck order, whitespace around tokens tolerated. The
// format is shared between users and must stay stable.

var (
	ErrEmptyCode    = errors.New("deck code is empty")
	ErrNoValidCards = errors.New("deck code contains no valid cards")
)

// Encode renders the deck as a shareable code. Rejecting an empty deck
// is the caller's concern, not the codec's.
func Encode(d *Deck) string {
	ids := d.IDs()
	tokens := make([]string, len(ids))
	for i, id := range ids {
		tokens[i] = strconv.FormatInt(id, 10)
	}
	return strings.Join(tokens, ",")
}

// Decode parses a deck code against the catalog and returns a new deck
// holding the resolved cards. Tokens that do not parse as integers are
// skipped silently, as are ids that are unknown or not Character cards;
// only a fully unusable code is an error. Entries beyond MaxSize are
// dropped.
func Decode(code string, cat *catalog.Catalog) (*Deck, error) {
	code = strings.TrimSpace(code)
	if code == "" {
		return nil, ErrEmptyCode
	}

	ids := make([]int64, 0, MaxSize)
	for _, token := range strings.Split(code, ",") {
		token = strings.TrimSpace(token)
		id, err := strconv.ParseInt(token, 10, 64)
		if err != nil {
			continue
		}
		ids = append(ids, id)
	}

	d := FromIDs(ids, cat)
	if d.Size() == 0 {
		return nil, ErrNoValidCards
	}
	return d, nil
}
