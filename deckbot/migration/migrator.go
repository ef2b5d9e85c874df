package migration

import (
	"bufio"
	"context"
	"encoding/binary"
	"encoding/json"
	"fmt"
	"io"
	"log/slog"
	"os"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/frontierdeck/frontierdeck/deckbot/catalog"
)

// Migrator converts the legacy Mongo card data into the catalog
// document the bot loads at startup. It reads either a live Mongo
// deployment or raw .bson dump files, so a one-off export works without
// standing the old stack back up.
type Migrator struct {
	mongoURI  string
	database  string
	cardsColl string
	packsColl string
}

func NewMigrator(mongoURI, database string) *Migrator {
	return &Migrator{
		mongoURI:  mongoURI,
		database:  database,
		cardsColl: "cards",
		packsColl: "packs",
	}
}

// ExportFromMongo reads the legacy collections over the wire and writes
// the catalog document to outPath.
func (m *Migrator) ExportFromMongo(ctx context.Context, outPath string) error {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(m.mongoURI))
	if err != nil {
		return fmt.Errorf("failed to connect to mongo: %w", err)
	}
	defer func() {
		if err := client.Disconnect(ctx); err != nil {
			slog.Warn("Failed to disconnect from mongo", slog.Any("error", err))
		}
	}()

	db := client.Database(m.database)

	cursor, err := db.Collection(m.cardsColl).Find(ctx, bson.D{})
	if err != nil {
		return fmt.Errorf("failed to query cards: %w", err)
	}
	var legacyCards []LegacyCard
	if err := cursor.All(ctx, &legacyCards); err != nil {
		return fmt.Errorf("failed to decode cards: %w", err)
	}
	slog.Info("Loaded cards from mongo",
		slog.String("collection", m.cardsColl),
		slog.Int("count", len(legacyCards)))

	var packs LegacyPackList
	err = db.Collection(m.packsColl).FindOne(ctx, bson.D{}).Decode(&packs)
	if err != nil && err != mongo.ErrNoDocuments {
		return fmt.Errorf("failed to read pack list: %w", err)
	}

	return m.write(outPath, packs.Names, legacyCards)
}

// ExportFromDump converts dump files produced by mongodump: a cards.bson
// of concatenated card documents and an optional packs.bson holding the
// pack name list.
func (m *Migrator) ExportFromDump(cardsPath, packsPath, outPath string) error {
	legacyCards, err := readCardDump(cardsPath)
	if err != nil {
		return err
	}
	slog.Info("Loaded cards from BSON dump",
		slog.String("path", cardsPath),
		slog.Int("count", len(legacyCards)))

	var packNames []string
	if packsPath != "" {
		packNames, err = readPackDump(packsPath)
		if err != nil {
			return err
		}
	}

	return m.write(outPath, packNames, legacyCards)
}

func (m *Migrator) write(outPath string, packNames []string, legacyCards []LegacyCard) error {
	doc := catalog.Document{Packs: packNames}
	skipped := 0
	for i := range legacyCards {
		card, err := convertCard(&legacyCards[i])
		if err != nil {
			slog.Warn("Skipping unusable legacy card",
				slog.Int64("id", legacyCards[i].ID),
				slog.String("name", legacyCards[i].Name),
				slog.Any("error", err))
			skipped++
			continue
		}
		doc.Cards = append(doc.Cards, card)
	}

	// Validate through the same path the bot loads with, so a bad export
	// fails here instead of at bot startup.
	if _, err := catalog.New(doc); err != nil {
		return fmt.Errorf("converted catalog is invalid: %w", err)
	}

	file, err := os.Create(outPath)
	if err != nil {
		return fmt.Errorf("failed to create output file: %w", err)
	}
	defer file.Close()

	encoder := json.NewEncoder(file)
	encoder.SetIndent("", "  ")
	if err := encoder.Encode(doc); err != nil {
		return fmt.Errorf("failed to write catalog: %w", err)
	}

	slog.Info("Catalog written",
		slog.String("path", outPath),
		slog.Int("cards", len(doc.Cards)),
		slog.Int("packs", len(doc.Packs)),
		slog.Int("skipped", skipped))
	return nil
}

func convertCard(legacy *LegacyCard) (*catalog.Card, error) {
	if legacy.ID <= 0 {
		return nil, fmt.Errorf("invalid id %d", legacy.ID)
	}
	if legacy.Name == "" {
		return nil, fmt.Errorf("card %d has no name", legacy.ID)
	}

	card := &catalog.Card{
		ID:    legacy.ID,
		Name:  legacy.Name,
		Type:  catalog.CardType(legacy.Type),
		Rate:  legacy.Rate,
		Tags:  legacy.Tags,
		Text:  legacy.Text,
		Image: legacy.Image,
	}
	if legacy.Cost != nil {
		cost := int(*legacy.Cost)
		card.Cost = &cost
	}
	if legacy.Power != nil {
		power := int(*legacy.Power)
		card.Power = &power
	}
	for _, ab := range legacy.Abilities {
		card.Abilities = append(card.Abilities, catalog.Ability{Code: ab.Code, Label: ab.Label})
	}
	for _, p := range legacy.Packs {
		card.Packs = append(card.Packs, int(p))
	}
	for _, qa := range legacy.QA {
		card.QA = append(card.QA, catalog.QA{Question: qa.Question, Answer: qa.Answer})
	}
	return card, nil
}

// readCardDump streams the length-prefixed BSON documents of a mongodump
// file.
func readCardDump(path string) ([]LegacyCard, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump: %w", err)
	}
	defer file.Close()

	var cards []LegacyCard
	reader := bufio.NewReader(file)
	for {
		docBytes, err := readBSONDocument(reader)
		if err == io.EOF {
			break
		}
		if err != nil {
			return nil, err
		}

		var legacy LegacyCard
		if err := bson.Unmarshal(docBytes, &legacy); err != nil {
			return nil, fmt.Errorf("failed to decode card document: %w", err)
		}
		cards = append(cards, legacy)
	}
	return cards, nil
}

func readPackDump(path string) ([]string, error) {
	file, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open dump: %w", err)
	}
	defer file.Close()

	docBytes, err := readBSONDocument(bufio.NewReader(file))
	if err == io.EOF {
		return nil, nil
	}
	if err != nil {
		return nil, err
	}

	var packs LegacyPackList
	if err := bson.Unmarshal(docBytes, &packs); err != nil {
		return nil, fmt.Errorf("failed to decode pack list: %w", err)
	}
	return packs.Names, nil
}

func readBSONDocument(reader *bufio.Reader) ([]byte, error) {
	lengthBytes := make([]byte, 4)
	if _, err := io.ReadFull(reader, lengthBytes); err != nil {
		if err == io.EOF || err == io.ErrUnexpectedEOF {
			return nil, io.EOF
		}
		return nil, fmt.Errorf("failed to read document length: %w", err)
	}

	length := int32(binary.LittleEndian.Uint32(lengthBytes))
	if length <= 4 {
		return nil, fmt.Errorf("invalid document length: %d", length)
	}

	// The length prefix counts its own 4 bytes.
	docBytes := make([]byte, length-4)
	if _, err := io.ReadFull(reader, docBytes); err != nil {
		return nil, fmt.Errorf("failed to read document bytes: %w", err)
	}
	return append(lengthBytes, docBytes...), nil
}
