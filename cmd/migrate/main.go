package main

import (
	"context"
	"flag"
	"log/slog"
	"os"
	"time"

	"github.com/frontierdeck/frontierdeck/deckbot/logger"
	"github.com/frontierdeck/frontierdeck/deckbot/migration"
)

// Converts the legacy Mongo card data into the cards.json catalog the
// bot loads. Point it at a live deployment with -mongo-uri, or at
// mongodump output with -cards-dump/-packs-dump.
func main() {
	slog.SetDefault(slog.New(logger.NewHandler()))

	mongoURI := flag.String("mongo-uri", "", "mongodb connection string of the legacy deployment")
	mongoDB := flag.String("mongo-db", "frontier", "legacy database name")
	cardsDump := flag.String("cards-dump", "", "path to a cards.bson mongodump file")
	packsDump := flag.String("packs-dump", "", "path to a packs.bson mongodump file")
	out := flag.String("out", "cards.json", "output catalog path")
	flag.Parse()

	m := migration.NewMigrator(*mongoURI, *mongoDB)

	var err error
	switch {
	case *cardsDump != "":
		err = m.ExportFromDump(*cardsDump, *packsDump, *out)
	case *mongoURI != "":
		ctx, cancel := context.WithTimeout(context.Background(), 10*time.Minute)
		defer cancel()
		err = m.ExportFromMongo(ctx, *out)
	default:
		slog.Error("Either -mongo-uri or -cards-dump is required")
		os.Exit(2)
	}

	if err != nil {
		slog.Error("Migration failed", slog.Any("error", err))
		os.Exit(1)
	}
	slog.Info("Migration completed successfully")
}
