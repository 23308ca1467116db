package storage

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"os"
	"strings"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"golang.org/x/sync/errgroup"

	"github.com/marketdash/marketdash/internal/domain/models"
	"github.com/marketdash/marketdash/internal/logger"
)

const (
	stocksCollection = "stocks"
	symbolIndexName  = "unique_symbol_index"

	// seedParallelism bounds concurrent upserts during seeding.
	seedParallelism = 4
)

// StockStore provisions and seeds the backing store of the market-data
// system. `symbol` is the primary key: the stocks collection carries a
// unique index on it, and every write is keyed by it.
//
// Only the provisioning mode uses this type; the API never reads or writes
// the store.
type StockStore struct {
	db *mongo.Database
}

// NewStockStore wraps the given database handle.
func NewStockStore(db *mongo.Database) *StockStore {
	return &StockStore{db: db}
}

// EnsureIndexes creates the stocks collection and its unique symbol index.
// Both steps are idempotent: an existing collection or index is fine.
func (s *StockStore) EnsureIndexes(ctx context.Context) error {
	if err := s.db.CreateCollection(ctx, stocksCollection); err != nil {
		var cmdErr mongo.CommandError
		if !errors.As(err, &cmdErr) || cmdErr.Name != "NamespaceExists" {
			return fmt.Errorf("failed to create %s collection: %w", stocksCollection, err)
		}
	}

	_, err := s.db.Collection(stocksCollection).Indexes().CreateOne(ctx, mongo.IndexModel{
		Keys:    bson.D{{Key: "symbol", Value: 1}},
		Options: options.Index().SetUnique(true).SetName(symbolIndexName),
	})
	if err != nil {
		return fmt.Errorf("failed to create %s: %w", symbolIndexName, err)
	}

	logger.L().Info().Str("collection", stocksCollection).Str("index", symbolIndexName).Msg("store provisioned")
	return nil
}

// SeedSummaries upserts the given summaries, keyed by symbol. Records with
// an empty symbol are skipped: they cannot satisfy the unique index.
// Upserts run concurrently; the first failure cancels the rest.
func (s *StockStore) SeedSummaries(ctx context.Context, summaries []models.StockSummary) error {
	coll := s.db.Collection(stocksCollection)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(seedParallelism)

	seeded := 0
	for _, sum := range summaries {
		if strings.TrimSpace(sum.Symbol) == "" {
			logger.L().Warn().Str("name", sum.Name).Msg("skipping seed record without symbol")
			continue
		}
		seeded++
		sum := sum
		g.Go(func() error {
			_, err := coll.UpdateOne(gctx, summaryFilter(sum), summaryUpdate(sum), options.Update().SetUpsert(true))
			if err != nil {
				return fmt.Errorf("failed to upsert %s: %w", sum.Symbol, err)
			}
			return nil
		})
	}

	if err := g.Wait(); err != nil {
		return err
	}
	logger.L().Info().Int("count", seeded).Msg("seed completed")
	return nil
}

// summaryFilter selects a stock document by its primary key.
func summaryFilter(s models.StockSummary) bson.M {
	return bson.M{"symbol": s.Symbol}
}

// summaryUpdate sets the descriptive fields of a stock document.
func summaryUpdate(s models.StockSummary) bson.M {
	return bson.M{"$set": bson.M{
		"symbol":   s.Symbol,
		"name":     s.Name,
		"provider": s.Provider,
	}}
}

// ReadSeedFile loads stock summaries from a JSON file containing an array
// of {symbol, name, provider} objects.
func ReadSeedFile(path string) ([]models.StockSummary, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read seed file: %w", err)
	}

	var summaries []models.StockSummary
	if err := json.Unmarshal(raw, &summaries); err != nil {
		return nil, fmt.Errorf("failed to parse seed file: %w", err)
	}
	return summaries, nil
}
