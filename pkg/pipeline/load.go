package pipeline

import (
	"context"
	"fmt"

	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/dataset/mongodb"
)

// Load reads the dataset described by the options: a local CSV, JSON, or
// XLSX file, or a MongoDB collection when mongo options are set. The loaded
// dataset is the source of truth and is never cached; downstream stages
// cache their derived results instead.
func Load(ctx context.Context, opts Options) (dataset.QueryResult, error) {
	if err := opts.ValidateForLoad(); err != nil {
		return dataset.QueryResult{}, err
	}

	if opts.IsMongo() {
		return loadMongo(ctx, opts)
	}

	q, err := dataset.ReadFile(opts.Path, dataset.ReadOptions{
		Category: opts.Category,
		Value:    opts.Value,
		Sheet:    opts.Sheet,
	})
	if err != nil {
		return dataset.QueryResult{}, fmt.Errorf("read %s: %w", opts.Path, err)
	}
	return q, nil
}

// loadMongo fetches the dataset from a MongoDB collection. The connection
// lives for the duration of one fetch.
func loadMongo(ctx context.Context, opts Options) (dataset.QueryResult, error) {
	src, err := mongodb.Connect(ctx, mongodb.Config{
		URI:        opts.MongoURI,
		Database:   opts.MongoDatabase,
		Collection: opts.MongoCollection,
	})
	if err != nil {
		return dataset.QueryResult{}, fmt.Errorf("connect mongodb: %w", err)
	}
	defer func() { _ = src.Close(ctx) }()

	q, err := src.Fetch(ctx, mongodb.Query{
		CategoryField: opts.Category,
		ValueField:    opts.Value,
		Filter:        opts.MongoFilter,
		Limit:         opts.MongoLimit,
	})
	if err != nil {
		return dataset.QueryResult{}, fmt.Errorf("fetch %s.%s: %w", opts.MongoDatabase, opts.MongoCollection, err)
	}
	return q, nil
}
