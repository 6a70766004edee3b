// Package mongodb provides a MongoDB-backed dataset source.
//
// Each document in the configured collection contributes one row: a
// categorical field and a numeric field, selected by name at query time.
// The fetched rows arrive as a [dataset.QueryResult] and flow through the
// same build pipeline as file input.
//
// # Usage
//
//	src, err := mongodb.Connect(ctx, mongodb.Config{
//	    URI:        "mongodb://localhost:27017",
//	    Database:   "metrics",
//	    Collection: "defects",
//	})
//	if err != nil {
//	    return err
//	}
//	defer src.Close(ctx)
//
//	q, err := src.Fetch(ctx, mongodb.Query{
//	    CategoryField: "defect",
//	    ValueField:    "count",
//	})
package mongodb

import (
	"context"
	"fmt"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/KuroiKoyani/pareto-chart/pkg/dataset"
	"github.com/KuroiKoyani/pareto-chart/pkg/errors"
)

// Config holds MongoDB connection parameters.
type Config struct {
	// URI is the MongoDB connection string (e.g., "mongodb://localhost:27017").
	URI string `json:"uri"`

	// Database is the database name.
	Database string `json:"database"`

	// Collection is the collection holding the rows.
	Collection string `json:"collection"`
}

// Query selects which document fields become the chart's columns and which
// documents participate.
type Query struct {
	// CategoryField is the document field holding the category label.
	CategoryField string `json:"category_field"`

	// ValueField is the document field holding the numeric value.
	ValueField string `json:"value_field"`

	// Filter restricts which documents are fetched. Nil fetches all.
	Filter map[string]any `json:"filter,omitempty"`

	// Limit caps the number of fetched documents. Zero means no limit.
	Limit int64 `json:"limit,omitempty"`
}

// Source fetches query results from a MongoDB collection.
type Source struct {
	client *mongo.Client
	coll   *mongo.Collection
}

// Connect creates a Source and verifies the connection with a ping.
// The caller must Close the source when done.
func Connect(ctx context.Context, cfg Config) (*Source, error) {
	if cfg.URI == "" || cfg.Database == "" || cfg.Collection == "" {
		return nil, errors.New(errors.ErrCodeInvalidInput, "mongodb requires uri, database, and collection")
	}

	client, err := mongo.Connect(ctx, options.Client().ApplyURI(cfg.URI))
	if err != nil {
		return nil, errors.Wrap(errors.ErrCodeDataset, err, "connect to mongodb")
	}
	if err := client.Ping(ctx, nil); err != nil {
		_ = client.Disconnect(ctx)
		return nil, errors.Wrap(errors.ErrCodeDataset, err, "ping mongodb")
	}

	return &Source{
		client: client,
		coll:   client.Database(cfg.Database).Collection(cfg.Collection),
	}, nil
}

// Fetch runs the query and assembles the matching documents into a
// QueryResult. Document order follows the cursor; documents missing the
// category field contribute an empty label, documents missing or carrying a
// non-numeric value field contribute a nil-valued cell.
//
// Returns ErrCodeDatasetNotFound if the query matches no documents so that
// callers can distinguish "empty collection" from connection failures.
func (s *Source) Fetch(ctx context.Context, q Query) (dataset.QueryResult, error) {
	if q.CategoryField == "" || q.ValueField == "" {
		return dataset.QueryResult{}, errors.New(errors.ErrCodeInvalidColumn, "query requires category and value fields")
	}

	filter := any(bson.D{})
	if q.Filter != nil {
		filter = q.Filter
	}
	opts := options.Find()
	if q.Limit > 0 {
		opts.SetLimit(q.Limit)
	}

	cur, err := s.coll.Find(ctx, filter, opts)
	if err != nil {
		return dataset.QueryResult{}, errors.Wrap(errors.ErrCodeDataset, err, "find documents")
	}
	defer cur.Close(ctx)

	result := dataset.QueryResult{
		Category: dataset.CategoryColumn{Source: q.CategoryField},
	}
	for cur.Next(ctx) {
		var doc bson.M
		if err := cur.Decode(&doc); err != nil {
			return dataset.QueryResult{}, errors.Wrap(errors.ErrCodeDataset, err, "decode document")
		}
		result.Category.Labels = append(result.Category.Labels, stringField(doc, q.CategoryField))
		result.Value.Cells = append(result.Value.Cells, numericCell(doc, q.ValueField))
	}
	if err := cur.Err(); err != nil {
		return dataset.QueryResult{}, errors.Wrap(errors.ErrCodeDataset, err, "iterate documents")
	}

	if len(result.Category.Labels) == 0 {
		return dataset.QueryResult{}, errors.New(errors.ErrCodeDatasetNotFound,
			"no documents in %s match the query", s.coll.Name())
	}

	return result, nil
}

// Close disconnects the underlying client.
func (s *Source) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// stringField extracts doc[field] as a display label.
func stringField(doc bson.M, field string) string {
	switch v := doc[field].(type) {
	case nil:
		return ""
	case string:
		return v
	default:
		return fmt.Sprintf("%v", v)
	}
}

// numericCell extracts doc[field] as a value cell, covering the numeric
// types the bson decoder produces. Anything else is a nil-valued cell.
func numericCell(doc bson.M, field string) dataset.ValueCell {
	var v float64
	switch n := doc[field].(type) {
	case float64:
		v = n
	case float32:
		v = float64(n)
	case int32:
		v = float64(n)
	case int64:
		v = float64(n)
	case int:
		v = float64(n)
	default:
		return dataset.ValueCell{}
	}
	return dataset.ValueCell{Value: &v}
}
