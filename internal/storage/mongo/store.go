package mongostore

import (
	"context"
	"fmt"
	"time"

	"go.mongodb.org/mongo-driver/v2/bson"
	"go.mongodb.org/mongo-driver/v2/mongo"
	"go.mongodb.org/mongo-driver/v2/mongo/options"
)

// Options for opening the store.
type Options struct {
	URI      string
	Database string
	// Collection answers historical queries; inserts go to the collection
	// named after each record's source topic.
	Collection     string
	ConnectTimeout time.Duration
}

// Store wraps a MongoDB client for trade persistence and queries.
type Store struct {
	client     *mongo.Client
	db         *mongo.Database
	collection string
}

// Open connects to MongoDB and verifies reachability with a ping. An error
// here is the "stream unavailable" signal: no controller is built over an
// unreachable store.
func Open(ctx context.Context, opts Options) (*Store, error) {
	timeout := opts.ConnectTimeout
	if timeout <= 0 {
		timeout = 10 * time.Second
	}
	clientOpts := options.Client().
		ApplyURI(opts.URI).
		SetConnectTimeout(timeout).
		SetServerSelectionTimeout(timeout)
	client, err := mongo.Connect(clientOpts)
	if err != nil {
		return nil, fmt.Errorf("mongo connect: %w", err)
	}
	pingCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()
	if err := client.Ping(pingCtx, nil); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongo ping: %w", err)
	}
	return &Store{
		client:     client,
		db:         client.Database(opts.Database),
		collection: opts.Collection,
	}, nil
}

// Ping verifies the store is still reachable.
func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, nil)
}

// Close disconnects the client.
func (s *Store) Close(ctx context.Context) error {
	return s.client.Disconnect(ctx)
}

// InsertPurchase writes one purchase into the collection named after topic.
func (s *Store) InsertPurchase(ctx context.Context, p StockPurchase, topic string) error {
	if topic == "" {
		topic = s.collection
	}
	if _, err := s.db.Collection(topic).InsertOne(ctx, p); err != nil {
		return fmt.Errorf("insert purchase: %w", err)
	}
	return nil
}

// LatestBuy returns the most recently inserted purchase.
func (s *Store) LatestBuy(ctx context.Context) (StockPurchase, error) {
	var p StockPurchase
	opts := options.FindOne().SetSort(bson.D{{Key: "_id", Value: -1}})
	err := s.db.Collection(s.collection).FindOne(ctx, bson.D{}, opts).Decode(&p)
	if err != nil {
		return StockPurchase{}, fmt.Errorf("latest buy: %w", err)
	}
	return p, nil
}

// TradesByOwner returns all trades recorded for the owner, oldest first.
func (s *Store) TradesByOwner(ctx context.Context, owner string) ([]StockPurchase, error) {
	return s.find(ctx, bson.D{{Key: "owner", Value: owner}})
}

// TradesForSymbol returns the owner's trades for one stock symbol.
func (s *Store) TradesForSymbol(ctx context.Context, owner, symbol string) ([]StockPurchase, error) {
	return s.find(ctx, bson.D{{Key: "owner", Value: owner}, {Key: "symbol", Value: symbol}})
}

func (s *Store) find(ctx context.Context, filter bson.D) ([]StockPurchase, error) {
	cur, err := s.db.Collection(s.collection).Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("find trades: %w", err)
	}
	var out []StockPurchase
	if err := cur.All(ctx, &out); err != nil {
		return nil, fmt.Errorf("decode trades: %w", err)
	}
	return out, nil
}
