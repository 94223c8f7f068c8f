// Package mongodb implements the store on MongoDB. Users and sessions live in
// the users and pomodorosessions collections; each document is updated on its
// own, with interruption appends done through $push.
package mongodb

import (
	"context"
	"errors"
	"fmt"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
	"go.mongodb.org/mongo-driver/mongo/readpref"
)

const (
	usersCollection    = "users"
	sessionsCollection = "pomodorosessions"
)

type Store struct {
	client *mongo.Client
	db     *mongo.Database
}

// NewStore connects to uri and uses the named database.
func NewStore(ctx context.Context, uri, database string) (*Store, error) {
	client, err := mongo.Connect(ctx, options.Client().ApplyURI(uri))
	if err != nil {
		return nil, fmt.Errorf("mongodb: connect: %w", err)
	}

	if err := client.Ping(ctx, readpref.Primary()); err != nil {
		_ = client.Disconnect(context.Background())
		return nil, fmt.Errorf("mongodb: ping: %w", err)
	}

	return &Store{client: client, db: client.Database(database)}, nil
}

func (s *Store) Close() error {
	return s.client.Disconnect(context.Background())
}

func (s *Store) Ping(ctx context.Context) error {
	return s.client.Ping(ctx, readpref.Primary())
}

func (s *Store) Users() store.Users {
	return &usersRepo{coll: s.db.Collection(usersCollection)}
}

func (s *Store) Sessions() store.Sessions {
	return &sessionsRepo{coll: s.db.Collection(sessionsCollection)}
}

// ApplyMigrations creates the unique and query indexes. CreateMany is a
// no-op for indexes that already exist with the same keys and options.
func (s *Store) ApplyMigrations() error {
	ctx := context.Background()

	_, err := s.db.Collection(usersCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "username", Value: 1}}, Options: options.Index().SetUnique(true)},
		{Keys: bson.D{{Key: "email", Value: 1}}, Options: options.Index().SetUnique(true)},
	})
	if err != nil {
		return fmt.Errorf("mongodb: user indexes: %w", err)
	}

	_, err = s.db.Collection(sessionsCollection).Indexes().CreateMany(ctx, []mongo.IndexModel{
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "startTime", Value: -1}}},
		{Keys: bson.D{{Key: "user", Value: 1}, {Key: "completed", Value: 1}}},
	})
	if err != nil {
		return fmt.Errorf("mongodb: session indexes: %w", err)
	}

	return nil
}

func mapNotFound(err error) error {
	if errors.Is(err, mongo.ErrNoDocuments) {
		return store.ErrNotFound
	}
	return err
}

func mapDuplicate(err error) error {
	if mongo.IsDuplicateKeyError(err) {
		return fmt.Errorf("%w: %s", store.ErrAlreadyExists, err.Error())
	}
	return err
}

// requireMatch reports ErrNotFound for updates that matched nothing.
func requireMatch(res *mongo.UpdateResult, err error) error {
	if err != nil {
		return err
	}
	if res.MatchedCount == 0 {
		return store.ErrNotFound
	}
	return nil
}
