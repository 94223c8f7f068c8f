package mongodb

import (
	"context"
	"fmt"

	"github.com/aussiebroadwan/focusflow/internal/focusflow/domain"
	"github.com/aussiebroadwan/focusflow/internal/focusflow/store"
	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type sessionsRepo struct {
	coll *mongo.Collection
}

func (r *sessionsRepo) CreateSession(ctx context.Context, s domain.Session) error {
	_, err := r.coll.InsertOne(ctx, toSessionDoc(s))
	return mapDuplicate(err)
}

func (r *sessionsRepo) GetSession(ctx context.Context, userID, id string) (domain.Session, error) {
	var doc sessionDoc
	if err := r.coll.FindOne(ctx, bson.M{"_id": id, "user": userID}).Decode(&doc); err != nil {
		return domain.Session{}, mapNotFound(err)
	}
	return doc.toDomain(), nil
}

func (r *sessionsRepo) EndSession(ctx context.Context, userID, id string, end domain.SessionEnd) error {
	set := bson.M{
		"endTime":      end.EndTime.UTC(),
		"completed":    true,
		"productivity": end.Productivity,
	}
	update := bson.M{"$set": set}
	if end.Notes != "" {
		set["notes"] = end.Notes
	} else {
		update["$unset"] = bson.M{"notes": ""}
	}

	return requireMatch(r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "user": userID},
		update,
	))
}

func (r *sessionsRepo) AppendInterruption(ctx context.Context, userID, id string, in domain.Interruption) error {
	return requireMatch(r.coll.UpdateOne(ctx,
		bson.M{"_id": id, "user": userID},
		bson.M{"$push": bson.M{"interruptions": interruptionDoc{Timestamp: in.Timestamp.UTC(), Reason: in.Reason}}},
	))
}

func (r *sessionsRepo) ListSessions(
	ctx context.Context,
	userID string,
	filter domain.SessionFilter,
	sort domain.SessionSort,
	page domain.Page,
) ([]domain.Session, int, error) {
	if !sort.Field.Valid() {
		return nil, 0, fmt.Errorf("mongodb: %w: %q", domain.ErrInvalidSort, sort.Field)
	}

	q := sessionFilter(userID, filter)

	total, err := r.coll.CountDocuments(ctx, q)
	if err != nil {
		return nil, 0, err
	}

	opts := options.Find().
		SetSort(sortDoc(sort)).
		SetSkip(int64(page.Skip)).
		SetLimit(int64(page.Limit))

	sessions, err := r.find(ctx, q, opts)
	if err != nil {
		return nil, 0, err
	}
	return sessions, int(total), nil
}

func (r *sessionsRepo) FindSessions(ctx context.Context, userID string, filter domain.SessionFilter) ([]domain.Session, error) {
	opts := options.Find().SetSort(bson.D{{Key: "startTime", Value: 1}, {Key: "_id", Value: 1}})
	return r.find(ctx, sessionFilter(userID, filter), opts)
}

func (r *sessionsRepo) find(ctx context.Context, q bson.M, opts *options.FindOptions) ([]domain.Session, error) {
	cur, err := r.coll.Find(ctx, q, opts)
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var docs []sessionDoc
	if err := cur.All(ctx, &docs); err != nil {
		return nil, err
	}

	sessions := make([]domain.Session, 0, len(docs))
	for _, d := range docs {
		sessions = append(sessions, d.toDomain())
	}
	return sessions, nil
}

var _ store.Sessions = (*sessionsRepo)(nil)
