package docstore

import (
	"context"
	"errors"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"

	"github.com/drivesense/drivesense-backend/internal/pkg/apperrors"
)

// MongoStore implements Store on top of a MongoDB database. Documents are
// keyed by _id; the id field inside the document body is kept as-is so the
// stored key set matches the canonical record documents.
type MongoStore struct {
	db *mongo.Database
}

// NewMongoStore creates a document store over the given database.
func NewMongoStore(db *mongo.Database) *MongoStore {
	return &MongoStore{db: db}
}

func (s *MongoStore) Set(ctx context.Context, collection, id string, doc Document) error {
	body := bson.M(doc)
	opts := options.Replace().SetUpsert(true)
	if _, err := s.db.Collection(collection).ReplaceOne(ctx, bson.M{"_id": id}, body, opts); err != nil {
		return apperrors.NewStoreError("set", collection, id, err)
	}
	return nil
}

func (s *MongoStore) Update(ctx context.Context, collection, id string, fields Document) error {
	res, err := s.db.Collection(collection).UpdateOne(ctx, bson.M{"_id": id}, bson.M{"$set": bson.M(fields)})
	if err != nil {
		return apperrors.NewStoreError("update", collection, id, err)
	}
	if res.MatchedCount == 0 {
		return apperrors.ErrNotFound
	}
	return nil
}

func (s *MongoStore) Get(ctx context.Context, collection, id string) (Document, bool, error) {
	var raw bson.M
	err := s.db.Collection(collection).FindOne(ctx, bson.M{"_id": id}).Decode(&raw)
	if err != nil {
		if errors.Is(err, mongo.ErrNoDocuments) {
			return nil, false, nil
		}
		return nil, false, apperrors.NewStoreError("get", collection, id, err)
	}
	return normalizeDocument(raw), true, nil
}

func (s *MongoStore) Delete(ctx context.Context, collection, id string) error {
	if _, err := s.db.Collection(collection).DeleteOne(ctx, bson.M{"_id": id}); err != nil {
		return apperrors.NewStoreError("delete", collection, id, err)
	}
	return nil
}

func (s *MongoStore) FindByField(ctx context.Context, collection, field string, value interface{}) ([]Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{field: value})
	if err != nil {
		return nil, apperrors.NewStoreError("find", collection, "", err)
	}
	return s.drain(ctx, collection, cur)
}

func (s *MongoStore) List(ctx context.Context, collection string) ([]Document, error) {
	cur, err := s.db.Collection(collection).Find(ctx, bson.M{})
	if err != nil {
		return nil, apperrors.NewStoreError("list", collection, "", err)
	}
	return s.drain(ctx, collection, cur)
}

func (s *MongoStore) drain(ctx context.Context, collection string, cur *mongo.Cursor) ([]Document, error) {
	defer cur.Close(ctx)

	var docs []Document
	for cur.Next(ctx) {
		var raw bson.M
		if err := cur.Decode(&raw); err != nil {
			return nil, apperrors.NewStoreError("decode", collection, "", err)
		}
		docs = append(docs, normalizeDocument(raw))
	}
	if err := cur.Err(); err != nil {
		return nil, apperrors.NewStoreError("cursor", collection, "", err)
	}
	return docs, nil
}

// normalizeDocument strips the synthetic _id and converts the driver's bson
// container types into plain maps and slices so callers never see bson.
func normalizeDocument(raw bson.M) Document {
	doc := make(Document, len(raw))
	for k, v := range raw {
		if k == "_id" {
			continue
		}
		doc[k] = normalizeValue(v)
	}
	return doc
}

func normalizeValue(v interface{}) interface{} {
	switch t := v.(type) {
	case bson.M:
		return normalizeDocument(t)
	case bson.D:
		m := make(Document, len(t))
		for _, e := range t {
			m[e.Key] = normalizeValue(e.Value)
		}
		return m
	case primitive.A:
		out := make([]interface{}, len(t))
		for i := range t {
			out[i] = normalizeValue(t[i])
		}
		return out
	default:
		return v
	}
}
