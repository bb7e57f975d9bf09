package repository

import (
	"context"
	"time"

	"packhouse/models"

	"go.mongodb.org/mongo-driver/bson"
	"go.mongodb.org/mongo-driver/mongo"
	"go.mongodb.org/mongo-driver/mongo/options"
)

type MongoRejectRepo struct {
	DB *mongo.Client
}

func NewMongoRejectRepo(db *mongo.Client) *MongoRejectRepo {
	return &MongoRejectRepo{DB: db}
}

func (r *MongoRejectRepo) CreateReject(rec *models.RejectionEntry) error {
	ctx := context.Background()
	if rec.RejectedAt.IsZero() {
		rec.RejectedAt = time.Now().UTC()
	}
	if rec.TotalRejectedWeight == 0 {
		rec.TotalRejectedWeight = rec.FuerteWeight + rec.HassWeight
	}
	if rec.TotalRejectedCrates == 0 {
		rec.TotalRejectedCrates = rec.FuerteCrates + rec.HassCrates
	}
	if rec.ID == 0 {
		rec.ID = time.Now().UnixNano()
	}
	_, err := r.DB.Database(mongoDatabase).Collection("rejection_entry").InsertOne(ctx, rec)
	return err
}

func (r *MongoRejectRepo) GetRejects(filters map[string]interface{}) ([]*models.RejectionEntry, error) {
	ctx := context.Background()

	bsonFilter := bson.M{}
	for k, v := range filters {
		bsonFilter[k] = v
	}

	cur, err := r.DB.Database(mongoDatabase).Collection("rejection_entry").
		Find(ctx, bsonFilter, options.Find().SetSort(bson.M{"rejected_at": -1}))
	if err != nil {
		return nil, err
	}
	defer cur.Close(ctx)

	var out []*models.RejectionEntry
	for cur.Next(ctx) {
		var rec models.RejectionEntry
		if err := cur.Decode(&rec); err != nil {
			return nil, err
		}
		out = append(out, &rec)
	}
	return out, nil
}

func (r *MongoRejectRepo) DeleteReject(id int64) error {
	ctx := context.Background()
	res, err := r.DB.Database(mongoDatabase).Collection("rejection_entry").
		DeleteOne(ctx, bson.M{"_id": id})
	if err != nil {
		return err
	}
	if res.DeletedCount == 0 {
		return mongo.ErrNoDocuments
	}
	return nil
}
